// Package config handles application configuration and setup
package config

import (
	"github.com/retroenv/disasm8086/internal/options"
	"github.com/retroenv/retrogolib/log"
)

// CreateLogger creates a logger with appropriate settings
func CreateLogger(debug, quiet bool) *log.Logger {
	cfg := log.DefaultConfig()
	if debug {
		cfg.Level = log.DebugLevel
	} else if quiet {
		cfg.Level = log.ErrorLevel
	}
	return log.NewWithConfig(cfg)
}

// CreateDisassemblerOptions derives the disassembler options from the program options.
func CreateDisassemblerOptions(opts options.Program) options.Disassembler {
	disasmOptions := options.NewDisassembler()
	if opts.Strict {
		disasmOptions.Unsupported = options.Strict
	}
	disasmOptions.HexComments = opts.HexComments
	disasmOptions.OffsetComments = opts.OffsetComments
	return disasmOptions
}
