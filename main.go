// Package main implements the main entry point for the 8086 disassembler
package main

import (
	"context"
	"errors"
	"os"

	"github.com/retroenv/disasm8086/internal/cli"
	"github.com/retroenv/disasm8086/internal/config"
	"github.com/retroenv/disasm8086/internal/fileprocessor"
	"github.com/retroenv/disasm8086/internal/options"
	"github.com/retroenv/retrogolib/app"
	"github.com/retroenv/retrogolib/log"
)

var (
	version = "dev"
	commit  = ""
	date    = ""
)

func main() {
	ctx := app.Context()

	if err := cli.Execute(ctx, version, commit, run); err != nil {
		os.Exit(1)
	}
}

func run(ctx context.Context, opts options.Program, disasmOptions options.Disassembler) error {
	logger := config.CreateLogger(opts.Debug, opts.Quiet)
	fileprocessor.PrintBanner(logger, opts, version, commit, date)

	files, err := fileprocessor.GetFilesToProcess(&opts)
	if err != nil {
		return err
	}

	var failed int
	for _, file := range files {
		opts.Input = file
		if opts.Batch != "" {
			opts.Output = fileprocessor.GenerateOutputFilename(file)
		}

		if err := fileprocessor.ProcessFile(ctx, logger, opts, disasmOptions); err != nil {
			// Handle context cancellation (Ctrl+C) gracefully
			if errors.Is(err, context.Canceled) {
				logger.Info("Operation cancelled")
				return err
			}
			logger.Error("Disassembling failed", log.String("file", file), log.Err(err))
			failed++
		}
	}

	if failed > 0 {
		return errors.New("disassembling failed")
	}
	return nil
}
