// Package fileprocessor handles file loading and processing operations
package fileprocessor

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/retroenv/disasm8086/internal/console"
	"github.com/retroenv/disasm8086/internal/disasm"
	"github.com/retroenv/disasm8086/internal/loader"
	"github.com/retroenv/disasm8086/internal/options"
	"github.com/retroenv/disasm8086/internal/program"
	"github.com/retroenv/disasm8086/internal/verification"
	"github.com/retroenv/disasm8086/internal/writer"
	"github.com/retroenv/retrogolib/log"
)

// ProcessFile handles the complete file processing workflow
func ProcessFile(ctx context.Context, logger *log.Logger, opts options.Program, disasmOptions options.Disassembler) error {
	data, err := loader.New().Load(opts.Input)
	if err != nil {
		return fmt.Errorf("loading file: %w", err)
	}

	sinks, outputFile, err := createSinks(opts)
	if err != nil {
		return fmt.Errorf("creating output: %w", err)
	}

	app, err := disassemble(ctx, logger, disasmOptions, data, sinks)
	if outputFile != nil {
		if closeErr := outputFile.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("%w: closing output file: %w", writer.ErrSink, closeErr)
		}
	}
	if err != nil {
		return err
	}

	logger.Info("Disassembled file",
		log.String("file", opts.Input),
		log.Int("size", app.Size),
		log.Int("instructions", app.Instructions()),
		log.Int("unsupported", app.Unsupported))

	return verify(ctx, logger, opts, data, app)
}

func disassemble(ctx context.Context, logger *log.Logger, disasmOptions options.Disassembler,
	data []byte, sinks []io.Writer) (*program.Program, error) {

	w := writer.New(disasmOptions, sinks...)
	dis := disasm.New(logger, disasmOptions, data)

	app, err := dis.Process(ctx, w)
	if err != nil {
		return nil, fmt.Errorf("disassembling: %w", err)
	}
	return app, nil
}

func verify(ctx context.Context, logger *log.Logger, opts options.Program, data []byte, app *program.Program) error {
	if opts.CrossCheck {
		if err := verification.CrossCheck(logger, app); err != nil {
			return fmt.Errorf("cross-check failed: %w", err)
		}
		logger.Info("Cross-check successful")
	}

	if opts.AssembleTest {
		if err := verification.VerifyOutput(ctx, logger, opts, data); err != nil {
			return fmt.Errorf("verification failed: %w", err)
		}
		logger.Info("Verification successful")
	}

	return nil
}

// createSinks returns the output file and console writers that the disassembly is written to.
// The returned file has to be closed by the caller.
func createSinks(opts options.Program) ([]io.Writer, *os.File, error) {
	var (
		sinks      []io.Writer
		outputFile *os.File
	)

	if opts.Output != "" {
		file, err := os.Create(opts.Output)
		if err != nil {
			return nil, nil, fmt.Errorf("creating output file %s: %w", opts.Output, err)
		}
		outputFile = file
		sinks = append(sinks, file)
	}

	if !opts.NoConsole {
		colored := !opts.NoColor && console.SupportsColor(os.Stdout)
		sinks = append(sinks, console.New(os.Stdout, colored))
	}

	return sinks, outputFile, nil
}

// GetFilesToProcess returns list of files to process based on options
func GetFilesToProcess(opts *options.Program) ([]string, error) {
	if opts.Batch != "" {
		matches, err := filepath.Glob(opts.Batch)
		if err != nil {
			return nil, fmt.Errorf("globbing batch pattern: %w", err)
		}
		return matches, nil
	}
	return []string{opts.Input}, nil
}

// GenerateOutputFilename generates output filename for a given input file
func GenerateOutputFilename(inputFile string) string {
	ext := filepath.Ext(inputFile)
	return inputFile[:len(inputFile)-len(ext)] + ".asm"
}

// PrintBanner prints application version information
func PrintBanner(logger *log.Logger, opts options.Program, version, commit, date string) {
	if opts.Quiet {
		return
	}

	versionString := version
	if commit != "" {
		if len(commit) > 7 {
			commit = commit[:7]
		}
		versionString += fmt.Sprintf(" (%s)", commit)
	}

	logger.Info("disasm8086", log.String("version", versionString))

	if date != "" && !strings.Contains(date, "unknown") {
		logger.Info("Build", log.String("date", date))
	}
}
