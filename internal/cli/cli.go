// Package cli handles command line interface logic
package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/retroenv/disasm8086/internal/config"
	"github.com/retroenv/disasm8086/internal/options"
	"github.com/spf13/cobra"
)

// ErrMissingInput is returned when neither a file nor a batch pattern was passed.
var ErrMissingInput = errors.New("no file to disassemble given")

// RunFunc processes the parsed command line options.
type RunFunc func(ctx context.Context, opts options.Program, disasmOptions options.Disassembler) error

// NewCommand returns the root command that calls run with the parsed options.
func NewCommand(run RunFunc) *cobra.Command {
	var opts options.Program

	cmd := &cobra.Command{
		Use:   "disasm8086 [flags] <file to disassemble>",
		Short: "Disassembler for 8086 mov instructions",
		Long: `disasm8086 decodes a flat binary of 8086 machine code and outputs
nasm compatible assembly for the mov instruction family.`,
		Example: `
# Print the disassembly of a file
disasm8086 listing.bin

# Write the output to a file and verify it by reassembling with nasm
disasm8086 -o listing.asm --verify listing.bin
  `,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateArgs(args); err != nil {
				return err
			}
			if len(args) > 0 {
				if opts.Input != "" {
					return fmt.Errorf("input file %s given by flag and %s as argument, pass only one of them", opts.Input, args[0])
				}
				opts.Input = args[0]
			}
			if err := validateOptions(opts); err != nil {
				return err
			}

			disasmOptions := config.CreateDisassemblerOptions(opts)
			return run(cmd.Context(), opts, disasmOptions)
		},
	}

	flags := cmd.Flags()
	flags.SetInterspersed(false)

	flags.StringVarP(&opts.Input, "input", "i", "", "name of the input binary file")
	flags.StringVarP(&opts.Output, "output", "o", "", "name of the output .asm file, printed on console if no name given")
	flags.StringVar(&opts.Batch, "batch", "", "process a batch of given path and file mask and automatically .asm file naming, for example *.bin")
	flags.BoolVar(&opts.Strict, "strict", false, "abort at the first unsupported instruction instead of outputting it as data")
	flags.BoolVar(&opts.AssembleTest, "verify", false, "verify the generated output by assembling with nasm and check if it matches the input")
	flags.BoolVar(&opts.CrossCheck, "crosscheck", false, "cross-check every decoded instruction with an independent x86 decoder")
	flags.BoolVar(&opts.HexComments, "hexcomments", false, "output opcode bytes as hex values in comments")
	flags.BoolVar(&opts.OffsetComments, "offsets", false, "output offsets in comments")
	flags.BoolVar(&opts.NoConsole, "noconsole", false, "do not print the output on the console")
	flags.BoolVar(&opts.NoColor, "nocolor", false, "disable syntax highlighting of the console output")
	flags.BoolVar(&opts.Debug, "debug", false, "enable debugging options for extended logging")
	flags.BoolVarP(&opts.Quiet, "quiet", "q", false, "perform operations quietly")

	return cmd
}

// Execute runs the root command with signal handling and styled help and error output.
func Execute(ctx context.Context, version, commit string, run RunFunc) error {
	cmd := NewCommand(run)

	if err := fang.Execute(ctx, cmd,
		fang.WithVersion(version),
		fang.WithCommit(commit),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		return fmt.Errorf("executing command: %w", err)
	}
	return nil
}

// validateArgs checks if arguments are in correct order
func validateArgs(args []string) error {
	for i, arg := range args {
		if i > 0 && arg != "" && arg[0] == '-' {
			return fmt.Errorf("potential argument %s found after file to disassemble, please pass the file to disassemble as last argument", arg)
		}
	}
	if len(args) > 1 {
		return fmt.Errorf("only one file to disassemble can be passed, got %d", len(args))
	}
	return nil
}

// validateOptions checks that the combination of options can be processed.
func validateOptions(opts options.Program) error {
	if opts.Input == "" && opts.Batch == "" {
		return ErrMissingInput
	}
	if opts.Input != "" && opts.Batch != "" {
		return errors.New("a file to disassemble and a batch pattern can not be combined")
	}
	if opts.AssembleTest && opts.Output == "" && opts.Batch == "" {
		return errors.New("verification requires an output file")
	}
	return nil
}
