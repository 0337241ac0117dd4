// Package nasm provides helpers to reassemble the generated output using nasm.
package nasm

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
)

const assemblerName = "nasm"

// IsInstalled returns whether the nasm assembler can be found in the path.
func IsInstalled() bool {
	_, err := exec.LookPath(assemblerName)
	return err == nil
}

// AssembleUsingExternalApp calls the external assembler to generate a flat binary
// from the given asm file.
func AssembleUsingExternalApp(ctx context.Context, asmFile, outputFile string) error {
	if !IsInstalled() {
		return fmt.Errorf("%s is not installed", assemblerName)
	}

	cmd := exec.CommandContext(ctx, assemblerName, "-f", "bin", "-o", outputFile, asmFile)
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("assembling file: %s: %w", strings.TrimSpace(string(out)), err)
	}

	return nil
}
