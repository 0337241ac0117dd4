package fileprocessor

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/retroenv/disasm8086/internal/arch/i8086"
	"github.com/retroenv/disasm8086/internal/loader"
	"github.com/retroenv/disasm8086/internal/options"
	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

var testCode = []byte{
	0x89, 0xD9, // mov cx, bx
	0x90,       // nop
	0xB1, 0x0C, // mov cl, 12
}

func writeInput(t *testing.T, dir string, data []byte) string {
	t.Helper()

	input := filepath.Join(dir, "test.bin")
	if err := os.WriteFile(input, data, 0600); err != nil {
		t.Fatalf("Failed to create input file: %v", err)
	}
	return input
}

func TestProcessFile(t *testing.T) {
	dir := t.TempDir()
	opts := options.Program{
		Parameters: options.Parameters{
			Input:  writeInput(t, dir, testCode),
			Output: filepath.Join(dir, "test.asm"),
		},
		Flags:       options.Flags{CrossCheck: true},
		OutputFlags: options.OutputFlags{NoConsole: true},
	}

	err := ProcessFile(context.Background(), log.NewTestLogger(t), opts, options.NewDisassembler())
	assert.NoError(t, err)

	output, err := os.ReadFile(opts.Output)
	assert.NoError(t, err)

	expected := `bits 16

mov cx, bx
db 0x90                        ; unsupported instruction
mov cl, 12
`
	assert.Equal(t, expected, string(output))
}

func TestProcessFile_Strict(t *testing.T) {
	dir := t.TempDir()
	opts := options.Program{
		Parameters: options.Parameters{
			Input:  writeInput(t, dir, testCode),
			Output: filepath.Join(dir, "test.asm"),
		},
		OutputFlags: options.OutputFlags{NoConsole: true},
	}
	disasmOptions := options.NewDisassembler()
	disasmOptions.Unsupported = options.Strict

	err := ProcessFile(context.Background(), log.NewTestLogger(t), opts, disasmOptions)
	assert.True(t, errors.Is(err, i8086.ErrUnsupportedInstruction))

	output, err := os.ReadFile(opts.Output)
	assert.NoError(t, err)
	assert.Equal(t, "bits 16\n\nmov cx, bx\n", string(output))
}

func TestProcessFile_MissingInput(t *testing.T) {
	opts := options.Program{
		Parameters:  options.Parameters{Input: filepath.Join(t.TempDir(), "missing.bin")},
		OutputFlags: options.OutputFlags{NoConsole: true},
	}

	err := ProcessFile(context.Background(), log.NewTestLogger(t), opts, options.NewDisassembler())
	assert.True(t, errors.Is(err, loader.ErrLoad))
}

func TestGetFilesToProcess(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a.bin", "b.bin", "c.txt"} {
		assert.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0600))
	}

	opts := &options.Program{Parameters: options.Parameters{Batch: filepath.Join(dir, "*.bin")}}
	files, err := GetFilesToProcess(opts)
	assert.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(dir, "a.bin"), filepath.Join(dir, "b.bin")}, files)

	opts = &options.Program{Parameters: options.Parameters{Input: "test.bin"}}
	files, err = GetFilesToProcess(opts)
	assert.NoError(t, err)
	assert.Equal(t, []string{"test.bin"}, files)

	opts = &options.Program{Parameters: options.Parameters{Batch: "["}}
	_, err = GetFilesToProcess(opts)
	assert.Error(t, err)
}

func TestGenerateOutputFilename(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"listing_0037.bin", "listing_0037.asm"},
		{"dir/listing", "dir/listing.asm"},
		{"archive.tar.bin", "archive.tar.asm"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, GenerateOutputFilename(tt.input))
		})
	}
}
