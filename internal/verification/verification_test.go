package verification

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/retroenv/disasm8086/internal/assembler/nasm"
	"github.com/retroenv/disasm8086/internal/disasm"
	"github.com/retroenv/disasm8086/internal/options"
	"github.com/retroenv/disasm8086/internal/program"
	"github.com/retroenv/disasm8086/internal/writer"
	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

var testCode = []byte{
	0x89, 0xD9, // mov cx, bx
	0x8A, 0x00, // mov al, [bx + si]
	0x8B, 0x56, 0x00, // mov dx, [bp]
	0x8B, 0x41, 0xDB, // mov ax, [bx + di - 37]
	0x89, 0x1E, 0x82, 0x0D, // mov [3458], bx
	0xC6, 0x03, 0x07, // mov [bp + di], byte 7
	0xC7, 0x85, 0x85, 0x03, 0x5B, 0x01, // mov [di + 901], word 347
	0xB9, 0xF4, 0xFF, // mov cx, 65524
	0xA1, 0xFB, 0x09, // mov ax, [2555]
	0xA2, 0x0F, 0x00, // mov [15], al
	0x90, // nop
}

func disassemble(t *testing.T, data []byte) (*program.Program, []byte) {
	t.Helper()

	var buf bytes.Buffer
	opts := options.NewDisassembler()
	dis := disasm.New(log.NewTestLogger(t), opts, data)

	app, err := dis.Process(context.Background(), writer.New(opts, &buf))
	assert.NoError(t, err)
	return app, buf.Bytes()
}

// newBufferLogger returns a logger writing to buf that does not fail the test on error records.
func newBufferLogger(buf *bytes.Buffer) *log.Logger {
	cfg := log.DefaultConfig()
	cfg.Level = log.DebugLevel
	cfg.Output = buf
	return log.NewWithConfig(cfg)
}

func TestCrossCheck(t *testing.T) {
	app, _ := disassemble(t, testCode)
	assert.Equal(t, 1, app.Unsupported)

	assert.NoError(t, CrossCheck(log.NewTestLogger(t), app))
}

func TestCrossCheck_Mismatch(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"different instruction", []byte{0x90}},
		{"length mismatch", []byte{0x89, 0xD9, 0x90}},
		{"undecodable", []byte{0x0F}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := program.New(len(tt.data))
			app.Add(program.Offset{Data: tt.data, Type: program.CodeOffset, Code: "mov cx, bx"})

			var logs bytes.Buffer
			err := CrossCheck(newBufferLogger(&logs), app)
			assert.ErrorContains(t, err, "1 instruction mismatches")
			assert.Contains(t, logs.String(), "Instruction mismatch")
		})
	}
}

func TestCheckBufferEqual(t *testing.T) {
	var logs bytes.Buffer
	logger := newBufferLogger(&logs)

	assert.NoError(t, checkBufferEqual(logger, []byte{1, 2, 3}, []byte{1, 2, 3}))
	assert.ErrorContains(t, checkBufferEqual(logger, []byte{1, 2, 3}, []byte{1, 2}), "mismatched lengths, 3 != 2")
	assert.Empty(t, logs.String())

	assert.ErrorContains(t, checkBufferEqual(logger, []byte{1, 2, 3}, []byte{1, 0, 0}), "2 offset mismatches")
	assert.Equal(t, 2, strings.Count(logs.String(), "Offset mismatch"))
}

func TestCheckBufferEqual_LogLimit(t *testing.T) {
	var logs bytes.Buffer
	input := make([]byte, 2*maxLoggedMismatches)
	output := bytes.Repeat([]byte{0xFF}, len(input))

	err := checkBufferEqual(newBufferLogger(&logs), input, output)
	assert.ErrorContains(t, err, "20 offset mismatches")
	assert.Equal(t, maxLoggedMismatches, strings.Count(logs.String(), "Offset mismatch"))
}

func TestVerifyOutput_ConsoleOutput(t *testing.T) {
	err := VerifyOutput(context.Background(), log.NewTestLogger(t), options.Program{}, testCode)
	assert.ErrorContains(t, err, "can not verify console output")
}

func TestVerifyOutput(t *testing.T) {
	if !nasm.IsInstalled() {
		t.Skip("nasm is not installed")
	}

	_, output := disassemble(t, testCode)

	asmFile := filepath.Join(t.TempDir(), "test.asm")
	assert.NoError(t, os.WriteFile(asmFile, output, 0600))

	opts := options.Program{Parameters: options.Parameters{Output: asmFile}}
	assert.NoError(t, VerifyOutput(context.Background(), log.NewTestLogger(t), opts, testCode))

	var logs bytes.Buffer
	modified := bytes.Clone(testCode)
	modified[1] = 0xDA
	err := VerifyOutput(context.Background(), newBufferLogger(&logs), opts, modified)
	assert.ErrorContains(t, err, "1 offset mismatches")
	assert.Contains(t, logs.String(), "Offset mismatch")
}
