// Package program represents a disassembled 8086 program.
package program

import (
	"fmt"
	"strings"
)

// Offset defines the content of an offset in a program that can represent data or code.
type Offset struct {
	Address int    // file offset of the first byte
	Data    []byte // data byte or all opcode bytes that are part of the instruction

	Type OffsetType

	Code    string // asm output of this offset
	Comment string
}

// HexCodeComment returns the data bytes of the offset as hex values.
func (o Offset) HexCodeComment() (string, error) {
	buf := &strings.Builder{}
	for i, b := range o.Data {
		if i > 0 {
			buf.WriteByte(' ')
		}
		if _, err := fmt.Fprintf(buf, "%02X", b); err != nil {
			return "", fmt.Errorf("writing hex comment: %w", err)
		}
	}
	return buf.String(), nil
}

// Program defines a disassembled program as an ordered list of offsets.
type Program struct {
	Offsets []Offset

	Size        int // size of the input in bytes
	Unsupported int // count of unsupported instructions that were skipped
}

// New creates a new program for an input of the given size.
func New(size int) *Program {
	return &Program{
		Size: size,
	}
}

// Add appends an offset to the program.
func (p *Program) Add(offset Offset) {
	p.Offsets = append(p.Offsets, offset)
}

// Instructions returns the number of decoded instructions.
func (p *Program) Instructions() int {
	count := 0
	for i := range p.Offsets {
		if p.Offsets[i].IsType(CodeOffset) {
			count++
		}
	}
	return count
}
