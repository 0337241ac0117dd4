// Package writer implements the assembly file writing of the disassembler.
package writer

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/retroenv/disasm8086/internal/options"
	"github.com/retroenv/disasm8086/internal/program"
)

// Header is the directive that starts every output, it selects 16 bit code in nasm.
const Header = "bits 16"

const dataBytesPerLine = 16

// ErrSink is returned when an output sink fails to accept a line.
var ErrSink = errors.New("sink failure")

// Writer writes the disassembled program line by line to all of its sinks.
// Every line is handed to the sinks before the call returns, no output is held back.
type Writer struct {
	options options.Disassembler
	writer  io.Writer

	headerWritten bool
}

// New creates a new writer that outputs to all passed sinks in order.
func New(options options.Disassembler, sinks ...io.Writer) *Writer {
	return &Writer{
		options: options,
		writer:  io.MultiWriter(sinks...),
	}
}

// WriteHeader writes the bits directive followed by an empty line.
// The header is only written once.
func (w *Writer) WriteHeader() error {
	if w.headerWritten {
		return nil
	}
	w.headerWritten = true

	if _, err := fmt.Fprintf(w.writer, "%s\n\n", Header); err != nil {
		return fmt.Errorf("%w: writing header: %w", ErrSink, err)
	}
	return nil
}

// WriteOffset writes a decoded instruction or a data line for unsupported bytes.
func (w *Writer) WriteOffset(offset program.Offset) error {
	code := offset.Code
	if offset.IsType(program.DataOffset) {
		code = formatData(offset.Data)
	}

	comment, err := w.comment(offset)
	if err != nil {
		return err
	}

	if err := w.writeLine(code, comment); err != nil {
		return fmt.Errorf("%w: writing offset %d: %w", ErrSink, offset.Address, err)
	}
	return nil
}

func (w *Writer) writeLine(code, comment string) error {
	if comment == "" {
		if _, err := fmt.Fprintf(w.writer, "%s\n", code); err != nil {
			return fmt.Errorf("writing line: %w", err)
		}
	} else {
		if _, err := fmt.Fprintf(w.writer, "%-30s ; %s\n", code, comment); err != nil {
			return fmt.Errorf("writing line: %w", err)
		}
	}
	return nil
}

// comment builds the optional line comment from the enabled comment options.
func (w *Writer) comment(offset program.Offset) (string, error) {
	var parts []string

	if w.options.OffsetComments {
		parts = append(parts, fmt.Sprintf("$%04X", offset.Address))
	}
	if w.options.HexComments {
		hexComment, err := offset.HexCodeComment()
		if err != nil {
			return "", fmt.Errorf("getting hex comment: %w", err)
		}
		parts = append(parts, hexComment)
	}
	if offset.Comment != "" {
		parts = append(parts, offset.Comment)
	}

	return strings.Join(parts, "  "), nil
}

// formatData returns a db directive for the data bytes, wrapping after dataBytesPerLine bytes.
func formatData(data []byte) string {
	buf := &strings.Builder{}

	for i, b := range data {
		switch {
		case i == 0:
			buf.WriteString("db ")
		case i%dataBytesPerLine == 0:
			buf.WriteString("\ndb ")
		default:
			buf.WriteString(", ")
		}
		fmt.Fprintf(buf, "0x%02x", b)
	}

	return buf.String()
}
