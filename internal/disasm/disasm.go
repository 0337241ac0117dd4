// Package disasm implements the sequential 8086 disassembly driver.
package disasm

import (
	"context"
	"errors"
	"fmt"

	"github.com/retroenv/disasm8086/internal/arch/i8086"
	"github.com/retroenv/disasm8086/internal/cursor"
	"github.com/retroenv/disasm8086/internal/options"
	"github.com/retroenv/disasm8086/internal/program"
	"github.com/retroenv/disasm8086/internal/writer"
	"github.com/retroenv/retrogolib/log"
)

const unsupportedComment = "unsupported instruction"

// Disasm implements a disassembler.
type Disasm struct {
	logger  *log.Logger
	options options.Disassembler

	cursor  *cursor.Cursor
	decoder *i8086.Decoder
}

// New creates a new disassembler for the given instruction stream.
func New(logger *log.Logger, options options.Disassembler, data []byte) *Disasm {
	return &Disasm{
		logger:  logger,
		options: options,
		cursor:  cursor.New(data),
		decoder: i8086.New(logger),
	}
}

// Process disassembles the whole stream from start to end and writes every
// decoded instruction to the writer as soon as it is decoded.
// On error the returned program contains all offsets that were written so far.
func (dis *Disasm) Process(ctx context.Context, w *writer.Writer) (*program.Program, error) {
	app := program.New(dis.cursor.Len())

	if err := w.WriteHeader(); err != nil {
		return app, fmt.Errorf("writing header: %w", err)
	}

	for dis.cursor.HasMore() {
		if err := ctx.Err(); err != nil {
			return app, fmt.Errorf("disassembling at offset %d: %w", dis.cursor.Offset(), err)
		}

		offset, err := dis.processOffset()
		if errors.Is(err, i8086.ErrUnsupportedInstruction) || offset.IsType(program.Unsupported) {
			app.Unsupported++
		}
		if err != nil {
			return app, err
		}

		app.Add(offset)

		if err := w.WriteOffset(offset); err != nil {
			return app, fmt.Errorf("writing output: %w", err)
		}
	}

	dis.logger.Debug("Disassembly finished",
		log.Int("size", app.Size),
		log.Int("instructions", app.Instructions()),
		log.Int("unsupported", app.Unsupported))

	return app, nil
}

// processOffset decodes the instruction at the current stream position.
// Unsupported instructions are reported and returned as data offsets unless the
// strict policy is set, in which case the decode error is returned.
func (dis *Disasm) processOffset() (program.Offset, error) {
	start := dis.cursor.Offset()

	ins, err := dis.decoder.Decode(dis.cursor)
	if err == nil {
		offset := program.Offset{
			Address: ins.Offset,
			Data:    ins.Bytes,
			Code:    ins.String(),
		}
		offset.SetType(program.CodeOffset)
		return offset, nil
	}

	if !errors.Is(err, i8086.ErrUnsupportedInstruction) {
		return program.Offset{}, fmt.Errorf("decoding instruction: %w", err)
	}

	data := dis.cursor.Consumed(start)
	dis.logger.Warn("Unsupported instruction",
		log.Hex("offset", start),
		log.Hex("opcode", data[0]),
		log.Int("bytes", len(data)),
		log.String("policy", string(dis.options.Unsupported)))

	if dis.options.Unsupported == options.Strict {
		return program.Offset{}, fmt.Errorf("decoding instruction: %w", err)
	}

	offset := program.Offset{
		Address: start,
		Data:    data,
		Comment: unsupportedComment,
	}
	offset.SetType(program.DataOffset)
	offset.SetType(program.Unsupported)
	return offset, nil
}
