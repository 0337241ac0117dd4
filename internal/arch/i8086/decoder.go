package i8086

import (
	"fmt"

	"github.com/retroenv/disasm8086/internal/cursor"
	"github.com/retroenv/retrogolib/log"
)

// Reader provides sequential access to the instruction stream.
type Reader interface {
	// Next returns the next byte and advances the stream.
	Next() byte
	// NextWord returns the next two bytes as a little endian word.
	NextWord() uint16
	// Remaining returns the number of unread bytes.
	Remaining() int
	// Offset returns the offset of the next byte.
	Offset() int
	// Consumed returns the bytes read since the given offset.
	Consumed(start int) []byte
}

// Compile-time check to ensure the stream cursor can be decoded from.
var _ Reader = (*cursor.Cursor)(nil)

// Decoder decodes MOV instructions of the 8086 instruction set.
type Decoder struct {
	logger *log.Logger
}

// New returns a new decoder.
func New(logger *log.Logger) *Decoder {
	return &Decoder{
		logger: logger,
	}
}

// Decode reads exactly one instruction from the reader.
// On failure the returned error is a *DecodeError wrapping ErrUnsupportedInstruction
// or ErrTruncatedStream, the reader has advanced by the bytes that were consumed
// while trying to match an encoding.
func (d *Decoder) Decode(r Reader) (Instruction, error) {
	start := r.Offset()
	b1 := r.Next()

	var (
		ins Instruction
		err error
	)

	// the order matters, the patterns are checked from the most specific bits
	switch {
	case b1&0b1111_1100 == 0b1000_1000:
		ins, err = d.decodeRegisterMemory(r, b1)
	case b1&0b1111_1110 == 0b1100_0110:
		ins, err = d.decodeImmediateToRegisterMemory(r, b1)
	case b1&0b1111_0000 == 0b1011_0000:
		ins, err = d.decodeImmediateToRegister(r, b1)
	case b1&0b1111_1100 == 0b1010_0000:
		ins, err = d.decodeAccumulator(r, b1)
	default:
		err = ErrUnsupportedInstruction
	}
	if err != nil {
		return Instruction{}, &DecodeError{
			Offset: start,
			Opcode: b1,
			Err:    err,
		}
	}

	ins.Mnemonic = MovMnemonic
	ins.Offset = start
	ins.Bytes = r.Consumed(start)
	return ins, nil
}

// require checks that the reader still holds the given number of bytes.
func require(r Reader, count int) error {
	if remaining := r.Remaining(); remaining < count {
		return fmt.Errorf("%w: %d more bytes needed at offset %d, %d available",
			ErrTruncatedStream, count, r.Offset(), remaining)
	}
	return nil
}
