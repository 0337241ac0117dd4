package i8086

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsupportedInstruction is returned for bytes that do not start a supported MOV encoding.
	ErrUnsupportedInstruction = errors.New("unsupported instruction")
	// ErrTruncatedStream is returned when the stream ends inside an instruction.
	ErrTruncatedStream = errors.New("truncated stream")
)

// DecodeError describes a failure to decode the instruction starting at Offset.
type DecodeError struct {
	Offset int
	Opcode byte
	Err    error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decoding opcode 0x%02X at offset %d: %v", e.Opcode, e.Offset, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
