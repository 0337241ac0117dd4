package i8086

import (
	"fmt"
	"strconv"
)

// Operand is a resolved instruction operand.
type Operand interface {
	String() string
}

var (
	_ Operand = Register{}
	_ Operand = Memory{}
	_ Operand = Immediate{}
)

// Register is a general purpose register operand.
type Register struct {
	Width Width
	Code  byte
}

func (r Register) String() string {
	return RegisterName(r.Width, r.Code)
}

// Mode is the addressing mode class of a memory operand.
type Mode uint8

const (
	NoDisplacement Mode = iota
	Displacement8
	Displacement16
	DirectAddress
)

// directAddressRM is the r/m code that selects a direct address when mod is 00.
const directAddressRM = 0b110

// Memory is a memory operand. Displacement is sign extended from its encoded width,
// Address is only used by the DirectAddress mode.
type Memory struct {
	Mode         Mode
	RM           byte
	Displacement int16
	Address      uint16
}

func (m Memory) String() string {
	switch m.Mode {
	case DirectAddress:
		return "[" + strconv.FormatUint(uint64(m.Address), 10) + "]"

	case Displacement8:
		if m.Displacement == 0 {
			return "[" + BaseExpression(m.RM) + "]"
		}
		return "[" + BaseExpression(m.RM) + formatDisplacement(m.Displacement) + "]"

	case Displacement16:
		// a zero 16 bit displacement is still printed
		return "[" + BaseExpression(m.RM) + formatDisplacement(m.Displacement) + "]"

	default:
		return "[" + BaseExpression(m.RM) + "]"
	}
}

// formatDisplacement renders the sign as an operator followed by the magnitude.
func formatDisplacement(displacement int16) string {
	value := int(displacement)
	if value < 0 {
		return fmt.Sprintf(" - %d", -value)
	}
	return fmt.Sprintf(" + %d", value)
}

// Immediate is a constant operand encoded in the instruction.
type Immediate struct {
	Width  Width
	Value  uint16
	Signed bool // render as two's complement value of the width
}

func (i Immediate) String() string {
	if !i.Signed {
		if i.Width == Byte {
			return strconv.FormatUint(uint64(uint8(i.Value)), 10)
		}
		return strconv.FormatUint(uint64(i.Value), 10)
	}

	if i.Width == Byte {
		return strconv.FormatInt(int64(int8(uint8(i.Value))), 10)
	}
	return strconv.FormatInt(int64(int16(i.Value)), 10)
}
