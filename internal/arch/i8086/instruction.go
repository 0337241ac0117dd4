package i8086

import "fmt"

// MovMnemonic is the mnemonic of all decoded instructions.
const MovMnemonic = "mov"

// Form identifies the MOV encoding that produced an instruction.
type Form uint8

const (
	RegisterMemoryToFromRegister Form = iota + 1
	ImmediateToRegisterMemory
	ImmediateToRegister
	MemoryToAccumulator
	AccumulatorToMemory
)

var formNames = map[Form]string{
	RegisterMemoryToFromRegister: "register/memory to/from register",
	ImmediateToRegisterMemory:    "immediate to register/memory",
	ImmediateToRegister:          "immediate to register",
	MemoryToAccumulator:          "memory to accumulator",
	AccumulatorToMemory:          "accumulator to memory",
}

func (f Form) String() string {
	if name, ok := formNames[f]; ok {
		return name
	}
	return fmt.Sprintf("form(%d)", uint8(f))
}

// Instruction is a decoded instruction. The operands are stored in output order,
// the direction bit has been applied when the instruction was built.
type Instruction struct {
	Form        Form
	Mnemonic    string
	Destination Operand
	Source      Operand
	SizeKeyword string // explicit operand size for an immediate stored to memory

	Offset int    // stream offset of the first instruction byte
	Bytes  []byte // all encoded bytes of the instruction
}

// String returns the instruction in NASM syntax.
func (i Instruction) String() string {
	source := i.Source.String()
	if i.SizeKeyword != "" {
		source = i.SizeKeyword + " " + source
	}
	return fmt.Sprintf("%s %s, %s", i.Mnemonic, i.Destination, source)
}
