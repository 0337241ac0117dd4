package i8086

// Width is the operand size selected by the w bit of an instruction.
type Width uint8

const (
	Byte Width = 0
	Word Width = 1
)

// Keyword returns the NASM size keyword of the width.
func (w Width) Keyword() string {
	if w == Word {
		return "word"
	}
	return "byte"
}

// registerNames is indexed by the w bit prepended to the 3 bit register code.
var registerNames = [16]string{
	"al", "cl", "dl", "bl", "ah", "ch", "dh", "bh",
	"ax", "cx", "dx", "bx", "sp", "bp", "si", "di",
}

// baseExpressions is indexed by the r/m field for all mod values except 11.
var baseExpressions = [8]string{
	"bx + si",
	"bx + di",
	"bp + si",
	"bp + di",
	"si",
	"di",
	"bp",
	"bx",
}

// RegisterName returns the register mnemonic for the given width and register code.
func RegisterName(w Width, code byte) string {
	return registerNames[int(w&1)<<3|int(code&0b111)]
}

// BaseExpression returns the effective address base of a memory operand.
func BaseExpression(rm byte) string {
	return baseExpressions[rm&0b111]
}
