// Package options contains the program options.
package options

// UnsupportedPolicy defines how the disassembler handles bytes that do not start
// a supported instruction.
type UnsupportedPolicy string

const (
	// Skip reports the byte, outputs it as data and continues with the next byte.
	Skip UnsupportedPolicy = "skip"
	// Strict aborts the disassembly at the first unsupported byte.
	Strict UnsupportedPolicy = "strict"
)

// Parameters contains file path options.
type Parameters struct {
	Input  string
	Output string // empty for console only output
	Batch  string // glob pattern of files to process
}

// Flags contains behavior options.
type Flags struct {
	Strict       bool
	AssembleTest bool // reassemble the output with nasm and compare it to the input
	CrossCheck   bool
	Debug        bool
	Quiet        bool
}

// OutputFlags contains output formatting options.
type OutputFlags struct {
	HexComments    bool
	OffsetComments bool
	NoConsole      bool
	NoColor        bool
}

// Program options of the disassembler.
type Program struct {
	Parameters
	Flags
	OutputFlags
}

// Disassembler defines options to control the disassembler and its output writer.
type Disassembler struct {
	Unsupported UnsupportedPolicy

	HexComments    bool
	OffsetComments bool
}

// NewDisassembler returns a new options instance with default options.
func NewDisassembler() Disassembler {
	return Disassembler{
		Unsupported: Skip,
	}
}
