package verification

import (
	"fmt"

	"github.com/retroenv/disasm8086/internal/program"
	"github.com/retroenv/retrogolib/log"
	"golang.org/x/arch/x86/x86asm"
)

// decoderMode selects 16 bit real mode operand and address sizes.
const decoderMode = 16

// CrossCheck decodes the bytes of every disassembled instruction with an independent
// x86 decoder and checks that it is a mov instruction of the same length.
func CrossCheck(logger *log.Logger, app *program.Program) error {
	var diffs int

	for i := range app.Offsets {
		offset := &app.Offsets[i]
		if !offset.IsType(program.CodeOffset) {
			continue
		}

		if err := checkInstruction(offset); err != nil {
			diffs++
			if diffs <= maxLoggedMismatches {
				logger.Error("Instruction mismatch",
					log.Hex("offset", offset.Address),
					log.String("code", offset.Code),
					log.Err(err))
			}
		}
	}

	if diffs == 0 {
		return nil
	}
	return fmt.Errorf("%d instruction mismatches", diffs)
}

func checkInstruction(offset *program.Offset) error {
	inst, err := x86asm.Decode(offset.Data, decoderMode)
	if err != nil {
		return fmt.Errorf("decoding instruction: %w", err)
	}
	if inst.Op != x86asm.MOV {
		return fmt.Errorf("unexpected opcode %s", inst.Op)
	}
	if inst.Len != len(offset.Data) {
		return fmt.Errorf("mismatched lengths, %d != %d", len(offset.Data), inst.Len)
	}
	return nil
}
