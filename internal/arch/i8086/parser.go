package i8086

import (
	"fmt"

	"github.com/retroenv/retrogolib/log"
)

const (
	modNoDisplacement = 0b00
	modDisplacement8  = 0b01
	modDisplacement16 = 0b10
	modRegister       = 0b11
)

// decodeRegisterMemory decodes 100010dw mod reg r/m [disp-lo] [disp-hi].
func (d *Decoder) decodeRegisterMemory(r Reader, b1 byte) (Instruction, error) {
	if err := require(r, 1); err != nil {
		return Instruction{}, err
	}
	b2 := r.Next()

	direction := (b1 >> 1) & 1
	w := Width(b1 & 1)
	mod := b2 >> 6
	reg := (b2 >> 3) & 0b111
	rm := b2 & 0b111
	d.logFields(b1, b2, direction, w, mod, reg, rm)

	regOperand := Register{Width: w, Code: reg}
	rmOperand, err := readRegisterOrMemory(r, mod, rm, w)
	if err != nil {
		return Instruction{}, err
	}

	ins := Instruction{
		Form: RegisterMemoryToFromRegister,
	}
	if direction == 1 {
		ins.Destination = regOperand
		ins.Source = rmOperand
	} else {
		ins.Destination = rmOperand
		ins.Source = regOperand
	}
	return ins, nil
}

// decodeImmediateToRegisterMemory decodes 1100011w mod 000 r/m [disp-lo] [disp-hi] data [data].
func (d *Decoder) decodeImmediateToRegisterMemory(r Reader, b1 byte) (Instruction, error) {
	if err := require(r, 1); err != nil {
		return Instruction{}, err
	}
	b2 := r.Next()

	w := Width(b1 & 1)
	mod := b2 >> 6
	reg := (b2 >> 3) & 0b111
	rm := b2 & 0b111
	d.logFields(b1, b2, 0, w, mod, reg, rm)

	// the reg field is an opcode extension, only 000 is a mov
	if reg != 0 {
		return Instruction{}, fmt.Errorf("%w: opcode extension %03b", ErrUnsupportedInstruction, reg)
	}

	destination, err := readRegisterOrMemory(r, mod, rm, w)
	if err != nil {
		return Instruction{}, err
	}

	immediate, err := readImmediate(r, w, true)
	if err != nil {
		return Instruction{}, err
	}

	ins := Instruction{
		Form:        ImmediateToRegisterMemory,
		Destination: destination,
		Source:      immediate,
	}
	if _, ok := destination.(Memory); ok {
		ins.SizeKeyword = w.Keyword()
	}
	return ins, nil
}

// decodeImmediateToRegister decodes 1011wreg data [data].
func (d *Decoder) decodeImmediateToRegister(r Reader, b1 byte) (Instruction, error) {
	w := Width((b1 >> 3) & 1)
	reg := b1 & 0b111

	d.logger.Debug("Instruction fields",
		log.Hex("opcode", b1),
		log.Uint8("w", uint8(w)),
		log.Uint8("reg", reg))

	immediate, err := readImmediate(r, w, false)
	if err != nil {
		return Instruction{}, err
	}

	return Instruction{
		Form:        ImmediateToRegister,
		Destination: Register{Width: w, Code: reg},
		Source:      immediate,
	}, nil
}

// decodeAccumulator decodes 101000dw addr-lo addr-hi.
func (d *Decoder) decodeAccumulator(r Reader, b1 byte) (Instruction, error) {
	direction := (b1 >> 1) & 1
	w := Width(b1 & 1)

	d.logger.Debug("Instruction fields",
		log.Hex("opcode", b1),
		log.Uint8("d", direction),
		log.Uint8("w", uint8(w)))

	if err := require(r, 2); err != nil {
		return Instruction{}, err
	}
	memory := Memory{
		Mode:    DirectAddress,
		Address: r.NextWord(),
	}
	accumulator := Register{Width: w, Code: 0}

	if direction == 1 {
		return Instruction{
			Form:        AccumulatorToMemory,
			Destination: memory,
			Source:      accumulator,
		}, nil
	}
	return Instruction{
		Form:        MemoryToAccumulator,
		Destination: accumulator,
		Source:      memory,
	}, nil
}

// readRegisterOrMemory resolves the r/m operand selected by mod and reads its displacement bytes.
func readRegisterOrMemory(r Reader, mod, rm byte, w Width) (Operand, error) {
	switch mod {
	case modRegister:
		return Register{Width: w, Code: rm}, nil

	case modNoDisplacement:
		if rm != directAddressRM {
			return Memory{Mode: NoDisplacement, RM: rm}, nil
		}
		if err := require(r, 2); err != nil {
			return nil, err
		}
		return Memory{Mode: DirectAddress, Address: r.NextWord()}, nil

	case modDisplacement8:
		if err := require(r, 1); err != nil {
			return nil, err
		}
		displacement := int16(int8(r.Next()))
		return Memory{Mode: Displacement8, RM: rm, Displacement: displacement}, nil

	default: // modDisplacement16
		if err := require(r, 2); err != nil {
			return nil, err
		}
		displacement := int16(r.NextWord())
		return Memory{Mode: Displacement16, RM: rm, Displacement: displacement}, nil
	}
}

// readImmediate reads a byte or little endian word immediate value.
func readImmediate(r Reader, w Width, signed bool) (Immediate, error) {
	if w == Byte {
		if err := require(r, 1); err != nil {
			return Immediate{}, err
		}
		return Immediate{Width: w, Value: uint16(r.Next()), Signed: signed}, nil
	}

	if err := require(r, 2); err != nil {
		return Immediate{}, err
	}
	return Immediate{Width: w, Value: r.NextWord(), Signed: signed}, nil
}

func (d *Decoder) logFields(b1, b2, direction byte, w Width, mod, reg, rm byte) {
	d.logger.Debug("Instruction fields",
		log.Hex("opcode", b1),
		log.Hex("operand", b2),
		log.Uint8("d", direction),
		log.Uint8("w", uint8(w)),
		log.Uint8("mod", mod),
		log.Uint8("reg", reg),
		log.Uint8("rm", rm))
}
