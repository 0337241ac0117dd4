// Package i8086 decodes MOV instructions of the Intel 8086 into NASM syntax.
//
// # Supported encodings
//
//	100010dw mod reg r/m [disp]          register/memory to/from register
//	1100011w mod 000 r/m [disp] data     immediate to register/memory
//	1011wreg data                        immediate to register
//	1010000w addr-lo addr-hi             memory to accumulator
//	1010001w addr-lo addr-hi             accumulator to memory
//
// Multi byte values are little endian. Displacements and immediates are sign
// extended from their encoded width.
//
// # Memory operands
//
// The mod field selects the displacement size: none, 8 bit or 16 bit. For mod 00
// the r/m code 110 does not address [bp] but a direct 16 bit address. A zero
// 8 bit displacement is omitted from the output, a zero 16 bit displacement is
// printed as "+ 0". Negative displacements are printed as "- magnitude".
//
// An immediate stored to memory carries an explicit byte or word keyword, as
// the assembler can not infer the operand size from the memory operand.
//
// # Usage Example
//
//	c := cursor.New(data)
//	dec := i8086.New(logger)
//	for c.HasMore() {
//		ins, err := dec.Decode(c)
//		if err != nil {
//			return err
//		}
//		fmt.Println(ins)
//	}
package i8086
