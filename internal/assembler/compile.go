package assembler

import "github.com/n-ulricksen/sixtwo/internal/cpu"

// CodeSegment is a validated program together with the base address it
// will be loaded at, ready to be turned into bytes.
type CodeSegment struct {
	Base  uint16
	Lines [][]Token
}

// NewCodeSegment validates program and wraps it for compilation. The
// returned CodeSegment shares program's token slices; callers should not
// mutate program afterward.
func NewCodeSegment(base uint16, program [][]Token) (*CodeSegment, error) {
	if err := Validate(program); err != nil {
		return nil, err
	}
	return &CodeSegment{Base: base, Lines: program}, nil
}

// Assemble validates tokens and compiles them to bytes loaded at base in
// one call, the path the CLI takes from lexed source to CPU.Load-ready
// bytes.
func Assemble(base uint16, tokens [][]Token) ([]byte, error) {
	seg, err := NewCodeSegment(base, tokens)
	if err != nil {
		return nil, err
	}
	return seg.Bytes()
}

// instruction is one line stripped of its label token, with the address
// it will be emitted at.
type instruction struct {
	addr     uint16
	mnemonic cpu.Mnemonic
	operand  *Token
}

// Bytes assembles the segment into machine code, resolving relative
// branch targets against label addresses. Non-branch operands must
// already carry a numeric Value; Bytes does not resolve absolute-address
// labels, matching the validator's assumption that bare identifiers name
// branch targets only.
func (c *CodeSegment) Bytes() ([]byte, error) {
	labels := make(map[string]uint16)
	instrs := make([]instruction, 0, len(c.Lines))

	addr := c.Base
	for _, line := range c.Lines {
		idx := 0
		if idx < len(line) && line[idx].Kind == TokenLabel {
			labels[line[idx].Label] = addr
			idx++
		}

		mnemonic := line[idx].Op
		idx++

		var operand *Token
		if idx < len(line) {
			operand = &line[idx]
		}

		mode := cpu.Implied
		if operand != nil {
			mode, _ = operand.AddressingMode()
		}
		desc, ok := cpu.LookupByMnemonicAndMode(mnemonic, mode)
		if !ok {
			return nil, &InvalidOpcodeAddressingModeCombinationError{
				Op:   mnemonic.String(),
				Mode: mode.String(),
			}
		}

		instrs = append(instrs, instruction{addr: addr, mnemonic: mnemonic, operand: operand})
		addr += uint16(desc.Length)
	}

	out := make([]byte, 0, int(addr-c.Base))
	for _, in := range instrs {
		mode := cpu.Implied
		if in.operand != nil {
			mode, _ = in.operand.AddressingMode()
		}
		desc, _ := cpu.LookupByMnemonicAndMode(in.mnemonic, mode)

		out = append(out, desc.Code)

		if in.operand == nil {
			continue
		}

		if in.operand.Kind == TokenRelative && in.operand.Label != "" {
			target, ok := labels[in.operand.Label]
			if !ok {
				return nil, &UndefinedLabelError{Label: in.operand.Label}
			}
			nextAddr := in.addr + uint16(desc.Length)
			offset := int32(target) - int32(nextAddr)
			if offset < -128 || offset > 127 {
				return nil, &UndefinedLabelError{Label: in.operand.Label}
			}
			out = append(out, byte(int8(offset)))
			continue
		}

		v := in.operand.Value
		switch desc.Length {
		case 2:
			out = append(out, byte(v))
		case 3:
			out = append(out, byte(v), byte(v>>8))
		}
	}

	return out, nil
}
