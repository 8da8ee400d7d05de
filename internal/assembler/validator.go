package assembler

import "github.com/n-ulricksen/sixtwo/internal/cpu"

// Validate checks a lexed program line-by-line against the shared opcode
// table: at most one label per line, a label must be followed by an
// instruction (not end-of-line), a mnemonic that needs an operand must
// get one (UnexpectedEolError if it doesn't), at most one operand token
// follows the mnemonic (ExtraTokensError otherwise), and the (mnemonic,
// addressing mode) pair named by that operand shape must be a legal 6502
// encoding. It does not resolve labels to addresses; that happens during
// compilation.
func Validate(program [][]Token) error {
	for i, line := range program {
		lineNo := i + 1
		if err := validateLine(lineNo, line); err != nil {
			return err
		}
	}
	return nil
}

func validateLine(lineNo int, tokens []Token) error {
	idx := 0

	if idx < len(tokens) && tokens[idx].Kind == TokenLabel {
		idx++
		if idx < len(tokens) && tokens[idx].Kind == TokenLabel {
			return &MultipleLabelsError{Line: lineNo}
		}
	}

	if idx >= len(tokens) {
		return &ExpectedInstructionError{Line: lineNo}
	}
	if tokens[idx].Kind != TokenOpCode {
		return &ExpectedInstructionError{Line: lineNo}
	}
	mnemonic := tokens[idx].Op
	idx++

	// Absence of an operand token means Implied/Accumulator mode, which is
	// only legal if the mnemonic has an Implied encoding. If it doesn't,
	// the mnemonic requires an operand this line never supplies: that is
	// the end-of-line-while-an-operand-is-required case spec.md §4.8
	// names UnexpectedEol, not a bad addressing-mode combination (there is
	// no mode to blame yet — there's no operand token at all).
	if idx >= len(tokens) {
		if _, ok := cpu.LookupByMnemonicAndMode(mnemonic, cpu.Implied); ok {
			return nil
		}
		return &UnexpectedEolError{Line: lineNo}
	}

	operand := tokens[idx]
	idx++

	if idx != len(tokens) {
		return &ExtraTokensError{Line: lineNo}
	}

	mode, ok := operand.AddressingMode()
	if !ok {
		return &ExpectedOperandError{Line: lineNo}
	}

	if _, ok := cpu.LookupByMnemonicAndMode(mnemonic, mode); !ok {
		return &InvalidOpcodeAddressingModeCombinationError{
			Line: lineNo,
			Op:   mnemonic.String(),
			Mode: mode.String(),
		}
	}

	return nil
}
