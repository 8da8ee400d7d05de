// Package assembler validates a stream of lexed 6502 assembly tokens
// against the shared opcode table, and compiles a validated stream into
// bytes.
package assembler

import "github.com/n-ulricksen/sixtwo/internal/cpu"

// TokenKind tags which variant of Token is populated. Each operand kind
// maps to exactly one cpu.AddressingMode, enforced by AddressingMode below.
type TokenKind uint8

const (
	TokenLabel TokenKind = iota
	TokenOpCode
	TokenAccumulator
	TokenImplied
	TokenImmediate
	TokenRelative
	TokenZeroPage
	TokenZeroPageX
	TokenZeroPageY
	TokenAbsolute
	TokenAbsoluteX
	TokenAbsoluteY
	TokenIndirect
	TokenIndirectX
	TokenIndirectY
)

// ImmediateBase records the radix an immediate literal was written in, so
// a pretty-printer could round-trip it; the validator itself only cares
// about Value.
type ImmediateBase uint8

const (
	Base10 ImmediateBase = iota
	Base16
)

// Token is one semantic element of a source line: a label definition, an
// opcode mnemonic, or an operand shaped for one specific addressing mode.
type Token struct {
	Kind  TokenKind
	Label string
	Op    cpu.Mnemonic
	Value uint16
	Base  ImmediateBase
}

// modeByKind maps each operand TokenKind to its single addressing mode.
// TokenLabel and TokenOpCode have no addressing mode.
var modeByKind = map[TokenKind]cpu.AddressingMode{
	TokenAccumulator: cpu.Accumulator,
	TokenImplied:     cpu.Implied,
	TokenImmediate:   cpu.Immediate,
	TokenRelative:    cpu.Relative,
	TokenZeroPage:    cpu.ZeroPage,
	TokenZeroPageX:   cpu.ZeroPageX,
	TokenZeroPageY:   cpu.ZeroPageY,
	TokenAbsolute:    cpu.Absolute,
	TokenAbsoluteX:   cpu.AbsoluteX,
	TokenAbsoluteY:   cpu.AbsoluteY,
	TokenIndirect:    cpu.Indirect,
	TokenIndirectX:   cpu.IndirectX,
	TokenIndirectY:   cpu.IndirectY,
}

// AddressingMode returns the addressing mode this operand token shape
// implies, and whether the token is an operand token at all (Label and
// OpCode tokens return false).
func (t Token) AddressingMode() (cpu.AddressingMode, bool) {
	mode, ok := modeByKind[t.Kind]
	return mode, ok
}

// IsOperand reports whether this token shape carries an operand value
// (i.e. every operand kind except Implied/Accumulator, which have none).
func (t Token) IsOperand() bool {
	switch t.Kind {
	case TokenLabel, TokenOpCode, TokenImplied, TokenAccumulator:
		return false
	default:
		return true
	}
}
