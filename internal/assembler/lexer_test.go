package assembler

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/n-ulricksen/sixtwo/internal/cpu"
)

func TestLexLabelAndOpcode(t *testing.T) {
	got, err := Lex([]string{"MAIN: LDA #$10"})
	if !assert.NoError(t, err) {
		return
	}
	want := []Token{
		{Kind: TokenLabel, Label: "MAIN"},
		{Kind: TokenOpCode, Op: cpu.LDA},
		{Kind: TokenImmediate, Value: 0x10, Base: Base16},
	}
	assert.Equal(t, want, got[0])
}

func TestLexStripsComments(t *testing.T) {
	got, err := Lex([]string{"LDA #$10 ; load the thing", "; whole line comment", "   "})
	if !assert.NoError(t, err) {
		return
	}
	assert.Len(t, got, 1)
	assert.Equal(t, cpu.LDA, got[0][0].Op)
}

func TestLexImpliedInstruction(t *testing.T) {
	got, err := Lex([]string{"NOP"})
	if !assert.NoError(t, err) {
		return
	}
	assert.Equal(t, []Token{{Kind: TokenOpCode, Op: cpu.NOP}}, got[0])
}

func TestLexAccumulator(t *testing.T) {
	got, err := Lex([]string{"ASL A"})
	if !assert.NoError(t, err) {
		return
	}
	assert.Equal(t, []Token{
		{Kind: TokenOpCode, Op: cpu.ASL},
		{Kind: TokenAccumulator},
	}, got[0])
}

func TestLexIndirectModes(t *testing.T) {
	got, err := Lex([]string{"LDA ($10,X)", "LDA ($10),Y", "JMP ($1234)"})
	if !assert.NoError(t, err) {
		return
	}
	assert.Equal(t, TokenIndirectX, got[0][1].Kind)
	assert.Equal(t, TokenIndirectY, got[1][1].Kind)
	assert.Equal(t, TokenIndirect, got[2][1].Kind)
	assert.Equal(t, uint16(0x1234), got[2][1].Value)
}

func TestLexZeroPageVsAbsolute(t *testing.T) {
	got, err := Lex([]string{"LDA $05", "LDA $1234"})
	if !assert.NoError(t, err) {
		return
	}
	assert.Equal(t, TokenZeroPage, got[0][1].Kind)
	assert.Equal(t, TokenAbsolute, got[1][1].Kind)
}

func TestLexBranchLabelOperand(t *testing.T) {
	got, err := Lex([]string{"BEQ DONE"})
	if !assert.NoError(t, err) {
		return
	}
	assert.Equal(t, Token{Kind: TokenRelative, Label: "DONE"}, got[0][1])
}

func TestLexUnknownMnemonicErrors(t *testing.T) {
	_, err := Lex([]string{"FOO #$10"})
	var lexErr *LexError
	assert.ErrorAs(t, err, &lexErr)
}

func TestLexUnrecognizedOperandErrors(t *testing.T) {
	_, err := Lex([]string{"LDA $$$$"})
	var lexErr *LexError
	assert.ErrorAs(t, err, &lexErr)
}
