package assembler

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/n-ulricksen/sixtwo/internal/cpu"
)

func TestCompileNumericOperands(t *testing.T) {
	program := [][]Token{
		{{Kind: TokenOpCode, Op: cpu.LDA}, {Kind: TokenImmediate, Value: 0x05, Base: Base16}},
		{{Kind: TokenOpCode, Op: cpu.ADC}, {Kind: TokenImmediate, Value: 0x03, Base: Base16}},
	}
	seg, err := NewCodeSegment(0xC000, program)
	if !assert.NoError(t, err) {
		return
	}
	got, err := seg.Bytes()
	if !assert.NoError(t, err) {
		return
	}
	assert.Equal(t, []byte{0xA9, 0x05, 0x69, 0x03}, got)
}

func TestCompileAbsoluteOperand(t *testing.T) {
	program := [][]Token{
		{{Kind: TokenOpCode, Op: cpu.LDA}, {Kind: TokenImmediate, Value: 0x20, Base: Base16}},
		{{Kind: TokenOpCode, Op: cpu.STA}, {Kind: TokenAbsolute, Value: 0x2000}},
	}
	seg, err := NewCodeSegment(0xC000, program)
	if !assert.NoError(t, err) {
		return
	}
	got, err := seg.Bytes()
	if !assert.NoError(t, err) {
		return
	}
	assert.Equal(t, []byte{0xA9, 0x20, 0x8D, 0x00, 0x20}, got)
}

func TestCompileResolvesBranchLabel(t *testing.T) {
	// LDA #$FE; ADC #$01; BCC DONE; LDA #$00; DONE: NOP
	program := [][]Token{
		{{Kind: TokenOpCode, Op: cpu.LDA}, {Kind: TokenImmediate, Value: 0xFE, Base: Base16}},
		{{Kind: TokenOpCode, Op: cpu.ADC}, {Kind: TokenImmediate, Value: 0x01, Base: Base16}},
		{{Kind: TokenOpCode, Op: cpu.BCC}, {Kind: TokenRelative, Label: "DONE"}},
		{{Kind: TokenOpCode, Op: cpu.LDA}, {Kind: TokenImmediate, Value: 0x00, Base: Base16}},
		{{Kind: TokenLabel, Label: "DONE"}, {Kind: TokenOpCode, Op: cpu.NOP}},
	}
	seg, err := NewCodeSegment(0xC000, program)
	if !assert.NoError(t, err) {
		return
	}
	got, err := seg.Bytes()
	if !assert.NoError(t, err) {
		return
	}
	// BCC's operand is the offset from 0xC006 (the byte after BCC's own
	// two-byte encoding) to DONE at 0xC008, the NOP right after the LDA.
	assert.Equal(t, []byte{0xA9, 0xFE, 0x69, 0x01, 0x90, 0x02, 0xA9, 0x00, 0xEA}, got)
}

func TestCompileUndefinedLabelErrors(t *testing.T) {
	program := [][]Token{
		{{Kind: TokenOpCode, Op: cpu.BEQ}, {Kind: TokenRelative, Label: "NOWHERE"}},
	}
	seg, err := NewCodeSegment(0xC000, program)
	if !assert.NoError(t, err) {
		return
	}
	_, err = seg.Bytes()
	var undef *UndefinedLabelError
	assert.ErrorAs(t, err, &undef)
}
