package cpu

import "testing"

func TestResolveOperandImmediate(t *testing.T) {
	var m Memory
	m.WriteByte(0x10, 0x42)
	op := ResolveOperand(&m, 0x0F, Immediate, 0, 0)
	if op.Kind != OperandImmediate || op.Value != 0x42 {
		t.Errorf("Immediate operand = %+v, want Value=0x42", op)
	}
}

func TestResolveOperandZeroPageX(t *testing.T) {
	var m Memory
	m.WriteByte(0x01, 0xF0)
	op := ResolveOperand(&m, 0x00, ZeroPageX, 0x20, 0)
	// 0xF0 + 0x20 wraps within the zero page to 0x10.
	if op.Kind != OperandMemory || op.Addr != 0x0010 {
		t.Errorf("ZeroPageX operand = %+v, want Addr=0x0010 (wrapped)", op)
	}
}

func TestResolveOperandAbsoluteY(t *testing.T) {
	var m Memory
	m.WriteWord(0x01, 0x1234)
	op := ResolveOperand(&m, 0x00, AbsoluteY, 0, 0x10)
	if op.Kind != OperandMemory || op.Addr != 0x1244 {
		t.Errorf("AbsoluteY operand = %+v, want Addr=0x1244", op)
	}
}

func TestResolveOperandIndirectX(t *testing.T) {
	var m Memory
	// Pointer table entry at (0x20 + X) & 0xFF = 0x24.
	m.WriteByte(0x24, 0x00)
	m.WriteByte(0x25, 0x03)
	m.WriteByte(0x01, 0x20)
	op := ResolveOperand(&m, 0x00, IndirectX, 0x04, 0)
	if op.Kind != OperandMemory || op.Addr != 0x0300 {
		t.Errorf("IndirectX operand = %+v, want Addr=0x0300", op)
	}
}

func TestResolveOperandIndirectY(t *testing.T) {
	var m Memory
	m.WriteByte(0x20, 0x00)
	m.WriteByte(0x21, 0x03)
	m.WriteByte(0x01, 0x20)
	op := ResolveOperand(&m, 0x00, IndirectY, 0, 0x05)
	if op.Kind != OperandMemory || op.Addr != 0x0305 {
		t.Errorf("IndirectY operand = %+v, want Addr=0x0305", op)
	}
}

func TestResolveOperandIndirectZeroPageWrap(t *testing.T) {
	var m Memory
	// Pointer at zero-page offset 0xFF: high byte must wrap to 0x00, not
	// spill into page one.
	m.WriteByte(0xFF, 0x00)
	m.WriteByte(0x00, 0x03)
	m.WriteByte(0x01, 0xFF)
	op := ResolveOperand(&m, 0x00, IndirectX, 0, 0)
	if op.Kind != OperandMemory || op.Addr != 0x0300 {
		t.Errorf("IndirectX zero-page wrap operand = %+v, want Addr=0x0300", op)
	}
}

func TestResolveOperandIndirectJMPPageBug(t *testing.T) {
	var m Memory
	m.WriteByte(0x02FF, 0x34)
	m.WriteByte(0x0200, 0x12)
	m.WriteByte(0x0300, 0x56)
	m.WriteWord(0x01, 0x02FF)
	op := ResolveOperand(&m, 0x00, Indirect, 0, 0)
	if op.Kind != OperandMemory || op.Addr != 0x1234 {
		t.Errorf("Indirect operand = %+v, want Addr=0x1234 (page-wrap bug)", op)
	}
}

func TestOperandBytesPerMode(t *testing.T) {
	tests := []struct {
		mode AddressingMode
		want int
	}{
		{Implied, 0}, {Accumulator, 0},
		{Immediate, 1}, {Relative, 1}, {ZeroPage, 1}, {ZeroPageX, 1}, {ZeroPageY, 1},
		{IndirectX, 1}, {IndirectY, 1},
		{Absolute, 2}, {AbsoluteX, 2}, {AbsoluteY, 2}, {Indirect, 2},
	}
	for _, tt := range tests {
		if got := tt.mode.OperandBytes(); got != tt.want {
			t.Errorf("%s.OperandBytes() = %d, want %d", tt.mode, got, tt.want)
		}
	}
}
