package cpu

// statusBit names the packed bit position of each flag. Bit 5 is unused
// and conventionally read back as 1.
type statusBit byte

const (
	bitC statusBit = 1 << iota // Carry
	bitZ                       // Zero
	bitI                       // Interrupt Disable
	bitD                       // Decimal Mode
	bitB                       // Break Command
	bitUnused
	bitV // Overflow
	bitN // Sign/Negative
)

// Flags holds the seven independent 6502 status flags as a struct of
// booleans, readable at a glance; Pack/Unpack convert to and from the
// single-byte representation the stack and BRK/PHP/PLP/RTI instructions
// operate on.
type Flags struct {
	Carry             bool
	Zero              bool
	InterruptDisabled bool
	Decimal           bool
	Break             bool
	Overflow          bool
	Sign              bool
}

// Pack returns the flags packed into one byte, bit layout N V - B D I Z C.
// The unused bit is always set, matching the 6502's PHP/BRK convention.
func (f Flags) Pack() byte {
	var b byte
	if f.Carry {
		b |= byte(bitC)
	}
	if f.Zero {
		b |= byte(bitZ)
	}
	if f.InterruptDisabled {
		b |= byte(bitI)
	}
	if f.Decimal {
		b |= byte(bitD)
	}
	if f.Break {
		b |= byte(bitB)
	}
	b |= byte(bitUnused)
	if f.Overflow {
		b |= byte(bitV)
	}
	if f.Sign {
		b |= byte(bitN)
	}
	return b
}

// Unpack populates the flags from a packed status byte.
func Unpack(b byte) Flags {
	return Flags{
		Carry:             b&byte(bitC) != 0,
		Zero:              b&byte(bitZ) != 0,
		InterruptDisabled: b&byte(bitI) != 0,
		Decimal:           b&byte(bitD) != 0,
		Break:             b&byte(bitB) != 0,
		Overflow:          b&byte(bitV) != 0,
		Sign:              b&byte(bitN) != 0,
	}
}

// setZN sets the Zero and Sign flags from the given result byte, the
// common post-condition shared by nearly every data-moving instruction.
func (f *Flags) setZN(result byte) {
	f.Zero = result == 0
	f.Sign = result&0x80 != 0
}
