package cpu

// DefaultLoadAddr is where Load places code when no address is given,
// matching the common 6502 dev-ROM convention.
const DefaultLoadAddr uint16 = 0xC000

// CPU models a MOS 6502: register file, status flags, and an embedded
// 64 KiB memory bus. A CPU is owned exclusively by one caller; Step is
// synchronous, non-blocking, and never suspends mid-instruction.
type CPU struct {
	Memory    Memory
	Registers Registers
	Flags     Flags

	// Instructions and Cycles are simple run bookkeeping, not a
	// cycle-accurate timing model: counting how much work happened is in
	// scope, scheduling it against a clock is not.
	Instructions uint64
	Cycles       uint64
}

// cycleTable holds the base clock-cycle cost of each addressing mode's
// access pattern. Used only for the bookkeeping counter above, never for
// scheduling or timing decisions.
var cycleTable = [...]byte{
	Implied: 2, Accumulator: 2, Immediate: 2, Relative: 2,
	ZeroPage: 3, ZeroPageX: 4, ZeroPageY: 4, Absolute: 4,
	AbsoluteX: 4, AbsoluteY: 4, Indirect: 5, IndirectX: 6, IndirectY: 5,
}

// New constructs an empty CPU: A, X, Y zeroed, SP at 0xFF, PC undefined
// until Load is called, all flags false, memory zero-initialized.
func New() *CPU {
	return &CPU{
		Registers: Registers{SP: 0xFF},
	}
}

// Load writes code into memory at addr (or DefaultLoadAddr if addr is
// nil) and points PC at the start of it. It fails if the code would run
// past the end of the address space.
func (c *CPU) Load(code []byte, addr *uint16) error {
	target := DefaultLoadAddr
	if addr != nil {
		target = *addr
	}
	if int(target)+len(code) > 0x10000 {
		return &CodeSegmentOutOfRangeError{Addr: target, Size: len(code)}
	}
	for i, b := range code {
		c.Memory.WriteByte(target+uint16(i), b)
	}
	c.Registers.PC = target
	return nil
}

// Step decodes and executes exactly one instruction at PC. On success PC
// is advanced by the opcode's declared length, after the instruction's
// own side effects (control-flow instructions set PC themselves and
// suppress the automatic advance). On failure PC is left at the opcode
// byte that could not be decoded.
func (c *CPU) Step() error {
	pc := c.Registers.PC
	opcodeByte := c.Memory.ReadByte(pc)

	desc, ok := LookupByByte(opcodeByte)
	if !ok {
		return &UnknownOpcodeError{PC: pc, Value: opcodeByte}
	}

	operand := ResolveOperand(&c.Memory, pc, desc.Mode, c.Registers.X, c.Registers.Y)
	nextPC := pc + uint16(desc.Length)

	jumped := c.execute(desc.Mnemonic, operand, pc, nextPC)
	if !jumped {
		c.Registers.PC = nextPC
	}

	c.Instructions++
	c.Cycles += uint64(cycleTable[desc.Mode])

	return nil
}

// StepN runs up to n instructions, stopping only when n is exhausted or
// Step itself errors. PC is a uint16 against a 65536-byte bus, so it can
// always address a byte; there is no early-stop condition to check.
func (c *CPU) StepN(n uint32) error {
	for i := uint32(0); i < n; i++ {
		if err := c.Step(); err != nil {
			return err
		}
	}
	return nil
}
