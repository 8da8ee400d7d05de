// Package inspector is an interactive terminal viewer for a running CPU:
// step one instruction per keypress and watch registers, flags, and the
// surrounding memory page update live. It never mutates CPU state beyond
// calling Step.
package inspector

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/davecgh/go-spew/spew"

	"github.com/n-ulricksen/sixtwo/internal/cpu"
)

const pageWidth = 16

var headerStyle = lipgloss.NewStyle().Bold(true)
var currentByteStyle = lipgloss.NewStyle().Reverse(true)

// model is the bubbletea model wrapping a read-only view of a *cpu.CPU.
type model struct {
	cpu    *cpu.CPU
	prevPC uint16
	err    error
	halted bool
}

// New constructs an inspector model over an already-loaded CPU.
func New(c *cpu.CPU) tea.Model {
	return model{cpu: c, prevPC: c.Registers.PC}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case " ", "n", "j":
		if m.halted {
			return m, nil
		}
		m.prevPC = m.cpu.Registers.PC
		if err := m.cpu.Step(); err != nil {
			m.err = err
			m.halted = true
		}
	}
	return m, nil
}

// renderPage renders one 16-byte row of memory as a line, highlighting
// the byte at PC.
func (m model) renderPage(start uint16) string {
	s := fmt.Sprintf("%04x | ", start)
	for i := 0; i < pageWidth; i++ {
		addr := start + uint16(i)
		b := m.cpu.Memory.ReadByte(addr)
		cell := fmt.Sprintf(" %02x ", b)
		if addr == m.cpu.Registers.PC {
			cell = currentByteStyle.Render(cell)
		}
		s += cell
	}
	return s
}

// pageTable renders the first 16-byte row of the zero page and of the
// stack page, then four 16-byte rows around PC: the row before PC's row,
// PC's row, and the two after it.
func (m model) pageTable() string {
	header := headerStyle.Render("addr | " + strings.Repeat(" xx ", pageWidth))
	rows := []string{header}

	pcPage := m.cpu.Registers.PC &^ 0x0F
	offsets := []uint16{0x0000, 0x0100}
	for i := -1; i <= 2; i++ {
		offsets = append(offsets, pcPage+uint16(i*pageWidth))
	}

	seen := make(map[uint16]bool)
	for _, off := range offsets {
		if seen[off] {
			continue
		}
		seen[off] = true
		rows = append(rows, m.renderPage(off))
	}
	return strings.Join(rows, "\n")
}

func (m model) status() string {
	f := m.cpu.Flags
	flagLine := "N V _ B D I Z C\n"
	for _, bit := range []bool{f.Sign, f.Overflow, true, f.Break, f.Decimal, f.InterruptDisabled, f.Zero, f.Carry} {
		if bit {
			flagLine += "1 "
		} else {
			flagLine += "0 "
		}
	}
	return fmt.Sprintf(`
 PC: %#04x (was %#04x)
  A: %#02x
  X: %#02x
  Y: %#02x
 SP: %#02x
%s`,
		m.cpu.Registers.PC, m.prevPC,
		m.cpu.Registers.A, m.cpu.Registers.X, m.cpu.Registers.Y, m.cpu.Registers.SP,
		flagLine,
	)
}

func (m model) View() string {
	desc, ok := cpu.LookupByByte(m.cpu.Memory.ReadByte(m.cpu.Registers.PC))
	next := "???"
	if ok {
		next = spew.Sdump(desc)
	}

	body := lipgloss.JoinVertical(
		lipgloss.Left,
		lipgloss.JoinHorizontal(lipgloss.Top, m.pageTable(), m.status()),
		"",
		next,
	)
	if m.err != nil {
		body += fmt.Sprintf("\nhalted: %v\n", m.err)
	}
	return body
}

// Run starts the interactive inspector and blocks until the user quits.
func Run(c *cpu.CPU) error {
	_, err := tea.NewProgram(New(c)).Run()
	return err
}
