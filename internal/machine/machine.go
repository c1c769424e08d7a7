// Package machine wires the core packages (bus, langcard, diskii, video,
// cpu6502) and a host window/keyboard together into a runnable Apple ][,
// generalized from the teacher's internal/chip8.VM: a struct holding the
// wired subsystems, a constructor that loads ROM and disk images, and a
// Run loop paced by a time.Ticker exactly like chip8.VM.Run.
package machine

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/mwhittaker/apple2emu/internal/bus"
	"github.com/mwhittaker/apple2emu/internal/cpu6502"
	"github.com/mwhittaker/apple2emu/internal/diskii"
	"github.com/mwhittaker/apple2emu/internal/hostinput"
	"github.com/mwhittaker/apple2emu/internal/langcard"
	"github.com/mwhittaker/apple2emu/internal/video"
)

const (
	romSize = 0x3000

	refreshRate      = 60
	cyclesPerFrame   = 16666
	diskSlot         = 6
	languageCardSlot = 0
)

// Window is the subset of the host display the machine drives: a
// video.PixelSink for rendering and a hostinput.Window for polling input.
type Window interface {
	video.PixelSink
	hostinput.Window
}

// Machine is a fully wired Apple ][: bus, language card, disk controller,
// CPU, and the host window that renders it and feeds it keystrokes.
type Machine struct {
	bus    *bus.Mapper
	cpu    *cpu6502.CPU
	disk   *diskii.Card
	win    Window
	paused bool
}

// New constructs a Machine from a 12 KiB ROM image and a disk image
// reader, wiring a Language Card into slot 0 and a Disk ][ controller
// into slot 6 exactly as spec.md section 2 describes the stock
// configuration this core targets.
func New(rom [romSize]byte, disk io.Reader, win Window) (*Machine, error) {
	b := bus.New(rom)

	lc := langcard.New(rom)
	b.InsertCard(languageCardSlot, lc)

	dc := diskii.New(diskii.BootROM)
	if disk != nil {
		if err := dc.AddDisk(0, disk); err != nil {
			return nil, fmt.Errorf("loading disk image: %w", err)
		}
	}
	b.InsertCard(diskSlot, dc)

	return &Machine{
		bus:  b,
		cpu:  cpu6502.New(b),
		disk: dc,
		win:  win,
	}, nil
}

// LoadROMFile reads and validates a 12 288-byte ROM image from path,
// matching spec.md section 6's fixed-size requirement.
func LoadROMFile(path string) ([romSize]byte, error) {
	var rom [romSize]byte
	data, err := os.ReadFile(path)
	if err != nil {
		return rom, fmt.Errorf("reading ROM file: %w", err)
	}
	if len(data) != romSize {
		return rom, fmt.Errorf("ROM file %s is %d bytes, want exactly %d", path, len(data), romSize)
	}
	copy(rom[:], data)
	return rom, nil
}

// Run drives the frame loop: input drain, then render of the previous
// frame's state, then a fixed CPU cycle budget, at a fixed 60 Hz
// pace, matching spec.md section 5's ordering exactly.
func (m *Machine) Run() {
	frameDur := time.Second / refreshRate
	ticker := time.NewTicker(frameDur)
	defer ticker.Stop()

	var cycles uint64

	for range ticker.C {
		start := time.Now()

		ev := hostinput.Poll(m.win)
		if ev.Quit {
			fmt.Println("quit requested, shutting down...")
			return
		}
		if ev.Reset {
			m.cpu.Reset()
		}
		if ev.Pause {
			m.TogglePause()
		}
		if ev.HasKey {
			m.bus.SetKey(ev.Key)
		}

		video.Scanout(m.bus, m.win, cycles)

		if !m.paused {
			spent := uint64(0)
			for spent < cyclesPerFrame {
				spent += m.step()
			}
			cycles += spent
		}

		if elapsed := time.Since(start); elapsed > frameDur {
			fmt.Fprintf(os.Stderr, "warning: frame overran budget by %v\n", elapsed-frameDur)
		}
	}
}

// step executes one CPU instruction, turning a panic (this core's signal
// for "no opcode table entry", i.e. an illegal opcode) into a fatal exit
// per spec.md section 7's "CPU execution failure is fatal" policy.
func (m *Machine) step() (cycles uint64) {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "fatal CPU error: %v\n", r)
			os.Exit(1)
		}
	}()
	return m.cpu.Step()
}

// TogglePause flips whether the CPU advances each frame; rendering is
// unaffected, matching spec.md section 5's pause semantics.
func (m *Machine) TogglePause() {
	m.paused = !m.paused
}
