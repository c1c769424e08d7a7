package diskii

import (
	"io"

	"github.com/mwhittaker/apple2emu/internal/peripheral"
)

// mode tracks whether the controller is presenting the current drive's
// nibble stream (Read) or discarding writes to it (Write, unimplemented
// per spec.md's write-register open question).
type mode int

const (
	modeRead mode = iota
	modeWrite
)

// Card is the Disk ][ controller: two Drives, a selected-drive index, a
// read/write mode, and a write-protect flag. It normally occupies slot 6.
//
// Grounded on original_source/peripheral_card/disk.rs.
type Card struct {
	peripheral.BaseCard

	drives       [2]*Drive
	driveNum     int
	mode         mode
	writeProtect bool
	rom          [256]byte
}

// New returns a Disk ][ controller with two empty drives and the given
// 256-byte boot ROM image (the contents of the slot's $Cs00-$CsFF window
// before the three fixed override bytes at $4C-$4E are applied).
func New(rom [256]byte) *Card {
	return &Card{
		drives: [2]*Drive{NewDrive(), NewDrive()},
		rom:    rom,
	}
}

// AddDisk loads a raw disk image into drive 0 or 1.
func (c *Card) AddDisk(drive int, r io.Reader) error {
	return c.drives[drive].AddDisk(r)
}

func (c *Card) currentDrive() *Drive {
	return c.drives[c.driveNum]
}

// Drive returns drive 0 or 1, for tests and diagnostics that want to
// inspect head position directly.
func (c *Card) Drive(n int) *Drive {
	return c.drives[n]
}

// ReadSwitch implements the $C0s0-$C0sF soft-switch table from spec.md
// section 4.3.
func (c *Card) ReadSwitch(swtch uint8) uint8 {
	switch {
	case swtch <= 0x07:
		magnet := uint(swtch >> 1)
		enable := swtch&1 != 0
		c.currentDrive().stepMotor(magnet, enable)
		return 0
	case swtch == 0x08 || swtch == 0x09:
		return 0
	case swtch == 0x0A:
		c.driveNum = 0
		return 0
	case swtch == 0x0B:
		c.driveNum = 1
		return 0
	case swtch == 0x0C:
		if c.mode == modeRead {
			return c.currentDrive().readByte()
		}
		return 0
	case swtch == 0x0D:
		return 0
	case swtch == 0x0E:
		c.mode = modeRead
		if c.writeProtect {
			return 0xFF
		}
		return 0
	case swtch == 0x0F:
		c.mode = modeWrite
		return 0
	default:
		return 0
	}
}

// WriteSwitch performs the identical state changes as ReadSwitch and
// discards the return value.
func (c *Card) WriteSwitch(swtch uint8, _ uint8) {
	c.ReadSwitch(swtch)
}

// ReadROM serves the slot's $Cs00-$CsFF window, overriding three bytes at
// $4C-$4E so the DOS-3.3 boot loader self-test passes regardless of the
// bundled ROM image's contents, per spec.md section 6.
func (c *Card) ReadROM(addr uint16) uint8 {
	romAddr := addr & 0xFF
	switch romAddr {
	case 0x4C:
		return 0xA9
	case 0x4D:
		return 0x00
	case 0x4E:
		return 0xEA
	default:
		return c.rom[romAddr]
	}
}
