package diskii

import "io"

// Drive models one floppy drive: the nibblized disk image (once loaded),
// the read/write head's phase position, and the streaming read cursor
// into the currently seeked track/sector.
type Drive struct {
	sectors *[tracksPerDisk][sectorsPerTrack][nibblesPerSect]byte

	track int
	// sector/idx form the streaming-read cursor described in spec.md
	// section 4.3: sector starts at 15, so the stream begins with the
	// sector stored in slot 15; each $00 tail-pad byte moves the cursor
	// down one slot, wrapping modulo 16.
	sector int
	idx    int

	magnets uint32
	phase   int
}

// NewDrive returns an empty drive with no disk loaded; reads from an
// empty drive return $FF, matching an empty-slot bus read.
func NewDrive() *Drive {
	return &Drive{sector: 15}
}

// AddDisk loads a raw 143,360-byte DOS-3.3-order disk image and nibblizes
// it into the 70x16x512 on-disk byte stream. A short read leaves the
// unread tail of a sector's source bytes at zero, which TAB2 encodes as
// $96 (TAB2[0]) per spec.md section 8.
func (d *Drive) AddDisk(r io.Reader) error {
	var raw [rawDiskSize]byte
	_, err := io.ReadFull(r, raw[:])
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return err
	}

	var data [tracksPerDisk][sectorsPerTrack][nibblesPerSect]byte
	for trackNum := 0; trackNum < rawTracks; trackNum++ {
		var track [sectorsPerTrack][rawSectSize]byte
		for sectorNum := 0; sectorNum < sectorsPerTrack; sectorNum++ {
			off := (trackNum*sectorsPerTrack + sectorNum) * rawSectSize
			copy(track[sectorNum][:], raw[off:off+rawSectSize])
		}
		data[trackNum] = nibblizeTrack(track, trackNum)
	}
	// Physical tracks 35..69 represent the head positions between the
	// disk's recorded tracks and stay zeroed, as spec.md section 4.3
	// specifies.
	d.sectors = &data
	return nil
}

// stepMotor toggles the requested stepper magnet and advances or retracts
// the head phase according to spec.md section 4.2's rule, clamping the
// phase at 0 and 140.
func (d *Drive) stepMotor(magnet uint, enable bool) {
	if enable {
		d.magnets |= 1 << magnet
	} else {
		d.magnets &^= 1 << magnet
	}

	if d.magnets&(1<<((d.phase+1)%4)) != 0 && d.phase < 140 {
		d.phase++
	}
	if d.magnets&(1<<((d.phase+3)%4)) != 0 && d.phase > 0 {
		d.phase--
	}

	d.track = (d.phase + 1) / 2
}

// Phase reports the current quarter-track head position, 0..140.
func (d *Drive) Phase() int { return d.phase }

// Track reports the current whole track, (phase+1)/2.
func (d *Drive) Track() int { return d.track }

// readByte returns the next byte of the streaming nibble read, advancing
// to the next sector (wrapping modulo 16, per the DOS-3.3 sector
// decrement) whenever a $00 tail-pad byte is encountered.
func (d *Drive) readByte() uint8 {
	if d.sectors == nil {
		return 0xFF
	}
	ret := d.sectors[d.track][d.sector][d.idx]
	if ret == 0x00 {
		d.sector = (d.sector + 15) % sectorsPerTrack
		d.idx = 0
		ret = d.sectors[d.track][d.sector][d.idx]
	}
	d.idx++
	return ret
}
