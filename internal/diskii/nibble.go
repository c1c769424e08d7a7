// Package diskii implements the Disk ][ floppy controller: a
// peripheral.Card presenting two Drives, each lazily nibblizing a raw
// DOS-3.3-order disk image into a 6-and-2 encoded byte stream the CPU
// polls one byte at a time.
//
// Grounded on original_source/peripheral_card/disk.rs.
package diskii

const (
	tracksPerDisk   = 70
	sectorsPerTrack = 16
	nibblesPerSect  = 0x200

	rawTracks   = 35
	rawSectSize = 256
	rawDiskSize = rawTracks * sectorsPerTrack * rawSectSize

	diskVolume = 0xFE
)

// tab1 extracts the bottom two bits of each of three source bytes during
// the 256->342 byte 6-and-2 nibblize and reorders them into a byte whose
// high six bits TAB2 will translate into a legal disk byte.
var tab1 = [64]byte{
	0x00, 0x08, 0x04, 0x0C, 0x20, 0x28, 0x24, 0x2C, 0x10, 0x18, 0x14, 0x1C,
	0x30, 0x38, 0x34, 0x3C, 0x80, 0x88, 0x84, 0x8C, 0xA0, 0xA8, 0xA4, 0xAC,
	0x90, 0x98, 0x94, 0x9C, 0xB0, 0xB8, 0xB4, 0xBC, 0x40, 0x48, 0x44, 0x4C,
	0x60, 0x68, 0x64, 0x6C, 0x50, 0x58, 0x54, 0x5C, 0x70, 0x78, 0x74, 0x7C,
	0xC0, 0xC8, 0xC4, 0xCC, 0xE0, 0xE8, 0xE4, 0xEC, 0xD0, 0xD8, 0xD4, 0xDC,
	0xF0, 0xF8, 0xF4, 0xFC,
}

// tab2 translates the top six bits of a nibble (value>>2) into one of the
// 64 legal disk bytes in {$96..$FF}.
var tab2 = [64]byte{
	0x96, 0x97, 0x9A, 0x9B, 0x9D, 0x9E, 0x9F, 0xA6, 0xA7, 0xAB, 0xAC, 0xAD,
	0xAE, 0xAF, 0xB2, 0xB3, 0xB4, 0xB5, 0xB6, 0xB7, 0xB9, 0xBA, 0xBB, 0xBC,
	0xBD, 0xBE, 0xBF, 0xCB, 0xCD, 0xCE, 0xCF, 0xD3, 0xD6, 0xD7, 0xD9, 0xDA,
	0xDB, 0xDC, 0xDD, 0xDE, 0xDF, 0xE5, 0xE6, 0xE7, 0xE9, 0xEA, 0xEB, 0xEC,
	0xED, 0xEE, 0xEF, 0xF2, 0xF3, 0xF4, 0xF5, 0xF6, 0xF7, 0xF9, 0xFA, 0xFB,
	0xFC, 0xFD, 0xFE, 0xFF,
}

// tab2Inverse maps a legal disk byte back to its 6-bit source value,
// built once from tab2 for the round-trip decoder exercised by tests.
var tab2Inverse = func() map[byte]byte {
	m := make(map[byte]byte, len(tab2))
	for i, b := range tab2 {
		m[b] = byte(i)
	}
	return m
}()

// phys is the DOS-3.3 sector skew table: DOS sector N is stored at
// physical sector phys[N].
var phys = [sectorsPerTrack]byte{
	0x00, 0x0D, 0x0B, 0x09, 0x07, 0x05, 0x03, 0x01,
	0x0E, 0x0C, 0x0A, 0x08, 0x06, 0x04, 0x02, 0x0F,
}

func nibOdd(b byte) byte  { return (b >> 1) | 0xAA }
func nibEven(b byte) byte { return b | 0xAA }

// nibblizeTrack encodes one physical track's 16 logical sectors of raw
// 256-byte data into the 512-byte-per-sector on-disk nibble stream
// described in spec.md section 4.3.
func nibblizeTrack(track [sectorsPerTrack][rawSectSize]byte, trackNum int) [sectorsPerTrack][nibblesPerSect]byte {
	var out [sectorsPerTrack][nibblesPerSect]byte
	for sectorNum := 0; sectorNum < sectorsPerTrack; sectorNum++ {
		physSector := phys[sectorNum]
		idx := 0
		sector := &out[sectorNum]

		for i := 0; i < 16; i++ {
			sector[idx] = 0xFF
			idx++
		}

		sector[idx], idx = 0xD5, idx+1
		sector[idx], idx = 0xAA, idx+1
		sector[idx], idx = 0x96, idx+1

		sector[idx], idx = nibOdd(diskVolume), idx+1
		sector[idx], idx = nibEven(diskVolume), idx+1
		sector[idx], idx = nibOdd(byte(trackNum)), idx+1
		sector[idx], idx = nibEven(byte(trackNum)), idx+1
		sector[idx], idx = nibOdd(physSector), idx+1
		sector[idx], idx = nibEven(physSector), idx+1

		checksum := byte(diskVolume) ^ byte(trackNum) ^ physSector
		sector[idx], idx = nibOdd(checksum), idx+1
		sector[idx], idx = nibEven(checksum), idx+1

		sector[idx], idx = 0xDE, idx+1
		sector[idx], idx = 0xAA, idx+1
		sector[idx], idx = 0xEB, idx+1

		for i := 0; i < 8; i++ {
			sector[idx] = 0xFF
			idx++
		}

		sector[idx], idx = 0xD5, idx+1
		sector[idx], idx = 0xAA, idx+1
		sector[idx], idx = 0xAD, idx+1

		encodeDataBody(sector, idx, track[sectorNum])
		idx += 343

		sector[idx], idx = 0xDE, idx+1
		sector[idx], idx = 0xAA, idx+1
		sector[idx] = 0xEB
	}
	return out
}

// encodeDataBody writes the 343-byte 6-and-2 data body for one 256-byte
// source sector starting at out[base:].
func encodeDataBody(out *[nibblesPerSect]byte, base int, src [rawSectSize]byte) {
	var buf [344]byte
	copy(buf[0x56:0x56+0x100], src[:])

	for off := 0; off < 0x56; off++ {
		i := (buf[off+0x56] & 3) | (buf[off+0xAC]&3)<<2 | (buf[off+0x102]&3)<<4
		buf[off] = tab1[i]
	}

	out[base] = buf[0]
	for off := 1; off < 343; off++ {
		out[base+off] = buf[off-1] ^ buf[off]
	}
	for off := 0; off < 343; off++ {
		out[base+off] = tab2[out[base+off]>>2]
	}
}

// tab1ShiftedInverse inverts the permutation i -> tab1[i]>>2 (tab1's
// entries are always multiples of 4, so no information is lost in that
// shift) — used by decodeDataBody to recover the three packed dibits an
// aux nibble encodes.
var tab1ShiftedInverse = func() map[byte]byte {
	m := make(map[byte]byte, len(tab1))
	for i, b := range tab1 {
		m[b>>2] = byte(i)
	}
	return m
}()

// decodeDataBody is the inverse of encodeDataBody: given the 343
// TAB2-translated bytes starting at base, it recovers the original
// 256-byte sector. It exists to exercise the round-trip law in spec.md
// section 8; the emulator itself never decodes a disk image, only
// encodes one on load.
//
// encodeDataBody's two transforms both commute with a 6-bit truncation:
// tab1's entries are all multiples of 4 (so shifting right 2 loses
// nothing), and XOR commutes with a logical right shift bit-for-bit.
// That means TAB2's index at position k is exactly hi[k-1] XOR hi[k],
// where hi[k] = buf[k]>>2 is the 6-bit value actually carried by
// position k — so the cumulative XOR can be undone directly in 6-bit
// space without ever reconstructing the intermediate 8-bit buf array.
func decodeDataBody(nibbles [nibblesPerSect]byte, base int) [rawSectSize]byte {
	const auxLen = 0x56 // 86

	m := make([]byte, 343)
	for off := 0; off < 343; off++ {
		m[off] = tab2Inverse[nibbles[base+off]]
	}

	hi := make([]byte, 342)
	hi[0] = m[0]
	for k := 1; k < 342; k++ {
		hi[k] = m[k] ^ hi[k-1]
	}

	var out [rawSectSize]byte
	for off := 0; off < 0x100; off++ {
		out[off] = hi[auxLen+off] << 2
	}
	for off := 0; off < auxLen; off++ {
		i := tab1ShiftedInverse[hi[off]]
		out[off] |= i & 3
		if off+auxLen < rawSectSize {
			out[off+auxLen] |= (i >> 2) & 3
		}
		if off+2*auxLen < rawSectSize {
			out[off+2*auxLen] |= (i >> 4) & 3
		}
	}
	return out
}
