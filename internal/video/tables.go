package video

// textRowMap is the Apple II's interleaved text/lo-res row-to-RAM-offset
// table: row y lives at scr_base + textRowMap[y].
var textRowMap = [TextHeight]int{
	0x000, 0x080, 0x100, 0x180, 0x200, 0x280, 0x300, 0x380,
	0x028, 0x0A8, 0x128, 0x1A8, 0x228, 0x2A8, 0x328, 0x3A8,
	0x050, 0x0D0, 0x150, 0x1D0, 0x250, 0x2D0, 0x350, 0x3D0,
}

// hiresRowOffset computes the interleaved hi-res row-to-RAM-offset for
// row r using the standard Apple formula, rather than tabulating all 192
// entries by hand.
func hiresRowOffset(r int) int {
	return ((r & 7) << 10) | (((r >> 3) & 7) << 7) | ((r >> 6) * 0x28)
}

// loResColorMap is the 16-entry NTSC color approximation for the lo-res
// and mixed-mode color nibbles.
var loResColorMap = [16]RGB{
	{0x00, 0x00, 0x00},
	{0xD0, 0x00, 0x30},
	{0x00, 0x00, 0x80},
	{0xFF, 0x00, 0xFF},
	{0x00, 0x80, 0x00},
	{0x80, 0x80, 0x80},
	{0x00, 0x00, 0xFF},
	{0x60, 0xA0, 0xFF},
	{0x80, 0x50, 0x00},
	{0xFF, 0x80, 0x00},
	{0xC0, 0xC0, 0xC0},
	{0xFF, 0x90, 0x80},
	{0x00, 0xFF, 0x00},
	{0xFF, 0xFF, 0x00},
	{0x40, 0xFF, 0x90},
	{0xFF, 0xFF, 0xFF},
}

var (
	colorWhite  = RGB{0xFF, 0xFF, 0xFF}
	colorBlack  = RGB{0x00, 0x00, 0x00}
	colorGreen  = RGB{0x20, 0xC0, 0x00}
	colorViolet = RGB{0xA0, 0x00, 0xFF}
	colorBlue   = RGB{0x00, 0x80, 0xFF}
	colorRed    = RGB{0xF0, 0x50, 0x00}
)
