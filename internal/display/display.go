// Package display is the host window: a faiface/pixel/pixelgl window that
// implements video.PixelSink, generalized from the teacher's
// internal/pixel.Window (NewWindow/DrawGraphics pattern) from a fixed
// 64x32 monochrome CHIP-8 framebuffer to the Apple II's 280x192 NTSC-color
// scan-out, accumulating one imdraw buffer per frame and presenting it
// scaled to the window's logical size - the same "build up primitives,
// draw once, update" shape chippy uses, just with a richer source format.
package display

import (
	"fmt"

	"github.com/faiface/pixel"
	"github.com/faiface/pixel/imdraw"
	"github.com/faiface/pixel/pixelgl"
	"golang.org/x/image/colornames"

	"github.com/mwhittaker/apple2emu/internal/video"
)

const (
	logicalWidth  = video.ScreenW
	logicalHeight = video.ScreenH
	defaultScale  = 3
)

// Window embeds a pixelgl window and implements video.PixelSink by
// accumulating imdraw primitives for one frame and presenting them
// scaled up from the emulator's native 280x192 resolution.
type Window struct {
	*pixelgl.Window

	draw   *imdraw.IMDraw
	scaleX float64
	scaleY float64
}

// NewWindow opens a host window sized to a whole-number multiple of the
// Apple II's native video resolution.
func NewWindow() (*Window, error) {
	cfg := pixelgl.WindowConfig{
		Title:  "apple2",
		Bounds: pixel.R(0, 0, logicalWidth*defaultScale, logicalHeight*defaultScale),
		VSync:  true,
	}
	w, err := pixelgl.NewWindow(cfg)
	if err != nil {
		return nil, fmt.Errorf("error creating new window: %v", err)
	}
	return &Window{
		Window: w,
		draw:   imdraw.New(nil),
		scaleX: defaultScale,
		scaleY: defaultScale,
	}, nil
}

// toRGB converts a video.RGB into the pixel library's color type.
func toRGB(c video.RGB) pixel.RGBA {
	return pixel.RGB(float64(c.R)/255, float64(c.G)/255, float64(c.B)/255)
}

// toWindow maps a native-resolution coordinate (origin top-left, y down)
// to window coordinates (origin bottom-left, y up).
func (w *Window) toWindow(x, y int) (float64, float64) {
	wx := float64(x) * w.scaleX
	wy := float64(logicalHeight-y) * w.scaleY
	return wx, wy
}

// FillRect implements video.PixelSink.
func (w *Window) FillRect(x, y, width, height int, c video.RGB) {
	w.draw.Color = toRGB(c)
	x0, y0 := w.toWindow(x, y)
	x1, y1 := w.toWindow(x+width, y+height)
	w.draw.Push(pixel.V(x0, y0), pixel.V(x1, y1))
	w.draw.Rectangle(0)
}

// SetPixel implements video.PixelSink.
func (w *Window) SetPixel(x, y int, c video.RGB) {
	w.FillRect(x, y, 1, 1, c)
}

// BlitGlyph implements video.PixelSink. col/row select one of the 128
// character-window cells (spec.md section 4.4's text mode addressing);
// col 0-7 is the normal-display half, col 8-15 is inverse, both sharing
// the same 64 underlying shapes. The cell's 6-bit screen code (0x00 "@"
// ... 0x3F "?") is XORed with 0x20 to index the ASCII-ordered charset.
func (w *Window) BlitGlyph(col, row, dstX, dstY int) {
	inverse := col >= 8
	shape := glyphBitmap((row + (col%8)*8) ^ 0x20)

	fg, bg := video.RGB{R: 255, G: 255, B: 255}, video.RGB{R: 0, G: 0, B: 0}
	if inverse {
		fg, bg = bg, fg
	}

	w.FillRect(dstX, dstY, video.GlyphW, video.GlyphH, bg)
	for r := 0; r < video.GlyphH; r++ {
		bits := shape[r]
		for c := 0; c < video.GlyphW; c++ {
			if bits&(1<<uint(video.GlyphW-1-c)) != 0 {
				w.SetPixel(dstX+c, dstY+r, fg)
			}
		}
	}
}

// Present implements video.PixelSink: clears the window, draws the
// frame's accumulated primitives scaled to the window bounds, flips, and
// starts a fresh primitive buffer for the next frame.
func (w *Window) Present() {
	w.Clear(colornames.Black)
	w.draw.Draw(w)
	w.Update()
	w.draw = imdraw.New(nil)
}
