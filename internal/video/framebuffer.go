// Package video turns the cabinet's 1-bit-per-pixel framebuffer into
// displayable RGBA frames and drives an output backend, grounded on the
// teacher's VideoOutput interface (video_interface.go) and its
// ebiten/headless backend split.
package video

import "image"

// ScreenWidth and ScreenHeight are the cabinet's physical display
// dimensions after the 90-degree rotation described in spec.md: 224
// columns wide, 256 rows tall.
const (
	ScreenWidth  = 224
	ScreenHeight = 256
)

var onColor = [4]byte{0xFF, 0xFF, 0xFF, 0xFF}
var offColor = [4]byte{0x00, 0x00, 0x00, 0xFF}

// Decode converts the 7,168-byte framebuffer region into an RGBA image,
// applying the column-major, 90-degree-counterclockwise addressing
// spec.md describes: the byte at col*32+row/8 holds bit row%8 for pixel
// (col, 255-row).
func Decode(mem []byte) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, ScreenWidth, ScreenHeight))
	for col := 0; col < ScreenWidth; col++ {
		for row := 0; row < ScreenHeight; row++ {
			byteIdx := col*32 + row/8
			bit := (mem[byteIdx] >> uint(row%8)) & 1

			color := offColor
			if bit != 0 {
				color = onColor
			}

			x, y := col, ScreenHeight-1-row
			offset := img.PixOffset(x, y)
			copy(img.Pix[offset:offset+4], color[:])
		}
	}
	return img
}
