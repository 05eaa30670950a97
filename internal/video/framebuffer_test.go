package video

import "testing"

func TestDecodeTopPixelOfColumnZero(t *testing.T) {
	mem := make([]byte, 7168)
	mem[0] = 0x01 // row 0, col 0: bit 0 set
	img := Decode(mem)
	r, g, b, a := img.At(0, ScreenHeight-1).RGBA()
	if r == 0 || g == 0 || b == 0 || a == 0 {
		t.Fatalf("pixel (0,%d) = %d,%d,%d,%d, want white", ScreenHeight-1, r, g, b, a)
	}
}

func TestDecodeUnsetBitIsBlack(t *testing.T) {
	mem := make([]byte, 7168)
	img := Decode(mem)
	r, g, b, _ := img.At(0, ScreenHeight-1).RGBA()
	if r != 0 || g != 0 || b != 0 {
		t.Fatalf("pixel = %d,%d,%d, want black", r, g, b)
	}
}

func TestDecodeImageDimensions(t *testing.T) {
	mem := make([]byte, 7168)
	img := Decode(mem)
	bounds := img.Bounds()
	if bounds.Dx() != ScreenWidth || bounds.Dy() != ScreenHeight {
		t.Fatalf("dimensions = %dx%d, want %dx%d", bounds.Dx(), bounds.Dy(), ScreenWidth, ScreenHeight)
	}
}

func TestDecodeRotation(t *testing.T) {
	mem := make([]byte, 7168)
	// col=5, row=10: byte index 5*32 + 10/8 = 160+1=161, bit 10%8=2
	mem[161] = 1 << 2
	img := Decode(mem)
	r, _, _, _ := img.At(5, ScreenHeight-1-10).RGBA()
	if r == 0 {
		t.Fatal("expected lit pixel at rotated coordinate (5, 245)")
	}
}
