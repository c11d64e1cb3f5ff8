package render

import (
	"image/color"
	"testing"

	"gol-web/internal/core"
)

func TestFillBinaryRGBA(t *testing.T) {
	cells := []uint8{1, 0, 0, 1}
	buf := make([]byte, 4*len(cells))
	fillBinaryRGBA(buf, cells, DefaultPalette.Live, DefaultPalette.Dead)
	for i, c := range cells {
		want := DefaultPalette.Dead
		if c != 0 {
			want = DefaultPalette.Live
		}
		got := color.RGBA{R: buf[i*4], G: buf[i*4+1], B: buf[i*4+2], A: buf[i*4+3]}
		if got != want {
			t.Fatalf("pixel %d = %v, want %v", i, got, want)
		}
	}
}

func TestSurfaceSize(t *testing.T) {
	w, h := SurfaceSize(core.Size{W: 30, H: 18}, 13)
	if w != 390 || h != 234 {
		t.Fatalf("SurfaceSize = %dx%d, want 390x234", w, h)
	}
}

func TestParseHex(t *testing.T) {
	c, err := ParseHex("#3730a3")
	if err != nil {
		t.Fatal(err)
	}
	if c != DefaultPalette.Live {
		t.Fatalf("ParseHex = %v", c)
	}
	if c, err := ParseHex("fff"); err != nil || c != (color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}) {
		t.Fatalf("ParseHex(fff) = %v, %v", c, err)
	}
	for _, bad := range []string{"", "#12", "#zzzzzz", "#1234567"} {
		if _, err := ParseHex(bad); err == nil {
			t.Fatalf("ParseHex(%q) should fail", bad)
		}
	}
}
