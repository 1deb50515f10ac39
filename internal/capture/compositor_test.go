package capture

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/caffeinepub/my-goals-2026/internal/models"
)

func testPhoto(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{uint8(x), uint8(y), 128, 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode test photo: %v", err)
	}
	return buf.Bytes()
}

func TestPolaroidCompose(t *testing.T) {
	raw := testPhoto(t, 320, 240)

	out, err := PolaroidCompositor{}.Compose(raw, models.March)
	if err != nil {
		t.Fatalf("Compose: %v", err)
	}

	card, err := png.Decode(bytes.NewReader(out))
	if err != nil {
		t.Fatalf("decode composite: %v", err)
	}
	bounds := card.Bounds()
	if bounds.Dx() <= 320 || bounds.Dy() <= 240 {
		t.Errorf("composite %dx%d not larger than the photo", bounds.Dx(), bounds.Dy())
	}
	// The frame corner is white card, not photo.
	r, g, b, _ := card.At(0, 0).RGBA()
	if r != 0xffff || g != 0xffff || b != 0xffff {
		t.Errorf("corner = %v, want white frame", card.At(0, 0))
	}
}

func TestPolaroidComposeRejectsGarbage(t *testing.T) {
	if _, err := (PolaroidCompositor{}).Compose([]byte("not an image"), models.March); err == nil {
		t.Fatal("expected decode error for garbage input")
	}
}
