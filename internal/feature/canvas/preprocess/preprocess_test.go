package preprocess

import (
	"image"
	"image/color"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"digit_canvas/internal/feature/canvas/domain/entity"
)

// newCanvas はcで塗りつぶした200x200キャンバスを生成します。
func newCanvas(c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, entity.CanvasWidth, entity.CanvasHeight))
	fillRect(img, img.Bounds(), c)
	return img
}

// fillRect はrの範囲をcで塗りつぶします。
func fillRect(img *image.RGBA, r image.Rectangle, c color.RGBA) {
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			img.SetRGBA(x, y, c)
		}
	}
}

var (
	white = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	black = color.RGBA{A: 255}
)

func filled(v float64) entity.FeatureVector {
	var out entity.FeatureVector
	for i := range out {
		out[i] = v
	}
	return out
}

func TestInkBoundingBox(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		setup func(img *image.RGBA)
		want  entity.BoundingBox
	}{
		{
			name:  "blank canvas uses fallback box",
			setup: func(img *image.RGBA) {},
			want:  entity.BoundingBox{MinX: 90, MaxX: 110, MinY: 90, MaxY: 110},
		},
		{
			name: "single pixel",
			setup: func(img *image.RGBA) {
				img.SetRGBA(10, 20, black)
			},
			want: entity.BoundingBox{MinX: 10, MaxX: 10, MinY: 20, MaxY: 20},
		},
		{
			name: "rectangle",
			setup: func(img *image.RGBA) {
				fillRect(img, image.Rect(30, 40, 60, 100), black)
			},
			want: entity.BoundingBox{MinX: 30, MaxX: 59, MinY: 40, MaxY: 99},
		},
		{
			name: "two separate strokes",
			setup: func(img *image.RGBA) {
				img.SetRGBA(5, 150, black)
				img.SetRGBA(180, 3, black)
			},
			want: entity.BoundingBox{MinX: 5, MaxX: 180, MinY: 3, MaxY: 150},
		},
		{
			name: "gray at threshold is not ink",
			setup: func(img *image.RGBA) {
				img.SetRGBA(50, 50, color.RGBA{R: 220, G: 220, B: 220, A: 255})
			},
			want: entity.FallbackBox,
		},
		{
			name: "gray just below threshold is ink",
			setup: func(img *image.RGBA) {
				img.SetRGBA(50, 60, color.RGBA{R: 219, G: 220, B: 220, A: 255})
			},
			want: entity.BoundingBox{MinX: 50, MaxX: 50, MinY: 60, MaxY: 60},
		},
		{
			name: "channels are averaged without weights",
			setup: func(img *image.RGBA) {
				// (255+255+0)/3 = 170
				img.SetRGBA(0, 199, color.RGBA{R: 255, G: 255, B: 0, A: 255})
			},
			want: entity.BoundingBox{MinX: 0, MaxX: 0, MinY: 199, MaxY: 199},
		},
		{
			name: "whole canvas",
			setup: func(img *image.RGBA) {
				fillRect(img, img.Bounds(), black)
			},
			want: entity.BoundingBox{MinX: 0, MaxX: 199, MinY: 0, MaxY: 199},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			img := newCanvas(white)
			tt.setup(img)

			assert.Equal(t, tt.want, InkBoundingBox(img))
		})
	}
}

func TestCenterOffset(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		box  entity.BoundingBox
		want image.Point
	}{
		{"fallback 21x21", entity.FallbackBox, image.Pt(89, 89)},
		{"even size", entity.BoundingBox{MinX: 0, MaxX: 29, MinY: 0, MaxY: 59}, image.Pt(85, 70)},
		{"full canvas", entity.BoundingBox{MinX: 0, MaxX: 199, MinY: 0, MaxY: 199}, image.Pt(0, 0)},
		{"single pixel", entity.BoundingBox{MinX: 7, MaxX: 7, MinY: 9, MaxY: 9}, image.Pt(99, 99)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, CenterOffset(tt.box))
		})
	}
}

func TestFloorHalf(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 89, floorHalf(179))
	assert.Equal(t, 90, floorHalf(180))
	assert.Equal(t, 0, floorHalf(0))
	assert.Equal(t, -1, floorHalf(-1))
	assert.Equal(t, -2, floorHalf(-3))
}

func TestRecenter(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		ink  image.Rectangle
	}{
		{"top-left stroke", image.Rect(5, 7, 35, 67)},
		{"bottom-right stroke", image.Rect(150, 170, 171, 200)},
		{"odd sized stroke", image.Rect(40, 40, 61, 43)},
		{"single pixel", image.Rect(0, 0, 1, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			src := newCanvas(white)
			fillRect(src, tt.ink, black)
			box := InkBoundingBox(src)

			out := Recenter(src, box)
			require.Equal(t, src.Bounds(), out.Bounds())

			got := InkBoundingBox(out)
			wantX := (entity.CanvasWidth - box.Width()) / 2
			wantY := (entity.CanvasHeight - box.Height()) / 2
			assert.Equal(t, wantX, got.MinX)
			assert.Equal(t, wantY, got.MinY)
			assert.Equal(t, box.Width(), got.Width())
			assert.Equal(t, box.Height(), got.Height())
		})
	}
}

func TestRecenter_LeavesSourceUntouched(t *testing.T) {
	t.Parallel()

	src := newCanvas(white)
	fillRect(src, image.Rect(10, 10, 20, 20), black)
	before := append([]uint8(nil), src.Pix...)

	_ = Recenter(src, InkBoundingBox(src))

	assert.Equal(t, before, src.Pix)
}

func TestRecenter_FallbackOnBlankIsWhite(t *testing.T) {
	t.Parallel()

	out := Recenter(newCanvas(white), entity.FallbackBox)

	assert.Equal(t, newCanvas(white).Pix, out.Pix)
}

func TestDownsample_UniformGray(t *testing.T) {
	t.Parallel()

	for _, g := range []uint8{0, 1, 17, 128, 219, 220, 254, 255} {
		img := newCanvas(color.RGBA{R: g, G: g, B: g, A: 255})
		got := Downsample(img)

		want := filled((float64(g) / 255) * 16)
		if diff := cmp.Diff(want, got, cmpopts.EquateApprox(0, 1e-9)); diff != "" {
			t.Errorf("gray %d mismatch (-want +got):\n%s", g, diff)
		}
	}
}

func TestDownsample_RowMajorOrder(t *testing.T) {
	t.Parallel()

	img := newCanvas(white)
	// row 1, col 6
	fillRect(img, image.Rect(6*25, 1*25, 7*25, 2*25), black)

	got := Downsample(img)

	want := filled(16)
	want[1*8+6] = 0
	assert.Equal(t, want, got)
	assert.Equal(t, 0.0, got.At(1, 6))
}

func TestDownsample_PartialBlockIsLinear(t *testing.T) {
	t.Parallel()

	img := newCanvas(white)
	// 左上ブロックの上半分近く（25x10）だけ黒
	fillRect(img, image.Rect(0, 0, 25, 10), black)

	got := Downsample(img)

	mean := 255.0 * float64(25*15) / 625
	assert.InDelta(t, (mean/255)*16, got[0], 1e-9)
}

func TestScale(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0.0, Scale(0))
	assert.Equal(t, 16.0, Scale(255))
	assert.InDelta(t, 8.0, Scale(127.5), 1e-9)
}

func TestInvert(t *testing.T) {
	t.Parallel()

	var scaled entity.FeatureVector
	for i := range scaled {
		scaled[i] = float64(i) * 0.25
	}

	inverted := Invert(scaled)
	for i := range scaled {
		assert.Equal(t, 16-scaled[i], inverted[i], "index %d", i)
	}

	assert.Equal(t, scaled, Uninvert(inverted))
}

func TestInvert_ExtractedValuesAreSelfConsistent(t *testing.T) {
	t.Parallel()

	img := newCanvas(white)
	fillRect(img, image.Rect(60, 30, 80, 170), black)
	fillRect(img, image.Rect(50, 30, 90, 45), color.RGBA{R: 90, G: 40, B: 200, A: 255})

	scaled := Downsample(Recenter(img, InkBoundingBox(img)))
	inverted := Invert(scaled)
	for i := range scaled {
		assert.Equal(t, 16-scaled[i], inverted[i], "index %d", i)
	}
	if diff := cmp.Diff(scaled, Uninvert(inverted), cmpopts.EquateApprox(0, 1e-12)); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestExtract_AllBlack(t *testing.T) {
	t.Parallel()

	got := Extract(newCanvas(black))

	assert.Equal(t, filled(16), got)
}

func TestExtract_AllWhiteUsesFallback(t *testing.T) {
	t.Parallel()

	img := newCanvas(white)
	require.Equal(t, entity.FallbackBox, InkBoundingBox(img))

	got := Extract(img)

	assert.Len(t, got, entity.FeatureLen)
	assert.Equal(t, filled(0), got)
}

func TestExtract_TranslationInvariant(t *testing.T) {
	t.Parallel()

	draw := func(dx, dy int) *image.RGBA {
		img := newCanvas(white)
		fillRect(img, image.Rect(10+dx, 10+dy, 22+dx, 70+dy), black)
		fillRect(img, image.Rect(22+dx, 10+dy, 40+dx, 20+dy), black)
		return img
	}

	assert.Equal(t, Extract(draw(0, 0)), Extract(draw(120, 90)))
}

func TestExtract_IsDeterministicAndReadOnly(t *testing.T) {
	t.Parallel()

	img := newCanvas(white)
	fillRect(img, image.Rect(100, 20, 115, 180), black)
	before := append([]uint8(nil), img.Pix...)

	first := Extract(img)
	second := Extract(img)

	assert.Equal(t, first, second)
	assert.Equal(t, before, img.Pix)
	for i, v := range first {
		assert.GreaterOrEqual(t, v, 0.0, "index %d", i)
		assert.LessOrEqual(t, v, 16.0, "index %d", i)
	}
}
