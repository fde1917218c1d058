// Package surface はメモリ上の200x200 RGBAラスタによる描画面を提供します。
package surface

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"sync"

	"golang.org/x/image/draw"
	"golang.org/x/image/vector"

	"digit_canvas/internal/feature/canvas/domain/entity"
	"digit_canvas/internal/feature/canvas/preprocess"
	"digit_canvas/internal/feature/canvas/usecase"
)

// bezierCircle は円を4本の3次ベジェ曲線で近似するときの制御点係数です。
const bezierCircle = 0.5522847498

// Raster は白背景に黒い円を打って線を描く描画面です。
type Raster struct {
	mu    sync.Mutex
	img   *image.RGBA
	brush *vector.Rasterizer
}

// RasterがDrawSurfaceを実装していることをコンパイル時に検証します。
var _ usecase.DrawSurface = (*Raster)(nil)

// NewRaster は真っ白な描画面を生成します。
func NewRaster() *Raster {
	r := &Raster{
		img:   image.NewRGBA(image.Rect(0, 0, entity.CanvasWidth, entity.CanvasHeight)),
		brush: vector.NewRasterizer(1, 1),
	}
	r.fillWhite()
	return r
}

// StrokeSegment はpを中心に半径8の黒い円を塗ります。描画面の外は切り捨てます。
func (r *Raster) StrokeSegment(p image.Point) {
	r.mu.Lock()
	defer r.mu.Unlock()

	const rad = entity.BrushRadius
	bounds := image.Rect(p.X-rad-1, p.Y-rad-1, p.X+rad+2, p.Y+rad+2).Intersect(r.img.Bounds())
	if bounds.Empty() {
		return
	}

	// ラスタライザの座標はboundsの左上を原点とします。
	cx := float32(p.X - bounds.Min.X)
	cy := float32(p.Y - bounds.Min.Y)
	r.brush.Reset(bounds.Dx(), bounds.Dy())
	addCircle(r.brush, cx, cy, rad)
	r.brush.Draw(r.img, bounds, image.Black, image.Point{})
}

// Clear は描画面を白で塗りつぶします。
func (r *Raster) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.fillWhite()
}

// ExtractFeatures は現在の描画内容から特徴量ベクトルを計算します。
func (r *Raster) ExtractFeatures() entity.FeatureVector {
	r.mu.Lock()
	defer r.mu.Unlock()
	return preprocess.Extract(r.img)
}

// Snapshot は描画面のコピーを返します。
func (r *Raster) Snapshot() *image.RGBA {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := image.NewRGBA(r.img.Bounds())
	copy(out.Pix, r.img.Pix)
	return out
}

// EncodePNG は描画面をPNGとしてwへ書き出します。
func (r *Raster) EncodePNG(w io.Writer) error {
	if err := png.Encode(w, r.Snapshot()); err != nil {
		return fmt.Errorf("encode canvas png: %w", err)
	}
	return nil
}

func (r *Raster) fillWhite() {
	draw.Draw(r.img, r.img.Bounds(), image.White, image.Point{}, draw.Src)
}

// addCircle は中心(cx, cy)半径radの円のパスを追加します。
func addCircle(z *vector.Rasterizer, cx, cy, rad float32) {
	k := rad * bezierCircle
	z.MoveTo(cx+rad, cy)
	z.CubeTo(cx+rad, cy+k, cx+k, cy+rad, cx, cy+rad)
	z.CubeTo(cx-k, cy+rad, cx-rad, cy+k, cx-rad, cy)
	z.CubeTo(cx-rad, cy-k, cx-k, cy-rad, cx, cy-rad)
	z.CubeTo(cx+k, cy-rad, cx+rad, cy-k, cx+rad, cy)
	z.ClosePath()
}
