// Package entity はcanvasフィーチャーのドメインモデルを定義します。
package entity

const (
	// CanvasWidth は描画面の幅（px）です。
	CanvasWidth = 200
	// CanvasHeight は描画面の高さ（px）です。
	CanvasHeight = 200
	// GridSize は特徴量グリッドの一辺のセル数です。
	GridSize = 8
	// BlockSize は1セルあたりの一辺のピクセル数です（200/8）。
	BlockSize = CanvasWidth / GridSize
	// FeatureLen は特徴量ベクトルの要素数です。
	FeatureLen = GridSize * GridSize
	// MaxIntensity は特徴量の値域の上限です。
	MaxIntensity = 16.0
	// InkThreshold 未満のグレー値を持つピクセルをインクとみなします。
	InkThreshold = 220.0
	// BrushRadius はストローク1点ごとに塗る円の半径です。
	BrushRadius = 8
)

// BoundingBox はインクを囲む最小の矩形です。境界はすべて両端を含みます。
type BoundingBox struct {
	MinX, MaxX int
	MinY, MaxY int
}

// FallbackBox は空のキャンバスで使う中央の21x21領域です。
var FallbackBox = BoundingBox{MinX: 90, MaxX: 110, MinY: 90, MaxY: 110}

// Width は矩形の幅を返します。
func (b BoundingBox) Width() int { return b.MaxX - b.MinX + 1 }

// Height は矩形の高さを返します。
func (b BoundingBox) Height() int { return b.MaxY - b.MinY + 1 }

// FeatureVector は8x8グリッドを行優先で並べた特徴量です（値域 0〜16）。
type FeatureVector [FeatureLen]float64

// Slice はJSON送信用にスライスへ変換します。
func (v FeatureVector) Slice() []float64 {
	out := make([]float64, FeatureLen)
	copy(out, v[:])
	return out
}

// At は row行 col列 の値を返します。
func (v FeatureVector) At(row, col int) float64 {
	return v[row*GridSize+col]
}
