package preprocess

import (
	"image"

	"digit_canvas/internal/feature/canvas/domain/entity"
)

// Downsample は200x200画像を25x25ブロックの8x8グリッドに分け、
// ブロック平均グレー値を (mean/255)*16 に縮尺して行優先で返します。
func Downsample(img *image.RGBA) entity.FeatureVector {
	var out entity.FeatureVector
	for row := 0; row < entity.GridSize; row++ {
		for col := 0; col < entity.GridSize; col++ {
			out[row*entity.GridSize+col] = Scale(blockMean(img, row, col))
		}
	}
	return out
}

// Scale はグレー値 [0,255] を特徴量の値域 [0,16] に写します。
func Scale(mean float64) float64 {
	return (mean / 255) * entity.MaxIntensity
}

// blockMean はブロック内625ピクセルのグレー値を行優先で順に足し合わせた平均です。
func blockMean(img *image.RGBA, row, col int) float64 {
	var sum float64
	count := 0
	for y := 0; y < entity.BlockSize; y++ {
		for x := 0; x < entity.BlockSize; x++ {
			sum += gray(img, col*entity.BlockSize+x, row*entity.BlockSize+y)
			count++
		}
	}
	return sum / float64(count)
}
