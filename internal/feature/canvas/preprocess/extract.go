package preprocess

import (
	"image"

	"digit_canvas/internal/feature/canvas/domain/entity"
)

// Invert は各値を 16 - v に置き換えた新しいベクトルを返します。
// 分類器の学習時の前処理と一致させるため、式はこのまま維持します。
func Invert(v entity.FeatureVector) entity.FeatureVector {
	var out entity.FeatureVector
	for i, x := range v {
		out[i] = entity.MaxIntensity - x
	}
	return out
}

// Uninvert はInvertを打ち消します（同じ式）。
// 16の1ulp（2^-48）の倍数で表せる値なら往復で完全に一致します。
func Uninvert(v entity.FeatureVector) entity.FeatureVector {
	return Invert(v)
}

// Extract は200x200のラスタから送信用の特徴量ベクトルを作ります。
func Extract(img *image.RGBA) entity.FeatureVector {
	box := InkBoundingBox(img)
	centered := Recenter(img, box)
	return Invert(Downsample(centered))
}
