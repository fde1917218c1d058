package preprocess

import (
	"image"

	"digit_canvas/internal/feature/canvas/domain/entity"
)

// InkBoundingBox はインクピクセルをすべて含む最小の矩形を返します。
// インクが1つも無い場合は entity.FallbackBox を返します。
func InkBoundingBox(img *image.RGBA) entity.BoundingBox {
	minX, maxX := entity.CanvasWidth, -1
	minY, maxY := entity.CanvasHeight, -1

	for y := 0; y < entity.CanvasHeight; y++ {
		for x := 0; x < entity.CanvasWidth; x++ {
			if gray(img, x, y) >= entity.InkThreshold {
				continue
			}
			if x < minX {
				minX = x
			}
			if x > maxX {
				maxX = x
			}
			if y < minY {
				minY = y
			}
			if y > maxY {
				maxY = y
			}
		}
	}

	if minX > maxX || minY > maxY {
		return entity.FallbackBox
	}
	return entity.BoundingBox{MinX: minX, MaxX: maxX, MinY: minY, MaxY: maxY}
}
