package preprocess

import (
	"image"

	"golang.org/x/image/draw"

	"digit_canvas/internal/feature/canvas/domain/entity"
)

// CenterOffset は矩形を中央に置くときの左上座標を返します。
// 各軸 floor((200 - 寸法) / 2) です。
func CenterOffset(box entity.BoundingBox) image.Point {
	return image.Pt(
		floorHalf(entity.CanvasWidth-box.Width()),
		floorHalf(entity.CanvasHeight-box.Height()),
	)
}

// Recenter は白い200x200キャンバスを新たに確保し、boxの領域を中央へ等倍で貼り付けます。
// srcは読み取りのみです。
func Recenter(src *image.RGBA, box entity.BoundingBox) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, entity.CanvasWidth, entity.CanvasHeight))
	draw.Draw(dst, dst.Bounds(), image.White, image.Point{}, draw.Src)

	sr := image.Rect(box.MinX, box.MinY, box.MaxX+1, box.MaxY+1)
	draw.Copy(dst, CenterOffset(box), src, sr, draw.Src, nil)
	return dst
}

// floorHalf は負数でも切り捨てになる n/2 です。
func floorHalf(n int) int {
	if n < 0 && n%2 != 0 {
		return n/2 - 1
	}
	return n / 2
}
