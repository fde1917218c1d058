package preprocess

import "image"

// gray はRGBの単純平均を返します（重み付けなし）。
func gray(img *image.RGBA, x, y int) float64 {
	i := img.PixOffset(x, y)
	p := img.Pix[i : i+3 : i+3]
	return float64(int(p[0])+int(p[1])+int(p[2])) / 3
}
