package entity

// NoLabel は予測がまだ無いときに表示するラベルです。
const NoLabel = "-"

// Prediction は予測サービスから返された表示用の結果です。
type Prediction struct {
	Label     string // 予測ラベル（例: "1", "2"）
	ImageData string // base64エンコードされたPNG
}

// EmptyPrediction はクリア直後の表示状態を返します。
func EmptyPrediction() Prediction {
	return Prediction{Label: NoLabel}
}

// DataURL は画像をimg要素のsrcに使える形式で返します。画像が無ければ空文字です。
func (p Prediction) DataURL() string {
	if p.ImageData == "" {
		return ""
	}
	return "data:image/png;base64," + p.ImageData
}
