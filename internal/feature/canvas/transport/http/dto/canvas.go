// Package dto はcanvasフィーチャーのHTTPリクエスト/レスポンスを定義します。
package dto

// PointerRequest はポインタの押下状態の変化を表します。
type PointerRequest struct {
	Event string `json:"event" binding:"required"`
}

// StrokeRequest は描画面上のポインタ位置です。
type StrokeRequest struct {
	X *int `json:"x" binding:"required"`
	Y *int `json:"y" binding:"required"`
}

// PredictionResponse は表示中の予測です。
type PredictionResponse struct {
	Prediction string `json:"prediction"`
	ImgData    string `json:"img_data"`
}

// StrokeResponse はストローク処理の結果です。
type StrokeResponse struct {
	Submitted bool `json:"submitted"`
	PredictionResponse
}

// FeaturesResponse は最後に送信した特徴量ベクトルです。
type FeaturesResponse struct {
	Pixels []float64 `json:"pixels"`
}
