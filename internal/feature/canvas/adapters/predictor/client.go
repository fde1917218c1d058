package predictor

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"digit_canvas/internal/feature/canvas/adapters/predictor/dto"
	"digit_canvas/internal/feature/canvas/domain/entity"
	"digit_canvas/internal/feature/canvas/usecase"
)

// RequestIDHeader carries a per-submission ID for log correlation.
const RequestIDHeader = "X-Request-ID"

// HTTPPredictor は特徴量ベクトルをJSONでPOSTして予測結果を受け取るPredictor実装です。
type HTTPPredictor struct {
	cfg    Config
	client *http.Client
}

// HTTPPredictorがPredictorを実装していることをコンパイル時に検証します。
var _ usecase.Predictor = (*HTTPPredictor)(nil)

// NewHTTPPredictor は指定された設定とHTTPクライアントでHTTPPredictorの新しいインスタンスを生成します。
func NewHTTPPredictor(cfg Config, client *http.Client) *HTTPPredictor {
	return &HTTPPredictor{cfg: cfg, client: client}
}

// Predict は {"pixels": [...64]} を送信し、予測ラベルと可視化画像を返します。
// 2xx以外のステータスはエラーになります。
func (p *HTTPPredictor) Predict(ctx context.Context, features entity.FeatureVector) (entity.Prediction, error) {
	body, err := json.Marshal(dto.PredictRequest{Pixels: features.Slice()})
	if err != nil {
		return entity.Prediction{}, fmt.Errorf("encode predict request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.cfg.URL, bytes.NewReader(body))
	if err != nil {
		return entity.Prediction{}, fmt.Errorf("create predict request: %w", err)
	}
	reqID := uuid.NewString()
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(RequestIDHeader, reqID)

	res, err := p.client.Do(req)
	if err != nil {
		return entity.Prediction{}, fmt.Errorf("send predict request %s: %w", reqID, err)
	}
	defer func() {
		if err := res.Body.Close(); err != nil {
			slog.Warn("failed to close response body", "error", err, "request_id", reqID)
		}
	}()

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return entity.Prediction{}, fmt.Errorf("predictor http %d", res.StatusCode)
	}

	var out dto.PredictResponse
	if err := json.NewDecoder(res.Body).Decode(&out); err != nil {
		return entity.Prediction{}, fmt.Errorf("decode predict response %s: %w", reqID, err)
	}

	slog.Debug("prediction received", "request_id", reqID, "label", out.Prediction)
	return entity.Prediction{Label: out.Prediction, ImageData: out.ImgData}, nil
}
