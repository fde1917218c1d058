// Package usecase はcanvasフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"
	"errors"
	"fmt"
	"image"
	"log/slog"
	"sync"

	"digit_canvas/internal/feature/canvas/domain/entity"
	"digit_canvas/internal/shared/ratelimiter"
)

// PointerEvent はポインタの押下状態の変化です。
type PointerEvent string

const (
	PointerDown  PointerEvent = "down"
	PointerUp    PointerEvent = "up"
	PointerLeave PointerEvent = "leave"
)

// ErrUnknownPointerEvent は未知のポインタイベントを受け取ったときに返されます。
var ErrUnknownPointerEvent = errors.New("unknown pointer event")

// DrawSurface は線の描画・消去・特徴量抽出ができる描画面のインターフェースです。
// Goの慣例に従い、インターフェースは利用者（usecase）側で定義します。
type DrawSurface interface {
	// StrokeSegment はpの位置にブラシを1回押し当てます。
	StrokeSegment(p image.Point)
	// Clear は描画面を白に戻します。
	Clear()
	// ExtractFeatures は現在の描画内容を特徴量ベクトルに変換します。
	ExtractFeatures() entity.FeatureVector
}

// Predictor は特徴量ベクトルを外部の予測サービスへ送信するインターフェースです。
// Goの慣例に従い、インターフェースは利用者（usecase）側で定義します。
type Predictor interface {
	Predict(ctx context.Context, features entity.FeatureVector) (entity.Prediction, error)
}

// CanvasUsecase は1つの描画セッションの状態（描画中フラグ・送信間隔・最新の予測）を保持し、
// ストロークを受けて特徴量を抽出・送信します。
type CanvasUsecase struct {
	surface   DrawSurface
	predictor Predictor
	gate      ratelimiter.Gate

	mu          sync.Mutex
	drawing     bool
	prediction  entity.Prediction
	features    entity.FeatureVector
	hasFeatures bool

	inflight sync.WaitGroup
}

// NewCanvasUsecase はCanvasUsecaseの新しいインスタンスを生成します。
func NewCanvasUsecase(surface DrawSurface, predictor Predictor, gate ratelimiter.Gate) *CanvasUsecase {
	return &CanvasUsecase{
		surface:    surface,
		predictor:  predictor,
		gate:       gate,
		prediction: entity.EmptyPrediction(),
	}
}

// HandlePointer はポインタイベントに応じて描画中フラグを切り替えます。
func (u *CanvasUsecase) HandlePointer(ev PointerEvent) error {
	switch ev {
	case PointerDown:
		u.setDrawing(true)
	case PointerUp, PointerLeave:
		u.setDrawing(false)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownPointerEvent, ev)
	}
	return nil
}

// Drawing は描画中かどうかを返します。
func (u *CanvasUsecase) Drawing() bool {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.drawing
}

// StrokeTo はポインタ移動を処理します。描画中でなければ何もしません。
// 送信間隔が空いていれば特徴量を同期的に抽出し、送信を非同期で開始してtrueを返します。
//
// 送信はキャンセルされません。遅れて届いた応答も表示中の結果を上書きします。
func (u *CanvasUsecase) StrokeTo(ctx context.Context, p image.Point) bool {
	if !u.Drawing() {
		return false
	}
	u.surface.StrokeSegment(p)

	if !u.gate.Allow() {
		return false
	}

	features := u.surface.ExtractFeatures()
	u.mu.Lock()
	u.features = features
	u.hasFeatures = true
	u.mu.Unlock()

	u.inflight.Add(1)
	go u.submit(context.WithoutCancel(ctx), features)
	return true
}

// Clear は描画面と表示中の予測をリセットします。
func (u *CanvasUsecase) Clear() {
	u.surface.Clear()

	u.mu.Lock()
	defer u.mu.Unlock()
	u.prediction = entity.EmptyPrediction()
	u.features = entity.FeatureVector{}
	u.hasFeatures = false
}

// Prediction は表示中の予測を返します。
func (u *CanvasUsecase) Prediction() entity.Prediction {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.prediction
}

// Features は最後に送信した特徴量を返します。まだ無ければokはfalseです。
func (u *CanvasUsecase) Features() (entity.FeatureVector, bool) {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.features, u.hasFeatures
}

// Wait は送信中のリクエストがすべて終わるまで待ちます。
func (u *CanvasUsecase) Wait() {
	u.inflight.Wait()
}

func (u *CanvasUsecase) setDrawing(v bool) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.drawing = v
}

// submit は予測を取得し、成功した場合のみ表示中の結果を置き換えます。
// 失敗は記録するだけで、直前の結果を残します。
func (u *CanvasUsecase) submit(ctx context.Context, features entity.FeatureVector) {
	defer u.inflight.Done()

	pred, err := u.predictor.Predict(ctx, features)
	if err != nil {
		slog.Warn("予測リクエストに失敗", "error", err)
		return
	}

	u.mu.Lock()
	defer u.mu.Unlock()
	u.prediction = pred
}
