// Package handler はcanvasフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"bytes"
	"context"
	"errors"
	"image"
	"io"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"digit_canvas/internal/api"
	"digit_canvas/internal/feature/canvas/domain/entity"
	"digit_canvas/internal/feature/canvas/transport/http/dto"
	"digit_canvas/internal/feature/canvas/usecase"
	"digit_canvas/internal/platform/preview"
)

// CanvasUsecase は描画セッションのユースケースインターフェースを定義します。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type CanvasUsecase interface {
	HandlePointer(ev usecase.PointerEvent) error
	StrokeTo(ctx context.Context, p image.Point) bool
	Clear()
	Prediction() entity.Prediction
	Features() (entity.FeatureVector, bool)
}

// CanvasImage は描画面をPNGとして書き出せる対象です。
type CanvasImage interface {
	EncodePNG(w io.Writer) error
}

// CanvasHandler は描画面操作のHTTPリクエストを処理します。
type CanvasHandler struct {
	uc     CanvasUsecase
	canvas CanvasImage
}

// NewCanvasHandler はCanvasHandlerの新しいインスタンスを生成します。
func NewCanvasHandler(uc CanvasUsecase, canvas CanvasImage) *CanvasHandler {
	return &CanvasHandler{uc: uc, canvas: canvas}
}

// Pointer はポインタの押下・解放・離脱を受け付けます。
//
// エンドポイント: POST /v1/canvas/pointer
// Content-Type: application/json
func (h *CanvasHandler) Pointer(c *gin.Context) {
	var req dto.PointerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("ポインタイベントのバリデーションに失敗", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "イベントが必要です"})
		return
	}

	if err := h.uc.HandlePointer(usecase.PointerEvent(req.Event)); err != nil {
		if errors.Is(err, usecase.ErrUnknownPointerEvent) {
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "未知のイベントです"})
			return
		}
		slog.Error("ポインタイベントの処理に失敗", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "ポインタイベントの処理に失敗しました"})
		return
	}
	c.Status(http.StatusNoContent)
}

// Stroke はポインタ移動を受け付け、描画と（間隔が空いていれば）予測送信を行います。
// 予測は非同期なので、レスポンスの予測はその時点で表示中のものです。
//
// エンドポイント: POST /v1/canvas/stroke
// Content-Type: application/json
func (h *CanvasHandler) Stroke(c *gin.Context) {
	var req dto.StrokeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("ストロークのバリデーションに失敗", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "座標が必要です"})
		return
	}

	submitted := h.uc.StrokeTo(c.Request.Context(), image.Pt(*req.X, *req.Y))
	c.JSON(http.StatusOK, dto.StrokeResponse{
		Submitted:          submitted,
		PredictionResponse: toPredictionResponse(h.uc.Prediction()),
	})
}

// Clear は描画面と表示中の予測をリセットします。
//
// エンドポイント: POST /v1/canvas/clear
func (h *CanvasHandler) Clear(c *gin.Context) {
	h.uc.Clear()
	c.Status(http.StatusNoContent)
}

// Prediction は表示中の予測を返します。
//
// エンドポイント: GET /v1/canvas/prediction
func (h *CanvasHandler) Prediction(c *gin.Context) {
	c.Header("Cache-Control", "no-store")
	c.JSON(http.StatusOK, toPredictionResponse(h.uc.Prediction()))
}

// Features は最後に送信した特徴量ベクトルを返します。
//
// エンドポイント: GET /v1/canvas/features
func (h *CanvasHandler) Features(c *gin.Context) {
	v, ok := h.uc.Features()
	if !ok {
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "特徴量がまだありません"})
		return
	}
	c.JSON(http.StatusOK, dto.FeaturesResponse{Pixels: v.Slice()})
}

// FeaturesPNG は最後に送信した特徴量を8x8のヒートマップ画像で返します。
//
// エンドポイント: GET /v1/canvas/features.png
func (h *CanvasHandler) FeaturesPNG(c *gin.Context) {
	v, ok := h.uc.Features()
	if !ok {
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "特徴量がまだありません"})
		return
	}

	b, err := preview.RenderHeatmap(v, preview.DefaultSize)
	if err != nil {
		slog.Error("ヒートマップの生成に失敗", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "画像の生成に失敗しました"})
		return
	}
	c.Header("Cache-Control", "no-store")
	c.Data(http.StatusOK, "image/png", b)
}

// CanvasPNG は現在の描画面をPNGで返します。
//
// エンドポイント: GET /v1/canvas/image.png
func (h *CanvasHandler) CanvasPNG(c *gin.Context) {
	var buf bytes.Buffer
	if err := h.canvas.EncodePNG(&buf); err != nil {
		slog.Error("描画面のエンコードに失敗", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "画像の生成に失敗しました"})
		return
	}
	c.Header("Cache-Control", "no-store")
	c.Data(http.StatusOK, "image/png", buf.Bytes())
}

func toPredictionResponse(p entity.Prediction) dto.PredictionResponse {
	return dto.PredictionResponse{Prediction: p.Label, ImgData: p.ImageData}
}
