// Package handler はプラットフォームレベルのエンドポイント用HTTPハンドラーを提供します。
package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HealthInfo はヘルスチェックで公開する接続先の情報です。
type HealthInfo struct {
	PredictURL   string // 予測サービスのエンドポイント
	CacheEnabled bool   // Redisの予測キャッシュが有効かどうか
}

// HealthHandler は /healthz を処理します。
type HealthHandler struct {
	info HealthInfo
}

// NewHealthHandler はHealthHandlerの新しいインスタンスを生成します。
func NewHealthHandler(info HealthInfo) *HealthHandler {
	return &HealthHandler{info: info}
}

// Health はHTTPメソッドに応じて応答し、キャッシュを防止します。
// GETなどでは予測サービスの接続先とキャッシュの有無も返します。
func (h *HealthHandler) Health(c *gin.Context) {
	// 明示的にキャッシュを防止
	c.Header("Cache-Control", "no-store")

	switch c.Request.Method {
	case http.MethodHead:
		c.Status(http.StatusOK)
	case http.MethodOptions:
		c.Status(http.StatusNoContent)
	default:
		cache := "disabled"
		if h.info.CacheEnabled {
			cache = "redis"
		}
		c.JSON(http.StatusOK, gin.H{
			"status":      "ok",
			"predict_url": h.info.PredictURL,
			"cache":       cache,
		})
	}
}
