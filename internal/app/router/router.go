package router

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"digit_canvas/internal/app/web"
	canvashandler "digit_canvas/internal/feature/canvas/transport/handler"
	platformhandler "digit_canvas/internal/platform/http/handler"
)

// NewRouter は描画ページ、ヘルスチェック、キャンバスAPIを登録したエンジンを返します。
// corsOrigins が空の場合はCORSヘッダーを付与しません。
func NewRouter(health *platformhandler.HealthHandler, canvas *canvashandler.CanvasHandler, corsOrigins []string) *gin.Engine {
	r := gin.Default()

	// ルート登録より前に適用する必要がある
	if len(corsOrigins) > 0 {
		r.Use(cors.New(cors.Config{
			AllowOrigins: corsOrigins,
			AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
			AllowHeaders: []string{"Content-Type"},
		}))
	}

	// 導通確認用
	r.GET("/healthz", health.Health)
	r.HEAD("/healthz", health.Health)

	// 描画ページ
	web.Register(r)

	v1 := r.Group("/v1/canvas")
	{
		v1.POST("/pointer", canvas.Pointer)
		v1.POST("/stroke", canvas.Stroke)
		v1.POST("/clear", canvas.Clear)
		v1.GET("/prediction", canvas.Prediction)
		v1.GET("/features", canvas.Features)
		v1.GET("/features.png", canvas.FeaturesPNG)
		v1.GET("/image.png", canvas.CanvasPNG)
	}

	return r
}
