package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"

	"digit_canvas/internal/app/di"
	"digit_canvas/internal/app/router"
	canvashandler "digit_canvas/internal/feature/canvas/transport/handler"
	"digit_canvas/internal/platform/config"
	platformhandler "digit_canvas/internal/platform/http/handler"
)

func main() {
	// .envを読み込む
	if err := godotenv.Load(".env"); err != nil {
		log.Println("[INFO] .env not found; using system environment variables")
	}
	cfg := config.Load()

	// Redis（任意）
	rdb := di.NewOptionalRedis(context.Background(), cfg)
	if rdb != nil {
		defer func() {
			if err := rdb.Close(); err != nil {
				log.Println("[ERROR] Failed to close Redis client:", err)
			}
		}()
	}

	// Predictor / Usecase
	predictor := di.NewPredictor(cfg, rdb)
	raster, canvasUC := di.NewCanvas(cfg, predictor)

	// Handler
	healthH := platformhandler.NewHealthHandler(platformhandler.HealthInfo{
		PredictURL:   cfg.PredictURL,
		CacheEnabled: rdb != nil,
	})
	canvasH := canvashandler.NewCanvasHandler(canvasUC, raster)

	// ルータ生成
	r := router.NewRouter(healthH, canvasH, cfg.CORSOrigins)

	log.Println("[INFO] predicting via", cfg.PredictURL)
	if err := r.Run(cfg.ListenAddr); err != nil {
		log.Fatal(err)
	}
}
