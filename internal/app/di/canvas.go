package di

import (
	"digit_canvas/internal/feature/canvas/adapters/surface"
	"digit_canvas/internal/feature/canvas/usecase"
	"digit_canvas/internal/platform/config"
	"digit_canvas/internal/shared/ratelimiter"
)

// NewCanvas creates a blank surface and the session that drives it.
func NewCanvas(cfg config.Config, p usecase.Predictor) (*surface.Raster, *usecase.CanvasUsecase) {
	raster := surface.NewRaster()
	gate := ratelimiter.NewDebouncer(cfg.DebounceInterval)
	return raster, usecase.NewCanvasUsecase(raster, p, gate)
}
