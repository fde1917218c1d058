// Command drawpad is a desktop window for drawing digits and viewing predictions.
// Hold the left mouse button to draw, press C to clear, Esc to quit.
package main

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"image"
	"image/png"
	"log"
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/joho/godotenv"

	"digit_canvas/internal/app/di"
	"digit_canvas/internal/feature/canvas/adapters/surface"
	"digit_canvas/internal/feature/canvas/domain/entity"
	"digit_canvas/internal/feature/canvas/usecase"
	"digit_canvas/internal/platform/config"
)

const (
	panelSize = entity.CanvasWidth
	margin    = 4
)

type drawpad struct {
	ctx    context.Context
	raster *surface.Raster
	uc     *usecase.CanvasUsecase

	canvasImg *ebiten.Image
	resultImg *ebiten.Image
	shownData string

	inside bool
	last   image.Point
}

func (g *drawpad) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.uc.Clear()
	}

	x, y := ebiten.CursorPosition()
	p := image.Pt(x, y)
	inside := p.In(image.Rect(0, 0, entity.CanvasWidth, entity.CanvasHeight))

	if g.inside && !inside {
		g.pointer(usecase.PointerLeave)
	}
	g.inside = inside

	switch {
	case inside && inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		g.pointer(usecase.PointerDown)
	case inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft):
		g.pointer(usecase.PointerUp)
	}

	if inside && p != g.last && ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		g.uc.StrokeTo(g.ctx, p)
	}
	g.last = p
	return nil
}

func (g *drawpad) pointer(ev usecase.PointerEvent) {
	if err := g.uc.HandlePointer(ev); err != nil {
		slog.Error("pointer event rejected", "event", ev, "error", err)
	}
}

func (g *drawpad) Draw(screen *ebiten.Image) {
	g.canvasImg.WritePixels(g.raster.Snapshot().Pix)
	screen.DrawImage(g.canvasImg, nil)

	pred := g.uc.Prediction()
	g.refreshResult(pred.ImageData)
	if g.resultImg != nil {
		b := g.resultImg.Bounds()
		scale := float64(panelSize-2*margin) / float64(max(b.Dx(), b.Dy()))
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(scale, scale)
		op.GeoM.Translate(panelSize+margin, 2*margin+16)
		screen.DrawImage(g.resultImg, op)
	}
	ebitenutil.DebugPrintAt(screen, "Prediction: "+pred.Label, panelSize+margin, margin)
}

// refreshResult decodes the base64 PNG only when it changes.
func (g *drawpad) refreshResult(data string) {
	if data == g.shownData {
		return
	}
	g.shownData = data
	if g.resultImg != nil {
		g.resultImg.Deallocate()
		g.resultImg = nil
	}
	if data == "" {
		return
	}
	img, err := decodeImage(data)
	if err != nil {
		slog.Warn("cannot display prediction image", "error", err)
		return
	}
	g.resultImg = ebiten.NewImageFromImage(img)
}

func (g *drawpad) Layout(outsideWidth, outsideHeight int) (int, int) {
	return 2 * panelSize, panelSize
}

func decodeImage(data string) (image.Image, error) {
	raw, err := base64.StdEncoding.DecodeString(data)
	if err != nil {
		return nil, err
	}
	return png.Decode(bytes.NewReader(raw))
}

func main() {
	if err := godotenv.Load(".env"); err != nil {
		log.Println("[INFO] .env not found; using system environment variables")
	}
	cfg := config.Load()

	ctx := context.Background()
	rdb := di.NewOptionalRedis(ctx, cfg)
	if rdb != nil {
		defer func() {
			if err := rdb.Close(); err != nil {
				log.Println("[ERROR] Failed to close Redis client:", err)
			}
		}()
	}
	raster, uc := di.NewCanvas(cfg, di.NewPredictor(cfg, rdb))

	g := &drawpad{
		ctx:       ctx,
		raster:    raster,
		uc:        uc,
		canvasImg: ebiten.NewImage(entity.CanvasWidth, entity.CanvasHeight),
	}

	ebiten.SetWindowTitle("Digit Canvas")
	ebiten.SetWindowSize(4*panelSize, 2*panelSize)
	ebiten.SetTPS(60)
	err := ebiten.RunGame(g)
	uc.Wait()
	if err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
