package main

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"log"
	"math/rand"
	"os"
	"sync"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/wojaklabs/wojak-studio/engine/config"
	"github.com/wojaklabs/wojak-studio/engine/random"
	"github.com/wojaklabs/wojak-studio/engine/render"
	"github.com/wojaklabs/wojak-studio/engine/studio"
	"github.com/wojaklabs/wojak-studio/engine/trait"
	"github.com/wojaklabs/wojak-studio/engine/ui"
)

const (
	ScreenWidth  = 1200
	ScreenHeight = 900
)

// StudioApp wires the engine, the renderer worker, and the sidebar
type StudioApp struct {
	engine *studio.Engine
	picker *ui.Picker
	sched  *render.Scheduler

	// Latest finished render, handed over from the worker goroutine
	// and converted to a GPU image on the game loop.
	mu      sync.Mutex
	pending *render.Result

	canvas   *ebiten.Image
	raster   *image.RGBA
	frameGen uint64
	warnings []render.Warning
}

func NewStudioApp(cfg config.Config, eng *studio.Engine) *StudioApp {
	a := &StudioApp{engine: eng}
	a.picker = ui.NewPicker(eng, ScreenWidth, ScreenHeight)
	a.picker.OnChange = a.requestRender

	painter := render.NewPainter(render.DirLoader{Root: cfg.AssetsDir})
	a.sched = render.NewScheduler(painter, cfg.CanvasWidth, cfg.CanvasHeight, func(r render.Result) {
		a.mu.Lock()
		a.pending = &r
		a.mu.Unlock()
	})

	a.requestRender()
	return a
}

// requestRender snapshots the current paint list and queues it on the
// render worker. Rapid mutations coalesce in the worker's mailbox.
func (a *StudioApp) requestRender() {
	entries, gen, err := a.engine.CurrentPaintList()
	if err != nil {
		log.Printf("paint list: %v", err)
		return
	}
	a.sched.Submit(render.Frame{Gen: gen, Entries: entries})
}

func (a *StudioApp) Update() error {
	// Adopt the newest finished render, discarding stale generations.
	a.mu.Lock()
	result := a.pending
	a.pending = nil
	a.mu.Unlock()
	if result != nil && result.Gen >= a.frameGen {
		a.canvas = ebiten.NewImageFromImage(result.Image)
		a.raster = result.Image
		a.frameGen = result.Gen
		a.warnings = result.Warnings
	}

	mx, my := ebiten.CursorPosition()

	if _, dy := ebiten.Wheel(); dy != 0 && a.picker.Contains(mx, my) {
		a.picker.Scroll(dy)
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		a.picker.HandleClick(mx, my)
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		if ebiten.IsKeyPressed(ebiten.KeyShift) {
			a.picker.CycleLayer(-1)
		} else {
			a.picker.CycleLayer(1)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		if err := a.engine.RandomizeAll(); err != nil {
			log.Printf("randomize: %v", err)
		} else {
			a.requestRender()
		}
	}
	if ebiten.IsKeyPressed(ebiten.KeyControl) && inpututil.IsKeyJustPressed(ebiten.KeyS) {
		a.exportPNG()
	}

	a.engine.Bus.Dispatch()
	return nil
}

func (a *StudioApp) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{30, 30, 40, 255})

	if a.canvas != nil {
		// Aspect-fit the composition into the area left of the sidebar.
		areaW := ScreenWidth - a.picker.SidebarWidth
		cw := a.canvas.Bounds().Dx()
		ch := a.canvas.Bounds().Dy()
		scale := min(float64(areaW)/float64(cw), float64(ScreenHeight)/float64(ch))
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(scale, scale)
		op.GeoM.Translate(
			(float64(areaW)-float64(cw)*scale)/2,
			(float64(ScreenHeight)-float64(ch)*scale)/2,
		)
		screen.DrawImage(a.canvas, op)
	}

	a.picker.Draw(screen)

	info := fmt.Sprintf("Wojak Studio | Layer: %s | [Tab]Next Layer [R]Randomize [Ctrl+S]Export", a.picker.ActiveLayer())
	if len(a.warnings) > 0 {
		info += fmt.Sprintf(" | %d assets missing", len(a.warnings))
	}
	ebitenutil.DebugPrintAt(screen, info, 5, ScreenHeight-20)
}

// exportPNG writes the latest finished composition to disk. The CPU
// raster is encoded, so the file is pixel-identical to the preview.
func (a *StudioApp) exportPNG() {
	if a.raster == nil {
		return
	}

	name := fmt.Sprintf("wojak_%s.png", time.Now().Format("20060102_150405"))
	f, err := os.Create(name)
	if err != nil {
		log.Printf("export failed: %v", err)
		return
	}
	defer f.Close()

	if err := png.Encode(f, a.raster); err != nil {
		log.Printf("export failed: %v", err)
		return
	}
	log.Printf("Exported %s", name)
}

func (a *StudioApp) Layout(_, _ int) (int, int) {
	return ScreenWidth, ScreenHeight
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	manifest := trait.Default()
	if cfg.ManifestPath != "" {
		manifest, err = trait.LoadJSON(cfg.ManifestPath)
		if err != nil {
			log.Fatalf("Failed to load manifest: %v", err)
		}
	}

	weights := random.DefaultWeights()
	if cfg.WeightsPath != "" {
		weights, err = random.LoadWeights(cfg.WeightsPath)
		if err != nil {
			log.Fatalf("Failed to load weights: %v", err)
		}
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	eng := studio.New(manifest, weights, rng)

	ebiten.SetWindowSize(ScreenWidth, ScreenHeight)
	ebiten.SetWindowTitle("Wojak Studio")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	app := NewStudioApp(cfg, eng)
	defer app.sched.Close()
	if err := ebiten.RunGame(app); err != nil {
		log.Fatal(err)
	}
}
