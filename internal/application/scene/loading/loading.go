// Package loading provides the asset loading scene shown before play.
package loading

import (
	"context"
	"fmt"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/younwookim/sunrun/internal/application/scene"
	"golang.org/x/image/font/basicfont"
)

// Progress is what the scene needs from an asset loader
type Progress interface {
	Start(ctx context.Context)
	Progress() (loaded, total int)
	Percent() int
	Complete() bool
	Images() map[string]image.Image
}

// NextFunc builds the scene that follows loading from the loaded images
type NextFunc func(images map[string]image.Image) scene.Scene

var (
	colorBG       = color.RGBA{26, 26, 46, 255}
	colorBarBG    = color.RGBA{60, 60, 60, 255}
	colorBarFG    = color.RGBA{100, 200, 100, 255}
	colorLoadText = color.RGBA{255, 255, 255, 255}
)

// Loading shows load progress, waits a short delay after 100% and then
// hands the images to the next scene.
type Loading struct {
	loader  Progress
	next    NextFunc
	delay   *gween.Tween
	fade    float32
	cancel  context.CancelFunc
	face    ebtext.Face
	screenW int
	screenH int
}

// New creates a loading scene. delay is in seconds.
func New(loader Progress, delay float64, screenW, screenH int, next NextFunc) *Loading {
	return &Loading{
		loader:  loader,
		next:    next,
		delay:   gween.New(0, 1, float32(delay), ease.Linear),
		screenW: screenW,
		screenH: screenH,
	}
}

// OnEnter implements scene.Scene
func (l *Loading) OnEnter() {
	ctx, cancel := context.WithCancel(context.Background())
	l.cancel = cancel
	l.loader.Start(ctx)
	l.face = ebtext.NewGoXFace(basicfont.Face7x13)
}

// OnExit implements scene.Scene
func (l *Loading) OnExit() {
	if l.cancel != nil {
		l.cancel()
	}
}

// Update implements scene.Scene
func (l *Loading) Update(dt float64) (scene.Scene, error) {
	if !l.loader.Complete() {
		return nil, nil
	}

	v, finished := l.delay.Update(float32(dt))
	l.fade = v
	if !finished {
		return nil, nil
	}
	return l.next(l.loader.Images()), nil
}

// Draw implements scene.Scene
func (l *Loading) Draw(screen *ebiten.Image) {
	screen.Fill(colorBG)

	const barW, barH = 400, 16
	x := float32(l.screenW-barW) / 2
	y := float32(l.screenH) / 2
	pct := l.loader.Percent()

	vector.FillRect(screen, x, y, barW, barH, colorBarBG, false)
	vector.FillRect(screen, x, y, barW*float32(pct)/100, barH, colorBarFG, false)

	if l.face == nil {
		return
	}
	loaded, total := l.loader.Progress()
	op := &ebtext.DrawOptions{}
	op.GeoM.Translate(float64(x), float64(y)-24)
	op.ColorScale.ScaleWithColor(colorLoadText)
	op.ColorScale.ScaleAlpha(1 - l.fade)
	ebtext.Draw(screen, fmt.Sprintf("Loading... %d%% (%d/%d)", pct, loaded, total), l.face, op)
}
