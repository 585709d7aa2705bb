package playing

import (
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/younwookim/sunrun/internal/application/state"
	"github.com/younwookim/sunrun/internal/application/system"
	"github.com/younwookim/sunrun/internal/domain/entity"
	"github.com/younwookim/sunrun/internal/infrastructure/assets"
)

const (
	tileSize   = 64
	sunRadius  = 60
	shadowDisc = 32
)

// Colors for rendering
var (
	colorSky       = color.RGBA{135, 206, 235, 255}
	colorShadow    = color.RGBA{0, 0, 0, 255}
	colorText      = color.RGBA{255, 255, 255, 255}
	colorDim       = color.RGBA{0, 0, 0, 140}
	colorTouch     = color.RGBA{255, 255, 255, 60}
	colorTouchDown = color.RGBA{255, 255, 255, 140}
)

// lighting holds the pre-rendered light images of one level
type lighting struct {
	light    entity.Light
	sun      *ebiten.Image
	glow     *ebiten.Image
	vignette *ebiten.Image
	shadow   *ebiten.Image
}

func (p *Playing) ensureSprites() {
	if p.sprites != nil {
		return
	}
	p.sprites = make(map[string]*ebiten.Image, len(p.opts.Images))
	for key, img := range p.opts.Images {
		p.sprites[key] = ebiten.NewImageFromImage(img)
	}
}

// sprite returns the image for key, generating a placeholder when missing
func (p *Playing) sprite(key string) *ebiten.Image {
	p.ensureSprites()
	if img, ok := p.sprites[key]; ok {
		return img
	}
	img := ebiten.NewImageFromImage(assets.Placeholder(key))
	p.sprites[key] = img
	return img
}

func (p *Playing) ensureLighting() *lighting {
	light := p.session.Level().Light
	if p.lighting != nil && p.lighting.light == light {
		return p.lighting
	}

	cfg := p.opts.Config
	l := &lighting{
		light:  light,
		sun:    ebiten.NewImageFromImage(assets.RadialGradient(sunRadius, 0, assets.SunStops)),
		glow:   ebiten.NewImageFromImage(assets.RadialGradient(light.Radius, 0, assets.GlowStops)),
		shadow: ebiten.NewImageFromImage(assets.RadialGradient(shadowDisc/2, shadowDisc/2, []assets.GradientStop{{Offset: 0, Color: color.NRGBA{A: 255}}})),
	}
	if cfg.Lighting.Enabled {
		l.vignette = ebiten.NewImageFromImage(assets.Vignette(
			cfg.Display.ScreenWidth, cfg.Display.ScreenHeight,
			light.X, light.Y,
			cfg.Lighting.OverlayInner, cfg.Lighting.OverlayOuter,
			cfg.Lighting.OverlayAlpha*light.Intensity,
		))
	}
	p.lighting = l
	return l
}

// Draw implements scene.Scene
func (p *Playing) Draw(screen *ebiten.Image) {
	screen.Fill(colorSky)

	light := p.ensureLighting()
	cam := p.session.Camera()
	level := p.session.Level()

	p.drawGlow(screen, light)
	p.drawPlatforms(screen, cam, level)
	p.drawShadow(screen, cam, light)
	p.drawPlayer(screen, cam)
	p.drawEffects(screen, cam)
	if light.vignette != nil {
		screen.DrawImage(light.vignette, nil)
	}
	p.drawSun(screen, light)

	if touch := p.input.Touch(); touch != nil {
		drawTouch(screen, touch)
	}
	p.drawHUD(screen)

	switch p.session.State() {
	case state.StateReady:
		p.drawStartPrompt(screen)
	case state.StateSettings:
		w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
		vector.FillRect(screen, 0, 0, float32(w), float32(h), colorDim, false)
		if p.panel != nil {
			p.panel.Draw(screen)
		}
	}
}

func (p *Playing) drawGlow(screen *ebiten.Image, l *lighting) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(l.light.X-l.light.Radius, l.light.Y-l.light.Radius)
	op.ColorScale.ScaleAlpha(float32(l.light.Intensity))
	screen.DrawImage(l.glow, op)
}

func (p *Playing) drawSun(screen *ebiten.Image, l *lighting) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(l.light.X-sunRadius, l.light.Y-sunRadius)
	screen.DrawImage(l.sun, op)
}

func (p *Playing) drawPlatforms(screen *ebiten.Image, cam *entity.Camera, level *entity.Level) {
	top := parseHexColor(level.Colors.PlatformTop)
	body := parseHexColor(level.Colors.PlatformBody)
	line := parseHexColor(level.Colors.GroundLine)

	for _, pl := range p.session.World().Platforms() {
		if !cam.Visible(pl.Rect) {
			continue
		}
		x, y := cam.WorldToScreen(pl.X, pl.Y)

		if pl.Kind == entity.PlatformGround {
			wall, grass := p.sprite("wall"), p.sprite("grass")
			// Only the tiles inside the viewport
			startX := math.Max(pl.X, cam.X)
			startX = pl.X + math.Floor((startX-pl.X)/tileSize)*tileSize
			endX := math.Min(pl.Right(), cam.X+cam.ViewW)
			for tx := startX; tx < endX; tx += tileSize {
				for ty := pl.Y; ty < pl.Bottom(); ty += tileSize {
					drawTile(screen, wall, tx-cam.X, ty-cam.Y)
				}
				drawTile(screen, grass, tx-cam.X, y)
			}
			vector.FillRect(screen, float32(x), float32(y), float32(pl.W), 2, line, false)
			continue
		}

		vector.FillRect(screen, float32(x), float32(y), float32(pl.W), float32(pl.H), body, false)
		img := p.sprite("platform")
		op := &ebiten.DrawImageOptions{}
		b := img.Bounds()
		op.GeoM.Scale(pl.W/float64(b.Dx()), pl.H/float64(b.Dy()))
		op.GeoM.Translate(x, y)
		screen.DrawImage(img, op)
		vector.FillRect(screen, float32(x), float32(y), float32(pl.W), 3, top, false)
	}
}

func drawTile(screen, img *ebiten.Image, x, y float64) {
	op := &ebiten.DrawImageOptions{}
	b := img.Bounds()
	op.GeoM.Scale(tileSize/float64(b.Dx()), tileSize/float64(b.Dy()))
	op.GeoM.Translate(x, y)
	screen.DrawImage(img, op)
}

func (p *Playing) drawShadow(screen *ebiten.Image, cam *entity.Camera, l *lighting) {
	sh := system.ShadowFor(p.session.Actor(), p.session.World())
	if !sh.Visible {
		return
	}
	x, y := cam.WorldToScreen(sh.CX, sh.CY)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-shadowDisc/2, -shadowDisc/2)
	op.GeoM.Scale(2*sh.RX/shadowDisc, 2*sh.RY/shadowDisc)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(colorShadow)
	op.ColorScale.ScaleAlpha(float32(sh.Alpha))
	screen.DrawImage(l.shadow, op)
}

// drawMirrored draws img into the w x h box at (x, y), flipped horizontally
// when facing left.
func drawMirrored(screen, img *ebiten.Image, x, y, w, h float64, facingRight bool, alpha float32) {
	op := &ebiten.DrawImageOptions{}
	b := img.Bounds()
	op.GeoM.Scale(w/float64(b.Dx()), h/float64(b.Dy()))
	if !facingRight {
		op.GeoM.Scale(-1, 1)
		op.GeoM.Translate(w, 0)
	}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleAlpha(alpha)
	screen.DrawImage(img, op)
}

func (p *Playing) drawPlayer(screen *ebiten.Image, cam *entity.Camera) {
	a := p.session.Actor()
	x, y := cam.WorldToScreen(a.X, a.Y)
	drawMirrored(screen, p.sprite(system.SpriteFor(a)), x, y, a.W, a.H, a.FacingRight, 1)
}

func (p *Playing) drawEffects(screen *ebiten.Image, cam *entity.Camera) {
	alpha := float32(p.opts.Config.Effects.Alpha)
	effects := p.session.Effects()
	for _, e := range effects.Active() {
		spec := effects.Spec(e.Type)
		x, y := cam.WorldToScreen(e.X, e.Y)
		img := p.sprite(assets.EffectKey(e.Type.String(), e.Frame))
		drawMirrored(screen, img, x, y, spec.Size, spec.Size, e.FacingRight, alpha)
	}
}

func drawTouch(screen *ebiten.Image, touch *system.TouchControls) {
	layout := touch.Layout()
	for _, b := range layout.Buttons {
		c := colorTouch
		if touch.ButtonDown(b.Action) {
			c = colorTouchDown
		}
		vector.FillRect(screen, float32(b.Bounds.X), float32(b.Bounds.Y), float32(b.Bounds.W), float32(b.Bounds.H), c, false)
	}
	vector.StrokeCircle(screen, float32(layout.JoystickX), float32(layout.JoystickY), float32(layout.JoystickRadius), 2, colorTouchDown, true)
	kx, ky := touch.Knob()
	vector.FillCircle(screen, float32(kx), float32(ky), float32(layout.JoystickRadius/2), colorTouchDown, true)
}

func (p *Playing) drawText(screen *ebiten.Image, s string, x, y float64, alpha float32) {
	if p.face == nil {
		return
	}
	op := &ebtext.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(colorText)
	op.ColorScale.ScaleAlpha(alpha)
	op.LineSpacing = 16
	ebtext.Draw(screen, s, p.face, op)
}

func (p *Playing) drawHUD(screen *ebiten.Image) {
	var lines []string
	if p.opts.Gamepad != nil {
		if name, ok := p.opts.Gamepad.Status(); ok {
			lines = append(lines, "Gamepad: "+name)
		} else {
			lines = append(lines, "Gamepad: not connected")
		}
	}
	if p.session.State() == state.StatePlaying {
		lines = append(lines, "ESC: settings")
		if p.recorder != nil {
			lines = append(lines, fmt.Sprintf("REC %d (F5 save)", p.recorder.FrameCount()))
		}
	}
	p.drawText(screen, strings.Join(lines, "\n"), 10, 10, 1)
}

func (p *Playing) drawStartPrompt(screen *ebiten.Image) {
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	vector.FillRect(screen, 0, 0, float32(w), float32(h), colorDim, false)
	msg := "Click to start"
	p.drawText(screen, msg, float64(w)/2-float64(len(msg))*7/2, float64(h)/2, p.alpha)
}

// parseHexColor parses #RRGGBB, returning opaque black when malformed
func parseHexColor(s string) color.RGBA {
	s = strings.TrimPrefix(s, "#")
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil || len(s) != 6 {
		return color.RGBA{A: 255}
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}
}
