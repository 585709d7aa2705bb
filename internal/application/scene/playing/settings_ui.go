package playing

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/younwookim/sunrun/internal/application/system"
	"github.com/younwookim/sunrun/internal/infrastructure/audio"
	"golang.org/x/image/font/basicfont"
)

var (
	colorPanel     = color.NRGBA{R: 0x00, G: 0x00, B: 0x00, A: 200}
	colorButton    = color.NRGBA{R: 0x33, G: 0x33, B: 0x33, A: 255}
	colorButtonHot = color.NRGBA{R: 0x4a, G: 0x4a, B: 0x4a, A: 255}
	colorLabel     = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
)

// settingsPanel is the modal shown in the Settings state: key rebinding,
// volume, mute, reset and save.
type settingsPanel struct {
	ui     *ebitenui.UI
	face   ebtext.Face
	keymap *system.Keymap
	mixer  *audio.Mixer
	prefs  *preferences

	bindButtons map[system.Action]*widget.Button
	volumeLabel *widget.Text
	muteButton  *widget.Button
	status      *widget.Text
}

func newSettingsPanel(screenW, screenH int, prefs *preferences, onClose func()) *settingsPanel {
	p := &settingsPanel{
		face:        ebtext.NewGoXFace(basicfont.Face7x13),
		keymap:      prefs.keymap,
		mixer:       prefs.mixer,
		prefs:       prefs,
		bindButtons: make(map[system.Action]*widget.Button),
	}

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(imageui.NewNineSliceColor(colorPanel)),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(10),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 20, Bottom: 20, Left: 30, Right: 30}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(screenW/3, screenH/2),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)
	panel.AddChild(p.text("Settings", colorLabel))

	panel.AddChild(p.text("Controls", colorLabel))
	for _, a := range system.AllActions {
		act := a
		btn := p.button("", func() { p.keymap.BeginCapture(act) })
		p.bindButtons[act] = btn
		panel.AddChild(p.row(p.text(actionLabel(act), colorLabel), btn))
	}

	p.volumeLabel = p.text("", colorLabel)
	panel.AddChild(p.row(
		p.button("-", p.prefs.VolumeDown),
		p.volumeLabel,
		p.button("+", p.prefs.VolumeUp),
	))
	p.muteButton = p.button("", p.prefs.ToggleMute)
	panel.AddChild(p.muteButton)

	panel.AddChild(p.row(
		p.button("Reset", func() {
			if err := p.prefs.ResetControls(); err != nil {
				p.status.Label = "reset, save failed"
				return
			}
			p.status.Label = "controls reset"
		}),
		p.button("Save", p.save),
		p.button("Close", func() {
			p.keymap.CancelCapture()
			onClose()
		}),
	))
	p.status = p.text("", colorLabel)
	panel.AddChild(p.status)

	root := widget.NewContainer(widget.ContainerOpts.Layout(widget.NewAnchorLayout()))
	root.AddChild(panel)
	p.ui = &ebitenui.UI{Container: root}

	p.refresh()
	return p
}

func (p *settingsPanel) text(label string, c color.Color) *widget.Text {
	return widget.NewText(
		widget.TextOpts.Text(label, &p.face, c),
		widget.TextOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})),
	)
}

func (p *settingsPanel) button(label string, onClick func()) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.Image(&widget.ButtonImage{
			Idle:    imageui.NewNineSliceColor(colorButton),
			Hover:   imageui.NewNineSliceColor(colorButtonHot),
			Pressed: imageui.NewNineSliceColor(colorButtonHot),
		}),
		widget.ButtonOpts.Text(label, &p.face, &widget.ButtonTextColor{Idle: colorLabel}),
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(96, 20),
			widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter}),
		),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			onClick()
		}),
	)
}

func (p *settingsPanel) row(children ...widget.PreferredSizeLocateableWidget) *widget.Container {
	c := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(8),
		)),
		widget.ContainerOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})),
	)
	for _, child := range children {
		c.AddChild(child)
	}
	return c
}

func (p *settingsPanel) save() {
	if err := p.prefs.SaveAll(); err != nil {
		p.status.Label = "save failed"
		return
	}
	p.status.Label = "saved"
}

// refresh copies keymap and mixer state into the widget labels
func (p *settingsPanel) refresh() {
	capturing, ok := p.keymap.Capturing()
	for act, btn := range p.bindButtons {
		label := p.keymap.Binding(act)
		if ok && act == capturing {
			label = "press a key..."
		}
		if t := btn.Text(); t != nil {
			t.Label = label
		}
	}

	m := p.mixer
	p.volumeLabel.Label = fmt.Sprintf("Volume %3.0f%%", m.Volume()*100)
	if t := p.muteButton.Text(); t != nil {
		if m.Muted() {
			t.Label = "Unmute"
		} else {
			t.Label = "Mute"
		}
	}
}

func (p *settingsPanel) Update() {
	p.refresh()
	p.ui.Update()
}

func (p *settingsPanel) Draw(screen *ebiten.Image) {
	p.ui.Draw(screen)
}

func actionLabel(a system.Action) string {
	s := string(a)
	return strings.ToUpper(s[:1]) + s[1:]
}
