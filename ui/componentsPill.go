package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"meditation/models"
)

// Pill is a rounded, tappable text label. Chips and the "Start" button on
// feature cards are both pills.
type Pill struct {
	widget.BaseWidget

	// Text is the label shown inside the pill
	Text string

	// OnTapped is called when the pill is tapped; nil means no action
	OnTapped func()

	// Bold renders the label in bold; set before the pill is shown
	Bold bool

	fill     color.Color
	padV     float32
	padH     float32
	bg       *canvas.Rectangle
	textSize float32
}

// NewPill creates a pill with the given label, fill colour and padding.
func NewPill(text string, fill color.Color, padV, padH float32, onTapped func()) *Pill {
	p := &Pill{
		Text:     text,
		OnTapped: onTapped,
		fill:     fill,
		padV:     padV,
		padH:     padH,
		textSize: BodyTextSize,
	}
	p.ExtendBaseWidget(p)
	return p
}

// SetFill changes the background colour and redraws the pill.
func (p *Pill) SetFill(c color.Color) {
	p.fill = c
	if p.bg != nil {
		p.bg.FillColor = c
		p.bg.Refresh()
	}
}

// Fill returns the current background colour.
func (p *Pill) Fill() color.Color {
	return p.fill
}

// Tapped implements fyne.Tappable.
func (p *Pill) Tapped(*fyne.PointEvent) {
	if p.OnTapped != nil {
		p.OnTapped()
	}
}

func (p *Pill) CreateRenderer() fyne.WidgetRenderer {
	p.ExtendBaseWidget(p)

	p.bg = NewRoundedBackground(p.fill)

	label := canvas.NewText(p.Text, models.TextWhite)
	label.TextSize = p.textSize
	label.TextStyle = fyne.TextStyle{Bold: p.Bold}
	label.Alignment = fyne.TextAlignCenter

	content := container.New(layout.NewCustomPaddedLayout(p.padV, p.padV, p.padH, p.padH), label)
	return widget.NewSimpleRenderer(container.NewStack(p.bg, content))
}
