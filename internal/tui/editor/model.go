// Package editor is the interactive settings editor: a bubbletea model over
// the controller's draft with a live preview.
package editor

import (
	"context"
	"sync"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/quotewidget/internal/color"
	"github.com/alexisbeaulieu97/quotewidget/internal/domain/widget"
	"github.com/alexisbeaulieu97/quotewidget/internal/draft"
	"github.com/alexisbeaulieu97/quotewidget/internal/ports"
	"github.com/alexisbeaulieu97/quotewidget/internal/preview"
	"github.com/alexisbeaulieu97/quotewidget/internal/quotes"
	"github.com/alexisbeaulieu97/quotewidget/internal/slider"
)

// Controller is the part of the settings controller the editor drives.
type Controller interface {
	Drafts() *draft.Store
	Identity() widget.Identity
	Dirty() bool
	CommitDraft(ctx context.Context) error
	Reload(ctx context.Context) error
	ForceRefresh(ctx context.Context) error
}

type row int

const (
	rowFontSize row = iota
	rowFontWeight
	rowTextHue
	rowTextSaturation
	rowTextLightness
	rowBackgroundHue
	rowBackgroundSaturation
	rowBackgroundLightness
	rowBackgroundType
	rowOpacity
	rowBorderRadius
	rowRefreshInterval
	rowAutoTheme
	rowCount
)

var rowLabels = [rowCount]string{
	"Font size",
	"Font weight",
	"Text hue",
	"Text saturation",
	"Text lightness",
	"Background hue",
	"Background saturation",
	"Background lightness",
	"Background",
	"Opacity",
	"Corner radius",
	"Refresh every",
	"Auto theme",
}

// Slider geometry of the original settings screen.
var (
	fontSizeTrack = slider.Track{Length: 280, Thumb: 20, Min: widget.MinFontSize, Max: widget.MaxFontSize, Step: 1}
	hueTrack      = slider.Track{Length: 280, Thumb: 20, Min: 0, Max: 359, Step: 1}
	percentTrack  = slider.Track{Length: 280, Thumb: 20, Min: 0, Max: 100, Step: 1}
	opacityTrack  = slider.Track{Length: 280, Thumb: 20, Min: 0, Max: 1, Step: 0.05}
	radiusTrack   = slider.Track{Length: 280, Thumb: 20, Min: 0, Max: 56, Step: 8}
)

// Options configures the editor.
type Options struct {
	Theme    preview.Theme
	Fallback color.FallbackPolicy
	Quote    quotes.Quote
	Alerts   <-chan ports.Alert
}

// frame holds the last rendered preview. It is shared by value copies of
// the model and refreshed by the draft listener, which may run on a command
// goroutine.
type frame struct {
	mu    sync.Mutex
	style preview.RenderedStyle
	count int
}

func (f *frame) set(style preview.RenderedStyle) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.style = style
	f.count++
}

func (f *frame) get() (preview.RenderedStyle, int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.style, f.count
}

// Model is the editor state.
type Model struct {
	ctx    context.Context
	ctrl   Controller
	theme  preview.Theme
	colors color.Model
	quote  quotes.Quote
	alerts <-chan ports.Alert

	keys    keyMap
	help    help.Model
	spinner spinner.Model

	cursor  row
	textHSL color.HSL
	bgHSL   color.HSL

	busy     bool
	alert    *ports.Alert
	width    int
	quitting bool

	gesture *gesture

	frame       *frame
	unsubscribe func()
}

// gesture is a mouse drag in progress on one slider row. origin is the track
// coordinate of the press.
type gesture struct {
	row    row
	drag   *slider.Drag
	origin float64
}

// New creates an editor for ctrl. The controller must already be
// initialised.
func New(ctx context.Context, ctrl Controller, opts Options) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = spinnerStyle

	quote := opts.Quote
	if quote.Text == "" {
		quote = quotes.Default()
	}

	m := Model{
		ctx:     ctx,
		ctrl:    ctrl,
		theme:   opts.Theme,
		colors:  color.Model{Fallback: opts.Fallback},
		quote:   quote,
		alerts:  opts.Alerts,
		keys:    defaultKeys(),
		help:    help.New(),
		spinner: s,
		frame:   &frame{},
	}

	f := m.frame
	theme := m.theme
	f.style = preview.Render(ctrl.Drafts().Preview(), theme)
	m.unsubscribe = ctrl.Drafts().Subscribe(func(p widget.Settings) {
		f.set(preview.Render(p, theme))
	})
	m.syncColors()
	return m
}

// Init starts listening for alerts.
func (m Model) Init() tea.Cmd {
	return waitForAlert(m.alerts)
}

// Close detaches the preview listener.
func (m Model) Close() {
	if m.unsubscribe != nil {
		m.unsubscribe()
	}
}

// Alert returns the most recent alert, if any.
func (m Model) Alert() *ports.Alert {
	return m.alert
}

// Quitting reports whether the user asked to leave.
func (m Model) Quitting() bool {
	return m.quitting
}

// syncColors derives the HSL editing state from the draft. A device color is
// edited starting from what the device currently resolves it to.
func (m *Model) syncColors() {
	d := m.ctrl.Drafts().Draft()
	dark := m.theme.Dark()
	m.textHSL = m.colors.HexToHSL(color.Resolve(d.TextColor, color.RoleText, dark))
	m.bgHSL = m.colors.HexToHSL(color.Resolve(d.BackgroundColor, color.RoleBackground, dark))
}
