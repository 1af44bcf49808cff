package ui

import (
	"image/color"
	"strconv"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"VorkathHelper/config"
	"VorkathHelper/control"
	"VorkathHelper/i18n"
)

type App interface {
	EnqueueCommand(cmd control.Command)
}

// CounterWidget is the on-screen indicator: the predicted special's icon
// with the attack count drawn over it. The count is hidden at zero.
type CounterWidget struct {
	icon      *canvas.Image
	countText *canvas.Text
	caption   *widget.Label
	box       *fyne.Container
	waiting   *widget.Label
	tappable  *TappableContainer

	captions map[fyne.Resource]string

	mu      sync.Mutex
	visible bool
	count   int
}

// NewCounterWidget builds the indicator. It starts hidden. captions maps
// each icon to the text shown under it.
func NewCounterWidget(a App, cfg config.Overlay, captions map[fyne.Resource]string) *CounterWidget {
	w := &CounterWidget{captions: captions}

	w.icon = canvas.NewImageFromResource(nil)
	w.icon.FillMode = canvas.ImageFillContain
	w.icon.SetMinSize(fyne.NewSize(cfg.Width*0.75, cfg.Height*0.75))

	w.countText = canvas.NewText("", color.White)
	w.countText.TextStyle.Bold = true
	w.countText.TextSize = cfg.TextSize
	w.countText.Alignment = fyne.TextAlignTrailing

	w.caption = widget.NewLabel("")
	w.caption.Alignment = fyne.TextAlignCenter

	countCorner := container.NewVBox(layout.NewSpacer(), container.NewHBox(layout.NewSpacer(), w.countText))
	w.box = container.NewVBox(
		container.NewStack(w.icon, countCorner),
		w.caption,
	)
	w.box.Hide()

	w.waiting = widget.NewLabel(i18n.T("Waiting for Vorkath"))
	w.waiting.Alignment = fyne.TextAlignCenter

	w.tappable = NewTappableContainer(container.NewStack(w.waiting, w.box), nil, func(*fyne.PointEvent) {
		a.EnqueueCommand(control.Command{Type: control.CmdReset})
	})
	return w
}

// GetCanvasObject returns the root object to place in a window.
func (w *CounterWidget) GetCanvasObject() fyne.CanvasObject {
	return w.tappable
}

// Visible reports the displayed count and whether the indicator is up.
func (w *CounterWidget) Visible() (int, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.count, w.visible
}

// SetOnTapped sets the primary tap action.
func (w *CounterWidget) SetOnTapped(fn func()) {
	w.tappable.OnTappedPrimary = fn
}

// Show replaces the indicator with a new one at count.
func (w *CounterWidget) Show(count int, icon fyne.Resource) {
	w.mu.Lock()
	w.visible = true
	w.count = count
	w.mu.Unlock()

	fyne.Do(func() {
		w.icon.Resource = icon
		w.caption.SetText(w.captions[icon])
		w.setCount(count)
		w.icon.Refresh()
		w.waiting.Hide()
		w.box.Show()
	})
}

// Update changes the displayed count in place.
func (w *CounterWidget) Update(count int) {
	w.mu.Lock()
	if !w.visible {
		w.mu.Unlock()
		return
	}
	w.count = count
	w.mu.Unlock()

	fyne.Do(func() {
		w.setCount(count)
	})
}

// Hide removes the indicator. Hiding twice is harmless.
func (w *CounterWidget) Hide() {
	w.mu.Lock()
	wasVisible := w.visible
	w.visible = false
	w.count = 0
	w.mu.Unlock()

	if !wasVisible {
		return
	}
	fyne.Do(func() {
		w.box.Hide()
		w.waiting.Show()
	})
}

func (w *CounterWidget) setCount(count int) {
	if count == 0 {
		w.countText.Text = ""
	} else {
		w.countText.Text = strconv.Itoa(count)
	}
	w.countText.Refresh()
}

// CreateOverlayWindow builds the fixed-size indicator window.
func CreateOverlayWindow(fyneApp fyne.App, title string, counter *CounterWidget, cfg config.Overlay) fyne.Window {
	w := fyneApp.NewWindow(title)

	counter.SetOnTapped(func() {
		ShowHelpDialog(w)
	})

	bg := canvas.NewRectangle(BackgroundColor)
	w.SetContent(container.NewStack(bg, container.NewPadded(counter.GetCanvasObject())))
	w.Resize(fyne.NewSize(cfg.Width*1.6, cfg.Height*1.6))
	w.SetFixedSize(true)
	return w
}

// ShowHelpDialog explains the indicator.
func ShowHelpDialog(w fyne.Window) {
	text := widget.NewLabel(i18n.T("help_text"))
	text.Wrapping = fyne.TextWrapWord

	scrollable := container.NewVScroll(text)
	scrollable.SetMinSize(fyne.NewSize(280, 140))

	dialog.ShowCustom(i18n.T("Help"), i18n.T("Close"), scrollable, w)
}

type TappableContainer struct {
	widget.BaseWidget
	Content           fyne.CanvasObject
	OnTappedPrimary   func()
	OnTappedSecondary func(e *fyne.PointEvent)
}

func NewTappableContainer(c fyne.CanvasObject, onP func(), onS func(e *fyne.PointEvent)) *TappableContainer {
	t := &TappableContainer{
		Content:           c,
		OnTappedPrimary:   onP,
		OnTappedSecondary: onS,
	}
	t.ExtendBaseWidget(t)
	return t
}

func (t *TappableContainer) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(t.Content)
}

func (t *TappableContainer) Tapped(_ *fyne.PointEvent) {
	if t.OnTappedPrimary != nil {
		t.OnTappedPrimary()
	}
}

func (t *TappableContainer) TappedSecondary(e *fyne.PointEvent) {
	if t.OnTappedSecondary != nil {
		t.OnTappedSecondary(e)
	}
}
