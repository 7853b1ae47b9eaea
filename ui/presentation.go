package ui

import (
	"image/color"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/adamlewis-97/timestableworksheet/internal/layout"
	"github.com/adamlewis-97/timestableworksheet/internal/model"
)

// relayoutDebounce is how long the window must hold a size before the
// question grid is re-planned for it. Resizes inside the window cancel the
// pending relayout and start the wait again.
const relayoutDebounce = 150 * time.Millisecond

// presentationBarTextSize keeps the controls legible from across a room.
const presentationBarTextSize = 18

var presentationBtnBg = color.NRGBA{R: 70, G: 70, B: 70, A: 255}

// Presentation shows one worksheet in its own window for the classroom
// projector: oversized question text, an answers toggle and a fullscreen
// switch. The grid is re-planned for the viewport after every resize settles.
type Presentation struct {
	win   fyne.Window
	sheet *model.Worksheet

	mu          sync.Mutex
	showAnswers bool
	fullscreen  bool
	gridHeight  float64
	relayout    *time.Timer

	grid          *fyne.Container
	answersBtn    *StyledButton
	fullscreenBtn *StyledButton

	onClosed func()
}

// NewPresentation builds a presentation window for the given worksheet.
func NewPresentation(a fyne.App, ws *model.Worksheet) *Presentation {
	p := &Presentation{
		sheet:      ws,
		gridHeight: PresentationHeight,
	}

	p.win = a.NewWindow("Times Tables Practice")
	p.win.Resize(NewPresentationSize())

	p.answersBtn = NewStyledButton("Show Answers", p.onToggleAnswers, answerColor, color.White)
	p.answersBtn.TextSize = presentationBarTextSize

	exitBtn := NewStyledButton("Exit", p.Close, presentationBtnBg, color.White)
	exitBtn.TextSize = presentationBarTextSize

	barItems := []fyne.CanvasObject{p.answersBtn}
	// Mobile drivers cannot leave fullscreen, so the switch is hidden there
	if !fyne.CurrentDevice().IsMobile() {
		p.fullscreenBtn = NewStyledButton("Fullscreen", p.onToggleFullscreen, presentationBtnBg, color.White)
		p.fullscreenBtn.TextSize = presentationBarTextSize
		barItems = append(barItems, p.fullscreenBtn)
	}
	barItems = append(barItems, exitBtn)
	bar := container.NewHBox(barItems...)

	p.grid = container.NewVBox()
	scroll := container.NewVScroll(p.grid)
	host := newRelayoutHost(scroll, p.scheduleRelayout)

	p.win.SetContent(container.NewBorder(nil, bar, nil, nil, host))

	p.win.Canvas().SetOnTypedKey(func(ev *fyne.KeyEvent) {
		if ev.Name == fyne.KeyEscape {
			p.Close()
		}
	})

	p.win.SetOnClosed(func() {
		p.stopRelayout()
		if p.onClosed != nil {
			p.onClosed()
		}
	})

	p.rebuild()
	return p
}

// Show displays the presentation window.
func (p *Presentation) Show() {
	p.win.Show()
}

// Close stops any pending relayout and closes the window.
func (p *Presentation) Close() {
	p.stopRelayout()
	p.win.Close()
}

// SetOnClosed registers a callback for when the window goes away.
func (p *Presentation) SetOnClosed(fn func()) {
	p.onClosed = fn
}

func (p *Presentation) onToggleAnswers() {
	p.mu.Lock()
	p.showAnswers = !p.showAnswers
	showing := p.showAnswers
	p.mu.Unlock()

	if showing {
		p.answersBtn.SetText("Hide Answers")
	} else {
		p.answersBtn.SetText("Show Answers")
	}
	p.rebuild()
}

func (p *Presentation) onToggleFullscreen() {
	p.mu.Lock()
	p.fullscreen = !p.fullscreen
	full := p.fullscreen
	p.mu.Unlock()

	p.win.SetFullScreen(full)
	if full {
		p.fullscreenBtn.SetText("Windowed")
	} else {
		p.fullscreenBtn.SetText("Fullscreen")
	}
}

// scheduleRelayout records the new grid size and restarts the debounce timer.
// Called for every resize event while the user drags or the driver animates.
func (p *Presentation) scheduleRelayout(size fyne.Size) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.gridHeight = float64(size.Height)
	if p.relayout != nil {
		p.relayout.Stop()
	}
	p.relayout = time.AfterFunc(relayoutDebounce, func() {
		fyne.Do(p.rebuild)
	})
}

func (p *Presentation) stopRelayout() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.relayout != nil {
		p.relayout.Stop()
	}
}

// rebuild re-plans the grid for the current viewport height. Must run on the
// UI goroutine.
func (p *Presentation) rebuild() {
	p.mu.Lock()
	height := p.gridHeight
	showAnswers := p.showAnswers
	p.mu.Unlock()

	plan := layout.ScreenLayout(len(p.sheet.Questions), height)
	p.grid.Objects = []fyne.CanvasObject{buildQuestionGrid(p.sheet, plan, showAnswers)}
	p.grid.Refresh()
}

// relayoutHost wraps the grid area and reports size changes, so the plan can
// follow the window instead of staying at the initial size.
type relayoutHost struct {
	widget.BaseWidget
	content  fyne.CanvasObject
	onResize func(fyne.Size)
}

func newRelayoutHost(content fyne.CanvasObject, onResize func(fyne.Size)) *relayoutHost {
	h := &relayoutHost{content: content, onResize: onResize}
	h.ExtendBaseWidget(h)
	return h
}

func (h *relayoutHost) Resize(size fyne.Size) {
	h.BaseWidget.Resize(size)
	if h.onResize != nil {
		h.onResize(size)
	}
}

func (h *relayoutHost) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(h.content)
}
