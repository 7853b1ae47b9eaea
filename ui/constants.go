package ui

import "fyne.io/fyne/v2"

// Window dimensions
const (
	WindowWidth  = 920
	WindowHeight = 680
)

// Split ratios
const (
	MainSplitRatio = 0.55 // 55% top (form + preview), 45% bottom (tabs)
)

// Worksheet preview dimensions
const (
	PreviewMinWidth  = 420
	PreviewMinHeight = 260
)

// Presentation window dimensions
const (
	PresentationWidth  = 960
	PresentationHeight = 600
)

// NewWindowSize returns the default main window size
func NewWindowSize() fyne.Size {
	return fyne.NewSize(WindowWidth, WindowHeight)
}

// NewPreviewMinSize returns the minimum size for the worksheet preview
func NewPreviewMinSize() fyne.Size {
	return fyne.NewSize(PreviewMinWidth, PreviewMinHeight)
}

// NewPresentationSize returns the initial presentation window size
func NewPresentationSize() fyne.Size {
	return fyne.NewSize(PresentationWidth, PresentationHeight)
}
