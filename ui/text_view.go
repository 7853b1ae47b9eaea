package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"github.com/adamlewis-97/timestableworksheet/internal/format"
	"github.com/adamlewis-97/timestableworksheet/internal/model"
)

// TextView shows the plain-text rendition of the current worksheet with its
// answer key, the same text the TXT export saves. The text is read-only but
// selectable, so it can be copied straight into an email or a document.
type TextView struct {
	entry     *copyableEntry
	scrollBox *container.Scroll
}

// NewTextView creates an empty text view.
func NewTextView() *TextView {
	tv := &TextView{}

	tv.entry = newCopyableEntry()
	tv.entry.SetText("Generate a worksheet to see its text form.")

	tv.scrollBox = container.NewVScroll(tv.entry)
	tv.scrollBox.SetMinSize(NewPreviewMinSize())

	return tv
}

// Container returns the text view's container.
func (tv *TextView) Container() *container.Scroll {
	return tv.scrollBox
}

// SetWorksheet replaces the text with the given worksheet and its answer key.
func (tv *TextView) SetWorksheet(ws *model.Worksheet, columns int) {
	text := format.FormatWorksheet(ws, columns) + "\n" + format.FormatAnswerKey(ws, columns)
	tv.entry.SetText(text)
	tv.scrollBox.ScrollToTop()
}

// copyableEntry is an Entry that allows selection and copy but rejects all
// edits. Wrapping stays off so the aligned question columns keep their shape.
type copyableEntry struct {
	widget.Entry
}

func newCopyableEntry() *copyableEntry {
	e := &copyableEntry{}
	e.MultiLine = true
	e.Wrapping = fyne.TextWrapOff
	e.TextStyle = fyne.TextStyle{Monospace: true}
	e.ExtendBaseWidget(e)
	return e
}

// TypedRune blocks all character input.
func (e *copyableEntry) TypedRune(_ rune) {}

// TypedKey allows only navigation and selection keys, blocks editing keys.
func (e *copyableEntry) TypedKey(ev *fyne.KeyEvent) {
	switch ev.Name {
	case fyne.KeyBackspace, fyne.KeyDelete, fyne.KeyReturn, fyne.KeyEnter, fyne.KeyTab:
		return // block editing keys
	}
	e.Entry.TypedKey(ev)
}

// TypedShortcut allows copy and select-all, blocks cut and paste.
func (e *copyableEntry) TypedShortcut(s fyne.Shortcut) {
	switch s.(type) {
	case *fyne.ShortcutCopy, *fyne.ShortcutSelectAll:
		e.Entry.TypedShortcut(s)
	case *desktop.CustomShortcut:
		e.Entry.TypedShortcut(s)
	}
	// Block paste, cut, and other modifying shortcuts
}
