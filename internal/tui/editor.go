package tui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/ewagner/quill/internal/document"
)

// Editor drives a full-screen terminal session over a single document.
// It owns the tcell screen for the lifetime of Run.
type Editor struct {
	screen tcell.Screen
	doc    *document.Document
	top    int // first visible buffer line
	status string
}

// New creates an editor for the document. The screen is not initialized
// until Run.
func New(doc *document.Document) (*Editor, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	return &Editor{screen: screen, doc: doc}, nil
}

// Run initializes the terminal and processes events until the user quits
// or an error occurs. It returns ErrQuit on a normal exit request.
func (e *Editor) Run() error {
	if err := e.screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer e.screen.Fini()

	for {
		e.draw()
		ev := e.screen.PollEvent()
		switch ev := ev.(type) {
		case *tcell.EventResize:
			e.screen.Sync()
		case *tcell.EventKey:
			if err := e.handleKey(ev); err != nil {
				return err
			}
		}
	}
}

func (e *Editor) handleKey(ev *tcell.EventKey) error {
	buf := e.doc.Buffer()
	e.status = ""

	switch ev.Key() {
	case tcell.KeyCtrlQ:
		return ErrQuit
	case tcell.KeyCtrlS:
		if err := e.doc.Save(); err != nil {
			e.status = err.Error()
			return nil
		}
		e.status = fmt.Sprintf("saved %s", e.doc.Name())
	case tcell.KeyLeft:
		buf.MoveCursorLeft()
	case tcell.KeyRight:
		buf.MoveCursorRight()
	case tcell.KeyUp:
		buf.MoveCursorUp()
	case tcell.KeyDown:
		buf.MoveCursorDown()
	case tcell.KeyHome:
		buf.MoveCursorLineStart()
	case tcell.KeyEnd:
		buf.MoveCursorLineEnd()
	case tcell.KeyCtrlA:
		buf.MoveCursorToStart()
	case tcell.KeyCtrlE:
		buf.MoveCursorToEnd()
	case tcell.KeyPgUp:
		_, rows := e.contentSize()
		for i := 0; i < rows; i++ {
			buf.MoveCursorUp()
		}
	case tcell.KeyPgDn:
		_, rows := e.contentSize()
		for i := 0; i < rows; i++ {
			buf.MoveCursorDown()
		}
	case tcell.KeyEnter:
		buf.InsertAtCursor(buf.DetectLineEnding().Sequence())
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if pos := buf.CursorPosition(); pos > 0 {
			buf.DeleteText(pos-1, 1)
		}
	case tcell.KeyDelete:
		buf.DeleteText(buf.CursorPosition(), 1)
	case tcell.KeyTab:
		buf.InsertAtCursor("\t")
	case tcell.KeyRune:
		buf.InsertAtCursor(string(ev.Rune()))
	}
	return nil
}

// contentSize returns the columns and rows available for buffer content,
// reserving the bottom row for the status line.
func (e *Editor) contentSize() (int, int) {
	w, h := e.screen.Size()
	if h > 0 {
		h--
	}
	return w, h
}

func (e *Editor) draw() {
	e.screen.Clear()
	buf := e.doc.Buffer()
	width, rows := e.contentSize()

	pos := buf.CursorLineColumn()
	e.top = clampScroll(e.top, pos.Line, rows)

	style := tcell.StyleDefault
	for row := 0; row < rows; row++ {
		lineNo := e.top + row
		if lineNo >= buf.LineCount() {
			break
		}
		x := 0
		for _, c := range lineCells(buf.Line(lineNo)) {
			if x >= width {
				break
			}
			runes := []rune(c.str)
			if len(runes) > 0 && runes[0] == ' ' {
				// Tab expansion: paint each column.
				for i := 0; i < c.width; i++ {
					e.screen.SetContent(x+i, row, ' ', nil, style)
				}
			} else if len(runes) > 0 {
				e.screen.SetContent(x, row, runes[0], runes[1:], style)
			}
			x += c.width
		}
	}

	e.drawStatus(width, rows)
	e.screen.ShowCursor(displayColumn(buf.Line(pos.Line), pos.Column), pos.Line-e.top)
	e.screen.Show()
}

func (e *Editor) drawStatus(width, row int) {
	buf := e.doc.Buffer()
	pos := buf.CursorLineColumn()

	dirty := ""
	if e.doc.Dirty() {
		dirty = " [+]"
	}
	left := fmt.Sprintf(" %s%s", e.doc.Name(), dirty)
	if e.status != "" {
		left += "  " + e.status
	}
	right := fmt.Sprintf("%d:%d  %s ", pos.Line+1, pos.Column+1, buf.DetectLineEnding())

	style := tcell.StyleDefault.Reverse(true)
	x := 0
	for _, r := range left {
		if x >= width {
			break
		}
		e.screen.SetContent(x, row, r, nil, style)
		x++
	}
	for ; x < width-len(right); x++ {
		e.screen.SetContent(x, row, ' ', nil, style)
	}
	for _, r := range right {
		if x >= width {
			break
		}
		e.screen.SetContent(x, row, r, nil, style)
		x++
	}
}
