package ui

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/marktide/marktide/internal/editor"
	"github.com/marktide/marktide/internal/editor/markup"
	"github.com/marktide/marktide/internal/editor/selection"
	"github.com/marktide/marktide/internal/editor/textutil"
)

// Actions is the file-level surface the UI delegates to. The application
// layer owns hooks, storage, and conversion; the UI only collects paths.
type Actions interface {
	OpenDocument(path string) error
	SaveDocument(path string) error

	// ExportHTML writes the rendered document to a printable HTML file and
	// returns its path.
	ExportHTML() (string, error)
}

// Options configures the UI.
type Options struct {
	// Preview shows the rendered pane at startup.
	Preview bool

	// LineHeight is the per-line height used for outline scroll targets.
	LineHeight int

	// Render produces the preview pane's content from the document text.
	Render func(markdown string) string
}

// UI runs the dual-pane terminal surface over one editing session.
type UI struct {
	screen  tcell.Screen
	session *editor.Session
	actions Actions

	edit    *Viewport
	preview *Viewport
	syncer  *Synchronizer

	render      func(string) string
	showPreview bool
	lineHeight  int

	width  int
	height int
	status string

	prompt       *prompt
	headingCycle int
	quit         bool
}

type prompt struct {
	label string
	input []rune
	done  func(string)
}

// New creates the UI over an initialized-but-not-started screen.
func New(screen tcell.Screen, session *editor.Session, actions Actions, opts Options) *UI {
	render := opts.Render
	if render == nil {
		render = func(s string) string { return s }
	}
	lineHeight := opts.LineHeight
	if lineHeight < 1 {
		lineHeight = 1
	}

	u := &UI{
		screen:      screen,
		session:     session,
		actions:     actions,
		edit:        NewViewport(1),
		preview:     NewViewport(1),
		render:      render,
		showPreview: opts.Preview,
		lineHeight:  lineHeight,
	}
	u.syncer = NewSynchronizer(u.edit, u.preview)
	return u
}

// Run drives the event loop until quit.
func (u *UI) Run() error {
	if err := u.screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer u.screen.Fini()
	u.screen.EnableMouse()
	u.layout()

	for !u.quit {
		u.draw()
		// Selection restoration and the sync guard are serviced strictly
		// after redraw.
		if u.tick() {
			u.draw()
		}

		ev := u.screen.PollEvent()
		if ev == nil {
			return nil
		}
		switch ev := ev.(type) {
		case *tcell.EventResize:
			u.layout()
		case *tcell.EventKey:
			u.handleKey(ev)
		case *tcell.EventMouse:
			u.handleMouse(ev)
		}
	}
	return nil
}

// tick drains the session's queued selection and clears the scroll sync
// guard. Returns true if the visible state changed and needs another draw.
func (u *UI) tick() bool {
	changed := false
	if sel, ok := u.session.TakePendingSelection(); ok {
		u.session.SetSelection(sel)
		line, _, _ := textutil.LineAt(u.session.Text(), sel.Head)
		u.edit.EnsureVisible(line)
		changed = true
	}
	u.syncer.Tick()
	return changed
}

func (u *UI) layout() {
	u.width, u.height = u.screen.Size()
	paneH := u.height - 1
	if paneH < 1 {
		paneH = 1
	}
	u.edit.SetHeight(paneH)
	u.preview.SetHeight(paneH)
}

func (u *UI) editWidth() int {
	if !u.showPreview {
		return u.width
	}
	return (u.width - 1) / 2
}

// ============================================================================
// Input
// ============================================================================

func (u *UI) handleKey(ev *tcell.EventKey) {
	if u.prompt != nil {
		u.handlePrompt(ev)
		return
	}

	if lvl := HeadingLevel(ev); lvl > 0 {
		u.report(u.session.SetHeadingLevel(lvl))
		return
	}
	if ev.Modifiers()&tcell.ModAlt != 0 {
		switch ev.Key() {
		case tcell.KeyUp:
			u.report(u.session.ShiftHeadingLevel(-1))
			return
		case tcell.KeyDown:
			u.report(u.session.ShiftHeadingLevel(1))
			return
		}
	}

	switch Lookup(ev) {
	case CmdUndo:
		u.session.Undo()
		return
	case CmdRedo:
		u.session.Redo()
		return
	case CmdBold:
		u.report(u.session.ToggleMarkup(markup.Bold))
		return
	case CmdItalic:
		u.report(u.session.ToggleMarkup(markup.Italic))
		return
	case CmdUnderline:
		u.report(u.session.ToggleMarkup(markup.Underline))
		return
	case CmdStrikethrough:
		u.report(u.session.ToggleMarkup(markup.Strikethrough))
		return
	case CmdCode:
		u.report(u.session.ToggleMarkup(markup.Code))
		return
	case CmdComment:
		u.report(u.session.ToggleMarkup(markup.Comment))
		return
	case CmdLink:
		u.report(u.session.InsertLink())
		return
	case CmdImage:
		u.report(u.session.InsertImage())
		return
	case CmdCut:
		u.report(u.session.Cut())
		return
	case CmdCopy:
		u.report(u.session.Copy())
		return
	case CmdPaste:
		u.report(u.session.Paste())
		return
	case CmdOpen:
		u.startPrompt("Open: ", func(path string) {
			u.report(u.actions.OpenDocument(path))
		})
		return
	case CmdSave:
		if path := u.session.Path(); path != "" {
			u.report(u.actions.SaveDocument(path))
			return
		}
		fallthrough
	case CmdSaveAs:
		u.startPrompt("Save as: ", func(path string) {
			u.report(u.actions.SaveDocument(path))
		})
		return
	case CmdNextHeading:
		u.jumpNextHeading()
		return
	case CmdTogglePreview:
		u.showPreview = !u.showPreview
		u.layout()
		return
	case CmdPrint:
		path, err := u.actions.ExportHTML()
		if err != nil {
			u.report(err)
			return
		}
		u.status = "exported " + path
		return
	case CmdQuit:
		u.quit = true
		return
	}

	switch ev.Key() {
	case tcell.KeyRune:
		if ev.Modifiers()&(tcell.ModCtrl|tcell.ModAlt) == 0 {
			u.report(u.session.InsertText(string(ev.Rune())))
		}
	case tcell.KeyEnter:
		u.report(u.session.InsertText("\n"))
	case tcell.KeyTab:
		u.report(u.session.InsertText("\t"))
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		u.report(u.session.DeleteBackward())
	case tcell.KeyDelete:
		u.report(u.session.DeleteForward())
	case tcell.KeyLeft, tcell.KeyRight, tcell.KeyUp, tcell.KeyDown,
		tcell.KeyHome, tcell.KeyEnd:
		u.moveCaret(ev)
	case tcell.KeyPgUp:
		u.edit.ScrollBy(-u.edit.Height())
	case tcell.KeyPgDn:
		u.edit.ScrollBy(u.edit.Height())
	}
}

func (u *UI) moveCaret(ev *tcell.EventKey) {
	text := u.session.Text()
	sel := u.session.Selection()
	head := sel.Head

	switch ev.Key() {
	case tcell.KeyLeft:
		head--
	case tcell.KeyRight:
		head++
	case tcell.KeyUp, tcell.KeyDown:
		idx, start, _ := textutil.LineAt(text, head)
		col := head - start
		target := idx - 1
		if ev.Key() == tcell.KeyDown {
			target = idx + 1
		}
		if target < 0 {
			head = 0
		} else {
			ts := textutil.LineStart(text, target)
			_, _, tl := textutil.LineAt(text, ts)
			if n := textutil.RuneLen(tl); col > n {
				col = n
			}
			head = ts + col
		}
	case tcell.KeyHome:
		_, start, _ := textutil.LineAt(text, head)
		head = start
	case tcell.KeyEnd:
		_, start, line := textutil.LineAt(text, head)
		head = start + textutil.RuneLen(line)
	}
	head = textutil.Clamp(text, head)

	if ev.Modifiers()&tcell.ModShift != 0 {
		u.session.SetSelection(selection.New(sel.Anchor, head))
	} else {
		u.session.SetSelection(selection.Caret(head))
	}
	line, _, _ := textutil.LineAt(text, head)
	u.edit.EnsureVisible(line)
}

func (u *UI) handleMouse(ev *tcell.EventMouse) {
	x, _ := ev.Position()
	v := u.edit
	if u.showPreview && x > u.editWidth() {
		v = u.preview
	}
	switch {
	case ev.Buttons()&tcell.WheelUp != 0:
		v.ScrollBy(-3)
	case ev.Buttons()&tcell.WheelDown != 0:
		v.ScrollBy(3)
	}
}

func (u *UI) jumpNextHeading() {
	hs := u.session.Outline()
	if len(hs) == 0 {
		u.status = "no headings"
		return
	}
	if u.headingCycle >= len(hs) {
		u.headingCycle = 0
	}
	h := hs[u.headingCycle]
	u.headingCycle++

	top := u.session.JumpToHeading(h, u.lineHeight, u.edit.Height())
	u.edit.SetScrollTop(top)
}

func (u *UI) startPrompt(label string, done func(string)) {
	u.prompt = &prompt{label: label, done: done}
}

func (u *UI) handlePrompt(ev *tcell.EventKey) {
	p := u.prompt
	switch ev.Key() {
	case tcell.KeyEscape:
		u.prompt = nil
	case tcell.KeyEnter:
		u.prompt = nil
		if input := strings.TrimSpace(string(p.input)); input != "" {
			p.done(input)
		}
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if len(p.input) > 0 {
			p.input = p.input[:len(p.input)-1]
		}
	case tcell.KeyRune:
		p.input = append(p.input, ev.Rune())
	}
}

func (u *UI) report(err error) {
	if err != nil {
		u.status = err.Error()
		return
	}
	u.status = ""
}

// ============================================================================
// Drawing
// ============================================================================

func (u *UI) draw() {
	u.screen.Clear()

	text := u.session.Text()
	lines := strings.Split(text, "\n")
	u.edit.SetContentHeight(len(lines))

	u.drawEdit(text, lines)
	if u.showPreview {
		u.drawDivider()
		u.drawPreview(text)
	}
	u.drawStatus()
	u.screen.Show()
}

func (u *UI) drawEdit(text string, lines []string) {
	sel := u.session.Selection()
	selStart, selEnd := sel.Start(), sel.End()
	w := u.editWidth()
	top := u.edit.ScrollTop()

	offset := 0
	for i, line := range lines {
		row := i - top
		if row >= 0 && row < u.edit.Height() {
			col := 0
			for j, r := range []rune(line) {
				if col >= w {
					break
				}
				style := tcell.StyleDefault
				if off := offset + j; off >= selStart && off < selEnd {
					style = style.Reverse(true)
				}
				u.screen.SetContent(col, row, r, nil, style)
				col++
			}
		}
		offset += textutil.RuneLen(line) + 1
	}

	if u.prompt == nil {
		idx, start, _ := textutil.LineAt(text, sel.Head)
		row := idx - top
		col := sel.Head - start
		if row >= 0 && row < u.edit.Height() && col < w {
			u.screen.ShowCursor(col, row)
		} else {
			u.screen.HideCursor()
		}
	}
}

func (u *UI) drawDivider() {
	x := u.editWidth()
	style := tcell.StyleDefault.Dim(true)
	for y := 0; y < u.height-1; y++ {
		u.screen.SetContent(x, y, '│', nil, style)
	}
}

func (u *UI) drawPreview(text string) {
	x0 := u.editWidth() + 1
	w := u.width - x0
	if w < 1 {
		return
	}

	lines := wrap(u.render(text), w)
	u.preview.SetContentHeight(len(lines))

	style := tcell.StyleDefault.Dim(true)
	top := u.preview.ScrollTop()
	for row := 0; row < u.preview.Height(); row++ {
		i := top + row
		if i >= len(lines) {
			break
		}
		col := 0
		for _, r := range lines[i] {
			if col >= w {
				break
			}
			u.screen.SetContent(x0+col, row, r, nil, style)
			col++
		}
	}
}

func (u *UI) drawStatus() {
	row := u.height - 1
	style := tcell.StyleDefault.Reverse(true)

	var line string
	if u.prompt != nil {
		line = u.prompt.label + string(u.prompt.input)
		u.screen.ShowCursor(textutil.RuneLen(line), row)
	} else {
		path := u.session.Path()
		if path == "" {
			path = "[untitled]"
		}
		mark := ""
		if u.session.Dirty() {
			mark = " +"
		}
		line = fmt.Sprintf(" %s%s", path, mark)
		if u.status != "" {
			line += "  " + u.status
		}
	}

	col := 0
	for _, r := range line {
		if col >= u.width {
			break
		}
		u.screen.SetContent(col, row, r, nil, style)
		col++
	}
	for ; col < u.width; col++ {
		u.screen.SetContent(col, row, ' ', nil, style)
	}
}

// wrap word-wraps s to the given width, preserving blank lines.
func wrap(s string, width int) []string {
	var out []string
	for _, para := range strings.Split(s, "\n") {
		if para == "" {
			out = append(out, "")
			continue
		}
		words := strings.Fields(para)
		if len(words) == 0 {
			out = append(out, "")
			continue
		}
		cur := words[0]
		for _, word := range words[1:] {
			if textutil.RuneLen(cur)+1+textutil.RuneLen(word) <= width {
				cur += " " + word
			} else {
				out = append(out, cur)
				cur = word
			}
		}
		out = append(out, cur)
	}
	return out
}
