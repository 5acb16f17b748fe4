package ui

import "github.com/gdamore/tcell/v2"

// Command is an editor action bound to a key chord.
type Command int

const (
	CmdNone Command = iota
	CmdUndo
	CmdRedo
	CmdOpen
	CmdSave
	CmdSaveAs
	CmdBold
	CmdItalic
	CmdUnderline
	CmdStrikethrough
	CmdCode
	CmdComment
	CmdLink
	CmdImage
	CmdCut
	CmdCopy
	CmdPaste
	CmdNextHeading
	CmdTogglePreview
	CmdPrint
	CmdQuit
)

// Lookup decodes a key event into a Command. CmdNone means the event is not
// a chord and should be treated as text input or navigation.
//
// Terminals conflate Ctrl+I with Tab; tcell reports both as KeyTab. The
// italic binding therefore requires the Ctrl modifier to be present, which
// terminals supporting modifyOtherKeys or the kitty protocol deliver. A bare
// Tab stays available for indentation.
func Lookup(ev *tcell.EventKey) Command {
	shift := ev.Modifiers()&tcell.ModShift != 0

	switch ev.Key() {
	case tcell.KeyCtrlZ:
		if shift {
			return CmdRedo
		}
		return CmdUndo
	case tcell.KeyCtrlY:
		return CmdRedo
	case tcell.KeyCtrlO:
		return CmdOpen
	case tcell.KeyCtrlS:
		if shift {
			return CmdSaveAs
		}
		return CmdSave
	case tcell.KeyCtrlB:
		return CmdBold
	case tcell.KeyTab: // KeyTab == KeyCtrlI
		if ev.Modifiers()&tcell.ModCtrl != 0 {
			return CmdItalic
		}
	case tcell.KeyCtrlU:
		return CmdUnderline
	case tcell.KeyCtrlD:
		return CmdStrikethrough
	case tcell.KeyCtrlE:
		return CmdCode
	case tcell.KeyCtrlUnderscore: // Ctrl+/ on most terminals
		return CmdComment
	case tcell.KeyCtrlK:
		if shift {
			return CmdImage
		}
		return CmdLink
	case tcell.KeyCtrlX:
		return CmdCut
	case tcell.KeyCtrlC:
		return CmdCopy
	case tcell.KeyCtrlV:
		return CmdPaste
	case tcell.KeyCtrlG:
		return CmdNextHeading
	case tcell.KeyCtrlP:
		if shift {
			return CmdPrint
		}
		return CmdTogglePreview
	case tcell.KeyCtrlQ:
		return CmdQuit
	}
	return CmdNone
}

// HeadingLevel decodes Alt+1 through Alt+6 into a heading level. Zero means
// the event is not a heading chord.
func HeadingLevel(ev *tcell.EventKey) int {
	if ev.Key() != tcell.KeyRune || ev.Modifiers()&tcell.ModAlt == 0 {
		return 0
	}
	r := ev.Rune()
	if r < '1' || r > '6' {
		return 0
	}
	return int(r - '0')
}
