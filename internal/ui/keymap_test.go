package ui

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func key(k tcell.Key, mod tcell.ModMask) *tcell.EventKey {
	return tcell.NewEventKey(k, 0, mod)
}

func TestLookup(t *testing.T) {
	tests := []struct {
		name string
		ev   *tcell.EventKey
		want Command
	}{
		{"undo", key(tcell.KeyCtrlZ, tcell.ModCtrl), CmdUndo},
		{"redo shift", key(tcell.KeyCtrlZ, tcell.ModCtrl|tcell.ModShift), CmdRedo},
		{"redo ctrl-y", key(tcell.KeyCtrlY, tcell.ModCtrl), CmdRedo},
		{"open", key(tcell.KeyCtrlO, tcell.ModCtrl), CmdOpen},
		{"save", key(tcell.KeyCtrlS, tcell.ModCtrl), CmdSave},
		{"save as", key(tcell.KeyCtrlS, tcell.ModCtrl|tcell.ModShift), CmdSaveAs},
		{"bold", key(tcell.KeyCtrlB, tcell.ModCtrl), CmdBold},
		{"italic", key(tcell.KeyTab, tcell.ModCtrl), CmdItalic},
		{"plain tab is not italic", key(tcell.KeyTab, tcell.ModNone), CmdNone},
		{"underline", key(tcell.KeyCtrlU, tcell.ModCtrl), CmdUnderline},
		{"strikethrough", key(tcell.KeyCtrlD, tcell.ModCtrl), CmdStrikethrough},
		{"code", key(tcell.KeyCtrlE, tcell.ModCtrl), CmdCode},
		{"comment", key(tcell.KeyCtrlUnderscore, tcell.ModCtrl), CmdComment},
		{"link", key(tcell.KeyCtrlK, tcell.ModCtrl), CmdLink},
		{"image", key(tcell.KeyCtrlK, tcell.ModCtrl|tcell.ModShift), CmdImage},
		{"quit", key(tcell.KeyCtrlQ, tcell.ModCtrl), CmdQuit},
		{"plain rune", tcell.NewEventKey(tcell.KeyRune, 'a', tcell.ModNone), CmdNone},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Lookup(tt.ev); got != tt.want {
				t.Errorf("Lookup = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestHeadingLevel(t *testing.T) {
	if got := HeadingLevel(tcell.NewEventKey(tcell.KeyRune, '3', tcell.ModAlt)); got != 3 {
		t.Errorf("Alt+3 = %d, want 3", got)
	}
	if got := HeadingLevel(tcell.NewEventKey(tcell.KeyRune, '3', tcell.ModNone)); got != 0 {
		t.Errorf("bare 3 = %d, want 0", got)
	}
	if got := HeadingLevel(tcell.NewEventKey(tcell.KeyRune, '7', tcell.ModAlt)); got != 0 {
		t.Errorf("Alt+7 = %d, want 0", got)
	}
}
