package textutil

import "testing"

func TestLineAt(t *testing.T) {
	text := "# A\ntext\n## B"

	tests := []struct {
		name      string
		offset    int
		wantIndex int
		wantStart int
		wantLine  string
	}{
		{"start of document", 0, 0, 0, "# A"},
		{"middle of first line", 2, 0, 0, "# A"},
		{"end of first line", 3, 0, 0, "# A"},
		{"start of second line", 4, 1, 4, "text"},
		{"end of second line", 8, 1, 4, "text"},
		{"last line", 10, 2, 9, "## B"},
		{"end of document", 13, 2, 9, "## B"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			index, start, line := LineAt(text, tt.offset)
			if index != tt.wantIndex || start != tt.wantStart || line != tt.wantLine {
				t.Errorf("LineAt(%d) = (%d, %d, %q), want (%d, %d, %q)",
					tt.offset, index, start, line, tt.wantIndex, tt.wantStart, tt.wantLine)
			}
		})
	}
}

func TestLineAtEmptyDocument(t *testing.T) {
	index, start, line := LineAt("", 0)
	if index != 0 || start != 0 || line != "" {
		t.Errorf("LineAt on empty document = (%d, %d, %q)", index, start, line)
	}
}

func TestLineStart(t *testing.T) {
	text := "ab\ncde\nf"
	tests := []struct {
		index int
		want  int
	}{
		{0, 0},
		{1, 3},
		{2, 7},
		{9, 7}, // past the end clamps to the last line
	}
	for _, tt := range tests {
		if got := LineStart(text, tt.index); got != tt.want {
			t.Errorf("LineStart(%d) = %d, want %d", tt.index, got, tt.want)
		}
	}
}

func TestTrimBounds(t *testing.T) {
	tests := []struct {
		name       string
		text       string
		start, end int
		wantStart  int
		wantEnd    int
	}{
		{"no whitespace", "hello", 0, 5, 0, 5},
		{"leading and trailing", "  hello  ", 0, 9, 2, 7},
		{"interior only", "a b c", 0, 5, 0, 5},
		{"whitespace only", "    ", 0, 4, 0, 0},
		{"empty selection", "hello", 2, 2, 2, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, e := TrimBounds(tt.text, tt.start, tt.end)
			if s != tt.wantStart || e != tt.wantEnd {
				t.Errorf("TrimBounds = (%d, %d), want (%d, %d)", s, e, tt.wantStart, tt.wantEnd)
			}
		})
	}
}

func TestSplice(t *testing.T) {
	tests := []struct {
		name       string
		text       string
		start, end int
		repl       string
		want       string
	}{
		{"insert", "hello", 2, 2, "XX", "heXXllo"},
		{"replace", "hello", 1, 4, "-", "h-o"},
		{"delete", "hello", 0, 2, "", "llo"},
		{"append", "ab", 2, 2, "c", "abc"},
		{"multibyte", "héllo", 1, 2, "e", "hello"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Splice(tt.text, tt.start, tt.end, tt.repl); got != tt.want {
				t.Errorf("Splice = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSlice(t *testing.T) {
	if got := Slice("héllo", 1, 3); got != "él" {
		t.Errorf("Slice = %q, want %q", got, "él")
	}
	if got := Slice("abc", 2, 1); got != "" {
		t.Errorf("Slice with inverted bounds = %q, want empty", got)
	}
}

func TestClamp(t *testing.T) {
	if got := Clamp("abc", -1); got != 0 {
		t.Errorf("Clamp(-1) = %d", got)
	}
	if got := Clamp("abc", 10); got != 3 {
		t.Errorf("Clamp(10) = %d", got)
	}
	if got := Clamp("abc", 2); got != 2 {
		t.Errorf("Clamp(2) = %d", got)
	}
}
