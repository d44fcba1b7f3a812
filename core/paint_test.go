package core

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
)

type staticOutlet string

func (o staticOutlet) View(int, int) string { return string(o) }

func plainLines(s string) []string {
	lines := strings.Split(ansi.Strip(s), "\n")
	for i := range lines {
		lines[i] = strings.TrimRight(lines[i], " ")
	}
	return lines
}

func TestPaintFillsOutletBelowText(t *testing.T) {
	tree := Node{Kind: KindContainer, Name: "root", Class: "app", Children: []Node{
		{Kind: KindText, Text: "heading"},
		{Kind: KindOutlet, Name: "router-outlet"},
	}}
	got := plainLines(Paint(tree, staticOutlet("a\nb\nc"), 20, 3))
	want := []string{"heading", "a", "b"}
	if strings.Join(got, "|") != strings.Join(want, "|") {
		t.Fatalf("paint = %q, want %q", got, want)
	}
}

func TestPaintShellWithoutOutletIsBlank(t *testing.T) {
	got := plainLines(Paint(New().Render(), nil, 10, 2))
	if len(got) != 2 || got[0] != "" || got[1] != "" {
		t.Fatalf("expected two blank lines, got %q", got)
	}
}

func TestPaintTruncatesToWidth(t *testing.T) {
	got := plainLines(Paint(New().Render(), staticOutlet("abcdefghij"), 4, 1))
	if len(got) != 1 || got[0] != "abcd" {
		t.Fatalf("paint = %q, want [abcd]", got)
	}
}

func TestPaintZeroArea(t *testing.T) {
	if got := Paint(New().Render(), staticOutlet("x"), 0, 5); got != "" {
		t.Fatalf("expected empty paint for zero width, got %q", got)
	}
	if got := Paint(New().Render(), staticOutlet("x"), 5, 0); got != "" {
		t.Fatalf("expected empty paint for zero height, got %q", got)
	}
}
