package core

import "testing"

func TestNewShellHasFixedTitle(t *testing.T) {
	s := New()
	if got := s.Title(); got != "camunda-angular" {
		t.Fatalf("title = %q, want camunda-angular", got)
	}
	if !s.Mounted() {
		t.Fatalf("shell should be mounted once constructed")
	}
}

func TestRenderIsContainerWithSingleOutlet(t *testing.T) {
	tree := New().Render()
	if tree.Kind != KindContainer {
		t.Fatalf("root kind = %s, want container", tree.Kind)
	}
	if tree.Class == "" {
		t.Fatalf("root container should carry a style class")
	}
	if len(tree.Children) != 1 {
		t.Fatalf("root should have exactly one child, got %d", len(tree.Children))
	}
	if tree.Children[0].Kind != KindOutlet {
		t.Fatalf("child kind = %s, want outlet", tree.Children[0].Kind)
	}
	dynamic := 0
	tree.Walk(func(n Node) bool {
		if n.Kind == KindText {
			dynamic++
		}
		return true
	})
	if dynamic != 0 {
		t.Fatalf("shell template should carry no text content, found %d nodes", dynamic)
	}
}

func TestRenderKeepsTitleAndOutletStable(t *testing.T) {
	s := New()
	first := s.Render()
	title := s.Title()
	for i := 0; i < 50; i++ {
		tree := s.Render()
		if got := len(tree.Outlets()); got != 1 {
			t.Fatalf("render %d: outlets = %d, want 1", i, got)
		}
		if !tree.Equal(first) {
			t.Fatalf("render %d differs: %s vs %s", i, tree, first)
		}
		if s.Title() != title {
			t.Fatalf("render %d: title changed to %q", i, s.Title())
		}
	}
}

func TestRenderMarkup(t *testing.T) {
	want := `<ca-root class="app"><router-outlet/></ca-root>`
	if got := New().Render().String(); got != want {
		t.Fatalf("markup = %s, want %s", got, want)
	}
}

func TestMountedNilShell(t *testing.T) {
	var s *Shell
	if s.Mounted() {
		t.Fatalf("nil shell must not report mounted")
	}
}
