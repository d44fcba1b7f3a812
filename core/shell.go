package core

// AppTitle is the application name the shell is constructed with.
const AppTitle = "camunda-angular"

const (
	rootElement   = "ca-root"
	outletElement = "router-outlet"
)

// Shell is the root of the visual containment tree. It owns the application
// title and provides the mount point for routed views; what fills that mount
// point is decided by the navigator, never by the shell.
type Shell struct {
	title   string
	mounted bool
}

func New() *Shell {
	return &Shell{title: AppTitle, mounted: true}
}

func (s *Shell) Title() string {
	return s.title
}

// Mounted reports whether construction completed. A constructed shell stays
// mounted for the life of the process; teardown belongs to the runtime.
func (s *Shell) Mounted() bool {
	return s != nil && s.mounted
}

// Render returns the shell template: a styled container holding exactly one
// outlet placeholder. It reads no state beyond the immutable title, so repeated
// calls yield equal trees.
func (s *Shell) Render() Node {
	return Node{
		Kind:  KindContainer,
		Name:  rootElement,
		Class: "app",
		Children: []Node{
			{Kind: KindOutlet, Name: outletElement},
		},
	}
}
