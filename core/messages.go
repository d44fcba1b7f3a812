package core

type StatusMsg struct {
	Text  string
	IsErr bool
}

// NavigateMsg asks the navigator to mount the view for Path.
type NavigateMsg struct {
	Path string
}

// BackMsg asks the navigator to return to the previous location.
type BackMsg struct{}
