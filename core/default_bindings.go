package core

import (
	"fmt"
	"strings"
)

const (
	ActionQuit       = "quit"
	ActionBack       = "back"
	ActionHome       = "home"
	ActionSelectPrev = "select-prev"
	ActionSelectNext = "select-next"
	ActionOpen       = "open"
)

func DefaultKeyBindings() []KeyBinding {
	return []KeyBinding{
		{Keys: []string{"q"}, Action: ActionQuit, Description: "quit", Scopes: []string{"*"}},
		{Keys: []string{"esc", "backspace"}, Action: ActionBack, Description: "back", Scopes: []string{"*"}},
		{Keys: []string{"h"}, Action: ActionHome, Description: "home", Scopes: []string{"*"}},
		{Keys: []string{"k", "up"}, Action: ActionSelectPrev, Description: "up", Scopes: []string{"view:home"}},
		{Keys: []string{"j", "down"}, Action: ActionSelectNext, Description: "down", Scopes: []string{"view:home"}},
		{Keys: []string{"enter"}, Action: ActionOpen, Description: "open", Scopes: []string{"view:home"}},
	}
}

// ApplyActionKeybindings replaces the keys of every binding whose action has
// an entry in actionKeys. Unknown actions are rejected so a typo in
// configuration does not silently leave the default in place.
func ApplyActionKeybindings(bindings []KeyBinding, actionKeys map[string][]string) ([]KeyBinding, error) {
	known := make(map[string]bool, len(bindings))
	for _, b := range bindings {
		known[b.Action] = true
	}
	for action, keys := range actionKeys {
		if !known[action] {
			return nil, fmt.Errorf("unknown key action %q", action)
		}
		if len(keys) == 0 {
			return nil, fmt.Errorf("key action %q has no keys", action)
		}
		for _, k := range keys {
			if strings.TrimSpace(k) == "" {
				return nil, fmt.Errorf("key action %q has an empty key", action)
			}
		}
	}

	out := make([]KeyBinding, 0, len(bindings))
	for _, b := range bindings {
		next := KeyBinding{
			Keys:        append([]string(nil), b.Keys...),
			Action:      b.Action,
			Description: b.Description,
			Scopes:      append([]string(nil), b.Scopes...),
		}
		if keys, ok := actionKeys[b.Action]; ok {
			next.Keys = append([]string(nil), keys...)
		}
		out = append(out, next)
	}
	return out, nil
}
