// Package keymap defines key bindings for the application.
package keymap

// Action represents a user-triggerable action.
type Action string

const (
	ActionQuit Action = "quit"

	// Manual scrolling
	ActionScrollDown Action = "scroll_down"
	ActionScrollUp   Action = "scroll_up"
	ActionPageDown   Action = "page_down"
	ActionPageUp     Action = "page_up"
	ActionTop        Action = "top"
	ActionBottom     Action = "bottom"

	// Return to playback-following mode
	ActionFollow Action = "follow"
)

// Binding describes a single key binding for documentation.
type Binding struct {
	Keys        []string
	Action      Action
	Description string
}

// All contains all key bindings for help generation.
var All = []Binding{
	{[]string{"q", "ctrl+c"}, ActionQuit, "Quit"},
	{[]string{"j", "down"}, ActionScrollDown, "Scroll down"},
	{[]string{"k", "up"}, ActionScrollUp, "Scroll up"},
	{[]string{"pgdown"}, ActionPageDown, "Page down"},
	{[]string{"pgup"}, ActionPageUp, "Page up"},
	{[]string{"g"}, ActionTop, "Jump to first line"},
	{[]string{"G"}, ActionBottom, "Jump to last line"},
	{[]string{"c"}, ActionFollow, "Follow playback"},
}

// Default resolves the bindings in All.
var Default = NewResolver(All)
