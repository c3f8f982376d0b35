package cli

import tea "github.com/charmbracelet/bubbletea"

// Navigation messages used by views to request view transitions.
// The appModel handles these in its Update method.

// pushViewMsg pushes a new view onto the navigation stack.
type pushViewMsg struct {
	view View
}

// popViewMsg pops the current view off the navigation stack,
// returning to the previous view.
type popViewMsg struct{}

// noticeMsg carries a transient one-line notice (export result, opened
// share target) shown in the status area until the next key press.
type noticeMsg struct {
	text string
}

// shareMenuDoneMsg is sent when the share menu form completes or is
// cancelled. The appModel handles it atomically: pop the menu, then run
// nextCmd.
type shareMenuDoneMsg struct {
	nextCmd tea.Cmd
}

// pushView returns a tea.Cmd that pushes a view onto the stack.
func pushView(v View) tea.Cmd {
	return func() tea.Msg { return pushViewMsg{view: v} }
}

// popView returns a tea.Cmd that pops the current view.
func popView() tea.Cmd {
	return func() tea.Msg { return popViewMsg{} }
}

// notice returns a tea.Cmd that displays a transient notice.
func notice(text string) tea.Cmd {
	return func() tea.Msg { return noticeMsg{text: text} }
}
