package sidebar

// Action names for sidebar operations.
const (
	ActionSelect  = "sidebar.select"  // RET
	ActionNext    = "sidebar.next"    // n, j
	ActionPrev    = "sidebar.prev"    // p, k
	ActionRefresh = "sidebar.refresh" // g
	ActionClose   = "sidebar.close"   // q
)

// Binding maps a key chord to a sidebar action.
type Binding struct {
	// Keys is the key sequence that triggers this binding.
	Keys string

	// Action is the sidebar action to execute.
	Action string

	// Description documents the binding.
	Description string
}

// DefaultKeymap returns the default sidebar bindings.
func DefaultKeymap() []Binding {
	return []Binding{
		{Keys: "RET", Action: ActionSelect, Description: "Switch to buffer on this line"},
		{Keys: "n", Action: ActionNext, Description: "Move to next buffer"},
		{Keys: "j", Action: ActionNext, Description: "Move to next buffer"},
		{Keys: "p", Action: ActionPrev, Description: "Move to previous buffer"},
		{Keys: "k", Action: ActionPrev, Description: "Move to previous buffer"},
		{Keys: "g", Action: ActionRefresh, Description: "Refresh the buffer list"},
		{Keys: "q", Action: ActionClose, Description: "Close the sidebar"},
	}
}

// Dispatch executes a sidebar action by name. Hosts route key input
// through their own dispatch and call this with the bound action.
func (s *Sidebar) Dispatch(action string) error {
	switch action {
	case ActionSelect:
		return s.Select()
	case ActionNext:
		s.MoveNext()
		return nil
	case ActionPrev:
		s.MovePrev()
		return nil
	case ActionRefresh:
		return s.Refresh()
	case ActionClose:
		return s.Close()
	default:
		return ErrUnknownAction
	}
}
