package vtable

// ActionHandler runs a table transition when its key triggers.
type ActionHandler func(t *Table) []Command

// ActionCondition returns true if the action can be executed.
type ActionCondition func(t *Table) bool

// ActionEntry holds a registered action with its key and handler.
type ActionEntry struct {
	Name      string          // Action name for debugging
	Key       KeyCode         // Triggers on press and key repeat
	Handler   ActionHandler   // Called when the key triggers
	Condition ActionCondition // Optional: must return true to execute (nil = always)
}

// ActionRegistry manages key-triggered table actions. The first registered
// action whose key triggers wins.
type ActionRegistry struct {
	actions []ActionEntry
}

// NewActionRegistry creates an empty action registry.
func NewActionRegistry() *ActionRegistry {
	return &ActionRegistry{actions: make([]ActionEntry, 0, 8)}
}

// DefaultActions returns the stock scrolling keys: PageUp/PageDown scroll by
// a viewport, Up/Down by one estimated row and Home/End jump to either end.
func DefaultActions() *ActionRegistry {
	r := NewActionRegistry()
	r.RegisterWithCondition("page-down", KeyPageDown, func(t *Table) []Command { return t.ScrollPages(1) }, scrollable)
	r.RegisterWithCondition("page-up", KeyPageUp, func(t *Table) []Command { return t.ScrollPages(-1) }, scrollable)
	r.RegisterWithCondition("row-down", KeyDown, func(t *Table) []Command { return t.ScrollBy(t.cfg.RowHeight) }, scrollable)
	r.RegisterWithCondition("row-up", KeyUp, func(t *Table) []Command { return t.ScrollBy(-t.cfg.RowHeight) }, scrollable)
	r.RegisterWithCondition("top", KeyHome, (*Table).ScrollToTop, scrollable)
	r.RegisterWithCondition("bottom", KeyEnd, (*Table).ScrollToBottom, scrollable)
	return r
}

// scrollable keeps scroll keys from flashing the scrollbar of a table whose
// rows all fit.
func scrollable(t *Table) bool {
	return t.Scrollbar().CanScroll
}

// Register adds an action for a key.
func (r *ActionRegistry) Register(name string, key KeyCode, handler ActionHandler) {
	r.actions = append(r.actions, ActionEntry{
		Name:    name,
		Key:     key,
		Handler: handler,
	})
}

// RegisterWithCondition adds an action with a condition that must be true to execute.
func (r *ActionRegistry) RegisterWithCondition(name string, key KeyCode, handler ActionHandler, condition ActionCondition) {
	r.actions = append(r.actions, ActionEntry{
		Name:      name,
		Key:       key,
		Handler:   handler,
		Condition: condition,
	})
}

// HandleActions runs the first action whose key triggers this frame and
// returns its commands.
func (r *ActionRegistry) HandleActions(in *InputState, t *Table) []Command {
	if r == nil {
		return nil
	}
	for i := range r.actions {
		a := &r.actions[i]
		if a.Handler == nil || !in.KeyRepeated(a.Key) {
			continue
		}
		if a.Condition != nil && !a.Condition(t) {
			continue
		}
		t.logger.Debug("action", "name", a.Name)
		return a.Handler(t)
	}
	return nil
}

// Unregister removes an action by name.
func (r *ActionRegistry) Unregister(name string) {
	for i, a := range r.actions {
		if a.Name == name {
			r.actions = append(r.actions[:i], r.actions[i+1:]...)
			return
		}
	}
}

// Clear removes all registered actions.
func (r *ActionRegistry) Clear() {
	r.actions = r.actions[:0]
}

// Len returns the number of registered actions.
func (r *ActionRegistry) Len() int {
	return len(r.actions)
}
