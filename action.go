package m3ui

// Action is a capability a widget invokes in response to user input, such
// as a tooltip's action link or a text field's trailing icon. Actions run
// synchronously during the widget call that detected the input.
type Action interface {
	Invoke()
}

// ActionFunc adapts a plain function to Action.
type ActionFunc func()

// Invoke calls f.
func (f ActionFunc) Invoke() {
	if f != nil {
		f()
	}
}

// invokeAction runs a if it is set.
func invokeAction(name string, a Action) {
	if a == nil {
		return
	}
	if uiVerbose() {
		uiLogger.Debug("invoke action", "name", name)
	}
	a.Invoke()
}
