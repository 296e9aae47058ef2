package m3ui

import "fmt"

// ProtocolError reports a broken call sequence: unbalanced Begin/End or
// Push/Pop pairs, or an allocation with no open container.
//
// These are programming errors. The toolkit logs them and panics with a
// *ProtocolError; a frame that hits one cannot be continued.
type ProtocolError struct {
	Op     string // API call that detected the violation
	Detail string
}

func (e *ProtocolError) Error() string {
	return fmt.Sprintf("m3ui: %s: %s", e.Op, e.Detail)
}

// protocolViolation logs and panics with a *ProtocolError.
func protocolViolation(op, format string, args ...any) {
	err := &ProtocolError{Op: op, Detail: fmt.Sprintf(format, args...)}
	uiLogger.Error("protocol violation", "op", op, "detail", err.Detail)
	panic(err)
}
