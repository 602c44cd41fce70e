package command

import (
	"github.com/fadedcity/prismbot/internal/chat"
)

// Invocation carries a bound command call into its handler: the
// originating chat message plus the typed parameter values.
type Invocation struct {
	Message *chat.Message

	args map[string]any
}

// NewInvocation builds an invocation for a handler call. Exposed for
// orchestrator tests that drive handlers without a dispatcher.
func NewInvocation(msg *chat.Message, args map[string]any) *Invocation {
	if args == nil {
		args = make(map[string]any)
	}
	return &Invocation{Message: msg, args: args}
}

// String returns a string parameter, or "" when unset.
func (inv *Invocation) String(name string) string {
	v, _ := inv.args[name].(string)
	return v
}

// Int returns an int parameter, or 0 when unset.
func (inv *Invocation) Int(name string) int {
	v, _ := inv.args[name].(int)
	return v
}

// Strings returns a collect parameter's token sequence.
func (inv *Invocation) Strings(name string) []string {
	v, _ := inv.args[name].([]string)
	return v
}
