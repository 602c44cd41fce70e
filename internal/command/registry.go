package command

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/fadedcity/prismbot/internal/errors"
)

// Handler executes a recognized, authorized, fully bound command.
type Handler func(ctx context.Context, inv *Invocation) error

// Spec declares one chat command: its handler, help text, authorization
// requirements, and parameter table. Specs are built once at registration
// and immutable afterwards except for the enabled flag, which the
// registry sets from the scenario's allow-list.
type Spec struct {
	Name    string
	Handler Handler
	Help    string

	// Independent authorization requirements, all checked before dispatch.
	RequiresCharacter bool
	RequiresAdmin     bool
	RequiresRoom      bool

	Params []ParamSpec

	// DeleteInvocation removes the triggering chat message after the
	// handler succeeds, keeping rooms free of command noise.
	DeleteInvocation bool

	enabled bool
}

// Enabled reports whether the active scenario allows this command.
func (s *Spec) Enabled() bool {
	return s.enabled
}

// Usage renders the help line for the command.
func (s *Spec) Usage(prefix string) string {
	var b strings.Builder
	b.WriteString("**")
	b.WriteString(prefix)
	b.WriteString(s.Name)
	b.WriteString(" ")
	for _, p := range s.Params {
		if p.Optional {
			fmt.Fprintf(&b, "*%s* ", p.Name)
		} else {
			fmt.Fprintf(&b, "%s ", p.Name)
		}
	}
	if s.Help != "" {
		fmt.Fprintf(&b, "**- %s", s.Help)
	} else {
		b.WriteString("**")
	}
	return b.String()
}

// Registry maps command names to specs and owns the command prefix.
type Registry struct {
	prefix   string
	commands map[string]*Spec
}

// NewRegistry creates an empty registry with the given command prefix.
func NewRegistry(prefix string) *Registry {
	return &Registry{
		prefix:   prefix,
		commands: make(map[string]*Spec),
	}
}

// Prefix returns the command prefix character(s).
func (r *Registry) Prefix() string {
	return r.prefix
}

// Register validates and adds a command spec. Parameter tables are
// checked here so a misdeclared command fails at startup rather than on
// first use.
func (r *Registry) Register(spec *Spec) error {
	if spec == nil {
		return errors.InvalidArgument("spec cannot be nil")
	}
	if spec.Name == "" {
		return errors.InvalidArgument("command name cannot be empty")
	}
	if spec.Handler == nil {
		return errors.InvalidArgumentf("command %q has no handler", spec.Name)
	}
	if _, exists := r.commands[spec.Name]; exists {
		return errors.AlreadyExistsf("command %q is already registered", spec.Name)
	}

	for i, p := range spec.Params {
		if p.Name == "" {
			return errors.InvalidArgumentf("command %q has an unnamed parameter", spec.Name)
		}
		if p.Collect && i != len(spec.Params)-1 {
			return errors.InvalidArgumentf(
				"command %q declares collect parameter %q before the final position", spec.Name, p.Name)
		}
	}

	r.commands[spec.Name] = spec
	return nil
}

// Get looks up a command spec by name.
func (r *Registry) Get(name string) (*Spec, bool) {
	spec, ok := r.commands[name]
	return spec, ok
}

// Enable turns on every registered command present in the allow-list.
// Called once after registration, from the active scenario.
func (r *Registry) Enable(allowed []string) {
	set := make(map[string]bool, len(allowed))
	for _, name := range allowed {
		set[name] = true
	}
	for name, spec := range r.commands {
		if set[name] {
			spec.enabled = true
		}
	}
}

// Help assembles the help text for all enabled commands, hiding
// admin-only commands from regular users.
func (r *Registry) Help(isAdmin bool) string {
	names := make([]string, 0, len(r.commands))
	for name := range r.commands {
		names = append(names, name)
	}
	sort.Strings(names)

	var lines []string
	for _, name := range names {
		spec := r.commands[name]
		if !spec.enabled {
			continue
		}
		if spec.RequiresAdmin && !isAdmin {
			continue
		}
		lines = append(lines, spec.Usage(r.prefix))
	}
	return strings.Join(lines, "\n")
}
