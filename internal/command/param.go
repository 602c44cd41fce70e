// Package command implements the chat command DSL: tokenizing raw
// command text, binding tokens to typed parameters, and dispatching
// registered, authorized handlers.
package command

import (
	"strconv"

	"github.com/fadedcity/prismbot/internal/errors"
)

// Converter turns a raw token into a typed value. A failing converter is
// reported as a PARAM error naming the parameter and the offending text.
type Converter func(raw string) (any, error)

// IntConverter converts a token to an int.
func IntConverter(raw string) (any, error) {
	n, err := strconv.Atoi(raw)
	if err != nil {
		return nil, errors.Paramf("expected an integer, got %q", raw)
	}
	return n, nil
}

// ParamSpec declares one parameter of a command.
type ParamSpec struct {
	// Name identifies the parameter in help and error messages.
	Name string

	// Optional parameters bind to Default when no token is supplied.
	Optional bool

	// Default is the value bound when an optional parameter is absent.
	Default any

	// Converter types the raw token. When unset the raw string is bound.
	Converter Converter

	// Collect gathers all remaining tokens into a sequence. Only legal
	// as the final parameter of a command.
	Collect bool
}

// RawValue is a tokenizer output slot for one parameter.
type RawValue struct {
	Present bool
	Value   string   // single-token parameters
	Values  []string // collect parameters
}

// Bind converts a raw tokenizer value into the parameter's typed value.
func (p *ParamSpec) Bind(raw RawValue) (any, error) {
	if !raw.Present {
		if p.Optional {
			return p.Default, nil
		}
		return nil, errors.Paramf("missing required parameter %q", p.Name)
	}

	if p.Collect {
		if p.Converter == nil {
			return raw.Values, nil
		}
		converted := make([]any, 0, len(raw.Values))
		for _, v := range raw.Values {
			value, err := p.Converter(v)
			if err != nil {
				return nil, errors.Paramf("invalid value for parameter %q: %q", p.Name, v)
			}
			converted = append(converted, value)
		}
		return converted, nil
	}

	if p.Converter == nil {
		return raw.Value, nil
	}
	value, err := p.Converter(raw.Value)
	if err != nil {
		return nil, errors.Paramf("invalid value for parameter %q: %q", p.Name, raw.Value)
	}
	return value, nil
}
