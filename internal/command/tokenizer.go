package command

import (
	"strings"

	"github.com/fadedcity/prismbot/internal/errors"
)

// Tokenize splits the text after a command name into one raw value per
// parameter spec.
//
// Tokens are whitespace-delimited; a token starting with a double quote
// runs to the next unescaped quote and must then be followed by
// whitespace or end-of-input. Two exceptions: the final non-collect
// parameter consumes the entire remainder verbatim, quotes included,
// unless the remainder starts with a quote, in which case it is read as
// one quoted token; and a collect parameter consumes tokens one at a
// time until the input is exhausted.
//
// Tokenize never pads with defaults; absent parameters are reported as
// not present and resolved during binding.
func Tokenize(input string, specs []ParamSpec) ([]RawValue, error) {
	values := make([]RawValue, len(specs))

	idx := 0
	for i := range specs {
		spec := &specs[i]

		if spec.Collect {
			values[i].Present = true
			values[i].Values = []string{}
			for {
				idx = skipSpaces(input, idx)
				if idx >= len(input) {
					break
				}
				token, next, err := readToken(input, idx)
				if err != nil {
					return nil, err
				}
				values[i].Values = append(values[i].Values, strings.TrimSpace(token))
				idx = next
			}
			continue
		}

		idx = skipSpaces(input, idx)
		if idx >= len(input) {
			continue
		}

		if i == len(specs)-1 {
			// The last declared parameter takes the remainder as-is so a
			// trailing free-text argument can contain arbitrary
			// punctuation and quotes. A remainder that itself starts with
			// a quote is read as one quoted token instead.
			if input[idx] == '"' {
				token, next, err := readToken(input, idx)
				if err != nil {
					return nil, err
				}
				if rest := strings.TrimSpace(input[next:]); rest != "" {
					return nil, errors.Parsef("unexpected text after quoted argument: %q", input[idx:])
				}
				values[i] = RawValue{Present: true, Value: strings.TrimSpace(token)}
			} else {
				values[i] = RawValue{Present: true, Value: strings.TrimSpace(input[idx:])}
			}
			idx = len(input)
			continue
		}

		token, next, err := readToken(input, idx)
		if err != nil {
			return nil, err
		}
		values[i] = RawValue{Present: true, Value: strings.TrimSpace(token)}
		idx = next
	}

	return values, nil
}

// readToken consumes one token starting at idx, which must not point at
// whitespace.
func readToken(s string, idx int) (string, int, error) {
	if s[idx] != '"' {
		start := idx
		for idx < len(s) && !isSpace(s[idx]) {
			idx++
		}
		return s[start:idx], idx, nil
	}

	idx++
	var b strings.Builder
	for idx < len(s) {
		c := s[idx]
		if c == '\\' && idx+1 < len(s) && s[idx+1] == '"' {
			b.WriteByte('"')
			idx += 2
			continue
		}
		if c == '"' {
			idx++
			if idx < len(s) && !isSpace(s[idx]) {
				return "", 0, errors.Parsef("malformed quoting: %q", s)
			}
			return b.String(), idx, nil
		}
		b.WriteByte(c)
		idx++
	}
	return "", 0, errors.Parsef("unterminated quote: %q", s)
}

func skipSpaces(s string, idx int) int {
	for idx < len(s) && isSpace(s[idx]) {
		idx++
	}
	return idx
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t'
}
