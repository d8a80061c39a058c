// binding/rule.go
package binding

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"xrcform/core"
	"xrcform/event"
)

const (
	DefaultPrefix = "on"
	// Delimiter separates the tokens of a handler name.
	Delimiter = "_"
	// Namespace is prepended to the upper-cased suffix to form a kind key.
	Namespace = "EVT_"
)

var (
	ErrInvalidName      = errors.New("invalid handler name")
	ErrUnknownEvent     = errors.New("unknown event")
	ErrMissingWidget    = errors.New("missing widget")
	ErrUnsupportedEvent = errors.New("widget does not emit event")
)

// Rule says which event a handler listens to and where it comes from:
// either the control named Source, or every control whose id is in
// [ID1, ID2]. Unset ids are core.IDAny.
type Rule struct {
	Kind   *event.Kind
	Source string
	ID1    int
	ID2    int
}

func (r Rule) HasSource() bool { return r.Source != "" }

// Targeted reports whether the rule names a source or an id. Rules that do
// neither are never registered.
func (r Rule) Targeted() bool {
	return r.HasSource() || r.ID1 >= 0 || r.ID2 >= 0
}

func (r Rule) String() string {
	return fmt.Sprintf("%s src=%q id1=%d id2=%d", r.Kind, r.Source, r.ID1, r.ID2)
}

// ParseName parses a handler name against the default event registry.
//
// Accepted shapes are
//
//	<prefix>_<control name>_<event>
//	<prefix>_<id1>_<event>
//	<prefix>_<id1>_<id2>_<event>
//
// where <event> may itself contain the delimiter, e.g.
// on_Volume_scroll_changed maps to EVT_SCROLL_CHANGED. The boolean is false
// when the name does not carry the prefix; that is not an error.
func ParseName(name, prefix string) (Rule, bool, error) {
	return parse(event.Default(), name, prefix)
}

func parse(reg *event.Registry, name, prefix string) (Rule, bool, error) {
	parts := strings.Split(name, Delimiter)
	if len(parts) < 3 {
		return Rule{}, false, fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	if parts[0] != prefix {
		return Rule{}, false, nil
	}

	rule := Rule{ID1: core.IDAny, ID2: core.IDAny}
	if isDigits(parts[1]) {
		id, err := strconv.Atoi(parts[1])
		if err != nil {
			return Rule{}, false, fmt.Errorf("%w: %q: %v", ErrInvalidName, name, err)
		}
		rule.ID1 = id
	} else {
		rule.Source = parts[1]
	}

	// The digit test on the third token is the only thing telling an id
	// range apart from an event name; on_1_2_3 is id 1..2 with event "3".
	n := 2
	if isDigits(parts[2]) {
		id, err := strconv.Atoi(parts[2])
		if err != nil {
			return Rule{}, false, fmt.Errorf("%w: %q: %v", ErrInvalidName, name, err)
		}
		rule.ID2 = id
		n = 3
	}

	key := Namespace + strings.ToUpper(strings.Join(parts[n:], Delimiter))
	kind, err := reg.Lookup(key)
	if err != nil {
		return Rule{}, false, fmt.Errorf("%w %q in %s: %w", ErrUnknownEvent, key, name, err)
	}
	rule.Kind = kind
	return rule, true, nil
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
