// core/kind.go
package core

import (
	"fmt"
	"strings"
)

// Kind is the sort of top-level window a layout describes.
type Kind int

const (
	Frame Kind = iota
	Dialog
	Panel
)

var kindNames = map[Kind]string{
	Frame:  "frame",
	Dialog: "dialog",
	Panel:  "panel",
}

// Kinds lists every window kind in display order.
func Kinds() []Kind { return []Kind{Frame, Dialog, Panel} }

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// ParseKind accepts "frame", "dialog" or "panel", with or without a "wx"
// prefix and in any case.
func ParseKind(s string) (Kind, error) {
	name := strings.TrimPrefix(strings.ToLower(strings.TrimSpace(s)), "wx")
	for k, v := range kindNames {
		if v == name {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown window kind %q", s)
}
