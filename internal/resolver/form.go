package resolver

import (
	"fmt"
	"strings"
)

//go:generate go tool stringer -type=Form -linecomment -output=form_string.go

// Form selects which of a class's two identifiers a lookup uses.
type Form int

const (
	// Internal is the slash-separated form used in bytecode ("a/b/C").
	Internal Form = iota // internal
	// Regular is the dotted form used by reflection and class loaders ("a.b.C").
	Regular // regular
)

// ParseForm maps "internal" or "regular" to a Form.
func ParseForm(text string) (Form, error) {
	switch strings.ToLower(strings.TrimSpace(text)) {
	case "internal", "slash":
		return Internal, nil
	case "regular", "dotted":
		return Regular, nil
	default:
		return 0, fmt.Errorf("invalid class form %q (want internal or regular)", text)
	}
}
