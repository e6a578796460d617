package names

import "fmt"

// InvalidNamespaceError reports a namespace tag outside the defined set.
type InvalidNamespaceError struct {
	// Text is the unparsed input, when the error comes from Parse.
	Text string
	// Namespace is the offending value, when the error comes from a lookup.
	Namespace Namespace
}

func (e *InvalidNamespaceError) Error() string {
	if e.Text != "" {
		return fmt.Sprintf("invalid namespace %q (want notch, srg or mcp)", e.Text)
	}

	return fmt.Sprintf("invalid namespace %d", int(e.Namespace))
}

// MalformedRowError reports a table row with fewer columns than its schema needs.
type MalformedRowError struct {
	// Resource names the table the row came from (empty when unknown).
	Resource string
	// Line is the 1-based line number of the row (0 when unknown).
	Line int
	// Got is the number of columns present.
	Got int
	// Want is the minimum number of columns required.
	Want int
}

func (e *MalformedRowError) Error() string {
	msg := fmt.Sprintf("malformed row: %d columns, need at least %d", e.Got, e.Want)

	switch {
	case e.Resource != "" && e.Line > 0:
		return fmt.Sprintf("%s:%d: %s", e.Resource, e.Line, msg)
	case e.Resource != "":
		return e.Resource + ": " + msg
	default:
		return msg
	}
}
