package name

import "fmt"

// ParseError indicates a serialized name that could not be read back.
type ParseError struct {
	Offset int
	Msg    string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("name: parse error at offset %d: %s", e.Offset, e.Msg)
}

func NewParseError(offset int, format string, args ...interface{}) *ParseError {
	return &ParseError{Offset: offset, Msg: fmt.Sprintf(format, args...)}
}

// InvalidNameError indicates a parsed tree that violates a structural
// invariant. Like malformed syntax, it is recoverable at the load
// boundary.
type InvalidNameError struct {
	Text string
}

func (e *InvalidNameError) Error() string {
	return fmt.Sprintf("name: invalid name tree: %s", e.Text)
}

func NewInvalidNameError(text string) *InvalidNameError {
	return &InvalidNameError{Text: text}
}
