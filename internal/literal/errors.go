package literal

import "fmt"

// Error describes a literal that could not be decoded. Offset and Len locate
// the offending bytes inside the raw token text.
type Error struct {
	Offset int
	Len    int
	Msg    string
}

func (e *Error) Error() string {
	return e.Msg
}

func errorf(off, n int, format string, args ...any) *Error {
	return &Error{Offset: off, Len: n, Msg: fmt.Sprintf(format, args...)}
}
