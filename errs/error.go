package errs

import (
	"strconv"
	"strings"
)

// errMessage is a light error that also remembers the first error it was built from.
type errMessage struct {
	message string
	cause   error
}

func (e *errMessage) Error() string {
	return e.message
}

// Unwrap lets errors.Is match the sentinel an error was built from.
func (e *errMessage) Unwrap() error {
	return e.cause
}

// New joins args with single spaces. A rune ':' is glued to the previous
// word. The first error argument becomes the cause.
// eg: New(ErrInvalidData, "index", 2, ':', "negative count")
func New(args ...any) *errMessage {
	var out strings.Builder
	var space string
	e := &errMessage{}

	for argNumber, arg := range args {
		switch v := arg.(type) {
		case string:
			if v == "" {
				continue
			}
			out.WriteString(space + v)
		case []string:
			for _, s := range v {
				if s == "" {
					continue
				}
				out.WriteString(space + s)
				space = " "
			}
		case rune:
			if v == ':' {
				out.WriteString(":")
				continue
			}
			out.WriteString(space + string(v))
		case int:
			out.WriteString(space + strconv.Itoa(v))
		case float64:
			out.WriteString(space + strconv.FormatFloat(v, 'f', -1, 64))
		case bool:
			out.WriteString(space + strconv.FormatBool(v))
		case error:
			if e.cause == nil {
				e.cause = v
			}
			out.WriteString(space + v.Error())
		default:
			out.WriteString(space + "error not supported arg number: " + strconv.Itoa(argNumber))
		}
		space = " "
	}

	e.message = out.String()
	return e
}
