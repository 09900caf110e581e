package domain

import "fmt"

// ErrMissingField reports a required form field that was left empty.
type ErrMissingField string

func (e ErrMissingField) Error() string {
	return fmt.Sprintf("required field %q is empty", string(e))
}
