package blogs

import (
	"errors"
	"strings"
)

// ErrNotFound is returned by the repository when no blog matches the id.
var ErrNotFound = errors.New("blog not found")

// ValidationErrors maps a field name to the list of messages for it,
// the same shape the API returns to the client.
type ValidationErrors map[string][]string

func (v ValidationErrors) Add(field, message string) {
	v[field] = append(v[field], message)
}

func (v ValidationErrors) Error() string {
	fields := make([]string, 0, len(v))
	for f := range v {
		fields = append(fields, f)
	}
	return "validation failed: " + strings.Join(fields, ", ")
}
