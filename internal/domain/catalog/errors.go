package catalog

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// ErrNotFound is returned when no live record matches a lookup.
var ErrNotFound = errors.New("record not found")

// ParentNotFoundError is returned when a child record references a parent
// that does not exist.
type ParentNotFoundError struct {
	Parent string
	ID     uuid.UUID
}

func (e *ParentNotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Parent, e.ID)
}

// IsNotFound reports whether err is a missing-record condition of any kind.
func IsNotFound(err error) bool {
	if errors.Is(err, ErrNotFound) {
		return true
	}
	var pnf *ParentNotFoundError
	return errors.As(err, &pnf)
}
