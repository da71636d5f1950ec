package collection

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	// ErrNotFound reports that no record in the collection has the
	// requested id.
	ErrNotFound = errors.New("collection: record not found")

	// ErrConflict reports a stale version token on update: the record
	// was modified since the caller loaded it.
	ErrConflict = errors.New("collection: version conflict")
)

// ValidationError lists the missing or invalid fields of a create or
// update request. Callers get this instead of a silent no-op.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %s", strings.Join(e.Fields, ", "))
}

// Validate returns a ValidationError naming every field whose check
// failed, or nil when all pass.
func Validate(checks map[string]bool) error {
	var fields []string
	for field, ok := range checks {
		if !ok {
			fields = append(fields, field)
		}
	}
	if len(fields) == 0 {
		return nil
	}
	sort.Strings(fields)
	return &ValidationError{Fields: fields}
}

// CorruptError reports unparseable persisted state. The store's policy
// is to log it and reseed from defaults.
type CorruptError struct {
	Key string
	Err error
}

func (e *CorruptError) Error() string {
	return fmt.Sprintf("collection %q: corrupt stored data: %v", e.Key, e.Err)
}

func (e *CorruptError) Unwrap() error {
	return e.Err
}
