package pricing

import (
	"fmt"
	"strings"
)

// ValidationError reports required fields missing from a load call. The call
// is rejected as a whole; no rows are applied.
type ValidationError struct {
	Table  string
	Fields []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s data missing required fields: %s", e.Table, strings.Join(e.Fields, ", "))
}

// StateError reports a compute operation invoked before its prerequisite
// table was loaded.
type StateError struct {
	Message string
}

func (e *StateError) Error() string {
	return e.Message
}

func errCatalogNotLoaded() error {
	return &StateError{Message: "catalog not loaded"}
}

func errObservationsNotLoaded() error {
	return &StateError{Message: "observations not loaded"}
}
