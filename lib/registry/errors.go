package registry

import (
	"errors"
	"fmt"
)

var (
	// ErrAttributeAbsent is matched by *AbsentError.
	ErrAttributeAbsent = errors.New("attribute not present")
	// ErrNoUniProtID is returned when the part has no swisspro parameter.
	ErrNoUniProtID = errors.New("no UniProt ID present")
	// ErrPartNotFound is matched by *RegistryError.
	ErrPartNotFound = errors.New("part not found")
	// ErrUnavailable is matched by *UnavailableError.
	ErrUnavailable = errors.New("registry unavailable")
	ErrInvalidPath = errors.New("invalid attribute path")
)

// AbsentError reports a path that matched nothing in the part record.
type AbsentError struct {
	Path string
}

func (e *AbsentError) Error() string {
	return fmt.Sprintf("no %s node present in XML", e.Path)
}

func (e *AbsentError) Is(target error) bool {
	return target == ErrAttributeAbsent
}

// Message is the human readable form used in overviews.
func (e *AbsentError) Message() string {
	return fmt.Sprintf("No %s node present in XML.", e.Path)
}

// RegistryError carries the text of the ERROR node the registry sends for unknown parts.
type RegistryError struct {
	ID      string
	Message string
}

func (e *RegistryError) Error() string {
	return fmt.Sprintf("registry error for part %q: %s", e.ID, e.Message)
}

func (e *RegistryError) Is(target error) bool {
	return target == ErrPartNotFound
}

// UnavailableError wraps transport failures and unexpected status codes.
type UnavailableError struct {
	Url        string
	StatusCode int
	Err        error
}

func (e *UnavailableError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("registry unavailable at %s: %v", e.Url, e.Err)
	}
	return fmt.Sprintf("registry unavailable at %s: status %d", e.Url, e.StatusCode)
}

func (e *UnavailableError) Unwrap() error {
	return e.Err
}

func (e *UnavailableError) Is(target error) bool {
	return target == ErrUnavailable
}
