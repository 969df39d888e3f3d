// Package errors provides structured error types for launchpad.
// These errors provide context about what operation failed and where.
package errors

import (
	"errors"
	"fmt"
)

// Op describes an operation, usually as "package.function".
type Op string

// Kind categorizes the type of error.
type Kind int

const (
	KindUnknown Kind = iota
	KindNotFound
	KindInvalid
	KindPermission
	KindIO
	KindConfig
	KindCatalog
	KindLaunch
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not found"
	case KindInvalid:
		return "invalid"
	case KindPermission:
		return "permission denied"
	case KindIO:
		return "I/O error"
	case KindConfig:
		return "configuration error"
	case KindCatalog:
		return "catalog error"
	case KindLaunch:
		return "launch error"
	default:
		return "unknown error"
	}
}

// Error is the structured error type for launchpad.
type Error struct {
	Op      Op     // Operation that failed
	Kind    Kind   // Category of error
	Err     error  // Underlying error
	Context string // Additional context
}

// Error returns the error message.
func (e *Error) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s: %s: %s", e.Op, e.Context, e.Err)
	}
	if e.Op != "" {
		return fmt.Sprintf("%s: %s", e.Op, e.Err)
	}
	return e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}

// E creates a new Error. Arguments can be:
// - Op: the operation name
// - Kind: the error kind
// - string: context message
// - error: the underlying error
func E(args ...interface{}) error {
	e := &Error{}
	for _, arg := range args {
		switch a := arg.(type) {
		case Op:
			e.Op = a
		case Kind:
			e.Kind = a
		case string:
			e.Context = a
		case error:
			e.Err = a
		}
	}
	if e.Err == nil {
		e.Err = errors.New(e.Context)
		e.Context = ""
	}
	return e
}

// Is reports whether err is of the given Kind.
func Is(err error, kind Kind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// GetKind returns the Kind of an error.
func GetKind(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// Grid errors
func InvalidIndex(op Op, index, size int) error {
	if size == 0 {
		return E(op, KindInvalid, fmt.Sprintf("index %d out of range: catalog is empty", index))
	}
	return E(op, KindInvalid, fmt.Sprintf("index %d out of range [0, %d]", index, size-1))
}

func InvalidGeometry(rows, cols int) error {
	return E(Op("grid.New"), KindInvalid, fmt.Sprintf("invalid grid geometry %dx%d: rows and cols must be positive", rows, cols))
}

// Config errors
func ConfigLoadFailed(path string, err error) error {
	return E(Op("config.Load"), KindConfig, fmt.Sprintf("failed to load config from %s", path), err)
}

func ConfigSaveFailed(path string, err error) error {
	return E(Op("config.Save"), KindConfig, fmt.Sprintf("failed to save config to %s", path), err)
}

func ConfigInvalid(reason string) error {
	return E(Op("config.Validate"), KindInvalid, reason)
}

// Catalog errors
func CatalogLoadFailed(path string, err error) error {
	return E(Op("catalog.Load"), KindCatalog, fmt.Sprintf("failed to load catalog from %s", path), err)
}

func CatalogEntryInvalid(path string, reason string) error {
	return E(Op("catalog.Load"), KindInvalid, fmt.Sprintf("%s: %s", path, reason))
}

// Launch errors
func CommandNotFound(name string) error {
	return E(Op("process.Resolve"), KindNotFound, fmt.Sprintf("command '%s' not found in PATH", name))
}

func LaunchFailed(name string, err error) error {
	return E(Op("process.Launch"), KindLaunch, fmt.Sprintf("failed to launch %s", name), err)
}
