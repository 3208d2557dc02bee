package store

import (
	"errors"
	"fmt"
	"strings"

	"primecount/internal/domain"
)

// Driver names a history backend.
type Driver string

const (
	DriverJSON   Driver = "json"
	DriverSQLite Driver = "sqlite"
)

var (
	// ErrUnknownDriver is returned by Open for unsupported driver names.
	ErrUnknownDriver = errors.New("unknown history driver")
)

// Open returns the history store for driver at path.
func Open(driver, path string) (domain.HistoryStore, error) {
	switch Driver(strings.ToLower(driver)) {
	case "", DriverJSON:
		return NewFileStore(path), nil
	case DriverSQLite:
		return OpenSQLite(path)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, driver)
	}
}
