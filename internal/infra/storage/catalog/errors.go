package catalog

import "errors"

var (
	// ErrPackageNotFound is returned when a package does not exist
	ErrPackageNotFound = errors.New("catalog.repository: package not found")

	// ErrBuildQuery is returned when building the SQL query fails
	ErrBuildQuery = errors.New("catalog.repository: failed to build query")

	// ErrExecQuery is returned when executing the SQL query fails
	ErrExecQuery = errors.New("catalog.repository: failed to execute query")

	// ErrScanRow is returned when scanning a result row fails
	ErrScanRow = errors.New("catalog.repository: failed to scan row")
)
