package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrPoolEntryNotFound is returned when no cipher pool entry has the
	// requested id.
	ErrPoolEntryNotFound = errors.New("cipher pool entry was not found")

	// ErrCipherPoolEmpty is returned by GetLatest when the pool has no
	// entries yet.
	ErrCipherPoolEmpty = errors.New("cipher pool is empty")

	// ErrPoolEntryNotSaved is returned when an INSERT into the pool completes
	// without returning the new row.
	ErrPoolEntryNotSaved = errors.New("cipher pool entry was not saved")

	// ErrConfigNotFound is returned when a protected config with the given id
	// does not exist.
	ErrConfigNotFound = errors.New("protected config was not found")

	// ErrConfigNameTaken is returned when a protected config with the same
	// name already exists.
	ErrConfigNameTaken = errors.New("protected config name already exists")

	// ErrEncryptionConflict is returned when an optimistic update of a record
	// finds it no longer encrypted with the expected pool entry, meaning
	// another node rotated it first.
	ErrEncryptionConflict = errors.New("protected config encryption conflict occurred")

	// ErrRetryable marks a wrapped database error that the classifier of the
	// current driver considers transient.
	ErrRetryable = errors.New("retryable database error")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")

	// ErrUnsupportedDriver is returned by [NewConnect] for a driver name
	// other than pgx or sqlite3.
	ErrUnsupportedDriver = errors.New("unsupported database driver")
)
