package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrEmailAlreadyExists is returned when a user registration fails
	// because a user with the same email is already present.
	ErrEmailAlreadyExists = errors.New("email already registered")

	// ErrAdminAlreadyExists is returned when an admin registration fails
	// because an admin with the same email is already present.
	ErrAdminAlreadyExists = errors.New("admin email already registered")

	// ErrUserNotFound is returned when an operation targets a user
	// (by identifier) that does not exist in the database.
	ErrUserNotFound = errors.New("no user was found")

	// ErrKeyNotFound is returned when a presented API key has no matching
	// record in the database.
	ErrKeyNotFound = errors.New("api key was not found")

	// ErrAdminNotFound is returned when a login targets an admin email that
	// does not exist in the database.
	ErrAdminNotFound = errors.New("no admin was found")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)
