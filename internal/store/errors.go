package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrEmailAlreadyExists is returned when an attempt to register a new
	// account fails because an account with the same email already exists.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrNoAccountFound is returned when a query expected to match an
	// account record produces an empty result set, or when a conditional
	// account update matches no row.
	ErrNoAccountFound = errors.New("no account was found")

	// ErrNoPendingCode is returned when the conditional verification
	// confirm matches no row: either no code is pending, the presented
	// code does not match, the code expired, or a concurrent confirm
	// already consumed it.
	ErrNoPendingCode = errors.New("no pending verification code")

	// ErrNoAdminFound is returned when no admin record matches the
	// presented email.
	ErrNoAdminFound = errors.New("no admin was found")

	// ErrNoSongFound is returned when a query or mutation targets a song
	// that does not exist in the catalog.
	ErrNoSongFound = errors.New("no song was found")

	// ErrAlreadyLiked is returned when a song is already present in an
	// account's liked list.
	ErrAlreadyLiked = errors.New("song already liked")

	// ErrNoGenresFound is returned when a genre aggregation matches no
	// songs at all.
	ErrNoGenresFound = errors.New("no genres were found")
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

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)
