package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrEmailAlreadyExists is returned when registering a user whose email
	// is already taken.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrUserNotFound is returned when no user matches the lookup, or when a
	// row references a user that does not exist.
	ErrUserNotFound = errors.New("no user was found")

	// ErrTaskNotFound is returned when a task does not exist or belongs to
	// another user.
	ErrTaskNotFound = errors.New("task was not found")

	// ErrTagNotFound is returned when a tag does not exist or belongs to
	// another user.
	ErrTagNotFound = errors.New("tag was not found")

	// ErrTagAlreadyExists is returned when a user already owns a tag with
	// the same name.
	ErrTagAlreadyExists = errors.New("tag already exists")

	// ErrTagAlreadyLinked is returned when a tag is already attached to the
	// task.
	ErrTagAlreadyLinked = errors.New("tag is already linked to task")

	// ErrCompletionNotFound is returned when a completion does not exist for
	// the task.
	ErrCompletionNotFound = errors.New("task completion was not found")

	// ErrCompletionAlreadyExists is returned when a task is completed twice
	// on the same date.
	ErrCompletionAlreadyExists = errors.New("task is already completed on this date")

	// ErrUnsupportedDriver is returned by [NewDB] for unknown driver names.
	ErrUnsupportedDriver = errors.New("unsupported database driver")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a SQL query with the
	// statement builder fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT fails.
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

	// ErrScanningRow is returned when scanning a single result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when iterating a multi-row result fails.
	ErrScanningRows = errors.New("failed to scan rows")
)
