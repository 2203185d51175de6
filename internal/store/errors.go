package store

import "errors"

// ErrKeyNotFound is returned by [KeyValueStore.Get] when nothing is stored
// under the requested key.
var ErrKeyNotFound = errors.New("key not found")

// Low-level database operation errors. Repository methods wrap these when a
// SQL-level operation fails.
var (
	// ErrBuildingSQLQuery is returned when constructing a SQL query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing an INSERT or DELETE
	// fails.
	ErrExecutingStatement = errors.New("failed to executing statement")
)
