package repository

import "errors"

// ErrNotFound is a repository-specific sentinel error, returned when a
// lookup for a single entity (chat or commit) finds no record.
//
// The service layer checks for this error and translates it into the
// domain-level `app_errors.ErrNotFound`, keeping business logic
// decoupled from driver errors like `sql.ErrNoRows` or `redis.Nil`.
var ErrNotFound = errors.New("repository: not found")
