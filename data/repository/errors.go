package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jarredbaird/express-jobly/ecode"
	"github.com/mattn/go-sqlite3"
)

// constraint kinds reported by the drivers
const (
	constraintNone = iota
	constraintUnique
	constraintForeignKey
	constraintCheck
)

// constraintOf inspects driver errors for integrity violations.
func constraintOf(err error) int {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505":
			return constraintUnique
		case "23503":
			return constraintForeignKey
		case "23514":
			return constraintCheck
		}
		return constraintNone
	}

	var liteErr sqlite3.Error
	if errors.As(err, &liteErr) {
		switch liteErr.ExtendedCode {
		case sqlite3.ErrConstraintUnique, sqlite3.ErrConstraintPrimaryKey:
			return constraintUnique
		case sqlite3.ErrConstraintForeignKey:
			return constraintForeignKey
		case sqlite3.ErrConstraintCheck:
			return constraintCheck
		}
	}
	return constraintNone
}

// classify tags integrity violations with a client error code and leaves
// everything else untouched.
func classify(err error, conflict string) error {
	switch constraintOf(err) {
	case constraintUnique:
		return ecode.Wrap(ecode.Conflict, conflict, err)
	case constraintForeignKey:
		return ecode.Wrap(ecode.ParamErr, "referenced company does not exist", err)
	case constraintCheck:
		return ecode.Wrap(ecode.ParamErr, "value out of range", err)
	}
	return err
}
