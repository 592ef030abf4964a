package utils

import (
	"errors"
	"hospital-service/internal/pkg/exceptions"
	"strings"

	"github.com/lib/pq"
)

const (
	pqUniqueViolation     = "23505"
	pqForeignKeyViolation = "23503"
)

// UniqueViolation reports whether err is a unique constraint violation and returns the
// violated constraint name.
func UniqueViolation(err error) (string, bool) {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == pqUniqueViolation {
		return pqErr.Constraint, true
	}
	return "", false
}

func ForeignKeyViolation(err error) (string, bool) {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == pqForeignKeyViolation {
		return pqErr.Constraint, true
	}
	return "", false
}

// MapPostgresWriteError turns constraint violations raised by an insert or update into client
// errors and everything else into the store error built by fallback.
func MapPostgresWriteError(err error, fallback func(error) *exceptions.CustomError) error {
	if constraint, ok := UniqueViolation(err); ok {
		return exceptions.ErrDuplicateData(err, constraintField(err, constraint), constraint)
	}
	if constraint, ok := ForeignKeyViolation(err); ok {
		return exceptions.ErrReferencedDataNotFound(err, constraintField(err, constraint), constraint)
	}
	return fallback(err)
}

// MapPostgresDeleteError reports a delete blocked by rows that still reference resource as a
// conflict.
func MapPostgresDeleteError(err error, resource string) error {
	if constraint, ok := ForeignKeyViolation(err); ok {
		return exceptions.ErrDataStillReferenced(err, resource, constraint)
	}
	return exceptions.ErrPostgresDBDeleteData(err)
}

// constraintField derives the column name from postgres' default naming, e.g.
// appointments_doctor_id_fkey on table appointments gives doctor_id.
func constraintField(err error, constraint string) string {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Table != "" {
		constraint = strings.TrimPrefix(constraint, pqErr.Table+"_")
	}
	for _, suffix := range []string{"_fkey", "_key", "_uidx"} {
		constraint = strings.TrimSuffix(constraint, suffix)
	}
	return constraint
}
