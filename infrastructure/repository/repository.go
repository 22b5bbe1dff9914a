// Package repository implements the persistence layer over Postgres. Every
// table that backs an at-most-one-row-per-key invariant carries a unique
// constraint, and all create-or-update paths go through single-statement
// ON CONFLICT upserts.
package repository

import "github.com/lib/pq"

// uniqueViolation is the Postgres error code for a unique constraint breach.
const uniqueViolation = pq.ErrorCode("23505")

func isUniqueViolation(err error) bool {
	pqErr, ok := err.(*pq.Error)
	return ok && pqErr.Code == uniqueViolation
}
