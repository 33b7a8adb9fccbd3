package pgerr

import (
	"errors"

	"github.com/lib/pq"
)

// Коды ошибок Postgres, которые репозитории транслируют в доменные ошибки
const (
	UniqueViolation     pq.ErrorCode = "23505"
	ForeignKeyViolation pq.ErrorCode = "23503"
	CheckViolation      pq.ErrorCode = "23514"
)

// IsUniqueViolation true, если err нарушение уникального ограничения constraint
// Пустой constraint совпадает с любым уникальным ограничением
func IsUniqueViolation(err error, constraint string) bool {
	return is(err, UniqueViolation, constraint)
}

// IsCheckViolation true, если err нарушение CHECK ограничения constraint
func IsCheckViolation(err error, constraint string) bool {
	return is(err, CheckViolation, constraint)
}

func is(err error, code pq.ErrorCode, constraint string) bool {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return false
	}
	if pqErr.Code != code {
		return false
	}
	return constraint == "" || pqErr.Constraint == constraint
}
