package postgres

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
	apperrors "github.com/lurssed-daniel/Udacity-Project-II-Trivia-API/internal/pkg/errors"
)

// SQLSTATE коды Postgres, означающие проблему с данными запроса,
// а не с доступностью базы
const (
	pgNotNullViolation          = "23502"
	pgForeignKeyViolation       = "23503"
	pgUniqueViolation           = "23505"
	pgInvalidTextRepresentation = "22P02"
)

// classifyError переводит ошибки драйвера в ошибки приложения на границе доступа к данным:
// gorm.ErrRecordNotFound -> ErrNotFound, нарушения ограничений данных -> ErrUnprocessable.
// Прочие ошибки возвращаются без изменений.
func classifyError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperrors.ErrNotFound
	}

	if code, ok := pgErrorCode(err); ok {
		switch code {
		case pgNotNullViolation, pgForeignKeyViolation, pgUniqueViolation, pgInvalidTextRepresentation:
			return fmt.Errorf("%w: %v", apperrors.ErrUnprocessable, err)
		}
	}

	return err
}

// pgErrorCode извлекает SQLSTATE код ошибки для pgconn и lib/pq драйверов
func pgErrorCode(err error) (string, bool) {
	// pgx/v5 driver (pgconn.PgError)
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code, true
	}
	// lib/pq driver
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code), true
	}
	return "", false
}
