//go:build unit

package repository

import (
	"testing"

	"hostel-booking/internal/infra"
	"hostel-booking/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestClassifyPgErr(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		expectKind infra.RepositoryErrorKind
	}{
		{
			name:       "unique violation maps to duplicate key",
			err:        &pgconn.PgError{Code: pgUniqueViolation, ConstraintName: "uq_cart_items_user_bed_stay"},
			expectKind: infra.KindDuplicateKey,
		},
		{
			name:       "foreign key violation maps to foreign key violated",
			err:        &pgconn.PgError{Code: pgForeignKeyViolation, ConstraintName: "fk_cart_items_bed"},
			expectKind: infra.KindForeignKeyViolated,
		},
		{
			name:       "wrapped pg error is still classified",
			err:        errs.Wrap(&pgconn.PgError{Code: pgUniqueViolation}, "insert failed"),
			expectKind: infra.KindDuplicateKey,
		},
		{
			name:       "other pg codes fall through to db failure",
			err:        &pgconn.PgError{Code: "40001"},
			expectKind: infra.KindDBFailure,
		},
		{
			name:       "non-pg errors fall through to db failure",
			err:        errs.New("connection reset"),
			expectKind: infra.KindDBFailure,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			wrapped := infra.WrapRepoErr("query failed", tc.err, classifyPgErr(tc.err)...)

			assert.True(t, infra.IsKind(wrapped, tc.expectKind))
			assert.ErrorContains(t, wrapped, "query failed")
		})
	}
}
