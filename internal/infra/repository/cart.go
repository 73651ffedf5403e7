package repository

import (
	"context"
	"errors"

	"hostel-booking/internal/domain/cart"
	"hostel-booking/internal/infra"
	"hostel-booking/internal/infra/db"
	"hostel-booking/internal/infra/psqlbuilder"
	"hostel-booking/internal/pkg/pgconv"
	"hostel-booking/internal/usecase/shared"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

func classifyPgErr(err error) []infra.RepositoryErrorKind {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return []infra.RepositoryErrorKind{infra.KindDuplicateKey}
		case pgForeignKeyViolation:
			return []infra.RepositoryErrorKind{infra.KindForeignKeyViolated}
		}
	}
	return nil
}

type CartRepository struct {
	db db.DBTX
}

func NewCartRepository(dbtx db.DBTX) *CartRepository {
	return &CartRepository{db: dbtx}
}

var _ shared.CartRepository = (*CartRepository)(nil)

func (r *CartRepository) Insert(ctx context.Context, item *cart.Item) error {
	var fixed *int64
	if p := item.FixedPrice(); p != nil {
		c := p.Cents()
		fixed = &c
	}

	query, args, err := psqlbuilder.Insert("cart_items").
		Columns("id", "user_id", "bed_id", "checkin", "checkout", "package_id", "fixed_price_cents", "created_at").
		Values(item.ID(), item.UserID(), item.BedID(),
			pgconv.DateToPgtype(item.StayRange().Checkin()),
			pgconv.DateToPgtype(item.StayRange().Checkout()),
			pgconv.UUIDPtrToPgtype(item.PackageID()),
			pgconv.Int64PtrToPgtype(fixed),
			item.CreatedAt()).
		ToSql()
	if err != nil {
		return infra.WrapRepoErr("failed to build cart insert", err)
	}

	if _, err := r.db.Exec(ctx, query, args...); err != nil {
		return infra.WrapRepoErr("failed to insert cart item", err, classifyPgErr(err)...)
	}
	return nil
}

func (r *CartRepository) InsertAll(ctx context.Context, items []*cart.Item) error {
	for _, item := range items {
		if err := r.Insert(ctx, item); err != nil {
			return err
		}
	}
	return nil
}

func (r *CartRepository) DeleteOwned(ctx context.Context, userID, itemID uuid.UUID) (int64, error) {
	query, args, err := psqlbuilder.Delete("cart_items").
		Where(squirrel.Eq{"id": itemID, "user_id": userID}).
		ToSql()
	if err != nil {
		return 0, infra.WrapRepoErr("failed to build cart delete", err)
	}

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to delete cart item", err)
	}
	return tag.RowsAffected(), nil
}

func (r *CartRepository) DeleteByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	query, args, err := psqlbuilder.Delete("cart_items").
		Where(squirrel.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return 0, infra.WrapRepoErr("failed to build cart clear", err)
	}

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to clear cart", err)
	}
	return tag.RowsAffected(), nil
}
