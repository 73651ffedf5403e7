package repository

import (
	"context"

	"hostel-booking/internal/domain/reservation"
	"hostel-booking/internal/infra"
	"hostel-booking/internal/infra/db"
	"hostel-booking/internal/infra/psqlbuilder"
	"hostel-booking/internal/pkg/pgconv"
	"hostel-booking/internal/usecase/shared"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
)

type ReservationRepository struct {
	db db.DBTX
}

func NewReservationRepository(dbtx db.DBTX) *ReservationRepository {
	return &ReservationRepository{db: dbtx}
}

var _ shared.ReservationRepository = (*ReservationRepository)(nil)

func (r *ReservationRepository) Create(ctx context.Context, res *reservation.Reservation) error {
	query, args, err := psqlbuilder.Insert("reservations").
		Columns("id", "user_id", "code", "status", "total_cents", "policy_id", "created_at", "updated_at").
		Values(res.ID(), res.UserID(), res.Code(), string(res.Status()),
			res.Total().Cents(), res.PolicyID(), res.CreatedAt(), res.UpdatedAt()).
		ToSql()
	if err != nil {
		return infra.WrapRepoErr("failed to build reservation insert", err)
	}

	if _, err := r.db.Exec(ctx, query, args...); err != nil {
		return infra.WrapRepoErr("failed to insert reservation", err, classifyPgErr(err)...)
	}

	ib := psqlbuilder.Insert("reservation_items").
		Columns("id", "reservation_id", "bed_id", "checkin", "checkout", "price_cents", "package_id")
	for _, item := range res.Items() {
		ib = ib.Values(item.ID(), res.ID(), item.BedID(),
			pgconv.DateToPgtype(item.StayRange().Checkin()),
			pgconv.DateToPgtype(item.StayRange().Checkout()),
			item.Price().Cents(),
			pgconv.UUIDPtrToPgtype(item.PackageID()))
	}
	query, args, err = ib.ToSql()
	if err != nil {
		return infra.WrapRepoErr("failed to build reservation items insert", err)
	}

	if _, err := r.db.Exec(ctx, query, args...); err != nil {
		return infra.WrapRepoErr("failed to insert reservation items", err, classifyPgErr(err)...)
	}
	return nil
}

func (r *ReservationRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status reservation.Status) error {
	query, args, err := psqlbuilder.Update("reservations").
		Set("status", string(status)).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return infra.WrapRepoErr("failed to build reservation status update", err)
	}

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return infra.WrapRepoErr("failed to update reservation status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}
	return nil
}
