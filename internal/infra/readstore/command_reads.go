package readstore

import (
	"context"
	"encoding/json"
	"time"

	"hostel-booking/internal/domain/reservation"
	"hostel-booking/internal/infra"
	"hostel-booking/internal/infra/db"
	"hostel-booking/internal/infra/psqlbuilder"
	"hostel-booking/internal/pkg/pgconv"
	"hostel-booking/internal/usecase/shared"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

// CommandReads is bound to a DBTX so the same reads run inside the
// commit transaction or against the pool.
type CommandReads struct {
	db db.DBTX
}

func NewCommandReads(dbtx db.DBTX) *CommandReads {
	return &CommandReads{db: dbtx}
}

var _ shared.CommandReads = (*CommandReads)(nil)

func (r *CommandReads) RoomByID(ctx context.Context, id uuid.UUID) (*shared.RoomSnapshot, error) {
	query, args, err := psqlbuilder.Select("id", "name", "capacity", "base_price_cents", "active").
		From("rooms").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build room query", err)
	}

	var snap shared.RoomSnapshot
	err = r.db.QueryRow(ctx, query, args...).Scan(&snap.ID, &snap.Name, &snap.Capacity, &snap.BasePriceCents, &snap.Active)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("room not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find room by id", err)
	}
	return &snap, nil
}

func (r *CommandReads) BedByID(ctx context.Context, id uuid.UUID) (*shared.BedSnapshot, error) {
	query, args, err := psqlbuilder.Select("id", "room_id", "bed_type", "position", "price_cents").
		From("beds").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build bed query", err)
	}

	snap, err := scanBed(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("bed not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find bed by id", err)
	}
	return snap, nil
}

func (r *CommandReads) BedsByRoomID(ctx context.Context, roomID uuid.UUID) ([]shared.BedSnapshot, error) {
	query, args, err := psqlbuilder.Select("id", "room_id", "bed_type", "position", "price_cents").
		From("beds").
		Where(squirrel.Eq{"room_id": roomID}).
		OrderBy("position").
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build beds query", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list beds by room", err)
	}
	defer rows.Close()

	var beds []shared.BedSnapshot
	for rows.Next() {
		snap, err := scanBed(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan bed row", err)
		}
		beds = append(beds, *snap)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate bed rows", err)
	}
	return beds, nil
}

func (r *CommandReads) PackageByID(ctx context.Context, id uuid.UUID) (*shared.PackageSnapshot, error) {
	query, args, err := psqlbuilder.Select("id", "room_id", "name", "checkin", "checkout", "total_price_cents", "close_whole_room").
		From("room_packages").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build package query", err)
	}

	var (
		snap     shared.PackageSnapshot
		checkin  pgtype.Date
		checkout pgtype.Date
	)
	err = r.db.QueryRow(ctx, query, args...).Scan(&snap.ID, &snap.RoomID, &snap.Name, &checkin, &checkout, &snap.TotalPriceCents, &snap.CloseWholeRoom)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("package not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find package by id", err)
	}
	snap.Checkin = pgconv.DateFromPgtype(checkin)
	snap.Checkout = pgconv.DateFromPgtype(checkout)
	return &snap, nil
}

func (r *CommandReads) PolicyByName(ctx context.Context, name string) (*shared.PolicySnapshot, error) {
	return r.policyWhere(ctx, squirrel.Eq{"name": name})
}

func (r *CommandReads) PolicyByID(ctx context.Context, id uuid.UUID) (*shared.PolicySnapshot, error) {
	return r.policyWhere(ctx, squirrel.Eq{"id": id})
}

func (r *CommandReads) policyWhere(ctx context.Context, pred any) (*shared.PolicySnapshot, error) {
	query, args, err := psqlbuilder.Select("id", "name", "brackets").
		From("cancellation_policies").
		Where(pred).
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build policy query", err)
	}

	var (
		snap shared.PolicySnapshot
		raw  []byte
	)
	err = r.db.QueryRow(ctx, query, args...).Scan(&snap.ID, &snap.Name, &raw)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("cancellation policy not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find cancellation policy", err)
	}

	var brackets []reservation.FeeBracket
	if err := json.Unmarshal(raw, &brackets); err != nil {
		return nil, infra.WrapRepoErr("failed to decode policy brackets", err)
	}
	snap.Brackets = brackets
	return &snap, nil
}

func (r *CommandReads) CartItemsByUser(ctx context.Context, userID uuid.UUID) ([]shared.CartItemSnapshot, error) {
	query, args, err := psqlbuilder.Select("id", "user_id", "bed_id", "checkin", "checkout", "package_id", "fixed_price_cents", "created_at").
		From("cart_items").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("created_at").
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build cart items query", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list cart items", err)
	}
	defer rows.Close()

	var items []shared.CartItemSnapshot
	for rows.Next() {
		var (
			snap      shared.CartItemSnapshot
			checkin   pgtype.Date
			checkout  pgtype.Date
			packageID pgtype.UUID
			fixed     pgtype.Int8
			createdAt pgtype.Timestamptz
		)
		if err := rows.Scan(&snap.ID, &snap.UserID, &snap.BedID, &checkin, &checkout, &packageID, &fixed, &createdAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan cart item row", err)
		}
		snap.Checkin = pgconv.DateFromPgtype(checkin)
		snap.Checkout = pgconv.DateFromPgtype(checkout)
		snap.PackageID = pgconv.UUIDPtrFromPgtype(packageID)
		snap.FixedPriceCents = pgconv.Int64PtrFromPgtype(fixed)
		snap.CreatedAt = pgconv.TimeFromPgtype(createdAt)
		items = append(items, snap)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate cart item rows", err)
	}
	return items, nil
}

func (r *CommandReads) ReservationByID(ctx context.Context, id uuid.UUID) (*shared.ReservationSnapshot, error) {
	query, args, err := psqlbuilder.Select("id", "user_id", "code", "status", "total_cents", "policy_id", "created_at", "updated_at").
		From("reservations").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build reservation query", err)
	}

	var (
		snap      shared.ReservationSnapshot
		createdAt pgtype.Timestamptz
		updatedAt pgtype.Timestamptz
	)
	err = r.db.QueryRow(ctx, query, args...).Scan(&snap.ID, &snap.UserID, &snap.Code, &snap.Status, &snap.TotalCents, &snap.PolicyID, &createdAt, &updatedAt)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation by id", err)
	}
	snap.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	snap.UpdatedAt = pgconv.TimeFromPgtype(updatedAt)

	items, err := r.reservationItems(ctx, id)
	if err != nil {
		return nil, err
	}
	snap.Items = items
	return &snap, nil
}

func (r *CommandReads) reservationItems(ctx context.Context, reservationID uuid.UUID) ([]shared.ReservationItemSnapshot, error) {
	query, args, err := psqlbuilder.Select("id", "bed_id", "checkin", "checkout", "price_cents", "package_id").
		From("reservation_items").
		Where(squirrel.Eq{"reservation_id": reservationID}).
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build reservation items query", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservation items", err)
	}
	defer rows.Close()

	var items []shared.ReservationItemSnapshot
	for rows.Next() {
		var (
			item      shared.ReservationItemSnapshot
			checkin   pgtype.Date
			checkout  pgtype.Date
			packageID pgtype.UUID
		)
		if err := rows.Scan(&item.ID, &item.BedID, &checkin, &checkout, &item.PriceCents, &packageID); err != nil {
			return nil, infra.WrapRepoErr("failed to scan reservation item row", err)
		}
		item.Checkin = pgconv.DateFromPgtype(checkin)
		item.Checkout = pgconv.DateFromPgtype(checkout)
		item.PackageID = pgconv.UUIDPtrFromPgtype(packageID)
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate reservation item rows", err)
	}
	return items, nil
}

// LockBeds serializes concurrent bookings of the same beds: the row
// locks are held until the surrounding transaction commits, so the
// availability check that follows cannot race another writer.
func (r *CommandReads) LockBeds(ctx context.Context, bedIDs []uuid.UUID) error {
	if len(bedIDs) == 0 {
		return nil
	}

	query, args, err := psqlbuilder.Select("id").
		From("beds").
		Where(squirrel.Eq{"id": bedIDs}).
		OrderBy("id"). // stable lock order avoids ABBA deadlocks
		Suffix("FOR UPDATE").
		ToSql()
	if err != nil {
		return infra.WrapRepoErr("failed to build bed lock query", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return infra.WrapRepoErr("failed to lock beds", err)
	}
	defer rows.Close()

	var locked int
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return infra.WrapRepoErr("failed to scan locked bed row", err)
		}
		locked++
	}
	if err := rows.Err(); err != nil {
		return infra.WrapRepoErr("failed to iterate locked bed rows", err)
	}
	if locked != len(bedIDs) {
		return infra.WrapRepoErr("some beds do not exist", nil, infra.KindNotFound)
	}
	return nil
}

func (r *CommandReads) OverlappingHoldExists(ctx context.Context, bedIDs []uuid.UUID, checkin, checkout time.Time, excludeUser *uuid.UUID) (bool, error) {
	return overlappingHoldExists(ctx, r.db, bedIDs, checkin, checkout, excludeUser)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBed(row rowScanner) (*shared.BedSnapshot, error) {
	var (
		snap  shared.BedSnapshot
		price pgtype.Int8
	)
	if err := row.Scan(&snap.ID, &snap.RoomID, &snap.BedType, &snap.Position, &price); err != nil {
		return nil, err
	}
	snap.PriceCents = pgconv.Int64PtrFromPgtype(price)
	return &snap, nil
}
