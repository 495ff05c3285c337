package booking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/marrymk/marketplace-service/internal/domain"
	"github.com/marrymk/marketplace-service/pkg/dbmetrics"
	"github.com/marrymk/marketplace-service/pkg/psqlbuilder"
)

const (
	pgUniqueViolation    = "23505"
	activeDateConstraint = "uq_bookings_provider_date_active"
)

var bookingColumns = []string{
	"id",
	"service_provider_id",
	"provider_slug",
	"client_name",
	"client_phone",
	"client_email",
	"event_date",
	"event_type",
	"event_type_other",
	"guests",
	"special_requests",
	"status",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое бронирование.
// Если в контексте передана активная транзакция, использует её —
// use case создания бронирования выполняет проверку доступности и вставку
// в одной сериализуемой транзакции.
//
// Нарушение partial unique index по (service_provider_id, event_date,
// активный статус) транслируется в ErrDateConflict, а не в общую ошибку
// выполнения: для вызывающего это конфликт даты, не сбой хранилища.
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	if booking.ID == uuid.Nil {
		booking.ID = uuid.New()
	}

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"id",
			"service_provider_id",
			"provider_slug",
			"client_name",
			"client_phone",
			"client_email",
			"event_date",
			"event_type",
			"event_type_other",
			"guests",
			"special_requests",
			"status",
		).
		Values(
			booking.ID,
			booking.ProviderID,
			booking.ProviderSlug,
			booking.ClientName,
			booking.ClientPhone,
			booking.ClientEmail,
			booking.EventDate,
			booking.EventType,
			booking.EventTypeOther,
			booking.Guests,
			booking.SpecialRequests,
			booking.Status,
		).
		Suffix("RETURNING created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt)

	if err != nil {
		if isActiveDateViolation(err) {
			return nil, ErrDateConflict
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return booking, nil
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	booking, err := scanBooking(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %v", ErrScanRow, err)
	}

	return booking, nil
}

// GetByProviderWithFilter получает бронирования провайдера с фильтрацией
// по дате, статусу и признаку активности.
//
// Внутри транзакции при фильтре по конкретной дате добавляется FOR UPDATE:
// use case создания бронирования блокирует строки конкурирующих бронирований
// на ту же дату до конца транзакции.
func (r *Repository) GetByProviderWithFilter(ctx context.Context, filter domain.ProviderBookingsFilter) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"service_provider_id": filter.ProviderID})

	if filter.EventDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"event_date": *filter.EventDate})
	}

	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *filter.Status})
	} else if filter.OnlyActive {
		occupying := make([]string, len(domain.OccupyingStatuses))
		for i, s := range domain.OccupyingStatuses {
			occupying[i] = string(s)
		}
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": occupying})
	}

	if filter.EventDate != nil {
		selectBuilder = selectBuilder.OrderBy("created_at ASC")
	} else {
		selectBuilder = selectBuilder.OrderBy("created_at DESC")
	}

	if dbmetrics.IsInTransaction(ctx) && filter.EventDate != nil {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByProviderWithFilter - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByProviderWithFilter - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

// OccupiedDates возвращает даты провайдера, занятые pending/accepted
// бронированиями, начиная с даты from (для календаря недоступных дат)
func (r *Repository) OccupiedDates(ctx context.Context, providerID uuid.UUID, from string) ([]string, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	occupying := make([]string, len(domain.OccupyingStatuses))
	for i, s := range domain.OccupyingStatuses {
		occupying[i] = string(s)
	}

	query, args, err := psqlbuilder.Select("DISTINCT event_date").
		From("bookings").
		Where(squirrel.Eq{"service_provider_id": providerID}).
		Where(squirrel.Eq{"status": occupying}).
		Where(squirrel.GtOrEq{"event_date": from}).
		OrderBy("event_date ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: OccupiedDates - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: OccupiedDates - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	dates := make([]string, 0)
	for rows.Next() {
		var date sql.NullTime
		if err := rows.Scan(&date); err != nil {
			return nil, fmt.Errorf("%w: OccupiedDates - scan date: %v", ErrScanRow, err)
		}
		dates = append(dates, date.Time.Format(domain.DateFormat))
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: OccupiedDates - rows error: %v", ErrScanRow, err)
	}

	return dates, nil
}

// ListAll получает все бронирования (админ-консоль), новые первыми
func (r *Repository) ListAll(ctx context.Context) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		OrderBy("created_at DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListAll - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListAll - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

// UpdateStatus обновляет статус бронирования
func (r *Repository) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.BookingStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		if isActiveDateViolation(err) {
			return ErrDateConflict
		}
		return fmt.Errorf("%w: UpdateStatus - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

// scanBooking сканирует одну строку результата в бронирование
func scanBooking(row squirrel.RowScanner) (*domain.Booking, error) {
	var booking domain.Booking
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&booking.ID,
		&booking.ProviderID,
		&booking.ProviderSlug,
		&booking.ClientName,
		&booking.ClientPhone,
		&booking.ClientEmail,
		&booking.EventDate,
		&booking.EventType,
		&booking.EventTypeOther,
		&booking.Guests,
		&booking.SpecialRequests,
		&booking.Status,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return &booking, nil
}

// scanBookings сканирует результаты запроса в слайс бронирований
func scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)

	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanBookings - scan row: %v", ErrScanRow, err)
		}
		bookings = append(bookings, booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}

func isActiveDateViolation(err error) bool {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return false
	}
	return string(pqErr.Code) == pgUniqueViolation && pqErr.Constraint == activeDateConstraint
}
