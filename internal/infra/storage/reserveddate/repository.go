package reserveddate

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/marrymk/marketplace-service/internal/domain"
	"github.com/marrymk/marketplace-service/pkg/dbmetrics"
	"github.com/marrymk/marketplace-service/pkg/psqlbuilder"
)

var reservedColumns = []string{
	"id",
	"service_provider_id",
	"provider_slug",
	"date",
	"reason",
	"notes",
	"payment_client_name",
	"payment_amount_paid",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с зарезервированными датами
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория зарезервированных дат
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новую зарезервированную дату
func (r *Repository) Create(ctx context.Context, rd *domain.ReservedDate) (*domain.ReservedDate, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	if rd.ID == uuid.Nil {
		rd.ID = uuid.New()
	}

	var payClient *string
	var payAmount *float64
	if rd.Payment != nil {
		payClient = &rd.Payment.ClientName
		payAmount = rd.Payment.AmountPaid
	}

	query, args, err := psqlbuilder.Insert("admin_reserved_dates").
		Columns(
			"id",
			"service_provider_id",
			"provider_slug",
			"date",
			"reason",
			"notes",
			"payment_client_name",
			"payment_amount_paid",
		).
		Values(
			rd.ID,
			rd.ProviderID,
			rd.ProviderSlug,
			rd.Date,
			rd.Reason,
			rd.Notes,
			payClient,
			payAmount,
		).
		Suffix("RETURNING created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	rd.CreatedAt = createdAt.Time
	rd.UpdatedAt = updatedAt.Time

	return rd, nil
}

// GetByID получает зарезервированную дату по ID
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*domain.ReservedDate, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(reservedColumns...).
		From("admin_reserved_dates").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	rd, err := scanReservedDate(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrReservedDateNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan reserved date: %v", ErrScanRow, err)
	}

	return rd, nil
}

// ListAll получает все зарезервированные даты, новые даты первыми
func (r *Repository) ListAll(ctx context.Context) ([]*domain.ReservedDate, error) {
	return r.list(ctx, nil)
}

// ListByProvider получает зарезервированные даты провайдера начиная с from
// (для календаря недоступных дат)
func (r *Repository) ListByProvider(ctx context.Context, providerID uuid.UUID, from string) ([]*domain.ReservedDate, error) {
	where := squirrel.And{
		squirrel.Eq{"service_provider_id": providerID},
		squirrel.GtOrEq{"date": from},
	}
	return r.list(ctx, where)
}

func (r *Repository) list(ctx context.Context, where squirrel.Sqlizer) ([]*domain.ReservedDate, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(reservedColumns...).
		From("admin_reserved_dates").
		OrderBy("date DESC")

	if where != nil {
		selectBuilder = selectBuilder.Where(where)
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: list - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: list - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	dates := make([]*domain.ReservedDate, 0)
	for rows.Next() {
		rd, err := scanReservedDate(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: list - scan row: %v", ErrScanRow, err)
		}
		dates = append(dates, rd)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: list - rows error: %v", ErrScanRow, err)
	}

	return dates, nil
}

// Update обновляет зарезервированную дату
func (r *Repository) Update(ctx context.Context, rd *domain.ReservedDate) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	var payClient *string
	var payAmount *float64
	if rd.Payment != nil {
		payClient = &rd.Payment.ClientName
		payAmount = rd.Payment.AmountPaid
	}

	query, args, err := psqlbuilder.Update("admin_reserved_dates").
		Set("service_provider_id", rd.ProviderID).
		Set("provider_slug", rd.ProviderSlug).
		Set("date", rd.Date).
		Set("reason", rd.Reason).
		Set("notes", rd.Notes).
		Set("payment_client_name", payClient).
		Set("payment_amount_paid", payAmount).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": rd.ID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Update - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrReservedDateNotFound
	}

	return nil
}

// Delete удаляет зарезервированную дату
func (r *Repository) Delete(ctx context.Context, id uuid.UUID) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("admin_reserved_dates").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrReservedDateNotFound
	}

	return nil
}

// scanReservedDate сканирует одну строку результата.
// Платёжные поля хранятся в отдельных nullable-колонках и собираются
// обратно в PaymentDetails только когда заполнены.
func scanReservedDate(row squirrel.RowScanner) (*domain.ReservedDate, error) {
	var rd domain.ReservedDate
	var payClient sql.NullString
	var payAmount sql.NullFloat64
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&rd.ID,
		&rd.ProviderID,
		&rd.ProviderSlug,
		&rd.Date,
		&rd.Reason,
		&rd.Notes,
		&payClient,
		&payAmount,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if payClient.Valid {
		rd.Payment = &domain.PaymentDetails{ClientName: payClient.String}
		if payAmount.Valid {
			rd.Payment.AmountPaid = &payAmount.Float64
		}
	}

	rd.CreatedAt = createdAt.Time
	rd.UpdatedAt = updatedAt.Time

	return &rd, nil
}
