package provider

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/marrymk/marketplace-service/internal/domain"
	"github.com/marrymk/marketplace-service/pkg/dbmetrics"
	"github.com/marrymk/marketplace-service/pkg/psqlbuilder"
)

const (
	pgUniqueViolation = "23505"
	slugConstraint    = "uq_providers_slug"
)

var providerColumns = []string{
	"id",
	"slug",
	"category",
	"service_type",
	"name_en",
	"name_sq",
	"name_mk",
	"description_en",
	"description_sq",
	"description_mk",
	"phone",
	"email",
	"address",
	"city",
	"capacity",
	"price_per_event",
	"currency",
	"working_hours",
	"cover_image",
	"images",
	"amenities",
	"owner_email",
	"is_active",
	"is_approved",
	"approval_status",
	"rejection_reason",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с провайдерами
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория провайдеров
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает нового провайдера.
// Нарушение уникальности slug транслируется в ErrSlugTaken.
func (r *Repository) Create(ctx context.Context, p *domain.Provider) (*domain.Provider, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}

	query, args, err := psqlbuilder.Insert("providers").
		Columns(
			"id",
			"slug",
			"category",
			"service_type",
			"name_en",
			"name_sq",
			"name_mk",
			"description_en",
			"description_sq",
			"description_mk",
			"phone",
			"email",
			"address",
			"city",
			"capacity",
			"price_per_event",
			"currency",
			"working_hours",
			"cover_image",
			"images",
			"amenities",
			"owner_email",
			"is_active",
			"is_approved",
			"approval_status",
			"rejection_reason",
		).
		Values(
			p.ID,
			p.Slug,
			p.Category,
			p.ServiceType,
			p.Name.EN,
			nullIfEmpty(p.Name.SQ),
			nullIfEmpty(p.Name.MK),
			nullIfEmpty(p.Description.EN),
			nullIfEmpty(p.Description.SQ),
			nullIfEmpty(p.Description.MK),
			p.Phone,
			p.Email,
			p.Address,
			p.City,
			p.Capacity,
			p.PricePerEvent,
			p.Currency,
			p.WorkingHours,
			p.CoverImage,
			pq.Array(p.Images),
			pq.Array(p.Amenities),
			p.OwnerEmail,
			p.IsActive,
			p.IsApproved,
			p.ApprovalStatus,
			p.RejectionReason,
		).
		Suffix("RETURNING created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt)

	if err != nil {
		if isSlugViolation(err) {
			return nil, ErrSlugTaken
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	p.CreatedAt = createdAt.Time
	p.UpdatedAt = updatedAt.Time

	return p, nil
}

// GetByID получает провайдера по ID
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Provider, error) {
	return r.getOne(ctx, squirrel.Eq{"id": id})
}

// GetBySlug получает провайдера по slug
func (r *Repository) GetBySlug(ctx context.Context, slug string) (*domain.Provider, error) {
	return r.getOne(ctx, squirrel.Eq{"slug": slug})
}

// GetByOwnerEmail получает провайдера по email владельца.
// У владельца может быть только один провайдер; сравнение
// регистронезависимое, как и авторизация по токену.
func (r *Repository) GetByOwnerEmail(ctx context.Context, email string) (*domain.Provider, error) {
	return r.getOne(ctx, squirrel.Expr("LOWER(owner_email) = ?", strings.ToLower(email)))
}

func (r *Repository) getOne(ctx context.Context, where squirrel.Sqlizer) (*domain.Provider, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(providerColumns...).
		From("providers").
		Where(where).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: getOne - build select query: %v", ErrBuildQuery, err)
	}

	p, err := scanProvider(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrProviderNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: getOne - scan provider: %v", ErrScanRow, err)
	}

	return p, nil
}

// List получает провайдеров с фильтрацией по категории, городу и видимости.
// Свободнотекстовый поиск по локализованным полям выполняется на уровне
// сервиса, поскольку fallback на английский нельзя выразить одним WHERE.
func (r *Repository) List(ctx context.Context, filter domain.ProviderFilter) ([]*domain.Provider, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(providerColumns...).
		From("providers").
		OrderBy("created_at DESC")

	if filter.OnlyVisible {
		selectBuilder = selectBuilder.
			Where(squirrel.Eq{"is_approved": true}).
			Where(squirrel.Eq{"is_active": true})
	}
	if filter.Category != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"category": *filter.Category})
	}
	if filter.City != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"city": *filter.City})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanProviders(rows)
}

// Update обновляет профиль провайдера.
// Модерационные флаги (is_approved, approval_status) намеренно не входят:
// их меняют только SetApproval и SetActive.
func (r *Repository) Update(ctx context.Context, p *domain.Provider) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("providers").
		Set("category", p.Category).
		Set("service_type", p.ServiceType).
		Set("name_en", p.Name.EN).
		Set("name_sq", nullIfEmpty(p.Name.SQ)).
		Set("name_mk", nullIfEmpty(p.Name.MK)).
		Set("description_en", nullIfEmpty(p.Description.EN)).
		Set("description_sq", nullIfEmpty(p.Description.SQ)).
		Set("description_mk", nullIfEmpty(p.Description.MK)).
		Set("phone", p.Phone).
		Set("email", p.Email).
		Set("address", p.Address).
		Set("city", p.City).
		Set("capacity", p.Capacity).
		Set("price_per_event", p.PricePerEvent).
		Set("currency", p.Currency).
		Set("working_hours", p.WorkingHours).
		Set("cover_image", p.CoverImage).
		Set("images", pq.Array(p.Images)).
		Set("amenities", pq.Array(p.Amenities)).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": p.ID}).
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
		return ErrProviderNotFound
	}

	return nil
}

// SetApproval обновляет модерационное решение по провайдеру
func (r *Repository) SetApproval(ctx context.Context, id uuid.UUID, status domain.ApprovalStatus, approved, active bool, reason *string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("providers").
		Set("approval_status", status).
		Set("is_approved", approved).
		Set("is_active", active).
		Set("rejection_reason", reason).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: SetApproval - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: SetApproval - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: SetApproval - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrProviderNotFound
	}

	return nil
}

// SetActive включает или выключает видимость провайдера
func (r *Repository) SetActive(ctx context.Context, id uuid.UUID, active bool) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("providers").
		Set("is_active", active).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: SetActive - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: SetActive - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: SetActive - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrProviderNotFound
	}

	return nil
}

// scanProvider сканирует одну строку результата в провайдера
func scanProvider(row squirrel.RowScanner) (*domain.Provider, error) {
	var p domain.Provider
	var nameSQ, nameMK, descEN, descSQ, descMK sql.NullString
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&p.ID,
		&p.Slug,
		&p.Category,
		&p.ServiceType,
		&p.Name.EN,
		&nameSQ,
		&nameMK,
		&descEN,
		&descSQ,
		&descMK,
		&p.Phone,
		&p.Email,
		&p.Address,
		&p.City,
		&p.Capacity,
		&p.PricePerEvent,
		&p.Currency,
		&p.WorkingHours,
		&p.CoverImage,
		pq.Array(&p.Images),
		pq.Array(&p.Amenities),
		&p.OwnerEmail,
		&p.IsActive,
		&p.IsApproved,
		&p.ApprovalStatus,
		&p.RejectionReason,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	p.Name.SQ = nameSQ.String
	p.Name.MK = nameMK.String
	p.Description.EN = descEN.String
	p.Description.SQ = descSQ.String
	p.Description.MK = descMK.String
	p.CreatedAt = createdAt.Time
	p.UpdatedAt = updatedAt.Time

	return &p, nil
}

// scanProviders сканирует результаты запроса в слайс провайдеров
func scanProviders(rows *sql.Rows) ([]*domain.Provider, error) {
	providers := make([]*domain.Provider, 0)

	for rows.Next() {
		p, err := scanProvider(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanProviders - scan row: %v", ErrScanRow, err)
		}
		providers = append(providers, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanProviders - rows error: %v", ErrScanRow, err)
	}

	return providers, nil
}

func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func isSlugViolation(err error) bool {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return false
	}
	return string(pqErr.Code) == pgUniqueViolation && pqErr.Constraint == slugConstraint
}
