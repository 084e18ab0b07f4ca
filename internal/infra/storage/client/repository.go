package client

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/pkg/dbmetrics"
	"github.com/m04kA/SMC-SalonService/pkg/psqlbuilder"
)

// pgUniqueViolation код ошибки PostgreSQL при нарушении уникальности
const pgUniqueViolation = "23505"

var selectColumns = []string{
	"id",
	"full_name",
	"phone",
	"phone_norm",
	"instagram",
	"notes",
	"created_at",
}

// Repository репозиторий справочника клиентов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория клиентов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// IsUniqueViolation проверяет, что ошибка - нарушение уникального индекса
func IsUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == pgUniqueViolation
}

// Create создает нового клиента
func (r *Repository) Create(ctx context.Context, c *domain.Client) (*domain.Client, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("clients").
		Columns("full_name", "phone", "phone_norm", "instagram", "notes").
		Values(c.FullName, c.Phone, c.PhoneNorm, c.Instagram, c.Notes).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&c.ID, &c.CreatedAt); err != nil {
		if IsUniqueViolation(err) {
			return nil, ErrDuplicatePhone
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}

	return c, nil
}

// CreateBatch вставляет клиентов одним запросом
// При нарушении уникальности не вставляется ни один клиент пачки
func (r *Repository) CreateBatch(ctx context.Context, clients []*domain.Client) error {
	if len(clients) == 0 {
		return nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	insertBuilder := psqlbuilder.Insert("clients").
		Columns("full_name", "phone", "phone_norm")
	for _, c := range clients {
		insertBuilder = insertBuilder.Values(c.FullName, c.Phone, c.PhoneNorm)
	}

	query, args, err := insertBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: CreateBatch - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		if IsUniqueViolation(err) {
			return fmt.Errorf("%w: CreateBatch: %v", ErrDuplicatePhone, err)
		}
		return fmt.Errorf("%w: CreateBatch - execute insert: %w", ErrExecQuery, err)
	}

	return nil
}

// GetByID получает клиента по ID
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Client, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(selectColumns...).
		From("clients").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	c, err := scanClient(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrClientNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan client: %w", ErrScanRow, err)
	}

	return c, nil
}

// Search ищет клиентов по имени или телефону, пустой запрос возвращает всех
func (r *Repository) Search(ctx context.Context, q string, limit int) ([]*domain.Client, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(selectColumns...).
		From("clients").
		OrderBy("full_name ASC")

	if q = strings.TrimSpace(q); q != "" {
		pattern := "%" + q + "%"
		cond := squirrel.Or{
			squirrel.ILike{"full_name": pattern},
			squirrel.ILike{"phone": pattern},
		}
		if digits := domain.NormalizePhoneES(q); digits != "" {
			cond = append(cond, squirrel.Like{"phone_norm": "%" + digits + "%"})
		}
		selectBuilder = selectBuilder.Where(cond)
	}

	if limit > 0 {
		selectBuilder = selectBuilder.Limit(uint64(limit))
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Search - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: Search - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	clients := make([]*domain.Client, 0)
	for rows.Next() {
		c, err := scanClient(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: Search - scan row: %w", ErrScanRow, err)
		}
		clients = append(clients, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: Search - rows error: %w", ErrScanRow, err)
	}

	return clients, nil
}

// ExistingPhoneNorms возвращает те номера из norms, что уже есть в справочнике
func (r *Repository) ExistingPhoneNorms(ctx context.Context, norms []string) ([]string, error) {
	if len(norms) == 0 {
		return []string{}, nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("phone_norm").
		From("clients").
		Where(squirrel.Eq{"phone_norm": norms}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ExistingPhoneNorms - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ExistingPhoneNorms - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	existing := make([]string, 0)
	for rows.Next() {
		var norm string
		if err := rows.Scan(&norm); err != nil {
			return nil, fmt.Errorf("%w: ExistingPhoneNorms - scan row: %w", ErrScanRow, err)
		}
		existing = append(existing, norm)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ExistingPhoneNorms - rows error: %w", ErrScanRow, err)
	}

	return existing, nil
}

// Update обновляет данные клиента
func (r *Repository) Update(ctx context.Context, c *domain.Client) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("clients").
		Set("full_name", c.FullName).
		Set("phone", c.Phone).
		Set("phone_norm", c.PhoneNorm).
		Set("instagram", c.Instagram).
		Set("notes", c.Notes).
		Where(squirrel.Eq{"id": c.ID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		if IsUniqueViolation(err) {
			return ErrDuplicatePhone
		}
		return fmt.Errorf("%w: Update - execute update: %w", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Update - get rows affected: %w", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrClientNotFound
	}

	return nil
}

// Delete удаляет клиента вместе с его записями (ON DELETE CASCADE)
func (r *Repository) Delete(ctx context.Context, id uuid.UUID) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("clients").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %w", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %w", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrClientNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanClient(row rowScanner) (*domain.Client, error) {
	var (
		c         domain.Client
		phone     sql.NullString
		phoneNorm sql.NullString
		instagram sql.NullString
		notes     sql.NullString
	)

	err := row.Scan(&c.ID, &c.FullName, &phone, &phoneNorm, &instagram, &notes, &c.CreatedAt)
	if err != nil {
		return nil, err
	}

	if phone.Valid {
		c.Phone = &phone.String
	}
	if phoneNorm.Valid {
		c.PhoneNorm = &phoneNorm.String
	}
	if instagram.Valid {
		c.Instagram = &instagram.String
	}
	if notes.Valid {
		c.Notes = &notes.String
	}

	return &c, nil
}
