package appointment

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/pkg/dbmetrics"
	"github.com/m04kA/SMC-SalonService/pkg/psqlbuilder"
)

// selectColumns колонки записи вместе с данными клиента и услуги
var selectColumns = []string{
	"a.id",
	"a.client_id",
	"a.service_id",
	"a.start_time",
	"a.end_time",
	"a.price",
	"a.notes",
	"a.status",
	"a.paid",
	"a.payment_method",
	"a.created_at",
	"c.full_name",
	"s.name",
	"s.active_duration_min",
}

// Repository репозиторий для работы с записями (appointments)
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория записей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

func baseSelect() squirrel.SelectBuilder {
	return psqlbuilder.Select(selectColumns...).
		From("appointments a").
		LeftJoin("clients c ON c.id = a.client_id").
		LeftJoin("services s ON s.id = a.service_id")
}

// Create создает новую запись
// Если в контексте передана активная транзакция, использует её
func (r *Repository) Create(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("appointments").
		Columns(
			"client_id",
			"service_id",
			"start_time",
			"end_time",
			"price",
			"notes",
			"status",
			"paid",
			"payment_method",
		).
		Values(
			appt.ClientID,
			appt.ServiceID,
			appt.StartTime,
			appt.EndTime,
			appt.Price,
			appt.Notes,
			appt.Status,
			appt.Paid,
			appt.PaymentMethod,
		).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&appt.ID, &appt.CreatedAt); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}

	return appt, nil
}

// GetByID получает запись по ID
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := baseSelect().
		Where(squirrel.Eq{"a.id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	appt, err := scanAppointment(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrAppointmentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan appointment: %w", ErrScanRow, err)
	}

	return appt, nil
}

// List получает записи по фильтру, отсортированные по времени начала
//
// Примеры использования:
//
// 1. Записи на день (агенда):
//    filter := domain.AppointmentsFilter{From: &dayStart, To: &nextDayStart}
//
// 2. История клиента, включая отменённые:
//    filter := domain.AppointmentsFilter{ClientID: &clientID, IncludeCancelled: true}
//
// 3. Оплаченные записи за месяц (касса):
//    filter := domain.AppointmentsFilter{From: &monthStart, To: &nextMonthStart, OnlyPaid: true}
func (r *Repository) List(ctx context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := baseSelect()

	// Фильтрация по периоду (полуинтервал [From, To))
	if filter.From != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"a.start_time": *filter.From})
	}
	if filter.To != nil {
		selectBuilder = selectBuilder.Where(squirrel.Lt{"a.start_time": *filter.To})
	}

	if filter.ClientID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"a.client_id": *filter.ClientID})
	}

	if !filter.IncludeCancelled {
		selectBuilder = selectBuilder.Where(squirrel.NotEq{"a.status": domain.StatusCancelled})
	}

	if filter.OnlyPaid {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"a.paid": true})
	}

	// История клиента - сначала новые, остальные выборки - по порядку дня
	if filter.ClientID != nil {
		selectBuilder = selectBuilder.OrderBy("a.start_time DESC")
	} else {
		selectBuilder = selectBuilder.OrderBy("a.start_time ASC")
	}

	// Внутри транзакции блокируем записи дня (для usecase создания записи)
	if dbmetrics.IsInTransaction(ctx) && filter.From != nil && filter.To != nil {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE OF a")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	appointments := make([]*domain.Appointment, 0)
	for rows.Next() {
		appt, err := scanAppointment(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %w", ErrScanRow, err)
		}
		appointments = append(appointments, appt)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %w", ErrScanRow, err)
	}

	return appointments, nil
}

// Update обновляет изменяемые поля записи
func (r *Repository) Update(ctx context.Context, appt *domain.Appointment) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("appointments").
		Set("start_time", appt.StartTime).
		Set("end_time", appt.EndTime).
		Set("price", appt.Price).
		Set("notes", appt.Notes).
		Set("status", appt.Status).
		Set("paid", appt.Paid).
		Set("payment_method", appt.PaymentMethod).
		Where(squirrel.Eq{"id": appt.ID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Update - execute update: %w", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Update - get rows affected: %w", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrAppointmentNotFound
	}

	return nil
}

// Delete удаляет запись
func (r *Repository) Delete(ctx context.Context, id uuid.UUID) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("appointments").
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
		return ErrAppointmentNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanAppointment(row rowScanner) (*domain.Appointment, error) {
	var (
		appt           domain.Appointment
		price          sql.NullFloat64
		notes          sql.NullString
		paymentMethod  sql.NullString
		clientName     sql.NullString
		serviceName    sql.NullString
		activeDuration sql.NullInt64
	)

	err := row.Scan(
		&appt.ID,
		&appt.ClientID,
		&appt.ServiceID,
		&appt.StartTime,
		&appt.EndTime,
		&price,
		&notes,
		&appt.Status,
		&appt.Paid,
		&paymentMethod,
		&appt.CreatedAt,
		&clientName,
		&serviceName,
		&activeDuration,
	)
	if err != nil {
		return nil, err
	}

	if price.Valid {
		appt.Price = &price.Float64
	}
	if notes.Valid {
		appt.Notes = &notes.String
	}
	if paymentMethod.Valid {
		pm := domain.PaymentMethod(paymentMethod.String)
		appt.PaymentMethod = &pm
	}
	if clientName.Valid {
		appt.ClientName = &clientName.String
	}
	if serviceName.Valid {
		appt.ServiceName = &serviceName.String
	}
	if activeDuration.Valid {
		d := int(activeDuration.Int64)
		appt.ServiceActiveDuration = &d
	}

	return &appt, nil
}
