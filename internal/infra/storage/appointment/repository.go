package appointment

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/CSC-AppointmentService/internal/domain"
	"github.com/m04kA/CSC-AppointmentService/pkg/dbmetrics"
	"github.com/m04kA/CSC-AppointmentService/pkg/psqlbuilder"
	"github.com/m04kA/CSC-AppointmentService/pkg/types"
)

// appointmentColumns полный набор колонок таблицы appointments
var appointmentColumns = []string{
	"id",
	"user_id",
	"type",
	"is_courtesy",
	"purpose",
	"appointment_date",
	"appointment_time",
	"status",
	"scheduled_by",
	"patient_name",
	"processor_name",
	"medical_details",
	"verification_image_ref",
	"cancellation_reason",
	"cancelled_at",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с записями на приём
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория записей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новую запись на приём.
// Если в контексте передана активная транзакция, использует её —
// usecase создания выполняет проверки доступности и вставку в одной
// сериализуемой транзакции.
func (r *Repository) Create(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("appointments").
		Columns(
			"user_id",
			"type",
			"is_courtesy",
			"purpose",
			"appointment_date",
			"appointment_time",
			"status",
			"patient_name",
			"processor_name",
			"medical_details",
			"verification_image_ref",
		).
		Values(
			appt.UserID,
			appt.Type,
			appt.IsCourtesy,
			appt.Purpose,
			appt.Date,
			appt.Time,
			appt.Status,
			appt.PatientName,
			appt.ProcessorName,
			appt.MedicalDetails,
			appt.VerificationImageRef,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&appt.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	appt.CreatedAt = createdAt.Time
	appt.UpdatedAt = updatedAt.Time

	return appt, nil
}

// GetByID получает запись по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(appointmentColumns...).
		From("appointments").
		Where(squirrel.Eq{"id": id})

	// Внутри транзакции блокируем строку для смены статуса
	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	appt, err := r.scanAppointment(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrAppointmentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan appointment: %v", ErrScanRow, err)
	}

	return appt, nil
}

// GetByUserWithFilter получает записи пользователя с фильтрацией
// по статусу, дате и активности.
//
// Внутри транзакции при фильтре по конкретной дате добавляется FOR UPDATE —
// это блокирует набор записей дня на время проверки конфликтов в usecase
// создания/переноса записи.
func (r *Repository) GetByUserWithFilter(ctx context.Context, filter domain.UserAppointmentsFilter) ([]*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(appointmentColumns...).
		From("appointments").
		Where(squirrel.Eq{"user_id": filter.UserID})

	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *filter.Status})
	}

	if filter.OnlyActive {
		activeStatusStrings := make([]string, len(domain.ActiveStatuses))
		for i, s := range domain.ActiveStatuses {
			activeStatusStrings[i] = string(s)
		}
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": activeStatusStrings})
	}

	if filter.Date != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"appointment_date": *filter.Date})
		selectBuilder = selectBuilder.OrderBy("appointment_time ASC")
	} else {
		selectBuilder = selectBuilder.OrderBy("appointment_date DESC, created_at DESC")
	}

	if dbmetrics.IsInTransaction(ctx) && filter.Date != nil {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByUserWithFilter - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByUserWithFilter - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanAppointments(rows)
}

// GetWithFilter получает записи по датам/статусу.
// Используется live-подпиской для полной выборки набора и календарём
// для построения индекса загрузки дней.
func (r *Repository) GetWithFilter(ctx context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(appointmentColumns...).
		From("appointments")

	if filter.StartDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"appointment_date": *filter.StartDate})
	}
	if filter.EndDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.LtOrEq{"appointment_date": *filter.EndDate})
	}
	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *filter.Status})
	}
	if !filter.IncludeCourtesy {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"is_courtesy": false})
	}

	selectBuilder = selectBuilder.OrderBy("appointment_date ASC, appointment_time ASC, id ASC")

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetWithFilter - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetWithFilter - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanAppointments(rows)
}

// CountConfirmedByDate строит агрегат загрузки дней: количество
// подтверждённых обычных (не courtesy) записей на каждую дату периода
func (r *Repository) CountConfirmedByDate(ctx context.Context, start, end time.Time) (domain.DayCountIndex, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"appointment_date",
		"COUNT(*)",
	).
		From("appointments").
		Where(squirrel.Eq{"status": domain.StatusConfirmed}).
		Where(squirrel.Eq{"is_courtesy": false}).
		Where(squirrel.GtOrEq{"appointment_date": start}).
		Where(squirrel.LtOrEq{"appointment_date": end}).
		GroupBy("appointment_date").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: CountConfirmedByDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: CountConfirmedByDate - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	index := make(domain.DayCountIndex)
	for rows.Next() {
		var date time.Time
		var count int
		if err := rows.Scan(&date, &count); err != nil {
			return nil, fmt.Errorf("%w: CountConfirmedByDate - scan row: %v", ErrScanRow, err)
		}
		index[date.Format(domain.DateFormat)] = count
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: CountConfirmedByDate - rows error: %v", ErrScanRow, err)
	}

	return index, nil
}

// UpdateSchedule обновляет дату и время записи (перенос)
func (r *Repository) UpdateSchedule(ctx context.Context, id int64, date time.Time, slot types.TimeString) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("appointments").
		Set("appointment_date", date).
		Set("appointment_time", slot).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateSchedule - build update query: %v", ErrBuildQuery, err)
	}

	return r.execExpectingRow(ctx, executor, query, args, "UpdateSchedule")
}

// UpdateStatus обновляет статус записи
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status domain.AppointmentStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("appointments").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	return r.execExpectingRow(ctx, executor, query, args, "UpdateStatus")
}

// Cancel переводит запись в статус Cancelled с указанием причины.
// Физическое удаление записей не используется — история сохраняется.
func (r *Repository) Cancel(ctx context.Context, id int64, reason string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("appointments").
		Set("status", domain.StatusCancelled).
		Set("cancellation_reason", reason).
		Set("cancelled_at", squirrel.Expr("NOW()")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Cancel - build update query: %v", ErrBuildQuery, err)
	}

	return r.execExpectingRow(ctx, executor, query, args, "Cancel")
}

// ScheduleCourtesy назначает courtesy-записи дату, время и сотрудника,
// переводя её в Confirmed. created_at не изменяется.
func (r *Repository) ScheduleCourtesy(ctx context.Context, id int64, date time.Time, slot types.TimeString, scheduledBy int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("appointments").
		Set("appointment_date", date).
		Set("appointment_time", slot).
		Set("status", domain.StatusConfirmed).
		Set("scheduled_by", scheduledBy).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: ScheduleCourtesy - build update query: %v", ErrBuildQuery, err)
	}

	return r.execExpectingRow(ctx, executor, query, args, "ScheduleCourtesy")
}

// execExpectingRow выполняет update и проверяет, что строка существовала
func (r *Repository) execExpectingRow(ctx context.Context, executor DBExecutor, query string, args []interface{}, op string) error {
	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %s - execute update: %v", ErrExecQuery, op, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %s - get rows affected: %v", ErrExecQuery, op, err)
	}

	if rowsAffected == 0 {
		return ErrAppointmentNotFound
	}

	return nil
}

// rowScanner общий интерфейс *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanAppointment сканирует одну запись
func (r *Repository) scanAppointment(row rowScanner) (*domain.Appointment, error) {
	var appt domain.Appointment
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&appt.ID,
		&appt.UserID,
		&appt.Type,
		&appt.IsCourtesy,
		&appt.Purpose,
		&appt.Date,
		&appt.Time,
		&appt.Status,
		&appt.ScheduledBy,
		&appt.PatientName,
		&appt.ProcessorName,
		&appt.MedicalDetails,
		&appt.VerificationImageRef,
		&appt.CancellationReason,
		&appt.CancelledAt,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	appt.CreatedAt = createdAt.Time
	appt.UpdatedAt = updatedAt.Time

	return &appt, nil
}

// scanAppointments сканирует результаты запроса в слайс записей
func (r *Repository) scanAppointments(rows *sql.Rows) ([]*domain.Appointment, error) {
	appointments := make([]*domain.Appointment, 0)

	for rows.Next() {
		appt, err := r.scanAppointment(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanAppointments - scan row: %v", ErrScanRow, err)
		}
		appointments = append(appointments, appt)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanAppointments - rows error: %v", ErrScanRow, err)
	}

	return appointments, nil
}
