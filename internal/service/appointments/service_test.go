package appointments

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/CSC-AppointmentService/internal/domain"
	storage "github.com/m04kA/CSC-AppointmentService/internal/infra/storage/appointment"
	"github.com/m04kA/CSC-AppointmentService/internal/service/appointments/models"
	"github.com/m04kA/CSC-AppointmentService/pkg/ptr"
)

type mockRepo struct {
	appointments map[int64]*domain.Appointment

	cancelCalls       int
	updateStatusCalls int
}

func (m *mockRepo) GetByID(_ context.Context, id int64) (*domain.Appointment, error) {
	appt, ok := m.appointments[id]
	if !ok {
		return nil, storage.ErrAppointmentNotFound
	}
	copied := *appt
	return &copied, nil
}

func (m *mockRepo) GetByUserWithFilter(_ context.Context, filter domain.UserAppointmentsFilter) ([]*domain.Appointment, error) {
	var result []*domain.Appointment
	for _, appt := range m.appointments {
		if appt.UserID != filter.UserID {
			continue
		}
		if filter.Status != nil && appt.Status != *filter.Status {
			continue
		}
		result = append(result, appt)
	}
	return result, nil
}

func (m *mockRepo) UpdateStatus(_ context.Context, id int64, status domain.AppointmentStatus) error {
	m.updateStatusCalls++
	m.appointments[id].Status = status
	return nil
}

func (m *mockRepo) Cancel(_ context.Context, id int64, reason string) error {
	m.cancelCalls++
	appt := m.appointments[id]
	appt.Status = domain.StatusCancelled
	appt.CancellationReason = ptr.Ptr(reason)
	now := time.Now()
	appt.CancelledAt = &now
	return nil
}

type passthroughTxManager struct{}

func (passthroughTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestService(repo *mockRepo) *Service {
	return NewService(repo, passthroughTxManager{}, nopLogger{})
}

func storedAppointment(id, userID int64, status domain.AppointmentStatus) *domain.Appointment {
	return &domain.Appointment{
		ID:     id,
		UserID: userID,
		Type:   domain.TypeSolicitation,
		Date:   time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC),
		Time:   "09:00 AM",
		Status: status,
	}
}

func TestGetByID(t *testing.T) {
	repo := &mockRepo{appointments: map[int64]*domain.Appointment{
		1: storedAppointment(1, 10, domain.StatusPending),
	}}
	svc := newTestService(repo)
	ctx := context.Background()

	resp, err := svc.GetByID(ctx, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, "Pending", resp.Status)

	_, err = svc.GetByID(ctx, 1, 77)
	assert.ErrorIs(t, err, ErrAccessDenied)

	_, err = svc.GetByID(ctx, 99, 10)
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestGetUserAppointments(t *testing.T) {
	repo := &mockRepo{appointments: map[int64]*domain.Appointment{
		1: storedAppointment(1, 10, domain.StatusPending),
		2: storedAppointment(2, 10, domain.StatusCancelled),
		3: storedAppointment(3, 77, domain.StatusPending),
	}}
	svc := newTestService(repo)
	ctx := context.Background()

	resp, err := svc.GetUserAppointments(ctx, &models.GetUserAppointmentsRequest{UserID: 10})
	require.NoError(t, err)
	assert.Len(t, resp.Appointments, 2)

	resp, err = svc.GetUserAppointments(ctx, &models.GetUserAppointmentsRequest{
		UserID: 10,
		Status: ptr.Ptr("Cancelled"),
	})
	require.NoError(t, err)
	require.Len(t, resp.Appointments, 1)
	assert.Equal(t, int64(2), resp.Appointments[0].ID)

	// Статусы регистрозависимы
	_, err = svc.GetUserAppointments(ctx, &models.GetUserAppointmentsRequest{
		UserID: 10,
		Status: ptr.Ptr("cancelled"),
	})
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestCancel(t *testing.T) {
	repo := &mockRepo{appointments: map[int64]*domain.Appointment{
		1: storedAppointment(1, 10, domain.StatusConfirmed),
	}}
	svc := newTestService(repo)

	resp, err := svc.Cancel(context.Background(), 1, &models.CancelAppointmentRequest{
		UserID:             10,
		CancellationReason: "schedule changed",
	})
	require.NoError(t, err)

	assert.Equal(t, "Cancelled", resp.Status)
	require.NotNil(t, resp.CancellationReason)
	assert.Equal(t, "schedule changed", *resp.CancellationReason)
	assert.NotNil(t, resp.CancelledAt)
	assert.Equal(t, 1, repo.cancelCalls)
}

func TestCancelIsIdempotent(t *testing.T) {
	cancelled := storedAppointment(1, 10, domain.StatusCancelled)
	cancelled.CancellationReason = ptr.Ptr("first cancellation")

	repo := &mockRepo{appointments: map[int64]*domain.Appointment{1: cancelled}}
	svc := newTestService(repo)

	// Повторная отмена — no-op без ошибки, репозиторий не трогается
	resp, err := svc.Cancel(context.Background(), 1, &models.CancelAppointmentRequest{
		UserID:             10,
		CancellationReason: "second cancellation",
	})
	require.NoError(t, err)

	assert.Equal(t, "Cancelled", resp.Status)
	assert.Equal(t, "first cancellation", *resp.CancellationReason)
	assert.Equal(t, 0, repo.cancelCalls)
}

func TestCancelTerminalRejected(t *testing.T) {
	for _, status := range []domain.AppointmentStatus{domain.StatusCompleted, domain.StatusRejected} {
		repo := &mockRepo{appointments: map[int64]*domain.Appointment{
			1: storedAppointment(1, 10, status),
		}}
		svc := newTestService(repo)

		_, err := svc.Cancel(context.Background(), 1, &models.CancelAppointmentRequest{UserID: 10})
		assert.ErrorIs(t, err, ErrCannotCancel, "status %s", status)
	}
}

func TestCancelAccessDenied(t *testing.T) {
	repo := &mockRepo{appointments: map[int64]*domain.Appointment{
		1: storedAppointment(1, 10, domain.StatusPending),
	}}
	svc := newTestService(repo)

	_, err := svc.Cancel(context.Background(), 1, &models.CancelAppointmentRequest{UserID: 77})
	assert.ErrorIs(t, err, ErrAccessDenied)
	assert.Equal(t, 0, repo.cancelCalls)
}

func TestUpdateStatusTransitions(t *testing.T) {
	tests := []struct {
		name    string
		from    domain.AppointmentStatus
		to      string
		wantErr error
	}{
		{"confirm pending", domain.StatusPending, "Confirmed", nil},
		{"reject pending", domain.StatusPending, "Rejected", nil},
		{"complete confirmed", domain.StatusConfirmed, "Completed", nil},
		{"cancel confirmed", domain.StatusConfirmed, "Cancelled", nil},
		{"complete pending", domain.StatusPending, "Completed", ErrInvalidTransition},
		{"reject confirmed", domain.StatusConfirmed, "Rejected", ErrInvalidTransition},
		{"revive cancelled", domain.StatusCancelled, "Confirmed", ErrInvalidTransition},
		{"unknown status", domain.StatusPending, "Approved", ErrInvalidStatus},
		{"lowercase status", domain.StatusPending, "confirmed", ErrInvalidStatus},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mockRepo{appointments: map[int64]*domain.Appointment{
				1: storedAppointment(1, 10, tt.from),
			}}
			svc := newTestService(repo)

			resp, err := svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{
				StaffID: 500,
				Status:  tt.to,
			})
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.to, resp.Status)
		})
	}
}

func TestUpdateStatusCourtesyConfirmRejected(t *testing.T) {
	courtesy := storedAppointment(1, 10, domain.StatusPending)
	courtesy.Type = domain.TypeCourtesy
	courtesy.IsCourtesy = true

	repo := &mockRepo{appointments: map[int64]*domain.Appointment{1: courtesy}}
	svc := newTestService(repo)
	ctx := context.Background()

	// Подтверждение courtesy идёт только через назначение слота
	_, err := svc.UpdateStatus(ctx, 1, &models.UpdateStatusRequest{StaffID: 500, Status: "Confirmed"})
	assert.ErrorIs(t, err, ErrCourtesyConfirm)
	assert.Equal(t, 0, repo.updateStatusCalls)

	// Отклонить courtesy-запрос через staff-путь можно
	_, err = svc.UpdateStatus(ctx, 1, &models.UpdateStatusRequest{StaffID: 500, Status: "Rejected"})
	require.NoError(t, err)
}

func TestUpdateStatusNotFound(t *testing.T) {
	repo := &mockRepo{appointments: map[int64]*domain.Appointment{}}
	svc := newTestService(repo)

	_, err := svc.UpdateStatus(context.Background(), 42, &models.UpdateStatusRequest{
		StaffID: 500,
		Status:  "Confirmed",
	})
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}
