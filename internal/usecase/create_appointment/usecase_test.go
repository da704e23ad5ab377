package create_appointment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/CSC-AppointmentService/internal/domain"
	"github.com/m04kA/CSC-AppointmentService/pkg/ptr"
	"github.com/m04kA/CSC-AppointmentService/pkg/types"
)

type mockRepo struct {
	existing []*domain.Appointment
	index    domain.DayCountIndex
	created  *domain.Appointment
	nextID   int64
}

func (m *mockRepo) Create(_ context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	created := *appt
	m.nextID++
	created.ID = m.nextID
	created.CreatedAt = time.Now()
	created.UpdatedAt = created.CreatedAt
	m.created = &created
	m.existing = append(m.existing, &created)
	return &created, nil
}

func (m *mockRepo) GetByUserWithFilter(_ context.Context, filter domain.UserAppointmentsFilter) ([]*domain.Appointment, error) {
	var result []*domain.Appointment
	for _, appt := range m.existing {
		if appt.UserID != filter.UserID {
			continue
		}
		if filter.Date != nil && !appt.OnDate(*filter.Date) {
			continue
		}
		if filter.OnlyActive && !appt.IsActive() {
			continue
		}
		result = append(result, appt)
	}
	return result, nil
}

func (m *mockRepo) CountConfirmedByDate(_ context.Context, _, _ time.Time) (domain.DayCountIndex, error) {
	if m.index == nil {
		return make(domain.DayCountIndex), nil
	}
	return m.index, nil
}

type passthroughTxManager struct{}

func (passthroughTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fixedTimeProvider struct{ now time.Time }

func (p fixedTimeProvider) Now() time.Time { return p.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

// Понедельник 2026-09-14, текущее время 2026-09-01
var (
	testNow    = time.Date(2026, 9, 1, 8, 0, 0, 0, time.UTC)
	testMonday = time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC)
)

func newTestUseCase(repo *mockRepo) *UseCase {
	uc := NewUseCase(
		repo,
		domain.NewCalendarRules(nil, 6),
		domain.NewConflictDetector(60),
		passthroughTxManager{},
		nopLogger{},
	)
	uc.timeProvider = fixedTimeProvider{now: testNow}
	return uc
}

func validRequest(slot string) *Request {
	return &Request{
		UserID:    1,
		Type:      domain.TypeSolicitation,
		Purpose:   "Passport renewal",
		Date:      testMonday,
		StartTime: types.TimeString(slot),
	}
}

func TestCreateAppointmentSuccess(t *testing.T) {
	repo := &mockRepo{}
	uc := newTestUseCase(repo)

	resp, err := uc.Execute(context.Background(), validRequest("09:00 AM"))
	require.NoError(t, err)

	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, domain.TypeSolicitation, resp.Type)
	assert.False(t, resp.IsCourtesy)
	assert.Equal(t, string(domain.StatusPending), resp.Status)
	assert.Equal(t, types.TimeString("09:00 AM"), resp.Time)
}

func TestCreateAppointmentConflictWindow(t *testing.T) {
	repo := &mockRepo{}
	uc := newTestUseCase(repo)
	ctx := context.Background()

	// 09:00 создаётся
	_, err := uc.Execute(ctx, validRequest("09:00 AM"))
	require.NoError(t, err)

	// 09:30 — в пределах часа, конфликт
	_, err = uc.Execute(ctx, validRequest("09:30 AM"))
	assert.ErrorIs(t, err, ErrTimeConflict)

	// 10:00 — ровно час, создаётся
	_, err = uc.Execute(ctx, validRequest("10:00 AM"))
	require.NoError(t, err)

	// 09:45 — в пределах часа от обеих, конфликт
	_, err = uc.Execute(ctx, validRequest("09:45 AM"))
	assert.ErrorIs(t, err, ErrTimeConflict)
}

func TestCreateAppointmentDailyCapacity(t *testing.T) {
	repo := &mockRepo{index: domain.DayCountIndex{"2026-09-14": 6}}
	uc := newTestUseCase(repo)

	_, err := uc.Execute(context.Background(), validRequest("09:00 AM"))
	assert.ErrorIs(t, err, ErrDayFull)
}

func TestCreateAppointmentCalendarRules(t *testing.T) {
	repo := &mockRepo{}
	uc := newTestUseCase(repo)
	ctx := context.Background()

	holiday := validRequest("09:00 AM")
	holiday.Date = time.Date(2026, 12, 25, 0, 0, 0, 0, time.UTC)
	_, err := uc.Execute(ctx, holiday)
	assert.ErrorIs(t, err, ErrHoliday)

	weekend := validRequest("09:00 AM")
	weekend.Date = time.Date(2026, 9, 12, 0, 0, 0, 0, time.UTC) // суббота
	_, err = uc.Execute(ctx, weekend)
	assert.ErrorIs(t, err, ErrWeekend)

	past := validRequest("09:00 AM")
	past.Date = time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)
	_, err = uc.Execute(ctx, past)
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestCreateAppointmentValidation(t *testing.T) {
	repo := &mockRepo{}
	uc := newTestUseCase(repo)
	ctx := context.Background()

	noPurpose := validRequest("09:00 AM")
	noPurpose.Purpose = "   "
	_, err := uc.Execute(ctx, noPurpose)
	assert.ErrorIs(t, err, ErrInvalidInput)

	badType := validRequest("09:00 AM")
	badType.Type = "walk_in"
	_, err = uc.Execute(ctx, badType)
	assert.ErrorIs(t, err, ErrInvalidInput)

	noDate := validRequest("09:00 AM")
	noDate.Date = time.Time{}
	_, err = uc.Execute(ctx, noDate)
	assert.ErrorIs(t, err, ErrInvalidInput)

	noTime := validRequest("09:00 AM")
	noTime.StartTime = ""
	_, err = uc.Execute(ctx, noTime)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestCreateMedicalFinanceRequiresExtensionFields(t *testing.T) {
	repo := &mockRepo{}
	uc := newTestUseCase(repo)
	ctx := context.Background()

	req := validRequest("09:00 AM")
	req.Type = domain.TypeMedicalFinance
	_, err := uc.Execute(ctx, req)
	assert.ErrorIs(t, err, ErrInvalidInput)

	req.PatientName = ptr.Ptr("Maria Santos")
	req.ProcessorName = ptr.Ptr("Juan Dela Cruz")
	_, err = uc.Execute(ctx, req)
	assert.ErrorIs(t, err, ErrInvalidInput)

	req.VerificationImageRef = ptr.Ptr("uploads/verification/123.jpg")
	resp, err := uc.Execute(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, "Maria Santos", *resp.PatientName)
}

func TestCreateCourtesyRequest(t *testing.T) {
	repo := &mockRepo{index: domain.DayCountIndex{testNow.Format(domain.DateFormat): 6}}
	uc := newTestUseCase(repo)

	// Courtesy создаётся без даты и времени; лимит дня не применяется
	req := &Request{
		UserID:  1,
		Type:    domain.TypeCourtesy,
		Purpose: "Meeting with the mayor",
	}

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	assert.True(t, resp.IsCourtesy)
	assert.Equal(t, string(domain.StatusPending), resp.Status)
	// Placeholder: дата создания до назначения слота сотрудником
	assert.True(t, domain.IsSameDay(resp.Date, testNow))
	assert.False(t, resp.Time.IsZero())
}

func TestCreateCourtesyIgnoresWeekendAndConflicts(t *testing.T) {
	repo := &mockRepo{}
	uc := newTestUseCase(repo)
	ctx := context.Background()

	// Обычная запись на понедельник 09:00
	_, err := uc.Execute(ctx, validRequest("09:00 AM"))
	require.NoError(t, err)

	// Courtesy с явной датой на тот же слот — правила не применяются
	req := &Request{
		UserID:    1,
		Type:      domain.TypeCourtesy,
		Purpose:   "Courtesy visit",
		Date:      testMonday,
		StartTime: "09:00 AM",
	}
	_, err = uc.Execute(ctx, req)
	require.NoError(t, err)
}
