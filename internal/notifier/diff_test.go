package notifier

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/CSC-AppointmentService/internal/domain"
)

func snapshotAppointment(id int64, status domain.AppointmentStatus) *domain.Appointment {
	return &domain.Appointment{
		ID:     id,
		UserID: 100 + id,
		Type:   domain.TypeSolicitation,
		Date:   time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC),
		Time:   "09:00 AM",
		Status: status,
	}
}

func TestDiffFirstSnapshotProducesNoChanges(t *testing.T) {
	engine := NewDiffEngine()

	snapshot := []*domain.Appointment{
		snapshotAppointment(1, domain.StatusPending),
		snapshotAppointment(2, domain.StatusConfirmed),
	}

	changes, next := engine.Diff(map[int64]domain.AppointmentStatus{}, snapshot)

	assert.Empty(t, changes)
	assert.Equal(t, domain.StatusPending, next[1])
	assert.Equal(t, domain.StatusConfirmed, next[2])
}

func TestDiffRedeliveryProducesNoChanges(t *testing.T) {
	engine := NewDiffEngine()

	snapshot := []*domain.Appointment{snapshotAppointment(1, domain.StatusConfirmed)}

	_, state := engine.Diff(map[int64]domain.AppointmentStatus{}, snapshot)

	// Подписка переотправляет полный набор без изменений
	changes, state := engine.Diff(state, snapshot)
	assert.Empty(t, changes)

	changes, _ = engine.Diff(state, snapshot)
	assert.Empty(t, changes)
}

func TestDiffDetectsConfirmation(t *testing.T) {
	engine := NewDiffEngine()

	_, state := engine.Diff(map[int64]domain.AppointmentStatus{},
		[]*domain.Appointment{snapshotAppointment(1, domain.StatusPending)})

	changes, _ := engine.Diff(state,
		[]*domain.Appointment{snapshotAppointment(1, domain.StatusConfirmed)})

	require.Len(t, changes, 1)
	assert.Equal(t, domain.StatusPending, changes[0].From)
	assert.Equal(t, domain.StatusConfirmed, changes[0].To)
	assert.Equal(t, int64(1), changes[0].Appointment.ID)
}

func TestDiffExactlyOncePerTransition(t *testing.T) {
	engine := NewDiffEngine()

	// Pending, Pending, Confirmed, Confirmed — ровно одно изменение
	sequence := []domain.AppointmentStatus{
		domain.StatusPending,
		domain.StatusPending,
		domain.StatusConfirmed,
		domain.StatusConfirmed,
	}

	state := map[int64]domain.AppointmentStatus{}
	total := 0
	for _, status := range sequence {
		var changes []StatusChange
		changes, state = engine.Diff(state, []*domain.Appointment{snapshotAppointment(1, status)})
		total += len(changes)
	}

	assert.Equal(t, 1, total)
}

func TestDiffMeaningfulTransitions(t *testing.T) {
	tests := []struct {
		name       string
		from       domain.AppointmentStatus
		to         domain.AppointmentStatus
		meaningful bool
	}{
		{"pending to confirmed", domain.StatusPending, domain.StatusConfirmed, true},
		{"pending to cancelled", domain.StatusPending, domain.StatusCancelled, true},
		{"confirmed to cancelled", domain.StatusConfirmed, domain.StatusCancelled, true},
		{"confirmed to completed", domain.StatusConfirmed, domain.StatusCompleted, true},
		{"pending to rejected", domain.StatusPending, domain.StatusRejected, false},
		{"pending to completed", domain.StatusPending, domain.StatusCompleted, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine := NewDiffEngine()
			_, state := engine.Diff(map[int64]domain.AppointmentStatus{},
				[]*domain.Appointment{snapshotAppointment(1, tt.from)})

			changes, _ := engine.Diff(state,
				[]*domain.Appointment{snapshotAppointment(1, tt.to)})

			if tt.meaningful {
				assert.Len(t, changes, 1)
			} else {
				assert.Empty(t, changes)
			}
		})
	}
}

func TestDiffNewRecordWithAnyStatusIsNotATransition(t *testing.T) {
	engine := NewDiffEngine()

	// Запись впервые появляется в снапшоте уже в Confirmed —
	// начальное состояние не анонсируется
	changes, _ := engine.Diff(map[int64]domain.AppointmentStatus{},
		[]*domain.Appointment{snapshotAppointment(9, domain.StatusConfirmed)})

	assert.Empty(t, changes)
}

func TestDiffMultipleAppointments(t *testing.T) {
	engine := NewDiffEngine()

	_, state := engine.Diff(map[int64]domain.AppointmentStatus{}, []*domain.Appointment{
		snapshotAppointment(1, domain.StatusPending),
		snapshotAppointment(2, domain.StatusPending),
		snapshotAppointment(3, domain.StatusConfirmed),
	})

	changes, _ := engine.Diff(state, []*domain.Appointment{
		snapshotAppointment(1, domain.StatusConfirmed),
		snapshotAppointment(2, domain.StatusRejected),
		snapshotAppointment(3, domain.StatusCompleted),
	})

	// Rejected не анонсируется, остальные два перехода — да
	require.Len(t, changes, 2)
	ids := []int64{changes[0].Appointment.ID, changes[1].Appointment.ID}
	assert.Contains(t, ids, int64(1))
	assert.Contains(t, ids, int64(3))
}
