package notifier

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/CSC-AppointmentService/internal/domain"
	"github.com/m04kA/CSC-AppointmentService/internal/integrations/notifyservice"
)

type fakeDispatcher struct {
	mu   sync.Mutex
	sent []*notifyservice.Notification
	err  error
}

func (d *fakeDispatcher) Send(_ context.Context, n *notifyservice.Notification) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.err != nil {
		return d.err
	}
	d.sent = append(d.sent, n)
	return nil
}

func (d *fakeDispatcher) notifications() []*notifyservice.Notification {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]*notifyservice.Notification(nil), d.sent...)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func runNotifier(t *testing.T, dispatcher *fakeDispatcher, snapshots ...[]*domain.Appointment) {
	t.Helper()

	ch := make(chan []*domain.Appointment)
	n := New(dispatcher, nil, nopLogger{})

	done := make(chan struct{})
	go func() {
		n.Run(context.Background(), ch)
		close(done)
	}()

	for _, snapshot := range snapshots {
		ch <- snapshot
	}
	close(ch)
	<-done
}

func TestNotifierSendsExactlyOnce(t *testing.T) {
	dispatcher := &fakeDispatcher{}

	runNotifier(t, dispatcher,
		[]*domain.Appointment{snapshotAppointment(1, domain.StatusPending)},
		[]*domain.Appointment{snapshotAppointment(1, domain.StatusPending)},
		[]*domain.Appointment{snapshotAppointment(1, domain.StatusConfirmed)},
		[]*domain.Appointment{snapshotAppointment(1, domain.StatusConfirmed)},
	)

	sent := dispatcher.notifications()
	require.Len(t, sent, 1)
	assert.Equal(t, "Appointment Confirmed", sent[0].Title)
	assert.Equal(t, int64(101), sent[0].UserID)
	assert.Equal(t, "Pending->Confirmed", sent[0].Data["transition"])
	assert.Equal(t, "1", sent[0].Data["appointmentId"])
}

func TestNotifierCancellationAtMostOnce(t *testing.T) {
	dispatcher := &fakeDispatcher{}

	runNotifier(t, dispatcher,
		[]*domain.Appointment{snapshotAppointment(1, domain.StatusConfirmed)},
		[]*domain.Appointment{snapshotAppointment(1, domain.StatusCancelled)},
		[]*domain.Appointment{snapshotAppointment(1, domain.StatusCancelled)},
	)

	sent := dispatcher.notifications()
	require.Len(t, sent, 1)
	assert.Equal(t, "Appointment Cancelled", sent[0].Title)
}

func TestNotifierIgnoresRejection(t *testing.T) {
	dispatcher := &fakeDispatcher{}

	runNotifier(t, dispatcher,
		[]*domain.Appointment{snapshotAppointment(1, domain.StatusPending)},
		[]*domain.Appointment{snapshotAppointment(1, domain.StatusRejected)},
	)

	assert.Empty(t, dispatcher.notifications())
}

func TestNotifierFirstSnapshotIsSilent(t *testing.T) {
	dispatcher := &fakeDispatcher{}

	runNotifier(t, dispatcher,
		[]*domain.Appointment{
			snapshotAppointment(1, domain.StatusConfirmed),
			snapshotAppointment(2, domain.StatusCompleted),
		},
	)

	assert.Empty(t, dispatcher.notifications())
}

func TestNotifierDispatchErrorDoesNotStopProcessing(t *testing.T) {
	dispatcher := &fakeDispatcher{err: errors.New("notify service down")}

	// Ошибка доставки логируется и не ретраится; следующий переход
	// другой записи всё равно обрабатывается
	runNotifier(t, dispatcher,
		[]*domain.Appointment{snapshotAppointment(1, domain.StatusPending)},
		[]*domain.Appointment{snapshotAppointment(1, domain.StatusConfirmed)},
	)

	assert.Empty(t, dispatcher.notifications())

	dispatcher2 := &fakeDispatcher{}
	runNotifier(t, dispatcher2,
		[]*domain.Appointment{snapshotAppointment(2, domain.StatusPending)},
		[]*domain.Appointment{snapshotAppointment(2, domain.StatusConfirmed)},
	)
	assert.Len(t, dispatcher2.notifications(), 1)
}

func TestNotifierStopsOnContextCancel(t *testing.T) {
	dispatcher := &fakeDispatcher{}
	ch := make(chan []*domain.Appointment)
	n := New(dispatcher, nil, nopLogger{})

	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		n.Run(ctx, ch)
		close(done)
	}()

	cancel()
	<-done
}
