package subscription

import (
	"context"
	"time"

	"github.com/lib/pq"

	"github.com/m04kA/CSC-AppointmentService/internal/domain"
)

// channelName канал NOTIFY, который дёргает триггер на таблице appointments
const channelName = "appointments_changed"

const (
	minReconnectInterval = time.Second
	maxReconnectInterval = 30 * time.Second
)

// Listener live-подписка на коллекцию записей. При любом изменении таблицы
// (NOTIFY от триггера) перечитывает полный набор записей и доставляет его
// подписчику — семантика повторной доставки полного результата, как у
// live-query документного хранилища. Тикер опроса служит фолбэком на случай
// потери NOTIFY при переподключении.
//
// Подписчик может получить тот же набор повторно без изменений — диффинг
// статусов лежит на стороне потребителя (notifier).
type Listener struct {
	repo         AppointmentRepository
	pqListener   *pq.Listener
	pollInterval time.Duration
	logger       Logger

	snapshots chan []*domain.Appointment
}

// NewListener создает live-подписку. dsn — строка подключения PostgreSQL
// (отдельное соединение, не из общего пула).
func NewListener(dsn string, repo AppointmentRepository, pollInterval time.Duration, logger Logger) *Listener {
	l := &Listener{
		repo:         repo,
		pollInterval: pollInterval,
		logger:       logger,
		snapshots:    make(chan []*domain.Appointment, 1),
	}

	l.pqListener = pq.NewListener(dsn, minReconnectInterval, maxReconnectInterval,
		func(event pq.ListenerEventType, err error) {
			if err != nil {
				logger.Warn("Subscription: listener event=%d: %v", event, err)
			}
		})

	return l
}

// Snapshots канал, в который доставляются полные наборы записей
func (l *Listener) Snapshots() <-chan []*domain.Appointment {
	return l.snapshots
}

// Run запускает цикл подписки. Блокируется до отмены контекста.
func (l *Listener) Run(ctx context.Context) error {
	if err := l.pqListener.Listen(channelName); err != nil {
		return err
	}
	defer l.pqListener.Close()

	l.logger.Info("Subscription: listening on channel %q, poll fallback every %s", channelName, l.pollInterval)

	// Первичная доставка: подписчик начинает с текущего состояния
	l.deliver(ctx)

	ticker := time.NewTicker(l.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case n := <-l.pqListener.Notify:
			// n == nil приходит при переподключении — состояние могло
			// измениться незаметно, перечитываем
			if n != nil {
				l.logger.Debug("Subscription: change notification, payload=%s", n.Extra)
			}
			l.deliver(ctx)

		case <-ticker.C:
			l.deliver(ctx)
		}
	}
}

// deliver перечитывает полный набор записей и отправляет его подписчику.
// Если подписчик не успел обработать предыдущий снапшот, он вытесняется —
// важен только самый свежий набор.
func (l *Listener) deliver(ctx context.Context) {
	filter := domain.AppointmentsFilter{IncludeCourtesy: true}

	appointments, err := l.repo.GetWithFilter(ctx, filter)
	if err != nil {
		// Ошибка чтения не роняет подписку: следующий NOTIFY или тик
		// опроса повторит выборку
		l.logger.Error("Subscription: failed to load snapshot: %v", err)
		return
	}

	select {
	case l.snapshots <- appointments:
	default:
		select {
		case <-l.snapshots:
		default:
		}
		select {
		case l.snapshots <- appointments:
		default:
		}
	}
}
