package schedule_courtesy

import (
	"context"

	scheduleCourtesy "github.com/m04kA/CSC-AppointmentService/internal/usecase/schedule_courtesy"
)

type ScheduleCourtesyUseCase interface {
	Execute(ctx context.Context, req *scheduleCourtesy.Request) (*scheduleCourtesy.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
