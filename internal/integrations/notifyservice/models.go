package notifyservice

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Notification запрос на отправку уведомления.
// Data — произвольные данные для маршрутизации на стороне клиента
// (id записи, тип перехода).
type Notification struct {
	UserID int64             `json:"userId"`
	Title  string            `json:"title"`
	Body   string            `json:"body"`
	Data   map[string]string `json:"data,omitempty"`
}
