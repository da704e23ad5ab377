package domain

// Default scheduling constants. The effective values come from config.toml,
// these are the fallbacks when the section is omitted.
const (
	DefaultMaxDailyAppointments    = 6
	DefaultTimeSlotConflictMinutes = 60
)

// Validation constants
const (
	MaxPurposeLength            = 1000
	MaxCancellationReasonLength = 500
)

// Time format constants
const (
	DateFormat    = "2006-01-02" // YYYY-MM-DD
	MonthFormat   = "2006-01"    // YYYY-MM
	HolidayFormat = "01-02"      // MM-DD, календарь праздников не зависит от года
)

// DefaultHolidays фиксированный правительственный календарь праздников
// (MM-DD). Переопределяется списком holidays в config.toml.
var DefaultHolidays = []string{
	"01-01", // New Year's Day
	"01-23", // First Philippine Republic Day
	"02-25", // EDSA People Power Anniversary
	"04-09", // Araw ng Kagitingan
	"04-17", // Maundy Thursday (fixed observance)
	"04-18", // Good Friday (fixed observance)
	"05-01", // Labor Day
	"06-12", // Independence Day
	"08-21", // Ninoy Aquino Day
	"08-26", // National Heroes Day
	"11-01", // All Saints' Day
	"11-02", // All Souls' Day
	"11-30", // Bonifacio Day
	"12-08", // Feast of the Immaculate Conception
	"12-24", // Christmas Eve
	"12-25", // Christmas Day
	"12-30", // Rizal Day
	"12-31", // New Year's Eve
}

// ActiveStatuses статусы, при которых запись занимает слот.
// Используются при подсчёте конфликтов и загрузки дня.
var ActiveStatuses = []AppointmentStatus{
	StatusPending,
	StatusConfirmed,
}

// TerminalStatuses конечные статусы жизненного цикла
var TerminalStatuses = []AppointmentStatus{
	StatusRejected,
	StatusCancelled,
	StatusCompleted,
}
