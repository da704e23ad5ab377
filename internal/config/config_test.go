package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/CSC-AppointmentService/internal/domain"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadAppliesDefaults(t *testing.T) {
	path := writeConfig(t, `
[database]
host = "localhost"
user = "appointments"
dbname = "appointments"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.HTTPPort)
	assert.Equal(t, "disable", cfg.Database.SSLMode)
	assert.Equal(t, "info", cfg.Logs.Level)
	assert.Equal(t, domain.DefaultMaxDailyAppointments, cfg.Scheduling.MaxDailyAppointments)
	assert.Equal(t, domain.DefaultTimeSlotConflictMinutes, cfg.Scheduling.TimeSlotConflictMinutes)
	assert.Equal(t, domain.DefaultHolidays, cfg.Scheduling.Holidays)
	assert.Equal(t, 30, cfg.Scheduling.PollInterval)
}

func TestLoadOverridesSchedulingConstants(t *testing.T) {
	path := writeConfig(t, `
[database]
host = "localhost"
user = "appointments"
dbname = "appointments"

[scheduling]
max_daily_appointments = 10
time_slot_conflict_minutes = 30
holidays = ["01-01", "07-04"]
poll_interval = 5
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 10, cfg.Scheduling.MaxDailyAppointments)
	assert.Equal(t, 30, cfg.Scheduling.TimeSlotConflictMinutes)
	assert.Equal(t, []string{"01-01", "07-04"}, cfg.Scheduling.Holidays)
	assert.Equal(t, 5, cfg.Scheduling.PollInterval)
}

func TestLoadValidatesRequiredFields(t *testing.T) {
	path := writeConfig(t, `
[database]
host = "localhost"
`)

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	assert.Error(t, err)
}

func TestDatabaseDSN(t *testing.T) {
	cfg := DatabaseConfig{
		Host:     "db.internal",
		Port:     5432,
		User:     "svc",
		Password: "secret",
		DBName:   "appointments",
		SSLMode:  "require",
	}

	assert.Equal(t,
		"host=db.internal port=5432 user=svc password=secret dbname=appointments sslmode=require",
		cfg.DSN())
}
