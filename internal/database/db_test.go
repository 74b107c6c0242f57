package database

import (
	"bytes"
	"errors"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/logger"

	"ResearchSync/internal/config"
	"ResearchSync/internal/model"
)

func TestOpenSQLiteMigrates(t *testing.T) {
	log := logrus.New()
	log.SetOutput(&bytes.Buffer{})

	db, err := Open(config.DatabaseConfig{
		Driver:       DriverSQLite,
		DSN:          filepath.Join(t.TempDir(), "research.db"),
		MaxOpenConns: 1,
		LogLevel:     "silent",
	}, log)
	require.NoError(t, err)
	t.Cleanup(func() { _ = Close(db) })

	for _, table := range append(append([]string{}, model.TableOrder...), model.TableReconcileRuns) {
		assert.True(t, db.Migrator().HasTable(table), table)
	}
}

func TestDialectorRejectsUnknownDriver(t *testing.T) {
	_, err := Dialector(config.DatabaseConfig{Driver: "oracle"})
	assert.Error(t, err)

	d, err := Dialector(config.DatabaseConfig{Driver: "postgres", DSN: "postgres://u:p@localhost/x"})
	require.NoError(t, err)
	assert.Equal(t, "postgres", d.Name())
}

func TestGormLogLevel(t *testing.T) {
	assert.Equal(t, logger.Silent, GormLogLevel("silent"))
	assert.Equal(t, logger.Info, GormLogLevel(" INFO "))
	assert.Equal(t, logger.Warn, GormLogLevel(""))
}

func TestAdminTarget(t *testing.T) {
	name, admin, err := adminTarget("postgres://u:p@localhost:5432/research?sslmode=disable")
	require.NoError(t, err)
	assert.Equal(t, "research", name)
	assert.Equal(t, "postgres://u:p@localhost:5432/postgres?sslmode=disable", admin)

	name, _, err = adminTarget("postgres://u:p@localhost:5432/postgres")
	require.NoError(t, err)
	assert.Empty(t, name)
}

func TestIsMissingDatabase(t *testing.T) {
	assert.True(t, isMissingDatabase(errors.New(`FATAL: database "x" does not exist (SQLSTATE 3D000)`)))
	assert.False(t, isMissingDatabase(errors.New("connection refused")))
	assert.True(t, isPostgres("postgres"))
	assert.False(t, isPostgres("sqlite"))
}

func TestDryRunPostgresNeedsNoServer(t *testing.T) {
	db, err := DryRun(config.DatabaseConfig{Driver: DriverPostgres, DSN: "postgres://u:p@127.0.0.1:1/research"})
	require.NoError(t, err)

	statements, err := model.DDL(db)
	require.NoError(t, err)
	require.Len(t, statements, len(model.Models()))
	assert.Contains(t, statements[0], `CREATE TABLE "sec_filings"`)
}

func TestDryRunSQLiteUsesMemory(t *testing.T) {
	db, err := DryRun(config.DatabaseConfig{Driver: DriverSQLite, DSN: filepath.Join(t.TempDir(), "never.db")})
	require.NoError(t, err)
	t.Cleanup(func() { _ = Close(db) })

	statements, err := model.DDL(db)
	require.NoError(t, err)
	assert.Contains(t, statements[0], "CREATE TABLE `sec_filings`")
}
