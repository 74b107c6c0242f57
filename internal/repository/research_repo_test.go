package repository

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"ResearchSync/internal/adapter"
	"ResearchSync/internal/interfaces"
	"ResearchSync/internal/model"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "research.db")), &gorm.Config{Logger: logger.Discard})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	require.NoError(t, db.AutoMigrate(model.Models()...))
	return db
}

func str(s string) *string { return &s }

// sampleRows 每次新建行对象，ID 由数据库回填，不能跨次复用
func sampleRows(ticker string, filings int) adapter.SubjectRows {
	rows := adapter.SubjectRows{}
	for i := 0; i < filings; i++ {
		rows.Filings = append(rows.Filings, &model.SecFiling{Ticker: ticker, Date: "d", Type: "10-Q", Description: "x", Period: "Q"})
	}
	rows.CrossReferences = []*model.FilingCrossReference{{Ticker: ticker, FilingKey: "K", Source: "s", Data: "d"}}
	rows.Timeline = []*model.TimelineEvent{{Ticker: ticker, Date: "d", Event: "e", Verdict: model.VerdictNeutral}}
	rows.Catalysts = []*model.Catalyst{{Ticker: ticker, Event: "e", Timeline: str("Q1"), Impact: str("High"), Status: model.CatalystActive}}
	rows.EntityNews = []*model.EntityNewsRecord{{Ticker: ticker, Date: "d", EntityName: "n", Headline: "h", EntryType: model.EntryPartnerNews}}
	return rows
}

func TestReplaceSubjectIsIdempotent(t *testing.T) {
	db := openTestDB(t)
	repo := NewResearchRepository(db, 2)
	ctx := context.Background()

	first, err := repo.ReplaceSubject(ctx, "ASTS", sampleRows("ASTS", 5), interfaces.ReplaceHooks{})
	require.NoError(t, err)
	second, err := repo.ReplaceSubject(ctx, "ASTS", sampleRows("ASTS", 5), interfaces.ReplaceHooks{})
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, 5, second[model.TableSecFilings])

	stored, err := repo.CountBySubject(ctx, "ASTS")
	require.NoError(t, err)
	assert.Equal(t, second, stored)
}

func TestReplaceSubjectLeavesOtherSubjects(t *testing.T) {
	db := openTestDB(t)
	repo := NewResearchRepository(db, 50)
	ctx := context.Background()

	_, err := repo.ReplaceSubject(ctx, "ASTS", sampleRows("ASTS", 2), interfaces.ReplaceHooks{})
	require.NoError(t, err)
	_, err = repo.ReplaceSubject(ctx, "BMNR", sampleRows("BMNR", 3), interfaces.ReplaceHooks{})
	require.NoError(t, err)
	_, err = repo.ReplaceSubject(ctx, "ASTS", sampleRows("ASTS", 1), interfaces.ReplaceHooks{})
	require.NoError(t, err)

	bmnr, err := repo.CountBySubject(ctx, "BMNR")
	require.NoError(t, err)
	assert.Equal(t, 3, bmnr[model.TableSecFilings])
	asts, err := repo.CountBySubject(ctx, "ASTS")
	require.NoError(t, err)
	assert.Equal(t, 1, asts[model.TableSecFilings])
}

func TestReplaceSubjectRollsBackOnLoadFailure(t *testing.T) {
	db := openTestDB(t)
	repo := NewResearchRepository(db, 50)
	ctx := context.Background()

	_, err := repo.ReplaceSubject(ctx, "ASTS", sampleRows("ASTS", 4), interfaces.ReplaceHooks{})
	require.NoError(t, err)

	require.NoError(t, db.Callback().Create().Before("gorm:create").Register("test:fail_catalysts", func(tx *gorm.DB) {
		if tx.Statement.Table == model.TableCatalysts {
			_ = tx.AddError(errors.New("disk full"))
		}
	}))

	var phases []string
	_, err = repo.ReplaceSubject(ctx, "ASTS", sampleRows("ASTS", 9), interfaces.ReplaceHooks{
		OnClearing: func() { phases = append(phases, "clearing") },
		OnLoading:  func() { phases = append(phases, "loading") },
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), model.TableCatalysts)
	assert.Equal(t, []string{"clearing", "loading"}, phases)

	// 清空与已加载的表都应回滚
	counts, err := repo.CountBySubject(ctx, "ASTS")
	require.NoError(t, err)
	assert.Equal(t, 4, counts[model.TableSecFilings])
	assert.Equal(t, 1, counts[model.TableCatalysts])
}

func TestClearUsesTableOrderOnPostgres(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer sqlDB.Close()

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{Logger: logger.Discard})
	require.NoError(t, err)

	mock.ExpectBegin()
	for _, table := range model.TableOrder {
		mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "` + table + `" WHERE ticker = $1`)).
			WithArgs("ASTS").
			WillReturnResult(sqlmock.NewResult(0, 2))
	}
	mock.ExpectCommit()

	counts, err := NewResearchRepository(db, 50).ReplaceSubject(context.Background(), "ASTS", adapter.SubjectRows{}, interfaces.ReplaceHooks{})
	require.NoError(t, err)
	for _, table := range model.TableOrder {
		assert.Zero(t, counts[table])
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestClearFailureRollsBackOnPostgres(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer sqlDB.Close()

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{Logger: logger.Discard})
	require.NoError(t, err)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "sec_filings"`)).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "filing_cross_references"`)).WillReturnError(errors.New("connection reset"))
	mock.ExpectRollback()

	_, err = NewResearchRepository(db, 50).ReplaceSubject(context.Background(), "ASTS", adapter.SubjectRows{}, interfaces.ReplaceHooks{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "filing_cross_references")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRunRepository(t *testing.T) {
	db := openTestDB(t)
	repo := NewRunRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.SaveRun(ctx, &model.ReconcileRun{RunUUID: "a", Trigger: "cli", Report: datatypes.JSON(`{}`)}))
	require.NoError(t, repo.SaveRun(ctx, &model.ReconcileRun{RunUUID: "b", Trigger: "http", Report: datatypes.JSON(`{}`)}))

	runs, err := repo.ListRuns(ctx, 10)
	require.NoError(t, err)
	assert.Len(t, runs, 2)
}

func TestListRunsCapsLimit(t *testing.T) {
	db := openTestDB(t)
	repo := NewRunRepository(db)
	ctx := context.Background()

	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 120; i++ {
		require.NoError(t, repo.SaveRun(ctx, &model.ReconcileRun{
			RunUUID:   fmt.Sprintf("run-%03d", i),
			Trigger:   "cli",
			StartedAt: start.Add(time.Duration(i) * time.Minute),
			Report:    datatypes.JSON(`{}`),
		}))
	}

	capped, err := repo.ListRuns(ctx, 101)
	require.NoError(t, err)
	assert.Len(t, capped, 100)
	assert.Equal(t, "run-119", capped[0].RunUUID)

	defaulted, err := repo.ListRuns(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, defaulted, 20)
}
