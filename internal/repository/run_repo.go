package repository

import (
	"context"

	"ResearchSync/internal/interfaces"
	"ResearchSync/internal/model"

	"gorm.io/gorm"
)

type runRepository struct {
	db *gorm.DB
}

func NewRunRepository(db *gorm.DB) interfaces.RunRepository {
	return &runRepository{db: db}
}

func (r *runRepository) SaveRun(ctx context.Context, run *model.ReconcileRun) error {
	return r.db.WithContext(ctx).Create(run).Error
}

const (
	defaultRunLimit = 20
	maxRunLimit     = 100
)

// ListRuns 按开始时间倒序；limit 非正取默认值，超过上限按上限截断
func (r *runRepository) ListRuns(ctx context.Context, limit int) ([]*model.ReconcileRun, error) {
	if limit <= 0 {
		limit = defaultRunLimit
	}
	if limit > maxRunLimit {
		limit = maxRunLimit
	}
	var runs []*model.ReconcileRun
	if err := r.db.WithContext(ctx).Order("started_at DESC").Limit(limit).Find(&runs).Error; err != nil {
		return nil, err
	}
	return runs, nil
}
