package repository

import (
	"context"
	"fmt"

	"ResearchSync/internal/adapter"
	"ResearchSync/internal/interfaces"
	"ResearchSync/internal/model"

	"gorm.io/gorm"
)

type ResearchRepository struct {
	db        *gorm.DB
	batchSize int
}

func NewResearchRepository(db *gorm.DB, batchSize int) interfaces.ResearchRepository {
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}
	return &ResearchRepository{db: db, batchSize: batchSize}
}

// tableModels 表名→空模型，用于按 ticker 删除与计数
var tableModels = map[string]interface{}{
	model.TableSecFilings:            &model.SecFiling{},
	model.TableFilingCrossReferences: &model.FilingCrossReference{},
	model.TableTimelineEvents:        &model.TimelineEvent{},
	model.TableCatalysts:             &model.Catalyst{},
	model.TableEntityNewsRecords:     &model.EntityNewsRecord{},
}

// ReplaceSubject 清空+加载包在同一事务中，任一步失败整体回滚，该标的保持旧数据
func (r *ResearchRepository) ReplaceSubject(ctx context.Context, ticker string, rows adapter.SubjectRows, hooks interfaces.ReplaceHooks) (map[string]int, error) {
	counts := make(map[string]int, len(model.TableOrder))
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if hooks.OnClearing != nil {
			hooks.OnClearing()
		}
		if err := clearSubject(tx, ticker); err != nil {
			return err
		}

		if hooks.OnLoading != nil {
			hooks.OnLoading()
		}
		for _, table := range model.TableOrder {
			n, err := r.loadTable(ctx, tx, table, rows)
			if err != nil {
				return fmt.Errorf("加载%s失败: %w", table, err)
			}
			counts[table] = n
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return counts, nil
}

func clearSubject(tx *gorm.DB, ticker string) error {
	for _, table := range model.TableOrder {
		if err := tx.Where("ticker = ?", ticker).Delete(tableModels[table]).Error; err != nil {
			return fmt.Errorf("清空%s失败: %w", table, err)
		}
	}
	return nil
}

func (r *ResearchRepository) loadTable(ctx context.Context, tx *gorm.DB, table string, rows adapter.SubjectRows) (int, error) {
	switch table {
	case model.TableSecFilings:
		return LoadInBatches[*model.SecFiling](ctx, NewGormInserter[*model.SecFiling](tx), rows.Filings, r.batchSize)
	case model.TableFilingCrossReferences:
		return LoadInBatches[*model.FilingCrossReference](ctx, NewGormInserter[*model.FilingCrossReference](tx), rows.CrossReferences, r.batchSize)
	case model.TableTimelineEvents:
		return LoadInBatches[*model.TimelineEvent](ctx, NewGormInserter[*model.TimelineEvent](tx), rows.Timeline, r.batchSize)
	case model.TableCatalysts:
		return LoadInBatches[*model.Catalyst](ctx, NewGormInserter[*model.Catalyst](tx), rows.Catalysts, r.batchSize)
	case model.TableEntityNewsRecords:
		return LoadInBatches[*model.EntityNewsRecord](ctx, NewGormInserter[*model.EntityNewsRecord](tx), rows.EntityNews, r.batchSize)
	default:
		return 0, fmt.Errorf("未知的表: %s", table)
	}
}

// CountBySubject 查询各表当前行数
func (r *ResearchRepository) CountBySubject(ctx context.Context, ticker string) (map[string]int, error) {
	counts := make(map[string]int, len(model.TableOrder))
	for _, table := range model.TableOrder {
		var n int64
		if err := r.db.WithContext(ctx).Model(tableModels[table]).Where("ticker = ?", ticker).Count(&n).Error; err != nil {
			return nil, fmt.Errorf("统计%s失败: %w", table, err)
		}
		counts[table] = int(n)
	}
	return counts, nil
}
