package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"
)

// DefaultBatchSize 单条 INSERT 的默认最大行数
const DefaultBatchSize = 50

// Inserter 将一批已成型的行写入目标表
type Inserter[T any] interface {
	Insert(ctx context.Context, batch []T) error
}

// LoadInBatches 按输入顺序串行写入 ⌈N/B⌉ 批，每批至多 B 行；任一批失败立即返回，不重试。
// 返回提交的行数（以写入调用成功为准）。
func LoadInBatches[T any](ctx context.Context, ins Inserter[T], rows []T, batchSize int) (int, error) {
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}
	submitted := 0
	for start, n := 0, 0; start < len(rows); start, n = start+batchSize, n+1 {
		end := start + batchSize
		if end > len(rows) {
			end = len(rows)
		}
		if err := ins.Insert(ctx, rows[start:end]); err != nil {
			return submitted, fmt.Errorf("第%d批（%d行）写入失败: %w", n+1, end-start, err)
		}
		submitted += end - start
	}
	return submitted, nil
}

// GormInserter 基于 gorm 的写入，db 通常为事务句柄
type GormInserter[T any] struct {
	db *gorm.DB
}

func NewGormInserter[T any](db *gorm.DB) *GormInserter[T] {
	return &GormInserter[T]{db: db}
}

func (g *GormInserter[T]) Insert(ctx context.Context, batch []T) error {
	return g.db.WithContext(ctx).Create(&batch).Error
}
