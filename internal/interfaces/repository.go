package interfaces

import (
	"context"

	"ResearchSync/internal/adapter"
	"ResearchSync/internal/model"
)

// ResearchRepository 研究派生表的读写接口，ReplaceSubject 须原子执行
type ResearchRepository interface {
	// ReplaceSubject 在一个事务内按 model.TableOrder 清空并加载一个标的，返回各表行数
	ReplaceSubject(ctx context.Context, ticker string, rows adapter.SubjectRows, hooks ReplaceHooks) (map[string]int, error)
	// CountBySubject 查询各表当前行数
	CountBySubject(ctx context.Context, ticker string) (map[string]int, error)
}

// ReplaceHooks 阶段切换回调，可为空
type ReplaceHooks struct {
	OnClearing func()
	OnLoading  func()
}

// RunRepository 运行记录
type RunRepository interface {
	SaveRun(ctx context.Context, run *model.ReconcileRun) error
	ListRuns(ctx context.Context, limit int) ([]*model.ReconcileRun, error)
}
