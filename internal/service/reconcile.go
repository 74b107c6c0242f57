package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"ResearchSync/internal/adapter"
	"ResearchSync/internal/config"
	"ResearchSync/internal/content"
	"ResearchSync/internal/interfaces"
	"ResearchSync/internal/model"
	"ResearchSync/internal/repository"
	"ResearchSync/internal/validation"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	TriggerCLI  = "cli"
	TriggerHTTP = "http"
)

// ReconcileService 按标的清空并重建派生表；命令行与管理接口共用这一份实现
type ReconcileService struct {
	repo   interfaces.ResearchRepository
	runs   interfaces.RunRepository // 为空时不记录运行历史
	source content.Source
	specs  []content.SubjectSpec
	gate   *validation.Gate
	logger *logrus.Logger
	now    func() time.Time
}

func NewReconcileService(
	repo interfaces.ResearchRepository,
	runs interfaces.RunRepository,
	source content.Source,
	specs []content.SubjectSpec,
	gate *validation.Gate,
	logger *logrus.Logger,
) *ReconcileService {
	return &ReconcileService{
		repo:   repo,
		runs:   runs,
		source: source,
		specs:  specs,
		gate:   gate,
		logger: logger,
		now:    time.Now,
	}
}

// NewReconcileServiceFromConfig 用配置装配仓储、内嵌内容与校验器
func NewReconcileServiceFromConfig(db *gorm.DB, logger *logrus.Logger, cfg *config.Config) (*ReconcileService, error) {
	specs, err := content.SelectSpecs(content.Catalog, cfg.Reconcile.Subjects)
	if err != nil {
		return nil, err
	}
	gate, err := validation.NewGate()
	if err != nil {
		return nil, err
	}
	var runs interfaces.RunRepository
	if cfg.Reconcile.RecordRuns {
		runs = repository.NewRunRepository(db)
	}
	return NewReconcileService(
		repository.NewResearchRepository(db, cfg.Reconcile.BatchSize),
		runs,
		content.Embedded(),
		specs,
		gate,
		logger,
	), nil
}

// Run 依次处理每个标的；单个标的失败不影响其他标的。总是返回报告，失败的标的合并为一个错误
func (s *ReconcileService) Run(ctx context.Context, trigger string) (*Report, error) {
	report := &Report{
		RunID:     uuid.NewString(),
		Trigger:   trigger,
		StartedAt: s.now(),
		Counts:    make(map[string]map[string]int, len(s.specs)),
	}
	log := s.logger.WithFields(logrus.Fields{"run_id": report.RunID, "trigger": trigger})
	log.WithField("subjects", len(s.specs)).Info("开始重建研究数据")

	var errs []error
	for _, spec := range s.specs {
		if err := ctx.Err(); err != nil {
			errs = append(errs, err)
			break
		}
		sr, err := s.reconcileSubject(ctx, spec, log)
		report.add(sr)
		if err != nil {
			errs = append(errs, err)
		}
	}
	report.FinishedAt = s.now()

	s.recordRun(ctx, report, log)
	log.WithFields(logrus.Fields{
		"total":  report.Total,
		"failed": report.Failed,
	}).Info("重建结束")
	return report, errors.Join(errs...)
}

func (s *ReconcileService) reconcileSubject(ctx context.Context, spec content.SubjectSpec, runLog *logrus.Entry) (SubjectReport, error) {
	sr := SubjectReport{Ticker: spec.Ticker, Phase: PhaseIdle, Counts: map[string]int{}}
	log := runLog.WithField("ticker", spec.Ticker)

	fail := func(err error) (SubjectReport, error) {
		sr.FailedPhase = sr.Phase
		sr.Phase = PhaseFailed
		sr.Error = err.Error()
		log.WithError(err).WithField("phase", sr.FailedPhase).Error("标的重建失败")
		return sr, &SubjectError{Ticker: spec.Ticker, Phase: sr.FailedPhase, Err: err}
	}

	subject, err := s.source.Load(spec)
	if err != nil {
		return fail(err)
	}

	// 预检：结构错误在任何删除之前拒绝整个标的
	if len(subject.CompetitorNews) > 0 {
		res := s.gate.CheckCompetitorNews(subject.Ticker, subject.CompetitorNews, subject.Vocabulary)
		sr.Warnings = res.Warnings
		for _, w := range res.Warnings {
			log.WithFields(logrus.Fields{"path": w.Path, "value": w.Value}).Warn(w.Message)
		}
		if !res.Passed {
			sr.Violations = res.Violations
			return fail(res.Err())
		}
	}

	log.WithFields(logrus.Fields{
		"timeline_shape":   subject.Timeline.Shape,
		"timeline_entries": subject.Timeline.Len(),
	}).Debug("内容加载完成")

	rows := adapter.BuildSubjectRows(subject)
	counts, err := s.repo.ReplaceSubject(ctx, subject.Ticker, rows, interfaces.ReplaceHooks{
		OnClearing: func() { s.transition(&sr, PhaseClearing, log) },
		OnLoading:  func() { s.transition(&sr, PhaseLoading, log) },
	})
	if err != nil {
		return fail(fmt.Errorf("写入失败: %w", err))
	}

	s.transition(&sr, PhaseReporting, log)
	sr.Counts = counts
	for _, table := range model.TableOrder {
		sr.Rows += counts[table]
	}
	s.verifyCounts(ctx, subject.Ticker, counts, log)
	log.WithFields(logrus.Fields{"rows": sr.Rows, "warnings": len(sr.Warnings)}).Info("标的重建完成")
	sr.Phase = PhaseIdle
	return sr, nil
}

// verifyCounts 提交后回读各表行数；不一致只告警，事务已提交
func (s *ReconcileService) verifyCounts(ctx context.Context, ticker string, loaded map[string]int, log *logrus.Entry) {
	stored, err := s.repo.CountBySubject(ctx, ticker)
	if err != nil {
		log.WithError(err).Warn("回读行数失败")
		return
	}
	for _, table := range model.TableOrder {
		if stored[table] != loaded[table] {
			log.WithFields(logrus.Fields{
				"table":  table,
				"loaded": loaded[table],
				"stored": stored[table],
			}).Warn("回读行数与写入行数不一致")
		}
	}
}

func (s *ReconcileService) transition(sr *SubjectReport, to Phase, log *logrus.Entry) {
	log.WithFields(logrus.Fields{"from": sr.Phase, "to": to}).Debug("阶段切换")
	sr.Phase = to
}

// recordRun 写运行历史；失败只记日志，不影响本次结果
func (s *ReconcileService) recordRun(ctx context.Context, report *Report, log *logrus.Entry) {
	if s.runs == nil {
		return
	}
	raw, err := json.Marshal(report)
	if err != nil {
		log.WithError(err).Warn("序列化运行报告失败")
		return
	}
	run := &model.ReconcileRun{
		RunUUID:        report.RunID,
		Trigger:        report.Trigger,
		StartedAt:      report.StartedAt,
		FinishedAt:     report.FinishedAt,
		TotalRows:      report.Total,
		FailedSubjects: report.Failed,
		Report:         datatypes.JSON(raw),
	}
	if err := s.runs.SaveRun(ctx, run); err != nil {
		log.WithError(err).Warn("保存运行记录失败")
	}
}

// ListRuns 最近的运行记录；未开启记录时返回空
func (s *ReconcileService) ListRuns(ctx context.Context, limit int) ([]*model.ReconcileRun, error) {
	if s.runs == nil {
		return []*model.ReconcileRun{}, nil
	}
	return s.runs.ListRuns(ctx, limit)
}

// Validate 单独运行校验，不写库；内容加载失败直接返回
func (s *ReconcileService) Validate(ctx context.Context) ([]*validation.Result, error) {
	subjects, err := content.LoadAll(s.source, s.specs)
	if err != nil {
		return nil, err
	}
	results := make([]*validation.Result, 0, len(subjects))
	var errs []error
	for _, subject := range subjects {
		if err := ctx.Err(); err != nil {
			return results, err
		}
		res := s.gate.CheckCompetitorNews(subject.Ticker, subject.CompetitorNews, subject.Vocabulary)
		results = append(results, res)
		if err := res.Err(); err != nil {
			errs = append(errs, err)
		}
	}
	return results, errors.Join(errs...)
}
