package api

import (
	"context"
	"net/http"
	"strconv"
	"sync"

	"ResearchSync/internal/model"
	"ResearchSync/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// Reconciler 管理接口依赖的重建能力，由 service.ReconcileService 实现
type Reconciler interface {
	Run(ctx context.Context, trigger string) (*service.Report, error)
	ListRuns(ctx context.Context, limit int) ([]*model.ReconcileRun, error)
}

type ReconcileHandler struct {
	svc    Reconciler
	logger *logrus.Logger
	mu     sync.Mutex // 同一时间只允许一次重建
}

func NewReconcileHandler(svc Reconciler, logger *logrus.Logger) *ReconcileHandler {
	return &ReconcileHandler{svc: svc, logger: logger}
}

// Register 注册管理路由
func (h *ReconcileHandler) Register(r gin.IRouter) {
	r.GET("/healthz", h.Health)
	admin := r.Group("/admin")
	admin.POST("/reconcile", h.Reconcile)
	admin.GET("/reconcile/runs", h.ListRuns)
}

// Reconcile 触发一次完整重建
// POST /admin/reconcile
// 全部成功 200；有标的失败 500（仍返回报告）；已有重建在跑 409
func (h *ReconcileHandler) Reconcile(c *gin.Context) {
	if !h.mu.TryLock() {
		c.JSON(http.StatusConflict, gin.H{"error": "重建正在进行中"})
		return
	}
	defer h.mu.Unlock()

	report, err := h.svc.Run(c.Request.Context(), service.TriggerHTTP)
	if err != nil {
		h.logger.WithError(err).Error("重建失败")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error(), "report": report})
		return
	}
	c.JSON(http.StatusOK, gin.H{"report": report})
}

// ListRuns 最近的运行记录
// GET /admin/reconcile/runs?limit=20
func (h *ReconcileHandler) ListRuns(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if err != nil || limit <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "limit 必须是正整数"})
		return
	}
	runs, err := h.svc.ListRuns(c.Request.Context(), limit)
	if err != nil {
		h.logger.WithError(err).Error("查询运行记录失败")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"runs": runs})
}

func (h *ReconcileHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
