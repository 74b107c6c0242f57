package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/pprof"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"ResearchSync/internal/api"
)

const shutdownTimeout = 10 * time.Second

func newServeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "启动管理接口（POST /admin/reconcile）",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			svc, closeDB, err := a.openService()
			if err != nil {
				return err
			}
			defer closeDB()

			gin.SetMode(a.cfg.Server.Mode)
			r := gin.New()
			r.Use(gin.Recovery())
			if a.cfg.Server.Pprof {
				// 注册pprof 方便调试和监测性能问题
				pprof.Register(r)
			}
			api.NewReconcileHandler(svc, a.logger).Register(r)
			a.logger.Infof("Gin运行模式: %s", a.cfg.Server.Mode)

			srv := &http.Server{
				Addr:              fmt.Sprintf(":%d", a.cfg.Server.Port),
				Handler:           r,
				ReadHeaderTimeout: 10 * time.Second,
			}
			errCh := make(chan error, 1)
			go func() {
				a.logger.Infof("服务启动成功，端口：%d", a.cfg.Server.Port)
				errCh <- srv.ListenAndServe()
			}()

			select {
			case err := <-errCh:
				if errors.Is(err, http.ErrServerClosed) {
					return nil
				}
				return fmt.Errorf("启动服务失败: %w", err)
			case <-ctx.Done():
			}

			a.logger.Info("收到退出信号，正在关闭服务…")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	}
}
