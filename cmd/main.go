package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"ResearchSync/internal/config"
	"ResearchSync/internal/database"
	"ResearchSync/internal/service"
)

// app 命令行各子命令共享的运行时状态，由 PersistentPreRunE 填充
type app struct {
	configPath string
	subjects   []string
	cfg        *config.Config
	logger     *logrus.Logger
}

func newRootCmd(out io.Writer) *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "researchsync",
		Short:         "研究内容归一化并重建派生表",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd.ErrOrStderr())
		},
	}
	root.SetOut(out)
	root.PersistentFlags().StringVar(&a.configPath, "config", "", "配置文件路径（默认 ./config/config.yaml）")
	root.PersistentFlags().StringSliceVar(&a.subjects, "subjects", nil, "只处理这些 ticker（覆盖 reconcile.subjects）")

	root.AddCommand(
		newServeCmd(a),
		newReconcileCmd(a),
		newValidateCmd(a),
		newSchemaCmd(a),
	)
	return root
}

// setup 加载配置并初始化日志
func (a *app) setup(logOut io.Writer) error {
	cfg, err := config.LoadConfig(a.configPath)
	if err != nil {
		return err
	}
	if len(a.subjects) > 0 {
		cfg.Reconcile.Subjects = make([]string, 0, len(a.subjects))
		for _, s := range a.subjects {
			cfg.Reconcile.Subjects = append(cfg.Reconcile.Subjects, strings.ToUpper(strings.TrimSpace(s)))
		}
	}
	a.cfg = cfg

	a.logger = logrus.New()
	a.logger.SetOutput(logOut)
	level, err := logrus.ParseLevel(cfg.Log.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	a.logger.SetLevel(level)
	a.logger.Debug("配置文件加载成功")
	return nil
}

// openService 连库（不存在则建库建表）并装配重建服务
func (a *app) openService() (*service.ReconcileService, func(), error) {
	db, err := database.Open(a.cfg.Database, a.logger)
	if err != nil {
		return nil, nil, err
	}
	closeDB := func() {
		if err := database.Close(db); err != nil {
			a.logger.WithError(err).Warn("关闭数据库失败")
		}
	}
	svc, err := service.NewReconcileServiceFromConfig(db, a.logger, a.cfg)
	if err != nil {
		closeDB()
		return nil, nil, err
	}
	return svc, closeDB, nil
}

func main() {
	if err := newRootCmd(os.Stdout).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "错误:", err)
		os.Exit(1)
	}
}
