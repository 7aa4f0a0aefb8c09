package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/zhengjinwei-ola/waem/internal/server"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "启动Web服务，在浏览器里上传表格生成通知单",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "监听端口（默认取配置文件，缺省 3002）")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("加载配置失败: %w", err)
	}
	if servePort != 0 {
		cfg.Server.Port = servePort
	}

	logger, err := newLogger(cfg.Server.DevMode)
	if err != nil {
		return err
	}
	defer logger.Sync()

	logger.Info("水电表生成系统启动",
		zap.Int("port", cfg.Server.Port),
		zap.Bool("dev_mode", cfg.Server.DevMode))

	return server.NewServer(cfg, logger).Run()
}

func newLogger(devMode bool) (*zap.Logger, error) {
	if devMode {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
