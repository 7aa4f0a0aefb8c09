package main

import (
	"github.com/spf13/cobra"

	"github.com/zhengjinwei-ola/waem/internal/config"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "waem",
	Short: "水电表抄表计费工具",
	Long: `waem 读取抄表记录表格（xlsx或csv），为每个商户计算水电费，
生成抄表计费通知单和费用汇总表的Word文档。

可直接命令行生成，也可启动Web服务在浏览器里上传表格。`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "配置文件路径（默认为可执行文件同目录下的 config.toml）")
}

// loadConfig 加载配置，--config 优先
func loadConfig() (*config.AppConfig, error) {
	if cfgFile != "" {
		return config.LoadConfigFrom(cfgFile)
	}
	return config.LoadConfig()
}
