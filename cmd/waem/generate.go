package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/zhengjinwei-ola/waem/internal/convert"
	"github.com/zhengjinwei-ola/waem/internal/document"
	"github.com/zhengjinwei-ola/waem/internal/parser"
)

var (
	genInput          string
	genOutput         string
	genTitle          string
	genPerPage        int
	genMeterReader    string
	genMeterDate      string
	genUseTemplate    bool
	genTemplateConfig string
	genPDF            bool
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "从表格文件生成抄表计费通知单",
	Long: `读取抄表记录表格，计算每个商户的水电费，生成Word文档。

默认输出固定版式的抄表计费通知单加费用汇总表；
加 --template 切换为JSON模板驱动的账单版式。`,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().StringVarP(&genInput, "input", "i", "", "输入文件路径（.xlsx 或 .csv）")
	generateCmd.Flags().StringVarP(&genOutput, "output", "o", "抄表计费通知单.docx", "输出文件路径")
	generateCmd.Flags().StringVar(&genTitle, "title", "", "自定义标题（默认：yyyy年MM月抄表计费通知单）")
	generateCmd.Flags().IntVar(&genPerPage, "per-page", 1, "每页通知单数量，0 表示不分页")
	generateCmd.Flags().StringVar(&genMeterReader, "reader", "", "抄表人")
	generateCmd.Flags().StringVar(&genMeterDate, "date", "", "抄表日期，例如 2025年08月16日")
	generateCmd.Flags().BoolVar(&genUseTemplate, "template", false, "使用JSON模板版式生成账单")
	generateCmd.Flags().StringVar(&genTemplateConfig, "template-config", "", "自定义JSON模板路径（隐含 --template）")
	generateCmd.Flags().BoolVar(&genPDF, "pdf", false, "同时生成PDF（需要安装LibreOffice）")
	_ = generateCmd.MarkFlagRequired("input")
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("加载配置失败: %w", err)
	}

	bills, err := parser.ReadDataFile(genInput, cfg.Document.MeterPrefix)
	if err != nil {
		return err
	}
	for _, bill := range bills {
		bill.SetMeterInfo(genMeterReader, genMeterDate)
	}

	var data []byte
	if genUseTemplate || genTemplateConfig != "" {
		tplCfg, err := loadTemplate(genTemplateConfig, cfg.Document.TemplatePath)
		if err != nil {
			return err
		}
		if data, err = document.NewGenerator(tplCfg).GenerateDocument(bills); err != nil {
			return err
		}
	} else {
		opts := document.GenerateOptions{CustomTitle: genTitle, PerPage: genPerPage}
		if data, err = document.GenerateNotices(bills, opts); err != nil {
			return err
		}
	}

	if err := os.WriteFile(genOutput, data, 0o644); err != nil {
		return fmt.Errorf("写入 %s 失败: %w", genOutput, err)
	}
	fmt.Printf("已生成 %s（%d 个商户）\n", genOutput, len(bills))

	if genPDF {
		pdfPath, err := convert.ToPDF(context.Background(), cfg.Convert.SofficePath, genOutput, filepath.Dir(genOutput))
		if err != nil {
			return err
		}
		fmt.Printf("已生成 %s\n", pdfPath)
	}
	return nil
}

// loadTemplate 模板优先级：命令行路径 > 配置文件路径 > 内置模板
func loadTemplate(flagPath, cfgPath string) (*document.TemplateConfig, error) {
	if flagPath != "" {
		return document.LoadTemplateConfig(flagPath)
	}
	if cfgPath != "" {
		return document.LoadTemplateConfig(cfgPath)
	}
	return document.DefaultTemplateConfig()
}
