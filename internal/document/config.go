package document

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
)

//go:embed template_config.json
var defaultTemplateJSON []byte

// TemplateConfig 自定义账单模板。通过 JSON 文件描述文档结构，
// 不修改代码即可调整版式。
type TemplateConfig struct {
	DocumentTitle     string           `json:"document_title"`
	TitleFontSize     int              `json:"title_font_size"`
	TitleAlignment    string           `json:"title_alignment"`
	SectionFontSize   int              `json:"section_font_size"`
	TimestampFontSize int              `json:"timestamp_font_size"`
	MerchantTemplate  MerchantTemplate `json:"merchant_template"`
	SummaryTemplate   SummaryTemplate  `json:"summary_template"`
	OutputFormat      string           `json:"output_format"`
	DefaultOutputName string           `json:"default_output_name"`
}

// MerchantTemplate 单个商户账单部分的模板
type MerchantTemplate struct {
	IndividualBills bool      `json:"individual_bills"`
	Sections        []Section `json:"sections"`
}

// SummaryTemplate 汇总表部分的模板
type SummaryTemplate struct {
	SummaryTable bool      `json:"summary_table"`
	Sections     []Section `json:"sections"`
}

// Section 模板中的一个内容块。Type 取值：
// title、text、section、timestamp、table。
type Section struct {
	Name      string   `json:"name"`
	Type      string   `json:"type"`
	Content   string   `json:"content,omitempty"`
	Title     string   `json:"title,omitempty"`
	Items     []string `json:"items,omitempty"`
	FontSize  int      `json:"font_size,omitempty"`
	Bold      bool     `json:"bold,omitempty"`
	Color     string   `json:"color,omitempty"`
	Alignment string   `json:"alignment,omitempty"`
}

// LoadTemplateConfig 从 JSON 文件加载模板
func LoadTemplateConfig(path string) (*TemplateConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("无法读取模板文件 %s: %w", path, err)
	}
	var cfg TemplateConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("模板文件 %s 解析失败: %w", path, err)
	}
	return &cfg, nil
}

// DefaultTemplateConfig 内置的默认模板
func DefaultTemplateConfig() (*TemplateConfig, error) {
	var cfg TemplateConfig
	if err := json.Unmarshal(defaultTemplateJSON, &cfg); err != nil {
		return nil, fmt.Errorf("内置模板解析失败: %w", err)
	}
	return &cfg, nil
}
