package document

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestReplacePlaceholders(t *testing.T) {
	t.Parallel()

	bill := testBill("张记小吃", 2)
	now := time.Date(2025, 6, 15, 10, 0, 0, 0, time.Local)

	got := ReplacePlaceholders("{merchant_name} {year}年{month}月 水费{water_amount}元 共{electricity_meter_count}块电表", bill, now)
	want := "张记小吃 2025年06月 水费35.00元 共2块电表"
	if got != want {
		t.Fatalf("替换结果 = %q, 期望 %q", got, want)
	}
}

func TestReplacePlaceholdersUnknownKept(t *testing.T) {
	t.Parallel()

	bill := testBill("商户", 0)
	got := ReplacePlaceholders("前缀{nope}后缀", bill, time.Now())
	if got != "前缀{nope}后缀" {
		t.Fatalf("未知占位符应原样保留, got %q", got)
	}
}

func TestDefaultTemplateConfig(t *testing.T) {
	t.Parallel()

	cfg, err := DefaultTemplateConfig()
	if err != nil {
		t.Fatalf("加载内置模板失败: %v", err)
	}
	if cfg.DocumentTitle == "" {
		t.Fatalf("内置模板缺少标题")
	}
	if len(cfg.MerchantTemplate.Sections) == 0 {
		t.Fatalf("内置模板缺少商户内容块")
	}
	if !cfg.SummaryTemplate.SummaryTable {
		t.Fatalf("内置模板应启用汇总表")
	}
}

func TestLoadTemplateConfig(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "template.json")
	content := `{"document_title":"自定义账单","title_font_size":14,"merchant_template":{"individual_bills":true,"sections":[{"name":"t","type":"title","content":"{merchant_name}"}]}}`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("写入模板文件失败: %v", err)
	}

	cfg, err := LoadTemplateConfig(path)
	if err != nil {
		t.Fatalf("加载模板失败: %v", err)
	}
	if cfg.DocumentTitle != "自定义账单" {
		t.Fatalf("document_title = %q", cfg.DocumentTitle)
	}
	if cfg.TitleFontSize != 14 {
		t.Fatalf("title_font_size = %d", cfg.TitleFontSize)
	}
}

func TestLoadTemplateConfigMissing(t *testing.T) {
	t.Parallel()

	if _, err := LoadTemplateConfig(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Fatalf("不存在的模板文件应返回错误")
	}
}

func TestLoadTemplateConfigInvalidJSON(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatalf("写入失败: %v", err)
	}
	if _, err := LoadTemplateConfig(path); err == nil {
		t.Fatalf("非法JSON应返回错误")
	}
	if _, err := LoadTemplateConfig(path); err != nil && !strings.Contains(err.Error(), "解析失败") {
		t.Fatalf("错误信息应说明解析失败: %v", err)
	}
}

func TestGenerateDocumentEmpty(t *testing.T) {
	t.Parallel()

	cfg, err := DefaultTemplateConfig()
	if err != nil {
		t.Fatalf("加载内置模板失败: %v", err)
	}
	if _, err := NewGenerator(cfg).GenerateDocument(nil); err == nil {
		t.Fatalf("空账单应返回错误")
	}
}

func TestGenerateDocumentProducesDocx(t *testing.T) {
	t.Parallel()

	cfg, err := DefaultTemplateConfig()
	if err != nil {
		t.Fatalf("加载内置模板失败: %v", err)
	}
	data, err := NewGenerator(cfg).GenerateDocument(testBills(3))
	if err != nil {
		t.Fatalf("生成失败: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("PK")) {
		t.Fatalf("输出不是有效的docx(zip)文件")
	}
}

func TestGenerateDocumentPagination(t *testing.T) {
	t.Parallel()

	cfg, err := DefaultTemplateConfig()
	if err != nil {
		t.Fatalf("加载内置模板失败: %v", err)
	}
	doc, err := NewGenerator(cfg).build(testBills(3), time.Now())
	if err != nil {
		t.Fatalf("生成失败: %v", err)
	}
	// 3 张账单之间 2 个分页符，汇总表前 1 个
	if got := countPageBreaks(doc); got != 3 {
		t.Fatalf("分页符数量 = %d, 期望 3", got)
	}
}
