package document

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"baliance.com/gooxml/document"
	"baliance.com/gooxml/measurement"
	"baliance.com/gooxml/schema/soo/wml"

	"github.com/zhengjinwei-ola/waem/internal/model"
)

// Generator 按模板配置生成账单文档
type Generator struct {
	cfg *TemplateConfig
}

// NewGenerator 创建模板生成器
func NewGenerator(cfg *TemplateConfig) *Generator {
	return &Generator{cfg: cfg}
}

// GenerateDocument 按模板渲染所有账单，返回 docx 字节流
func (g *Generator) GenerateDocument(bills []*model.MerchantBill) ([]byte, error) {
	doc, err := g.build(bills, time.Now())
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := doc.Save(&buf); err != nil {
		return nil, fmt.Errorf("生成Word文档失败: %w", err)
	}
	return buf.Bytes(), nil
}

func (g *Generator) build(bills []*model.MerchantBill, now time.Time) (*document.Document, error) {
	if len(bills) == 0 {
		return nil, fmt.Errorf("没有可生成的账单数据")
	}

	doc := document.New()
	addParagraph(doc, g.cfg.DocumentTitle, g.sizeOf(g.cfg.TitleFontSize, 16), true, alignmentOf(g.cfg.TitleAlignment))

	if g.cfg.MerchantTemplate.IndividualBills {
		for i, bill := range bills {
			for _, section := range g.cfg.MerchantTemplate.Sections {
				g.renderSection(doc, section, bill, bills, now)
			}
			if i < len(bills)-1 {
				addPageBreak(doc)
			}
		}
	}

	if g.cfg.SummaryTemplate.SummaryTable {
		addPageBreak(doc)
		for _, section := range g.cfg.SummaryTemplate.Sections {
			g.renderSection(doc, section, bills[0], bills, now)
		}
	}

	return doc, nil
}

// renderSection 渲染单个模板内容块
func (g *Generator) renderSection(doc *document.Document, s Section, bill *model.MerchantBill, bills []*model.MerchantBill, now time.Time) {
	switch s.Type {
	case "title":
		text := ReplacePlaceholders(s.Content, bill, now)
		addParagraph(doc, text, g.sizeOf(s.FontSize, g.cfg.TitleFontSize), true, alignmentOf(g.cfg.TitleAlignment))
	case "text":
		text := ReplacePlaceholders(s.Content, bill, now)
		para := doc.AddParagraph()
		para.Properties().SetAlignment(alignmentOf(s.Alignment))
		run := para.AddRun()
		run.Properties().SetSize(g.sizeOf(s.FontSize, g.cfg.SectionFontSize))
		if s.Bold {
			run.Properties().SetBold(true)
		}
		if s.Color != "" {
			run.Properties().SetColor(hexColor(s.Color))
		}
		addTextWithBreaks(run, text)
	case "section":
		addParagraph(doc, s.Title, g.sizeOf(g.cfg.SectionFontSize+2, 13), true, wml.ST_JcLeft)
		for _, item := range s.Items {
			text := ReplacePlaceholders(item, bill, now)
			addParagraph(doc, text, g.sizeOf(s.FontSize, g.cfg.SectionFontSize), false, wml.ST_JcLeft)
		}
	case "timestamp":
		text := strings.ReplaceAll(s.Content, "{datetime}", now.Format("2006-01-02 15:04:05"))
		align := s.Alignment
		if align == "" {
			align = "right"
		}
		addParagraph(doc, text, g.sizeOf(g.cfg.TimestampFontSize, 9), false, alignmentOf(align))
	case "table":
		g.addSummaryTable(doc, bills)
	}
}

// addSummaryTable 模板模式下的汇总表：序号、商家、水费、电费、合计
func (g *Generator) addSummaryTable(doc *document.Document, bills []*model.MerchantBill) {
	table := newBorderedTable(doc)
	size := g.sizeOf(g.cfg.SectionFontSize, 11)

	headerRow := table.AddRow()
	for _, h := range []string{"序号", "商家名称", "水费(元)", "电费(元)", "合计(元)"} {
		addCellText(headerRow.AddCell(), h, size, true, wml.ST_JcCenter)
	}

	var batch model.BillBatch
	for i, bill := range bills {
		batch.Add(bill)
		row := table.AddRow()
		addCellText(row.AddCell(), fmt.Sprintf("%d", i+1), size, false, wml.ST_JcCenter)
		addCellText(row.AddCell(), bill.MerchantName, size, false, wml.ST_JcCenter)
		addCellText(row.AddCell(), fmt.Sprintf("%.2f", bill.WaterAmount), size, false, wml.ST_JcCenter)
		addCellText(row.AddCell(), fmt.Sprintf("%.2f", bill.ElectricityAmount), size, false, wml.ST_JcCenter)
		addCellText(row.AddCell(), fmt.Sprintf("%.2f", bill.TotalFee), size, false, wml.ST_JcCenter)
	}

	row := table.AddRow()
	addCellText(row.AddCell(), "合计", size, true, wml.ST_JcCenter)
	addCellText(row.AddCell(), "", size, true, wml.ST_JcCenter)
	addCellText(row.AddCell(), fmt.Sprintf("%.2f", batch.TotalWaterAmount), size, true, wml.ST_JcCenter)
	addCellText(row.AddCell(), fmt.Sprintf("%.2f", batch.TotalElectricAmount), size, true, wml.ST_JcCenter)
	addCellText(row.AddCell(), fmt.Sprintf("%.2f", batch.GrandTotal), size, true, wml.ST_JcCenter)
}

// sizeOf 字号配置为 0 时退回默认值
func (g *Generator) sizeOf(pt, fallback int) measurement.Distance {
	if pt <= 0 {
		pt = fallback
	}
	return measurement.Distance(pt) * measurement.Point
}
