package document

import (
	"strconv"
	"strings"

	"baliance.com/gooxml/color"
	"baliance.com/gooxml/document"
	"baliance.com/gooxml/measurement"
	"baliance.com/gooxml/schema/soo/wml"
)

// GenerateOptions 通知单生成选项
type GenerateOptions struct {
	// CustomTitle 自定义标题，空串使用默认的 "yyyy年MM月抄表计费通知单"
	CustomTitle string
	// PerPage 每页通知单数量，0 表示不分页
	PerPage int
}

// addPageBreak 插入分页符
func addPageBreak(doc *document.Document) {
	run := doc.AddParagraph().AddRun()
	br := wml.NewCT_Br()
	br.TypeAttr = wml.ST_BrTypePage
	ic := wml.NewEG_RunInnerContent()
	ic.Br = br
	run.X().EG_RunInnerContent = append(run.X().EG_RunInnerContent, ic)
}

// countPageBreaks 统计文档中的分页符数量（测试用）
func countPageBreaks(doc *document.Document) int {
	n := 0
	for _, para := range doc.Paragraphs() {
		for _, run := range para.Runs() {
			for _, ic := range run.X().EG_RunInnerContent {
				if ic.Br != nil && ic.Br.TypeAttr == wml.ST_BrTypePage {
					n++
				}
			}
		}
	}
	return n
}

// addTextWithBreaks 写入多行文本，按换行符拆分为硬换行
func addTextWithBreaks(run document.Run, text string) {
	for i, line := range strings.Split(text, "\n") {
		if i > 0 {
			run.AddBreak()
		}
		run.AddText(line)
	}
}

// addParagraph 通用段落：文本 + 字号/加粗/对齐
func addParagraph(doc *document.Document, text string, size measurement.Distance, bold bool, align wml.ST_Jc) {
	para := doc.AddParagraph()
	para.Properties().SetAlignment(align)
	run := para.AddRun()
	run.Properties().SetSize(size)
	if bold {
		run.Properties().SetBold(true)
	}
	addTextWithBreaks(run, text)
}

// addCellText 表格单元格文本
func addCellText(cell document.Cell, text string, size measurement.Distance, bold bool, align wml.ST_Jc) {
	para := cell.AddParagraph()
	para.Properties().SetAlignment(align)
	run := para.AddRun()
	run.Properties().SetSize(size)
	if bold {
		run.Properties().SetBold(true)
	}
	run.AddText(text)
}

// alignmentOf 模板对齐方式到 docx 对齐常量
func alignmentOf(s string) wml.ST_Jc {
	switch s {
	case "center":
		return wml.ST_JcCenter
	case "right":
		return wml.ST_JcRight
	default:
		return wml.ST_JcLeft
	}
}

// hexColor 解析 "FF0000" 形式的颜色，失败返回黑色
func hexColor(s string) color.Color {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) != 6 {
		return color.Black
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return color.Black
	}
	return color.RGB(uint8(v>>16), uint8(v>>8), uint8(v))
}

// newBorderedTable 全边框表格
func newBorderedTable(doc *document.Document) document.Table {
	table := doc.AddTable()
	table.Properties().SetWidthPercent(100)
	table.Properties().Borders().SetAll(wml.ST_BorderSingle, color.Auto, measurement.Point*0.5)
	return table
}
