package document

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"baliance.com/gooxml/document"
	"baliance.com/gooxml/measurement"
	"baliance.com/gooxml/schema/soo/wml"

	"github.com/zhengjinwei-ola/waem/internal/currency"
	"github.com/zhengjinwei-ola/waem/internal/model"
)

const (
	titleSize      = measurement.Point * 16
	bodySize       = measurement.Point * 11
	disclaimerSize = measurement.Point * 9
)

// 费用明细表表头
var noticeTableHeaders = []string{"项目", "上月表底", "本月抄表数", "实用度数", "公共分摊", "单价（元）", "金额"}

// 通知单下方的固定说明文字
const noticeDisclaimer = "1、此单可对账不做凭证；\n2、每月5日前为收费时间，超期按5%收滞纳金或停电；\n3、以上费用如有不明或差错请到管理处核对。"

// GenerateNotices 生成抄表计费通知单文档：每个商户一张通知单表格，
// 末尾另起一页输出费用汇总表。返回 docx 字节流。
func GenerateNotices(bills []*model.MerchantBill, opts GenerateOptions) ([]byte, error) {
	doc, err := buildNotices(bills, opts, time.Now())
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := doc.Save(&buf); err != nil {
		return nil, fmt.Errorf("生成Word文档失败: %w", err)
	}
	return buf.Bytes(), nil
}

// buildNotices 组装文档结构，便于测试检查分页与合并单元格
func buildNotices(bills []*model.MerchantBill, opts GenerateOptions, now time.Time) (*document.Document, error) {
	if len(bills) == 0 {
		return nil, fmt.Errorf("没有可生成的账单数据")
	}

	title := opts.CustomTitle
	if title == "" {
		title = fmt.Sprintf("%d年%02d月抄表计费通知单", now.Year(), int(now.Month()))
	}

	doc := document.New()
	for i, bill := range bills {
		addNotice(doc, bill, title, now)

		if i < len(bills)-1 {
			// 通知单之间的分隔线
			addParagraph(doc, strings.Repeat("=", 40), bodySize, false, wml.ST_JcLeft)
			if opts.PerPage != 0 && (i+1)%opts.PerPage == 0 {
				addPageBreak(doc)
			}
		}
	}

	// 汇总表单独成页
	addPageBreak(doc)
	addNoticeSummaryTable(doc, bills)

	return doc, nil
}

// addNotice 单个商户的通知单：标题、基本信息行、费用明细表、说明文字
func addNotice(doc *document.Document, bill *model.MerchantBill, title string, now time.Time) {
	addParagraph(doc, title, titleSize, true, wml.ST_JcCenter)

	meterDate := bill.MeterDate
	if meterDate == "" {
		meterDate = fmt.Sprintf("%d年%02d月%02d日", now.Year(), int(now.Month()), now.Day())
	}
	addInfoLine(doc, []string{
		"编号：", bill.ShopCode,
		"姓名", bill.MerchantName,
		"抄表人：", bill.MeterReader,
		"抄表日期：" + meterDate,
	})

	doc.AddParagraph()

	table := newBorderedTable(doc)
	headerRow := table.AddRow()
	for _, h := range noticeTableHeaders {
		addCellText(headerRow.AddCell(), h, bodySize, true, wml.ST_JcCenter)
	}

	addMeterRows(table, bill)
	addWaterRow(table, bill)
	addFeeRow(table, "水电人工费", fmt.Sprintf("%.2f", bill.LaborFee))
	addFeeRow(table, "垃圾处理费", fmt.Sprintf("%.2f", bill.GarbageFee))
	// 滞纳金与广告费为与纸质单据版式对齐的占位行，金额恒为 0
	addFeeRow(table, "滞纳金", "0.00")
	addFeeRow(table, "广告费", "0.00")
	addTotalRow(table, bill)

	doc.AddParagraph()
	addParagraph(doc, noticeDisclaimer, disclaimerSize, false, wml.ST_JcLeft)
}

// addInfoLine 基本信息行，字段之间以制表符分隔
func addInfoLine(doc *document.Document, segments []string) {
	para := doc.AddParagraph()
	run := para.AddRun()
	run.Properties().SetSize(bodySize)
	for i, seg := range segments {
		if i > 0 {
			run.AddTab()
		}
		run.AddText(seg)
	}
}

// addMeterRows 电表行。多块电表时，单价与金额两列纵向合并，
// 数值只出现在首行；单块电表正常显示；没有电表时输出一行零值占位。
func addMeterRows(table document.Table, bill *model.MerchantBill) {
	meters := bill.ElectricityMeters
	if len(meters) == 0 {
		row := table.AddRow()
		addCellText(row.AddCell(), "电表", bodySize, false, wml.ST_JcCenter)
		for _, v := range []string{"0", "0", "0", ""} {
			addCellText(row.AddCell(), v, bodySize, false, wml.ST_JcCenter)
		}
		addCellText(row.AddCell(), fmt.Sprintf("%.2f", bill.ElectricityUnitPrice), bodySize, false, wml.ST_JcCenter)
		addCellText(row.AddCell(), "0", bodySize, false, wml.ST_JcCenter)
		return
	}

	merge := len(meters) > 1
	for idx, meter := range meters {
		name := "电表"
		if merge {
			name = fmt.Sprintf("电表%d", idx+1)
		}

		row := table.AddRow()
		addCellText(row.AddCell(), name, bodySize, false, wml.ST_JcCenter)
		addCellText(row.AddCell(), fmt.Sprintf("%.0f", meter.PrevReading), bodySize, false, wml.ST_JcCenter)
		addCellText(row.AddCell(), fmt.Sprintf("%.0f", meter.CurrReading), bodySize, false, wml.ST_JcCenter)
		addCellText(row.AddCell(), fmt.Sprintf("%.0f", meter.Usage), bodySize, false, wml.ST_JcCenter)
		addCellText(row.AddCell(), "", bodySize, false, wml.ST_JcCenter)

		priceCell := row.AddCell()
		amountCell := row.AddCell()
		switch {
		case !merge:
			addCellText2(priceCell, fmt.Sprintf("%.2f", bill.ElectricityUnitPrice))
			addCellText2(amountCell, fmt.Sprintf("%.0f", bill.ElectricityAmount))
		case idx == 0:
			priceCell.Properties().SetVerticalMerge(wml.ST_MergeRestart)
			addCellText2(priceCell, fmt.Sprintf("%.2f", bill.ElectricityUnitPrice))
			amountCell.Properties().SetVerticalMerge(wml.ST_MergeRestart)
			addCellText2(amountCell, fmt.Sprintf("%.0f", bill.ElectricityAmount))
		default:
			priceCell.Properties().SetVerticalMerge(wml.ST_MergeContinue)
			amountCell.Properties().SetVerticalMerge(wml.ST_MergeContinue)
		}
	}
}

// addCellText2 常规居中单元格
func addCellText2(cell document.Cell, text string) {
	addCellText(cell, text, bodySize, false, wml.ST_JcCenter)
}

func addWaterRow(table document.Table, bill *model.MerchantBill) {
	row := table.AddRow()
	addCellText2(row.AddCell(), "水费")
	addCellText2(row.AddCell(), fmt.Sprintf("%.0f", bill.PrevWaterReading))
	addCellText2(row.AddCell(), fmt.Sprintf("%.0f", bill.CurrWaterReading))
	addCellText2(row.AddCell(), fmt.Sprintf("%.0f", bill.WaterUsage))
	addCellText2(row.AddCell(), "")
	addCellText2(row.AddCell(), fmt.Sprintf("%.3f", bill.WaterUnitPrice))
	addCellText2(row.AddCell(), fmt.Sprintf("%.0f", bill.WaterAmount))
}

// addFeeRow 只有项目名和金额的固定费用行
func addFeeRow(table document.Table, name, amount string) {
	row := table.AddRow()
	addCellText2(row.AddCell(), name)
	for i := 0; i < 5; i++ {
		addCellText2(row.AddCell(), "")
	}
	addCellText2(row.AddCell(), amount)
}

// addTotalRow 合计行：后六列横向合并，同时展示大写与小写金额
func addTotalRow(table document.Table, bill *model.MerchantBill) {
	row := table.AddRow()
	addCellText(row.AddCell(), "合计", bodySize, true, wml.ST_JcCenter)

	cell := row.AddCell()
	cell.Properties().SetColumnSpan(6)
	text := fmt.Sprintf("大写：%s    小写：%.2f", currency.Upper(bill.TotalFee), bill.TotalFee)
	addCellText(cell, text, bodySize, true, wml.ST_JcCenter)
}

// addNoticeSummaryTable 所有商户的费用汇总表，末行为加粗的列合计
func addNoticeSummaryTable(doc *document.Document, bills []*model.MerchantBill) {
	addParagraph(doc, "费用汇总表", titleSize, true, wml.ST_JcCenter)

	table := newBorderedTable(doc)
	headerRow := table.AddRow()
	for _, h := range []string{"店铺名称", "水电费合计（元）", "水电人工费", "垃圾处理费", "总价"} {
		addCellText(headerRow.AddCell(), h, bodySize, true, wml.ST_JcLeft)
	}

	var totalWaterElectric, totalLabor, totalGarbage, grandTotal float64
	for _, bill := range bills {
		waterElectric := bill.WaterAmount + bill.ElectricityAmount
		row := table.AddRow()
		addCellText(row.AddCell(), bill.MerchantName, bodySize, false, wml.ST_JcLeft)
		addCellText(row.AddCell(), fmt.Sprintf("%.2f", waterElectric), bodySize, false, wml.ST_JcLeft)
		addCellText(row.AddCell(), fmt.Sprintf("%.2f", bill.LaborFee), bodySize, false, wml.ST_JcLeft)
		addCellText(row.AddCell(), fmt.Sprintf("%.2f", bill.GarbageFee), bodySize, false, wml.ST_JcLeft)
		addCellText(row.AddCell(), fmt.Sprintf("%.2f", bill.TotalFee), bodySize, false, wml.ST_JcLeft)

		totalWaterElectric += waterElectric
		totalLabor += bill.LaborFee
		totalGarbage += bill.GarbageFee
		grandTotal += bill.TotalFee
	}

	row := table.AddRow()
	addCellText(row.AddCell(), "合计", bodySize, true, wml.ST_JcLeft)
	for _, v := range []float64{totalWaterElectric, totalLabor, totalGarbage, grandTotal} {
		addCellText(row.AddCell(), fmt.Sprintf("%.2f", v), bodySize, true, wml.ST_JcLeft)
	}
}
