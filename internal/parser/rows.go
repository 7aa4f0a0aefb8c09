package parser

import (
	"strconv"
	"strings"

	"github.com/zhengjinwei-ola/waem/internal/model"
)

// cellString 取字符串单元格，越界返回空串
func cellString(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// cellFloat 数值强转。空格、千分位容错，解析失败按 0 处理（脏单元格视为零读数）。
func cellFloat(row []string, idx int) float64 {
	s := cellString(row, idx)
	s = strings.ReplaceAll(s, ",", "")
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return f
}

// ParseRow 将一行数据转换为账单。返回 nil 表示该行跳过（店铺名称为空）。
// 读数全为零的电表列对视为该商户没有这块表，不产生电表记录。
func ParseRow(row []string, cols *HeaderColumnMap) *model.MerchantBill {
	merchantName := cellString(row, cols.MerchantName)
	if merchantName == "" {
		return nil
	}

	bill := model.NewMerchantBill(
		merchantName,
		cellFloat(row, cols.WaterUnitPrice),
		cellFloat(row, cols.ElectricityUnitPrice),
	)
	bill.SetWaterReadings(
		cellFloat(row, cols.PrevWaterReading),
		cellFloat(row, cols.CurrWaterReading),
	)
	bill.SetShopCode(cellString(row, cols.ShopCode))

	for i, pair := range cols.MeterColumns {
		prev := cellFloat(row, pair.Prev)
		curr := cellFloat(row, pair.Curr)
		if prev > 0 || curr > 0 {
			bill.AddElectricityMeter(strconv.Itoa(i+1), prev, curr)
		}
	}

	bill.SetAdditionalFees(
		cellFloat(row, cols.LaborFee),
		cellFloat(row, cols.GarbageFee),
	)
	return bill
}
