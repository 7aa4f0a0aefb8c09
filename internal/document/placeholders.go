package document

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/zhengjinwei-ola/waem/internal/model"
)

// placeholderFuncs 模板占位符到取值函数的映射。
// 未注册的占位符在渲染时原样保留。
var placeholderFuncs = map[string]func(b *model.MerchantBill, now time.Time) string{
	"{merchant_name}": func(b *model.MerchantBill, _ time.Time) string {
		return b.MerchantName
	},
	"{year}": func(_ *model.MerchantBill, now time.Time) string {
		return strconv.Itoa(now.Year())
	},
	"{month}": func(_ *model.MerchantBill, now time.Time) string {
		return fmt.Sprintf("%02d", int(now.Month()))
	},
	"{prev_water_reading}": func(b *model.MerchantBill, _ time.Time) string {
		return fmt.Sprintf("%v", b.PrevWaterReading)
	},
	"{curr_water_reading}": func(b *model.MerchantBill, _ time.Time) string {
		return fmt.Sprintf("%v", b.CurrWaterReading)
	},
	"{water_usage}": func(b *model.MerchantBill, _ time.Time) string {
		return fmt.Sprintf("%v", b.WaterUsage)
	},
	"{electricity_usage}": func(b *model.MerchantBill, _ time.Time) string {
		return fmt.Sprintf("%v", b.ElectricityUsage)
	},
	"{water_unit_price}": func(b *model.MerchantBill, _ time.Time) string {
		return fmt.Sprintf("%.2f", b.WaterUnitPrice)
	},
	"{electricity_unit_price}": func(b *model.MerchantBill, _ time.Time) string {
		return fmt.Sprintf("%.2f", b.ElectricityUnitPrice)
	},
	"{water_amount}": func(b *model.MerchantBill, _ time.Time) string {
		return fmt.Sprintf("%.2f", b.WaterAmount)
	},
	"{electricity_amount}": func(b *model.MerchantBill, _ time.Time) string {
		return fmt.Sprintf("%.2f", b.ElectricityAmount)
	},
	"{total_amount}": func(b *model.MerchantBill, _ time.Time) string {
		return fmt.Sprintf("%.2f", b.TotalFee)
	},
	"{electricity_details}": func(b *model.MerchantBill, _ time.Time) string {
		return b.ElectricityDetails()
	},
	"{electricity_meter_count}": func(b *model.MerchantBill, _ time.Time) string {
		return strconv.Itoa(len(b.ElectricityMeters))
	},
}

// ReplacePlaceholders 把模板文本中的已知占位符替换为账单数据
func ReplacePlaceholders(text string, bill *model.MerchantBill, now time.Time) string {
	for token, fn := range placeholderFuncs {
		if strings.Contains(text, token) {
			text = strings.ReplaceAll(text, token, fn(bill, now))
		}
	}
	return text
}
