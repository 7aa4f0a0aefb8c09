package model

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// ElectricityMeter 单个电表的读数与用量
type ElectricityMeter struct {
	MeterID     string
	PrevReading float64
	CurrReading float64
	Usage       float64
	// Amount 行内展示用的单表金额（四舍五入到元），不参与合计
	Amount float64
}

// MerchantBill 单个商户的计费记录
type MerchantBill struct {
	MerchantName         string
	ShopCode             string // 铺面编号
	WaterUnitPrice       float64
	ElectricityUnitPrice float64
	PrevWaterReading     float64
	CurrWaterReading     float64
	WaterUsage           float64
	WaterAmount          float64
	ElectricityMeters    []ElectricityMeter
	ElectricityUsage     float64
	ElectricityAmount    float64
	LaborFee             float64 // 水电人工费
	GarbageFee           float64 // 垃圾处理费
	MeterReader          string  // 抄表人（可选，由Web表单传入）
	MeterDate            string  // 抄表日期（可选，由Web表单传入）
	TotalFee             float64
	Month                string
}

// NewMerchantBill 创建账单，月份标签取当前年月
func NewMerchantBill(name string, waterUnitPrice, electricityUnitPrice float64) *MerchantBill {
	return &MerchantBill{
		MerchantName:         name,
		WaterUnitPrice:       waterUnitPrice,
		ElectricityUnitPrice: electricityUnitPrice,
		Month:                time.Now().Format("2006年01月"),
	}
}

// SetShopCode 设置铺面编号
func (b *MerchantBill) SetShopCode(code string) {
	b.ShopCode = code
}

// SetMeterInfo 设置抄表人与抄表日期（展示用，不影响计费）
func (b *MerchantBill) SetMeterInfo(reader, date string) {
	b.MeterReader = reader
	b.MeterDate = date
}

// SetWaterReadings 设置水表读数。水费金额在此处四舍五入到元。
func (b *MerchantBill) SetWaterReadings(prev, curr float64) {
	b.PrevWaterReading = prev
	b.CurrWaterReading = curr
	b.WaterUsage = math.Max(curr-prev, 0)
	b.WaterAmount = math.Round(b.WaterUsage * b.WaterUnitPrice)
	b.UpdateTotals()
}

// AddElectricityMeter 追加一个电表。Amount 仅用于行内展示。
func (b *MerchantBill) AddElectricityMeter(meterID string, prev, curr float64) {
	usage := math.Max(curr-prev, 0)
	b.ElectricityMeters = append(b.ElectricityMeters, ElectricityMeter{
		MeterID:     meterID,
		PrevReading: prev,
		CurrReading: curr,
		Usage:       usage,
		Amount:      math.Round(usage * b.ElectricityUnitPrice),
	})
	b.UpdateTotals()
}

// SetAdditionalFees 设置水电人工费与垃圾处理费
func (b *MerchantBill) SetAdditionalFees(laborFee, garbageFee float64) {
	b.LaborFee = laborFee
	b.GarbageFee = garbageFee
	b.UpdateTotals()
}

// UpdateTotals 从原始输入重算所有派生字段。
// 电费规则：先合计总用电量，再乘单价，最后四舍五入到元；
// 不是各电表行内金额（已各自四舍五入）之和。
func (b *MerchantBill) UpdateTotals() {
	var usage float64
	for _, m := range b.ElectricityMeters {
		usage += m.Usage
	}
	b.ElectricityUsage = usage
	b.ElectricityAmount = math.Round(usage * b.ElectricityUnitPrice)
	b.TotalFee = b.WaterAmount + b.ElectricityAmount + b.LaborFee + b.GarbageFee
}

// ElectricityDetails 电表明细文本，供模板 {electricity_details} 占位符使用
func (b *MerchantBill) ElectricityDetails() string {
	if len(b.ElectricityMeters) == 0 {
		return "无电表数据"
	}
	lines := make([]string, 0, len(b.ElectricityMeters))
	for _, m := range b.ElectricityMeters {
		lines = append(lines, fmt.Sprintf("电表%s: 上期%v度, 本期%v度, 用量%v度, 费用%.2f元",
			m.MeterID, m.PrevReading, m.CurrReading, m.Usage, m.Amount))
	}
	return strings.Join(lines, "\n")
}

// BillBatch 一批账单及其运行汇总。只追加，不删除。
type BillBatch struct {
	Bills               []*MerchantBill
	TotalWaterUsage     float64
	TotalElectricUsage  float64
	TotalWaterAmount    float64
	TotalElectricAmount float64
	GrandTotal          float64
}

// Add 追加账单并累加汇总
func (t *BillBatch) Add(bill *MerchantBill) {
	t.TotalWaterUsage += bill.WaterUsage
	t.TotalElectricUsage += bill.ElectricityUsage
	t.TotalWaterAmount += bill.WaterAmount
	t.TotalElectricAmount += bill.ElectricityAmount
	t.GrandTotal += bill.TotalFee
	t.Bills = append(t.Bills, bill)
}
