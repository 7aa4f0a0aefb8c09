package parser

import (
	"fmt"
	"regexp"
	"strings"
)

// 必需表头的关键字，采用模糊包含匹配（表头可带额外修饰文字）
const (
	HeaderShopCode             = "铺面编号"
	HeaderMerchantName         = "店铺名称"
	HeaderPrevWaterReading     = "上期水表读数"
	HeaderCurrWaterReading     = "本期水表读数"
	HeaderWaterUnitPrice       = "水费单价"
	HeaderElectricityUnitPrice = "电费单价"
	HeaderLaborFee             = "水电人工费"
	HeaderGarbageFee           = "垃圾处理费"

	// DefaultMeterPrefix 电表列前缀，电表列形如 电表1上期读数/电表1本期读数
	DefaultMeterPrefix = "电表"
)

// MeterColumnPair 一个电表的（上期读数, 本期读数）列索引
type MeterColumnPair struct {
	Prev int
	Curr int
}

// HeaderColumnMap 表头解析结果：逻辑字段到列索引的只读映射
type HeaderColumnMap struct {
	ShopCode             int
	MerchantName         int
	PrevWaterReading     int
	CurrWaterReading     int
	WaterUnitPrice       int
	ElectricityUnitPrice int
	LaborFee             int
	GarbageFee           int
	// MeterColumns 按电表序号排列的列对，至少一对
	MeterColumns []MeterColumnPair
}

var whitespaceRe = regexp.MustCompile(`\s+`)

// normalizeHeader 规范化表头：去掉所有空白并小写化
func normalizeHeader(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, "\n", "")
	s = strings.ReplaceAll(s, "\r", "")
	s = strings.ReplaceAll(s, "\t", "")
	s = whitespaceRe.ReplaceAllString(s, "")
	return strings.ToLower(s)
}

// findColumn 在表头中查找包含 keyword 的列，找不到返回 -1
func findColumn(normalized []string, keyword string) int {
	want := normalizeHeader(keyword)
	for i, h := range normalized {
		if strings.Contains(h, want) {
			return i
		}
	}
	return -1
}

// requireColumn 同 findColumn，找不到时返回带列名的错误
func requireColumn(normalized []string, keyword string) (int, error) {
	idx := findColumn(normalized, keyword)
	if idx < 0 {
		return 0, fmt.Errorf("找不到%s列", keyword)
	}
	return idx, nil
}

// ResolveHeaders 解析表头行，定位所有必需列并发现全部电表列对。
// meterPrefix 为空时使用 DefaultMeterPrefix。
func ResolveHeaders(headers []string, meterPrefix string) (*HeaderColumnMap, error) {
	if meterPrefix == "" {
		meterPrefix = DefaultMeterPrefix
	}

	normalized := make([]string, len(headers))
	for i, h := range headers {
		normalized[i] = normalizeHeader(h)
	}

	cols := &HeaderColumnMap{}
	var err error
	if cols.ShopCode, err = requireColumn(normalized, HeaderShopCode); err != nil {
		return nil, err
	}
	if cols.MerchantName, err = requireColumn(normalized, HeaderMerchantName); err != nil {
		return nil, err
	}
	meter1Prev, err := requireColumn(normalized, fmt.Sprintf("%s1上期读数", meterPrefix))
	if err != nil {
		return nil, err
	}
	meter1Curr, err := requireColumn(normalized, fmt.Sprintf("%s1本期读数", meterPrefix))
	if err != nil {
		return nil, err
	}
	if cols.PrevWaterReading, err = requireColumn(normalized, HeaderPrevWaterReading); err != nil {
		return nil, err
	}
	if cols.CurrWaterReading, err = requireColumn(normalized, HeaderCurrWaterReading); err != nil {
		return nil, err
	}
	if cols.WaterUnitPrice, err = requireColumn(normalized, HeaderWaterUnitPrice); err != nil {
		return nil, err
	}
	if cols.ElectricityUnitPrice, err = requireColumn(normalized, HeaderElectricityUnitPrice); err != nil {
		return nil, err
	}
	if cols.LaborFee, err = requireColumn(normalized, HeaderLaborFee); err != nil {
		return nil, err
	}
	if cols.GarbageFee, err = requireColumn(normalized, HeaderGarbageFee); err != nil {
		return nil, err
	}

	meterCols, err := findMeterColumns(normalized, meterPrefix)
	if err != nil {
		return nil, err
	}
	// 电表1优先；已通过必需列定位到的列对若未被发现逻辑覆盖，插到最前
	known := MeterColumnPair{Prev: meter1Prev, Curr: meter1Curr}
	found := false
	for _, p := range meterCols {
		if p == known {
			found = true
			break
		}
	}
	if !found {
		meterCols = append([]MeterColumnPair{known}, meterCols...)
	}
	cols.MeterColumns = meterCols

	return cols, nil
}

// findMeterColumns 从序号1开始逐个查找 {prefix}{N}上期读数/{prefix}{N}本期读数 列对，
// 任一列缺失即停止
func findMeterColumns(normalized []string, meterPrefix string) ([]MeterColumnPair, error) {
	var columns []MeterColumnPair
	for meterID := 1; ; meterID++ {
		prevIdx := findColumn(normalized, fmt.Sprintf("%s%d上期读数", meterPrefix, meterID))
		currIdx := findColumn(normalized, fmt.Sprintf("%s%d本期读数", meterPrefix, meterID))
		if prevIdx < 0 || currIdx < 0 {
			break
		}
		columns = append(columns, MeterColumnPair{Prev: prevIdx, Curr: currIdx})
	}

	if len(columns) == 0 {
		return nil, fmt.Errorf("未找到任何电表列，请确保表头包含'%s1上期读数'和'%s1本期读数'列", meterPrefix, meterPrefix)
	}
	return columns, nil
}
