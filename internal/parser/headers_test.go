package parser

import (
	"strings"
	"testing"
)

func standardHeaders() []string {
	return []string{
		"铺面编号", "店铺名称",
		"电表1上期读数", "电表1本期读数",
		"电表2上期读数", "电表2本期读数",
		"上期水表读数", "本期水表读数",
		"水费单价", "电费单价",
		"水电人工费", "垃圾处理费",
	}
}

func TestResolveHeaders_Standard(t *testing.T) {
	t.Parallel()

	cols, err := ResolveHeaders(standardHeaders(), "")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if cols.ShopCode != 0 || cols.MerchantName != 1 {
		t.Fatalf("base columns: code=%d name=%d", cols.ShopCode, cols.MerchantName)
	}
	if cols.WaterUnitPrice != 8 || cols.ElectricityUnitPrice != 9 {
		t.Fatalf("price columns: water=%d electric=%d", cols.WaterUnitPrice, cols.ElectricityUnitPrice)
	}
	if len(cols.MeterColumns) != 2 {
		t.Fatalf("meter pairs want=2 got=%d", len(cols.MeterColumns))
	}
	if cols.MeterColumns[0] != (MeterColumnPair{Prev: 2, Curr: 3}) {
		t.Fatalf("meter1 pair: %+v", cols.MeterColumns[0])
	}
	if cols.MeterColumns[1] != (MeterColumnPair{Prev: 4, Curr: 5}) {
		t.Fatalf("meter2 pair: %+v", cols.MeterColumns[1])
	}
}

// 表头带空白修饰时仍能定位列
func TestResolveHeaders_DecoratedHeader(t *testing.T) {
	t.Parallel()

	headers := standardHeaders()
	headers[1] = " 店铺 名称 "
	headers[8] = "водоснабжение 水费单价（元/吨）"

	cols, err := ResolveHeaders(headers, "")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if cols.MerchantName != 1 {
		t.Fatalf("merchant name column want=1 got=%d", cols.MerchantName)
	}
	if cols.WaterUnitPrice != 8 {
		t.Fatalf("water price column want=8 got=%d", cols.WaterUnitPrice)
	}
}

func TestResolveHeaders_MissingColumn(t *testing.T) {
	t.Parallel()

	headers := standardHeaders()
	headers[10] = "其他费用" // 去掉水电人工费

	_, err := ResolveHeaders(headers, "")
	if err == nil {
		t.Fatalf("expected error for missing column")
	}
	if !strings.Contains(err.Error(), HeaderLaborFee) {
		t.Fatalf("error should name the missing column: %v", err)
	}
}

// 电表列发现遇到缺口即停止：缺电表2时电表3不再被发现
func TestFindMeterColumns_StopsAtGap(t *testing.T) {
	t.Parallel()

	headers := []string{
		"铺面编号", "店铺名称",
		"电表1上期读数", "电表1本期读数",
		"电表3上期读数", "电表3本期读数",
		"上期水表读数", "本期水表读数",
		"水费单价", "电费单价", "水电人工费", "垃圾处理费",
	}

	cols, err := ResolveHeaders(headers, "")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if len(cols.MeterColumns) != 1 {
		t.Fatalf("meter pairs want=1 got=%d", len(cols.MeterColumns))
	}
}

// 必需列定位到的电表1列对不能和发现逻辑产生重复
func TestResolveHeaders_Meter1NotDuplicated(t *testing.T) {
	t.Parallel()

	cols, err := ResolveHeaders(standardHeaders(), "")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	seen := map[MeterColumnPair]bool{}
	for _, p := range cols.MeterColumns {
		if seen[p] {
			t.Fatalf("duplicated meter pair: %+v", p)
		}
		seen[p] = true
	}
}

func TestResolveHeaders_NoMeterColumns(t *testing.T) {
	t.Parallel()

	headers := []string{
		"铺面编号", "店铺名称",
		"上期水表读数", "本期水表读数",
		"水费单价", "电费单价", "水电人工费", "垃圾处理费",
	}

	_, err := ResolveHeaders(headers, "")
	if err == nil {
		t.Fatalf("expected error when no meter columns exist")
	}
}
