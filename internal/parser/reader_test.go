package parser

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"
)

func writeTestWorkbook(t *testing.T, rows [][]interface{}) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			t.Fatalf("cell name: %v", err)
		}
		if err := f.SetSheetRow("Sheet1", cell, &row); err != nil {
			t.Fatalf("set row: %v", err)
		}
	}

	path := filepath.Join(t.TempDir(), "bills.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("save workbook: %v", err)
	}
	return path
}

func TestReadExcelFile(t *testing.T) {
	t.Parallel()

	path := writeTestWorkbook(t, [][]interface{}{
		{"铺面编号", "店铺名称", "电表1上期读数", "电表1本期读数", "电表2上期读数", "电表2本期读数",
			"上期水表读数", "本期水表读数", "水费单价", "电费单价", "水电人工费", "垃圾处理费"},
		{"A-01", "张记小吃", 100, 180, 200, 230, 10, 25, 3.5, 1.2, 50, 30},
		{"A-02", "", 1, 2, 0, 0, 1, 2, 1, 1, 0, 0}, // 店铺名称为空，跳过
		{"A-03", "李记百货", 0, 0, 0, 0, 30, 42, 2.8, 0.98, 50, 30},
	})

	bills, err := ReadExcelFile(path, "")
	if err != nil {
		t.Fatalf("read excel: %v", err)
	}
	if len(bills) != 2 {
		t.Fatalf("bills want=2 got=%d", len(bills))
	}

	first := bills[0]
	if first.MerchantName != "张记小吃" {
		t.Fatalf("first merchant: %q", first.MerchantName)
	}
	if len(first.ElectricityMeters) != 2 {
		t.Fatalf("first meters want=2 got=%d", len(first.ElectricityMeters))
	}
	// 电量 80+30=110，电费 round(110*1.2)=132
	if first.ElectricityUsage != 110 || first.ElectricityAmount != 132 {
		t.Fatalf("first electricity: usage=%v amount=%v", first.ElectricityUsage, first.ElectricityAmount)
	}

	// 第二个有效商户没有任何电表读数
	if len(bills[1].ElectricityMeters) != 0 {
		t.Fatalf("second meters want=0 got=%d", len(bills[1].ElectricityMeters))
	}
}

func TestReadExcelFile_MissingHeaderColumn(t *testing.T) {
	t.Parallel()

	path := writeTestWorkbook(t, [][]interface{}{
		{"铺面编号", "店铺名称", "上期水表读数", "本期水表读数", "水费单价", "电费单价", "水电人工费", "垃圾处理费"},
		{"A-01", "张记小吃", 10, 25, 3.5, 1.2, 50, 30},
	})

	if _, err := ReadExcelFile(path, ""); err == nil {
		t.Fatalf("expected missing meter column error")
	}
}

func TestReadCSVFile(t *testing.T) {
	t.Parallel()

	content := "铺面编号,店铺名称,电表1上期读数,电表1本期读数,上期水表读数,本期水表读数,水费单价,电费单价,水电人工费,垃圾处理费\n" +
		"A-01,张记小吃,100,180,10,25,3.5,1.2,50,30\n" +
		"短行\n" +
		"A-02,李记百货,0,66,30,42,2.8,0.98,50,30\n"

	path := filepath.Join(t.TempDir(), "bills.csv")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write csv: %v", err)
	}

	bills, err := ReadCSVFile(path, "")
	if err != nil {
		t.Fatalf("read csv: %v", err)
	}
	if len(bills) != 2 {
		t.Fatalf("bills want=2 got=%d", len(bills))
	}
	if bills[1].ElectricityUsage != 66 {
		t.Fatalf("second usage want=66 got=%v", bills[1].ElectricityUsage)
	}
}

// 所有数据行都被跳过时整体失败
func TestReadExcelFile_AllRowsSkipped(t *testing.T) {
	t.Parallel()

	path := writeTestWorkbook(t, [][]interface{}{
		{"铺面编号", "店铺名称", "电表1上期读数", "电表1本期读数",
			"上期水表读数", "本期水表读数", "水费单价", "电费单价", "水电人工费", "垃圾处理费"},
		{"A-01", "", 100, 180, 10, 25, 3.5, 1.2, 50, 30},
		{"A-02", "  ", 0, 66, 30, 42, 2.8, 0.98, 50, 30},
	})

	_, err := ReadExcelFile(path, "")
	if err == nil {
		t.Fatalf("expected error when every row is skipped")
	}
	if !strings.Contains(err.Error(), "有效的数据行") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestReadDataFile_UnsupportedExtension(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "bills.txt")
	if err := os.WriteFile(path, []byte("x"), 0644); err != nil {
		t.Fatalf("write file: %v", err)
	}

	if _, err := ReadDataFile(path, ""); err == nil {
		t.Fatalf("expected unsupported format error")
	}
}

func TestReadDataFile_DispatchByExtension(t *testing.T) {
	t.Parallel()

	content := "铺面编号,店铺名称,电表1上期读数,电表1本期读数,上期水表读数,本期水表读数,水费单价,电费单价,水电人工费,垃圾处理费\n" +
		"A-01,张记小吃,100,180,10,25,3.5,1.2,50,30\n"
	path := filepath.Join(t.TempDir(), "bills.CSV")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write csv: %v", err)
	}

	bills, err := ReadDataFile(path, "")
	if err != nil {
		t.Fatalf("read data file: %v", err)
	}
	if len(bills) != 1 {
		t.Fatalf("bills want=1 got=%d", len(bills))
	}
}
