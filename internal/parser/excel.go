package parser

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/zhengjinwei-ola/waem/internal/model"
)

// ReadExcelFile 读取 xlsx 文件的第一个工作表，首行作为表头
func ReadExcelFile(path, meterPrefix string) ([]*model.MerchantBill, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("无法打开Excel文件 %s: %w", path, err)
	}
	defer f.Close()

	return readWorkbook(f, meterPrefix)
}

func readWorkbook(f *excelize.File, meterPrefix string) ([]*model.MerchantBill, error) {
	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("Excel中没有工作表")
	}
	sheetName := sheets[0]

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("无法读取工作表 %s: %w", sheetName, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("Excel中缺少表头行")
	}

	cols, err := ResolveHeaders(rows[0], meterPrefix)
	if err != nil {
		return nil, err
	}

	var bills []*model.MerchantBill
	for _, row := range rows[1:] {
		if len(row) == 0 {
			continue
		}
		if bill := ParseRow(row, cols); bill != nil {
			bills = append(bills, bill)
		}
	}
	if len(bills) == 0 {
		return nil, fmt.Errorf("表格中没有有效的数据行")
	}
	return bills, nil
}
