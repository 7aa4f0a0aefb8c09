package parser

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/zhengjinwei-ola/waem/internal/model"
)

// 数据行至少要有的基础列数；更短的行按残缺行跳过
const minCSVFields = 5

// ReadCSVFile 读取逗号分隔文本文件，首行作为表头
func ReadCSVFile(path, meterPrefix string) ([]*model.MerchantBill, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("无法打开CSV文件 %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("读取CSV文件 %s 失败: %w", path, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("CSV中缺少表头行")
	}

	cols, err := ResolveHeaders(records[0], meterPrefix)
	if err != nil {
		return nil, err
	}

	var bills []*model.MerchantBill
	for _, row := range records[1:] {
		if len(row) < minCSVFields {
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
