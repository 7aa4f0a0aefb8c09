package parser

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/zhengjinwei-ola/waem/internal/model"
)

// ReadDataFile 按扩展名分发读取数据文件。支持 .xlsx 和 .csv，其余为硬错误。
func ReadDataFile(path, meterPrefix string) ([]*model.MerchantBill, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx":
		return ReadExcelFile(path, meterPrefix)
	case ".csv":
		return ReadCSVFile(path, meterPrefix)
	default:
		return nil, fmt.Errorf("不支持的文件格式: %s", filepath.Ext(path))
	}
}
