package currency

import (
	"math"
	"strings"
)

// 数字与单位阶梯。单位从“分”开始向高位排列，长度足以覆盖亿级金额。
var (
	upperDigits = []string{"零", "壹", "贰", "叁", "肆", "伍", "陆", "柒", "捌", "玖"}
	upperUnits  = []string{"分", "角", "元", "拾", "佰", "仟", "万", "拾", "佰", "仟", "亿", "拾", "佰", "仟", "万"}
)

// Upper 将金额转换为中文大写人民币（精确到分）。
// 规则：整数金额以“整”结尾；元/万/亿 的位置标记即使该位为零也要保留一次，
// 连续的“零”合并为一个，末尾多余的“零”去掉。
func Upper(amount float64) string {
	cents := int64(math.Round(amount * 100))
	if cents == 0 {
		return "零元整"
	}

	var parts []string
	containsUnit := func(unit string) bool {
		for _, p := range parts {
			if strings.Contains(p, unit) {
				return true
			}
		}
		return false
	}

	lastZero := false
	unitIdx := 0
	for num := cents; num > 0 && unitIdx < len(upperUnits); num /= 10 {
		d := int(num % 10)
		unit := upperUnits[unitIdx]
		if d == 0 {
			// 元/万/亿 是分段标记，位为零时也要占位一次
			if (unit == "元" || unit == "万" || unit == "亿") && !containsUnit(unit) {
				parts = append(parts, unit)
			}
			if !lastZero {
				parts = append(parts, "零")
			}
			lastZero = true
		} else {
			parts = append(parts, upperDigits[d]+unit)
			lastZero = false
		}
		unitIdx++
	}

	// 低位在前，反转成高位在前
	for i, j := 0, len(parts)-1; i < j; i, j = i+1, j-1 {
		parts[i], parts[j] = parts[j], parts[i]
	}
	s := strings.Join(parts, "")

	// 清理多余的零
	for strings.Contains(s, "零零") {
		s = strings.ReplaceAll(s, "零零", "零")
	}
	s = strings.ReplaceAll(s, "零亿", "亿")
	s = strings.ReplaceAll(s, "零万", "万")
	s = strings.ReplaceAll(s, "零元", "元")
	s = strings.TrimSuffix(s, "零")
	if !strings.Contains(s, "角") && !strings.Contains(s, "分") {
		s += "整"
	}
	return s
}
