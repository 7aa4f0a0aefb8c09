package convert

import (
	"context"
	"strings"
	"testing"
)

func TestToPDFMissingConverter(t *testing.T) {
	t.Parallel()

	_, err := ToPDF(context.Background(), "definitely-not-a-real-soffice", "in.docx", t.TempDir())
	if err == nil {
		t.Fatalf("转换器不存在应返回错误")
	}
	if !strings.Contains(err.Error(), "未找到文档转换器") {
		t.Fatalf("错误信息不符: %v", err)
	}
}
