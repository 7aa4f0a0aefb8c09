// Package convert 调用 LibreOffice 把生成的 docx 转为 PDF。
// 转换器不存在时直接报错，docx 输出不受影响。
package convert

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// DefaultSofficePath LibreOffice 可执行文件的默认名称
const DefaultSofficePath = "soffice"

// ToPDF 把 docxPath 转换为 PDF，写入 outDir，返回生成的 PDF 路径。
// sofficePath 为空时使用 DefaultSofficePath。
func ToPDF(ctx context.Context, sofficePath, docxPath, outDir string) (string, error) {
	if sofficePath == "" {
		sofficePath = DefaultSofficePath
	}
	if _, err := exec.LookPath(sofficePath); err != nil {
		return "", fmt.Errorf("未找到文档转换器 %s: %w", sofficePath, err)
	}

	cmd := exec.CommandContext(ctx, sofficePath, "--headless", "--convert-to", "pdf", "--outdir", outDir, docxPath)
	if out, err := cmd.CombinedOutput(); err != nil {
		return "", fmt.Errorf("PDF转换失败: %w: %s", err, strings.TrimSpace(string(out)))
	}

	base := strings.TrimSuffix(filepath.Base(docxPath), filepath.Ext(docxPath))
	pdfPath := filepath.Join(outDir, base+".pdf")
	if _, err := os.Stat(pdfPath); err != nil {
		return "", fmt.Errorf("转换完成但未找到输出文件 %s: %w", pdfPath, err)
	}
	return pdfPath, nil
}
