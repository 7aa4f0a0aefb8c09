package server

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/zhengjinwei-ola/waem/internal/document"
	"github.com/zhengjinwei-ola/waem/internal/parser"
)

const docxMIME = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"

// handleUpload 接收表格文件并返回生成的通知单docx
func (s *Server) handleUpload(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		c.String(http.StatusBadRequest, "上传失败：未收到文件")
		return
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if ext != ".xlsx" && ext != ".csv" {
		c.String(http.StatusBadRequest, "不支持的文件格式: %s", ext)
		return
	}

	// 保留扩展名落盘，解析按扩展名分流
	tmpPath := filepath.Join(os.TempDir(), "waem_upload_"+uuid.NewString()+ext)
	if err := c.SaveUploadedFile(file, tmpPath); err != nil {
		c.String(http.StatusInternalServerError, "保存上传文件失败")
		return
	}
	defer os.Remove(tmpPath)

	s.log.Info("收到上传文件",
		zap.String("filename", file.Filename),
		zap.Int64("size", file.Size))

	bills, err := parser.ReadDataFile(tmpPath, s.cfg.Document.MeterPrefix)
	if err != nil {
		c.String(http.StatusBadRequest, "生成失败：%v", err)
		return
	}

	meterReader := strings.TrimSpace(c.PostForm("meter_reader"))
	meterDate := strings.TrimSpace(c.PostForm("meter_date"))
	for _, bill := range bills {
		bill.SetMeterInfo(meterReader, meterDate)
	}

	customTitle := strings.TrimSpace(c.PostForm("custom_title"))
	perPage, err := strconv.Atoi(strings.TrimSpace(c.DefaultPostForm("per_page", "3")))
	if err != nil || perPage < 0 {
		perPage = s.cfg.Document.PerPage
	}

	data, err := document.GenerateNotices(bills, document.GenerateOptions{
		CustomTitle: customTitle,
		PerPage:     perPage,
	})
	if err != nil {
		c.String(http.StatusInternalServerError, "生成失败：%v", err)
		return
	}

	s.log.Info("通知单生成完成",
		zap.Int("bills", len(bills)),
		zap.Int("bytes", len(data)))

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", downloadName(customTitle)))
	c.Data(http.StatusOK, docxMIME, data)
}

// downloadName 下载文件名：自定义标题去掉文件名非法字符，
// 未填标题时用当前年月
func downloadName(customTitle string) string {
	if customTitle == "" {
		now := time.Now()
		return fmt.Sprintf("抄表计费通知单_%d%02d.docx", now.Year(), int(now.Month()))
	}
	clean := customTitle
	for _, r := range []string{" ", "/", "\\", ":", "*", "?", "\"", "<", ">", "|"} {
		clean = strings.ReplaceAll(clean, r, "_")
	}
	return clean + ".docx"
}
