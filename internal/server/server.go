package server

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/zhengjinwei-ola/waem/internal/config"
)

// Server HTTP服务器：提供上传页面与通知单生成接口
type Server struct {
	router *gin.Engine
	cfg    *config.AppConfig
	log    *zap.Logger
}

// NewServer 创建服务器
func NewServer(cfg *config.AppConfig, logger *zap.Logger) *Server {
	if !cfg.Server.DevMode {
		gin.SetMode(gin.ReleaseMode)
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	s := &Server{
		router: gin.New(),
		cfg:    cfg,
		log:    logger,
	}
	s.router.Use(gin.Recovery())
	s.setupRoutes()
	return s
}

// setupRoutes 设置路由
func (s *Server) setupRoutes() {
	s.router.GET("/", s.handleIndex)
	s.router.POST("/upload", s.handleUpload)
}

// Router 对外暴露路由（测试用）
func (s *Server) Router() http.Handler {
	return s.router
}

// Run 启动服务
func (s *Server) Run() error {
	addr := fmt.Sprintf(":%d", s.cfg.Server.Port)
	s.log.Info("服务启动", zap.String("addr", addr))
	return s.router.Run(addr)
}

func (s *Server) handleIndex(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(indexHTML))
}

const indexHTML = `<!doctype html>
<html lang="zh-CN">
<head>
<meta charset="utf-8"/>
<title>水电表生成系统</title>
<meta name="viewport" content="width=device-width, initial-scale=1"/>
<style>
body{font-family:-apple-system,BlinkMacSystemFont,Segoe UI,Roboto,Helvetica,Arial,sans-serif;padding:24px;}
.card{max-width:680px;margin:0 auto;border:1px solid #e5e7eb;border-radius:12px;padding:24px;box-shadow:0 10px 25px rgba(0,0,0,0.05)}
label{display:block;margin:12px 0 6px;color:#374151}
input[type=file],input[type=text]{width:100%;padding:10px;border:1px solid #d1d5db;border-radius:8px}
button{margin-top:16px;padding:10px 16px;background:#2563eb;color:white;border:none;border-radius:8px;cursor:pointer}
small{color:#6b7280}
</style>
</head>
<body>
<div class="card">
  <h2>水电表生成系统</h2>
  <form action="/upload" method="post" enctype="multipart/form-data">
    <label>选择文件（.xlsx 或 .csv）</label>
    <input name="file" type="file" accept=".xlsx,.csv" required />
    <label>自定义标题（可选，默认：yyyy年MM月抄表计费通知单）</label>
    <input name="custom_title" type="text" placeholder="例如：2025年08月抄表计费通知单"/>
    <label>每页表格数量（默认 3）</label>
    <input name="per_page" type="text" value="3"/>
    <label>抄表人</label>
    <input name="meter_reader" type="text" placeholder="请输入抄表人"/>
    <label>抄表日期</label>
    <input name="meter_date" type="text" placeholder="例如：2025年08月16日"/>
    <button type="submit">生成Word</button>
    <div><small>提示：表头需要与输入框一致或为常见别名。</small></div>
  </form>
</div>
</body>
</html>`
