package web

import (
	"embed"
	"html/template"
	"net/http"

	"github-resume-analyzer/internal/domain"
	"github-resume-analyzer/internal/port"

	"github.com/gin-gonic/gin"
)

//go:embed templates/index.html
var templateFS embed.FS

// invalidProfileMessage 对用户只暴露一条统一的错误文案，
// 不区分 "用户不存在" 和 "接口限流" (与上游错误折叠策略一致)
const invalidProfileMessage = "Invalid GitHub profile or rate limit exceeded."

// viewModel 渲染 index.html 用的视图模型
// HasReport 为 false 时只显示输入表单 (首页和错误页)
type viewModel struct {
	HasReport    bool
	Username     string
	Score        int
	Grade        string
	Strengths    []string
	Suggestions  []string
	Summary      string
	TotalCommits int
	ShowCharts   bool
	Error        string
}

// Handler 把分析管线挂到 HTTP 表单上
type Handler struct {
	analyzer port.Analyzer
}

// NewHandler 创建新的 web 处理器
func NewHandler(analyzer port.Analyzer) *Handler {
	return &Handler{analyzer: analyzer}
}

// NewRouter 组装 gin 路由：首页、分析表单、静态图表文件
func NewRouter(analyzer port.Analyzer, staticDir string) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	tmpl := template.Must(template.ParseFS(templateFS, "templates/*.html"))
	r.SetHTMLTemplate(tmpl)
	r.Static("/static", staticDir)

	h := NewHandler(analyzer)
	r.GET("/", h.Home)
	r.POST("/analyze", h.Analyze)

	return r
}

// Home 返回空的初始视图
func (h *Handler) Home(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", viewModel{})
}

// Analyze 处理分析请求：表单字段 github_url 可以是 URL 也可以是裸用户名
// 分析失败时用错误文案整体替换报告，不返回半成品
func (h *Handler) Analyze(c *gin.Context) {
	rawInput := c.PostForm("github_url")

	report, err := h.analyzer.Analyze(c.Request.Context(), rawInput)
	if err != nil {
		c.HTML(http.StatusOK, "index.html", viewModel{
			Error: invalidProfileMessage,
		})
		return
	}

	c.HTML(http.StatusOK, "index.html", viewFromReport(report))
}

// viewFromReport 把领域报告映射成视图模型
func viewFromReport(report *domain.Report) viewModel {
	return viewModel{
		HasReport:    true,
		Username:     report.Username,
		Score:        report.Score,
		Grade:        report.Grade,
		Strengths:    report.Strengths,
		Suggestions:  report.Suggestions,
		Summary:      report.Summary,
		TotalCommits: report.TotalCommits,
		ShowCharts:   true,
	}
}
