package web

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github-resume-analyzer/internal/common"
	"github-resume-analyzer/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockAnalyzer 模拟Analyzer接口
type MockAnalyzer struct {
	mock.Mock
}

func (m *MockAnalyzer) Analyze(ctx context.Context, rawInput string) (*domain.Report, error) {
	args := m.Called(ctx, rawInput)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Report), args.Error(1)
}

func newTestRouter(t *testing.T, analyzer *MockAnalyzer) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	return NewRouter(analyzer, t.TempDir())
}

func postAnalyze(router *gin.Engine, githubURL string) *httptest.ResponseRecorder {
	form := url.Values{"github_url": {githubURL}}
	req := httptest.NewRequest(http.MethodPost, "/analyze", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestHome_空视图(t *testing.T) {
	router := newTestRouter(t, new(MockAnalyzer))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `action="/analyze"`)
	// 初始页面没有报告，也没有错误
	assert.NotContains(t, w.Body.String(), "Report for")
	assert.NotContains(t, w.Body.String(), invalidProfileMessage)
}

func TestAnalyze_渲染报告(t *testing.T) {
	analyzer := new(MockAnalyzer)
	analyzer.On("Analyze", mock.Anything, "https://github.com/alice").Return(&domain.Report{
		Username:     "alice",
		Score:        95,
		Grade:        "A+ (Strong Hiring Signal)",
		Strengths:    []string{"Good number of repositories."},
		Suggestions:  []string{"Improve project quality and promote them to gain stars."},
		Summary:      "Recruiter Evaluation Report",
		TotalCommits: 25,
	}, nil)

	router := newTestRouter(t, analyzer)
	w := postAnalyze(router, "https://github.com/alice")

	assert.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "Report for alice")
	assert.Contains(t, body, "95/100")
	assert.Contains(t, body, "A+ (Strong Hiring Signal)")
	assert.Contains(t, body, "Good number of repositories.")
	assert.Contains(t, body, "language_chart.png")
	assert.Contains(t, body, "commit_chart.png")
}

func TestAnalyze_失败渲染错误文案(t *testing.T) {
	analyzer := new(MockAnalyzer)
	analyzer.On("Analyze", mock.Anything, "ghost").
		Return(nil, common.NewError(common.ErrCodeInvalidProfile, "GitHub 档案查询失败"))

	router := newTestRouter(t, analyzer)
	w := postAnalyze(router, "ghost")

	assert.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	// 错误整体替换报告，不泄露上游细节
	assert.Contains(t, body, invalidProfileMessage)
	assert.NotContains(t, body, "Report for")
	assert.NotContains(t, body, "GitHub 档案查询失败")
}

func TestAnalyze_内部错误同样只给统一文案(t *testing.T) {
	analyzer := new(MockAnalyzer)
	analyzer.On("Analyze", mock.Anything, "alice").Return(nil, errors.New("boom"))

	router := newTestRouter(t, analyzer)
	w := postAnalyze(router, "alice")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), invalidProfileMessage)
}

func TestStatic_路由已挂载(t *testing.T) {
	router := newTestRouter(t, new(MockAnalyzer))

	// 目录是空的，文件不存在返回 404，但路由本身必须已注册
	req := httptest.NewRequest(http.MethodGet, "/static/language_chart.png", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
