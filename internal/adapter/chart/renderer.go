package chart

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github-resume-analyzer/internal/domain"

	"github.com/wcharczuk/go-chart/v2"
)

// 两张图固定落在 StaticDir 下，每次渲染直接覆盖旧文件，不做版本保留
const (
	LanguageChartFile = "language_chart.png"
	CommitChartFile   = "commit_chart.png"
)

// Renderer 实现了 port.ChartRenderer 接口，负责把分析结果画成 PNG
type Renderer struct {
	dir string
}

// NewRenderer 创建图表渲染器，dir 是图片输出目录 (一般等于静态目录)
func NewRenderer(dir string) *Renderer {
	return &Renderer{dir: dir}
}

// RenderLanguagePie 渲染语言分布饼图
// 语言按名称排序，保证同样的输入画出同样的图
func (r *Renderer) RenderLanguagePie(languages map[string]int) error {
	if len(languages) == 0 {
		return fmt.Errorf("语言分布为空，无法渲染饼图")
	}

	names := make([]string, 0, len(languages))
	for name := range languages {
		names = append(names, name)
	}
	sort.Strings(names)

	values := make([]chart.Value, 0, len(names))
	for _, name := range names {
		values = append(values, chart.Value{
			Label: name,
			Value: float64(languages[name]),
		})
	}

	pie := chart.PieChart{
		Title:  "Language Distribution",
		Width:  512,
		Height: 512,
		Values: values,
	}

	return r.renderTo(LanguageChartFile, func(f *os.File) error {
		return pie.Render(chart.PNG, f)
	})
}

// RenderCommitBars 渲染近 6 个月的提交柱状图
// months 已经补零，固定 6 条柱子，没提交的月份画 0 高度
func (r *Renderer) RenderCommitBars(months []domain.MonthCount) error {
	bars := make([]chart.Value, 0, len(months))
	maxCount := 1
	for _, m := range months {
		bars = append(bars, chart.Value{
			Label: m.Month,
			Value: float64(m.Count),
		})
		if m.Count > maxCount {
			maxCount = m.Count
		}
	}

	bar := chart.BarChart{
		Title:    "Commit Activity (Last 6 Months)",
		Width:    720,
		Height:   420,
		BarWidth: 60,
		Bars:     bars,
		YAxis: chart.YAxis{
			// 显式给定值域，全零月份也能正常渲染
			Range: &chart.ContinuousRange{Min: 0, Max: float64(maxCount)},
		},
	}

	return r.renderTo(CommitChartFile, func(f *os.File) error {
		return bar.Render(chart.PNG, f)
	})
}

// renderTo 确保输出目录存在后把图渲染进目标文件
func (r *Renderer) renderTo(name string, render func(*os.File) error) error {
	if err := os.MkdirAll(r.dir, 0o755); err != nil {
		return fmt.Errorf("创建图表目录失败: %w", err)
	}

	path := filepath.Join(r.dir, name)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("创建图表文件失败: %w", err)
	}
	defer f.Close()

	if err := render(f); err != nil {
		return fmt.Errorf("渲染图表 %s 失败: %w", name, err)
	}
	return nil
}
