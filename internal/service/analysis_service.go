package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github-resume-analyzer/internal/common"
	"github-resume-analyzer/internal/domain"
	"github-resume-analyzer/internal/port"
	"github-resume-analyzer/internal/scorer"
)

// chartMonths 柱状图固定显示最近 6 个自然月
const chartMonths = 6

// 四个分数档位对应的评级标签
const (
	gradeTopTier   = "A+ (Strong Hiring Signal)"
	gradeHigh      = "A (Highly Competitive)"
	gradeModerate  = "B (Moderate Hiring Signal)"
	gradeNeedsWork = "C (Needs Optimization)"
)

// AnalysisService 处理完整的档案分析管线
// 流程：解析用户名 → 查缓存 → 拉档案 → 打基础分 → 采样提交 →
// 活跃度加分 → 评级和评语 → 画图 → 写缓存
type AnalysisService struct {
	fetcher port.ProfileFetcher
	sampler port.ActivitySampler
	cache   port.ReportCache
	charts  port.ChartRenderer
	nowFunc func() time.Time
}

// NewAnalysisService 创建新的分析服务
func NewAnalysisService(
	fetcher port.ProfileFetcher,
	sampler port.ActivitySampler,
	cache port.ReportCache,
	charts port.ChartRenderer,
) *AnalysisService {
	return &AnalysisService{
		fetcher: fetcher,
		sampler: sampler,
		cache:   cache,
		charts:  charts,
		nowFunc: time.Now, // 便于测试注入当前时间
	}
}

// Analyze 分析一个 GitHub 档案 (URL 或裸用户名)，返回完整报告
// 必选阶段 (档案、仓库列表) 失败直接中止；
// 增强阶段 (提交采样、图表) 失败只降级，不影响报告交付
func (s *AnalysisService) Analyze(ctx context.Context, rawInput string) (*domain.Report, error) {
	username := domain.ResolveUsername(rawInput)
	if username == "" {
		return nil, common.NewError(common.ErrCodeInvalidProfile, "无法从输入中解析出用户名")
	}

	// 新鲜窗口内直接复用缓存的报告
	if report, ok := s.cache.Get(username); ok {
		return report, nil
	}

	profile, repos, err := s.fetcher.FetchProfile(ctx, username)
	if err != nil {
		return nil, err
	}

	languages := languageDistribution(repos)

	// 基础分：五条静态规则
	score, strengths, suggestions := scorer.Calculate(repos, profile)

	// 提交活跃度采样 (fail-soft：降级只记日志，零活跃度继续出报告)
	outcome := s.sampler.Sample(ctx, username, repos)
	if outcome.Degraded {
		log.Printf("[Analyzer] ⚠️ 用户 %s 的提交采样部分降级: %v", username, outcome.Cause)
	}
	activity := outcome.Activity

	// 第六条：近期提交加分
	if bonus, ok := scorer.ActivityBonus(activity.TotalCommits); ok {
		score += bonus
		strengths = append(strengths, scorer.StrengthCommits)
	} else {
		suggestions = append(suggestions, scorer.SuggestCommits)
	}
	score = scorer.Clamp(score)

	now := s.nowFunc().UTC()
	report := &domain.Report{
		Username:     username,
		Score:        score,
		Grade:        gradeFor(score),
		Strengths:    strengths,
		Suggestions:  suggestions,
		Summary:      buildSummary(score, activity.TotalCommits),
		TotalCommits: activity.TotalCommits,
		Monthly:      activity.Monthly,
		Months:       lastMonths(now, activity.Monthly),
		Languages:    languages,
		GeneratedAt:  now,
	}

	s.renderCharts(report)

	s.cache.Put(username, report)
	return report, nil
}

// renderCharts 触发图表副作用：有语言数据才画饼图，柱状图永远画
// 渲染失败不属于本层契约，记日志后继续
func (s *AnalysisService) renderCharts(report *domain.Report) {
	if s.charts == nil {
		return
	}
	if len(report.Languages) > 0 {
		if err := s.charts.RenderLanguagePie(report.Languages); err != nil {
			log.Printf("[Analyzer] ⚠️ 渲染语言饼图失败: %v", err)
		}
	}
	if err := s.charts.RenderCommitBars(report.Months); err != nil {
		log.Printf("[Analyzer] ⚠️ 渲染提交柱状图失败: %v", err)
	}
}

// languageDistribution 统计前 10 个仓库的语言分布，语言为空的不计
func languageDistribution(repos []*domain.RepoSummary) map[string]int {
	languages := make(map[string]int)
	for _, repo := range repos {
		if repo.Language != "" {
			languages[repo.Language]++
		}
	}
	return languages
}

// gradeFor 按固定分数档位映射评级标签
func gradeFor(score int) string {
	switch {
	case score >= 85:
		return gradeTopTier
	case score >= 70:
		return gradeHigh
	case score >= 60:
		return gradeModerate
	default:
		return gradeNeedsWork
	}
}

// buildSummary 生成确定性的招聘官评语，纯模板填充，无外部依赖
func buildSummary(score, totalCommits int) string {
	return fmt.Sprintf(`Recruiter Evaluation Report

Grade: %s
Portfolio Score: %d/100

Recent Commit Activity: %d commits in last 6 months

Recommendation:
Maintain consistent commits across months,
improve documentation depth,
and showcase impactful projects to improve hiring visibility.
`, gradeFor(score), score, totalCommits)
}

// lastMonths 生成最近 6 个自然月的坐标轴，histogram 里缺的月份补零
// 以当月 1 号为锚点回退，避免月底日期跨月步进时跳月
func lastMonths(now time.Time, monthly map[string]int) []domain.MonthCount {
	anchor := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)

	months := make([]domain.MonthCount, 0, chartMonths)
	for i := chartMonths - 1; i >= 0; i-- {
		label := anchor.AddDate(0, -i, 0).Format("2006-01")
		months = append(months, domain.MonthCount{
			Month: label,
			Count: monthly[label],
		})
	}
	return months
}
