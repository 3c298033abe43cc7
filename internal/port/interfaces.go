package port

import (
	"context"

	"github-resume-analyzer/internal/domain"
)

// ProfileFetcher (侦察兵): 负责从 GitHub 拉取用户档案和仓库列表
// 档案查询失败或仓库列表失败都视为 "无效档案"，整个分析中止
type ProfileFetcher interface {
	// FetchProfile 返回档案和前 10 个仓库摘要
	FetchProfile(ctx context.Context, username string) (*domain.Profile, []*domain.RepoSummary, error)
}

// CommitLister 负责拉取单个仓库最近的提交 (每次最多 50 条)
type CommitLister interface {
	ListRecentCommits(ctx context.Context, owner, repo string) ([]*domain.Commit, error)
}

// ActivitySampler (采样器): 聚合近 180 天的提交活跃度
// 对外永不失败：任何仓库级错误都降级为零贡献
type ActivitySampler interface {
	Sample(ctx context.Context, username string, repos []*domain.RepoSummary) *domain.SampleOutcome
}

// ReportCache (仓库管理员): 按用户名缓存分析报告
// 新鲜窗口内命中直接返回，过期视为未命中
type ReportCache interface {
	Get(username string) (*domain.Report, bool)
	Put(username string, report *domain.Report)
}

// ChartRenderer (画师): 生成两张 PNG 图表，覆盖旧文件
// 渲染失败不影响报告交付，由调用方记录日志
type ChartRenderer interface {
	RenderLanguagePie(languages map[string]int) error
	RenderCommitBars(months []domain.MonthCount) error
}

// Analyzer 分析管线的入口，web 层只依赖这个接口
type Analyzer interface {
	Analyze(ctx context.Context, rawInput string) (*domain.Report, error)
}
