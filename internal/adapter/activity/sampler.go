package activity

import (
	"context"
	"time"

	"github-resume-analyzer/internal/domain"
	"github-resume-analyzer/internal/port"
)

const (
	// sampleRepoLimit 只采样前 3 个仓库 (按输入顺序，不按活跃度重排)
	// 3 仓库 × 50 提交是刻意的抽样近似，用完整性换延迟和调用成本
	sampleRepoLimit = 3

	// activityWindowDays 只统计近 180 天内的提交
	activityWindowDays = 180
)

// CommitSampler 实现了 port.ActivitySampler 接口
type CommitSampler struct {
	lister  port.CommitLister
	nowFunc func() time.Time
}

// NewCommitSampler 创建新的采样器实例
func NewCommitSampler(lister port.CommitLister) *CommitSampler {
	return &CommitSampler{
		lister:  lister,
		nowFunc: time.Now, // 便于测试注入当前时间
	}
}

// Sample 聚合近 180 天的提交活跃度，对外永不失败
// 单个仓库拉取失败只会让该仓库贡献归零，并把结果标记为 Degraded，
// 不会中断整个采样，也不会向上抛错
func (s *CommitSampler) Sample(ctx context.Context, username string, repos []*domain.RepoSummary) *domain.SampleOutcome {
	cutoff := s.nowFunc().UTC().AddDate(0, 0, -activityWindowDays)

	total := 0
	monthly := make(map[string]int)
	degraded := false
	var cause error

	for i, repo := range repos {
		if i >= sampleRepoLimit {
			break
		}

		commits, err := s.lister.ListRecentCommits(ctx, username, repo.Name)
		if err != nil {
			degraded = true
			cause = err
			continue
		}

		for _, commit := range commits {
			if commit.AuthoredAt == "" {
				continue
			}
			authoredAt, err := time.Parse(domain.CommitTimeLayout, commit.AuthoredAt)
			if err != nil {
				// 格式错误的时间戳按约定静默跳过
				continue
			}
			// 严格大于：恰好落在 180 天边界上的提交不计入
			if authoredAt.After(cutoff) {
				total++
				monthly[authoredAt.Format("2006-01")]++
			}
		}
	}

	return &domain.SampleOutcome{
		Activity: domain.CommitActivity{
			TotalCommits: total,
			Monthly:      monthly,
		},
		Degraded: degraded,
		Cause:    cause,
	}
}
