package github

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github-resume-analyzer/internal/common"
	"github-resume-analyzer/internal/domain"

	"github.com/google/go-github/v53/github"
	"golang.org/x/oauth2"
)

const (
	// callTimeout 每次外部调用的独立超时，超时视为档案无效，不做重试
	callTimeout = 10 * time.Second

	// repoPageSize 仓库列表单页大小
	repoPageSize = 50
	// commitPageSize 单个仓库最多取最近 50 条提交
	commitPageSize = 50
	// maxScoredRepos 只保留前 10 个仓库用于打分
	maxScoredRepos = 10
)

// Fetcher 实现了 port.ProfileFetcher 和 port.CommitLister 接口
type Fetcher struct {
	client *github.Client
}

// NewFetcher 初始化 GitHub 客户端
// token: GitHub Personal Access Token (如果是空字符串，就是匿名访问，限制 60次/小时)
func NewFetcher(token string) *Fetcher {
	var client *github.Client

	if token == "" {
		client = github.NewClient(nil)
	} else {
		ctx := context.Background()
		ts := oauth2.StaticTokenSource(
			&oauth2.Token{AccessToken: token},
		)
		tc := oauth2.NewClient(ctx, ts)
		client = github.NewClient(tc)
	}

	return &Fetcher{client: client}
}

// FetchProfile 获取用户档案和前 10 个仓库摘要
// 两次顺序请求：先查档案，再查仓库列表 (per_page=50)
// 任一失败 (非 2xx、超时、网络故障) 都折叠成 INVALID_PROFILE，
// 调用方无法区分 "用户不存在" 和 "接口限流"，与上游行为保持一致
func (f *Fetcher) FetchProfile(ctx context.Context, username string) (*domain.Profile, []*domain.RepoSummary, error) {
	userCtx, cancel := context.WithTimeout(ctx, callTimeout)
	user, _, err := f.client.Users.Get(userCtx, username)
	cancel()
	if err != nil {
		return nil, nil, common.WrapError(common.ErrCodeInvalidProfile, "GitHub 档案查询失败", err)
	}

	opts := &github.RepositoryListOptions{
		ListOptions: github.ListOptions{PerPage: repoPageSize},
	}
	repoCtx, cancel := context.WithTimeout(ctx, callTimeout)
	items, _, err := f.client.Repositories.List(repoCtx, username, opts)
	cancel()
	if err != nil {
		return nil, nil, common.WrapError(common.ErrCodeInvalidProfile, "GitHub 仓库列表查询失败", err)
	}

	profile := &domain.Profile{
		Username:    username,
		PublicRepos: user.GetPublicRepos(),
	}

	var repos []*domain.RepoSummary
	for i, item := range items {
		if i >= maxScoredRepos {
			break
		}
		repos = append(repos, &domain.RepoSummary{
			Name:     item.GetName(),
			Stars:    item.GetStargazersCount(),
			Language: item.GetLanguage(),
			// 默认仓库都带 README，真实校验不在范围内
			HasReadme: true,
		})
	}

	return profile, repos, nil
}

// commitRecord 提交接口的原始 JSON 结构，只解出作者时间戳
// 故意保留字符串形式：时间解析 (包括格式错误的跳过逻辑) 归 Sampler 负责
type commitRecord struct {
	Commit struct {
		Author struct {
			Date string `json:"date"`
		} `json:"author"`
	} `json:"commit"`
}

// ListRecentCommits 获取仓库最近的提交 (最多 50 条)
// 走 go-github 的原始请求通道，避免客户端提前解析时间戳
func (f *Fetcher) ListRecentCommits(ctx context.Context, owner, repo string) ([]*domain.Commit, error) {
	u := fmt.Sprintf("repos/%s/%s/commits?per_page=%d", owner, repo, commitPageSize)
	req, err := f.client.NewRequest(http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("构造提交列表请求失败: %w", err)
	}

	callCtx, cancel := context.WithTimeout(ctx, callTimeout)
	defer cancel()

	var records []commitRecord
	if _, err := f.client.Do(callCtx, req, &records); err != nil {
		return nil, fmt.Errorf("获取提交列表失败: %w", err)
	}

	commits := make([]*domain.Commit, 0, len(records))
	for _, rec := range records {
		commits = append(commits, &domain.Commit{AuthoredAt: rec.Commit.Author.Date})
	}
	return commits, nil
}
