package domain

import "time"

// CommitTimeLayout GitHub commit API 返回的时间格式 (commit.author.date)
const CommitTimeLayout = "2006-01-02T15:04:05Z"

// Profile 代表一个 GitHub 用户档案 (只保留打分需要的字段)
type Profile struct {
	Username    string `json:"username"`
	PublicRepos int    `json:"public_repos"`
}

// RepoSummary 代表一个用于打分的仓库摘要
// 只保留前 10 个仓库，作为简历评估的样本
type RepoSummary struct {
	Name     string `json:"name"`
	Stars    int    `json:"stars"`
	Language string `json:"language"` // 可能为空 (GitHub 未识别语言)

	// HasReadme 目前固定为 true：系统默认仓库带 README，
	// 真实的 README 校验不在本系统范围内
	HasReadme bool `json:"has_readme"`
}

// Commit 代表一次提交的原始记录
// AuthoredAt 保留 API 返回的原始字符串，由 Sampler 负责解析，
// 无法解析的时间戳按约定直接跳过
type Commit struct {
	AuthoredAt string `json:"authored_at"`
}

// CommitActivity 近 180 天的提交活跃度 (抽样结果，不是完整历史)
type CommitActivity struct {
	TotalCommits int            `json:"total_commits"`
	Monthly      map[string]int `json:"monthly"` // key 格式 "YYYY-MM"
}

// SampleOutcome 抽样结果的带标记封装
// Degraded 表示抽样过程中有仓库失败被降级为零贡献，
// 对外契约不变 (零活跃度不报错)，但内部可观测
type SampleOutcome struct {
	Activity CommitActivity
	Degraded bool
	Cause    error // 仅在 Degraded 时可能非空
}

// MonthCount 图表用的月度计数 (有序，6 个月，缺失月份补零)
type MonthCount struct {
	Month string `json:"month"` // "YYYY-MM"
	Count int    `json:"count"`
}

// Report 一次完整分析的最终产物，按用户名缓存
type Report struct {
	Username     string         `json:"username"`
	Score        int            `json:"score"` // 0-100
	Grade        string         `json:"grade"`
	Strengths    []string       `json:"strengths"`
	Suggestions  []string       `json:"suggestions"`
	Summary      string         `json:"summary"`
	TotalCommits int            `json:"total_commits"`
	Monthly      map[string]int `json:"monthly"`
	Months       []MonthCount   `json:"months"` // 补零后的 6 个月坐标轴
	Languages    map[string]int `json:"languages"`
	GeneratedAt  time.Time      `json:"generated_at"`
}
