package scorer

import "github-resume-analyzer/internal/domain"

// MaxScore 总分上限，所有加分只增不减，最后钳位到 100
const MaxScore = 100

// 五条规则的分值和阈值
const (
	repoCountPoints     = 15
	repoCountThreshold  = 5
	readmePoints        = 20
	readmeFraction      = 0.6
	starsPoints         = 15
	starsThreshold      = 5
	activityPoints      = 20
	publicRepoThreshold = 3
	diversityPoints     = 15
	diversityThreshold  = 2

	// ActivityBonusPoints 第六条加分由调用方结合提交采样结果追加
	ActivityBonusPoints    = 10
	ActivityBonusThreshold = 20
)

// 优势标签
const (
	StrengthRepoCount = "Good number of repositories."
	StrengthReadme    = "Most repositories contain README files."
	StrengthStars     = "Projects show community engagement (stars)."
	StrengthActivity  = "Profile shows consistent project activity."
	StrengthDiversity = "Good language diversity."
	StrengthCommits   = "Strong recent commit consistency."
)

// 建议标签
const (
	SuggestRepoCount = "Add more public repositories to showcase skills."
	SuggestReadme    = "Add proper README files explaining project purpose and tech stack."
	SuggestStars     = "Improve project quality and promote them to gain stars."
	SuggestActivity  = "Maintain consistent commits to show active development."
	SuggestDiversity = "Try working with multiple technologies to show versatility."
	SuggestCommits   = "Increase commit consistency to demonstrate active development."
)

// Calculate 计算基础分：五条独立规则，各自贡献固定分值，
// 满足加一条优势，不满足加一条建议，顺序固定
// 纯函数，无副作用；提交活跃度加分不在这里，由调用方追加
func Calculate(repos []*domain.RepoSummary, profile *domain.Profile) (int, []string, []string) {
	score := 0
	strengths := []string{}
	suggestions := []string{}

	totalRepos := len(repos)

	// 1. 仓库数量
	if totalRepos >= repoCountThreshold {
		score += repoCountPoints
		strengths = append(strengths, StrengthRepoCount)
	} else {
		suggestions = append(suggestions, SuggestRepoCount)
	}

	// 2. README 覆盖率 (零仓库时覆盖率无意义，按未达标处理)
	readmeCount := 0
	for _, repo := range repos {
		if repo.HasReadme {
			readmeCount++
		}
	}
	if totalRepos > 0 && float64(readmeCount) >= float64(totalRepos)*readmeFraction {
		score += readmePoints
		strengths = append(strengths, StrengthReadme)
	} else {
		suggestions = append(suggestions, SuggestReadme)
	}

	// 3. Star 总数
	stars := 0
	for _, repo := range repos {
		stars += repo.Stars
	}
	if stars > starsThreshold {
		score += starsPoints
		strengths = append(strengths, StrengthStars)
	} else {
		suggestions = append(suggestions, SuggestStars)
	}

	// 4. 档案活跃度
	if profile.PublicRepos > publicRepoThreshold {
		score += activityPoints
		strengths = append(strengths, StrengthActivity)
	} else {
		suggestions = append(suggestions, SuggestActivity)
	}

	// 5. 语言多样性
	languages := make(map[string]bool)
	for _, repo := range repos {
		if repo.Language != "" {
			languages[repo.Language] = true
		}
	}
	if len(languages) >= diversityThreshold {
		score += diversityPoints
		strengths = append(strengths, StrengthDiversity)
	} else {
		suggestions = append(suggestions, SuggestDiversity)
	}

	return Clamp(score), strengths, suggestions
}

// ActivityBonus 判断近期提交是否触发第六条加分 (+10)
func ActivityBonus(totalCommits int) (int, bool) {
	if totalCommits > ActivityBonusThreshold {
		return ActivityBonusPoints, true
	}
	return 0, false
}

// Clamp 把分数钳位到 [0, MaxScore]
func Clamp(score int) int {
	if score > MaxScore {
		return MaxScore
	}
	if score < 0 {
		return 0
	}
	return score
}
