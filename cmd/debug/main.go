package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github-resume-analyzer/internal/adapter/activity"
	"github-resume-analyzer/internal/adapter/chart"
	"github-resume-analyzer/internal/adapter/github"
	"github-resume-analyzer/internal/cache"
	"github-resume-analyzer/internal/service"
)

func main() {
	input := flag.String("u", "", "GitHub 用户名或 profile URL")
	staticDir := flag.String("static", "static", "图表输出目录")
	flag.Parse()

	if *input == "" {
		fmt.Println("⚠️ 请指定要分析的用户，例如: -u torvalds 或 -u https://github.com/torvalds")
		return
	}

	githubToken := os.Getenv("GITHUB_TOKEN")

	// 初始化组件 (一次性运行，缓存只是占位)
	fetcher := github.NewFetcher(githubToken)
	sampler := activity.NewCommitSampler(fetcher)
	reportCache := cache.NewReportCache(1, time.Minute)
	renderer := chart.NewRenderer(*staticDir)
	analyzer := service.NewAnalysisService(fetcher, sampler, reportCache, renderer)

	fmt.Println("🔍 调试模式：分析 GitHub 档案")

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	report, err := analyzer.Analyze(ctx, *input)
	if err != nil {
		log.Fatalf("❌ 分析失败: %v", err)
	}

	fmt.Printf("✅ 分析完成: %s\n", report.Username)
	fmt.Printf("   评分: %d/100 (%s)\n", report.Score, report.Grade)
	fmt.Printf("   近 6 个月提交: %d\n", report.TotalCommits)

	fmt.Println("   优势:")
	for _, s := range report.Strengths {
		fmt.Printf("     + %s\n", s)
	}
	fmt.Println("   建议:")
	for _, s := range report.Suggestions {
		fmt.Printf("     - %s\n", s)
	}

	fmt.Println("   月度提交分布:")
	for _, m := range report.Months {
		fmt.Printf("     %s: %d\n", m.Month, m.Count)
	}

	fmt.Printf("📊 图表已输出到 %s/\n", *staticDir)
	fmt.Println(report.Summary)
}
