package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github-resume-analyzer/internal/adapter/activity"
	"github-resume-analyzer/internal/adapter/chart"
	"github-resume-analyzer/internal/adapter/github"
	"github-resume-analyzer/internal/cache"
	"github-resume-analyzer/internal/config"
	"github-resume-analyzer/internal/service"
	"github-resume-analyzer/internal/web"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// 1. 命令行参数优先于环境变量
	addr := flag.String("addr", "", "HTTP 监听地址 (默认读 SERVER_ADDR，再默认 :8000)")
	flag.Parse()

	// 2. 加载 .env (不存在就跳过) 和配置
	_ = godotenv.Load()
	cfg := config.Load()
	if *addr != "" {
		cfg.Addr = *addr
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("❌ 配置校验失败: %v", err)
	}
	gin.SetMode(cfg.GinMode)

	if cfg.GitHubToken == "" {
		log.Println("⚠️ 警告: GITHUB_TOKEN 为空，匿名访问限制 60次/小时！")
	}

	// 3. 组装分析管线
	fetcher := github.NewFetcher(cfg.GitHubToken)
	sampler := activity.NewCommitSampler(fetcher)
	reportCache := cache.NewReportCache(cfg.CacheMaxEntries, cfg.CacheTTL)
	renderer := chart.NewRenderer(cfg.StaticDir)
	analyzer := service.NewAnalysisService(fetcher, sampler, reportCache, renderer)

	// 4. 启动 HTTP 服务，支持优雅关闭
	router := web.NewRouter(analyzer, cfg.StaticDir)
	srv := &http.Server{
		Addr:    cfg.Addr,
		Handler: router,
	}

	go func() {
		fmt.Printf("🚀 GitHub Resume Analyzer 已启动: http://localhost%s\n", cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("❌ HTTP 服务启动失败: %v", err)
		}
	}()

	// 等待停止信号
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	fmt.Println("\n👋 收到停止信号，正在退出...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("⚠️ 优雅关闭失败: %v", err)
	}
}
