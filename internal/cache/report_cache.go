package cache

import (
	"time"

	"github-resume-analyzer/internal/domain"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

const (
	defaultMaxEntries = 256
	defaultTTL        = 300 * time.Second
)

// ReportCache is a bounded report cache keyed by username.
// Entries expire after the freshness window; beyond capacity the least
// recently used identity is evicted. A Put supersedes the prior entry,
// it never merges. Safe for concurrent use.
type ReportCache struct {
	lru *expirable.LRU[string, *domain.Report]
}

// NewReportCache builds a cache with the given capacity and freshness window.
// Non-positive arguments fall back to defaults (256 entries, 300s).
func NewReportCache(maxEntries int, ttl time.Duration) *ReportCache {
	if maxEntries <= 0 {
		maxEntries = defaultMaxEntries
	}
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &ReportCache{
		lru: expirable.NewLRU[string, *domain.Report](maxEntries, nil, ttl),
	}
}

// Get returns the cached report for a username, or false when the entry
// is absent or stale.
func (c *ReportCache) Get(username string) (*domain.Report, bool) {
	return c.lru.Get(username)
}

// Put stores a report under a username, replacing any prior entry.
func (c *ReportCache) Put(username string, report *domain.Report) {
	c.lru.Add(username, report)
}

// Len reports the number of live entries (stale ones included until swept).
func (c *ReportCache) Len() int {
	return c.lru.Len()
}
