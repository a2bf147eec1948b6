package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/perera99-msd/coach-service-app/internal/repository"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	analyticsCacheKey = "analytics:daily"
	analyticsCacheTTL = 60 * time.Second
)

// DailyCount 单日创建数量
type DailyCount struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

// AnalyticsService computes the trailing 7-day daily creation counts.
// The redis client is optional; nil disables caching.
type AnalyticsService struct {
	requests *repository.RequestRepository
	cache    *redis.Client
	logger   *zap.Logger
}

// NewAnalyticsService 创建统计服务
func NewAnalyticsService(requests *repository.RequestRepository, cache *redis.Client, logger *zap.Logger) *AnalyticsService {
	return &AnalyticsService{requests: requests, cache: cache, logger: logger}
}

// Daily returns exactly 7 entries, one per calendar day ending today,
// chronologically ascending and zero-filled. Bucketing happens here rather
// than in SQL so sqlite and postgres behave identically.
func (s *AnalyticsService) Daily(ctx context.Context) ([]DailyCount, error) {
	if cached, ok := s.fromCache(ctx); ok {
		return cached, nil
	}

	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	start := today.AddDate(0, 0, -6)

	stamps, err := s.requests.CreatedAtSince(ctx, start)
	if err != nil {
		return nil, fmt.Errorf("daily counts: %w", err)
	}

	byDay := make(map[string]int, 7)
	for _, ts := range stamps {
		byDay[ts.In(now.Location()).Format("2006-01-02")]++
	}

	out := make([]DailyCount, 0, 7)
	for i := 0; i < 7; i++ {
		date := start.AddDate(0, 0, i).Format("2006-01-02")
		out = append(out, DailyCount{Date: date, Count: byDay[date]})
	}

	s.toCache(ctx, out)
	return out, nil
}

func (s *AnalyticsService) fromCache(ctx context.Context) ([]DailyCount, bool) {
	if s.cache == nil {
		return nil, false
	}
	raw, err := s.cache.Get(ctx, analyticsCacheKey).Bytes()
	if err != nil {
		if err != redis.Nil {
			s.logger.Debug("Analytics cache read failed", zap.Error(err))
		}
		return nil, false
	}
	var out []DailyCount
	if err := json.Unmarshal(raw, &out); err != nil || len(out) != 7 {
		return nil, false
	}
	return out, true
}

func (s *AnalyticsService) toCache(ctx context.Context, counts []DailyCount) {
	if s.cache == nil {
		return
	}
	raw, err := json.Marshal(counts)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, analyticsCacheKey, raw, analyticsCacheTTL).Err(); err != nil {
		s.logger.Debug("Analytics cache write failed", zap.Error(err))
	}
}
