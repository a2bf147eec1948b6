package service

import (
	"context"
	"testing"
	"time"

	"github.com/perera99-msd/coach-service-app/internal/repository"
	"github.com/perera99-msd/coach-service-app/internal/testutil"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func setupAnalyticsTest(t *testing.T) (*AnalyticsService, *gorm.DB) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	svc := NewAnalyticsService(repository.NewRequestRepository(db), nil, zap.NewNop())
	return svc, db
}

func TestAnalyticsDailyEmptyStoreZeroFills(t *testing.T) {
	svc, _ := setupAnalyticsTest(t)

	counts, err := svc.Daily(context.Background())
	if err != nil {
		t.Fatalf("Daily failed: %v", err)
	}
	if len(counts) != 7 {
		t.Fatalf("Expected 7 entries, got %d", len(counts))
	}

	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	for i, c := range counts {
		want := today.AddDate(0, 0, i-6).Format("2006-01-02")
		if c.Date != want {
			t.Errorf("Entry %d: expected date %s, got %s", i, want, c.Date)
		}
		if c.Count != 0 {
			t.Errorf("Entry %d: expected zero count, got %d", i, c.Count)
		}
	}
}

func TestAnalyticsDailyBucketsByCalendarDay(t *testing.T) {
	svc, db := setupAnalyticsTest(t)

	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	// Two today, one three days ago, one outside the window
	testutil.SeedRequest(t, db, "A", "a@example.com", "1", "pending", today.Add(time.Minute))
	testutil.SeedRequest(t, db, "B", "b@example.com", "2", "pending", today.Add(2*time.Minute))
	testutil.SeedRequest(t, db, "C", "c@example.com", "3", "approved", today.AddDate(0, 0, -3).Add(time.Minute))
	testutil.SeedRequest(t, db, "D", "d@example.com", "4", "pending", today.AddDate(0, 0, -10))

	counts, err := svc.Daily(context.Background())
	if err != nil {
		t.Fatalf("Daily failed: %v", err)
	}
	if len(counts) != 7 {
		t.Fatalf("Expected 7 entries, got %d", len(counts))
	}

	if got := counts[6].Count; got != 2 {
		t.Errorf("Expected 2 requests today, got %d", got)
	}
	if got := counts[3].Count; got != 1 {
		t.Errorf("Expected 1 request three days ago, got %d", got)
	}

	var total int
	for _, c := range counts {
		total += c.Count
	}
	if total != 3 {
		t.Errorf("Expected 3 requests inside the window, got %d", total)
	}
}
