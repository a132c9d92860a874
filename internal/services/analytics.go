package services

import (
	"context"
	"encoding/json"
	"log/slog"
	"strconv"
	"time"

	"jobcompass/internal/models"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// StatusCounts is one rollup bucket: a total plus one counter per canonical
// status. A record carrying an unrecognized status counts in Total only.
type StatusCounts struct {
	Total     int `json:"total"`
	Applied   int `json:"applied"`
	Interview int `json:"interview"`
	InReview  int `json:"inReview"`
	Rejected  int `json:"rejected"`
}

// Summary is derived from the owner's full record set on each request and is
// never persisted. Monthly keys are "YYYY-MM", yearly keys "YYYY"; key order
// carries no meaning, consumers sort for display.
type Summary struct {
	StatusCounts
	Monthly map[string]*StatusCounts `json:"monthly"`
	Yearly  map[string]*StatusCounts `json:"yearly"`
}

const analyticsCacheTTL = 10 * time.Minute

type AnalyticsService struct {
	db     *gorm.DB
	logger *slog.Logger
	rdb    *redis.Client
}

func NewAnalyticsService(db *gorm.DB, logger *slog.Logger, rdb *redis.Client) *AnalyticsService {
	return &AnalyticsService{
		db:     db,
		logger: logger,
		rdb:    rdb,
	}
}

func analyticsCacheKey(userID uint) string {
	return "analytics:" + strconv.FormatUint(uint64(userID), 10)
}

// Summarize rolls the owner's applications into top-level, monthly and
// yearly status counts. Counting is commutative, so the result does not
// depend on row order. An empty record set yields zeros and empty maps.
func (s *AnalyticsService) Summarize(userID uint) (*Summary, error) {
	ctx := context.Background()

	if s.rdb != nil {
		if val, err := s.rdb.Get(ctx, analyticsCacheKey(userID)).Result(); err == nil {
			var cached Summary
			if err := json.Unmarshal([]byte(val), &cached); err == nil {
				return &cached, nil
			}
		}
	}

	var apps []models.JobApplication
	if err := s.db.Where("user_id = ?", userID).Find(&apps).Error; err != nil {
		return nil, err
	}

	summary := &Summary{
		Monthly: make(map[string]*StatusCounts),
		Yearly:  make(map[string]*StatusCounts),
	}

	for _, app := range apps {
		tally(&summary.StatusCounts, app.Status)

		date := app.DateOfApplication.UTC()
		monthKey := date.Format("2006-01")
		yearKey := date.Format("2006")

		month, ok := summary.Monthly[monthKey]
		if !ok {
			month = &StatusCounts{}
			summary.Monthly[monthKey] = month
		}
		tally(month, app.Status)

		year, ok := summary.Yearly[yearKey]
		if !ok {
			year = &StatusCounts{}
			summary.Yearly[yearKey] = year
		}
		tally(year, app.Status)
	}

	if s.rdb != nil {
		if data, err := json.Marshal(summary); err == nil {
			if err := s.rdb.Set(ctx, analyticsCacheKey(userID), data, analyticsCacheTTL).Err(); err != nil {
				s.logger.Debug("Failed to cache analytics summary", "error", err)
			}
		}
	}

	return summary, nil
}

// Invalidate drops the cached summary for userID. Called after every
// application mutation so a served summary always reflects the current
// record set. No redis means nothing to drop.
func (s *AnalyticsService) Invalidate(userID uint) {
	if s == nil || s.rdb == nil {
		return
	}
	if err := s.rdb.Del(context.Background(), analyticsCacheKey(userID)).Err(); err != nil {
		s.logger.Debug("Failed to invalidate analytics cache", "error", err)
	}
}

func tally(counts *StatusCounts, status string) {
	counts.Total++
	switch status {
	case models.StatusApplied:
		counts.Applied++
	case models.StatusInterview:
		counts.Interview++
	case models.StatusInReview:
		counts.InReview++
	case models.StatusRejected:
		counts.Rejected++
	}
	// Unrecognized legacy statuses fall through on purpose: they count in
	// Total but in none of the four sub-counters.
}
