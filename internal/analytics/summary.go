package analytics

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"github.com/mileusna/useragent"
)

const latestFeedLimit = 50

// Day buckets use SQLite's own date handling, matching the store the
// timestamps were written with.
const dayBucketFormat = "%Y-%m-%d"

// Summary computes the aggregate views over the inclusive [from, to] range.
// The queries are independent and run concurrently; if any one fails the
// whole call fails, with no partial result.
func (s *Store) Summary(ctx context.Context, from, to time.Time) (*Summary, error) {
	if s == nil {
		return nil, ErrDisabled
	}
	if err := s.EnsureReady(); err != nil {
		return nil, err
	}

	from = from.UTC()
	to = to.UTC()

	result := &Summary{
		Totals:   make([]EventTotal, 0),
		Timeline: make([]TimelineEntry, 0),
		Latest:   make([]LatestEvent, 0),
		Browsers: make([]BrowserTotal, 0),
	}

	var wg sync.WaitGroup
	errs := make([]error, 4)

	wg.Add(4)
	go func() {
		defer wg.Done()
		errs[0] = s.queryTotals(ctx, from, to, &result.Totals)
	}()
	go func() {
		defer wg.Done()
		errs[1] = s.queryTimeline(ctx, from, to, &result.Timeline)
	}()
	go func() {
		defer wg.Done()
		errs[2] = s.queryLatest(ctx, from, to, &result.Latest)
	}()
	go func() {
		defer wg.Done()
		errs[3] = s.queryBrowsers(ctx, from, to, &result.Browsers)
	}()
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return result, nil
}

func (s *Store) queryTotals(ctx context.Context, from, to time.Time, out *[]EventTotal) error {
	err := s.db.WithContext(ctx).Model(&Event{}).
		Select("event_id, COUNT(*) AS total").
		Where("created_at BETWEEN ? AND ?", from, to).
		Group("event_id").
		Order("total DESC").
		Scan(out).Error
	if err != nil {
		return fmt.Errorf("failed to aggregate totals: %w", err)
	}
	return nil
}

func (s *Store) queryTimeline(ctx context.Context, from, to time.Time, out *[]TimelineEntry) error {
	err := s.db.WithContext(ctx).Model(&Event{}).
		Select(fmt.Sprintf("strftime('%s', created_at) AS bucket, event_id, COUNT(*) AS total", dayBucketFormat)).
		Where("created_at BETWEEN ? AND ?", from, to).
		Group("bucket, event_id").
		Order("bucket ASC").
		Scan(out).Error
	if err != nil {
		return fmt.Errorf("failed to aggregate timeline: %w", err)
	}
	return nil
}

func (s *Store) queryLatest(ctx context.Context, from, to time.Time, out *[]LatestEvent) error {
	var rows []Event
	err := s.db.WithContext(ctx).
		Where("created_at BETWEEN ? AND ?", from, to).
		Order("created_at DESC").
		Limit(latestFeedLimit).
		Find(&rows).Error
	if err != nil {
		return fmt.Errorf("failed to load latest events: %w", err)
	}

	for _, row := range rows {
		*out = append(*out, s.toLatestEvent(row))
	}
	return nil
}

func (s *Store) toLatestEvent(row Event) LatestEvent {
	item := LatestEvent{
		ID:        row.ID,
		EventID:   row.EventID,
		Label:     row.Label,
		Language:  row.Language,
		Page:      row.Page,
		Path:      row.Path,
		UserAgent: row.UserAgent,
		CreatedAt: row.CreatedAt,
	}
	if row.Metadata != nil && *row.Metadata != "" {
		var meta map[string]any
		if err := json.Unmarshal([]byte(*row.Metadata), &meta); err != nil {
			s.logger.Warn("Skipping undecodable event metadata",
				slog.String("id", row.ID), slog.Any("error", err))
		} else {
			item.Metadata = meta
		}
	}
	return item
}

func (s *Store) queryBrowsers(ctx context.Context, from, to time.Time, out *[]BrowserTotal) error {
	var rows []struct {
		UserAgent string `gorm:"column:user_agent"`
		Total     int64  `gorm:"column:total"`
	}
	err := s.db.WithContext(ctx).Model(&Event{}).
		Select("user_agent, COUNT(*) AS total").
		Where("created_at BETWEEN ? AND ?", from, to).
		Group("user_agent").
		Scan(&rows).Error
	if err != nil {
		return fmt.Errorf("failed to aggregate browsers: %w", err)
	}

	merged := make(map[string]int64)
	for _, row := range rows {
		name := useragent.Parse(row.UserAgent).Name
		if name == "" {
			name = "Unknown"
		}
		merged[name] += row.Total
	}

	for name, total := range merged {
		*out = append(*out, BrowserTotal{Name: name, Total: total})
	}
	sort.Slice(*out, func(i, j int) bool {
		if (*out)[i].Total != (*out)[j].Total {
			return (*out)[i].Total > (*out)[j].Total
		}
		return (*out)[i].Name < (*out)[j].Name
	})
	return nil
}
