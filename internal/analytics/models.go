package analytics

import "time"

// Event is one recorded user interaction (navigation click, search
// submission, subscribe action). Rows are append-only: created once at
// ingestion, never updated, never deleted.
type Event struct {
	ID        string  `gorm:"primaryKey;size:36"`
	EventID   string  `gorm:"index;not null"`
	Label     *string `gorm:"size:255"`
	Language  *string `gorm:"size:8"`
	Page      *string
	Path      *string
	Metadata  *string `gorm:"type:text"` // serialized JSON object
	UserAgent string
	CreatedAt time.Time `gorm:"index;not null"`
}

// TableName keeps the table name used by the original schema.
func (Event) TableName() string { return "analytics_events" }

// EventTotal is one row of the totals aggregation: event count grouped by
// event id over the requested range.
type EventTotal struct {
	EventID string `gorm:"column:event_id" json:"eventId"`
	Total   int64  `gorm:"column:total" json:"total"`
}

// TimelineEntry is one row of the timeline aggregation: event count per
// (calendar day, event id) bucket.
type TimelineEntry struct {
	Bucket  string `gorm:"column:bucket" json:"bucket"`
	EventID string `gorm:"column:event_id" json:"eventId"`
	Total   int64  `gorm:"column:total" json:"total"`
}

// BrowserTotal is one row of the browser breakdown, derived from the stored
// user agents of events in range.
type BrowserTotal struct {
	Name  string `json:"name"`
	Total int64  `json:"total"`
}

// LatestEvent is the API shape of one event in the latest feed, with the
// stored metadata deserialized back into a map.
type LatestEvent struct {
	ID        string         `json:"id"`
	EventID   string         `json:"eventId"`
	Label     *string        `json:"label"`
	Language  *string        `json:"language"`
	Page      *string        `json:"page"`
	Path      *string        `json:"path"`
	Metadata  map[string]any `json:"metadata"`
	UserAgent string         `json:"userAgent"`
	CreatedAt time.Time      `json:"createdAt"`
}

// Summary bundles the independent aggregations computed over one inclusive
// [from, to] range.
type Summary struct {
	Totals   []EventTotal
	Timeline []TimelineEntry
	Latest   []LatestEvent
	Browsers []BrowserTotal
}
