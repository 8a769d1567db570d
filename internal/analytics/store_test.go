package analytics_test

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lockerlink/internal/analytics"
	"lockerlink/internal/testsupport"
)

const chromeUA = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

func newTestStore(t *testing.T) *analytics.Store {
	t.Helper()
	db := testsupport.SetupTestDB(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return analytics.NewStore(db, logger)
}

func strPtr(s string) *string { return &s }

func makeEvent(eventID string, createdAt time.Time) *analytics.Event {
	return &analytics.Event{
		ID:        uuid.NewString(),
		EventID:   eventID,
		Language:  strPtr("en"),
		Path:      strPtr("/"),
		UserAgent: chromeUA,
		CreatedAt: createdAt,
	}
}

func TestEnsureReadyConcurrent(t *testing.T) {
	store := newTestStore(t)

	var wg sync.WaitGroup
	errs := make([]error, 20)
	for i := range errs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs[i] = store.EnsureReady()
		}(i)
	}
	wg.Wait()

	for _, err := range errs {
		require.NoError(t, err)
	}

	assert.True(t, store.DB().Migrator().HasTable("analytics_events"))
}

func TestNilStoreIsDisabled(t *testing.T) {
	var store *analytics.Store

	assert.ErrorIs(t, store.EnsureReady(), analytics.ErrDisabled)
	assert.ErrorIs(t, store.Insert(context.Background(), makeEvent("x", time.Now())), analytics.ErrDisabled)

	_, err := store.Summary(context.Background(), time.Now().Add(-time.Hour), time.Now())
	assert.ErrorIs(t, err, analytics.ErrDisabled)
}

func TestInsertAndSummaryRoundTrip(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	base := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

	for i := 0; i < 3; i++ {
		require.NoError(t, store.Insert(ctx, makeEvent("home_store_click", base.Add(-time.Duration(i)*time.Minute))))
	}
	require.NoError(t, store.Insert(ctx, makeEvent("home_transfer_click", base.Add(-time.Minute))))

	meta := `{"target":"storage"}`
	tagged := makeEvent("nav_item_click", base.Add(time.Minute))
	tagged.Metadata = &meta
	tagged.Label = strPtr("Storage")
	require.NoError(t, store.Insert(ctx, tagged))

	summary, err := store.Summary(ctx, base.Add(-time.Hour), base.Add(time.Hour))
	require.NoError(t, err)

	require.Len(t, summary.Totals, 3)
	assert.Equal(t, "home_store_click", summary.Totals[0].EventID)
	assert.Equal(t, int64(3), summary.Totals[0].Total)

	require.NotEmpty(t, summary.Timeline)
	assert.Equal(t, "2024-06-15", summary.Timeline[0].Bucket)

	require.NotEmpty(t, summary.Latest)
	newest := summary.Latest[0]
	assert.Equal(t, tagged.ID, newest.ID)
	assert.Equal(t, "nav_item_click", newest.EventID)
	require.NotNil(t, newest.Metadata)
	assert.Equal(t, "storage", newest.Metadata["target"])

	require.NotEmpty(t, summary.Browsers)
	assert.Equal(t, "Chrome", summary.Browsers[0].Name)
	assert.Equal(t, int64(5), summary.Browsers[0].Total)
}

func TestSummaryRangeIsInclusive(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	from := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 6, 7, 23, 59, 59, 0, time.UTC)

	require.NoError(t, store.Insert(ctx, makeEvent("boundary_low", from)))
	require.NoError(t, store.Insert(ctx, makeEvent("boundary_high", to)))
	require.NoError(t, store.Insert(ctx, makeEvent("before_range", from.Add(-time.Microsecond))))
	require.NoError(t, store.Insert(ctx, makeEvent("after_range", to.Add(time.Microsecond))))

	summary, err := store.Summary(ctx, from, to)
	require.NoError(t, err)

	ids := make([]string, 0, len(summary.Totals))
	for _, total := range summary.Totals {
		ids = append(ids, total.EventID)
	}
	assert.ElementsMatch(t, []string{"boundary_low", "boundary_high"}, ids)
}

func TestTimelineBucketsByOccurrenceNotInsertion(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	day1 := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	day2 := time.Date(2024, 6, 2, 12, 0, 0, 0, time.UTC)

	// Inserted newest first; buckets must still follow the event times.
	require.NoError(t, store.Insert(ctx, makeEvent("search_home_submit", day2)))
	require.NoError(t, store.Insert(ctx, makeEvent("search_home_submit", day1)))

	summary, err := store.Summary(ctx, day1.Add(-time.Hour), day2.Add(time.Hour))
	require.NoError(t, err)

	require.Len(t, summary.Timeline, 2)
	assert.Equal(t, "2024-06-01", summary.Timeline[0].Bucket)
	assert.Equal(t, "2024-06-02", summary.Timeline[1].Bucket)
	for _, entry := range summary.Timeline {
		assert.Equal(t, int64(1), entry.Total)
	}
}

func TestLatestFeedIsCapped(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	now := time.Now().UTC()

	for i := 0; i < 55; i++ {
		require.NoError(t, store.Insert(ctx, makeEvent("home_store_click", now.Add(-time.Duration(i)*time.Second))))
	}

	summary, err := store.Summary(ctx, now.Add(-time.Hour), now.Add(time.Hour))
	require.NoError(t, err)

	assert.Len(t, summary.Latest, 50)
	require.Len(t, summary.Totals, 1)
	assert.Equal(t, int64(55), summary.Totals[0].Total)

	// Newest first
	for i := 1; i < len(summary.Latest); i++ {
		assert.False(t, summary.Latest[i].CreatedAt.After(summary.Latest[i-1].CreatedAt))
	}
}

func TestDuplicateIDRejected(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	event := makeEvent("home_store_click", time.Now().UTC())
	require.NoError(t, store.Insert(ctx, event))

	dup := makeEvent("home_store_click", time.Now().UTC())
	dup.ID = event.ID
	assert.Error(t, store.Insert(ctx, dup))
}

func TestUndecodableMetadataIsSkippedNotFatal(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	now := time.Now().UTC()

	broken := makeEvent("home_store_click", now)
	garbage := "{not json"
	broken.Metadata = &garbage
	require.NoError(t, store.Insert(ctx, broken))

	summary, err := store.Summary(ctx, now.Add(-time.Hour), now.Add(time.Hour))
	require.NoError(t, err)

	require.Len(t, summary.Latest, 1)
	assert.Nil(t, summary.Latest[0].Metadata)
}

func TestMigrationFailureIsSticky(t *testing.T) {
	db := testsupport.SetupTestDB(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	// Closing the connection makes the single migration attempt fail; every
	// later call must observe the same cached error.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	store := analytics.NewStore(db, logger)
	firstErr := store.EnsureReady()
	require.Error(t, firstErr)

	secondErr := store.EnsureReady()
	assert.Equal(t, fmt.Sprint(firstErr), fmt.Sprint(secondErr))
}
