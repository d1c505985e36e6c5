package pg

import (
	"context"
	"flag"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"

	"github.com/DjordjeVuckovic/brew-directory/internal/storage"
	pkgtesting "github.com/DjordjeVuckovic/brew-directory/pkg/testing"
)

var (
	testCtx     context.Context
	testPool    *ConnectionPool
	testEntries *EntryStore
	testReviews *ReviewStore
	testNews    *NewsStore
)

func TestMain(m *testing.M) {
	flag.Parse()
	if testing.Short() {
		os.Exit(0)
	}

	testCtx = context.Background()

	pg, err := pkgtesting.NewPGContainer(testCtx, pkgtesting.PGConfig{
		Database: "directory_test_db",
		Username: "test",
		Password: "test",
	})
	if err != nil {
		panic(err)
	}
	defer testcontainers.TerminateContainer(pg.Container)

	if _, _, err := RunMigrations(pg.ConnString); err != nil {
		panic(err)
	}

	testPool, err = NewConnectionPool(testCtx, PoolConfig{ConnStr: pg.ConnString})
	if err != nil {
		panic(err)
	}
	defer testPool.Close()

	testEntries = NewEntryStore(testPool)
	testReviews = NewReviewStore(testPool)
	testNews = NewNewsStore(testPool)

	os.Exit(m.Run())
}

func truncateTables(t *testing.T) {
	t.Helper()
	_, err := testPool.GetConn().Exec(testCtx, "TRUNCATE TABLE brewery_news, reviews, attractions CASCADE")
	require.NoError(t, err)
}

func strPtr(s string) *string   { return &s }
func f64Ptr(f float64) *float64 { return &f }

func seed(t *testing.T, name, typ string, lat, lon float64) *storage.EntryRecord {
	t.Helper()
	rec, err := testEntries.Upsert(testCtx, storage.EntryRecord{
		PlaceID:   strPtr("place-" + name),
		Slug:      name,
		Name:      name,
		Type:      strPtr(typ),
		City:      strPtr("Baltimore"),
		Latitude:  f64Ptr(lat),
		Longitude: f64Ptr(lon),
	}, storage.ConflictPlaceID)
	require.NoError(t, err)
	return rec
}

func TestHealthChecker(t *testing.T) {
	assert.True(t, NewHealthChecker(testPool).Healthy(testCtx))
}

func TestRunMigrations_Idempotent(t *testing.T) {
	version, dirty, err := RunMigrations(testPool.GetConn().Config().ConnString())
	require.NoError(t, err)
	assert.False(t, dirty)
	assert.Equal(t, uint(2), version)
}

func TestEntryStore_UpsertInsertThenReplace(t *testing.T) {
	truncateTables(t)

	created := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	first, err := testEntries.Upsert(testCtx, storage.EntryRecord{
		PlaceID:      strPtr("ChIJ-brewers-art"),
		Slug:         "the-brewers-art-baltimore",
		Name:         "The Brewer's Art",
		Hours:        map[string]*string{"monday": nil, "friday": strPtr("16:00-02:00")},
		Photos:       []string{"a.jpg"},
		Amenities:    []string{"food"},
		CreatedAt:    &created,
		UpdatedAt:    &created,
		LastSyncedAt: &created,
	}, storage.ConflictPlaceID)
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, first.ID)
	assert.Nil(t, first.Hours["monday"])
	assert.Equal(t, "16:00-02:00", *first.Hours["friday"])

	later := created.Add(time.Hour)
	second, err := testEntries.Upsert(testCtx, storage.EntryRecord{
		PlaceID:      strPtr("ChIJ-brewers-art"),
		Slug:         "the-brewers-art-baltimore",
		Name:         "Brewer's Art",
		CreatedAt:    &later,
		UpdatedAt:    &created,
		LastSyncedAt: &later,
	}, storage.ConflictPlaceID)
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "Brewer's Art", second.Name)
	assert.True(t, created.Equal(*second.CreatedAt))
	assert.True(t, created.Equal(*second.LastSyncedAt))
	assert.True(t, second.UpdatedAt.After(*first.UpdatedAt), "updated_at must strictly increase")
	assert.Empty(t, second.Photos)
}

func TestEntryStore_UpsertByID(t *testing.T) {
	truncateTables(t)

	first, err := testEntries.Upsert(testCtx, storage.EntryRecord{Slug: "no-place", Name: "No Place"}, storage.ConflictNone)
	require.NoError(t, err)

	first.Name = "Renamed"
	second, err := testEntries.Upsert(testCtx, *first, storage.ConflictID)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "Renamed", second.Name)
}

func TestEntryStore_UpsertRejectsPartialLocation(t *testing.T) {
	truncateTables(t)

	_, err := testEntries.Upsert(testCtx, storage.EntryRecord{
		Slug: "half", Name: "Half", Latitude: f64Ptr(39.2),
	}, storage.ConflictNone)
	assert.Error(t, err)
}

func TestEntryStore_FindMany(t *testing.T) {
	truncateTables(t)
	seed(t, "union-craft", "brewery", 39.3316, -76.6339)
	seed(t, "diamondback", "brewery", 39.2730, -76.5930)
	seed(t, "fort-mchenry", "landmark", 39.2633, -76.5800)

	recs, err := testEntries.FindMany(testCtx, storage.Query{Field: storage.FieldType, Value: "brewery"})
	require.NoError(t, err)
	require.Len(t, recs, 2)
	assert.Equal(t, "diamondback", recs[0].Slug)

	recs, err = testEntries.FindMany(testCtx, storage.Query{Field: storage.FieldCity, Value: "Baltimore", Limit: 2})
	require.NoError(t, err)
	assert.Len(t, recs, 2)

	recs, err = testEntries.FindMany(testCtx, storage.Query{Field: storage.FieldCity, Value: "Frederick"})
	require.NoError(t, err)
	assert.Empty(t, recs)

	one, err := testEntries.FindOne(testCtx, storage.Query{Field: storage.FieldPlaceID, Value: "place-fort-mchenry"})
	require.NoError(t, err)
	assert.Equal(t, "fort-mchenry", one.Slug)

	_, err = testEntries.FindOne(testCtx, storage.Query{Field: storage.FieldSlug, Value: "missing"})
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestEntryStore_Nearby(t *testing.T) {
	truncateTables(t)
	seed(t, "fort-mchenry", "landmark", 39.2633, -76.5800)
	seed(t, "inner-harbor", "landmark", 39.2856, -76.6122)
	seed(t, "annapolis-dock", "landmark", 38.9784, -76.4922)
	seed(t, "diamondback", "brewery", 39.2730, -76.5930)

	recs, err := testEntries.Nearby(testCtx, storage.NearbyQuery{
		Lat: 39.2860, Lon: -76.6100, RadiusMeters: 5000, Type: "landmark", Limit: 10,
	})
	require.NoError(t, err)
	require.Len(t, recs, 2)
	assert.Equal(t, "inner-harbor", recs[0].Slug)
	assert.Equal(t, "fort-mchenry", recs[1].Slug)
	assert.Less(t, recs[0].DistanceMeters, recs[1].DistanceMeters)
}

func TestReviewStore_AppendAndRead(t *testing.T) {
	truncateTables(t)
	subject := seed(t, "union-craft", "brewery", 39.3316, -76.6339)
	older, newer := int64(1_600_000_000), int64(1_700_000_000)

	dup := storage.ReviewRecord{SubjectID: subject.ID, AuthorName: strPtr("Sam"), Text: strPtr("Great"), Time: &newer}
	require.NoError(t, testReviews.AppendReviews(testCtx, []storage.ReviewRecord{
		{SubjectID: subject.ID, AuthorName: strPtr("Ann"), Text: strPtr("Fine"), Time: &older},
		dup,
		{SubjectID: subject.ID, AuthorName: strPtr("Undated")},
	}))
	require.NoError(t, testReviews.AppendReviews(testCtx, []storage.ReviewRecord{dup}))

	reviews, err := testReviews.ReviewsBySubject(testCtx, subject.ID)
	require.NoError(t, err)
	require.Len(t, reviews, 4)
	assert.Equal(t, "Sam", *reviews[0].AuthorName)
	assert.Equal(t, "Sam", *reviews[1].AuthorName)
	assert.Equal(t, "Ann", *reviews[2].AuthorName)
	assert.Nil(t, reviews[3].Time)
}

func TestNewsStore_Upsert(t *testing.T) {
	truncateTables(t)
	subject := seed(t, "union-craft", "brewery", 39.3316, -76.6339)
	now := time.Now().UTC().Truncate(time.Microsecond)

	require.NoError(t, testNews.UpsertNews(testCtx, []storage.NewsRecord{
		{SubjectID: subject.ID, Title: "A", URL: "https://a", RelevanceScore: 0.3, FetchedAt: now},
		{SubjectID: subject.ID, Title: "B", URL: "https://b", RelevanceScore: 0.6, FetchedAt: now},
	}))
	require.NoError(t, testNews.UpsertNews(testCtx, []storage.NewsRecord{
		{SubjectID: subject.ID, Title: "A2", URL: "https://a", RelevanceScore: 0.9, FetchedAt: now},
	}))

	news, err := testNews.NewsBySubject(testCtx, subject.ID, 10)
	require.NoError(t, err)
	require.Len(t, news, 2)
	assert.Equal(t, "A2", news[0].Title)
	assert.Equal(t, "B", news[1].Title)

	top, err := testNews.NewsBySubject(testCtx, subject.ID, 1)
	require.NoError(t, err)
	assert.Len(t, top, 1)
}
