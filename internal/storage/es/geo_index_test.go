package es

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/elastic/go-elasticsearch/v8/esutil"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DjordjeVuckovic/brew-directory/internal/storage"
	pkgtesting "github.com/DjordjeVuckovic/brew-directory/pkg/testing"
)

func f64Ptr(f float64) *float64 { return &f }
func strPtr(s string) *string   { return &s }

func entry(slug, typ string, lat, lon float64) storage.EntryRecord {
	return storage.EntryRecord{
		ID:        uuid.New(),
		Slug:      slug,
		Name:      slug,
		Type:      strPtr(typ),
		Latitude:  f64Ptr(lat),
		Longitude: f64Ptr(lon),
		Hours:     map[string]*string{"monday": nil},
	}
}

func TestIndexBuilder_MapToESDocument(t *testing.T) {
	b := NewIndexBuilder()

	doc := b.mapToESDocument(entry("inner-harbor", "landmark", 39.2856, -76.6122))
	require.NotNil(t, doc.Location)
	assert.Equal(t, 39.2856, doc.Location.Lat)
	assert.Equal(t, -76.6122, doc.Location.Lon)

	noGeo := b.mapToESDocument(storage.EntryRecord{ID: uuid.New(), Slug: "online-only"})
	assert.Nil(t, noGeo.Location)
}

func TestGeoIndex_Nearby(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping elasticsearch container test in short mode")
	}

	ctx := context.Background()
	container := pkgtesting.NewESContainer(ctx, t)

	idx, err := NewGeoIndex(ctx, ClientConfig{Addresses: container.Addresses(), IndexName: "attractions_test"})
	require.NoError(t, err)

	recs := []storage.EntryRecord{
		entry("fort-mchenry", "landmark", 39.2633, -76.5800),
		entry("inner-harbor", "landmark", 39.2856, -76.6122),
		entry("annapolis-dock", "landmark", 38.9784, -76.4922),
		entry("diamondback", "brewery", 39.2730, -76.5930),
	}
	require.NoError(t, idx.IndexAll(ctx, recs[:3]))
	require.NoError(t, idx.Index(ctx, recs[3]))
	require.NoError(t, idx.Refresh(ctx))

	got, err := idx.Nearby(ctx, storage.NearbyQuery{
		Lat: 39.2860, Lon: -76.6100, RadiusMeters: 5000, Type: "landmark", Limit: 10,
	})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "inner-harbor", got[0].Slug)
	assert.Equal(t, "fort-mchenry", got[1].Slug)
	assert.Less(t, got[0].DistanceMeters, got[1].DistanceMeters)

	all, err := idx.Nearby(ctx, storage.NearbyQuery{Lat: 39.2860, Lon: -76.6100, RadiusMeters: 5000})
	require.NoError(t, err)
	assert.Len(t, all, 3)

	require.NoError(t, idx.EnsureIndex(ctx), "ensuring an existing index is a no-op")
}

func TestBulkStats_ConcurrentCallbacks(t *testing.T) {
	const workers, perWorker = 8, 500

	var (
		stats bulkStats
		wg    sync.WaitGroup
	)
	ctx := context.Background()
	item := esutil.BulkIndexerItem{DocumentID: "doc"}

	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func(w int) {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				if (w+i)%2 == 0 {
					stats.onSuccess(ctx, item, esutil.BulkIndexerResponseItem{})
				} else {
					stats.onFailure(ctx, item, esutil.BulkIndexerResponseItem{}, errors.New("version conflict"))
				}
			}
		}(w)
	}
	wg.Wait()

	assert.Equal(t, int64(workers*perWorker/2), stats.successful.Load())
	assert.Equal(t, int64(workers*perWorker/2), stats.failed.Load())
}

func TestGeoIndex_IndexAllMany(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping elasticsearch container test in short mode")
	}

	ctx := context.Background()
	container := pkgtesting.NewESContainer(ctx, t)

	idx, err := NewGeoIndex(ctx, ClientConfig{Addresses: container.Addresses(), IndexName: "attractions_bulk_test"})
	require.NoError(t, err)

	recs := make([]storage.EntryRecord, 0, 500)
	for i := 0; i < 500; i++ {
		recs = append(recs, entry(fmt.Sprintf("stop-%03d", i), "landmark", 39.0+float64(i)/1000, -76.6))
	}
	require.NoError(t, idx.IndexAll(ctx, recs))
	require.NoError(t, idx.Refresh(ctx))

	got, err := idx.Nearby(ctx, storage.NearbyQuery{Lat: 39.0, Lon: -76.6, RadiusMeters: 100_000, Limit: 1000})
	require.NoError(t, err)
	assert.Len(t, got, len(recs))
}
