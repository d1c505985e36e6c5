package es

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esutil"
	"github.com/elastic/go-elasticsearch/v8/typedapi/types"
	"github.com/elastic/go-elasticsearch/v8/typedapi/types/enums/distanceunit"
	"github.com/elastic/go-elasticsearch/v8/typedapi/types/enums/sortorder"

	"github.com/DjordjeVuckovic/brew-directory/internal/storage"
)

// GeoIndex mirrors directory entries into Elasticsearch and answers proximity
// queries with a geo_distance filter sorted by _geo_distance.
type GeoIndex struct {
	client       *elasticsearch.TypedClient
	indexName    string
	indexBuilder *IndexBuilder
}

func NewGeoIndex(ctx context.Context, config ClientConfig) (*GeoIndex, error) {
	client, err := newClient(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create Elasticsearch client: %w", err)
	}

	idx := &GeoIndex{
		client:       client,
		indexName:    config.Index(),
		indexBuilder: NewIndexBuilder(),
	}

	if err := idx.EnsureIndex(ctx); err != nil {
		return nil, fmt.Errorf("failed to ensure index exists: %w", err)
	}

	return idx, nil
}

func (g *GeoIndex) GetCapabilities() storage.Capabilities {
	return storage.Capabilities{Nearby: true}
}

func (g *GeoIndex) Index(ctx context.Context, rec storage.EntryRecord) error {
	doc := g.indexBuilder.mapToESDocument(rec)

	res, err := g.client.Index(g.indexName).Id(rec.ID.String()).Document(doc).Do(ctx)
	if err != nil {
		return fmt.Errorf("failed to index entry %s: %w", rec.ID, err)
	}

	slog.Debug("Entry indexed", "id", rec.ID, "index", g.indexName, "result", res.Result)
	return nil
}

// IndexAll bulk-indexes recs and reports how many failed.
func (g *GeoIndex) IndexAll(ctx context.Context, recs []storage.EntryRecord) error {
	if len(recs) == 0 {
		return nil
	}

	bi, err := esutil.NewBulkIndexer(esutil.BulkIndexerConfig{
		Index:         g.indexName,
		Client:        g.client,
		NumWorkers:    4,
		FlushBytes:    5e+6, // 5MB
		FlushInterval: 30 * time.Second,
	})
	if err != nil {
		return fmt.Errorf("failed to create bulk indexer: %w", err)
	}

	var stats bulkStats

	for _, rec := range recs {
		docBytes, err := json.Marshal(g.indexBuilder.mapToESDocument(rec))
		if err != nil {
			slog.Error("failed to marshal document", "error", err, "id", rec.ID)
			stats.failed.Add(1)
			continue
		}

		err = bi.Add(
			ctx,
			esutil.BulkIndexerItem{
				Action:     "index",
				DocumentID: rec.ID.String(),
				Body:       bytes.NewReader(docBytes),
				OnSuccess:  stats.onSuccess,
				OnFailure:  stats.onFailure,
			},
		)
		if err != nil {
			stats.failed.Add(1)
			slog.Error("failed to add document to bulk indexer", "error", err, "id", rec.ID)
		}
	}

	if err := bi.Close(ctx); err != nil {
		return fmt.Errorf("failed to close bulk indexer: %w", err)
	}

	successful, failed := stats.successful.Load(), stats.failed.Load()
	slog.Info("Bulk indexing completed",
		"successful", successful,
		"failed", failed,
		"total", len(recs),
		"index", g.indexName)

	if failed > 0 {
		return fmt.Errorf("failed to index %d out of %d entries", failed, len(recs))
	}
	return nil
}

// bulkStats counts bulk item outcomes. The callbacks run on the bulk indexer's worker goroutines.
type bulkStats struct {
	successful atomic.Int64
	failed     atomic.Int64
}

func (s *bulkStats) onSuccess(context.Context, esutil.BulkIndexerItem, esutil.BulkIndexerResponseItem) {
	s.successful.Add(1)
}

func (s *bulkStats) onFailure(_ context.Context, item esutil.BulkIndexerItem, res esutil.BulkIndexerResponseItem, err error) {
	s.failed.Add(1)
	if err != nil {
		slog.Error("bulk index error", "error", err, "id", item.DocumentID)
	} else {
		slog.Error("bulk index error", "status", res.Status, "error", res.Error.Type, "reason", res.Error.Reason, "id", item.DocumentID)
	}
}

func (g *GeoIndex) Nearby(ctx context.Context, q storage.NearbyQuery) ([]storage.NearbyRecord, error) {
	origin := types.LatLonGeoLocation{Lat: types.Float64(q.Lat), Lon: types.Float64(q.Lon)}

	filters := []types.Query{
		{
			GeoDistance: &types.GeoDistanceQuery{
				Distance:         strconv.FormatFloat(q.RadiusMeters, 'f', -1, 64) + "m",
				GeoDistanceQuery: map[string]types.GeoLocation{"location": origin},
			},
		},
	}
	if q.Type != "" {
		filters = append(filters, types.Query{
			Term: map[string]types.TermQuery{"type": {Value: q.Type}},
		})
	}

	searchReq := g.client.Search().
		Index(g.indexName).
		Query(&types.Query{Bool: &types.BoolQuery{Filter: filters}}).
		Sort(
			&types.SortOptions{
				GeoDistance_: &types.GeoDistanceSort{
					GeoDistanceSort: map[string][]types.GeoLocation{"location": {origin}},
					Unit:            &distanceunit.Meters,
					Order:           &sortorder.Asc,
				},
			},
			&types.SortOptions{
				SortOptions: map[string]types.FieldSort{"id": {Order: &sortorder.Asc}},
			},
		)
	if q.Limit > 0 {
		searchReq = searchReq.Size(q.Limit)
	}

	res, err := searchReq.Do(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to execute geo distance search: %w", err)
	}

	out := make([]storage.NearbyRecord, 0, len(res.Hits.Hits))
	for _, hit := range res.Hits.Hits {
		var doc EntryDocument
		if err := json.Unmarshal(hit.Source_, &doc); err != nil {
			return nil, fmt.Errorf("failed to unmarshal hit: %w", err)
		}
		if len(hit.Sort) == 0 {
			return nil, fmt.Errorf("hit %v has no sort distance", hit.Id_)
		}
		distance, err := sortDistance(hit.Sort[0])
		if err != nil {
			return nil, err
		}
		out = append(out, storage.NearbyRecord{EntryRecord: doc.EntryRecord, DistanceMeters: distance})
	}

	slog.Debug("Geo distance search completed", "index", g.indexName, "hits", len(out))
	return out, nil
}

// Refresh makes recent writes visible to search.
func (g *GeoIndex) Refresh(ctx context.Context) error {
	if _, err := g.client.Indices.Refresh().Index(g.indexName).Do(ctx); err != nil {
		return fmt.Errorf("failed to refresh index: %w", err)
	}
	return nil
}

func (g *GeoIndex) EnsureIndex(ctx context.Context) error {
	existsRes, err := g.client.Indices.Exists(g.indexName).Do(ctx)
	if err != nil {
		return fmt.Errorf("failed to check if index exists: %w", err)
	}

	if existsRes {
		slog.Info("Index already exists", "index", g.indexName)
		return nil
	}

	mappings := g.indexBuilder.buildMapping()

	createRes, err := g.client.Indices.Create(g.indexName).
		Mappings(&mappings).
		Do(ctx)
	if err != nil {
		return fmt.Errorf("failed to create index: %w", err)
	}

	if !createRes.Acknowledged {
		return fmt.Errorf("index creation was not acknowledged")
	}

	slog.Info("Index created successfully", "index", g.indexName)
	return nil
}

func sortDistance(v types.FieldValue) (float64, error) {
	switch d := v.(type) {
	case float64:
		return d, nil
	case json.Number:
		return d.Float64()
	case string:
		return strconv.ParseFloat(d, 64)
	default:
		return 0, fmt.Errorf("unexpected sort distance type %T", v)
	}
}
