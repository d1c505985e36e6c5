package ingest

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DjordjeVuckovic/brew-directory/internal/directory"
	"github.com/DjordjeVuckovic/brew-directory/internal/ingest/collector"
	"github.com/DjordjeVuckovic/brew-directory/internal/ingest/reader"
	"github.com/DjordjeVuckovic/brew-directory/internal/storage/in_mem"
	"github.com/DjordjeVuckovic/brew-directory/pkg/apis"
)

var testMapping = &apis.DataMapping{
	Kind:     "DataMapping",
	Version:  "v1",
	Metadata: apis.Metadata{Name: "test"},
	Dataset:  "test",
	FieldMappings: []apis.FieldMapping{
		{Source: "name", SourceType: "string", Target: "Name", Required: true},
		{Source: "place_id", SourceType: "string", Target: "PlaceID"},
		{Source: "city", SourceType: "string", Target: "City"},
		{Source: "latitude", SourceType: "float", Target: "Lat"},
		{Source: "longitude", SourceType: "float", Target: "Lon"},
	},
}

func newPipeline(csv string, opts ...ImportPipelineOption) (*ImportPipeline, *directory.Service) {
	store := in_mem.NewInMemStorer()
	svc := directory.NewService(store, store)
	c := collector.NewEntryCollector(reader.NewCSVReader(strings.NewReader(csv)), reader.NewEntryMapper(testMapping))
	// a single reader worker keeps row order, so later rows win
	c.Workers = 1
	return NewImportPipeline(c, svc, opts...), svc
}

func TestImportPipeline_Run(t *testing.T) {
	csv := `name,place_id,city,latitude,longitude
Side Project,p1,Maplewood,38.6123,-90.3241
Perennial,p2,St. Louis,38.5920,-90.2433
,p3,St. Louis,38.6,-90.2
Half Located,p4,St. Louis,38.6,
Side Project Renamed,p1,Maplewood,38.6123,-90.3241`

	p, svc := newPipeline(csv, WithConcurrency(1))

	stats, err := p.Run(t.Context())

	require.NoError(t, err)
	assert.Equal(t, int64(3), stats.Upserted)
	// missing name and partial location
	assert.Equal(t, int64(2), stats.Failed)

	got := svc.AttractionByPlaceID(t.Context(), "p1")
	require.NotNil(t, got)
	assert.Equal(t, "Side Project Renamed", got.Name)
	assert.Len(t, svc.AttractionsByCity(t.Context(), "St. Louis", 0), 1)
}

func TestImportPipeline_Run_Concurrent(t *testing.T) {
	var b strings.Builder
	b.WriteString("name,place_id,city,latitude,longitude\n")
	names := []string{"Alpha", "Bravo", "Charlie", "Delta", "Echo", "Foxtrot", "Golf", "Hotel"}
	for i, n := range names {
		b.WriteString(n + ",p" + string(rune('a'+i)) + ",Springfield,39.8,-89.6\n")
	}

	p, svc := newPipeline(b.String(), WithConcurrency(4))

	stats, err := p.Run(t.Context())

	require.NoError(t, err)
	assert.Equal(t, int64(len(names)), stats.Upserted)
	assert.Zero(t, stats.Failed)
	assert.Len(t, svc.AttractionsByCity(t.Context(), "Springfield", 0), len(names))
}

func TestImportPipeline_Run_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	p, _ := newPipeline("name\nSide Project\n")

	_, err := p.Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
