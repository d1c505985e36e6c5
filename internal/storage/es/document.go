package es

import (
	"time"

	"github.com/elastic/go-elasticsearch/v8/typedapi/types"

	"github.com/DjordjeVuckovic/brew-directory/internal/storage"
)

// EntryDocument is the indexed shape of a directory entry: the stored record plus a geo_point.
type EntryDocument struct {
	storage.EntryRecord
	Location  *GeoPoint `json:"location,omitempty"`
	IndexedAt time.Time `json:"indexed_at"`
}

type GeoPoint struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

type IndexBuilder struct{}

func NewIndexBuilder() *IndexBuilder {
	return &IndexBuilder{}
}

func (b *IndexBuilder) mapToESDocument(rec storage.EntryRecord) EntryDocument {
	doc := EntryDocument{
		EntryRecord: rec,
		IndexedAt:   time.Now().UTC(),
	}
	if rec.Latitude != nil && rec.Longitude != nil {
		doc.Location = &GeoPoint{Lat: *rec.Latitude, Lon: *rec.Longitude}
	}
	return doc
}

func (b *IndexBuilder) buildMapping() types.TypeMapping {
	hours := types.NewObjectProperty()
	disabled := false
	hours.Enabled = &disabled

	return types.TypeMapping{
		Properties: map[string]types.Property{
			"id":             types.NewKeywordProperty(),
			"place_id":       types.NewKeywordProperty(),
			"slug":           types.NewKeywordProperty(),
			"name":           b.createTextPropertyWithKeyword(),
			"type":           types.NewKeywordProperty(),
			"city":           types.NewKeywordProperty(),
			"state":          types.NewKeywordProperty(),
			"latitude":       types.NewDoubleNumberProperty(),
			"longitude":      types.NewDoubleNumberProperty(),
			"location":       types.NewGeoPointProperty(),
			"hours":          hours,
			"photos":         types.NewKeywordProperty(),
			"amenities":      types.NewKeywordProperty(),
			"created_at":     types.NewDateProperty(),
			"updated_at":     types.NewDateProperty(),
			"last_synced_at": types.NewDateProperty(),
			"indexed_at":     types.NewDateProperty(),
		},
	}
}

func (b *IndexBuilder) createTextPropertyWithKeyword() types.Property {
	textProp := types.NewTextProperty()
	textProp.Fields = map[string]types.Property{
		"keyword": types.NewKeywordProperty(),
	}
	return textProp
}
