// Package proximity finds directory entries within a radius of a point.
//
// The primary path delegates to a server-side NearbyQuerier. When none is wired, or it
// fails, every candidate is fetched and filtered with the in-process Haversine distance.
// Both paths order results by distance, ties broken by surrogate id.
package proximity

import (
	"bytes"
	"cmp"
	"context"
	"fmt"
	"log/slog"
	"math"
	"slices"

	"github.com/DjordjeVuckovic/brew-directory/internal/capability"
	"github.com/DjordjeVuckovic/brew-directory/internal/domain"
	"github.com/DjordjeVuckovic/brew-directory/internal/mapper"
	"github.com/DjordjeVuckovic/brew-directory/internal/storage"
	"github.com/DjordjeVuckovic/brew-directory/pkg/geo"
)

// Defaults applied when a Request leaves radius or limit unset.
const (
	DefaultRadiusKm = 5.0
	DefaultLimit    = 10
)

// Request describes one proximity lookup. Zero RadiusKm and Limit take the defaults.
type Request struct {
	Lat      float64
	Lon      float64
	RadiusKm float64
	Limit    int
	Type     string
}

func (r Request) withDefaults() Request {
	if r.RadiusKm <= 0 {
		r.RadiusKm = DefaultRadiusKm
	}
	if r.Limit <= 0 {
		r.Limit = DefaultLimit
	}
	return r
}

// Resolver answers proximity lookups over a reader and an optional server-side querier.
type Resolver struct {
	reader storage.EntryReader
	nearby storage.NearbyQuerier
	probe  capability.Probe
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithNearbyQuerier enables the server-side primary path.
func WithNearbyQuerier(q storage.NearbyQuerier) Option {
	return func(r *Resolver) {
		r.nearby = q
	}
}

// WithProbe skips the primary path while the probe reports it unavailable.
func WithProbe(p capability.Probe) Option {
	return func(r *Resolver) {
		r.probe = p
	}
}

// NewResolver builds a Resolver whose fallback path reads from reader.
func NewResolver(reader storage.EntryReader, opts ...Option) *Resolver {
	r := &Resolver{reader: reader}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve never fails: any error is logged and yields an empty result.
func (r *Resolver) Resolve(ctx context.Context, req Request) []domain.Entry {
	entries, err := r.resolve(ctx, req)
	if err != nil {
		slog.Error("Proximity lookup failed", "lat", req.Lat, "lon", req.Lon, "radius_km", req.RadiusKm, "error", err)
		return []domain.Entry{}
	}
	return entries
}

func (r *Resolver) resolve(ctx context.Context, req Request) ([]domain.Entry, error) {
	if math.IsNaN(req.RadiusKm) || math.IsInf(req.RadiusKm, 0) {
		return nil, fmt.Errorf("invalid radius %f km", req.RadiusKm)
	}
	req = req.withDefaults()
	if !geo.ValidCoordinates(req.Lat, req.Lon) {
		return nil, fmt.Errorf("invalid coordinates (%f, %f)", req.Lat, req.Lon)
	}

	if r.primaryEnabled(ctx) {
		entries, err := r.primary(ctx, req)
		if err == nil {
			return entries, nil
		}
		slog.Warn("Server-side nearby query failed, using fallback", "error", err)
		if r.probe != nil {
			r.probe.MarkUnavailable(ctx, capability.NearbyQuery)
		}
	}

	return r.fallback(ctx, req)
}

func (r *Resolver) primaryEnabled(ctx context.Context) bool {
	if r.nearby == nil {
		return false
	}
	return r.probe == nil || r.probe.Available(ctx, capability.NearbyQuery)
}

func (r *Resolver) primary(ctx context.Context, req Request) ([]domain.Entry, error) {
	recs, err := r.nearby.Nearby(ctx, storage.NearbyQuery{
		Lat:          req.Lat,
		Lon:          req.Lon,
		RadiusMeters: geo.KmToMeters(req.RadiusKm),
		Type:         req.Type,
		Limit:        req.Limit,
	})
	if err != nil {
		return nil, err
	}

	entries := make([]domain.Entry, 0, len(recs))
	for _, rec := range recs {
		entries = append(entries, mapper.ToNearbyEntry(rec))
	}
	return sortAndTruncate(entries, req.Limit), nil
}

func (r *Resolver) fallback(ctx context.Context, req Request) ([]domain.Entry, error) {
	q := storage.Query{Field: storage.FieldAll}
	if req.Type != "" {
		q = storage.Query{Field: storage.FieldType, Value: req.Type}
	}

	recs, err := r.reader.FindMany(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("fallback fetch: %w", err)
	}

	radiusMiles := geo.KmToMiles(req.RadiusKm)
	entries := make([]domain.Entry, 0)
	for _, rec := range recs {
		if rec.Latitude == nil || rec.Longitude == nil {
			continue
		}
		d := geo.Distance(req.Lat, req.Lon, *rec.Latitude, *rec.Longitude)
		if d > radiusMiles {
			continue
		}
		e := mapper.ToEntry(rec)
		e.DistanceMiles = &d
		entries = append(entries, e)
	}
	return sortAndTruncate(entries, req.Limit), nil
}

func sortAndTruncate(entries []domain.Entry, limit int) []domain.Entry {
	slices.SortStableFunc(entries, func(a, b domain.Entry) int {
		if c := cmp.Compare(*a.DistanceMiles, *b.DistanceMiles); c != 0 {
			return c
		}
		return bytes.Compare(a.ID[:], b.ID[:])
	})
	if len(entries) > limit {
		entries = entries[:limit]
	}
	return entries
}
