// Package enrich fills directory entries from Google Places details.
package enrich

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"googlemaps.github.io/maps"

	"github.com/DjordjeVuckovic/brew-directory/internal/domain"
	"github.com/DjordjeVuckovic/brew-directory/internal/mapper"
	"github.com/DjordjeVuckovic/brew-directory/internal/storage"
)

const ReviewSource = "google"

var ErrNoPlaceID = errors.New("entry has no place id")

var detailFields = []string{
	"name", "formatted_address", "address_component", "geometry", "formatted_phone_number",
	"website", "rating", "user_ratings_total", "price_level", "opening_hours", "photo", "review", "type",
}

// DetailsClient is satisfied by *maps.Client.
type DetailsClient interface {
	PlaceDetails(ctx context.Context, r *maps.PlaceDetailsRequest) (maps.PlaceDetailsResult, error)
}

type Upserter interface {
	UpsertAttraction(ctx context.Context, e domain.Entry) (*domain.Entry, error)
}

type Enricher struct {
	client  DetailsClient
	entries Upserter
	reviews storage.ReviewWriter
	fields  []maps.PlaceDetailsFieldMask
	now     func() time.Time
}

func NewClient(apiKey string, timeout time.Duration) (*maps.Client, error) {
	return maps.NewClient(maps.WithAPIKey(apiKey), maps.WithHTTPClient(&http.Client{Timeout: timeout}))
}

func NewEnricher(client DetailsClient, entries Upserter, reviews storage.ReviewWriter) (*Enricher, error) {
	fields := make([]maps.PlaceDetailsFieldMask, 0, len(detailFields))
	for _, f := range detailFields {
		mask, err := maps.ParsePlaceDetailsFieldMask(f)
		if err != nil {
			return nil, fmt.Errorf("place details field %q: %w", f, err)
		}
		fields = append(fields, mask)
	}
	return &Enricher{
		client:  client,
		entries: entries,
		reviews: reviews,
		fields:  fields,
		now:     func() time.Time { return time.Now().UTC() },
	}, nil
}

// Enrich refreshes e from its Places details, upserts it and appends the returned reviews.
// It returns the stored entry and the number of reviews appended.
func (en *Enricher) Enrich(ctx context.Context, e domain.Entry) (*domain.Entry, int, error) {
	if e.PlaceID == nil || *e.PlaceID == "" {
		return nil, 0, ErrNoPlaceID
	}

	details, err := en.client.PlaceDetails(ctx, &maps.PlaceDetailsRequest{
		PlaceID: *e.PlaceID,
		Fields:  en.fields,
	})
	if err != nil {
		return nil, 0, fmt.Errorf("place details %s: %w", *e.PlaceID, err)
	}

	stored, err := en.entries.UpsertAttraction(ctx, ApplyDetails(e, details, en.now()))
	if err != nil {
		return nil, 0, err
	}

	reviews := Reviews(stored.ID, details)
	if len(reviews) == 0 {
		return stored, 0, nil
	}
	recs := make([]storage.ReviewRecord, 0, len(reviews))
	for _, r := range reviews {
		recs = append(recs, mapper.ToReviewRecord(r))
	}
	if err := en.reviews.AppendReviews(ctx, recs); err != nil {
		return stored, 0, fmt.Errorf("append reviews for %s: %w", stored.Slug, err)
	}

	slog.Info("Entry enriched", "slug", stored.Slug, "reviews", len(recs))
	return stored, len(recs), nil
}

// ApplyDetails overlays non-empty Places fields onto e. Fields Places leaves blank keep their value.
func ApplyDetails(e domain.Entry, d maps.PlaceDetailsResult, syncedAt time.Time) domain.Entry {
	if d.Name != "" {
		e.Name = d.Name
	}
	setString(&e.Address, d.FormattedAddress)
	setString(&e.Phone, d.FormattedPhoneNumber)
	setString(&e.Website, d.Website)

	for _, c := range d.AddressComponents {
		switch {
		case slices.Contains(c.Types, "locality"):
			setString(&e.City, c.LongName)
		case slices.Contains(c.Types, "administrative_area_level_1"):
			setString(&e.State, c.ShortName)
		case slices.Contains(c.Types, "administrative_area_level_2"):
			setString(&e.County, c.LongName)
		case slices.Contains(c.Types, "postal_code"):
			setString(&e.Zip, c.LongName)
		}
	}

	if loc := d.Geometry.Location; loc.Lat != 0 || loc.Lng != 0 {
		lat, lng := loc.Lat, loc.Lng
		e.Lat, e.Lon = &lat, &lng
	}
	if d.Rating > 0 {
		rating := float64(d.Rating)
		e.Rating = &rating
	}
	if d.UserRatingsTotal > 0 {
		total := d.UserRatingsTotal
		e.RatingCount = &total
	}
	if d.PriceLevel > 0 {
		level := d.PriceLevel
		e.PriceLevel = &level
	}
	if d.OpeningHours != nil && len(d.OpeningHours.WeekdayText) > 0 {
		e.Hours = Hours(d.OpeningHours.WeekdayText)
	}
	if len(d.Photos) > 0 {
		photos := make([]string, 0, len(d.Photos))
		for _, p := range d.Photos {
			if p.PhotoReference != "" {
				photos = append(photos, p.PhotoReference)
			}
		}
		e.Photos = photos
	}

	if e.LastSyncedAt == nil {
		e.LastSyncedAt = &syncedAt
	}
	return e
}

// Hours parses Places weekday text ("Monday: 4:00 – 11:00 PM") into a day map.
// Closed days map to nil.
func Hours(weekdayText []string) map[string]*string {
	out := make(map[string]*string, len(weekdayText))
	for _, line := range weekdayText {
		day, hours, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		day = strings.ToLower(strings.TrimSpace(day))
		hours = strings.TrimSpace(hours)
		if strings.EqualFold(hours, "closed") || hours == "" {
			out[day] = nil
			continue
		}
		out[day] = &hours
	}
	return out
}

func Reviews(subjectID uuid.UUID, d maps.PlaceDetailsResult) []domain.Review {
	out := make([]domain.Review, 0, len(d.Reviews))
	for _, r := range d.Reviews {
		review := domain.Review{
			SubjectID: subjectID,
			Source:    strPtr(ReviewSource),
		}
		setString(&review.AuthorName, r.AuthorName)
		setString(&review.Text, r.Text)
		setString(&review.AuthorURL, r.AuthorURL)
		setString(&review.ProfilePhotoURL, r.AuthorProfilePhoto)
		if r.Rating > 0 {
			rating := float64(r.Rating)
			review.Rating = &rating
		}
		if r.Time > 0 {
			ts := int64(r.Time)
			review.Time = &ts
		}
		out = append(out, review)
	}
	return out
}

func setString(dst **string, v string) {
	if v = strings.TrimSpace(v); v != "" {
		*dst = &v
	}
}

func strPtr(s string) *string { return &s }
