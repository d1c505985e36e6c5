package news

import (
	"cmp"
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"slices"
	"strings"
	"time"

	"github.com/mmcdole/gofeed"

	"github.com/DjordjeVuckovic/brew-directory/internal/domain"
	"github.com/DjordjeVuckovic/brew-directory/internal/mapper"
	"github.com/DjordjeVuckovic/brew-directory/internal/storage"
)

const DefaultTopN = 10

type feedFetcher interface {
	Fetch(ctx context.Context, feedURL string) (*gofeed.Feed, error)
}

// Ingester fetches the news feed of an entry and keeps its top articles.
type Ingester struct {
	fetcher feedFetcher
	writer  storage.NewsWriter
	topN    int
	feedURL func(domain.Entry) string
	now     func() time.Time
}

type IngesterOption func(*Ingester)

func WithTopN(n int) IngesterOption {
	return func(i *Ingester) {
		if n > 0 {
			i.topN = n
		}
	}
}

// WithFeedURL overrides how the feed of an entry is located.
func WithFeedURL(fn func(domain.Entry) string) IngesterOption {
	return func(i *Ingester) {
		i.feedURL = fn
	}
}

func NewIngester(fetcher feedFetcher, writer storage.NewsWriter, opts ...IngesterOption) *Ingester {
	i := &Ingester{
		fetcher: fetcher,
		writer:  writer,
		topN:    DefaultTopN,
		feedURL: func(e domain.Entry) string {
			city := ""
			if e.City != nil {
				city = *e.City
			}
			return SearchFeedURL(e.Name, city)
		},
		now: func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(i)
	}
	return i
}

// Ingest stores the most relevant articles about e and returns how many were written.
func (i *Ingester) Ingest(ctx context.Context, e domain.Entry) (int, error) {
	feed, err := i.fetcher.Fetch(ctx, i.feedURL(e))
	if err != nil {
		return 0, fmt.Errorf("news for %s: %w", e.Slug, err)
	}

	articles := TopArticles(Articles(e, feed, i.now()), i.topN)
	if len(articles) == 0 {
		slog.Info("No relevant news", "slug", e.Slug)
		return 0, nil
	}

	recs := make([]storage.NewsRecord, 0, len(articles))
	for _, a := range articles {
		recs = append(recs, mapper.ToNewsRecord(a))
	}
	if err := i.writer.UpsertNews(ctx, recs); err != nil {
		return 0, fmt.Errorf("store news for %s: %w", e.Slug, err)
	}

	slog.Info("News stored", "slug", e.Slug, "articles", len(recs))
	return len(recs), nil
}

// Articles maps feed items about e to articles, skipping items without a link.
func Articles(e domain.Entry, feed *gofeed.Feed, fetchedAt time.Time) []domain.NewsArticle {
	if feed == nil {
		return []domain.NewsArticle{}
	}

	out := make([]domain.NewsArticle, 0, len(feed.Items))
	for _, item := range feed.Items {
		if item == nil || strings.TrimSpace(item.Link) == "" {
			continue
		}
		a := domain.NewsArticle{
			SubjectID: e.ID,
			Title:     strings.TrimSpace(item.Title),
			URL:       strings.TrimSpace(item.Link),
			Relevance: Relevance(e.Name, item.Title+" "+item.Description),
			FetchedAt: fetchedAt,
		}
		if u, err := url.Parse(a.URL); err == nil && u.Host != "" {
			host := strings.TrimPrefix(u.Host, "www.")
			a.SourceDomain = &host
		}
		if author := itemAuthor(item); author != "" {
			a.Author = &author
		}
		if image := itemImage(item); image != "" {
			a.ImageURL = &image
		}
		if item.PublishedParsed != nil {
			published := item.PublishedParsed.UTC()
			a.PublishedAt = &published
		}
		out = append(out, a)
	}
	return out
}

// TopArticles keeps the n best-scoring articles with a positive score,
// newest first among equal scores.
func TopArticles(articles []domain.NewsArticle, n int) []domain.NewsArticle {
	out := make([]domain.NewsArticle, 0, len(articles))
	seen := make(map[string]struct{}, len(articles))
	for _, a := range articles {
		if a.Relevance <= 0 {
			continue
		}
		if _, dup := seen[a.URL]; dup {
			continue
		}
		seen[a.URL] = struct{}{}
		out = append(out, a)
	}

	slices.SortStableFunc(out, func(a, b domain.NewsArticle) int {
		if c := cmp.Compare(b.Relevance, a.Relevance); c != 0 {
			return c
		}
		switch {
		case a.PublishedAt != nil && b.PublishedAt != nil:
			return b.PublishedAt.Compare(*a.PublishedAt)
		case a.PublishedAt != nil:
			return -1
		case b.PublishedAt != nil:
			return 1
		}
		return 0
	})
	if n > 0 && len(out) > n {
		out = out[:n]
	}
	return out
}

func itemAuthor(item *gofeed.Item) string {
	for _, a := range item.Authors {
		if a != nil && strings.TrimSpace(a.Name) != "" {
			return strings.TrimSpace(a.Name)
		}
	}
	if item.Author != nil {
		return strings.TrimSpace(item.Author.Name)
	}
	return ""
}

func itemImage(item *gofeed.Item) string {
	if item.Image != nil && item.Image.URL != "" {
		return item.Image.URL
	}
	for _, enc := range item.Enclosures {
		if enc != nil && strings.HasPrefix(enc.Type, "image/") {
			return enc.URL
		}
	}
	return ""
}
