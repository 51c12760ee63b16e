// Package enrich augments a new post with externally sourced metadata:
// a catalog link from Spotify and a summary from Wikipedia. Both
// upstreams are treated as unreliable. Enrichment is best-effort by
// contract: Enrich always returns a usable result and post creation
// must never fail or block indefinitely because an upstream did.
package enrich

import (
	"context"
	"encoding/json"
	"strings"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sony/gobreaker/v2"

	"github.com/cratenotes/cratenotes/utils"
)

// FallbackSummary is stored when the encyclopedia lookup fails or
// matches nothing.
const FallbackSummary = "Description not available."

const (
	cacheTTL     = 24 * time.Hour
	cacheOpLimit = 300 * time.Millisecond
)

// CatalogSearcher finds the canonical catalog link for an album.
// An empty link with a nil error means the catalog has no match.
type CatalogSearcher interface {
	SearchAlbumLink(ctx context.Context, artist, title string) (string, error)
}

// Summarizer produces a short description for a free-text query.
type Summarizer interface {
	Summarize(ctx context.Context, query string) (string, error)
}

// Result is what gets merged into the post before insert. A nil
// SpotifyURL is stored as a null link; WikiDesc is never empty.
type Result struct {
	SpotifyURL *string `json:"spotify"`
	WikiDesc   string  `json:"wikiDesc"`
}

// Enricher runs both lookups for a post. Each upstream sits behind its
// own circuit breaker so a dead service stops being dialed at all, and
// each call is bounded by timeout. Results for an album are cached in
// redis; people tend to recommend the same records.
type Enricher struct {
	catalog CatalogSearcher
	wiki    Summarizer
	cache   *redis.Client
	timeout time.Duration

	catalogCB *gobreaker.CircuitBreaker[string]
	summaryCB *gobreaker.CircuitBreaker[string]
}

// NewEnricher builds an enricher. cache may be nil to disable caching;
// timeout <= 0 falls back to 3s.
func NewEnricher(catalog CatalogSearcher, wiki Summarizer, cache *redis.Client, timeout time.Duration) *Enricher {
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	return &Enricher{
		catalog:   catalog,
		wiki:      wiki,
		cache:     cache,
		timeout:   timeout,
		catalogCB: gobreaker.NewCircuitBreaker[string](gobreaker.Settings{Name: "spotify"}),
		summaryCB: gobreaker.NewCircuitBreaker[string](gobreaker.Settings{Name: "wikipedia"}),
	}
}

// Enrich looks up the catalog link and summary for (artist, title).
// The two lookups run concurrently and degrade independently: a failed
// summary does not discard a found link, and vice versa. Enrich never
// returns an error.
func (e *Enricher) Enrich(ctx context.Context, artist, title string) Result {
	if cached, ok := e.cacheGet(ctx, artist, title); ok {
		return cached
	}

	var (
		wg              sync.WaitGroup
		link, summary   string
		linkErr, sumErr error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		link, linkErr = e.catalogCB.Execute(func() (string, error) {
			cctx, cancel := context.WithTimeout(ctx, e.timeout)
			defer cancel()
			return e.catalog.SearchAlbumLink(cctx, artist, title)
		})
	}()
	go func() {
		defer wg.Done()
		summary, sumErr = e.summaryCB.Execute(func() (string, error) {
			cctx, cancel := context.WithTimeout(ctx, e.timeout)
			defer cancel()
			return e.wiki.Summarize(cctx, title+" "+artist+" (album)")
		})
	}()
	wg.Wait()

	res := Result{WikiDesc: FallbackSummary}
	if linkErr == nil && link != "" {
		res.SpotifyURL = &link
	}
	if sumErr == nil && summary != "" {
		res.WikiDesc = summary
	}

	if linkErr != nil && utils.Sugar != nil {
		utils.Sugar.Warnf("catalog lookup degraded for %q / %q: %v", artist, title, linkErr)
	}
	if sumErr != nil && utils.Sugar != nil {
		utils.Sugar.Warnf("summary lookup degraded for %q / %q: %v", artist, title, sumErr)
	}

	// Only fully answered lookups are worth remembering; a degraded
	// result should be retried on the next recommendation.
	if linkErr == nil && sumErr == nil {
		e.cacheSet(ctx, artist, title, res)
	}
	return res
}

func cacheKey(artist, title string) string {
	return "enrich:" + strings.ToLower(strings.TrimSpace(artist)) + "|" + strings.ToLower(strings.TrimSpace(title))
}

func (e *Enricher) cacheGet(ctx context.Context, artist, title string) (Result, bool) {
	if e.cache == nil {
		return Result{}, false
	}
	cctx, cancel := context.WithTimeout(ctx, cacheOpLimit)
	defer cancel()
	b, err := e.cache.Get(cctx, cacheKey(artist, title)).Bytes()
	if err != nil {
		return Result{}, false
	}
	var res Result
	if err := json.Unmarshal(b, &res); err != nil {
		return Result{}, false
	}
	if res.WikiDesc == "" {
		res.WikiDesc = FallbackSummary
	}
	return res, true
}

func (e *Enricher) cacheSet(ctx context.Context, artist, title string, res Result) {
	if e.cache == nil {
		return
	}
	b, err := json.Marshal(res)
	if err != nil {
		return
	}
	cctx, cancel := context.WithTimeout(ctx, cacheOpLimit)
	defer cancel()
	if err := e.cache.Set(cctx, cacheKey(artist, title), b, cacheTTL).Err(); err != nil && utils.Sugar != nil {
		utils.Sugar.Debugf("enrichment cache set failed: %v", err)
	}
}
