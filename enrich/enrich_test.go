package enrich_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/cratenotes/cratenotes/enrich"
)

type stubCatalog struct {
	link  string
	err   error
	delay time.Duration
}

func (s stubCatalog) SearchAlbumLink(ctx context.Context, artist, title string) (string, error) {
	if s.delay > 0 {
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(s.delay):
		}
	}
	return s.link, s.err
}

type stubWiki struct {
	summary string
	err     error
	delay   time.Duration
	gotQ    *string
}

func (s stubWiki) Summarize(ctx context.Context, query string) (string, error) {
	if s.gotQ != nil {
		*s.gotQ = query
	}
	if s.delay > 0 {
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(s.delay):
		}
	}
	return s.summary, s.err
}

func TestEnrichBothSucceed(t *testing.T) {
	var query string
	e := enrich.NewEnricher(
		stubCatalog{link: "https://open.spotify.com/album/abc"},
		stubWiki{summary: "OK Computer is the third studio album by Radiohead.", gotQ: &query},
		nil, time.Second,
	)

	res := e.Enrich(context.Background(), "Radiohead", "OK Computer")

	require.NotNil(t, res.SpotifyURL)
	require.Equal(t, "https://open.spotify.com/album/abc", *res.SpotifyURL)
	require.Equal(t, "OK Computer is the third studio album by Radiohead.", res.WikiDesc)
	require.Equal(t, "OK Computer Radiohead (album)", query)
}

func TestEnrichNoCatalogMatchIsNotAnError(t *testing.T) {
	e := enrich.NewEnricher(
		stubCatalog{link: ""},
		stubWiki{summary: "Some summary."},
		nil, time.Second,
	)

	res := e.Enrich(context.Background(), "Nobody", "Unknown Album")

	require.Nil(t, res.SpotifyURL)
	require.Equal(t, "Some summary.", res.WikiDesc)
}

func TestEnrichKeepsPartialSuccess(t *testing.T) {
	t.Run("summary fails, link kept", func(t *testing.T) {
		e := enrich.NewEnricher(
			stubCatalog{link: "https://open.spotify.com/album/abc"},
			stubWiki{err: errors.New("wiki down")},
			nil, time.Second,
		)

		res := e.Enrich(context.Background(), "Radiohead", "OK Computer")

		require.NotNil(t, res.SpotifyURL)
		require.Equal(t, enrich.FallbackSummary, res.WikiDesc)
	})

	t.Run("catalog fails, summary kept", func(t *testing.T) {
		e := enrich.NewEnricher(
			stubCatalog{err: errors.New("spotify down")},
			stubWiki{summary: "Still here."},
			nil, time.Second,
		)

		res := e.Enrich(context.Background(), "Radiohead", "OK Computer")

		require.Nil(t, res.SpotifyURL)
		require.Equal(t, "Still here.", res.WikiDesc)
	})
}

func TestEnrichBothFailYieldsSentinels(t *testing.T) {
	e := enrich.NewEnricher(
		stubCatalog{err: errors.New("spotify down")},
		stubWiki{err: errors.New("wiki down")},
		nil, time.Second,
	)

	res := e.Enrich(context.Background(), "Radiohead", "OK Computer")

	require.Nil(t, res.SpotifyURL)
	require.Equal(t, enrich.FallbackSummary, res.WikiDesc)
}

func TestEnrichBoundsSlowLookups(t *testing.T) {
	e := enrich.NewEnricher(
		stubCatalog{link: "https://open.spotify.com/album/abc", delay: 5 * time.Second},
		stubWiki{summary: "slow", delay: 5 * time.Second},
		nil, 50*time.Millisecond,
	)

	start := time.Now()
	res := e.Enrich(context.Background(), "Radiohead", "OK Computer")

	require.Less(t, time.Since(start), time.Second, "enrichment must not wait out a hung upstream")
	require.Nil(t, res.SpotifyURL)
	require.Equal(t, enrich.FallbackSummary, res.WikiDesc)
}

func TestEnrichRunsLookupsConcurrently(t *testing.T) {
	e := enrich.NewEnricher(
		stubCatalog{link: "https://open.spotify.com/album/abc", delay: 150 * time.Millisecond},
		stubWiki{summary: "ok", delay: 150 * time.Millisecond},
		nil, time.Second,
	)

	start := time.Now()
	res := e.Enrich(context.Background(), "Radiohead", "OK Computer")

	require.Less(t, time.Since(start), 280*time.Millisecond, "lookups should overlap, not run back to back")
	require.NotNil(t, res.SpotifyURL)
}
