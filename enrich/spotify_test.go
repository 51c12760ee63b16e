package enrich_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cratenotes/cratenotes/enrich"
)

func spotifyTestClient(srv *httptest.Server) *enrich.SpotifyClient {
	return &enrich.SpotifyClient{HTTP: srv.Client(), BaseURL: srv.URL}
}

func TestSpotifySearchAlbumLink(t *testing.T) {
	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v1/search", r.URL.Path)
		gotQuery = r.URL.Query().Get("q")
		fmt.Fprint(w, `{"albums":{"items":[{"external_urls":{"spotify":"https://open.spotify.com/album/6dVIqQ8qmQ5GBnJ9shOYGE"}}]}}`)
	}))
	defer srv.Close()

	link, err := spotifyTestClient(srv).SearchAlbumLink(context.Background(), "Radiohead", "OK Computer")
	require.NoError(t, err)
	require.Equal(t, "https://open.spotify.com/album/6dVIqQ8qmQ5GBnJ9shOYGE", link)
	require.Equal(t, "album:OK Computer artist:Radiohead", gotQuery)
}

func TestSpotifySearchNoResults(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"albums":{"items":[]}}`)
	}))
	defer srv.Close()

	link, err := spotifyTestClient(srv).SearchAlbumLink(context.Background(), "Nobody", "Unknown Album")
	require.NoError(t, err, "an empty catalog result is an answer, not an error")
	require.Empty(t, link)
}

func TestSpotifySearchUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := spotifyTestClient(srv).SearchAlbumLink(context.Background(), "Radiohead", "OK Computer")
	require.Error(t, err)
}
