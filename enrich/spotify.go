package enrich

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
)

const (
	spotifyAPIBase  = "https://api.spotify.com"
	spotifyTokenURL = "https://accounts.spotify.com/api/token"
)

// SpotifyClient searches the Spotify catalog for album matches. API
// access uses the client-credentials grant; the oauth2 transport
// refreshes the token as needed.
type SpotifyClient struct {
	HTTP    *http.Client
	BaseURL string
}

func NewSpotifyClient(clientID, clientSecret string) *SpotifyClient {
	cc := &clientcredentials.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		TokenURL:     spotifyTokenURL,
	}
	// The token endpoint inherits this client's timeout.
	ctx := context.WithValue(context.Background(), oauth2.HTTPClient, &http.Client{Timeout: 5 * time.Second})
	return &SpotifyClient{
		HTTP:    cc.Client(ctx),
		BaseURL: spotifyAPIBase,
	}
}

type spotifySearchResponse struct {
	Albums struct {
		Items []struct {
			ExternalURLs struct {
				Spotify string `json:"spotify"`
			} `json:"external_urls"`
		} `json:"items"`
	} `json:"albums"`
}

// SearchAlbumLink returns the external catalog URL of the best match
// for (artist, title), or "" when the catalog has no match. An empty
// result is a valid answer, not an error.
func (c *SpotifyClient) SearchAlbumLink(ctx context.Context, artist, title string) (string, error) {
	q := url.Values{
		"q":     {fmt.Sprintf("album:%s artist:%s", title, artist)},
		"type":  {"album"},
		"limit": {"1"},
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"/v1/search?"+q.Encode(), nil)
	if err != nil {
		return "", err
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("spotify search: unexpected status %d", resp.StatusCode)
	}

	var body spotifySearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", err
	}
	if len(body.Albums.Items) == 0 {
		return "", nil
	}
	return body.Albums.Items[0].ExternalURLs.Spotify, nil
}
