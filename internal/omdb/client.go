package omdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/karolisstonys/PROJECT-CA23/internal/models"
)

var ErrTitleNotFound = errors.New("omdb: title not found")

// Client fetches catalog data for a title from the OMDb API. The media
// service depends on this interface so tests can stub the upstream.
type Client interface {
	FetchByImdbID(ctx context.Context, imdbID string) (*models.Media, []string, error)
}

type httpClient struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

func NewClient(baseURL, apiKey string) Client {
	return &httpClient{
		baseURL: baseURL,
		apiKey:  apiKey,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

// omdbTitle mirrors the OMDb wire shape; every field arrives as a string,
// with "N/A" standing in for absent values.
type omdbTitle struct {
	Title      string `json:"Title"`
	Year       string `json:"Year"`
	Runtime    string `json:"Runtime"`
	Genre      string `json:"Genre"`
	Director   string `json:"Director"`
	Writer     string `json:"Writer"`
	Actors     string `json:"Actors"`
	Plot       string `json:"Plot"`
	Language   string `json:"Language"`
	Country    string `json:"Country"`
	Poster     string `json:"Poster"`
	ImdbRating string `json:"imdbRating"`
	ImdbVotes  string `json:"imdbVotes"`
	ImdbID     string `json:"imdbID"`
	Type       string `json:"Type"`
	Response   string `json:"Response"`
	Error      string `json:"Error"`
}

// FetchByImdbID returns the media fields and the genre names for a title.
// The returned media carries no genre associations; resolving names to genre
// rows is the caller's job.
func (c *httpClient) FetchByImdbID(ctx context.Context, imdbID string) (*models.Media, []string, error) {
	endpoint := fmt.Sprintf("%s/?apikey=%s&i=%s", c.baseURL, url.QueryEscape(c.apiKey), url.QueryEscape(imdbID))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, nil, err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, nil, fmt.Errorf("omdb: unexpected status %d", resp.StatusCode)
	}

	var title omdbTitle
	if err := json.NewDecoder(resp.Body).Decode(&title); err != nil {
		return nil, nil, err
	}

	if !strings.EqualFold(title.Response, "True") {
		if strings.Contains(strings.ToLower(title.Error), "not found") {
			return nil, nil, ErrTitleNotFound
		}
		return nil, nil, fmt.Errorf("omdb: %s", title.Error)
	}

	media := &models.Media{
		Type:      clean(title.Type),
		Title:     clean(title.Title),
		Year:      clean(title.Year),
		Runtime:   clean(title.Runtime),
		Director:  clean(title.Director),
		Writer:    clean(title.Writer),
		Actors:    clean(title.Actors),
		Plot:      clean(title.Plot),
		Language:  clean(title.Language),
		Country:   clean(title.Country),
		Poster:    clean(title.Poster),
		ImdbID:    clean(title.ImdbID),
		ImdbVotes: clean(title.ImdbVotes),
	}
	if rating, err := strconv.ParseFloat(clean(title.ImdbRating), 64); err == nil {
		media.ImdbRating = &rating
	}

	var genres []string
	for _, name := range strings.Split(title.Genre, ",") {
		name = strings.TrimSpace(name)
		if name != "" && name != "N/A" {
			genres = append(genres, name)
		}
	}
	return media, genres, nil
}

func clean(value string) string {
	if value == "N/A" {
		return ""
	}
	return value
}
