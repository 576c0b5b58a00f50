package omdb

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchByImdbID_MapsTitle(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-key", r.URL.Query().Get("apikey"))
		assert.Equal(t, "tt0133093", r.URL.Query().Get("i"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"Title": "The Matrix",
			"Year": "1999",
			"Runtime": "136 min",
			"Genre": "Action, Sci-Fi",
			"Director": "Lana Wachowski, Lilly Wachowski",
			"Plot": "A computer hacker learns the truth.",
			"Language": "English",
			"Country": "United States",
			"Poster": "N/A",
			"imdbRating": "8.7",
			"imdbVotes": "1,900,000",
			"imdbID": "tt0133093",
			"Type": "movie",
			"Response": "True"
		}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-key")
	media, genres, err := client.FetchByImdbID(context.Background(), "tt0133093")

	require.NoError(t, err)
	assert.Equal(t, "The Matrix", media.Title)
	assert.Equal(t, "1999", media.Year)
	assert.Equal(t, "tt0133093", media.ImdbID)
	assert.Equal(t, "", media.Poster)
	require.NotNil(t, media.ImdbRating)
	assert.InDelta(t, 8.7, *media.ImdbRating, 0.001)
	assert.Equal(t, []string{"Action", "Sci-Fi"}, genres)
}

func TestFetchByImdbID_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"Response": "False", "Error": "Incorrect IMDb ID. Movie not found!"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-key")
	_, _, err := client.FetchByImdbID(context.Background(), "tt0000000")

	assert.ErrorIs(t, err, ErrTitleNotFound)
}

func TestFetchByImdbID_UpstreamFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-key")
	_, _, err := client.FetchByImdbID(context.Background(), "tt0133093")

	assert.Error(t, err)
}

func TestFetchByImdbID_RatingNotAvailable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"Title": "Obscure", "Genre": "N/A", "imdbRating": "N/A", "Response": "True"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-key")
	media, genres, err := client.FetchByImdbID(context.Background(), "tt9999999")

	require.NoError(t, err)
	assert.Nil(t, media.ImdbRating)
	assert.Empty(t, genres)
}
