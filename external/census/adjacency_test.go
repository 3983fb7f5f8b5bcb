package census

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// sampleFeed mimics the census format: quoted names interleaved with FIPS
// codes, county headers followed by indented neighbor lines.
const sampleFeed = "\"Autauga County, AL\"\t01001\t\"Autauga County, AL\"\t01001\n" +
	"\t\t\t\"Chilton County, AL\"\t01021\n" +
	"\t\t\t\"Dallas County, AL\"\t01047\n" +
	"\"Dallas County, TX\"\t48113\t\"Dallas County, TX\"\t48113\n" +
	"\t\t\t\"Collin County, TX\"\t48085\n" +
	"\t\t\t\"Tarrant County, TX\"\t48439\n"

func newFeedServer(t *testing.T, body string) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, err := w.Write([]byte(body)); err != nil {
			t.Fatal(err)
		}
	}))
}

func TestBuild(t *testing.T) {
	server := newFeedServer(t, sampleFeed)
	defer server.Close()

	client := New(server.URL, &http.Client{Timeout: time.Second})
	table, err := client.Build(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 2, table.Len())

	neighbors, ok := table.Neighbors("Dallas County, TX")
	assert.True(t, ok)
	assert.Equal(t, []string{"Dallas County, TX", "Collin County, TX", "Tarrant County, TX"}, neighbors)
}

func TestBuildSelfInclusion(t *testing.T) {
	server := newFeedServer(t, sampleFeed)
	defer server.Close()

	client := New(server.URL, &http.Client{Timeout: time.Second})
	table, err := client.Build(context.Background())
	assert.NoError(t, err)

	neighbors, ok := table.Neighbors("Autauga County, AL")
	assert.True(t, ok)
	assert.NotEmpty(t, neighbors)
	assert.Equal(t, "Autauga County, AL", neighbors[0])
}

func TestBuildCaseInsensitiveLookup(t *testing.T) {
	server := newFeedServer(t, sampleFeed)
	defer server.Close()

	client := New(server.URL, &http.Client{Timeout: time.Second})
	table, err := client.Build(context.Background())
	assert.NoError(t, err)

	_, ok := table.Neighbors("dallas county, tx")
	assert.True(t, ok)
	_, ok = table.Neighbors("DALLAS COUNTY, TX")
	assert.True(t, ok)
}

func TestBuildIdempotent(t *testing.T) {
	server := newFeedServer(t, sampleFeed)
	defer server.Close()

	client := New(server.URL, &http.Client{Timeout: time.Second})

	first, err := client.Build(context.Background())
	assert.NoError(t, err)
	second, err := client.Build(context.Background())
	assert.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestBuildSkipsMalformedLines(t *testing.T) {
	// a neighbor line before any county header has nowhere to attach
	feed := "\t\t\t\"Orphan County, AL\"\t01999\n" + sampleFeed
	server := newFeedServer(t, feed)
	defer server.Close()

	client := New(server.URL, &http.Client{Timeout: time.Second})
	table, err := client.Build(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 2, table.Len())
}

func TestBuildEmptyFeed(t *testing.T) {
	server := newFeedServer(t, "\n\n")
	defer server.Close()

	client := New(server.URL, &http.Client{Timeout: time.Second})
	_, err := client.Build(context.Background())
	assert.Equal(t, ErrEmptyFeed, err)
}

func TestBuildUnknownCounty(t *testing.T) {
	server := newFeedServer(t, sampleFeed)
	defer server.Close()

	client := New(server.URL, &http.Client{Timeout: time.Second})
	table, err := client.Build(context.Background())
	assert.NoError(t, err)

	_, ok := table.Neighbors("Nowhere County, ZZ")
	assert.False(t, ok)
}
