package covid

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

const sampleFeed = "date,county,state,fips,cases,deaths\n" +
	"2020-04-10,Dallas,Texas,48113,400,10\n" +
	"2020-04-10,Tarrant,Texas,48439,250,5\n" +
	"2020-04-11,Dallas,Texas,48113,500,12\n" +
	"2020-04-11,Tarrant,Texas,48439,300,6\n" +
	"2020-04-11,Collin,Texas,48085,450,9\n" +
	"2020-04-11,Dallas,Iowa,19049,20,0\n"

func newCaseServer(t *testing.T, body string) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, err := w.Write([]byte(body)); err != nil {
			t.Fatal(err)
		}
	}))
}

func TestLatest(t *testing.T) {
	server := newCaseServer(t, sampleFeed)
	defer server.Close()

	source := New(server.URL, &http.Client{Timeout: time.Second})
	record, err := source.Latest(context.Background(), "Texas", "Dallas County")
	assert.NoError(t, err)
	assert.Equal(t, "Dallas", record.County)
	assert.Equal(t, 500, record.Cases)
	assert.Equal(t, 12, record.Deaths)
	assert.Equal(t, "2020-04-11", record.Date)
}

func TestLatestLastRowWins(t *testing.T) {
	server := newCaseServer(t, sampleFeed)
	defer server.Close()

	source := New(server.URL, &http.Client{Timeout: time.Second})
	record, err := source.Latest(context.Background(), "Texas", "Tarrant County")
	assert.NoError(t, err)
	assert.Equal(t, 300, record.Cases)
}

func TestLatestFiltersState(t *testing.T) {
	server := newCaseServer(t, sampleFeed)
	defer server.Close()

	source := New(server.URL, &http.Client{Timeout: time.Second})
	record, err := source.Latest(context.Background(), "Iowa", "Dallas County")
	assert.NoError(t, err)
	assert.Equal(t, 20, record.Cases)
}

func TestLatestNotFound(t *testing.T) {
	server := newCaseServer(t, sampleFeed)
	defer server.Close()

	source := New(server.URL, &http.Client{Timeout: time.Second})
	_, err := source.Latest(context.Background(), "Texas", "Nowhere County")
	assert.Equal(t, ErrNoCaseData, err)

	_, err = source.Latest(context.Background(), "", "Dallas County")
	assert.Equal(t, ErrNoCaseData, err)
}

func TestLatestExact(t *testing.T) {
	server := newCaseServer(t, sampleFeed)
	defer server.Close()

	source := New(server.URL, &http.Client{Timeout: time.Second})

	record, err := source.LatestExact(context.Background(), "Texas", "dallas")
	assert.NoError(t, err)
	assert.Equal(t, 500, record.Cases)

	// exact matching does not accept the full county key
	_, err = source.LatestExact(context.Background(), "Texas", "Dallas County")
	assert.Equal(t, ErrNoCaseData, err)
}

func TestCovidSite(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/tx/info.json", r.URL.Path)
		if _, err := w.Write([]byte(`{"covid19Site": "https://www.dshs.texas.gov/coronavirus/"}`)); err != nil {
			t.Fatal(err)
		}
	}))
	defer server.Close()

	source := NewStateInfo(server.URL+"/%s/info.json", &http.Client{Timeout: time.Second})
	site, err := source.CovidSite(context.Background(), "TX")
	assert.NoError(t, err)
	assert.Equal(t, "https://www.dshs.texas.gov/coronavirus/", site)
}

func TestCovidSiteMissing(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, err := w.Write([]byte(`{}`)); err != nil {
			t.Fatal(err)
		}
	}))
	defer server.Close()

	source := NewStateInfo(server.URL+"/%s/info.json", &http.Client{Timeout: time.Second})
	site, err := source.CovidSite(context.Background(), "TX")
	assert.NoError(t, err)
	assert.Equal(t, "", site)
}
