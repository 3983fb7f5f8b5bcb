package census

import (
	"bufio"
	"context"
	"fmt"
	"net/http"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/enroute-bot/enroute-api/utils"
)

const logPrefix = "census"

var ErrEmptyFeed = fmt.Errorf("no counties parsed from adjacency feed")

// AdjacencyTable maps a county key to the ordered list of its adjacent
// county keys. The raw feed lists every county as its own first neighbor;
// those self entries are kept as delivered. Lookups are case-insensitive.
type AdjacencyTable struct {
	entries map[string]countyEntry
}

type countyEntry struct {
	key       string
	neighbors []string
}

// TableFromMap builds a table from an in-memory mapping, keeping each
// neighbor list in the given order.
func TableFromMap(m map[string][]string) *AdjacencyTable {
	table := &AdjacencyTable{entries: map[string]countyEntry{}}
	for key, neighbors := range m {
		table.entries[utils.NormalizeCountyKey(key)] = countyEntry{
			key:       key,
			neighbors: neighbors,
		}
	}
	return table
}

// Neighbors returns the adjacent county keys of the given county key.
func (t *AdjacencyTable) Neighbors(key string) ([]string, bool) {
	e, ok := t.entries[utils.NormalizeCountyKey(key)]
	if !ok {
		return nil, false
	}
	return e.neighbors, true
}

// Len returns the number of counties in the table.
func (t *AdjacencyTable) Len() int {
	return len(t.entries)
}

// Client fetches and parses the census county adjacency feed.
type Client struct {
	url        string
	httpClient *http.Client
}

// New - new adjacency feed client
func New(url string, httpClient *http.Client) *Client {
	return &Client{
		url:        url,
		httpClient: httpClient,
	}
}

// Build downloads the adjacency feed and parses it into a table. Malformed
// lines are skipped; a feed that yields no counties at all is an error.
func (c *Client) Build(ctx context.Context) (*AdjacencyTable, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// single retry on transport failure
		resp, err = c.httpClient.Do(req)
		if err != nil {
			log.WithFields(log.Fields{"prefix": logPrefix, "url": c.url, "error": err}).Error("get adjacency feed")
			return nil, err
		}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("adjacency feed returned status %d", resp.StatusCode)
	}

	table := &AdjacencyTable{entries: map[string]countyEntry{}}

	var prev string
	skipped := 0
	scanner := bufio.NewScanner(resp.Body)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		// FIPS codes are interleaved with names; drop the digits first so
		// a name field and its code collapse into one tab-separated field.
		line := strings.TrimSpace(utils.StripDigits(scanner.Text()))
		if line == "" {
			continue
		}

		fields := splitFields(line)
		switch len(fields) {
		case 2:
			// a line with its own header starts a new county
			key := fields[0]
			table.entries[utils.NormalizeCountyKey(key)] = countyEntry{
				key:       key,
				neighbors: []string{fields[1]},
			}
			prev = key
		case 1:
			if prev == "" {
				skipped++
				continue
			}
			norm := utils.NormalizeCountyKey(prev)
			e := table.entries[norm]
			e.neighbors = append(e.neighbors, fields[0])
			table.entries[norm] = e
		default:
			skipped++
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	if table.Len() == 0 {
		return nil, ErrEmptyFeed
	}

	log.WithFields(log.Fields{
		"prefix":   logPrefix,
		"counties": table.Len(),
		"skipped":  skipped,
	}).Info("built county adjacency table")

	return table, nil
}

func splitFields(line string) []string {
	fields := []string{}
	for _, f := range strings.Split(line, "\t\t") {
		f = strings.Trim(strings.TrimSpace(f), "\"")
		if f == "" {
			continue
		}
		fields = append(fields, f)
	}
	return fields
}
