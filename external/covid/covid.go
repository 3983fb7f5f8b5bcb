package covid

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/enroute-bot/enroute-api/schema"
)

const logPrefix = "covid"

// column positions of the case feed
const (
	columnDate   = 0
	columnCounty = 1
	columnState  = 2
	columnCases  = 4
	columnDeaths = 5
)

var ErrNoCaseData = fmt.Errorf("no case data found")

// CaseSource looks up the latest case record for a county. Every call
// fetches and scans the whole feed; the feed is bounded to a few thousand
// rows and calls are dialogue-paced, so no cache is kept.
type CaseSource interface {
	// Latest matches rows whose county name is contained in the queried
	// fragment (case-insensitive). The feed is chronological, so the last
	// matching row is the latest.
	Latest(ctx context.Context, state, countyFragment string) (*schema.CaseRecord, error)

	// LatestExact matches the county name exactly (case-insensitive).
	LatestExact(ctx context.Context, state, county string) (*schema.CaseRecord, error)
}

type caseSource struct {
	url        string
	httpClient *http.Client
}

// New - new case feed client
func New(url string, httpClient *http.Client) CaseSource {
	return &caseSource{
		url:        url,
		httpClient: httpClient,
	}
}

func (c *caseSource) Latest(ctx context.Context, state, countyFragment string) (*schema.CaseRecord, error) {
	fragment := strings.ToLower(countyFragment)
	return c.scan(ctx, state, func(county string) bool {
		return strings.Contains(fragment, strings.ToLower(county))
	})
}

func (c *caseSource) LatestExact(ctx context.Context, state, county string) (*schema.CaseRecord, error) {
	return c.scan(ctx, state, func(rowCounty string) bool {
		return strings.EqualFold(county, rowCounty)
	})
}

// scan walks the whole feed and keeps the last row in the given state whose
// county name satisfies match.
func (c *caseSource) scan(ctx context.Context, state string, match func(county string) bool) (*schema.CaseRecord, error) {
	if state == "" {
		return nil, ErrNoCaseData
	}

	body, err := c.fetch(ctx)
	if err != nil {
		return nil, err
	}
	defer body.Close()

	reader := csv.NewReader(body)
	reader.FieldsPerRecord = -1

	var latest *schema.CaseRecord
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			log.WithFields(log.Fields{"prefix": logPrefix, "error": err}).Warn("skip malformed case row")
			continue
		}
		if len(row) <= columnDeaths {
			continue
		}
		if !strings.EqualFold(row[columnState], state) {
			continue
		}
		if !match(row[columnCounty]) {
			continue
		}

		cases, err := strconv.Atoi(row[columnCases])
		if err != nil {
			// the header row falls through to here
			continue
		}
		deaths, _ := strconv.Atoi(row[columnDeaths])

		latest = &schema.CaseRecord{
			Date:   row[columnDate],
			County: row[columnCounty],
			State:  row[columnState],
			Cases:  cases,
			Deaths: deaths,
		}
	}

	if latest == nil {
		return nil, ErrNoCaseData
	}
	return latest, nil
}

func (c *caseSource) fetch(ctx context.Context) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// single retry on transport failure
		resp, err = c.httpClient.Do(req)
		if err != nil {
			log.WithFields(log.Fields{"prefix": logPrefix, "url": c.url, "error": err}).Error("get case feed")
			return nil, err
		}
	}

	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("case feed returned status %d", resp.StatusCode)
	}
	return resp.Body, nil
}
