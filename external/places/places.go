package places

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"
	"googlemaps.github.io/maps"
)

const (
	logPrefix      = "places"
	defaultTimeout = 5 * time.Second
)

// Place is one business returned by a text search.
type Place struct {
	Name             string
	FormattedAddress string
}

// Searcher finds currently open businesses matching a free-text query.
type Searcher interface {
	SearchOpen(ctx context.Context, query string) ([]Place, error)
}

type searcher struct {
	client *maps.Client
}

// New - new places search client
func New(client *maps.Client) Searcher {
	return &searcher{
		client: client,
	}
}

func (s *searcher) SearchOpen(ctx context.Context, query string) ([]Place, error) {
	log.WithFields(log.Fields{
		"prefix": logPrefix,
		"query":  query,
	}).Info("search open places")

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	resp, err := s.client.TextSearch(ctx, &maps.TextSearchRequest{
		Query:   query,
		OpenNow: true,
	})
	if err != nil {
		return nil, err
	}

	results := make([]Place, 0, len(resp.Results))
	for _, r := range resp.Results {
		results = append(results, Place{
			Name:             r.Name,
			FormattedAddress: r.FormattedAddress,
		})
	}
	return results, nil
}
