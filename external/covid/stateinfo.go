package covid

import (
	"context"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"
	"strings"

	log "github.com/sirupsen/logrus"
)

// StateInfoSource resolves a state abbreviation to the state's official
// COVID information site, when one is published.
type StateInfoSource interface {
	CovidSite(ctx context.Context, stateShort string) (string, error)
}

type stateInfoSource struct {
	// urlTemplate carries one %s for the lower-cased state abbreviation
	urlTemplate string
	httpClient  *http.Client
}

type stateInfoResponse struct {
	Covid19Site string `json:"covid19Site"`
}

// NewStateInfo - new state metadata client
func NewStateInfo(urlTemplate string, httpClient *http.Client) StateInfoSource {
	return &stateInfoSource{
		urlTemplate: urlTemplate,
		httpClient:  httpClient,
	}
}

func (s *stateInfoSource) CovidSite(ctx context.Context, stateShort string) (string, error) {
	url := fmt.Sprintf(s.urlTemplate, strings.ToLower(stateShort))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		resp, err = s.httpClient.Do(req)
		if err != nil {
			log.WithFields(log.Fields{"prefix": logPrefix, "url": url, "error": err}).Error("get state metadata")
			return "", err
		}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("state metadata returned status %d", resp.StatusCode)
	}

	data, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	var info stateInfoResponse
	if err := json.Unmarshal(data, &info); err != nil {
		return "", err
	}
	return info.Covid19Site, nil
}
