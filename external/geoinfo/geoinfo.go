package geoinfo

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"
	"googlemaps.github.io/maps"
)

const (
	logPrefix      = "geoinfo"
	defaultTimeout = 5 * time.Second
)

// GeoInfo - interface to operate google maps
type GeoInfo interface {
	Get(ctx context.Context, address string) ([]maps.GeocodingResult, error)
}

type geoInfo struct {
	client *maps.Client
}

// Get forward-geocodes a free-text address into structured results.
func (g geoInfo) Get(ctx context.Context, address string) ([]maps.GeocodingResult, error) {
	log.WithFields(log.Fields{
		"prefix":  logPrefix,
		"address": address,
	}).Info("query geo info")

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	return g.client.Geocode(ctx, &maps.GeocodingRequest{
		Address:  address,
		Language: "en",
	})
}

// New - new GeoInfo interface
func New(client *maps.Client) GeoInfo {
	return &geoInfo{
		client: client,
	}
}
