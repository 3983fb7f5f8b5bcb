package geo

import (
	"context"
	"fmt"

	"github.com/getsentry/sentry-go"
	log "github.com/sirupsen/logrus"

	"github.com/enroute-bot/enroute-api/external/census"
	"github.com/enroute-bot/enroute-api/external/covid"
	"github.com/enroute-bot/enroute-api/external/geoinfo"
	"github.com/enroute-bot/enroute-api/schema"
	"github.com/enroute-bot/enroute-api/utils"
)

const logPrefix = "resolver"

var ErrLocationNotFound = fmt.Errorf("no location found for address")

// ResolvedLocation is the outcome of resolving a free-text address: the
// origin county with its latest case record and the adjacent county with
// the fewest cases.
type ResolvedLocation struct {
	County     string
	State      string
	StateShort string

	// Record is nil when the case feed has no row for the origin county.
	Record *schema.CaseRecord

	// SaferCounty is empty when no adjacent county resolved to a case
	// count; callers treat that as the feature being absent, not an error.
	SaferCounty      string
	SaferCountyCases int
}

// CountyResolver resolves a free-text address into county, state and
// safer-neighbor information.
type CountyResolver interface {
	Resolve(ctx context.Context, address string) (*ResolvedLocation, error)
}

type countyResolver struct {
	geo       geoinfo.GeoInfo
	cases     covid.CaseSource
	adjacency *census.AdjacencyTable
}

// NewCountyResolver - new county resolver on top of geocoding, the case
// feed and the adjacency table
func NewCountyResolver(geo geoinfo.GeoInfo, cases covid.CaseSource, adjacency *census.AdjacencyTable) CountyResolver {
	return &countyResolver{
		geo:       geo,
		cases:     cases,
		adjacency: adjacency,
	}
}

// Resolve collapses every failure in the pipeline to ErrLocationNotFound;
// the underlying cause is logged and reported before being discarded.
func (r *countyResolver) Resolve(ctx context.Context, address string) (*ResolvedLocation, error) {
	geos, err := r.geo.Get(ctx, address)
	if err != nil {
		return nil, r.notFound(address, err)
	}
	if len(geos) == 0 {
		return nil, ErrLocationNotFound
	}

	var state, stateShort, county string
	for _, component := range geos[0].AddressComponents {
		for _, typ := range component.Types {
			switch typ {
			case "administrative_area_level_1":
				state = component.LongName
				stateShort = component.ShortName
			case "administrative_area_level_2":
				county = component.ShortName
			}
		}
	}
	if state == "" || county == "" {
		return nil, ErrLocationNotFound
	}

	resolved := &ResolvedLocation{
		County:     county,
		State:      state,
		StateShort: stateShort,
	}

	record, err := r.cases.Latest(ctx, state, county)
	switch err {
	case nil:
		resolved.Record = record
	case covid.ErrNoCaseData:
		// reported to the user as missing data by the caller
	default:
		return nil, r.notFound(address, err)
	}

	r.findSaferCounty(ctx, resolved)

	return resolved, nil
}

// findSaferCounty picks the adjacent county with the fewest cases. The
// adjacency feed lists the origin county among its own neighbors, so the
// origin competes too. Neighbors without case data are skipped; ties keep
// the first minimum seen.
func (r *countyResolver) findSaferCounty(ctx context.Context, resolved *ResolvedLocation) {
	key := utils.CountyKey(resolved.County, resolved.StateShort)
	neighbors, ok := r.adjacency.Neighbors(key)
	if !ok {
		log.WithFields(log.Fields{"prefix": logPrefix, "county": key}).Warn("county missing from adjacency table")
		return
	}

	found := false
	for _, neighbor := range neighbors {
		record, err := r.cases.Latest(ctx, resolved.State, neighbor)
		if err != nil {
			continue
		}
		if !found || record.Cases < resolved.SaferCountyCases {
			resolved.SaferCounty = neighbor
			resolved.SaferCountyCases = record.Cases
			found = true
		}
	}
}

func (r *countyResolver) notFound(address string, err error) error {
	log.WithFields(log.Fields{
		"prefix":  logPrefix,
		"address": address,
		"error":   err,
	}).Error("resolve address")
	sentry.CaptureException(err)
	return ErrLocationNotFound
}
