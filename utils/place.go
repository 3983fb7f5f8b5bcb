package utils

import (
	"strings"
)

const (
	placeBaseURL  = "https://www.google.com/maps/place/"
	searchBaseURL = "https://maps.google.com/?q="
)

// PlaceURL builds a google maps link for a formatted place address.
func PlaceURL(address string) string {
	return placeBaseURL + plusJoin(address)
}

// SearchURL builds a google maps search link for a free-text query.
func SearchURL(query string) string {
	return searchBaseURL + plusJoin(query)
}

func plusJoin(s string) string {
	return strings.Join(strings.Fields(s), "+")
}
