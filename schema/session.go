package schema

import (
	"time"
)

// DestinationType is the business category a user wants to travel to.
// An empty value means no category filter was chosen ("Other").
type DestinationType string

const (
	DestinationGrocery  DestinationType = "Grocery"
	DestinationPharmacy DestinationType = "Pharmacy"
	DestinationHospital DestinationType = "Hospital"
	DestinationNone     DestinationType = ""
)

// Session keeps the conversational state of one messenger user across
// webhook deliveries. Fields are populated progressively as the dialogue
// advances; an empty string means the step has not happened yet.
type Session struct {
	RecipientID string

	DestType     DestinationType
	DestTypeIcon string

	OrigCounty string
	State      string
	StateShort string

	// SaferCounty is a full county key, e.g. "Rockwall County, TX".
	SaferCounty string

	// SubscribeCounty is the county the user last chose to search in and
	// is the subject of any follow-up notification.
	SubscribeCounty string

	LastActivity time.Time
}

// SearchReady reports whether enough of the address flow has completed to
// compose a county search reply.
func (s *Session) SearchReady() bool {
	return s.OrigCounty != "" && s.StateShort != ""
}
