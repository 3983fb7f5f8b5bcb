package consts

import (
	"github.com/enroute-bot/enroute-api/schema"
)

// Quick reply and postback payloads understood by the conversation engine.
const (
	PayloadGetStarted = "GET_STARTED"

	PayloadGrocery  = "GROCERY"
	PayloadPharmacy = "PHARMACY"
	PayloadHospital = "HOSPITAL"
	PayloadOther    = "OTHER"

	PayloadSearchOrigCounty  = "SEARCH_ORIG_COUNTY"
	PayloadSearchSaferCounty = "SEARCH_SAFER_COUNTY"

	PayloadSearchYes = "SEARCH_YES"
	PayloadSearchNo  = "SEARCH_NO"

	PayloadSubscribeUser = "SUBSCRIBE_USER"
)

// Messenger sender actions.
const (
	ActionTypingOn = "typing_on"
	ActionMarkSeen = "mark_seen"
)

// Destination describes a selectable business category.
type Destination struct {
	Type  schema.DestinationType
	Icon  string
	Label string
}

// Title is the quick-reply display text: the icon glyph plus the label.
func (d Destination) Title() string {
	if d.Icon == "" {
		return d.Label
	}
	return d.Icon + " " + d.Label
}

// Destinations maps a category quick-reply payload to its metadata.
// PayloadOther carries no type: it means searches skip the category filter.
var Destinations = map[string]Destination{
	PayloadGrocery:  {Type: schema.DestinationGrocery, Icon: "\U0001F6D2", Label: "Grocery"},
	PayloadPharmacy: {Type: schema.DestinationPharmacy, Icon: "\U0001F48A", Label: "Pharmacy"},
	PayloadHospital: {Type: schema.DestinationHospital, Icon: "\U0001F3E5", Label: "Hospital"},
	PayloadOther:    {Type: schema.DestinationNone, Icon: "", Label: "Other"},
}

// StartOptionOrder is the display order of the category quick replies.
var StartOptionOrder = []string{
	PayloadGrocery,
	PayloadPharmacy,
	PayloadHospital,
	PayloadOther,
}
