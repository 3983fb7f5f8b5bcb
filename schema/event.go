package schema

// WebhookRequest is the body of a messenger webhook POST delivery:
// a batch of page entries, each carrying a batch of messaging events.
type WebhookRequest struct {
	Object string  `json:"object"`
	Entry  []Entry `json:"entry"`
}

type Entry struct {
	Messaging []Event `json:"messaging"`
}

// Event is a single messaging event. Exactly one of Postback, Optin or
// Message is set, depending on what the user did.
type Event struct {
	Sender   Principal `json:"sender"`
	Postback *Postback `json:"postback,omitempty"`
	Optin    *Optin    `json:"optin,omitempty"`
	Message  *Message  `json:"message,omitempty"`
}

type Principal struct {
	ID string `json:"id"`
}

type Postback struct {
	Payload string `json:"payload"`
}

// Optin is delivered when a user accepts a one-time notification request.
// The token is single-use and addresses exactly one follow-up message.
type Optin struct {
	Payload           string `json:"payload"`
	OneTimeNotifToken string `json:"one_time_notif_token"`
}

type Message struct {
	Text       string      `json:"text,omitempty"`
	QuickReply *QuickReply `json:"quick_reply,omitempty"`
}

type QuickReply struct {
	Payload string `json:"payload"`
}
