package bot

import (
	"context"
	"fmt"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/nicksnyder/go-i18n/v2/i18n"

	"github.com/enroute-bot/enroute-api/consts"
	"github.com/enroute-bot/enroute-api/external/messenger"
	"github.com/enroute-bot/enroute-api/external/places"
	"github.com/enroute-bot/enroute-api/geo"
	"github.com/enroute-bot/enroute-api/schema"
	"github.com/enroute-bot/enroute-api/store"
	"github.com/enroute-bot/enroute-api/utils"
)

const logPrefix = "engine"

// greeting text uses the platform's own placeholder syntax, it is not a
// local template
const greetingText = "Hi {{user_first_name}}!"

// short pauses between consecutive sends keep the client rendering the
// replies in a readable order
const (
	ackPause      = 2 * time.Second
	followUpPause = 5 * time.Second
)

var errMissingSessionState = fmt.Errorf("session is missing required fields")

// Subscriptions arms a delayed follow-up notification for a recipient.
type Subscriptions interface {
	Arm(recipientID, token string)
}

// Engine drives the per-user conversation: it interprets webhook events,
// mutates session state and issues outbound messenger commands. A failure
// in any branch is reported to the user in chat and never escapes.
type Engine struct {
	sessions      store.SessionStore
	resolver      geo.CountyResolver
	places        places.Searcher
	sender        messenger.Sender
	subscriptions Subscriptions
	localizer     *i18n.Localizer

	pause func(time.Duration)
}

// NewEngine - new conversation engine
func NewEngine(
	sessions store.SessionStore,
	resolver geo.CountyResolver,
	placeSearcher places.Searcher,
	sender messenger.Sender,
	subscriptions Subscriptions) *Engine {
	return &Engine{
		sessions:      sessions,
		resolver:      resolver,
		places:        placeSearcher,
		sender:        sender,
		subscriptions: subscriptions,
		localizer:     utils.NewLocalizer("en"),
		pause:         time.Sleep,
	}
}

// HandleEvent dispatches one webhook messaging event.
func (e *Engine) HandleEvent(ctx context.Context, event schema.Event) {
	recipientID := event.Sender.ID
	if recipientID == "" {
		log.WithField("prefix", logPrefix).Warn("event without sender id")
		return
	}

	switch {
	case event.Postback != nil:
		e.handlePostback(ctx, recipientID, event.Postback.Payload)
	case event.Optin != nil:
		e.handleOptin(ctx, recipientID, event.Optin)
	case event.Message != nil && event.Message.QuickReply != nil && event.Message.Text != "":
		e.handleQuickReply(ctx, recipientID, event.Message.QuickReply.Payload)
	case event.Message != nil && event.Message.Text != "":
		e.handleText(ctx, recipientID, event.Message.Text)
	default:
		log.WithFields(log.Fields{"prefix": logPrefix, "recipient": recipientID}).Debug("ignoring event")
	}
}

func (e *Engine) handlePostback(ctx context.Context, recipientID, payload string) {
	if payload != consts.PayloadGetStarted {
		log.WithFields(log.Fields{"prefix": logPrefix, "payload": payload}).Debug("unknown postback")
		return
	}

	if err := e.sender.SetGreeting(ctx, greetingText); err != nil {
		e.logSendError(recipientID, "set greeting", err)
	}
	if err := e.sender.SetGetStartedPayload(ctx, consts.PayloadGetStarted); err != nil {
		e.logSendError(recipientID, "set get started payload", err)
	}

	// re-entering GET_STARTED keeps whatever the session already holds
	e.sessions.GetOrCreate(recipientID)

	e.sendAction(ctx, recipientID, consts.ActionTypingOn)
	e.sendText(ctx, recipientID, "chat.welcome", nil)
	e.pause(ackPause)
	e.sendStartOptions(ctx, recipientID)
}

func (e *Engine) handleOptin(ctx context.Context, recipientID string, optin *schema.Optin) {
	if optin.Payload != consts.PayloadSubscribeUser {
		return
	}

	session := e.sessions.GetOrCreate(recipientID)
	e.subscriptions.Arm(recipientID, optin.OneTimeNotifToken)
	e.sendText(ctx, recipientID, "chat.subscribed", map[string]interface{}{
		"County": session.SubscribeCounty,
	})
}

func (e *Engine) handleQuickReply(ctx context.Context, recipientID, payload string) {
	switch payload {
	case consts.PayloadGrocery, consts.PayloadPharmacy, consts.PayloadHospital, consts.PayloadOther:
		e.handleCategory(ctx, recipientID, payload)
	case consts.PayloadSearchOrigCounty, consts.PayloadSearchSaferCounty:
		e.handleCountyChoice(ctx, recipientID, payload)
	case consts.PayloadSearchYes:
		e.sendStartOptions(ctx, recipientID)
	case consts.PayloadSearchNo:
		e.handleSearchDone(ctx, recipientID)
	default:
		log.WithFields(log.Fields{"prefix": logPrefix, "payload": payload}).Debug("unknown quick reply")
	}
}

func (e *Engine) handleCategory(ctx context.Context, recipientID, payload string) {
	destination := consts.Destinations[payload]

	session := e.sessions.GetOrCreate(recipientID)
	session.DestType = destination.Type
	session.DestTypeIcon = destination.Icon

	e.sendText(ctx, recipientID, "chat.category_ack", nil)
}

// handleCountyChoice composes the business search reply for the chosen
// county. Whatever happens inside the branch, the follow-up question is
// always asked afterwards.
func (e *Engine) handleCountyChoice(ctx context.Context, recipientID, payload string) {
	session := e.sessions.GetOrCreate(recipientID)

	if err := e.sendCountySearch(ctx, session, payload); err != nil {
		log.WithFields(log.Fields{
			"prefix":    logPrefix,
			"recipient": recipientID,
			"error":     err,
		}).Error("county search reply")
		e.sendText(ctx, recipientID, "chat.error", nil)
	}

	e.pause(followUpPause)
	e.sendQuickReplies(ctx, recipientID, "chat.another_search", nil, []messenger.QuickReply{
		{Title: e.text("chat.yes", nil), Payload: consts.PayloadSearchYes},
		{Title: e.text("chat.no", nil), Payload: consts.PayloadSearchNo},
	})
}

func (e *Engine) sendCountySearch(ctx context.Context, session *schema.Session, payload string) error {
	var searchCounty string
	switch payload {
	case consts.PayloadSearchOrigCounty:
		if !session.SearchReady() {
			return errMissingSessionState
		}
		searchCounty = utils.CountyKey(session.OrigCounty, session.StateShort)
	case consts.PayloadSearchSaferCounty:
		if session.SaferCounty == "" {
			return errMissingSessionState
		}
		searchCounty = session.SaferCounty
	}

	session.SubscribeCounty = searchCounty

	if session.DestType == schema.DestinationNone {
		button := messenger.URLButton{
			Title: searchCounty,
			URL:   utils.SearchURL(searchCounty),
		}
		return e.sender.SendButtons(ctx, session.RecipientID,
			e.text("chat.search_within", map[string]interface{}{"County": searchCounty}),
			[]messenger.URLButton{button})
	}

	return e.sendPlaceOptions(ctx, session, searchCounty)
}

// sendPlaceOptions sends up to two named open businesses plus an
// all-options map link; the platform caps button messages at three.
func (e *Engine) sendPlaceOptions(ctx context.Context, session *schema.Session, searchCounty string) error {
	destType := string(session.DestType)
	query := destType + " " + searchCounty

	results, err := e.places.SearchOpen(ctx, query)
	if err != nil {
		return err
	}

	limit := len(results)
	if limit > 2 {
		limit = 2
	}

	buttons := make([]messenger.URLButton, 0, limit+1)
	for _, place := range results[:limit] {
		buttons = append(buttons, messenger.URLButton{
			Title: place.Name,
			URL:   utils.PlaceURL(place.FormattedAddress),
		})
	}
	buttons = append(buttons, messenger.URLButton{
		Title: e.text("chat.all_options", map[string]interface{}{
			"Icon": session.DestTypeIcon,
			"Type": destType,
		}),
		URL: utils.SearchURL(query),
	})

	return e.sender.SendButtons(ctx, session.RecipientID,
		e.text("chat.search_options", map[string]interface{}{
			"Type":   destType,
			"County": searchCounty,
		}), buttons)
}

func (e *Engine) handleSearchDone(ctx context.Context, recipientID string) {
	session := e.sessions.GetOrCreate(recipientID)

	// only offer a subscription once a county search actually happened
	if session.SubscribeCounty != "" {
		e.sendText(ctx, recipientID, "chat.notify_lead", nil)
		if err := e.sender.SendNotificationRequest(ctx, recipientID, session.SubscribeCounty, consts.PayloadSubscribeUser); err != nil {
			e.logSendError(recipientID, "notification request", err)
		}
	}

	e.sendText(ctx, recipientID, "chat.start_reminder", nil)
	e.pause(ackPause)
	e.sendText(ctx, recipientID, "chat.thanks", nil)
}

func (e *Engine) handleText(ctx context.Context, recipientID, text string) {
	if strings.EqualFold(strings.TrimSpace(text), "start") {
		e.sendStartOptions(ctx, recipientID)
		return
	}

	session := e.sessions.GetOrCreate(recipientID)

	e.sendAction(ctx, recipientID, consts.ActionMarkSeen)
	e.pause(ackPause)
	e.sendText(ctx, recipientID, "chat.searching", nil)
	e.sendAction(ctx, recipientID, consts.ActionTypingOn)

	resolved, err := e.resolver.Resolve(ctx, text)
	if err != nil {
		e.sendText(ctx, recipientID, "chat.invalid_address", nil)
		return
	}

	session.OrigCounty = resolved.County
	session.State = resolved.State
	session.StateShort = resolved.StateShort
	session.SaferCounty = resolved.SaferCounty

	if resolved.Record == nil {
		e.sendText(ctx, recipientID, "chat.no_data", nil)
		return
	}

	if err := e.sender.SendText(ctx, recipientID, resolved.County+", "+resolved.State); err != nil {
		e.logSendError(recipientID, "county line", err)
	}
	e.sendText(ctx, recipientID, "chat.cases_summary", map[string]interface{}{
		"Cases":  resolved.Record.Cases,
		"Deaths": resolved.Record.Deaths,
		"Date":   resolved.Record.Date,
	})
	e.pause(ackPause)

	replies := []messenger.QuickReply{
		{
			Title:   utils.CountyKey(resolved.County, resolved.StateShort),
			Payload: consts.PayloadSearchOrigCounty,
		},
	}
	if resolved.SaferCounty != "" {
		e.sendText(ctx, recipientID, "chat.safer_county", map[string]interface{}{
			"County": resolved.SaferCounty,
			"Cases":  resolved.SaferCountyCases,
		})
		replies = append(replies, messenger.QuickReply{
			Title:   resolved.SaferCounty,
			Payload: consts.PayloadSearchSaferCounty,
		})
	}

	e.sendQuickReplies(ctx, recipientID, "chat.which_county", nil, replies)
}

func (e *Engine) sendStartOptions(ctx context.Context, recipientID string) {
	replies := make([]messenger.QuickReply, 0, len(consts.StartOptionOrder))
	for _, payload := range consts.StartOptionOrder {
		replies = append(replies, messenger.QuickReply{
			Title:   consts.Destinations[payload].Title(),
			Payload: payload,
		})
	}
	e.sendQuickReplies(ctx, recipientID, "chat.start_options", nil, replies)
}

func (e *Engine) text(id string, data map[string]interface{}) string {
	return utils.Localize(e.localizer, id, data)
}

func (e *Engine) sendText(ctx context.Context, recipientID, messageID string, data map[string]interface{}) {
	if err := e.sender.SendText(ctx, recipientID, e.text(messageID, data)); err != nil {
		e.logSendError(recipientID, messageID, err)
	}
}

func (e *Engine) sendQuickReplies(ctx context.Context, recipientID, messageID string, data map[string]interface{}, replies []messenger.QuickReply) {
	if err := e.sender.SendQuickReplies(ctx, recipientID, e.text(messageID, data), replies); err != nil {
		e.logSendError(recipientID, messageID, err)
	}
}

func (e *Engine) sendAction(ctx context.Context, recipientID, action string) {
	if err := e.sender.SendAction(ctx, recipientID, action); err != nil {
		e.logSendError(recipientID, action, err)
	}
}

func (e *Engine) logSendError(recipientID, what string, err error) {
	log.WithFields(log.Fields{
		"prefix":    logPrefix,
		"recipient": recipientID,
		"what":      what,
		"error":     err,
	}).Error("messenger send")
}
