package background

import (
	"context"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	log "github.com/sirupsen/logrus"

	"github.com/enroute-bot/enroute-api/consts"
	"github.com/enroute-bot/enroute-api/external/covid"
	"github.com/enroute-bot/enroute-api/external/messenger"
	"github.com/enroute-bot/enroute-api/store"
	"github.com/enroute-bot/enroute-api/utils"
)

const notifyLogPrefix = "notify"

// Background maintains the collaborators the notification worker needs to
// compose and deliver the follow-up message for a subscription.
type Background struct {
	sessions  store.SessionStore
	cases     covid.CaseSource
	stateInfo covid.StateInfoSource
	sender    messenger.Sender
	localizer *i18n.Localizer
}

// NewBackground - new follow-up notification composer
func NewBackground(
	sessions store.SessionStore,
	cases covid.CaseSource,
	stateInfo covid.StateInfoSource,
	sender messenger.Sender) *Background {
	return &Background{
		sessions:  sessions,
		cases:     cases,
		stateInfo: stateInfo,
		sender:    sender,
		localizer: utils.NewLocalizer("en"),
	}
}

// Notify sends the one-time follow-up for a fired subscription entry: the
// latest case count for the subscribed county, the state's official COVID
// site when one is published, and a renewed subscription request so the
// user can opt in for another day.
func (b *Background) Notify(ctx context.Context, recipientID, token string) {
	logger := log.WithFields(log.Fields{"prefix": notifyLogPrefix, "recipient": recipientID})

	session, ok := b.sessions.Get(recipientID)
	if !ok || session.SubscribeCounty == "" {
		logger.Warn("no subscription state for recipient, dropping notification")
		return
	}

	// the county key reads like "Dallas County, TX"; the feed indexes the
	// bare name, so match on the first token exactly
	countyName := utils.FirstWord(session.SubscribeCounty)

	record, err := b.cases.LatestExact(ctx, session.State, countyName)
	if err != nil && err != covid.ErrNoCaseData {
		logger.WithField("error", err).Error("fetch subscriber case data")
	}

	if record != nil {
		text := utils.Localize(b.localizer, "notif.cases", map[string]interface{}{
			"County": session.SubscribeCounty,
			"Cases":  record.Cases,
		})
		if err := b.sender.SendOneTimeNotification(ctx, token, text); err != nil {
			logger.WithField("error", err).Error("send one time notification")
		}
	}

	if session.StateShort != "" {
		b.sendStateSite(ctx, recipientID, session.StateShort)
	}

	if err := b.sender.SendNotificationRequest(ctx, recipientID, session.SubscribeCounty, consts.PayloadSubscribeUser); err != nil {
		logger.WithField("error", err).Error("renew notification request")
	}
}

func (b *Background) sendStateSite(ctx context.Context, recipientID, stateShort string) {
	site, err := b.stateInfo.CovidSite(ctx, stateShort)
	if err != nil || site == "" {
		return
	}

	button := messenger.URLButton{
		Title: utils.Localize(b.localizer, "notif.site_button", map[string]interface{}{
			"State": stateShort,
		}),
		URL: site,
	}
	lead := utils.Localize(b.localizer, "notif.site_lead", nil)
	if err := b.sender.SendButtons(ctx, recipientID, lead, []messenger.URLButton{button}); err != nil {
		log.WithFields(log.Fields{
			"prefix": notifyLogPrefix,
			"error":  err,
		}).Error("send state site button")
	}
}
