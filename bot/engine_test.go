package bot

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"

	"github.com/enroute-bot/enroute-api/bot/mocks"
	"github.com/enroute-bot/enroute-api/consts"
	"github.com/enroute-bot/enroute-api/external/messenger"
	"github.com/enroute-bot/enroute-api/external/places"
	"github.com/enroute-bot/enroute-api/geo"
	"github.com/enroute-bot/enroute-api/schema"
	"github.com/enroute-bot/enroute-api/store"
	"github.com/enroute-bot/enroute-api/utils"
)

func TestMain(m *testing.M) {
	viper.Set("i18n.dir", "../i18n")
	utils.InitI18NBundle()
	os.Exit(m.Run())
}

type engineMocks struct {
	sender        *mocks.MockSender
	resolver      *mocks.MockCountyResolver
	places        *mocks.MockSearcher
	subscriptions *mocks.MockSubscriptions
	sessions      *store.MemorySessionStore
}

func newTestEngine(ctl *gomock.Controller) (*Engine, engineMocks) {
	m := engineMocks{
		sender:        mocks.NewMockSender(ctl),
		resolver:      mocks.NewMockCountyResolver(ctl),
		places:        mocks.NewMockSearcher(ctl),
		subscriptions: mocks.NewMockSubscriptions(ctl),
		sessions:      store.NewSessionStore(time.Hour),
	}

	e := NewEngine(m.sessions, m.resolver, m.places, m.sender, m.subscriptions)
	e.pause = func(time.Duration) {}
	return e, m
}

func textEvent(recipientID, text string) schema.Event {
	return schema.Event{
		Sender:  schema.Principal{ID: recipientID},
		Message: &schema.Message{Text: text},
	}
}

func quickReplyEvent(recipientID, payload string) schema.Event {
	return schema.Event{
		Sender: schema.Principal{ID: recipientID},
		Message: &schema.Message{
			Text:       payload,
			QuickReply: &schema.QuickReply{Payload: payload},
		},
	}
}

func TestGetStartedPostback(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	e, m := newTestEngine(ctl)
	defer m.sessions.Stop()

	m.sender.EXPECT().SetGreeting(gomock.Any(), "Hi {{user_first_name}}!").Return(nil).Times(1)
	m.sender.EXPECT().SetGetStartedPayload(gomock.Any(), consts.PayloadGetStarted).Return(nil).Times(1)
	m.sender.EXPECT().SendAction(gomock.Any(), "1", consts.ActionTypingOn).Return(nil).Times(1)
	m.sender.EXPECT().SendText(gomock.Any(), "1", "Welcome to En route to safety! (USA only)").Return(nil).Times(1)
	m.sender.EXPECT().SendQuickReplies(gomock.Any(), "1", "Where do you plan to travel today?", []messenger.QuickReply{
		{Title: "\U0001F6D2 Grocery", Payload: consts.PayloadGrocery},
		{Title: "\U0001F48A Pharmacy", Payload: consts.PayloadPharmacy},
		{Title: "\U0001F3E5 Hospital", Payload: consts.PayloadHospital},
		{Title: "Other", Payload: consts.PayloadOther},
	}).Return(nil).Times(1)

	e.HandleEvent(context.Background(), schema.Event{
		Sender:   schema.Principal{ID: "1"},
		Postback: &schema.Postback{Payload: consts.PayloadGetStarted},
	})

	assert.Equal(t, 1, m.sessions.Len(), "wrong session count")
}

func TestStartKeywordShowsOptions(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	e, m := newTestEngine(ctl)
	defer m.sessions.Stop()

	m.sender.EXPECT().SendQuickReplies(gomock.Any(), "1", "Where do you plan to travel today?", gomock.Any()).Return(nil).Times(1)

	e.HandleEvent(context.Background(), textEvent("1", " Start "))
}

func TestCategorySelection(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	e, m := newTestEngine(ctl)
	defer m.sessions.Stop()

	m.sender.EXPECT().SendText(gomock.Any(), "1", "Thanks, please enter the destination location now").Return(nil).Times(1)

	e.HandleEvent(context.Background(), quickReplyEvent("1", consts.PayloadPharmacy))

	session, ok := m.sessions.Get("1")
	assert.True(t, ok, "session not created")
	assert.Equal(t, schema.DestinationPharmacy, session.DestType, "wrong destination type")
	assert.Equal(t, "\U0001F48A", session.DestTypeIcon, "wrong destination icon")
}

func TestAddressResolved(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	e, m := newTestEngine(ctl)
	defer m.sessions.Stop()

	address := "600 Commerce St, Dallas"
	m.resolver.EXPECT().Resolve(gomock.Any(), address).Return(&geo.ResolvedLocation{
		County:           "Dallas County",
		State:            "Texas",
		StateShort:       "TX",
		Record:           &schema.CaseRecord{Date: "2020-05-01", County: "Dallas", State: "Texas", Cases: 500, Deaths: 20},
		SaferCounty:      "Tarrant County, TX",
		SaferCountyCases: 300,
	}, nil).Times(1)

	m.sender.EXPECT().SendAction(gomock.Any(), "1", consts.ActionMarkSeen).Return(nil).Times(1)
	m.sender.EXPECT().SendText(gomock.Any(), "1", "Searching...").Return(nil).Times(1)
	m.sender.EXPECT().SendAction(gomock.Any(), "1", consts.ActionTypingOn).Return(nil).Times(1)
	m.sender.EXPECT().SendText(gomock.Any(), "1", "Dallas County, Texas").Return(nil).Times(1)
	m.sender.EXPECT().SendText(gomock.Any(), "1", "Total positive cases: 500, Deaths: 20 as of 2020-05-01").Return(nil).Times(1)
	m.sender.EXPECT().SendText(gomock.Any(), "1", "A safer nearby county we've found is Tarrant County, TX with 300 cases").Return(nil).Times(1)
	m.sender.EXPECT().SendQuickReplies(gomock.Any(), "1", "Which county do you want to search in?", []messenger.QuickReply{
		{Title: "Dallas County, TX", Payload: consts.PayloadSearchOrigCounty},
		{Title: "Tarrant County, TX", Payload: consts.PayloadSearchSaferCounty},
	}).Return(nil).Times(1)

	e.HandleEvent(context.Background(), textEvent("1", address))

	session, ok := m.sessions.Get("1")
	assert.True(t, ok, "session not created")
	assert.Equal(t, "Dallas County", session.OrigCounty, "wrong origin county")
	assert.Equal(t, "TX", session.StateShort, "wrong state abbreviation")
	assert.Equal(t, "Tarrant County, TX", session.SaferCounty, "wrong safer county")
}

func TestAddressInvalid(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	e, m := newTestEngine(ctl)
	defer m.sessions.Stop()

	m.resolver.EXPECT().Resolve(gomock.Any(), "???").Return(nil, geo.ErrLocationNotFound).Times(1)

	m.sender.EXPECT().SendAction(gomock.Any(), "1", consts.ActionMarkSeen).Return(nil).Times(1)
	m.sender.EXPECT().SendText(gomock.Any(), "1", "Searching...").Return(nil).Times(1)
	m.sender.EXPECT().SendAction(gomock.Any(), "1", consts.ActionTypingOn).Return(nil).Times(1)
	m.sender.EXPECT().SendText(gomock.Any(), "1", "Invalid address, try again").Return(nil).Times(1)

	e.HandleEvent(context.Background(), textEvent("1", "???"))

	session, _ := m.sessions.Get("1")
	assert.Equal(t, "", session.OrigCounty, "session should stay unresolved")
}

func TestAddressWithoutCaseData(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	e, m := newTestEngine(ctl)
	defer m.sessions.Stop()

	m.resolver.EXPECT().Resolve(gomock.Any(), "remote place").Return(&geo.ResolvedLocation{
		County:     "Loving County",
		State:      "Texas",
		StateShort: "TX",
	}, nil).Times(1)

	m.sender.EXPECT().SendAction(gomock.Any(), "1", consts.ActionMarkSeen).Return(nil).Times(1)
	m.sender.EXPECT().SendText(gomock.Any(), "1", "Searching...").Return(nil).Times(1)
	m.sender.EXPECT().SendAction(gomock.Any(), "1", consts.ActionTypingOn).Return(nil).Times(1)
	m.sender.EXPECT().SendText(gomock.Any(), "1", "Sorry no data found").Return(nil).Times(1)

	e.HandleEvent(context.Background(), textEvent("1", "remote place"))

	session, _ := m.sessions.Get("1")
	assert.Equal(t, "Loving County", session.OrigCounty, "session should keep resolved county")
}

func TestCountySearchWithCategory(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	e, m := newTestEngine(ctl)
	defer m.sessions.Stop()

	session := m.sessions.GetOrCreate("1")
	session.DestType = schema.DestinationGrocery
	session.DestTypeIcon = "\U0001F6D2"
	session.OrigCounty = "Dallas County"
	session.State = "Texas"
	session.StateShort = "TX"

	m.places.EXPECT().SearchOpen(gomock.Any(), "Grocery Dallas County, TX").Return([]places.Place{
		{Name: "Corner Market", FormattedAddress: "1 Main St, Dallas, TX"},
		{Name: "Fresh Foods", FormattedAddress: "2 Elm St, Dallas, TX"},
		{Name: "Overflow Market", FormattedAddress: "3 Oak St, Dallas, TX"},
	}, nil).Times(1)

	m.sender.EXPECT().SendButtons(gomock.Any(), "1",
		"Click below to search for Grocery options in Dallas County, TX",
		[]messenger.URLButton{
			{Title: "Corner Market", URL: "https://www.google.com/maps/place/1+Main+St,+Dallas,+TX"},
			{Title: "Fresh Foods", URL: "https://www.google.com/maps/place/2+Elm+St,+Dallas,+TX"},
			{Title: "\U0001F6D2 Grocery (All Options)", URL: "https://maps.google.com/?q=Grocery+Dallas+County,+TX"},
		}).Return(nil).Times(1)
	m.sender.EXPECT().SendQuickReplies(gomock.Any(), "1", "Do you want to search for another place?", []messenger.QuickReply{
		{Title: "Yes", Payload: consts.PayloadSearchYes},
		{Title: "No", Payload: consts.PayloadSearchNo},
	}).Return(nil).Times(1)

	e.HandleEvent(context.Background(), quickReplyEvent("1", consts.PayloadSearchOrigCounty))

	assert.Equal(t, "Dallas County, TX", session.SubscribeCounty, "subscription county not recorded")
}

func TestCountySearchWithoutCategory(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	e, m := newTestEngine(ctl)
	defer m.sessions.Stop()

	session := m.sessions.GetOrCreate("1")
	session.SaferCounty = "Rockwall County, TX"

	m.sender.EXPECT().SendButtons(gomock.Any(), "1",
		"Click below to search within Rockwall County, TX",
		[]messenger.URLButton{
			{Title: "Rockwall County, TX", URL: "https://maps.google.com/?q=Rockwall+County,+TX"},
		}).Return(nil).Times(1)
	m.sender.EXPECT().SendQuickReplies(gomock.Any(), "1", "Do you want to search for another place?", gomock.Any()).Return(nil).Times(1)

	e.HandleEvent(context.Background(), quickReplyEvent("1", consts.PayloadSearchSaferCounty))

	assert.Equal(t, "Rockwall County, TX", session.SubscribeCounty, "subscription county not recorded")
}

func TestCountySearchWithoutResolvedAddress(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	e, m := newTestEngine(ctl)
	defer m.sessions.Stop()

	// error reply first, but the follow-up question is still asked
	m.sender.EXPECT().SendText(gomock.Any(), "1", "Oops, error occured..").Return(nil).Times(1)
	m.sender.EXPECT().SendQuickReplies(gomock.Any(), "1", "Do you want to search for another place?", gomock.Any()).Return(nil).Times(1)

	e.HandleEvent(context.Background(), quickReplyEvent("1", consts.PayloadSearchOrigCounty))
}

func TestCountySearchPlacesError(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	e, m := newTestEngine(ctl)
	defer m.sessions.Stop()

	session := m.sessions.GetOrCreate("1")
	session.DestType = schema.DestinationHospital
	session.OrigCounty = "Dallas County"
	session.StateShort = "TX"

	m.places.EXPECT().SearchOpen(gomock.Any(), gomock.Any()).Return(nil, fmt.Errorf("over query limit")).Times(1)
	m.sender.EXPECT().SendText(gomock.Any(), "1", "Oops, error occured..").Return(nil).Times(1)
	m.sender.EXPECT().SendQuickReplies(gomock.Any(), "1", "Do you want to search for another place?", gomock.Any()).Return(nil).Times(1)

	e.HandleEvent(context.Background(), quickReplyEvent("1", consts.PayloadSearchOrigCounty))
}

func TestSearchDoneWithSubscription(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	e, m := newTestEngine(ctl)
	defer m.sessions.Stop()

	session := m.sessions.GetOrCreate("1")
	session.SubscribeCounty = "Dallas County, TX"

	m.sender.EXPECT().SendText(gomock.Any(), "1", "Click 'Notify Me' to subscribe for updates").Return(nil).Times(1)
	m.sender.EXPECT().SendNotificationRequest(gomock.Any(), "1", "Dallas County, TX", consts.PayloadSubscribeUser).Return(nil).Times(1)
	m.sender.EXPECT().SendText(gomock.Any(), "1", "Message 'Start' anytime to get searching again").Return(nil).Times(1)
	m.sender.EXPECT().SendText(gomock.Any(), "1", "Thank you, visit again!").Return(nil).Times(1)

	e.HandleEvent(context.Background(), quickReplyEvent("1", consts.PayloadSearchNo))
}

func TestSearchDoneWithoutSubscription(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	e, m := newTestEngine(ctl)
	defer m.sessions.Stop()

	// never searched a county, so no subscription offer
	m.sender.EXPECT().SendText(gomock.Any(), "1", "Message 'Start' anytime to get searching again").Return(nil).Times(1)
	m.sender.EXPECT().SendText(gomock.Any(), "1", "Thank you, visit again!").Return(nil).Times(1)

	e.HandleEvent(context.Background(), quickReplyEvent("1", consts.PayloadSearchNo))
}

func TestOptinArmsSubscription(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	e, m := newTestEngine(ctl)
	defer m.sessions.Stop()

	session := m.sessions.GetOrCreate("1")
	session.SubscribeCounty = "Dallas County, TX"

	// each opt-in arms its own notification, even for the same user
	m.subscriptions.EXPECT().Arm("1", "token-1").Times(1)
	m.subscriptions.EXPECT().Arm("1", "token-2").Times(1)
	m.sender.EXPECT().SendText(gomock.Any(), "1",
		"Thanks! You are now subscribed to daily cases updates of Dallas County, TX. According to Facebook's Privacy Policy, you need to subscribe every 24 hours to keep receiving updates").Return(nil).Times(2)

	optin := func(token string) schema.Event {
		return schema.Event{
			Sender: schema.Principal{ID: "1"},
			Optin:  &schema.Optin{Payload: consts.PayloadSubscribeUser, OneTimeNotifToken: token},
		}
	}
	e.HandleEvent(context.Background(), optin("token-1"))
	e.HandleEvent(context.Background(), optin("token-2"))
}

func TestIgnoresEventWithoutSender(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	e, m := newTestEngine(ctl)
	defer m.sessions.Stop()

	e.HandleEvent(context.Background(), schema.Event{Message: &schema.Message{Text: "hello"}})

	assert.Equal(t, 0, m.sessions.Len(), "no session should be created")
}
