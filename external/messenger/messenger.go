package messenger

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"

	log "github.com/sirupsen/logrus"
)

const logPrefix = "messenger"

// QuickReply is one selectable option attached to a text message.
type QuickReply struct {
	Title   string
	Payload string
}

// URLButton is a link button in a button-template message. The platform
// accepts at most three per message.
type URLButton struct {
	Title string
	URL   string
}

// Sender is the outbound surface of the messaging platform consumed by the
// conversation engine and the notification worker.
type Sender interface {
	SendText(ctx context.Context, recipientID, text string) error
	SendQuickReplies(ctx context.Context, recipientID, text string, replies []QuickReply) error
	SendButtons(ctx context.Context, recipientID, text string, buttons []URLButton) error
	SendAction(ctx context.Context, recipientID, action string) error
	SendNotificationRequest(ctx context.Context, recipientID, title, payload string) error

	// SendOneTimeNotification addresses a message by a single-use token
	// instead of a recipient id.
	SendOneTimeNotification(ctx context.Context, token, text string) error

	SetGreeting(ctx context.Context, text string) error
	SetGetStartedPayload(ctx context.Context, payload string) error
}

type client struct {
	graphURL    string
	accessToken string
	httpClient  *http.Client
}

// New - new messenger graph API client
func New(graphURL, accessToken string, httpClient *http.Client) Sender {
	return &client{
		graphURL:    graphURL,
		accessToken: accessToken,
		httpClient:  httpClient,
	}
}

type recipient struct {
	ID                string `json:"id,omitempty"`
	OneTimeNotifToken string `json:"one_time_notif_token,omitempty"`
}

type quickReplyPayload struct {
	ContentType string `json:"content_type"`
	Title       string `json:"title"`
	Payload     string `json:"payload"`
}

type urlButtonPayload struct {
	Type  string `json:"type"`
	Title string `json:"title"`
	URL   string `json:"url"`
}

func (c *client) SendText(ctx context.Context, recipientID, text string) error {
	return c.post(ctx, "/me/messages", map[string]interface{}{
		"recipient": recipient{ID: recipientID},
		"message":   map[string]interface{}{"text": text},
	})
}

func (c *client) SendQuickReplies(ctx context.Context, recipientID, text string, replies []QuickReply) error {
	options := make([]quickReplyPayload, 0, len(replies))
	for _, r := range replies {
		options = append(options, quickReplyPayload{
			ContentType: "text",
			Title:       r.Title,
			Payload:     r.Payload,
		})
	}

	return c.post(ctx, "/me/messages", map[string]interface{}{
		"recipient": recipient{ID: recipientID},
		"message": map[string]interface{}{
			"text":          text,
			"quick_replies": options,
		},
	})
}

func (c *client) SendButtons(ctx context.Context, recipientID, text string, buttons []URLButton) error {
	payload := make([]urlButtonPayload, 0, len(buttons))
	for _, b := range buttons {
		payload = append(payload, urlButtonPayload{
			Type:  "web_url",
			Title: b.Title,
			URL:   b.URL,
		})
	}

	return c.post(ctx, "/me/messages", map[string]interface{}{
		"recipient": recipient{ID: recipientID},
		"message": map[string]interface{}{
			"attachment": map[string]interface{}{
				"type": "template",
				"payload": map[string]interface{}{
					"template_type": "button",
					"text":          text,
					"buttons":       payload,
				},
			},
		},
	})
}

func (c *client) SendAction(ctx context.Context, recipientID, action string) error {
	return c.post(ctx, "/me/messages", map[string]interface{}{
		"recipient":     recipient{ID: recipientID},
		"sender_action": action,
	})
}

func (c *client) SendNotificationRequest(ctx context.Context, recipientID, title, payload string) error {
	return c.post(ctx, "/me/messages", map[string]interface{}{
		"recipient": recipient{ID: recipientID},
		"message": map[string]interface{}{
			"attachment": map[string]interface{}{
				"type": "template",
				"payload": map[string]interface{}{
					"template_type": "one_time_notif_req",
					"title":         title,
					"payload":       payload,
				},
			},
		},
	})
}

func (c *client) SendOneTimeNotification(ctx context.Context, token, text string) error {
	return c.post(ctx, "/me/messages", map[string]interface{}{
		"recipient": recipient{OneTimeNotifToken: token},
		"message":   map[string]interface{}{"text": text},
	})
}

func (c *client) SetGreeting(ctx context.Context, text string) error {
	return c.post(ctx, "/me/thread_settings", map[string]interface{}{
		"setting_type": "greeting",
		"greeting":     map[string]interface{}{"text": text},
	})
}

func (c *client) SetGetStartedPayload(ctx context.Context, payload string) error {
	return c.post(ctx, "/me/thread_settings", map[string]interface{}{
		"setting_type": "call_to_actions",
		"thread_state": "new_thread",
		"call_to_actions": []map[string]string{
			{"payload": payload},
		},
	})
}

func (c *client) post(ctx context.Context, path string, body interface{}) error {
	data, err := json.Marshal(body)
	if err != nil {
		return err
	}

	url := fmt.Sprintf("%s%s?access_token=%s", c.graphURL, path, c.accessToken)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(data))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// retry once on transport failure only; a delivered request is
		// never replayed to avoid double sends
		req, rerr := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(data))
		if rerr != nil {
			return rerr
		}
		req.Header.Set("Content-Type", "application/json")
		resp, err = c.httpClient.Do(req)
		if err != nil {
			log.WithFields(log.Fields{"prefix": logPrefix, "path": path, "error": err}).Error("post to graph API")
			return err
		}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, _ := ioutil.ReadAll(resp.Body)
		log.WithFields(log.Fields{
			"prefix": logPrefix,
			"path":   path,
			"status": resp.StatusCode,
			"body":   string(respBody),
		}).Error("graph API error response")
		return fmt.Errorf("graph API returned status %d", resp.StatusCode)
	}
	return nil
}
