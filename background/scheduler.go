package background

import (
	"container/heap"
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

const schedulerLogPrefix = "scheduler"

// DefaultNotificationDelay is how long after an opt-in the follow-up
// notification fires: the platform messaging window is 24 hours, the extra
// minute keeps the send outside it so the one-time token is required.
const DefaultNotificationDelay = 24*time.Hour + time.Minute

// Notifier delivers the follow-up for one armed subscription.
type Notifier interface {
	Notify(ctx context.Context, recipientID, token string)
}

type entry struct {
	id          string
	recipientID string
	token       string
	fireAt      time.Time
}

// entryHeap orders pending notifications by fire time.
type entryHeap []*entry

func (h entryHeap) Len() int            { return len(h) }
func (h entryHeap) Less(i, j int) bool  { return h[i].fireAt.Before(h[j].fireAt) }
func (h entryHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *entryHeap) Push(x interface{}) { *h = append(*h, x.(*entry)) }
func (h *entryHeap) Pop() interface{} {
	old := *h
	n := len(old)
	e := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]
	return e
}

// Scheduler holds a time-ordered queue of pending one-shot notifications
// serviced by a single worker goroutine. The worker starts on the first
// Arm call and never exits. Arming the same recipient again enqueues an
// additional fire; each opt-in carries its own single-use token.
type Scheduler struct {
	mu      sync.Mutex
	queue   entryHeap
	started bool
	wake    chan struct{}

	delay    time.Duration
	now      func() time.Time
	notifier Notifier
}

// NewScheduler - new notification scheduler firing each entry delay after
// it is armed
func NewScheduler(delay time.Duration, notifier Notifier) *Scheduler {
	if delay <= 0 {
		delay = DefaultNotificationDelay
	}
	return &Scheduler{
		delay:    delay,
		now:      time.Now,
		notifier: notifier,
		wake:     make(chan struct{}, 1),
	}
}

// Arm schedules one notification for the recipient. The worker is spawned
// lazily on the first call.
func (s *Scheduler) Arm(recipientID, token string) {
	e := &entry{
		id:          uuid.New().String(),
		recipientID: recipientID,
		token:       token,
		fireAt:      s.now().Add(s.delay),
	}

	s.mu.Lock()
	heap.Push(&s.queue, e)
	pending := s.queue.Len()
	if !s.started {
		s.started = true
		go s.run()
	}
	s.mu.Unlock()

	s.signal()

	log.WithFields(log.Fields{
		"prefix":    schedulerLogPrefix,
		"id":        e.id,
		"recipient": recipientID,
		"fire_at":   e.fireAt,
		"pending":   pending,
	}).Info("armed notification")
}

// CancelRecipient drops every pending entry for a recipient and returns
// how many were removed.
func (s *Scheduler) CancelRecipient(recipientID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.queue[:0]
	removed := 0
	for _, e := range s.queue {
		if e.recipientID == recipientID {
			removed++
			continue
		}
		kept = append(kept, e)
	}
	s.queue = kept
	heap.Init(&s.queue)
	return removed
}

// Pending returns the number of queued notifications.
func (s *Scheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.queue.Len()
}

func (s *Scheduler) signal() {
	select {
	case s.wake <- struct{}{}:
	default:
	}
}

// run services the queue for the life of the process.
func (s *Scheduler) run() {
	log.WithField("prefix", schedulerLogPrefix).Info("notification worker started")

	for {
		s.mu.Lock()
		var wait time.Duration
		if s.queue.Len() == 0 {
			wait = time.Hour
		} else {
			wait = s.queue[0].fireAt.Sub(s.now())
		}
		s.mu.Unlock()

		if wait > 0 {
			timer := time.NewTimer(wait)
			select {
			case <-timer.C:
			case <-s.wake:
				timer.Stop()
			}
			continue
		}

		s.mu.Lock()
		if s.queue.Len() == 0 || s.queue[0].fireAt.After(s.now()) {
			s.mu.Unlock()
			continue
		}
		due := heap.Pop(&s.queue).(*entry)
		s.mu.Unlock()

		log.WithFields(log.Fields{
			"prefix":    schedulerLogPrefix,
			"id":        due.id,
			"recipient": due.recipientID,
		}).Info("firing notification")

		s.notifier.Notify(context.Background(), due.recipientID, due.token)
	}
}
