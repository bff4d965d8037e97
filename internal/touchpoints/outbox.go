// Package touchpoints records recipient interaction events. All emission
// goes through a single non-blocking outbox so that an analytics failure
// can never block or fail the request that produced it.
package touchpoints

import (
	"encoding/json"
	"log"
	"sync"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/example/giftwell/internal/models"
)

const queueSize = 256

// Event is one touchpoint awaiting persistence. Metadata enrichment
// (device classification) happens in the worker, not at the call site.
type Event struct {
	RecipientID uuid.UUID
	CampaignID  uuid.UUID
	Type        string
	Data        map[string]any
	UserAgent   string
	Source      string
}

// Outbox drains emitted events into the touchpoints table on a single
// background worker.
type Outbox struct {
	store func(models.Touchpoint) error
	queue chan Event
	done  chan struct{}

	mu     sync.RWMutex
	closed bool
}

// NewOutbox starts the worker goroutine.
func NewOutbox(db *gorm.DB) *Outbox {
	return newOutbox(func(tp models.Touchpoint) error {
		return db.Create(&tp).Error
	})
}

func newOutbox(store func(models.Touchpoint) error) *Outbox {
	o := &Outbox{
		store: store,
		queue: make(chan Event, queueSize),
		done:  make(chan struct{}),
	}
	go o.run()
	return o
}

// Emit enqueues an event. It never blocks and never reports failure to the
// caller; a full queue drops the event with a log line, and emitting after
// Close is a logged no-op.
func (o *Outbox) Emit(ev Event) {
	o.mu.RLock()
	defer o.mu.RUnlock()

	if o.closed {
		log.Printf("[Touchpoints] outbox closed, dropping %s for recipient %s", ev.Type, ev.RecipientID)
		return
	}

	select {
	case o.queue <- ev:
	default:
		log.Printf("[Touchpoints] queue full, dropping %s for recipient %s", ev.Type, ev.RecipientID)
	}
}

// Close stops accepting events and waits for the queue to drain. Safe to
// call more than once.
func (o *Outbox) Close() {
	o.mu.Lock()
	if o.closed {
		o.mu.Unlock()
		return
	}
	o.closed = true
	o.mu.Unlock()

	close(o.queue)
	<-o.done
}

func (o *Outbox) run() {
	defer close(o.done)

	for ev := range o.queue {
		if err := o.insert(ev); err != nil {
			log.Printf("[Touchpoints] failed to record %s for recipient %s: %v", ev.Type, ev.RecipientID, err)
		}
	}
}

func (o *Outbox) insert(ev Event) error {
	var data string
	if len(ev.Data) > 0 {
		raw, err := json.Marshal(ev.Data)
		if err != nil {
			return err
		}
		data = string(raw)
	}

	tp := models.Touchpoint{
		RecipientID: ev.RecipientID,
		CampaignID:  ev.CampaignID,
		Type:        ev.Type,
		Data:        data,
		UserAgent:   ev.UserAgent,
		Source:      ev.Source,
		DeviceType:  ClassifyDevice(ev.UserAgent),
	}

	return o.store(tp)
}
