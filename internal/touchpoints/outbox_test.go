package touchpoints

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/giftwell/internal/models"
)

// captureStore collects everything the worker persists.
type captureStore struct {
	mu     sync.Mutex
	stored []models.Touchpoint
}

func (s *captureStore) store(tp models.Touchpoint) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stored = append(s.stored, tp)
	return nil
}

func (s *captureStore) all() []models.Touchpoint {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Touchpoint, len(s.stored))
	copy(out, s.stored)
	return out
}

func TestOutbox_CloseDrainsQueuedEvents(t *testing.T) {
	capture := &captureStore{}
	o := newOutbox(capture.store)

	recipientID := uuid.New()
	campaignID := uuid.New()

	o.Emit(Event{
		RecipientID: recipientID,
		CampaignID:  campaignID,
		Type:        TypeClaimPageVisited,
		Data:        map[string]any{"path": "/claim"},
		UserAgent:   "Mozilla/5.0 (iPhone; CPU iPhone OS 17_0 like Mac OS X) Mobile",
		Source:      "claim-ui",
	})
	o.Emit(Event{
		RecipientID: recipientID,
		CampaignID:  campaignID,
		Type:        TypeGiftSelected,
	})

	o.Close()

	stored := capture.all()
	require.Len(t, stored, 2)

	first := stored[0]
	assert.Equal(t, recipientID, first.RecipientID)
	assert.Equal(t, campaignID, first.CampaignID)
	assert.Equal(t, TypeClaimPageVisited, first.Type)
	assert.JSONEq(t, `{"path":"/claim"}`, first.Data)
	assert.Equal(t, "claim-ui", first.Source)
	assert.Equal(t, DeviceMobile, first.DeviceType)

	second := stored[1]
	assert.Equal(t, TypeGiftSelected, second.Type)
	assert.Empty(t, second.Data)
	assert.Equal(t, DeviceOther, second.DeviceType)
}

func TestOutbox_EmitNeverBlocksWhenQueueFull(t *testing.T) {
	entered := make(chan struct{})
	release := make(chan struct{})
	capture := &captureStore{}

	var once sync.Once
	o := newOutbox(func(tp models.Touchpoint) error {
		once.Do(func() {
			close(entered)
			<-release
		})
		return capture.store(tp)
	})

	// Park the worker inside the store, then fill the whole queue behind it.
	o.Emit(Event{Type: TypeClaimLinkClicked})
	select {
	case <-entered:
	case <-time.After(time.Second):
		t.Fatal("worker never reached the store")
	}
	for i := 0; i < queueSize; i++ {
		o.Emit(Event{Type: TypeNavigationEvent})
	}

	// One more than the queue holds: it must be dropped, not waited on.
	returned := make(chan struct{})
	go func() {
		o.Emit(Event{Type: TypeMediaInteracted})
		close(returned)
	}()
	select {
	case <-returned:
	case <-time.After(time.Second):
		t.Fatal("Emit blocked on a full queue")
	}

	close(release)
	o.Close()

	stored := capture.all()
	assert.Len(t, stored, queueSize+1)
	for _, tp := range stored {
		assert.NotEqual(t, TypeMediaInteracted, tp.Type)
	}
}

func TestOutbox_StoreFailureDoesNotStopWorker(t *testing.T) {
	capture := &captureStore{}
	calls := 0
	o := newOutbox(func(tp models.Touchpoint) error {
		calls++
		if calls == 1 {
			return errors.New("connection reset")
		}
		return capture.store(tp)
	})

	o.Emit(Event{Type: TypeClaimPageLoaded})
	o.Emit(Event{Type: TypeGiftInfoFetched})
	o.Close()

	stored := capture.all()
	require.Len(t, stored, 1)
	assert.Equal(t, TypeGiftInfoFetched, stored[0].Type)
}

func TestOutbox_EmitAfterCloseIsNoOp(t *testing.T) {
	capture := &captureStore{}
	o := newOutbox(capture.store)

	o.Emit(Event{Type: TypeClaimPageVisited})
	o.Close()

	assert.NotPanics(t, func() {
		o.Emit(Event{Type: TypeGiftSelected})
	})
	assert.NotPanics(t, o.Close)

	stored := capture.all()
	require.Len(t, stored, 1)
	assert.Equal(t, TypeClaimPageVisited, stored[0].Type)
}
