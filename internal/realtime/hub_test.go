package realtime_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kartavyango/sahaaya/internal/domain/entity"
	"github.com/kartavyango/sahaaya/internal/realtime"
)

func TestHub_PublishReachesSubscriber(t *testing.T) {
	hub := realtime.NewHub()
	ch, cancel := hub.Subscribe("user-1")
	defer cancel()

	hub.Publish("user-1", &entity.Notification{ID: "n-1", UserID: "user-1", Title: "hello"})

	select {
	case n := <-ch:
		assert.Equal(t, "n-1", n.ID)
	case <-time.After(time.Second):
		t.Fatal("expected a notification on the channel")
	}
}

func TestHub_PublishIgnoresOtherUsers(t *testing.T) {
	hub := realtime.NewHub()
	ch, cancel := hub.Subscribe("user-1")
	defer cancel()

	hub.Publish("user-2", &entity.Notification{ID: "n-1", UserID: "user-2"})

	select {
	case <-ch:
		t.Fatal("notification delivered to the wrong subscriber")
	case <-time.After(20 * time.Millisecond):
	}
}

func TestHub_CancelStopsDelivery(t *testing.T) {
	hub := realtime.NewHub()
	ch, cancel := hub.Subscribe("user-1")
	cancel()

	// Publishing after cancel must not panic or deliver.
	hub.Publish("user-1", &entity.Notification{ID: "n-1", UserID: "user-1"})

	select {
	case _, ok := <-ch:
		assert.False(t, ok)
	case <-time.After(20 * time.Millisecond):
	}
}

func TestHub_SlowSubscriberDropsInsteadOfBlocking(t *testing.T) {
	hub := realtime.NewHub()
	ch, cancel := hub.Subscribe("user-1")
	defer cancel()

	// Overfill the subscriber buffer; Publish must never block.
	done := make(chan struct{})
	go func() {
		for i := 0; i < 100; i++ {
			hub.Publish("user-1", &entity.Notification{ID: "n", UserID: "user-1"})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("publish blocked on a slow subscriber")
	}

	// The buffered messages are still readable.
	select {
	case n := <-ch:
		require.NotNil(t, n)
	case <-time.After(time.Second):
		t.Fatal("expected at least one buffered notification")
	}
}

func TestHub_MultipleSubscribersSameUser(t *testing.T) {
	hub := realtime.NewHub()
	ch1, cancel1 := hub.Subscribe("user-1")
	defer cancel1()
	ch2, cancel2 := hub.Subscribe("user-1")
	defer cancel2()

	hub.Publish("user-1", &entity.Notification{ID: "n-1", UserID: "user-1"})

	for _, ch := range []<-chan *entity.Notification{ch1, ch2} {
		select {
		case n := <-ch:
			assert.Equal(t, "n-1", n.ID)
		case <-time.After(time.Second):
			t.Fatal("each subscription should receive its own copy")
		}
	}
}
