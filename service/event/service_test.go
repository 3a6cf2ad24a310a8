package event

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type commandEnded struct {
	Session string
	Status  int
}

type sessionClosed struct {
	Session string
}

func TestService_TypedRouting(t *testing.T) {
	service := New()
	defer service.Shutdown()

	var mux sync.Mutex
	var ended []commandEnded
	var closed []sessionClosed

	err := SetListenerOf[commandEnded](service, func(event *Event[commandEnded]) {
		mux.Lock()
		defer mux.Unlock()
		ended = append(ended, event.Data)
	})
	assert.NoError(t, err)
	err = SetListenerOf[sessionClosed](service, func(event *Event[sessionClosed]) {
		mux.Lock()
		defer mux.Unlock()
		closed = append(closed, event.Data)
	})
	assert.NoError(t, err)

	publisher, err := PublisherOf[commandEnded](service)
	assert.NoError(t, err)
	ctx := context.Background()
	assert.NoError(t, publisher.Publish(ctx, NewEvent(&Context{SessionName: "main", EventType: "commandEnded"}, commandEnded{Session: "main", Status: 2})))

	assert.Eventually(t, func() bool {
		mux.Lock()
		defer mux.Unlock()
		return len(ended) == 1
	}, time.Second, 5*time.Millisecond)

	mux.Lock()
	assert.Equal(t, commandEnded{Session: "main", Status: 2}, ended[0])
	assert.Empty(t, closed)
	mux.Unlock()
}

func TestService_ReplacesListener(t *testing.T) {
	service := New()
	defer service.Shutdown()

	var mux sync.Mutex
	var got []string
	for _, tag := range []string{"first", "second"} {
		tag := tag
		err := SetListenerOf[sessionClosed](service, func(event *Event[sessionClosed]) {
			mux.Lock()
			defer mux.Unlock()
			got = append(got, tag)
		})
		assert.NoError(t, err)
	}

	publisher, err := PublisherOf[sessionClosed](service)
	assert.NoError(t, err)
	assert.NoError(t, publisher.Publish(context.Background(), NewEvent(&Context{EventType: "closed"}, sessionClosed{Session: "main"})))

	assert.Eventually(t, func() bool {
		mux.Lock()
		defer mux.Unlock()
		return len(got) == 1
	}, time.Second, 5*time.Millisecond)
	mux.Lock()
	assert.Equal(t, []string{"second"}, got)
	mux.Unlock()
}
