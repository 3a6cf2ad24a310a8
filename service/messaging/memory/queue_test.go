package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type testPayload struct {
	Session string
	Status  int
}

func TestQueue(t *testing.T) {
	config := DefaultConfig()
	config.RetryDelay = 10 * time.Millisecond
	queue := NewQueue[testPayload](config)
	ctx := context.Background()

	payload := testPayload{Session: "main", Status: 0}
	err := queue.Publish(ctx, &payload)
	assert.NoError(t, err)
	assert.Equal(t, 1, queue.Size())

	message, err := queue.Consume(ctx)
	assert.NoError(t, err)
	assert.Equal(t, 0, queue.Size())
	assert.Equal(t, payload, *message.T())

	assert.NoError(t, message.Ack())
	assert.Error(t, message.Ack())
}

func TestQueue_NackRequeues(t *testing.T) {
	config := DefaultConfig()
	config.MaxRetries = 1
	config.RetryDelay = 5 * time.Millisecond
	queue := NewQueue[testPayload](config)
	ctx := context.Background()

	assert.NoError(t, queue.Publish(ctx, &testPayload{Session: "retry"}))

	message, err := queue.Consume(ctx)
	assert.NoError(t, err)
	assert.NoError(t, message.Nack(nil))

	waitCtx, cancel := context.WithTimeout(ctx, time.Second)
	defer cancel()
	message, err = queue.Consume(waitCtx)
	assert.NoError(t, err)
	assert.Equal(t, "retry", message.T().Session)

	// retries exhausted, nothing requeued
	assert.NoError(t, message.Nack(nil))
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, 0, queue.Size())
}

func TestQueue_ConsumeHonoursContext(t *testing.T) {
	queue := NewQueue[testPayload](DefaultConfig())
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	_, err := queue.Consume(ctx)
	assert.Error(t, err)
}
