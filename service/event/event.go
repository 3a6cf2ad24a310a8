package event

import "time"

// Context identifies the origin of a lifecycle event.
type Context struct {
	SessionName string `json:"sessionName,omitempty"`
	EventType   string `json:"eventType"`
	Service     string `json:"service,omitempty"`
}

type Event[T any] struct {
	Context   *Context  `json:"context"`
	CreatedAt time.Time `json:"createdAt"`
	Data      T         `json:"data"`
}

func NewEvent[T any](context *Context, data T) *Event[T] {
	return &Event[T]{
		Context:   context,
		CreatedAt: time.Now(),
		Data:      data,
	}
}
