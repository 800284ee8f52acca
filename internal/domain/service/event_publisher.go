package service

import (
	"context"
	"time"
)

// Address event types.
const (
	EventAddressCreated = "address.created"
	EventAddressDeleted = "address.deleted"
	EventCommentCreated = "comment.created"
)

// AddressEvent describes a change to an address or its comments
type AddressEvent struct {
	RequestID  string    `json:"request_id,omitempty"` // For distributed tracing
	EventID    string    `json:"event_id"`
	Type       string    `json:"type"`
	AddressID  string    `json:"address_id"`
	CommentID  string    `json:"comment_id,omitempty"`
	User       string    `json:"user"`
	IsPublic   bool      `json:"is_public"`
	Latitude   float64   `json:"latitude"`
	Longitude  float64   `json:"longitude"`
	OccurredAt time.Time `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishAddressEvent publishes an address event for downstream consumers
	PublishAddressEvent(ctx context.Context, event *AddressEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
