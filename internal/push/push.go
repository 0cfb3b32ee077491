// Package push submits event envelopes to the delivery subsystem. Delivery is
// fire-and-forget past submission: a publish failure aborts the request, but
// whether any subscriber is listening is not this package's concern.
package push

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

//go:generate mockgen -source=push.go -destination=../mocks/push_mocks.go -package=mocks

// Notification pairs one event with its recipient set and the connection it
// originated from, so edge delivery can suppress the echo to the acting device.
type Notification struct {
	Event      Event       `json:"event"`
	Recipients []uuid.UUID `json:"-"`
	Origin     string      `json:"origin,omitempty"`
}

// Pusher submits notifications to the delivery subsystem
type Pusher interface {
	Deliver(ctx context.Context, n Notification) error
	DeliverBatch(ctx context.Context, ns []Notification) error
}

// RedisPusher publishes notifications over Redis pub/sub, one channel per
// recipient user
type RedisPusher struct {
	client redis.UniversalClient
}

// NewRedisPusher creates a pusher backed by the given Redis client
func NewRedisPusher(client redis.UniversalClient) *RedisPusher {
	return &RedisPusher{client: client}
}

// UserChannel returns the pub/sub channel for a user's event stream
func UserChannel(userID uuid.UUID) string {
	return "push:user:" + userID.String()
}

// Deliver publishes one notification to every recipient channel
func (p *RedisPusher) Deliver(ctx context.Context, n Notification) error {
	payload, err := json.Marshal(n)
	if err != nil {
		return fmt.Errorf("marshal notification: %w", err)
	}

	pipe := p.client.Pipeline()
	for _, recipient := range n.Recipients {
		pipe.Publish(ctx, UserChannel(recipient), payload)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("publish notification: %w", err)
	}
	return nil
}

// DeliverBatch publishes all notifications of one logical operation in a
// single pipelined round trip, preserving their order per channel
func (p *RedisPusher) DeliverBatch(ctx context.Context, ns []Notification) error {
	if len(ns) == 0 {
		return nil
	}

	pipe := p.client.Pipeline()
	for _, n := range ns {
		payload, err := json.Marshal(n)
		if err != nil {
			return fmt.Errorf("marshal notification: %w", err)
		}
		for _, recipient := range n.Recipients {
			pipe.Publish(ctx, UserChannel(recipient), payload)
		}
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("publish notification batch: %w", err)
	}
	return nil
}
