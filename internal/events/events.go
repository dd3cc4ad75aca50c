// Package events publishes structured domain events to the managed event
// bus. Delivery to downstream subscribers is out of scope.
package events

import "context"

// UserCreated is emitted once per successful sign-up.
type UserCreated struct {
	UserID string `json:"userId"`
	Email  string `json:"email"`
}

type Publisher interface {
	PublishUserCreated(ctx context.Context, event UserCreated) error
}
