// Package session identifies one run of the client and tracks its view of
// the device connection.
package session

import "github.com/google/uuid"

// NewID returns a time-ordered identifier for this client run, so device
// logs sort by session.
func NewID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
