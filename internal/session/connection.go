package session

import (
	"time"
)

type ConnState uint8

const (
	Connecting ConnState = iota
	Connected
	Disconnected
)

func (s ConnState) String() string {
	switch s {
	case Connected:
		return "connected"
	case Disconnected:
		return "disconnected"
	default:
		return "connecting"
	}
}

// Connection tracks what the last device status probe told us.
type Connection struct {
	State    ConnState
	Device   string
	Uptime   time.Duration
	LastSeen time.Time
	Err      error
	Failures int
}

// Succeed records a successful probe at now.
func (c Connection) Succeed(device string, uptime time.Duration, now time.Time) Connection {
	return Connection{
		State:    Connected,
		Device:   device,
		Uptime:   uptime,
		LastSeen: now,
	}
}

// Fail records a failed probe. The device name and last-seen time survive
// so the indicator can say how long the device has been gone.
func (c Connection) Fail(err error) Connection {
	c.State = Disconnected
	c.Err = err
	c.Failures++
	return c
}

// NextPoll is the delay before the next probe: the steady interval while
// connected, the shorter retry interval otherwise.
func (c Connection) NextPoll(steady, retry time.Duration) time.Duration {
	if c.State == Connected {
		return steady
	}
	return retry
}
