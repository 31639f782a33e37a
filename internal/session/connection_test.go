package session

import (
	"errors"
	"testing"
	"time"
)

func TestConnectionTransitions(t *testing.T) {
	t.Parallel()

	var (
		now    = time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
		steady = 10 * time.Second
		retry  = 5 * time.Second
		c      Connection
	)

	if c.State != Connecting {
		t.Fatalf("zero Connection state = %v, want connecting", c.State)
	}
	if got := c.NextPoll(steady, retry); got != retry {
		t.Errorf("NextPoll while connecting = %v, want %v", got, retry)
	}

	c = c.Succeed("Lumi", time.Minute, now)
	if c.State != Connected || c.Device != "Lumi" || !c.LastSeen.Equal(now) {
		t.Fatalf("after success = %+v", c)
	}
	if got := c.NextPoll(steady, retry); got != steady {
		t.Errorf("NextPoll while connected = %v, want %v", got, steady)
	}

	boom := errors.New("boom")
	c = c.Fail(boom)
	c = c.Fail(boom)
	if c.State != Disconnected || !errors.Is(c.Err, boom) || c.Failures != 2 {
		t.Fatalf("after failures = %+v", c)
	}
	if c.Device != "Lumi" || !c.LastSeen.Equal(now) {
		t.Errorf("failure lost last known device: %+v", c)
	}
	if got := c.NextPoll(steady, retry); got != retry {
		t.Errorf("NextPoll while disconnected = %v, want %v", got, retry)
	}

	c = c.Succeed("Lumi", 2*time.Minute, now.Add(time.Minute))
	if c.Err != nil || c.Failures != 0 {
		t.Errorf("success did not clear failure state: %+v", c)
	}
}
