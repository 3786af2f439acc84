package timesheet

import (
	"context"
	"time"
)

// Tick is one sample of the live earnings counter.
type Tick struct {
	Amount  float64 `json:"amount"`
	Working bool    `json:"working"`
	At      string  `json:"at"`
}

// Counter produces once-per-second accrual samples for a schedule. The
// clock is injectable for tests.
type Counter struct {
	schedule Schedule
	interval time.Duration
	now      func() time.Time
}

func NewCounter(s Schedule) *Counter {
	return &Counter{
		schedule: s,
		interval: time.Second,
		now:      time.Now,
	}
}

// Sample computes a single tick at the counter's current clock.
func (c *Counter) Sample() (Tick, error) {
	now := c.now()
	amount, err := c.schedule.EarnedSoFar(now)
	if err != nil {
		return Tick{}, err
	}

	return Tick{
		Amount:  amount,
		Working: c.schedule.IsWorking(now),
		At:      ClockOf(now).String(),
	}, nil
}

// Run delivers a tick every second until the context is done or the
// schedule turns out to be unparsable. The first tick is immediate.
func (c *Counter) Run(ctx context.Context, fn func(Tick)) error {
	tick, err := c.Sample()
	if err != nil {
		return err
	}
	fn(tick)

	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			tick, err := c.Sample()
			if err != nil {
				return err
			}
			fn(tick)
		}
	}
}
