package exam

// Countdown is the exam clock in whole seconds. It never goes negative
// and reports expiry exactly once per Reset.
type Countdown struct {
	budget    int
	remaining int
	fired     bool
}

// Reset loads the budget and re-arms expiry.
func (c *Countdown) Reset(budgetSecs int) {
	c.budget = max(budgetSecs, 0)
	c.remaining = c.budget
	c.fired = false
}

// Tick removes one second. It returns true only on the tick that
// reaches zero; later ticks are no-ops.
func (c *Countdown) Tick() bool {
	if c.fired {
		return false
	}
	if c.remaining > 0 {
		c.remaining--
	}
	if c.remaining == 0 {
		c.fired = true
		return true
	}
	return false
}

// Remaining returns the seconds left.
func (c *Countdown) Remaining() int { return c.remaining }

// Budget returns the seconds the countdown was reset to.
func (c *Countdown) Budget() int { return c.budget }

// Elapsed returns Budget minus Remaining.
func (c *Countdown) Elapsed() int { return c.budget - c.remaining }

// Expired reports whether expiry has fired since the last Reset.
func (c *Countdown) Expired() bool { return c.fired }
