package economy

import "time"

const (
	DefaultStartingGold   Gold = 1000
	DefaultUpkeepRate     Gold = 30
	DefaultUpkeepInterval      = 7 * time.Second
)

// UpkeepDue is what the treasury pays for the given total occupation over the
// given number of completed intervals.
func UpkeepDue(occupation, rate Gold, intervals int) Gold {
	if intervals <= 0 || occupation <= 0 {
		return 0
	}
	return occupation * rate * Gold(intervals)
}
