package mock

import "time"

// Time is a settable calendar for reminder scenarios.
type Time struct {
	current time.Time
}

func NewTime() *Time {
	return &Time{current: time.Now()}
}

// SetDate fixes the current day, parsed as YYYY-MM-DD.
func (t *Time) SetDate(date string) error {
	day, err := time.Parse(time.DateOnly, date)
	if err != nil {
		return err
	}
	t.current = day
	return nil
}

func (t *Time) Now() time.Time {
	return t.current
}
