package rates

import "time"

// DateKeyLayout is the DD.MM.YYYY format the bank API expects.
const DateKeyLayout = "02.01.2006"

type DateKey string

func NewDateKey(t time.Time) DateKey {
	return DateKey(t.Format(DateKeyLayout))
}

func (d DateKey) String() string {
	return string(d)
}

// DateRange returns now, now-1 day, ..., now-(days-1) days.
func DateRange(now time.Time, days int) []DateKey {
	if days <= 0 {
		return []DateKey{}
	}

	keys := make([]DateKey, 0, days)

	for i := 0; i < days; i++ {
		keys = append(keys, NewDateKey(now.AddDate(0, 0, -i)))
	}

	return keys
}
