package iso

import (
	"time"

	"github.com/rickb777/date/v2/timespan"

	"github.com/on-the-ground/optic_ive_go/shared/pair"
)

// TimeSpans relates a time span to the pair of its boundary instants.
// BetweenTimes normalizes argument order, so the bijection holds on pairs
// whose first instant does not follow the second.
func TimeSpans() Simple[timespan.TimeSpan, pair.Pair[time.Time, time.Time]] {
	return New(
		func(ts timespan.TimeSpan) pair.Pair[time.Time, time.Time] {
			return pair.New(ts.Start(), ts.End())
		},
		func(p pair.Pair[time.Time, time.Time]) timespan.TimeSpan {
			return timespan.BetweenTimes(p.Fst, p.Snd)
		},
	)
}
