package iso_test

import (
	"testing"
	"time"

	"github.com/rickb777/date/v2/timespan"
	"github.com/stretchr/testify/assert"

	"github.com/on-the-ground/optic_ive_go/optics/iso"
	"github.com/on-the-ground/optic_ive_go/shared/pair"
)

func TestTimeSpans_BoundaryPairRoundTrip(t *testing.T) {
	from := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	to := time.Date(2025, 3, 1, 17, 30, 0, 0, time.UTC)

	l := iso.TimeSpans()

	p := l.Get(timespan.BetweenTimes(from, to))
	assert.True(t, p.Fst.Equal(from))
	assert.True(t, p.Snd.Equal(to))

	ts := l.ReverseGet(pair.New(from, to))
	assert.True(t, ts.Start().Equal(from))
	assert.True(t, ts.End().Equal(to))
}
