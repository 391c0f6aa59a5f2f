package lns_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/cpsearch/lns"
)

func TestTimeStop_FiresAfterLimit(t *testing.T) {
	ts := lns.NewTimeStop()
	ts.Limit(5)
	ts.Reset()

	// Burn through the sparse-poll mask quickly so the real elapsed-time
	// check actually runs at least once.
	fired := false
	for i := 0; i < 20000 && !fired; i++ {
		if ts.Stop(lns.Statistics{}) {
			fired = true
		}
		time.Sleep(time.Microsecond)
	}
	assert.True(t, fired, "TimeStop must eventually fire once its limit elapses")
}

func TestTimeStop_UnboundedWhenNonPositive(t *testing.T) {
	ts := lns.NewTimeStop()
	ts.Limit(0)
	ts.Reset()
	for i := 0; i < 10000; i++ {
		assert.False(t, ts.Stop(lns.Statistics{}))
	}
}

type fixedStop struct{ fire bool }

func (f fixedStop) Stop(lns.Statistics) bool { return f.fire }

func TestCombinedStop_FiresOnEitherChild(t *testing.T) {
	c := lns.NewCombinedStop(fixedStop{fire: false})
	c.Internal.Limit(0)
	assert.False(t, c.Stop(lns.Statistics{}))

	c2 := lns.NewCombinedStop(fixedStop{fire: true})
	assert.True(t, c2.Stop(lns.Statistics{}))

	c3 := lns.NewCombinedStop(nil)
	assert.False(t, c3.Stop(lns.Statistics{}))
}
