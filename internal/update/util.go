package update

import (
	"strconv"
	"time"
)

// timeNow is swapped out in tests that need a fixed clock.
var timeNow = time.Now

func itoa(v int) string {
	return strconv.Itoa(v)
}
