package kraken

import (
	"fmt"
	"time"
)

// DelayForTier maps a Kraken API verification tier to the pause between
// paginated history requests. Lower tiers have a smaller rate budget and
// need longer pauses to page through a large history without being
// throttled.
func DelayForTier(tier string) (time.Duration, error) {
	switch tier {
	case "starter":
		return 7 * time.Second, nil
	case "intermediate":
		return 4 * time.Second, nil
	case "pro":
		return 2 * time.Second, nil
	}
	return 0, fmt.Errorf("unknown API tier %q (want starter, intermediate or pro)", tier)
}
