package countdown

import (
	"fmt"
	"math"
)

// FormatRemaining renders seconds as M:SS, negative or NaN input shows 0:00
func FormatRemaining(seconds float64) string {
	if !(seconds > 0) {
		seconds = 0
	}
	whole := int64(math.Floor(seconds))
	return fmt.Sprintf("%d:%02d", whole/60, whole%60)
}

// DisplaySeconds rounds a running remaining value up to the next whole second (ceiling rule)
// The readout then shows the full duration for the first second and 0:01 for the last
// Exact whole seconds are shown as is: 5.0 remaining reads 0:05 and a fresh start reads 5:00, never 5:01
func DisplaySeconds(remaining float64) float64 {
	if remaining <= 0 {
		return 0
	}
	return math.Ceil(remaining)
}
