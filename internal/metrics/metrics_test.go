package metrics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMetrics(t *testing.T) {
	// Register should be safe to call multiple times
	Register()
	Register()

	assert.NotPanics(t, func() {
		ObserveHTTP("GET", "/bookings", "200", 15*time.Millisecond)
		IncBookingCreated()
		IncBookingDecided("APPROVED")
		IncBookingDecided("REJECTED")
	})
}
