package settlement

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestDerivePeriod(t *testing.T) {
	date := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)

	t.Run("UTC Window", func(t *testing.T) {
		svc := NewService(nil, zap.NewNop())

		period := svc.derivePeriod(date, "UTC")

		assert.Equal(t, time.Date(2024, 1, 14, 23, 59, 59, 999999000, time.UTC), period.Start)
		assert.Equal(t, time.Date(2024, 1, 15, 23, 59, 59, 999999000, time.UTC), period.End)
		assert.True(t, period.Start.Before(period.End))
		// Both endpoints sit at 23:59:59.999999, so the span is exactly one day.
		assert.Equal(t, 24*time.Hour, period.End.Sub(period.Start))
	})

	t.Run("Named Timezone Respects Offset", func(t *testing.T) {
		svc := NewService(nil, zap.NewNop())

		period := svc.derivePeriod(date, "America/New_York")

		// 23:59:59.999999 EST is 04:59:59.999999 UTC the next day.
		assert.Equal(t, time.Date(2024, 1, 16, 4, 59, 59, 999999000, time.UTC), period.End.UTC())
		assert.Equal(t, time.Date(2024, 1, 15, 4, 59, 59, 999999000, time.UTC), period.Start.UTC())
		assert.Equal(t, 24*time.Hour, period.End.Sub(period.Start))
	})

	t.Run("Month Boundary", func(t *testing.T) {
		svc := NewService(nil, zap.NewNop())

		period := svc.derivePeriod(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), "UTC")

		// 2024 is a leap year.
		assert.Equal(t, time.Date(2024, 2, 29, 23, 59, 59, 999999000, time.UTC), period.Start)
	})

	t.Run("Invalid Timezone Falls Back To UTC", func(t *testing.T) {
		core, logs := observer.New(zap.WarnLevel)
		svc := NewService(nil, zap.New(core))

		period := svc.derivePeriod(date, "Not/A_Zone")
		utcPeriod := svc.derivePeriod(date, "UTC")

		assert.True(t, period.Start.Equal(utcPeriod.Start))
		assert.True(t, period.End.Equal(utcPeriod.End))

		warnings := logs.FilterMessage("invalid timezone, falling back to UTC").All()
		assert.Len(t, warnings, 1)
		assert.Equal(t, "Not/A_Zone", warnings[0].ContextMap()["timezone"])
	})
}
