package settlement

import (
	"time"

	"github.com/chris/merchant-settlement/pkg/models"
	"go.uber.org/zap"
)

// lastInstant is the final microsecond of a calendar day, matching the
// upstream API's created_at precision.
const lastInstant = 999999000 // nanoseconds

// derivePeriod computes the settlement window for a date: from the last
// instant of the previous business day to the last instant of the settlement
// date, both in the requested timezone. Previous business day is, for now,
// just the previous calendar day.
//
// An unrecognized timezone falls back to UTC with a warning; a bad timezone
// string never fails the request.
func (s *Service) derivePeriod(date time.Time, tzName string) models.SettlementPeriod {
	loc, err := time.LoadLocation(tzName)
	if err != nil {
		s.logger.Warn("invalid timezone, falling back to UTC",
			zap.String("timezone", tzName),
			zap.Error(err))
		loc = time.UTC
	}

	end := time.Date(date.Year(), date.Month(), date.Day(), 23, 59, 59, lastInstant, loc)
	start := time.Date(date.Year(), date.Month(), date.Day()-1, 23, 59, 59, lastInstant, loc)

	return models.SettlementPeriod{Start: start, End: end}
}
