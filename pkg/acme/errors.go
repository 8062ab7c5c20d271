package acme

import (
	"fmt"

	"github.com/chris/merchant-settlement/pkg/models"
)

// ExhaustedError is returned when every retry attempt for one logical call
// has failed. Attempts carries the ordered failure records as data so callers
// never have to parse them back out of a message.
type ExhaustedError struct {
	Endpoint string
	Attempts []models.FailureRecord
}

func (e *ExhaustedError) Error() string {
	return fmt.Sprintf("acme: GET %s failed after %d attempts", e.Endpoint, len(e.Attempts))
}
