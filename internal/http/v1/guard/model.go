package guard

import (
	"github.com/janisto/widget-playground/internal/platform/timeutil"
)

// Guard is the unsaved-changes state and the page-leave decision.
type Guard struct {
	State   string        `json:"state"             enum:"clean,dirty" doc:"Guard state"                            example:"dirty"`
	Block   bool          `json:"block"                                doc:"Whether leaving needs confirmation"     example:"true"`
	Message string        `json:"message,omitempty"                    doc:"Confirmation prompt when block is true" example:"You have unsaved changes. Are you sure you want to leave?"`
	Since   timeutil.Time `json:"since"                                doc:"When the state last changed, null before the first change" example:"2024-01-15T10:30:00.000Z"`
}
