package session

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ControlState is the visual state of a bound control
type ControlState string

const (
	ControlIdle    ControlState = "idle"
	ControlLoading ControlState = "loading"
	ControlError   ControlState = "error"
)

// String returns the string representation of the state
func (s ControlState) String() string {
	return string(s)
}

// ControlIcon names the icon shown on a control
type ControlIcon string

const (
	IconDownload ControlIcon = "download"
	IconSpinner  ControlIcon = "spinner"
	IconError    ControlIcon = "error"
)

// Importance is the emphasis a control is rendered with
type Importance string

const (
	ImportanceHigh   Importance = "high"
	ImportanceMedium Importance = "medium"
	ImportanceDanger Importance = "danger"
)

// Presentation describes how a control looks in a given state
type Presentation struct {
	Icon       ControlIcon
	Disabled   bool
	Importance Importance
}

// IsValid reports whether s is one of the known control states
func (s ControlState) IsValid() bool {
	return s == ControlIdle || s == ControlLoading || s == ControlError
}

// Presentation maps every state to its look. An unknown state gets a
// disabled look of its own so it never passes for idle.
func (s ControlState) Presentation() Presentation {
	switch s {
	case ControlIdle:
		return Presentation{Icon: IconDownload, Disabled: false, Importance: ImportanceHigh}
	case ControlLoading:
		return Presentation{Icon: IconSpinner, Disabled: true, Importance: ImportanceMedium}
	case ControlError:
		return Presentation{Icon: IconError, Disabled: true, Importance: ImportanceDanger}
	default:
		return Presentation{Icon: IconError, Disabled: true, Importance: ImportanceMedium}
	}
}

// ControlIDPrefix is prepended to generated control ids
const ControlIDPrefix = "dl-"

// NewControlID generates a control id using UUID v7
func NewControlID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return fmt.Sprintf(ControlIDPrefix+"%d", time.Now().UnixNano())
	}
	return ControlIDPrefix + id.String()
}
