package model

// EventInfo carries the static, display-only venue metadata printed on
// the ticket card.  None of these values affect booking logic.
type EventInfo struct {
	Name           string `json:"name"`            // headline event name
	Schedule       string `json:"schedule"`        // date/time line, e.g. "28TH FEB • 10:00 AM"
	Venue          string `json:"venue"`           // location line
	Gate           string `json:"gate"`            // entrance label
	SupportContact string `json:"support_contact"` // contact shown in the ticket footer
}
