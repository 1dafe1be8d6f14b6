package rental

import (
	"errors"
	"fmt"
)

// Stable machine-readable rejection codes of the booking pipeline.
const (
	CodeMissingVehicleID    = "MISSING_VEHICLE_ID"
	CodeMissingFromDate     = "MISSING_FROM_DATE"
	CodeMissingToDate       = "MISSING_TO_DATE"
	CodeToBeforeFrom        = "TO_BEFORE_FROM"
	CodeFromBeforeToday     = "FROM_BEFORE_TODAY"
	CodeUnknownVehicle      = "UNKNOWN_VEHICLE"
	CodeAlreadyBooked       = "VEHICLE_ALREADY_BOOKED"
	CodeForeignUseForbidden = "FOREIGN_USE_FORBIDDEN"
)

// Rejection is a classified refusal of a booking request. Anything else that
// comes out of the pipeline is an infrastructure failure and is never wrapped
// in a Rejection.
type Rejection struct {
	Code    string
	Message string
}

func (r *Rejection) Error() string {
	return r.Code + ": " + r.Message
}

func reject(code, format string, args ...interface{}) *Rejection {
	return &Rejection{Code: code, Message: fmt.Sprintf(format, args...)}
}

// AsRejection unwraps err into a Rejection if it is one.
func AsRejection(err error) (*Rejection, bool) {
	var r *Rejection
	if errors.As(err, &r) {
		return r, true
	}
	return nil, false
}
