package purchase

import "errors"

var ErrInvalidStatus = errors.New("invalid status")

// Status is assigned once at admission time and never revisited:
// pre-approval changes do not retroactively affect existing purchases.
type Status string

const (
	StatusUnderReview Status = "EmValidação"
	StatusApproved    Status = "Aprovado"
)

func NewStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusUnderReview, StatusApproved:
		return Status(s), nil
	default:
		return "", ErrInvalidStatus
	}
}

func (s Status) String() string {
	return string(s)
}
