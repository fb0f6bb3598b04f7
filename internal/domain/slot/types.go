package slot

type Status string

const (
	StatusAvailable Status = "AVAILABLE"
	StatusBooked    Status = "BOOKED"
	StatusBlocked   Status = "BLOCKED"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusAvailable, StatusBooked, StatusBlocked:
		return true
	default:
		return false
	}
}
