package booking

type Status string

const (
	StatusPending   Status = "PENDING"
	StatusConfirmed Status = "CONFIRMED"
	StatusCompleted Status = "COMPLETED"
	StatusCancelled Status = "CANCELLED"
	StatusNoShow    Status = "NO_SHOW"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	_, ok := transitions[s]
	return ok
}

// transitions is the only place booking status rules live.
var transitions = map[Status][]Status{
	StatusPending:   {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusCompleted, StatusCancelled, StatusNoShow},
	StatusCompleted: nil,
	StatusCancelled: nil,
	StatusNoShow:    nil,
}

func CanTransition(from, to Status) bool {
	for _, s := range transitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

func (s Status) IsTerminal() bool {
	return s.IsValid() && len(transitions[s]) == 0
}
