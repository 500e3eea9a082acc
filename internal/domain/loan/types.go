package loan

type Status string

const (
	StatusActive     Status = "ACTIVE"
	StatusOverdue    Status = "OVERDUE"
	StatusReturned   Status = "RETURNED"
	StatusScheduled  Status = "SCHEDULED"
	StatusOutOfOrder Status = "OUT_OF_ORDER"
)

// OpenStatuses are the stored statuses that still occupy the item.
var OpenStatuses = []Status{StatusActive, StatusOverdue, StatusScheduled}

func (s Status) String() string { return string(s) }

func (s Status) IsOpen() bool {
	for _, o := range OpenStatuses {
		if s == o {
			return true
		}
	}
	return false
}

func ParseStatus(s string) (Status, bool) {
	switch st := Status(s); st {
	case StatusActive, StatusOverdue, StatusReturned, StatusScheduled, StatusOutOfOrder:
		return st, true
	}
	return "", false
}
