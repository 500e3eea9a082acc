package reservation

type Status string

const (
	StatusConfirmed Status = "CONFIRMED"
	StatusCancelled Status = "CANCELLED"
	StatusExpired   Status = "EXPIRED"
)

func (s Status) String() string { return string(s) }

func ParseStatus(s string) (Status, bool) {
	switch st := Status(s); st {
	case StatusConfirmed, StatusCancelled, StatusExpired:
		return st, true
	}
	return "", false
}
