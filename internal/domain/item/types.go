package item

type Status string

const (
	StatusAvailable  Status = "AVAILABLE"
	StatusBorrowed   Status = "BORROWED"
	StatusReserved   Status = "RESERVED"
	StatusOutOfOrder Status = "OUT_OF_ORDER"
	StatusPending    Status = "PENDING"
)

func (s Status) String() string { return string(s) }

func ParseStatus(s string) (Status, bool) {
	switch st := Status(s); st {
	case StatusAvailable, StatusBorrowed, StatusReserved, StatusOutOfOrder, StatusPending:
		return st, true
	}
	return "", false
}

type Category string

const (
	CategoryBook      Category = "BOOK"
	CategoryEquipment Category = "EQUIPMENT"
)

func (c Category) String() string { return string(c) }

func ParseCategory(s string) (Category, bool) {
	switch c := Category(s); c {
	case CategoryBook, CategoryEquipment:
		return c, true
	}
	return "", false
}
