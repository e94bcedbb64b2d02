package ticket

type Status string

const (
	StatusPending   Status = "pending"
	StatusPaid      Status = "paid"
	StatusCancelled Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusPaid, StatusCancelled:
		return true
	default:
		return false
	}
}

type FareClass string

const (
	FareEconomy FareClass = "economy"
	FareVIP     FareClass = "vip"
)

func (f FareClass) String() string {
	return string(f)
}

func (f FareClass) IsValid() bool {
	switch f {
	case FareEconomy, FareVIP:
		return true
	default:
		return false
	}
}

type TripKind string

const (
	TripOneWay    TripKind = "one_way"
	TripRoundTrip TripKind = "round_trip"
)

func (t TripKind) String() string {
	return string(t)
}

func (t TripKind) IsValid() bool {
	switch t {
	case TripOneWay, TripRoundTrip:
		return true
	default:
		return false
	}
}
