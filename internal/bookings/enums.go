package bookings

type TripType string

const (
	TripTypeOneWay    TripType = "oneway"
	TripTypeRoundTrip TripType = "roundtrip"
)

func (t TripType) IsValid() bool {
	switch t {
	case TripTypeOneWay, TripTypeRoundTrip:
		return true
	}
	return false
}

func (t TripType) String() string {
	return string(t)
}
