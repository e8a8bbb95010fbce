package booking

//go:generate go tool stringer -type=Kind -linecomment -output=kind_string.go

// Kind identifies an adapter service variant.
type Kind int

const (
	KindRaw       Kind = iota // raw
	KindCar                   // car
	KindHotel                 // hotel
	KindRoundTrip             // roundTrip
	KindCamper                // camper

	// KindTotal is the number of kinds defined.
	KindTotal = int(iota)
)

// Kinds lists the mappable kinds, raw excluded.
var Kinds = []Kind{KindCar, KindHotel, KindRoundTrip, KindCamper}

// ParseKind resolves a canonical type name. Unknown names yield KindRaw and false.
func ParseKind(s string) (Kind, bool) {
	for k := range Kind(KindTotal) {
		if k.String() == s {
			return k, true
		}
	}

	return KindRaw, false
}
