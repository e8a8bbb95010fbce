package codec

import (
	"strings"

	"crs-translator/internal/booking"
)

const roundTripPrefix = "NEZ"

// SplitRoundTripCode extracts the booking id embedded in a round trip code.
func SplitRoundTripCode(code string) (string, bool) {
	if !strings.HasPrefix(code, roundTripPrefix) {
		return "", false
	}

	return strings.TrimPrefix(code, roundTripPrefix), true
}

// CreateRoundTripCode embeds a booking id in a round trip code.
func CreateRoundTripCode(bookingID string) string {
	return roundTripPrefix + bookingID
}

// IsIncomplete reports whether row is an unfinished placeholder for kind k.
// Raw rows are never considered incomplete.
func IsIncomplete(k booking.Kind, row booking.CrsService) bool {
	switch k {
	case booking.KindCar, booking.KindCamper:
		return row.Code == "" || IsLocationsOnly(row.Code)
	case booking.KindHotel:
		return row.Code == "" || row.Accommodation == ""
	case booking.KindRoundTrip:
		return row.Code == ""
	default:
		return false
	}
}

// IsMarked reports whether row is incomplete or explicitly flagged for kind k.
func IsMarked(k booking.Kind, row booking.CrsService) bool {
	return row.Marker != "" || IsIncomplete(k, row)
}

// IsRoundTripMarked applies the round trip rule. A booking id that differs from
// the one embedded in the code also marks the row.
func IsRoundTripMarked(row booking.CrsService, bookingID string) bool {
	if IsMarked(booking.KindRoundTrip, row) {
		return true
	}

	if bookingID == "" {
		return false
	}

	embedded, _ := SplitRoundTripCode(row.Code)

	return embedded != bookingID
}
