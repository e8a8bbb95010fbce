package reducer

import (
	"crs-translator/internal/association"
	"crs-translator/internal/booking"
	"crs-translator/internal/codec"
	"crs-translator/internal/common"
)

func (p *pass) reduceHotel(hotel *booking.HotelService, crsType string) {
	row := booking.CrsService{
		Marker:        marker(hotel.Marked),
		Type:          crsType,
		Code:          hotel.Destination,
		Accommodation: common.JoinNonEmpty(" ", hotel.RoomCode, hotel.MealCode),
		Occupancy:     itoa(hotel.RoomOccupancy),
		Quantity:      itoa(hotel.RoomQuantity),
		FromDate:      p.date(hotel.DateFrom),
		ToDate:        p.date(hotel.DateTo),
	}
	req := association.Request{
		Slots:     hotel.Travellers,
		Required:  hotel.RoomOccupancy * hotel.RoomQuantity,
		Separator: association.Range,
	}

	idx := p.findRow(crsType, func(existing booking.CrsService) bool {
		return codec.IsMarked(booking.KindHotel, existing) || sameStay(existing, row)
	})
	if idx < 0 {
		p.appendRow(row, req)

		return
	}

	p.overwriteRow(idx, row, req)
}

func (p *pass) reduceRoundTrip(trip *booking.RoundTripService, crsType string) {
	row := booking.CrsService{
		Marker:   marker(trip.Marked),
		Type:     crsType,
		Code:     trip.Destination,
		FromDate: p.date(trip.StartDate),
		ToDate:   p.date(trip.EndDate),
	}

	if trip.BookingID != "" {
		row.Code = codec.CreateRoundTripCode(trip.BookingID)
		row.Accommodation = trip.Destination
	}

	req := association.Request{
		Slots:     trip.Travellers,
		Required:  len(trip.Travellers),
		Separator: association.Range,
	}

	idx := -1
	if trip.BookingID != "" {
		idx = p.findRow(crsType, func(existing booking.CrsService) bool {
			id, ok := codec.SplitRoundTripCode(existing.Code)

			return ok && id == trip.BookingID
		})
	}

	if idx < 0 {
		idx = p.findRow(crsType, func(existing booking.CrsService) bool {
			return codec.IsRoundTripMarked(existing, "")
		})
	}

	if idx < 0 {
		p.appendRow(row, req)

		return
	}

	p.overwriteRow(idx, row, req)
}

func (p *pass) reduceRaw(raw *booking.RawService) {
	p.appendRow(booking.CrsService{
		Marker:        marker(raw.Marked),
		Type:          raw.Type,
		Code:          raw.Code,
		Accommodation: raw.Accommodation,
		FromDate:      raw.FromDate,
		ToDate:        raw.ToDate,
		Occupancy:     raw.Occupancy,
		Quantity:      raw.Quantity,
	}, association.Request{
		Slots:     raw.Travellers,
		Required:  len(raw.Travellers),
		Separator: association.Range,
	})
}

// sameStay reports whether two hotel rows book the same destination for the
// same dates.
func sameStay(a, b booking.CrsService) bool {
	return a.Code == b.Code && a.FromDate == b.FromDate && a.ToDate == b.ToDate
}

// findRow returns the position of the first unclaimed preexisting row of
// crsType accepted by pred, or -1.
func (p *pass) findRow(crsType string, pred func(booking.CrsService) bool) int {
	for i, existing := range p.crs.Services[:p.preexisting] {
		if !p.claimed[i] && existing.Type == crsType && pred(existing) {
			return i
		}
	}

	return -1
}
