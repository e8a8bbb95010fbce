package mapper

import (
	"strconv"
	"strings"

	"crs-translator/internal/booking"
	"crs-translator/internal/codec"
	"crs-translator/internal/common"
	"crs-translator/internal/meta"
)

// MapToAdapterService converts row as kind k. A nil row yields nil.
func MapToAdapterService(k booking.Kind, row *booking.CrsService, def meta.DataDefinition) booking.AdapterService {
	if row == nil {
		return nil
	}

	switch k {
	case booking.KindCar:
		return mapCar(row, def)
	case booking.KindCamper:
		return mapCamper(row, def)
	case booking.KindHotel:
		return mapHotel(row, def)
	case booking.KindRoundTrip:
		return mapRoundTrip(row, def)
	default:
		return mapRaw(row)
	}
}

func mapVehicle(k booking.Kind, row *booking.CrsService, def meta.DataDefinition) (booking.Vehicle, bool) {
	v := booking.Vehicle{
		PickUpDate:  formatDate(row.FromDate, def),
		DropOffDate: formatDate(row.ToDate, def),
		PickUpTime:  formatTime(row.Accommodation, def),
	}
	codec.SplitServiceCode(row.Code).Apply(&v)

	return v, codec.IsMarked(k, *row)
}

func mapCar(row *booking.CrsService, def meta.DataDefinition) *booking.CarService {
	car := &booking.CarService{}
	car.Vehicle, car.Marked = mapVehicle(booking.KindCar, row, def)

	return car
}

func mapCamper(row *booking.CrsService, def meta.DataDefinition) *booking.CamperService {
	camper := &booking.CamperService{
		MilesIncludedPerDay:   row.Quantity,
		MilesPackagesIncluded: row.Occupancy,
	}
	camper.Vehicle, camper.Marked = mapVehicle(booking.KindCamper, row, def)

	return camper
}

func mapHotel(row *booking.CrsService, def meta.DataDefinition) *booking.HotelService {
	roomCode, mealCode := common.Unpack2(strings.Fields(row.Accommodation))

	hotel := &booking.HotelService{
		Destination:   row.Code,
		RoomCode:      roomCode,
		MealCode:      mealCode,
		RoomOccupancy: atoi(row.Occupancy),
		RoomQuantity:  atoi(row.Quantity),
		DateFrom:      formatDate(row.FromDate, def),
		DateTo:        formatDate(row.ToDate, def),
	}
	hotel.Marked = codec.IsMarked(booking.KindHotel, *row)

	return hotel
}

func mapRoundTrip(row *booking.CrsService, def meta.DataDefinition) *booking.RoundTripService {
	trip := &booking.RoundTripService{
		StartDate: formatDate(row.FromDate, def),
		EndDate:   formatDate(row.ToDate, def),
	}

	if id, ok := codec.SplitRoundTripCode(row.Code); ok {
		trip.BookingID = id
		trip.Destination = row.Accommodation
	} else {
		trip.Destination = row.Code
	}

	trip.Marked = codec.IsRoundTripMarked(*row, trip.BookingID)

	return trip
}

func mapRaw(row *booking.CrsService) *booking.RawService {
	raw := &booking.RawService{
		Type:          row.Type,
		Code:          row.Code,
		Accommodation: row.Accommodation,
		FromDate:      row.FromDate,
		ToDate:        row.ToDate,
		Occupancy:     row.Occupancy,
		Quantity:      row.Quantity,
	}
	raw.Marked = row.Marker != ""

	return raw
}

func formatDate(value string, def meta.DataDefinition) string {
	out, _ := meta.Reformat(value, def.DateLayout(), meta.AgentDateLayout)

	return out
}

func formatTime(value string, def meta.DataDefinition) string {
	out, _ := meta.Reformat(value, def.TimeLayout(), meta.AgentTimeLayout)

	return out
}

func atoi(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}

	return n
}
