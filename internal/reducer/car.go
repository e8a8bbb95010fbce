package reducer

import (
	"strings"

	"crs-translator/internal/association"
	"crs-translator/internal/booking"
	"crs-translator/internal/codec"
	"crs-translator/internal/common"
)

// dropOffCode marks the synthetic row carrying a car's drop-off time.
const dropOffCode = "DROPOFF"

func (p *pass) reduceCar(car *booking.CarService, crsType string) {
	row := booking.CrsService{
		Marker:        marker(car.Marked),
		Type:          crsType,
		Code:          codec.CreateServiceCode(codec.FromVehicle(car.Vehicle)),
		Accommodation: p.time(car.PickUpTime),
		FromDate:      p.date(car.PickUpDate),
		ToDate:        p.date(car.DropOffDate),
	}

	idx := p.appendRow(row, association.Request{
		Slots:     car.Travellers,
		Required:  len(car.Travellers),
		Separator: association.List,
	})
	primary := p.crs.Services[idx]

	if car.DropOffTime != "" && car.DropOffTime != car.PickUpTime {
		p.appendSynthetic(booking.CrsService{
			Marker:               primary.Marker,
			Type:                 p.def.ExtraType(),
			Code:                 dropOffCode,
			Accommodation:        p.time(car.DropOffTime),
			FromDate:             primary.ToDate,
			ToDate:               primary.ToDate,
			TravellerAssociation: primary.TravellerAssociation,
		})
	}

	if hotelName := common.FirstNonEmpty(car.PickUpHotelName, car.DropOffHotelName); hotelName != "" {
		p.appendSynthetic(booking.CrsService{
			Marker:               primary.Marker,
			Type:                 common.FirstNonEmpty(p.def.CrsType(booking.KindHotel), p.def.ExtraType()),
			Code:                 common.FirstNonEmpty(car.PickUpLocation, car.DropOffLocation),
			Accommodation:        hotelName,
			FromDate:             primary.FromDate,
			ToDate:               primary.ToDate,
			TravellerAssociation: primary.TravellerAssociation,
		})
	}

	p.remarks = append(p.remarks, carRemark(car))
}

// carRemark renders extras and hotel details, e.g.
// "navigationSystem;childCareSeat3;P:Hilton Main St 1;D:Ritz".
func carRemark(car *booking.CarService) string {
	return common.JoinNonEmpty(";",
		strings.Join(car.Extras, ";"),
		hotelRemark("P:", car.PickUpHotelName, car.PickUpHotelAddress, car.PickUpHotelPhoneNumber),
		hotelRemark("D:", car.DropOffHotelName, car.DropOffHotelAddress, car.DropOffHotelPhoneNumber),
	)
}

func hotelRemark(prefix string, parts ...string) string {
	text := common.JoinNonEmpty(" ", parts...)
	if text == "" {
		return ""
	}

	return prefix + text
}
