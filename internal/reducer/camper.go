package reducer

import (
	"strconv"
	"strings"

	"crs-translator/internal/association"
	"crs-translator/internal/booking"
	"crs-translator/internal/codec"
)

const insurancePrefix = "INS"

// camperExtra is one booked camper extra, written "CODE.AMOUNT".
type camperExtra struct {
	code   string
	amount int
}

func parseCamperExtra(s string) camperExtra {
	code, amount, found := strings.Cut(s, ".")
	if !found {
		return camperExtra{code: s, amount: 1}
	}

	n, err := strconv.Atoi(amount)
	if err != nil || n < 1 {
		return camperExtra{code: code, amount: 1}
	}

	return camperExtra{code: code, amount: min(n, association.MaxIndex)}
}

func (e camperExtra) isInsurance() bool {
	return strings.HasPrefix(strings.ToUpper(e.code), insurancePrefix)
}

func (p *pass) reduceCamper(camper *booking.CamperService, crsType string) {
	row := booking.CrsService{
		Marker:        marker(camper.Marked),
		Type:          crsType,
		Code:          codec.CreateServiceCode(codec.FromVehicle(camper.Vehicle)),
		Accommodation: p.time(camper.PickUpTime),
		FromDate:      p.date(camper.PickUpDate),
		ToDate:        p.date(camper.DropOffDate),
		Quantity:      camper.MilesIncludedPerDay,
		Occupancy:     camper.MilesPackagesIncluded,
	}

	idx := p.appendRow(row, association.Request{
		Slots:     camper.Travellers,
		Required:  len(camper.Travellers),
		Separator: association.List,
	})
	primary := p.crs.Services[idx]
	first := association.CalculateStartAssociation(primary.TravellerAssociation, p.crs.Services)

	for _, raw := range camper.Extras {
		extra := parseCamperExtra(raw)

		crsType := p.def.ExtraType()
		if extra.isInsurance() {
			crsType = p.def.InsuranceType()
		}

		p.appendSynthetic(booking.CrsService{
			Marker:               primary.Marker,
			Type:                 crsType,
			Code:                 extra.code,
			FromDate:             primary.FromDate,
			ToDate:               primary.ToDate,
			Quantity:             strconv.Itoa(extra.amount),
			TravellerAssociation: association.FormatRange(first, extra.amount),
		})
	}
}
