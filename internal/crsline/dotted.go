package crsline

import (
	"strconv"
	"strings"

	"crs-translator/internal/booking"
)

// Field is one key/value pair of a flat mask, in mask order.
type Field struct {
	Key   string
	Value string
}

// Dotted header keys.
const (
	keyAgency      = "Agency"
	keyOperator    = "Operator"
	keyPersons     = "NoOfPersons"
	keyTravelType  = "TravelType"
	keyRemark      = "Remark"
	keyMark        = "MarkField"
	keyKind        = "KindOfService"
	keyCode        = "ServiceCode"
	keyAccommodate = "Accommodation"
	keyOccupancy   = "Occupancy"
	keyCount       = "Count"
	keyFrom        = "From"
	keyTo          = "To"
	keyAssociation = "TravAssociation"
	keyTitle       = "Title"
	keyName        = "Name"
	keyReduction   = "Reduction"
)

// maxDottedLines bounds line numbers accepted from untrusted masks.
const maxDottedLines = 999

// serviceFields binds the dotted service keys to CrsService fields, in mask order.
var serviceFields = []struct {
	key string
	ref func(*booking.CrsService) *string
}{
	{keyMark, func(s *booking.CrsService) *string { return &s.Marker }},
	{keyKind, func(s *booking.CrsService) *string { return &s.Type }},
	{keyCode, func(s *booking.CrsService) *string { return &s.Code }},
	{keyAccommodate, func(s *booking.CrsService) *string { return &s.Accommodation }},
	{keyOccupancy, func(s *booking.CrsService) *string { return &s.Occupancy }},
	{keyCount, func(s *booking.CrsService) *string { return &s.Quantity }},
	{keyFrom, func(s *booking.CrsService) *string { return &s.FromDate }},
	{keyTo, func(s *booking.CrsService) *string { return &s.ToDate }},
	{keyAssociation, func(s *booking.CrsService) *string { return &s.TravellerAssociation }},
}

// EncodeDotted flattens crs into the dotted scheme. Empty values are omitted.
func EncodeDotted(crs *booking.CrsBooking) []Field {
	var fields []Field

	add := func(key, value string) {
		if value != "" {
			fields = append(fields, Field{Key: key, Value: value})
		}
	}

	add(keyAgency, crs.AgencyNumber)
	add(keyOperator, crs.Operator)

	if crs.NumberOfTravellers > 0 {
		add(keyPersons, strconv.Itoa(crs.NumberOfTravellers))
	}

	add(keyTravelType, crs.TravelType)
	add(keyRemark, crs.Remark)

	for i := range crs.Services {
		n := "." + strconv.Itoa(i+1)
		for _, f := range serviceFields {
			add(f.key+n, *f.ref(&crs.Services[i]))
		}
	}

	for i, t := range crs.Travellers {
		n := "." + strconv.Itoa(i+1)
		add(keyTitle+n, t.Title)
		add(keyName+n, booking.JoinName(t))
		add(keyReduction+n, t.Age)
	}

	return fields
}

// DecodeDotted rebuilds a CRS booking from dotted fields. Unknown keys are ignored.
func DecodeDotted(fields []Field) *booking.CrsBooking {
	crs := &booking.CrsBooking{}

	for _, f := range fields {
		switch f.Key {
		case keyAgency:
			crs.AgencyNumber = f.Value
		case keyOperator:
			crs.Operator = f.Value
		case keyPersons:
			crs.NumberOfTravellers, _ = strconv.Atoi(strings.TrimSpace(f.Value))
		case keyTravelType:
			crs.TravelType = f.Value
		case keyRemark:
			crs.Remark = f.Value
		default:
			decodeDottedLine(crs, f)
		}
	}

	return crs
}

func decodeDottedLine(crs *booking.CrsBooking, f Field) {
	key, number, found := strings.Cut(f.Key, ".")
	if !found {
		return
	}

	n, err := strconv.Atoi(number)
	if err != nil || n < 1 || n > maxDottedLines {
		return
	}

	for _, sf := range serviceFields {
		if sf.key == key {
			for len(crs.Services) < n {
				crs.Services = append(crs.Services, booking.CrsService{})
			}

			*sf.ref(&crs.Services[n-1]) = f.Value

			return
		}
	}

	switch key {
	case keyTitle:
		row := crs.Travellers.At(n)
		row.Title = f.Value
		crs.Travellers.Set(n, row)
	case keyName:
		row := crs.Travellers.At(n)
		row.FirstName, row.LastName = booking.SplitName(f.Value)
		crs.Travellers.Set(n, row)
	case keyReduction:
		row := crs.Travellers.At(n)
		row.Age = f.Value
		crs.Travellers.Set(n, row)
	}
}
