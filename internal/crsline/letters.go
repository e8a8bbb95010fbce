package crsline

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"crs-translator/internal/booking"
)

// LineSymbols is the line index alphabet of the letters scheme.
const LineSymbols = "0123456789abcdefgh"

// ErrTooManyLines is returned when a booking does not fit the letters scheme.
var ErrTooManyLines = errors.New("booking exceeds letters scheme line count")

// Letters header keys.
const (
	letterAgency     = "agencyNumber"
	letterOperator   = "operator"
	letterPersons    = "numberOfTravellers"
	letterTravelType = "travelType"
	letterRemark     = "remark"
	letterTitle      = "ta"
	letterName       = "tn"
	letterAge        = "te"
)

var letterServiceFields = []struct {
	letter string
	ref    func(*booking.CrsService) *string
}{
	{"m", func(s *booking.CrsService) *string { return &s.Marker }},
	{"n", func(s *booking.CrsService) *string { return &s.Type }},
	{"l", func(s *booking.CrsService) *string { return &s.Code }},
	{"u", func(s *booking.CrsService) *string { return &s.Accommodation }},
	{"d", func(s *booking.CrsService) *string { return &s.Occupancy }},
	{"z", func(s *booking.CrsService) *string { return &s.Quantity }},
	{"s", func(s *booking.CrsService) *string { return &s.FromDate }},
	{"e", func(s *booking.CrsService) *string { return &s.ToDate }},
	{"i", func(s *booking.CrsService) *string { return &s.TravellerAssociation }},
}

// EncodeLetters flattens crs into the letters scheme. Empty values are omitted.
func EncodeLetters(crs *booking.CrsBooking) (map[string]string, error) {
	if len(crs.Services) > len(LineSymbols) {
		return nil, fmt.Errorf("%w: %d services", ErrTooManyLines, len(crs.Services))
	}

	if crs.Travellers.Len() > len(LineSymbols) {
		return nil, fmt.Errorf("%w: %d travellers", ErrTooManyLines, crs.Travellers.Len())
	}

	out := make(map[string]string)

	set := func(key, value string) {
		if value != "" {
			out[key] = value
		}
	}

	set(letterAgency, crs.AgencyNumber)
	set(letterOperator, crs.Operator)

	if crs.NumberOfTravellers > 0 {
		set(letterPersons, strconv.Itoa(crs.NumberOfTravellers))
	}

	set(letterTravelType, crs.TravelType)
	set(letterRemark, crs.Remark)

	for i := range crs.Services {
		symbol := string(LineSymbols[i])
		for _, f := range letterServiceFields {
			set(f.letter+symbol, *f.ref(&crs.Services[i]))
		}
	}

	for i, t := range crs.Travellers {
		symbol := string(LineSymbols[i])
		set(letterTitle+symbol, t.Title)
		set(letterName+symbol, booking.JoinName(t))
		set(letterAge+symbol, t.Age)
	}

	return out, nil
}

// DecodeLetters rebuilds a CRS booking from letters-scheme values. Unknown
// keys are ignored; blank lines before the last used one are kept.
func DecodeLetters(values map[string]string) *booking.CrsBooking {
	crs := &booking.CrsBooking{
		AgencyNumber: values[letterAgency],
		Operator:     values[letterOperator],
		TravelType:   values[letterTravelType],
		Remark:       values[letterRemark],
	}
	crs.NumberOfTravellers, _ = strconv.Atoi(strings.TrimSpace(values[letterPersons]))

	for i, symbol := range LineSymbols {
		var row booking.CrsService

		for _, f := range letterServiceFields {
			*f.ref(&row) = values[f.letter+string(symbol)]
		}

		if row != (booking.CrsService{}) {
			for len(crs.Services) < i {
				crs.Services = append(crs.Services, booking.CrsService{})
			}

			crs.Services = append(crs.Services, row)
		}

		t := booking.CrsTraveller{
			Title: values[letterTitle+string(symbol)],
			Age:   values[letterAge+string(symbol)],
		}
		t.FirstName, t.LastName = booking.SplitName(values[letterName+string(symbol)])

		if t != (booking.CrsTraveller{}) {
			crs.Travellers.Set(i+1, t)
		}
	}

	return crs
}
