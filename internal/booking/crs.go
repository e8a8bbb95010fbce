package booking

import (
	"strings"

	"crs-translator/internal/common"
)

// CrsBooking is a booking as a legacy reservation system holds it.
type CrsBooking struct {
	AgencyNumber       string         `yaml:"agencyNumber,omitempty"`
	Operator           string         `yaml:"operator,omitempty"`
	NumberOfTravellers int            `yaml:"numberOfTravellers,omitempty"`
	TravelType         string         `yaml:"travelType,omitempty"`
	Remark             string         `yaml:"remark,omitempty"`
	Services           []CrsService   `yaml:"services,omitempty"`
	Travellers         TravellerTable `yaml:"travellers,omitempty"`
}

// CrsService is one encoded service row.
type CrsService struct {
	Marker               string `yaml:"marker,omitempty"`
	Type                 string `yaml:"type,omitempty"`
	Code                 string `yaml:"code,omitempty"`
	Accommodation        string `yaml:"accommodation,omitempty"`
	FromDate             string `yaml:"fromDate,omitempty"`
	ToDate               string `yaml:"toDate,omitempty"`
	Occupancy            string `yaml:"occupancy,omitempty"`
	Quantity             string `yaml:"quantity,omitempty"`
	TravellerAssociation string `yaml:"travellerAssociation,omitempty"`
}

// CrsTraveller is one row of the shared traveller table.
type CrsTraveller struct {
	Title     string `yaml:"title,omitempty"`
	FirstName string `yaml:"firstName,omitempty"`
	LastName  string `yaml:"lastName,omitempty"`
	// Age holds either an age in years or a date of birth.
	Age string `yaml:"age,omitempty"`
}

// IsEmpty reports whether the row is an unnamed placeholder.
func (t CrsTraveller) IsEmpty() bool {
	return t.FirstName == "" && t.LastName == ""
}

// FullName returns "first last" with blank parts dropped.
func (t CrsTraveller) FullName() string {
	return common.JoinNonEmpty(" ", t.FirstName, t.LastName)
}

// SplitName parses the "last/first" notation used by flat CRS formats.
func SplitName(name string) (first, last string) {
	last, first = common.Unpack2(strings.SplitN(name, "/", 2))

	return strings.TrimSpace(first), strings.TrimSpace(last)
}

// JoinName renders the "last/first" notation used by flat CRS formats.
func JoinName(t CrsTraveller) string {
	if t.FirstName == "" {
		return t.LastName
	}

	return t.LastName + "/" + t.FirstName
}

// TravellerTable is the booking-wide traveller arena. Positions are 1-based
// to match the indices stored in CrsService.TravellerAssociation.
type TravellerTable []CrsTraveller

// Len returns the number of rows.
func (t TravellerTable) Len() int {
	return len(t)
}

// At returns the row at 1-based position i, or an empty row when out of range.
func (t TravellerTable) At(i int) CrsTraveller {
	if !common.IsInRange(1, i, len(t)) {
		return CrsTraveller{}
	}

	return t[i-1]
}

// Append adds a row and returns its 1-based position.
func (t *TravellerTable) Append(row CrsTraveller) int {
	*t = append(*t, row)

	return len(*t)
}

// Set overwrites the row at 1-based position i, growing the table if needed.
func (t *TravellerTable) Set(i int, row CrsTraveller) {
	t.Grow(i)
	(*t)[i-1] = row
}

// Grow appends empty rows until the table holds at least n rows.
func (t *TravellerTable) Grow(n int) {
	for len(*t) < n {
		*t = append(*t, CrsTraveller{})
	}
}

// Truncate drops rows beyond position n.
func (t *TravellerTable) Truncate(n int) {
	if n < 0 {
		n = 0
	}

	if n < len(*t) {
		*t = (*t)[:n]
	}
}
