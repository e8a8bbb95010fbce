package association

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"crs-translator/internal/booking"
	"crs-translator/internal/diagnostic"
)

// Separator selects how an association with several indices is written.
type Separator string

const (
	// Range writes "first-last".
	Range Separator = "-"
	// List writes every index, "i,j,k".
	List Separator = ","
)

// DefaultAssociation is written when a service collected no traveller.
const DefaultAssociation = "1"

// MaxIndex is the highest traveller index an association may name. CRS masks
// number their lines up to 999.
const MaxIndex = 999

var (
	ErrInvalidAssociation    = errors.New("invalid traveller association")
	ErrAssociationOutOfRange = errors.New("traveller association out of range")
)

func isSeparator(r rune) bool {
	return r == '-' || r == ','
}

// Parse returns the first and last index of an association. The last index is
// capped at MaxIndex.
func Parse(association string) (first, last int, ok bool) {
	fields := strings.FieldsFunc(association, isSeparator)
	if len(fields) == 0 {
		return 0, 0, false
	}

	first, err := strconv.Atoi(strings.TrimSpace(fields[0]))
	if err != nil || first < 1 || first > MaxIndex {
		return 0, 0, false
	}

	last, err = strconv.Atoi(strings.TrimSpace(fields[len(fields)-1]))
	if err != nil || last < first {
		return first, first, true
	}

	return first, min(last, MaxIndex), true
}

// Members lists every index association names in ascending order, with
// ranges expanded. "1,3" yields 1 and 3, "2-4" yields 2, 3 and 4.
func Members(association string) []int {
	var named [MaxIndex + 1]bool

	for _, part := range strings.Split(association, string(List)) {
		first, last, ok := Parse(part)
		if !ok {
			continue
		}

		for i := first; i <= last; i++ {
			named[i] = true
		}
	}

	var members []int

	for i, ok := range named {
		if ok {
			members = append(members, i)
		}
	}

	return members
}

// Check returns an error when association cannot be read or names an index
// past MaxIndex. The empty association is valid.
func Check(association string) error {
	if association == "" {
		return nil
	}

	fields := strings.FieldsFunc(association, isSeparator)
	if len(fields) == 0 {
		return fmt.Errorf("%w: %q", ErrInvalidAssociation, association)
	}

	for _, field := range fields {
		n, err := strconv.Atoi(strings.TrimSpace(field))

		switch {
		case errors.Is(err, strconv.ErrRange) || (err == nil && n > MaxIndex):
			return fmt.Errorf("%w: %q exceeds %d", ErrAssociationOutOfRange, association, MaxIndex)
		case err != nil || n < 1:
			return fmt.Errorf("%w: %q", ErrInvalidAssociation, association)
		}
	}

	return nil
}

// Validate reports every service whose association fails Check. Such rows
// are still read, with indices past MaxIndex dropped.
func Validate(services []booking.CrsService) diagnostic.Diagnostics {
	var diags diagnostic.Diagnostics

	for i, svc := range services {
		if err := Check(svc.TravellerAssociation); err != nil {
			diags.AddError(diagnostic.CodeInvalidAssociation, err.Error(), svc.Type, i+1)
		}
	}

	return diags
}

// Format writes indices with sep. Indices are sorted and deduplicated first.
func Format(indices []int, sep Separator) string {
	if len(indices) == 0 {
		return DefaultAssociation
	}

	sorted := slices.Clone(indices)
	slices.Sort(sorted)
	sorted = slices.Compact(sorted)

	first, last := sorted[0], sorted[len(sorted)-1]

	switch {
	case first == last:
		return strconv.Itoa(first)
	case sep == List:
		parts := make([]string, len(sorted))
		for i, idx := range sorted {
			parts[i] = strconv.Itoa(idx)
		}

		return strings.Join(parts, string(List))
	default:
		return strconv.Itoa(first) + string(Range) + strconv.Itoa(last)
	}
}

// FormatRange writes the contiguous range of size count starting at first.
func FormatRange(first, count int) string {
	last := min(first+count-1, MaxIndex)
	if last <= first {
		return strconv.Itoa(first)
	}

	return strconv.Itoa(first) + string(Range) + strconv.Itoa(last)
}

// CalculateStartAssociation returns the first index of association when it has
// one, otherwise one past the highest index used by any of services.
func CalculateStartAssociation(association string, services []booking.CrsService) int {
	if first, _, ok := Parse(association); ok {
		return first
	}

	return CalculateNumberOfTravellers(services) + 1
}

// CalculateNumberOfTravellers returns the highest last index across services.
func CalculateNumberOfTravellers(services []booking.CrsService) int {
	highest := 0

	for _, svc := range services {
		if _, last, ok := Parse(svc.TravellerAssociation); ok && last > highest {
			highest = last
		}
	}

	return highest
}

// CleanUpTravellers drops trailing placeholder rows that no service references.
// Named rows are kept even when unreferenced.
func CleanUpTravellers(crs *booking.CrsBooking) {
	highest := CalculateNumberOfTravellers(crs.Services)

	n := crs.Travellers.Len()
	for n > highest && crs.Travellers.At(n) == (booking.CrsTraveller{}) {
		n--
	}

	crs.Travellers.Truncate(n)
}
