package association

import (
	"regexp"
	"slices"
	"strconv"
	"time"

	"crs-translator/internal/booking"
	"crs-translator/internal/common"
	"crs-translator/internal/match"
	"crs-translator/internal/meta"
)

var agePattern = regexp.MustCompile(`^\d{1,2}$`)

// Request describes the travellers of one adapter service.
type Request struct {
	Slots []booking.TravellerSlot
	// Required is the minimum number of associated rows. Hotels require
	// occupancy times quantity; other kinds pass the number of slots.
	Required int
	// Separator chooses how the association is written.
	Separator Separator
}

// Assign reconciles req with the traveller table of crs and writes the
// resulting association into row.
//
// A row that already carries an association is being overwritten in place:
// an absent slot then keeps the traveller seated at the same position of the
// row's members. For a new row an absent slot appends an empty table row.
// Required is capped at MaxIndex.
func Assign(crs *booking.CrsBooking, row *booking.CrsService, req Request, def meta.DataDefinition) {
	seats := Members(row.TravellerAssociation)
	required := min(req.Required, MaxIndex)
	indices := make([]int, 0, max(len(req.Slots), required))

	reuse := func(position int) bool {
		if position >= len(seats) {
			return false
		}

		idx := seats[position]
		if idx > crs.Travellers.Len() || slices.Contains(indices, idx) {
			return false
		}

		indices = append(indices, idx)

		return true
	}

	for i, slot := range req.Slots {
		traveller, ok := slot.Get()
		if !ok {
			if !reuse(i) {
				indices = append(indices, crs.Travellers.Append(booking.CrsTraveller{}))
			}

			continue
		}

		crsTraveller := toCrsTraveller(traveller, def)

		idx := findTraveller(crs.Travellers, traveller, indices)
		if idx > 0 {
			crs.Travellers.Set(idx, crsTraveller)
		} else {
			idx = crs.Travellers.Append(crsTraveller)
		}

		indices = append(indices, idx)
	}

	for len(indices) < required {
		if !reuse(len(indices)) {
			indices = append(indices, crs.Travellers.Append(booking.CrsTraveller{}))
		}
	}

	row.TravellerAssociation = Format(indices, req.Separator)

	_, last, _ := Parse(row.TravellerAssociation)
	crs.Travellers.Grow(last)
}

// findTraveller returns the 1-based position of the row whose full name
// contains both parts of t's name, skipping positions listed in taken.
func findTraveller(table booking.TravellerTable, t booking.AdapterTraveller, taken []int) int {
	for i := 1; i <= table.Len(); i++ {
		if slices.Contains(taken, i) || table.At(i).IsEmpty() {
			continue
		}

		if match.ContainsName(table.At(i).FullName(), t.FirstName, t.LastName) {
			return i
		}
	}

	return 0
}

func toCrsTraveller(t booking.AdapterTraveller, def meta.DataDefinition) booking.CrsTraveller {
	age := t.Age
	if t.DateOfBirth != "" {
		age, _ = meta.Reformat(t.DateOfBirth, meta.AgentDateLayout, def.DateLayout())
	}

	return booking.CrsTraveller{
		Title:     def.Salutation(t.Gender),
		FirstName: t.FirstName,
		LastName:  t.LastName,
		Age:       age,
	}
}

// Travellers reads the table rows referenced by row. Rows without any content
// come back as absent slots; positions past the end of the table are not read.
func Travellers(row booking.CrsService, crs *booking.CrsBooking, def meta.DataDefinition) []booking.TravellerSlot {
	first, last, ok := Parse(row.TravellerAssociation)
	if !ok {
		return nil
	}

	last = min(last, max(first, crs.Travellers.Len()))

	reference, hasReference := referenceDate(crs, def)
	slots := make([]booking.TravellerSlot, 0, last-first+1)

	for i := first; i <= last; i++ {
		crsTraveller := crs.Travellers.At(i)
		if crsTraveller == (booking.CrsTraveller{}) {
			slots = append(slots, common.None[booking.AdapterTraveller]())

			continue
		}

		traveller := booking.AdapterTraveller{
			FirstName: crsTraveller.FirstName,
			LastName:  crsTraveller.LastName,
		}
		traveller.Gender, _ = def.Gender(crsTraveller.Title)

		switch {
		case crsTraveller.Age == "":
		case agePattern.MatchString(crsTraveller.Age):
			if hasReference {
				years, _ := strconv.Atoi(crsTraveller.Age)
				traveller.DateOfBirth = reference.AddDate(-years, 0, 0).Format(meta.AgentDateLayout)
			} else {
				traveller.Age = crsTraveller.Age
			}
		default:
			traveller.DateOfBirth, _ = meta.Reformat(crsTraveller.Age, def.DateLayout(), meta.AgentDateLayout)
		}

		slots = append(slots, common.Some(traveller))
	}

	return slots
}

// referenceDate is the start date of the booking's first service, the base
// ages are counted back from.
func referenceDate(crs *booking.CrsBooking, def meta.DataDefinition) (time.Time, bool) {
	svc, ok := common.First(crs.Services)
	if !ok {
		return time.Time{}, false
	}

	t, err := time.Parse(def.DateLayout(), svc.FromDate)
	if err != nil {
		return time.Time{}, false
	}

	return t, true
}
