package reducer

import (
	"strconv"

	"crs-translator/internal/association"
	"crs-translator/internal/booking"
	"crs-translator/internal/meta"
)

// markerFlag is written into CrsService.Marker for marked services.
const markerFlag = "X"

// pass is the state of one reduce run.
type pass struct {
	crs *booking.CrsBooking
	def meta.DataDefinition
	// remarks accumulates fragments over the whole booking.
	remarks []string
	// preexisting counts the rows present before the pass; only those may be
	// updated in place, each at most once.
	preexisting int
	claimed     map[int]bool
}

func newPass(crs *booking.CrsBooking, def meta.DataDefinition) *pass {
	return &pass{
		crs:         crs,
		def:         def,
		preexisting: len(crs.Services),
		claimed:     make(map[int]bool),
	}
}

// appendRow adds row and assigns its travellers. It returns the row position.
func (p *pass) appendRow(row booking.CrsService, req association.Request) int {
	p.crs.Services = append(p.crs.Services, row)
	idx := len(p.crs.Services) - 1

	association.Assign(p.crs, &p.crs.Services[idx], req, p.def)

	return idx
}

// overwriteRow replaces the row at idx, keeping its association so absent
// traveller slots stay seated.
func (p *pass) overwriteRow(idx int, row booking.CrsService, req association.Request) {
	row.TravellerAssociation = p.crs.Services[idx].TravellerAssociation
	p.crs.Services[idx] = row
	p.claimed[idx] = true

	association.Assign(p.crs, &p.crs.Services[idx], req, p.def)
}

// appendSynthetic adds a row that borrows its association from another row.
func (p *pass) appendSynthetic(row booking.CrsService) {
	if _, last, ok := association.Parse(row.TravellerAssociation); ok {
		p.crs.Travellers.Grow(last)
	}

	p.crs.Services = append(p.crs.Services, row)
}

func (p *pass) date(value string) string {
	out, _ := meta.Reformat(value, meta.AgentDateLayout, p.def.DateLayout())

	return out
}

func (p *pass) time(value string) string {
	out, _ := meta.Reformat(value, meta.AgentTimeLayout, p.def.TimeLayout())

	return out
}

func marker(marked bool) string {
	if marked {
		return markerFlag
	}

	return ""
}

func itoa(n int) string {
	if n <= 0 {
		return ""
	}

	return strconv.Itoa(n)
}
