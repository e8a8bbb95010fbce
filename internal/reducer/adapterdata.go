package reducer

import (
	"slices"
	"strings"

	"crs-translator/internal/association"
	"crs-translator/internal/booking"
	"crs-translator/internal/codec"
	"crs-translator/internal/common"
	"crs-translator/internal/diagnostic"
	"crs-translator/internal/meta"
)

// AdapterDataReducer writes adapter bookings into CRS bookings. It holds no
// per-booking state and may be shared; passes over one CrsBooking must be
// serialized by the caller.
type AdapterDataReducer struct {
	config *config
}

// New creates an AdapterDataReducer.
func New(opts ...Option) *AdapterDataReducer {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	return &AdapterDataReducer{config: cfg}
}

// ReduceIntoCrsData merges adapter into crs in place.
func (r *AdapterDataReducer) ReduceIntoCrsData(
	adapter *booking.AdapterBooking, crs *booking.CrsBooking, def meta.DataDefinition,
) diagnostic.Diagnostics {
	var diags diagnostic.Diagnostics

	if adapter == nil || crs == nil {
		return diags
	}

	priorTravellers := crs.NumberOfTravellers

	crs.AgencyNumber = common.FirstNonEmpty(adapter.AgencyNumber, crs.AgencyNumber)
	crs.Operator = common.FirstNonEmpty(adapter.Operator, crs.Operator)
	crs.TravelType = common.FirstNonEmpty(adapter.TravelType, crs.TravelType)

	diags.Merge(association.Validate(crs.Services))
	for _, e := range diags.Errors {
		r.config.logger.Error("unreadable traveller association", "detail", e.String(), "adapter", def.Type())
	}

	stripMarked(crs, def)
	association.CleanUpTravellers(crs)

	p := newPass(crs, def)

	for i, svc := range adapter.Services {
		r.reduceService(p, svc, i+1, &diags)
	}

	crs.Remark = appendRemark(crs.Remark, adapter.Remark)
	for _, fragment := range p.remarks {
		crs.Remark = appendRemark(crs.Remark, fragment)
	}

	crs.Travellers.Grow(association.CalculateNumberOfTravellers(crs.Services))

	crs.NumberOfTravellers = max(
		priorTravellers,
		adapter.NumberOfTravellers,
		crs.Travellers.Len(),
		association.CalculateNumberOfTravellers(crs.Services),
		1,
	)

	return diags
}

func (r *AdapterDataReducer) reduceService(p *pass, svc booking.AdapterService, index int, diags *diagnostic.Diagnostics) {
	if svc == nil {
		return
	}

	crsType := p.def.CrsType(svc.Kind())
	if svc.Kind() != booking.KindRaw && crsType == "" {
		r.config.logger.Warn("service type not mapped by data definition, writing canonical name",
			"type", svc.Kind().String(), "index", index, "adapter", p.def.Type())
		diags.AddWarning(diagnostic.CodeUnsupportedServiceType,
			"no CRS type defined, canonical name written", svc.Kind().String(), index)

		crsType = svc.Kind().String()
	}

	switch s := svc.(type) {
	case *booking.CarService:
		p.reduceCar(s, crsType)
	case *booking.CamperService:
		p.reduceCamper(s, crsType)
	case *booking.HotelService:
		p.reduceHotel(s, crsType)
	case *booking.RoundTripService:
		p.reduceRoundTrip(s, crsType)
	case *booking.RawService:
		r.config.logger.Warn("unsupported service type, reducing as raw",
			"type", s.Type, "index", index, "adapter", p.def.Type())
		diags.AddWarning(diagnostic.CodeUnsupportedServiceType,
			"reduced as raw service", s.Type, index)

		p.reduceRaw(s)
	}
}

// stripMarked removes the rows the adapter booking replaces: rows of known
// kinds that are marked or incomplete, and marked extra or insurance rows
// written alongside a marked car or camper.
func stripMarked(crs *booking.CrsBooking, def meta.DataDefinition) {
	crs.Services = slices.DeleteFunc(crs.Services, func(row booking.CrsService) bool {
		if kind, known := def.KindOf(row.Type); known {
			return codec.IsMarked(kind, row)
		}

		if row.Type == def.ExtraType() || row.Type == def.InsuranceType() {
			return row.Marker != ""
		}

		return false
	})
}

// appendRemark concatenates fragment unless the remark already holds it.
func appendRemark(remark, fragment string) string {
	if fragment == "" || strings.Contains(remark, fragment) {
		return remark
	}

	return common.JoinNonEmpty(";", remark, fragment)
}
