package mapper

import (
	"crs-translator/internal/association"
	"crs-translator/internal/booking"
	"crs-translator/internal/diagnostic"
	"crs-translator/internal/meta"
)

// CrsDataMapper converts whole CRS bookings. It holds no per-booking state and
// may be shared.
type CrsDataMapper struct {
	config *config
}

// New creates a CrsDataMapper.
func New(opts ...Option) *CrsDataMapper {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	return &CrsDataMapper{config: cfg}
}

// MapToAdapterData converts crs into an adapter booking. Booking-level fields
// are copied verbatim, services keep their input order.
func (m *CrsDataMapper) MapToAdapterData(
	crs *booking.CrsBooking, def meta.DataDefinition,
) (*booking.AdapterBooking, diagnostic.Diagnostics) {
	var diags diagnostic.Diagnostics

	if crs == nil {
		return &booking.AdapterBooking{}, diags
	}

	out := &booking.AdapterBooking{
		AgencyNumber:       crs.AgencyNumber,
		Operator:           crs.Operator,
		NumberOfTravellers: crs.NumberOfTravellers,
		TravelType:         crs.TravelType,
		Remark:             crs.Remark,
		Services:           make(booking.Services, 0, len(crs.Services)),
	}

	diags.Merge(association.Validate(crs.Services))
	for _, e := range diags.Errors {
		m.config.logger.Error("unreadable traveller association", "detail", e.String(), "adapter", def.Type())
	}

	for i := range crs.Services {
		row := &crs.Services[i]

		kind, known := def.KindOf(row.Type)
		if !known {
			m.config.logger.Warn("unsupported service type, mapping as raw",
				"type", row.Type, "index", i+1, "adapter", def.Type())
			diags.AddWarning(diagnostic.CodeUnsupportedServiceType,
				"mapped as raw service", row.Type, i+1)
		} else {
			checkDates(&diags, row, def, i+1)
		}

		svc := MapToAdapterService(kind, row, def)
		svc.SetSlots(association.Travellers(*row, crs, def))

		out.Services = append(out.Services, svc)
	}

	return out, diags
}

func checkDates(diags *diagnostic.Diagnostics, row *booking.CrsService, def meta.DataDefinition, index int) {
	for _, value := range []string{row.FromDate, row.ToDate} {
		if _, ok := meta.Reformat(value, def.DateLayout(), meta.AgentDateLayout); !ok {
			diags.AddInfo(diagnostic.CodeUnparsableDate, "kept verbatim: "+value, row.Type, index)
		}
	}
}
