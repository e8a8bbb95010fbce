package reducer

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crs-translator/internal/association"
	"crs-translator/internal/booking"
	"crs-translator/internal/common"
	"crs-translator/internal/diagnostic"
	"crs-translator/internal/meta"
)

func testDefinition(t *testing.T) meta.DataDefinition {
	t.Helper()

	def, err := meta.Parse([]byte(`
type: test
serviceTypes:
  car: MW
  hotel: H
  roundTrip: R
  camper: WM
genderTypes:
  male: H
  female: D
  child: K
  infant: B
formats:
  date: DDMMYY
  time: HHmm
`))
	require.NoError(t, err)

	return def
}

func traveller(first, last string) booking.TravellerSlot {
	return common.Some(booking.AdapterTraveller{FirstName: first, LastName: last})
}

func reduce(t *testing.T, adapter *booking.AdapterBooking, crs *booking.CrsBooking) diagnostic.Diagnostics {
	t.Helper()

	diags := New().ReduceIntoCrsData(adapter, crs, testDefinition(t))
	assertInvariants(t, crs)

	return diags
}

func assertInvariants(t *testing.T, crs *booking.CrsBooking) {
	t.Helper()

	for i, row := range crs.Services {
		_, last, ok := association.Parse(row.TravellerAssociation)
		if ok {
			assert.LessOrEqual(t, last, crs.Travellers.Len(), "row %d: %s", i, spew.Sdump(crs.Travellers))
		}
	}

	assert.GreaterOrEqual(t, crs.NumberOfTravellers, 1)
	assert.GreaterOrEqual(t, crs.NumberOfTravellers, crs.Travellers.Len())
}

func TestReduceSingleTraveller(t *testing.T) {
	crs := &booking.CrsBooking{}
	adapter := &booking.AdapterBooking{Services: booking.Services{
		&booking.CarService{
			Common: booking.Common{Travellers: []booking.TravellerSlot{traveller("jane", "doe")}},
		},
	}}

	reduce(t, adapter, crs)

	require.Len(t, crs.Services, 1)
	assert.Equal(t, "1", crs.Services[0].TravellerAssociation)
	require.Equal(t, 1, crs.Travellers.Len())
	assert.Equal(t, "jane", crs.Travellers.At(1).FirstName)
	assert.Equal(t, "doe", crs.Travellers.At(1).LastName)
	assert.Equal(t, 1, crs.NumberOfTravellers)
}

func TestReduceHotelOccupancy(t *testing.T) {
	crs := &booking.CrsBooking{}
	adapter := &booking.AdapterBooking{Services: booking.Services{
		&booking.HotelService{RoomOccupancy: 2, RoomQuantity: 2},
	}}

	reduce(t, adapter, crs)

	require.Len(t, crs.Services, 1)
	assert.Equal(t, "1-4", crs.Services[0].TravellerAssociation)
	assert.Equal(t, 4, crs.Travellers.Len())
	assert.Equal(t, 4, crs.NumberOfTravellers)
	assert.Equal(t, "H", crs.Services[0].Type)
	assert.Equal(t, "2", crs.Services[0].Occupancy)
	assert.Equal(t, "2", crs.Services[0].Quantity)
}

func TestReduceCar(t *testing.T) {
	crs := &booking.CrsBooking{Remark: "existing"}
	adapter := &booking.AdapterBooking{
		Remark: "agent note",
		Services: booking.Services{
			&booking.CarService{
				Common: booking.Common{
					Marked:     true,
					Travellers: []booking.TravellerSlot{traveller("jane", "doe"), traveller("john", "doe")},
				},
				Vehicle: booking.Vehicle{
					RenterCode: "USA81", VehicleCode: "A4",
					PickUpLocation: "LAX", DropOffLocation: "SFO",
					PickUpDate: "01052026", DropOffDate: "08052026",
					PickUpTime: "0930", DropOffTime: "1800",
				},
				PickUpHotelName:    "Hilton",
				PickUpHotelAddress: "Main St 1",
				Extras:             []string{"navigationSystem", "childCareSeat3"},
			},
		},
	}

	reduce(t, adapter, crs)

	require.Len(t, crs.Services, 3, spew.Sdump(crs.Services))

	assert.Equal(t, booking.CrsService{
		Marker:               "X",
		Type:                 "MW",
		Code:                 "USA81A4/LAX-SFO",
		Accommodation:        "0930",
		FromDate:             "010526",
		ToDate:               "080526",
		TravellerAssociation: "1,2",
	}, crs.Services[0])

	assert.Equal(t, booking.CrsService{
		Marker:               "X",
		Type:                 meta.DefaultExtraType,
		Code:                 dropOffCode,
		Accommodation:        "1800",
		FromDate:             "080526",
		ToDate:               "080526",
		TravellerAssociation: "1,2",
	}, crs.Services[1])

	assert.Equal(t, booking.CrsService{
		Marker:               "X",
		Type:                 "H",
		Code:                 "LAX",
		Accommodation:        "Hilton",
		FromDate:             "010526",
		ToDate:               "080526",
		TravellerAssociation: "1,2",
	}, crs.Services[2])

	assert.Equal(t, "existing;agent note;navigationSystem;childCareSeat3;P:Hilton Main St 1", crs.Remark)
	assert.Equal(t, 2, crs.NumberOfTravellers)
}

func TestReduceCarRemarkAccumulates(t *testing.T) {
	crs := &booking.CrsBooking{}
	adapter := &booking.AdapterBooking{Services: booking.Services{
		&booking.CarService{Extras: []string{"gps"}},
		&booking.CarService{DropOffHotelName: "Ritz"},
	}}

	reduce(t, adapter, crs)

	assert.Equal(t, "gps;D:Ritz", crs.Remark)

	reduce(t, adapter, crs)

	assert.Equal(t, "gps;D:Ritz", crs.Remark, "repeated set does not duplicate remark fragments")
}

func TestReduceCamper(t *testing.T) {
	crs := &booking.CrsBooking{}
	adapter := &booking.AdapterBooking{Services: booking.Services{
		&booking.CamperService{
			Common: booking.Common{Travellers: []booking.TravellerSlot{traveller("jane", "doe")}},
			Vehicle: booking.Vehicle{
				RenterCode: "PRT81", Sipp: "FFAR",
				PickUpLocation: "MIA03", DropOffLocation: "SFO0H",
				PickUpDate: "01052026", DropOffDate: "20052026",
			},
			MilesIncludedPerDay:   "100",
			MilesPackagesIncluded: "3",
			Extras:                []string{"CHAIR.3", "INSCOVER", "TABLE.x"},
		},
	}}

	reduce(t, adapter, crs)

	require.Len(t, crs.Services, 4, spew.Sdump(crs.Services))

	primary := crs.Services[0]
	assert.Equal(t, "WM", primary.Type)
	assert.Equal(t, "MIA03SFO0HFFAR81", primary.Code)
	assert.Equal(t, "100", primary.Quantity)
	assert.Equal(t, "3", primary.Occupancy)
	assert.Equal(t, "1", primary.TravellerAssociation)

	assert.Equal(t, booking.CrsService{
		Type: meta.DefaultExtraType, Code: "CHAIR", FromDate: "010526", ToDate: "200526",
		Quantity: "3", TravellerAssociation: "1-3",
	}, crs.Services[1])
	assert.Equal(t, meta.DefaultInsuranceType, crs.Services[2].Type)
	assert.Equal(t, "INSCOVER", crs.Services[2].Code)
	assert.Equal(t, "1", crs.Services[2].TravellerAssociation)
	assert.Equal(t, "TABLE", crs.Services[3].Code)
	assert.Equal(t, "1", crs.Services[3].Quantity)

	assert.Equal(t, 3, crs.Travellers.Len())
	assert.Equal(t, 3, crs.NumberOfTravellers)
}

func TestReduceMarkedCarTwice(t *testing.T) {
	crs := &booking.CrsBooking{}
	adapter := &booking.AdapterBooking{Services: booking.Services{
		&booking.CarService{
			Common: booking.Common{Marked: true, Travellers: []booking.TravellerSlot{traveller("jane", "doe")}},
			Vehicle: booking.Vehicle{
				RenterCode: "USA81", VehicleCode: "A4",
				PickUpLocation: "LAX", DropOffLocation: "SFO",
			},
		},
	}}

	reduce(t, adapter, crs)
	reduce(t, adapter, crs)

	require.Len(t, crs.Services, 1, spew.Sdump(crs.Services))
	assert.Equal(t, booking.CrsService{
		Marker: "X", Type: "MW", Code: "USA81A4/LAX-SFO", TravellerAssociation: "1",
	}, crs.Services[0])
	assert.Equal(t, 1, crs.Travellers.Len())
}

func TestReduceMarkedSyntheticRowsReplaced(t *testing.T) {
	crs := &booking.CrsBooking{
		Services: []booking.CrsService{{Type: "XY", Code: "KEEP", TravellerAssociation: "1"}},
	}
	adapter := &booking.AdapterBooking{Services: booking.Services{
		&booking.CarService{
			Common: booking.Common{Marked: true},
			Vehicle: booking.Vehicle{
				RenterCode: "USA81", VehicleCode: "A4", PickUpLocation: "LAX",
				PickUpTime: "0930", DropOffTime: "1800",
			},
			PickUpHotelName: "Hilton",
		},
		&booking.CamperService{
			Common:  booking.Common{Marked: true},
			Vehicle: booking.Vehicle{RenterCode: "PRT81", Sipp: "FFAR", PickUpLocation: "MIA03", DropOffLocation: "SFO0H"},
			Extras:  []string{"CHAIR.2", "INSCOVER"},
		},
	}}

	reduce(t, adapter, crs)
	require.Len(t, crs.Services, 7, spew.Sdump(crs.Services))

	reduce(t, adapter, crs)
	require.Len(t, crs.Services, 7, spew.Sdump(crs.Services))
	assert.Equal(t, "KEEP", crs.Services[0].Code)
}

func TestReduceHotelUpdatesInPlace(t *testing.T) {
	crs := &booking.CrsBooking{
		Services: []booking.CrsService{
			{Type: "MW", Code: "USA81A4/LAX-SFO", TravellerAssociation: "1"},
			{Type: "H", Code: "MUC20", Accommodation: "EZ F", FromDate: "010526", ToDate: "030526", TravellerAssociation: "2-3"},
		},
		Travellers: booking.TravellerTable{
			{LastName: "Doe"}, {FirstName: "Ann", LastName: "Smith"}, {FirstName: "Bob", LastName: "Smith"},
		},
	}
	hotel := &booking.HotelService{
		Destination: "MUC20", RoomCode: "DZ", MealCode: "U",
		RoomOccupancy: 2, RoomQuantity: 1,
		DateFrom: "01052026", DateTo: "03052026",
		Common: booking.Common{Travellers: []booking.TravellerSlot{
			common.None[booking.AdapterTraveller](), traveller("Bob", "Smith"),
		}},
	}
	adapter := &booking.AdapterBooking{Services: booking.Services{hotel}}

	reduce(t, adapter, crs)

	require.Len(t, crs.Services, 2, spew.Sdump(crs.Services))
	want := booking.CrsService{
		Type: "H", Code: "MUC20", Accommodation: "DZ U", Occupancy: "2", Quantity: "1",
		FromDate: "010526", ToDate: "030526", TravellerAssociation: "2-3",
	}
	assert.Equal(t, want, crs.Services[1])
	assert.Equal(t, 3, crs.Travellers.Len())
	assert.Equal(t, "Ann", crs.Travellers.At(2).FirstName)

	reduce(t, adapter, crs)

	require.Len(t, crs.Services, 2, "a repeated set updates the same stay")
	assert.Equal(t, want, crs.Services[1])

	hotel.DateTo = "05052026"
	reduce(t, adapter, crs)

	assert.Len(t, crs.Services, 3, "a different stay is a new row")
}

func TestReduceHotelReplacesMarkedRow(t *testing.T) {
	crs := &booking.CrsBooking{
		Services:   []booking.CrsService{{Marker: "X", Type: "H", Code: "MUC20", Accommodation: "EZ F", TravellerAssociation: "1"}},
		Travellers: booking.TravellerTable{{LastName: "Doe"}},
	}
	adapter := &booking.AdapterBooking{Services: booking.Services{
		&booking.HotelService{Destination: "BER10", RoomCode: "DZ", RoomOccupancy: 1, RoomQuantity: 1},
	}}

	reduce(t, adapter, crs)

	require.Len(t, crs.Services, 1, spew.Sdump(crs.Services))
	assert.Equal(t, "BER10", crs.Services[0].Code)
	assert.Empty(t, crs.Services[0].Marker)
}

func TestReduceRoundTripMatchesBookingID(t *testing.T) {
	crs := &booking.CrsBooking{
		Services: []booking.CrsService{
			{Type: "R", Code: "NEZ0815", Accommodation: "YYZ", TravellerAssociation: "1"},
			{Type: "R", Code: "NEZ4711", Accommodation: "YVR", TravellerAssociation: "1"},
		},
		Travellers: booking.TravellerTable{{LastName: "Doe"}},
	}
	adapter := &booking.AdapterBooking{Services: booking.Services{
		&booking.RoundTripService{BookingID: "4711", Destination: "YUL", StartDate: "01062026"},
	}}

	reduce(t, adapter, crs)

	require.Len(t, crs.Services, 2)
	assert.Equal(t, "NEZ0815", crs.Services[0].Code)
	assert.Equal(t, booking.CrsService{
		Type: "R", Code: "NEZ4711", Accommodation: "YUL", FromDate: "010626", TravellerAssociation: "1",
	}, crs.Services[1])
}

func TestReduceRoundTripWithoutBookingID(t *testing.T) {
	crs := &booking.CrsBooking{
		Services: []booking.CrsService{{Type: "R", Code: "YYZ", Marker: "X", TravellerAssociation: "1"}},
	}
	adapter := &booking.AdapterBooking{Services: booking.Services{
		&booking.RoundTripService{Destination: "YVR"},
	}}

	reduce(t, adapter, crs)

	require.Len(t, crs.Services, 1)
	assert.Equal(t, "YVR", crs.Services[0].Code)
	assert.Empty(t, crs.Services[0].Marker)
}

func TestReduceStripsPlaceholders(t *testing.T) {
	crs := &booking.CrsBooking{
		NumberOfTravellers: 1,
		Services: []booking.CrsService{
			{Type: "MW", Code: "LAX-SFO", TravellerAssociation: "2-3"},
			{Type: "H", Code: "MUC20", Accommodation: "DZ U", TravellerAssociation: "1"},
			{Type: "XY", TravellerAssociation: "1"},
		},
		Travellers: booking.TravellerTable{{LastName: "Doe"}, {}, {}},
	}
	adapter := &booking.AdapterBooking{Services: booking.Services{
		&booking.CarService{Vehicle: booking.Vehicle{RenterCode: "USA81", VehicleCode: "A4", PickUpLocation: "LAX"}},
	}}

	reduce(t, adapter, crs)

	require.Len(t, crs.Services, 3, spew.Sdump(crs.Services))
	assert.Equal(t, "H", crs.Services[0].Type)
	assert.Equal(t, "XY", crs.Services[1].Type)
	assert.Equal(t, "USA81A4/LAX-", crs.Services[2].Code)
	assert.Equal(t, "1", crs.Services[2].TravellerAssociation, "no travellers defaults to the first")
	assert.Equal(t, 1, crs.Travellers.Len(), "placeholder rows of the stripped line are trimmed")
}

func TestReduceRawFallback(t *testing.T) {
	var logs bytes.Buffer

	r := New(WithLogger(slog.New(slog.NewTextHandler(&logs, nil))))
	crs := &booking.CrsBooking{}
	adapter := &booking.AdapterBooking{Services: booking.Services{
		&booking.RawService{Type: "XY", Code: "FOO", FromDate: "whenever", Common: booking.Common{Marked: true}},
	}}

	diags := r.ReduceIntoCrsData(adapter, crs, testDefinition(t))

	require.Len(t, crs.Services, 1)
	assert.Equal(t, booking.CrsService{
		Marker: "X", Type: "XY", Code: "FOO", FromDate: "whenever", TravellerAssociation: "1",
	}, crs.Services[0])
	require.Len(t, diags.Warnings, 1)
	assert.Equal(t, "XY", diags.Warnings[0].ServiceType)
	assert.Contains(t, logs.String(), "reducing as raw")
}

func TestReduceKindWithoutCrsType(t *testing.T) {
	def, err := meta.New(meta.Document{ServiceTypes: map[string]string{"car": "MW"}})
	require.NoError(t, err)

	crs := &booking.CrsBooking{}
	adapter := &booking.AdapterBooking{Services: booking.Services{&booking.RoundTripService{Destination: "YVR"}}}

	diags := New().ReduceIntoCrsData(adapter, crs, def)

	require.Len(t, crs.Services, 1)
	assert.Equal(t, "roundTrip", crs.Services[0].Type)
	assert.True(t, diags.HasCode(diagnostic.CodeUnsupportedServiceType))
}

func TestReduceHeader(t *testing.T) {
	crs := &booking.CrsBooking{AgencyNumber: "1111", Operator: "OLD", NumberOfTravellers: 5}
	adapter := &booking.AdapterBooking{AgencyNumber: "", Operator: "NEW", TravelType: "BAU", NumberOfTravellers: 2}

	reduce(t, adapter, crs)

	assert.Equal(t, "1111", crs.AgencyNumber)
	assert.Equal(t, "NEW", crs.Operator)
	assert.Equal(t, "BAU", crs.TravelType)
	assert.Equal(t, 5, crs.NumberOfTravellers)

	empty := &booking.CrsBooking{}
	reduce(t, &booking.AdapterBooking{}, empty)
	assert.Equal(t, 1, empty.NumberOfTravellers)
}

func TestReduceNil(t *testing.T) {
	crs := &booking.CrsBooking{Remark: "untouched"}
	diags := New().ReduceIntoCrsData(nil, crs, testDefinition(t))

	assert.Equal(t, booking.CrsBooking{Remark: "untouched"}, *crs)
	assert.Empty(t, diags.Warnings)
}

func TestReduceInvalidAssociation(t *testing.T) {
	var logs bytes.Buffer

	r := New(WithLogger(slog.New(slog.NewTextHandler(&logs, nil))))
	crs := &booking.CrsBooking{
		Services: []booking.CrsService{
			{Type: "XY", Code: "FOO", TravellerAssociation: "1-999999999999999"},
		},
		Travellers: booking.TravellerTable{{LastName: "Doe"}},
	}

	diags := r.ReduceIntoCrsData(&booking.AdapterBooking{}, crs, testDefinition(t))

	assert.True(t, diags.HasErrors())
	require.Len(t, diags.Errors, 1)
	assert.Equal(t, diagnostic.CodeInvalidAssociation, diags.Errors[0].Code)
	assert.Equal(t, 1, diags.Errors[0].ServiceIndex)
	assert.Equal(t, association.MaxIndex, crs.Travellers.Len(), "the table grows no further than MaxIndex")
	assert.Contains(t, logs.String(), "unreadable traveller association")
}
