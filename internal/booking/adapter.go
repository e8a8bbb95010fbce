package booking

import "crs-translator/internal/common"

// AdapterBooking is the canonical, agent-facing booking.
type AdapterBooking struct {
	AgencyNumber       string   `yaml:"agencyNumber,omitempty"`
	Operator           string   `yaml:"operator,omitempty"`
	NumberOfTravellers int      `yaml:"numberOfTravellers,omitempty"`
	TravelType         string   `yaml:"travelType,omitempty"`
	Remark             string   `yaml:"remark,omitempty"`
	Services           Services `yaml:"services,omitempty"`
}

// Gender is a canonical traveller gender.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderChild  Gender = "child"
	GenderInfant Gender = "infant"
)

// Genders lists the canonical genders in lookup priority order.
var Genders = []Gender{GenderMale, GenderFemale, GenderChild, GenderInfant}

// AdapterTraveller is one traveller attached to an adapter service.
type AdapterTraveller struct {
	Gender      Gender `yaml:"gender,omitempty"`
	FirstName   string `yaml:"firstName,omitempty"`
	LastName    string `yaml:"lastName,omitempty"`
	DateOfBirth string `yaml:"dateOfBirth,omitempty"`
	Age         string `yaml:"age,omitempty"`
}

// TravellerSlot is a possibly absent traveller position on a service.
type TravellerSlot = common.Optional[AdapterTraveller]

// AdapterService is implemented by every adapter service variant.
type AdapterService interface {
	Kind() Kind
	IsMarked() bool
	Slots() []TravellerSlot
	SetSlots(slots []TravellerSlot)
}

// Common carries the fields shared by all variants.
type Common struct {
	Marked     bool            `yaml:"marked,omitempty"`
	Travellers []TravellerSlot `yaml:"travellers,omitempty"`
}

// IsMarked reports whether the service is flagged as a placeholder.
func (c *Common) IsMarked() bool { return c.Marked }

// Slots returns the traveller slots.
func (c *Common) Slots() []TravellerSlot { return c.Travellers }

// SetSlots replaces the traveller slots.
func (c *Common) SetSlots(slots []TravellerSlot) { c.Travellers = slots }

// Vehicle holds the coded rental fields shared by car and camper services.
type Vehicle struct {
	RenterCode      string `yaml:"renterCode,omitempty"`
	VehicleCode     string `yaml:"vehicleCode,omitempty"`
	Sipp            string `yaml:"sipp,omitempty"`
	PickUpLocation  string `yaml:"pickUpLocation,omitempty"`
	DropOffLocation string `yaml:"dropOffLocation,omitempty"`
	PickUpDate      string `yaml:"pickUpDate,omitempty"`
	DropOffDate     string `yaml:"dropOffDate,omitempty"`
	PickUpTime      string `yaml:"pickUpTime,omitempty"`
	DropOffTime     string `yaml:"dropOffTime,omitempty"`
}

// CarService is a rental car.
type CarService struct {
	Common  `yaml:",inline"`
	Vehicle `yaml:",inline"`

	PickUpHotelName         string   `yaml:"pickUpHotelName,omitempty"`
	PickUpHotelAddress      string   `yaml:"pickUpHotelAddress,omitempty"`
	PickUpHotelPhoneNumber  string   `yaml:"pickUpHotelPhoneNumber,omitempty"`
	DropOffHotelName        string   `yaml:"dropOffHotelName,omitempty"`
	DropOffHotelAddress     string   `yaml:"dropOffHotelAddress,omitempty"`
	DropOffHotelPhoneNumber string   `yaml:"dropOffHotelPhoneNumber,omitempty"`
	Extras                  []string `yaml:"extras,omitempty"`
}

// Kind implements AdapterService.
func (*CarService) Kind() Kind { return KindCar }

// CamperService is a camper rental.
type CamperService struct {
	Common  `yaml:",inline"`
	Vehicle `yaml:",inline"`

	MilesIncludedPerDay   string   `yaml:"milesIncludedPerDay,omitempty"`
	MilesPackagesIncluded string   `yaml:"milesPackagesIncluded,omitempty"`
	Extras                []string `yaml:"extras,omitempty"`
}

// Kind implements AdapterService.
func (*CamperService) Kind() Kind { return KindCamper }

// HotelService is an accommodation.
type HotelService struct {
	Common `yaml:",inline"`

	Destination   string `yaml:"destination,omitempty"`
	RoomCode      string `yaml:"roomCode,omitempty"`
	MealCode      string `yaml:"mealCode,omitempty"`
	RoomOccupancy int    `yaml:"roomOccupancy,omitempty"`
	RoomQuantity  int    `yaml:"roomQuantity,omitempty"`
	DateFrom      string `yaml:"dateFrom,omitempty"`
	DateTo        string `yaml:"dateTo,omitempty"`
}

// Kind implements AdapterService.
func (*HotelService) Kind() Kind { return KindHotel }

// RoundTripService is a packaged round trip.
type RoundTripService struct {
	Common `yaml:",inline"`

	BookingID   string `yaml:"bookingId,omitempty"`
	Destination string `yaml:"destination,omitempty"`
	StartDate   string `yaml:"startDate,omitempty"`
	EndDate     string `yaml:"endDate,omitempty"`
}

// Kind implements AdapterService.
func (*RoundTripService) Kind() Kind { return KindRoundTrip }

// RawService passes an unmapped CRS row through unchanged.
type RawService struct {
	Common `yaml:",inline"`

	Type          string `yaml:"type,omitempty"`
	Code          string `yaml:"code,omitempty"`
	Accommodation string `yaml:"accommodation,omitempty"`
	FromDate      string `yaml:"fromDate,omitempty"`
	ToDate        string `yaml:"toDate,omitempty"`
	Occupancy     string `yaml:"occupancy,omitempty"`
	Quantity      string `yaml:"quantity,omitempty"`
}

// Kind implements AdapterService.
func (*RawService) Kind() Kind { return KindRaw }

// NewService returns an empty variant for k.
func NewService(k Kind) AdapterService {
	switch k {
	case KindCar:
		return &CarService{}
	case KindHotel:
		return &HotelService{}
	case KindRoundTrip:
		return &RoundTripService{}
	case KindCamper:
		return &CamperService{}
	default:
		return &RawService{}
	}
}
