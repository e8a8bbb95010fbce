package codec

import (
	"regexp"
	"strings"

	"crs-translator/internal/booking"
)

const (
	sippCodeLength     = 16
	locationLength     = 5
	sippLength         = 4
	renterSuffixLength = 2
)

var (
	legacyPattern    = regexp.MustCompile(`^(\w{5})?(\w*)/(\w*)-?(\w*)$`)
	locationsPattern = regexp.MustCompile(`^([a-zA-Z0-9]{3,5})(?:-([a-zA-Z0-9]{3,5}))?$`)
)

// ServiceCode is the decoded content of a vehicle code.
type ServiceCode struct {
	RenterCode      string
	VehicleCode     string
	Sipp            string
	PickUpLocation  string
	DropOffLocation string
}

// SplitServiceCode decodes code with the first scheme that matches.
// It returns the zero ServiceCode when none does.
func SplitServiceCode(code string) ServiceCode {
	if code == "" {
		return ServiceCode{}
	}

	if len(code) == sippCodeLength && !strings.Contains(code, "/") {
		return ServiceCode{
			PickUpLocation:  code[:locationLength],
			DropOffLocation: code[locationLength : 2*locationLength],
			Sipp:            code[2*locationLength : 2*locationLength+sippLength],
			RenterCode:      code[2*locationLength+sippLength:],
		}
	}

	if m := legacyPattern.FindStringSubmatch(code); m != nil {
		return ServiceCode{
			RenterCode:      m[1],
			VehicleCode:     m[2],
			PickUpLocation:  m[3],
			DropOffLocation: m[4],
		}
	}

	if m := locationsPattern.FindStringSubmatch(code); m != nil {
		return ServiceCode{
			PickUpLocation:  m[1],
			DropOffLocation: m[2],
		}
	}

	return ServiceCode{}
}

// CreateServiceCode encodes c. A SIPP class selects the fixed-width scheme,
// everything else is written in the legacy scheme.
func CreateServiceCode(c ServiceCode) string {
	if c.Sipp != "" {
		renter := c.RenterCode
		if len(renter) > renterSuffixLength {
			renter = renter[len(renter)-renterSuffixLength:]
		}

		return c.PickUpLocation + c.DropOffLocation + c.Sipp + renter
	}

	code := c.RenterCode + c.VehicleCode + "/" + c.PickUpLocation + "-" + c.DropOffLocation
	if code == "/-" {
		return ""
	}

	return code
}

// FromVehicle collects the coded fields of an adapter vehicle.
func FromVehicle(v booking.Vehicle) ServiceCode {
	return ServiceCode{
		RenterCode:      v.RenterCode,
		VehicleCode:     v.VehicleCode,
		Sipp:            v.Sipp,
		PickUpLocation:  v.PickUpLocation,
		DropOffLocation: v.DropOffLocation,
	}
}

// Apply copies the decoded fields onto an adapter vehicle.
func (c ServiceCode) Apply(v *booking.Vehicle) {
	v.RenterCode = c.RenterCode
	v.VehicleCode = c.VehicleCode
	v.Sipp = c.Sipp
	v.PickUpLocation = c.PickUpLocation
	v.DropOffLocation = c.DropOffLocation
}

// IsLocationsOnly reports whether code is a bare "PICKUP[-DROPOFF]" placeholder.
func IsLocationsOnly(code string) bool {
	return locationsPattern.MatchString(code)
}
