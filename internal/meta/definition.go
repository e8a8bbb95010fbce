package meta

import (
	"maps"

	"crs-translator/internal/booking"
)

// DataDefinition is the immutable per-connection vocabulary. Construct it with
// New or Parse; the zero value maps nothing and uses the default formats.
type DataDefinition struct {
	adapterType  string
	serviceTypes map[string]string
	kindsByType  map[string]booking.Kind
	genderTypes  map[booking.Gender]string
	dateFormat   string
	timeFormat   string
	dateLayout   string
	timeLayout   string
}

// New validates doc and builds a DataDefinition. The document maps are copied.
func New(doc Document) (DataDefinition, error) {
	doc.ServiceTypes = maps.Clone(doc.ServiceTypes)
	if doc.ServiceTypes == nil {
		doc.ServiceTypes = map[string]string{}
	}

	applyDefaults(&doc)

	def := DataDefinition{
		adapterType:  doc.Type,
		serviceTypes: doc.ServiceTypes,
		kindsByType:  make(map[string]booking.Kind, len(booking.Kinds)),
		genderTypes:  make(map[booking.Gender]string, len(doc.GenderTypes)),
		dateFormat:   doc.Formats.Date,
		timeFormat:   doc.Formats.Time,
		dateLayout:   Layout(doc.Formats.Date),
		timeLayout:   Layout(doc.Formats.Time),
	}

	for _, k := range booking.Kinds {
		if code := doc.ServiceTypes[k.String()]; code != "" {
			def.kindsByType[code] = k
		}
	}

	if len(def.kindsByType) == 0 {
		return DataDefinition{}, ErrMissingServiceType
	}

	for gender, code := range doc.GenderTypes {
		def.genderTypes[booking.Gender(gender)] = code
	}

	return def, nil
}

// Type returns the adapter identifier.
func (d DataDefinition) Type() string {
	return d.adapterType
}

// CrsType returns the CRS type code of a canonical kind.
func (d DataDefinition) CrsType(k booking.Kind) string {
	return d.serviceTypes[k.String()]
}

// ExtraType returns the CRS type code of synthetic extra rows.
func (d DataDefinition) ExtraType() string {
	return d.syntheticType(ExtraKey, DefaultExtraType)
}

// InsuranceType returns the CRS type code of synthetic insurance rows.
func (d DataDefinition) InsuranceType() string {
	return d.syntheticType(InsuranceKey, DefaultInsuranceType)
}

func (d DataDefinition) syntheticType(key, fallback string) string {
	if code := d.serviceTypes[key]; code != "" {
		return code
	}

	return fallback
}

// KindOf resolves a CRS type code to a canonical kind.
func (d DataDefinition) KindOf(crsType string) (booking.Kind, bool) {
	k, ok := d.kindsByType[crsType]

	return k, ok
}

// Salutation returns the CRS salutation of a canonical gender.
func (d DataDefinition) Salutation(g booking.Gender) string {
	return d.genderTypes[g]
}

// Gender resolves a CRS salutation. When several genders share one salutation
// the first in booking.Genders order wins.
func (d DataDefinition) Gender(salutation string) (booking.Gender, bool) {
	if salutation == "" {
		return "", false
	}

	for _, g := range booking.Genders {
		if d.genderTypes[g] == salutation {
			return g, true
		}
	}

	return "", false
}

// DateFormat returns the CRS date format as written in the document.
func (d DataDefinition) DateFormat() string {
	return orDefault(d.dateFormat, DefaultDateFormat)
}

// TimeFormat returns the CRS time format as written in the document.
func (d DataDefinition) TimeFormat() string {
	return orDefault(d.timeFormat, DefaultTimeFormat)
}

// DateLayout returns the Go layout of the CRS date format.
func (d DataDefinition) DateLayout() string {
	return orDefault(d.dateLayout, Layout(DefaultDateFormat))
}

// TimeLayout returns the Go layout of the CRS time format.
func (d DataDefinition) TimeLayout() string {
	return orDefault(d.timeLayout, Layout(DefaultTimeFormat))
}

func orDefault(v, fallback string) string {
	if v == "" {
		return fallback
	}

	return v
}
