package meta

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Default formats and synthetic row types.
const (
	DefaultDateFormat    = "DDMMYYYY"
	DefaultTimeFormat    = "HHmm"
	DefaultExtraType     = "E"
	DefaultInsuranceType = "V"
)

// Keys of the synthetic row types inside Document.ServiceTypes.
const (
	ExtraKey     = "extra"
	InsuranceKey = "insurance"
)

// ErrMissingServiceType is returned when a document maps no canonical kind at all.
var ErrMissingServiceType = errors.New("data definition maps no service type")

// Document is the YAML shape of a data definition.
type Document struct {
	// Type names the adapter this definition belongs to.
	Type string `yaml:"type"`

	// ServiceTypes maps canonical kinds (car, hotel, roundTrip, camper) and the
	// synthetic keys extra/insurance to CRS type codes.
	ServiceTypes map[string]string `yaml:"serviceTypes"`

	// GenderTypes maps canonical genders to CRS salutation codes.
	GenderTypes map[string]string `yaml:"genderTypes"`

	Formats Formats `yaml:"formats"`
}

// Formats holds moment-style format strings.
type Formats struct {
	Date string `yaml:"date"`
	Time string `yaml:"time"`
}

// LoadFile loads and parses a YAML definition file from the given path.
func LoadFile(path string) (DataDefinition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return DataDefinition{}, fmt.Errorf("failed to read data definition %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses YAML data into a DataDefinition.
func Parse(data []byte) (DataDefinition, error) {
	var doc Document

	err := yaml.Unmarshal(data, &doc)
	if err != nil {
		return DataDefinition{}, fmt.Errorf("failed to parse data definition YAML: %w", err)
	}

	return New(doc)
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(doc *Document) {
	if doc.Formats.Date == "" {
		doc.Formats.Date = DefaultDateFormat
	}

	if doc.Formats.Time == "" {
		doc.Formats.Time = DefaultTimeFormat
	}

	if doc.ServiceTypes[ExtraKey] == "" {
		doc.ServiceTypes[ExtraKey] = DefaultExtraType
	}

	if doc.ServiceTypes[InsuranceKey] == "" {
		doc.ServiceTypes[InsuranceKey] = DefaultInsuranceType
	}
}
