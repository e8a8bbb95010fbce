// Package booking holds the two booking representations the translator works on.
//
// The adapter (canonical) side is an ordered list of typed services, each
// carrying its own travellers. The CRS side is a flat list of encoded service
// rows plus one shared traveller table referenced by index.
//
// # Adapter services
//
// AdapterService is a closed tagged union over CarService, CamperService,
// HotelService, RoundTripService and RawService. Callers switch on the
// concrete type or on Kind().
//
// # Traveller slots
//
// A service's travellers are a sequence of common.Optional values. An absent
// slot means "keep whoever already occupies that seat".
package booking
