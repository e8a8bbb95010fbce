// Package diagnostic provides structured warnings collected while a booking
// is mapped or reduced.
//
// Translation is best effort: an unsupported service type or an unparsable
// date never aborts a booking. Instead the pass records a diagnostic naming
// the service position and type so callers can report what was approximated.
package diagnostic
