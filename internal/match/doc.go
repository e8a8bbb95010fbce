// Package match provides name normalization and the structural traveller
// identity used when reconciling adapter travellers with a CRS traveller table.
//
// Two travellers are the same when both parts of the incoming name occur in
// the stored full name, compared case-insensitively. Substring rather than
// equality keeps merged middle names ("Jane Mary" / "Doe") matching "Jane Doe".
package match
