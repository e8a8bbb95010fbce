// Package crsline flattens CRS bookings into the positional field sets legacy
// reservation front ends exchange.
//
// Two schemes exist:
//
//   - dotted: one key per field and line, "KindOfService.1", "ServiceCode.1",
//     "Title.1", ... with 1-based line numbers (XML-hosted masks)
//   - letters: one short key per field, suffixed with a line symbol from the
//     18-symbol alphabet "0123456789abcdefgh" (object-literal masks)
//
// Line positions are significant: travellers are referenced by position, and
// masks render lines by position, so blank lines inside a booking are kept.
package crsline
