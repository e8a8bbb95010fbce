// Package meta provides the per-connection data definition every mapper and
// reducer call receives.
//
// A definition describes a CRS vocabulary: which type code each canonical
// service kind is written as, which salutation each canonical gender is
// written as, and the date/time formats the CRS uses. Definitions are loaded
// from YAML once and never mutated afterwards.
//
// # Document Overview
//
//	type: bewotec
//	serviceTypes:
//	  car: MW
//	  hotel: H
//	  roundTrip: R
//	  camper: WM
//	  extra: E        # synthetic extra rows, defaults to "E"
//	  insurance: V    # synthetic insurance rows, defaults to "V"
//	genderTypes:
//	  male: H
//	  female: D
//	  child: K
//	  infant: B
//	formats:
//	  date: DDMMYY    # moment-style tokens, defaults to DDMMYYYY
//	  time: HHmm      # defaults to HHmm
//
// # Format Tokens
//
// Formats use the tokens YYYY, YY, MM, DD, HH, mm and ss. Any other text is
// kept literally. Layout converts them into a Go time layout.
package meta
