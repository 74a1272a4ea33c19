// Package validation implements the jurisdiction format rules for the two
// identifiers accepted by the consulta endpoint: Colombian vehicle plates and
// cédula numbers.
//
// The validators are pure and stateless. They are the sole gate between raw
// request parameters and the database, so both must run before any query is
// issued.
package validation
