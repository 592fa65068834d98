package parsers

// Package parsers turns raw configuration file content into queryable
// fact objects.
//
// Each supported file type registers a Factory against its canonical
// host path (see Register); callers resolve a parser with For and hand
// it a core.Context. Lookups on the parsed result signal absence with
// a comma-ok boolean rather than an error: a missing section or key is
// an ordinary answer, not a failure.
