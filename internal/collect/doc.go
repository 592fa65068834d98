package collect

// Package collect gathers host artifacts into archives.
//
// A collection run reads every configuration file a parser is
// registered for (resolved under the configured host root), records
// host identification facts and systemd unit states, and bundles
// everything into a uuid-identified Archive. Parsing happens later,
// against the archive content, never during collection.
