package core

// Package core holds the types shared between the collection layer and
// the file parsers.
//
// The central idea, inherited from the insights architecture, is that
// parsers never perform I/O. A Context is handed to them with the file
// content already read; the same parser therefore works identically
// against a live host, a test fixture, or an unpacked archive.
