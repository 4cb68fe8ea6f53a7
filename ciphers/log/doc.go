// Package log defines the structured logging interface used across the
// cipher substrate.
//
// The substrate itself only logs from components with observable lifecycle,
// such as the cooperative scheduler; pure byte transforms never log.
// Adapters (such as the zap package) implement Logger so hosts can route
// these events into their own logging backend.
package log
