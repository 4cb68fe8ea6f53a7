// Package zap bridges the log abstraction of this module to go.uber.org/zap.
//
// It preserves structured fields, correlates entries with active
// OpenTelemetry spans, and mirrors every entry to the OTel log bridge so
// collectors see the same stream as stdout.
package zap
