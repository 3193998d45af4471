// Package models defines the core domain records for Deskwalk.
//
// # Records
//
// Four independent record kinds are persisted, each as its own collection:
//   - Profile: the singleton body profile and weight-loss goal
//   - WeightEntry: one body-weight measurement
//   - WalkSession: one treadmill walk with its derived calories and distance
//   - Milestone: a noteworthy achievement
//
// No record references another by ID. Relationships (e.g. computing BMI for a
// weight entry) are resolved by the service layer at write time and the
// derived values are stored on the record itself.
//
// # Serialization
//
// Records serialize to JSON with camelCase field names. Dates are time.Time
// values and therefore round-trip as RFC 3339 (ISO-8601) strings. Consumers
// must compare dates with time.Time.Equal, not ==, since the location and
// monotonic reading are not preserved.
package models
