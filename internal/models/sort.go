package models

import (
	"slices"
	"time"
)

// Dated is implemented by every collection record.
type Dated interface {
	RecordDate() time.Time
}

// SortByDate sorts records oldest first. Records with equal dates keep their
// stored order.
func SortByDate[T Dated](records []T) {
	slices.SortStableFunc(records, func(a, b T) int {
		return a.RecordDate().Compare(b.RecordDate())
	})
}

// SortByDateDesc sorts records newest first.
func SortByDateDesc[T Dated](records []T) {
	slices.SortStableFunc(records, func(a, b T) int {
		return b.RecordDate().Compare(a.RecordDate())
	})
}
