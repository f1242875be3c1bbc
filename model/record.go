// Package model contains core data types for the project.
package model

import "golang.org/x/exp/constraints"

// Record is a plain aggregate: an integer flag, a value of any type and a label.
type Record[T any] struct {
	Flag  int    // Truthiness flag.
	Value T      // Payload.
	Label string // Free-form label.
}

// NewRecord returns a Record with the given fields.
func NewRecord[T any](flag int, value T, label string) Record[T] {
	return Record[T]{Flag: flag, Value: value, Label: label}
}

// Truthy reports whether the record's flag is non-zero.
func (r Record[T]) Truthy() bool {
	return r.Flag != 0
}

// IntegralRecord is a Record restricted to integer payloads.
type IntegralRecord[T constraints.Integer] struct {
	Record[T]
}

// NewIntegralRecord returns an IntegralRecord with the given fields.
func NewIntegralRecord[T constraints.Integer](flag int, value T, label string) IntegralRecord[T] {
	return IntegralRecord[T]{Record: NewRecord(flag, value, label)}
}
