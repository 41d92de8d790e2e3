package ui

import (
	"errors"
	"strings"
)

// Bounds of a comparison input group. Enforced at the boundary of Add and
// Remove, never retroactively.
const (
	MinInputs = 2
	MaxInputs = 5
)

// Warnings surfaced when an operation would leave the group out of bounds.
var (
	ErrTooManyInputs = errors.New("a battle supports at most 5 channels")
	ErrTooFewInputs  = errors.New("a battle needs at least 2 channels")
)

// InputGroup is a repeated-field group for multi-entity comparison. A new
// group starts at the minimum size.
type InputGroup struct {
	fields []string
}

func NewInputGroup() *InputGroup {
	return &InputGroup{fields: make([]string, MinInputs)}
}

// Count returns the number of input fields.
func (g *InputGroup) Count() int {
	return len(g.fields)
}

// Add appends one empty field, unless the group is already at the maximum.
func (g *InputGroup) Add() error {
	if len(g.fields) >= MaxInputs {
		return ErrTooManyInputs
	}
	g.fields = append(g.fields, "")
	return nil
}

// Remove drops the most recently added field, unless the group is already at
// the minimum.
func (g *InputGroup) Remove() error {
	if len(g.fields) <= MinInputs {
		return ErrTooFewInputs
	}
	g.fields = g.fields[:len(g.fields)-1]
	return nil
}

// Set stores a field value. Out-of-range indexes are ignored.
func (g *InputGroup) Set(i int, value string) {
	if i >= 0 && i < len(g.fields) {
		g.fields[i] = value
	}
}

// Values returns a copy of the current field values.
func (g *InputGroup) Values() []string {
	return append([]string(nil), g.fields...)
}

// CleanNames trims the entries and drops the blank ones; this is the
// effective submitted set.
func CleanNames(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
