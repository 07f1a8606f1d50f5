package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseError reports a field whose value could not be converted to a number.
type ParseError struct {
	Field string
	Value string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %s %q: %v", e.Field, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// ParseStorm converts a storm list record. The id must be an integer.
func ParseStorm(raw RawStorm) (Storm, error) {
	id, err := parseInt("tfid", raw.ID)
	if err != nil {
		return Storm{}, err
	}
	return Storm{
		ID:     id,
		Name:   valueOrZero(raw.Name),
		EnName: valueOrZero(raw.EnName),
	}, nil
}

// ParsePoint converts a track point record belonging to stormID. The first
// malformed numeric field aborts the conversion.
func ParsePoint(raw RawPoint, stormID int) (Point, error) {
	radius, err := ReduceRadius(valueOrZero(raw.Radius7))
	if err != nil {
		return Point{}, err
	}

	p := Point{
		Radius7: radius,
		Strong:  valueOrZero(raw.Strong),
		Time:    valueOrZero(raw.Time),
		StormID: stormID,
	}

	ints := []struct {
		field string
		raw   string
		dst   *int
	}{
		{"power", raw.Power, &p.Power},
		{"speed", raw.Speed, &p.WindSpeed},
		{"movespeed", raw.MoveSpeed, &p.MoveSpeed},
		{"pressure", raw.Pressure, &p.Pressure},
	}
	for _, f := range ints {
		if *f.dst, err = parseInt(f.field, f.raw); err != nil {
			return Point{}, err
		}
	}

	if p.Lat, err = parseFloat("lat", raw.Lat); err != nil {
		return Point{}, err
	}
	if p.Lng, err = parseFloat("lng", raw.Lng); err != nil {
		return Point{}, err
	}
	return p, nil
}

// valueOrZero trims s and substitutes "0" for an empty value, the source's
// convention for missing fields.
func valueOrZero(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return "0"
	}
	return s
}

func parseInt(field, raw string) (int, error) {
	v, err := strconv.Atoi(valueOrZero(raw))
	if err != nil {
		return 0, &ParseError{Field: field, Value: raw, Err: err}
	}
	return v, nil
}

func parseFloat(field, raw string) (float64, error) {
	v, err := strconv.ParseFloat(valueOrZero(raw), 64)
	if err != nil {
		return 0, &ParseError{Field: field, Value: raw, Err: err}
	}
	return v, nil
}
