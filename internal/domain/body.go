package domain

import (
	"fmt"
	"strings"
)

// Body identifies a planet whose position can be resolved
type Body int

const (
	BodyUnknown Body = iota
	Mercury
	Venus
	Earth
	Mars
	Jupiter
	Saturn
	Uranus
	Neptune
)

var bodyNames = map[Body]string{
	Mercury: "Mercury",
	Venus:   "Venus",
	Earth:   "Earth",
	Mars:    "Mars",
	Jupiter: "Jupiter",
	Saturn:  "Saturn",
	Uranus:  "Uranus",
	Neptune: "Neptune",
}

func (b Body) String() string {
	if name, ok := bodyNames[b]; ok {
		return name
	}
	return fmt.Sprintf("Body(%d)", int(b))
}

// Slug returns the lowercase name used in URLs, tool arguments and storage
func (b Body) Slug() string {
	return strings.ToLower(b.String())
}

// Valid reports whether b is one of the eight planets
func (b Body) Valid() bool {
	_, ok := bodyNames[b]
	return ok
}

// Bodies returns every supported body ordered by distance from the Sun
func Bodies() []Body {
	return []Body{Mercury, Venus, Earth, Mars, Jupiter, Saturn, Uranus, Neptune}
}

// ParseBody maps a case-insensitive planet name to a Body
func ParseBody(name string) (Body, error) {
	trimmed := strings.TrimSpace(name)
	for b, n := range bodyNames {
		if strings.EqualFold(n, trimmed) {
			return b, nil
		}
	}
	return BodyUnknown, &UnsupportedBodyError{Name: name}
}
