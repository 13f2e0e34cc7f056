package models

import "fmt"

// Course is a golf course and its holes. Holes inherit the course elevation.
type Course struct {
	ID            string   `json:"id" yaml:"id"`
	Name          string   `json:"name" yaml:"name"`
	Aliases       []string `json:"aliases,omitempty" yaml:"aliases,omitempty"`
	City          string   `json:"city,omitempty" yaml:"city,omitempty"`
	State         string   `json:"state,omitempty" yaml:"state,omitempty"`
	ElevationFeet float64  `json:"elevation_feet" yaml:"elevation_feet"`
	Latitude      float64  `json:"latitude,omitempty" yaml:"latitude,omitempty"`
	Longitude     float64  `json:"longitude,omitempty" yaml:"longitude,omitempty"`
	Holes         []Hole   `json:"holes" yaml:"holes"`
}

// Hole returns the hole with the given number
func (c Course) Hole(number int) (Hole, bool) {
	for _, h := range c.Holes {
		if h.Number == number {
			return h, true
		}
	}
	return Hole{}, false
}

// HasLocation reports whether the course can be located for weather lookups
func (c Course) HasLocation() bool {
	return c.Latitude != 0 || c.Longitude != 0
}

// HoleKey is the stable id of a hole within a course
func HoleKey(courseID string, number int) string {
	return fmt.Sprintf("%s-%d", courseID, number)
}
