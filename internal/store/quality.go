package store

import (
	"fmt"
	"sort"

	"github.com/stitts-dev/caddie/internal/models"
)

type IssueKind string

const (
	IssueHoleCount         IssueKind = "hole_count"
	IssueHoleNumber        IssueKind = "invalid_hole_number"
	IssueDuplicateHole     IssueKind = "duplicate_hole_number"
	IssueDuplicateHandicap IssueKind = "duplicate_handicap"
	IssueMissingHandicap   IssueKind = "missing_handicap"
	IssueMissingHazards    IssueKind = "missing_hazards"
)

type QualityIssue struct {
	Kind    IssueKind `json:"kind"`
	Message string    `json:"message"`
	Holes   []int     `json:"holes,omitempty"`
}

// QualityReport lists data defects in a course. It is advisory only and is
// never consulted by the recommendation engine.
type QualityReport struct {
	CourseID  string         `json:"course_id"`
	HoleCount int            `json:"hole_count"`
	Issues    []QualityIssue `json:"issues"`
}

// Clean reports whether no issues were found
func (r QualityReport) Clean() bool {
	return len(r.Issues) == 0
}

// CheckCourse inspects a course for the defects seen in imported course data
func CheckCourse(c models.Course) QualityReport {
	r := QualityReport{CourseID: c.ID, HoleCount: len(c.Holes), Issues: []QualityIssue{}}

	if len(c.Holes) != 18 {
		r.Issues = append(r.Issues, QualityIssue{
			Kind:    IssueHoleCount,
			Message: fmt.Sprintf("course has %d holes, expected 18", len(c.Holes)),
		})
	}

	numbers := map[int]int{}
	handicaps := map[int][]int{}
	var badNumbers, noHazards []int
	for _, h := range c.Holes {
		numbers[h.Number]++
		if h.Number < 1 || h.Number > 18 {
			badNumbers = append(badNumbers, h.Number)
		}
		if h.HandicapIndex >= 1 && h.HandicapIndex <= 18 {
			handicaps[h.HandicapIndex] = append(handicaps[h.HandicapIndex], h.Number)
		}
		if len(h.Hazards) == 0 {
			noHazards = append(noHazards, h.Number)
		}
	}

	if len(badNumbers) > 0 {
		r.Issues = append(r.Issues, QualityIssue{
			Kind:    IssueHoleNumber,
			Message: "hole numbers must be between 1 and 18",
			Holes:   badNumbers,
		})
	}

	var dupHoles []int
	for n, count := range numbers {
		if count > 1 {
			dupHoles = append(dupHoles, n)
		}
	}
	if len(dupHoles) > 0 {
		sort.Ints(dupHoles)
		r.Issues = append(r.Issues, QualityIssue{
			Kind:    IssueDuplicateHole,
			Message: "hole numbers appear more than once",
			Holes:   dupHoles,
		})
	}

	var dupIdx []int
	for idx, holes := range handicaps {
		if len(holes) > 1 {
			dupIdx = append(dupIdx, idx)
		}
	}
	sort.Ints(dupIdx)
	for _, idx := range dupIdx {
		holes := append([]int(nil), handicaps[idx]...)
		sort.Ints(holes)
		r.Issues = append(r.Issues, QualityIssue{
			Kind:    IssueDuplicateHandicap,
			Message: fmt.Sprintf("handicap index %d is used by more than one hole", idx),
			Holes:   holes,
		})
	}

	if len(c.Holes) == 18 {
		var missing []int
		for idx := 1; idx <= 18; idx++ {
			if _, ok := handicaps[idx]; !ok {
				missing = append(missing, idx)
			}
		}
		if len(missing) > 0 {
			r.Issues = append(r.Issues, QualityIssue{
				Kind:    IssueMissingHandicap,
				Message: fmt.Sprintf("handicap indices %v are not assigned", missing),
			})
		}
	}

	if len(noHazards) > 0 {
		r.Issues = append(r.Issues, QualityIssue{
			Kind:    IssueMissingHazards,
			Message: "holes have no hazards recorded",
			Holes:   noHazards,
		})
	}

	return r
}
