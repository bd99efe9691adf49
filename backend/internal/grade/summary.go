package grade

import (
	"strconv"

	"sirms/backend/internal/shared"
)

// Summarize derives the per-level GPA sequence and the CGPA from a student's
// results. Levels are visited in lexicographic label order and empty levels
// are left out. The CGPA weights every course by its units across all levels;
// it is not the mean of the level GPAs.
func Summarize(student *shared.Student) shared.Summary {
	summary := shared.Summary{Levels: []shared.LevelGPA{}}
	if student == nil {
		return summary
	}

	var totalPoints float64
	var totalUnits int

	for _, level := range student.Levels() {
		courses := student.Results[level]
		if len(courses) == 0 {
			continue
		}

		var points float64
		var units int
		for _, c := range courses {
			points += float64(c.Units) * c.Point
			units += c.Units
		}

		summary.Levels = append(summary.Levels, shared.LevelGPA{
			Level:       level,
			GPA:         average(points, units),
			Units:       units,
			GradePoints: points,
			Courses:     len(courses),
		})
		totalPoints += points
		totalUnits += units
	}

	summary.CGPA = average(totalPoints, totalUnits)
	summary.TotalUnits = totalUnits
	summary.TotalGradePoints = totalPoints
	return summary
}

// average returns points/units rounded to two decimals, or 0 when units is 0.
func average(points float64, units int) float64 {
	if units == 0 {
		return 0
	}
	return Round2(points / float64(units))
}

// Round2 rounds to two decimal places. Exact ties such as 25/8 go to the
// even digit, so 3.125 becomes 3.12.
func Round2(v float64) float64 {
	r, err := strconv.ParseFloat(strconv.FormatFloat(v, 'f', 2, 64), 64)
	if err != nil {
		return v
	}
	return r
}
