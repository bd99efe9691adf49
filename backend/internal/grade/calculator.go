// Package grade converts raw course scores into grade points and derives
// per-level and cumulative grade-point averages from a student's results.
package grade

import "sirms/backend/internal/shared"

// band is a score threshold; scores at or above Min earn Point and Letter.
type band struct {
	Min    float64
	Point  float64
	Letter string
}

// bands are evaluated top-down and the first match wins.
var bands = []band{
	{Min: 70, Point: 5.0, Letter: shared.GradeA},
	{Min: 60, Point: 4.0, Letter: shared.GradeB},
	{Min: 50, Point: 3.0, Letter: shared.GradeC},
	{Min: 45, Point: 2.0, Letter: shared.GradeD},
	{Min: 40, Point: 1.0, Letter: shared.GradeE},
}

// CalculateGrade maps a numeric score to its grade point and letter grade.
// The input range is not validated: anything at or above 70 is an A and
// anything below 40, including negative scores, is an F.
func CalculateGrade(score float64) (float64, string) {
	for _, b := range bands {
		if score >= b.Min {
			return b.Point, b.Letter
		}
	}
	return 0.0, shared.GradeF
}

// NewCourseResult builds a course result with the course code uppercased and
// the point and grade stamped from score.
func NewCourseResult(course string, units int, score float64) shared.CourseResult {
	point, letter := CalculateGrade(score)
	return shared.CourseResult{
		Course: shared.NormalizeCourse(course),
		Units:  units,
		Score:  score,
		Point:  point,
		Grade:  letter,
	}
}
