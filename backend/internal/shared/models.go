// ============================================================================
// backend/internal/shared/models.go
// Shared data models for student records, results and academic summaries
// ============================================================================

package shared

import (
	"sort"
	"strings"
)

// ============================================================================
// Record Models
// ============================================================================

// Student is a single student record. Results maps a level label (e.g. "100L")
// to the course results uploaded for that level, in upload order.
type Student struct {
	ID         string                    `bson:"_id" json:"id"`
	Name       string                    `bson:"name" json:"name"`
	Password   string                    `bson:"password" json:"-"` // plaintext, never rendered
	Level      string                    `bson:"level" json:"level"`
	Department string                    `bson:"department" json:"department"`
	Results    map[string][]CourseResult `bson:"results" json:"results"`
}

// CourseResult is one uploaded course score. Point and Grade are stamped from
// Score when the result is created and are never recomputed.
type CourseResult struct {
	Course string  `bson:"course" json:"course"`
	Units  int     `bson:"units" json:"units"`
	Score  float64 `bson:"score" json:"score"`
	Point  float64 `bson:"point" json:"point"`
	Grade  string  `bson:"grade" json:"grade"`
}

// Clone returns a deep copy of the record.
func (s *Student) Clone() *Student {
	if s == nil {
		return nil
	}
	c := *s
	c.Results = make(map[string][]CourseResult, len(s.Results))
	for level, courses := range s.Results {
		cp := make([]CourseResult, len(courses))
		copy(cp, courses)
		c.Results[level] = cp
	}
	return &c
}

// Levels returns the result level labels in ascending lexicographic order.
// "200L" sorts before "99L"; labels are compared as strings, not numbers.
func (s *Student) Levels() []string {
	levels := make([]string, 0, len(s.Results))
	for level := range s.Results {
		levels = append(levels, level)
	}
	sort.Strings(levels)
	return levels
}

// ============================================================================
// Summary Models
// ============================================================================

// LevelGPA is the GPA of a single non-empty level.
type LevelGPA struct {
	Level       string  `json:"level"`
	GPA         float64 `json:"gpa"`
	Units       int     `json:"units"`
	GradePoints float64 `json:"grade_points"`
	Courses     int     `json:"courses"`
}

// Summary is the academic summary derived from a student's results.
type Summary struct {
	Levels           []LevelGPA `json:"levels"`
	CGPA             float64    `json:"cgpa"`
	TotalUnits       int        `json:"total_units"`
	TotalGradePoints float64    `json:"total_grade_points"`
}

// ============================================================================
// Identity
// ============================================================================

// Role identifies what kind of caller an Identity represents.
type Role string

const (
	RoleAnonymous Role = ""
	RoleAdmin     Role = "admin"
	RoleStudent   Role = "student"
)

// Identity is the resolved caller of an operation: anonymous, the admin, or a
// specific student.
type Identity struct {
	Role      Role   `json:"role"`
	StudentID string `json:"student_id,omitempty"`
}

// Anonymous is the identity of an unauthenticated caller.
var Anonymous = Identity{}

// AdminIdentity returns the admin identity.
func AdminIdentity() Identity {
	return Identity{Role: RoleAdmin}
}

// StudentIdentity returns the identity of the student with the given id.
func StudentIdentity(id string) Identity {
	return Identity{Role: RoleStudent, StudentID: NormalizeID(id)}
}

// IsAdmin reports whether the identity is the admin.
func (i Identity) IsAdmin() bool { return i.Role == RoleAdmin }

// IsStudent reports whether the identity is an authenticated student.
func (i Identity) IsStudent() bool { return i.Role == RoleStudent && i.StudentID != "" }

// IsAnonymous reports whether the caller is unauthenticated.
func (i Identity) IsAnonymous() bool { return !i.IsAdmin() && !i.IsStudent() }

// CanView reports whether the identity may read the record with the given id.
func (i Identity) CanView(studentID string) bool {
	return i.IsAdmin() || (i.IsStudent() && i.StudentID == NormalizeID(studentID))
}

// ============================================================================
// Normalization
// ============================================================================

// NormalizeID uppercases a matriculation number. Ids are case-insensitive.
func NormalizeID(id string) string {
	return strings.ToUpper(id)
}

// NormalizeCourse uppercases a course code.
func NormalizeCourse(code string) string {
	return strings.ToUpper(code)
}

// ============================================================================
// Constants
// ============================================================================

const (
	// DefaultPassword is assigned to every newly registered student.
	DefaultPassword = "123"

	// DefaultAdminPassword is used when ADMIN_PASSWORD is not configured.
	DefaultAdminPassword = "admin123"

	// Grade letters
	GradeA = "A"
	GradeB = "B"
	GradeC = "C"
	GradeD = "D"
	GradeE = "E"
	GradeF = "F"

	// Store backends
	StoreMemory = "memory"
	StoreMongo  = "mongo"
)
