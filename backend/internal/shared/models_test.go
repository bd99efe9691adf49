package shared

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIdentity(t *testing.T) {
	assert.True(t, Anonymous.IsAnonymous())
	assert.False(t, Anonymous.CanView("2024/001"))

	admin := AdminIdentity()
	assert.True(t, admin.CanView("anything"))

	student := StudentIdentity("abc/1")
	assert.Equal(t, "ABC/1", student.StudentID)
	assert.True(t, student.CanView("Abc/1"))
	assert.False(t, student.CanView("ABC/2"))
	assert.False(t, Identity{Role: RoleStudent}.IsStudent())
}

func TestStudentClone(t *testing.T) {
	s := &Student{ID: "S", Results: map[string][]CourseResult{"100L": {{Course: "A"}}}}
	c := s.Clone()
	c.Results["100L"][0].Course = "B"
	c.Results["200L"] = nil
	assert.Equal(t, "A", s.Results["100L"][0].Course)
	assert.NotContains(t, s.Results, "200L")
	assert.Len(t, s.Results["100L"], 1)
}

func TestStudentLevels(t *testing.T) {
	s := &Student{Results: map[string][]CourseResult{"99L": nil, "200L": nil, "100L": nil}}
	assert.Equal(t, []string{"100L", "200L", "99L"}, s.Levels())
}
