package records

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"sirms/backend/internal/grade"
	"sirms/backend/internal/shared"
)

// SeedFile is the YAML layout of a seed file.
type SeedFile struct {
	Students []SeedStudent `yaml:"students"`
}

// SeedStudent is one student in a seed file. Password defaults to the
// registration default when omitted.
type SeedStudent struct {
	ID         string                  `yaml:"id"`
	Name       string                  `yaml:"name"`
	Password   string                  `yaml:"password"`
	Level      string                  `yaml:"level"`
	Department string                  `yaml:"department"`
	Results    map[string][]SeedCourse `yaml:"results"`
}

// SeedCourse is a course result in a seed file. Point and grade are always
// derived from the score.
type SeedCourse struct {
	Course string  `yaml:"course"`
	Units  int     `yaml:"units"`
	Score  float64 `yaml:"score"`
}

// ParseSeed decodes a seed file.
func ParseSeed(r io.Reader) (*SeedFile, error) {
	var seed SeedFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&seed); err != nil {
		if errors.Is(err, io.EOF) {
			return &seed, nil
		}
		return nil, fmt.Errorf("decode seed: %w", err)
	}
	return &seed, nil
}

// LoadSeedFile reads and decodes the seed file at path.
func LoadSeedFile(path string) (*SeedFile, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open seed file: %w", err)
	}
	defer f.Close()
	return ParseSeed(f)
}

// Student converts the seed entry to a record, grading every course. Levels
// are taken as listed; the current level gets no entry unless it has one.
func (s SeedStudent) Student() *shared.Student {
	password := s.Password
	if password == "" {
		password = shared.DefaultPassword
	}

	student := &shared.Student{
		ID:         shared.NormalizeID(s.ID),
		Name:       s.Name,
		Password:   password,
		Level:      s.Level,
		Department: s.Department,
		Results:    make(map[string][]shared.CourseResult, len(s.Results)),
	}
	for level, courses := range s.Results {
		entries := make([]shared.CourseResult, 0, len(courses))
		for _, c := range courses {
			entries = append(entries, grade.NewCourseResult(c.Course, c.Units, c.Score))
		}
		student.Results[level] = entries
	}
	return student
}

// Seed writes every seed student that is not already in the store. It returns
// the number of students written.
func Seed(ctx context.Context, store Store, seed *SeedFile, logger *zap.Logger) (int, error) {
	written := 0
	for _, entry := range seed.Students {
		student := entry.Student()
		if student.ID == "" {
			return written, fmt.Errorf("seed student without id: %w", shared.ErrInvalidInput)
		}

		_, err := store.Get(ctx, student.ID)
		if err == nil {
			logger.Debug("seed student already present", zap.String("student_id", student.ID))
			continue
		}
		if !errors.Is(err, shared.ErrNotFound) {
			return written, err
		}

		if err := store.Put(ctx, student); err != nil {
			return written, err
		}
		written++
	}
	return written, nil
}
