// Package records owns the student record store: the Store abstraction and
// its implementations, the Registry that performs every record operation, and
// the gRPC service that exposes the Registry to the gateway.
package records

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"sirms/backend/internal/auth"
	"sirms/backend/internal/grade"
	"sirms/backend/internal/shared"
)

// Registry performs record operations on behalf of an explicit caller
// identity. All operations on one Registry are serialized.
type Registry struct {
	mu         sync.Mutex
	store      Store
	credential auth.Credential
	logger     *zap.Logger
}

// NewRegistry wraps store. Passwords are compared with plaintext equality.
func NewRegistry(store Store, logger *zap.Logger) *Registry {
	return NewRegistryWithCredential(store, auth.PlaintextCredential{}, logger)
}

// NewRegistryWithCredential wraps store with a custom password check.
func NewRegistryWithCredential(store Store, credential auth.Credential, logger *zap.Logger) *Registry {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Registry{store: store, credential: credential, logger: logger}
}

func requireAdmin(actor shared.Identity, op string) error {
	if !actor.IsAdmin() {
		return fmt.Errorf("%s requires admin: %w", op, shared.ErrUnauthorized)
	}
	return nil
}

func requireViewer(actor shared.Identity, id, op string) error {
	if !actor.CanView(id) {
		return fmt.Errorf("%s of %s: %w", op, id, shared.ErrUnauthorized)
	}
	return nil
}

// Register creates a student with the default password and a single empty
// level. Registering an existing id fails with ErrAlreadyExists and leaves the
// stored record untouched.
func (r *Registry) Register(ctx context.Context, actor shared.Identity, id, name, level, department string) (*shared.Student, error) {
	if err := requireAdmin(actor, "register"); err != nil {
		return nil, err
	}
	id = shared.NormalizeID(id)
	if id == "" {
		return nil, fmt.Errorf("register: empty student id: %w", shared.ErrInvalidInput)
	}
	if level == "" {
		return nil, fmt.Errorf("register %s: empty level: %w", id, shared.ErrInvalidInput)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := r.store.Get(ctx, id)
	switch {
	case err == nil:
		return nil, fmt.Errorf("student %s: %w", id, shared.ErrAlreadyExists)
	case !errors.Is(err, shared.ErrNotFound):
		return nil, err
	}

	student := &shared.Student{
		ID:         id,
		Name:       name,
		Password:   shared.DefaultPassword,
		Level:      level,
		Department: department,
		Results:    map[string][]shared.CourseResult{level: {}},
	}
	if err := r.store.Put(ctx, student); err != nil {
		return nil, err
	}

	r.logger.Info("student registered", zap.String("student_id", id), zap.String("level", level))
	return student.Clone(), nil
}

// Get returns the student record. Students may only read their own record.
func (r *Registry) Get(ctx context.Context, actor shared.Identity, id string) (*shared.Student, error) {
	id = shared.NormalizeID(id)
	if err := requireViewer(actor, id, "get"); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	return r.store.Get(ctx, id)
}

// List returns every student ordered by id.
func (r *Registry) List(ctx context.Context, actor shared.Identity) ([]*shared.Student, error) {
	if err := requireAdmin(actor, "list"); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	return r.store.List(ctx)
}

// Delete removes the student and all of its results.
func (r *Registry) Delete(ctx context.Context, actor shared.Identity, id string) error {
	if err := requireAdmin(actor, "delete"); err != nil {
		return err
	}
	id = shared.NormalizeID(id)

	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.store.Delete(ctx, id); err != nil {
		return err
	}
	r.logger.Info("student deleted", zap.String("student_id", id))
	return nil
}

// AppendResult appends result to the given level, creating the level if needed.
func (r *Registry) AppendResult(ctx context.Context, actor shared.Identity, id, level string, result shared.CourseResult) error {
	if err := requireAdmin(actor, "append result"); err != nil {
		return err
	}
	id = shared.NormalizeID(id)

	r.mu.Lock()
	defer r.mu.Unlock()

	student, err := r.store.Get(ctx, id)
	if err != nil {
		return err
	}
	if student.Results == nil {
		student.Results = make(map[string][]shared.CourseResult)
	}
	student.Results[level] = append(student.Results[level], result)
	if err := r.store.Put(ctx, student); err != nil {
		return err
	}

	r.logger.Info("result uploaded",
		zap.String("student_id", id),
		zap.String("level", level),
		zap.String("course", result.Course),
		zap.String("grade", result.Grade))
	return nil
}

// UploadResult grades score and appends the resulting course entry.
func (r *Registry) UploadResult(ctx context.Context, actor shared.Identity, id, level, course string, units int, score float64) (shared.CourseResult, error) {
	if err := requireAdmin(actor, "upload result"); err != nil {
		return shared.CourseResult{}, err
	}
	if units <= 0 {
		return shared.CourseResult{}, fmt.Errorf("upload result for %s: units must be positive, got %d: %w",
			shared.NormalizeID(id), units, shared.ErrInvalidInput)
	}
	result := grade.NewCourseResult(course, units, score)
	if err := r.AppendResult(ctx, actor, id, level, result); err != nil {
		return shared.CourseResult{}, err
	}
	return result, nil
}

// DeleteResult removes the course entry at position index of level. Later
// entries shift down by one. An index outside the level fails with
// ErrIndexOutOfRange and leaves the level unchanged.
func (r *Registry) DeleteResult(ctx context.Context, actor shared.Identity, id, level string, index int) (shared.CourseResult, error) {
	if err := requireAdmin(actor, "delete result"); err != nil {
		return shared.CourseResult{}, err
	}
	id = shared.NormalizeID(id)

	r.mu.Lock()
	defer r.mu.Unlock()

	student, err := r.store.Get(ctx, id)
	if err != nil {
		return shared.CourseResult{}, err
	}
	courses, ok := student.Results[level]
	if !ok {
		return shared.CourseResult{}, fmt.Errorf("level %s of %s: %w", level, id, shared.ErrNotFound)
	}
	if index < 0 || index >= len(courses) {
		return shared.CourseResult{}, fmt.Errorf("index %d in %s (%d entries): %w", index, level, len(courses), shared.ErrIndexOutOfRange)
	}

	removed := courses[index]
	student.Results[level] = append(courses[:index:index], courses[index+1:]...)
	if err := r.store.Put(ctx, student); err != nil {
		return shared.CourseResult{}, err
	}

	r.logger.Info("course entry removed",
		zap.String("student_id", id),
		zap.String("level", level),
		zap.Int("index", index),
		zap.String("course", removed.Course))
	return removed, nil
}

// VerifyCredentials reports whether password matches the stored password of
// the student. Unknown ids simply fail verification.
func (r *Registry) VerifyCredentials(ctx context.Context, id, password string) (bool, error) {
	id = shared.NormalizeID(id)

	r.mu.Lock()
	defer r.mu.Unlock()

	student, err := r.store.Get(ctx, id)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return r.credential.Verify(student.Password, password), nil
}

// Transcript returns the record together with a freshly computed summary.
func (r *Registry) Transcript(ctx context.Context, actor shared.Identity, id string) (*shared.Student, shared.Summary, error) {
	student, err := r.Get(ctx, actor, id)
	if err != nil {
		return nil, shared.Summary{}, err
	}
	return student, grade.Summarize(student), nil
}
