package records

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"sirms/backend/internal/shared"
)

const studentsCollection = "students"

// MongoStore keeps student records in a MongoDB collection, one document per
// student with the normalized id as _id.
type MongoStore struct {
	col     *mongo.Collection
	timeout time.Duration
}

// NewMongoStore returns a Store backed by db's students collection.
func NewMongoStore(db *mongo.Database) *MongoStore {
	return &MongoStore{
		col:     db.Collection(studentsCollection),
		timeout: 10 * time.Second,
	}
}

func (s *MongoStore) Get(ctx context.Context, id string) (*shared.Student, error) {
	queryCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	var student shared.Student
	err := s.col.FindOne(queryCtx, bson.M{"_id": id}).Decode(&student)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("student %s: %w", id, shared.ErrNotFound)
		}
		return nil, fmt.Errorf("find student %s: %w", id, err)
	}
	normalizeResults(&student)
	return &student, nil
}

func (s *MongoStore) Put(ctx context.Context, student *shared.Student) error {
	if student == nil || student.ID == "" {
		return fmt.Errorf("put student without id: %w", shared.ErrInvalidInput)
	}

	queryCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	opts := options.Replace().SetUpsert(true)
	if _, err := s.col.ReplaceOne(queryCtx, bson.M{"_id": student.ID}, student, opts); err != nil {
		return fmt.Errorf("replace student %s: %w", student.ID, err)
	}
	return nil
}

func (s *MongoStore) Delete(ctx context.Context, id string) error {
	queryCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	result, err := s.col.DeleteOne(queryCtx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete student %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("student %s: %w", id, shared.ErrNotFound)
	}
	return nil
}

func (s *MongoStore) List(ctx context.Context) ([]*shared.Student, error) {
	queryCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	cursor, err := s.col.Find(queryCtx, bson.M{}, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list students: %w", err)
	}
	defer cursor.Close(queryCtx)

	var out []*shared.Student
	for cursor.Next(queryCtx) {
		var student shared.Student
		if err := cursor.Decode(&student); err != nil {
			return nil, fmt.Errorf("decode student: %w", err)
		}
		normalizeResults(&student)
		out = append(out, &student)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("iterate students: %w", err)
	}
	return out, nil
}

// normalizeResults restores empty levels, which decode as nil slices.
func normalizeResults(s *shared.Student) {
	if s.Results == nil {
		s.Results = make(map[string][]shared.CourseResult)
	}
	for level, courses := range s.Results {
		if courses == nil {
			s.Results[level] = []shared.CourseResult{}
		}
	}
}

// Drop removes the whole students collection.
func (s *MongoStore) Drop(ctx context.Context) error {
	queryCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	if err := s.col.Drop(queryCtx); err != nil {
		return fmt.Errorf("drop students: %w", err)
	}
	return nil
}
