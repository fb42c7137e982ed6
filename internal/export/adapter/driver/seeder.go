package driver

import (
	"context"

	"github.com/TundexSki/coursework-backend/internal/export/domain/model"
	apperrors "github.com/TundexSki/coursework-backend/internal/shared/errors"
	"github.com/TundexSki/coursework-backend/internal/shared/logger"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// LessonSeeder resets the lessons collection to a known catalogue
type LessonSeeder struct {
	collection *mongo.Collection
	logger     logger.Logger
}

// NewLessonSeeder creates a seeder for the lessons collection of db
func NewLessonSeeder(db *mongo.Database, log logger.Logger) *LessonSeeder {
	if log == nil {
		log = logger.NewNop()
	}
	return &LessonSeeder{
		collection: db.Collection(model.CollectionLessons),
		logger:     log.WithComponent("seeder"),
	}
}

// Seed deletes every lesson and inserts lessons, returning the inserted count
func (s *LessonSeeder) Seed(ctx context.Context, lessons []model.Lesson) (int, error) {
	deleted, err := s.collection.DeleteMany(ctx, bson.D{})
	if err != nil {
		return 0, apperrors.NewDatabaseError("Failed to clear lessons").WithCause(err).WithComponent("seeder")
	}
	s.logger.Debugf("Removed %d existing lessons", deleted.DeletedCount)

	if len(lessons) == 0 {
		return 0, nil
	}

	docs := make([]interface{}, len(lessons))
	for i := range lessons {
		docs[i] = lessons[i]
	}

	result, err := s.collection.InsertMany(ctx, docs)
	if err != nil {
		return 0, apperrors.NewDatabaseError("Failed to seed lessons").WithCause(err).WithComponent("seeder")
	}
	return len(result.InsertedIDs), nil
}
