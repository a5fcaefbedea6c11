package trainerRepo

import (
	"fitbook/models"

	"go.mongodb.org/mongo-driver/bson"
)

// TrainerRepository defines read access to trainer records. Profile CRUD is
// managed by a separate service; the booking engine only consumes these reads.
type TrainerRepository interface {
	// GetByID retrieves a trainer by its unique ID.
	GetByID(id string) (*models.Trainer, error)
	// GetByIDWithProjection retrieves a trainer by ID with a projection.
	GetByIDWithProjection(id string, projection bson.M) (*models.Trainer, error)
}
