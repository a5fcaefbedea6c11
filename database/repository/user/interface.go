package userRepo

import "fitbook/models"

// UserRepository defines read access to user accounts. Registration and
// profile editing are owned by the identity service; the booking engine only
// needs to resolve the authenticated caller.
type UserRepository interface {
	// GetByID retrieves a user by its unique ID.
	GetByID(id string) (*models.User, error)
	// GetByEmail retrieves a user by its email address.
	GetByEmail(email string) (*models.User, error)
}
