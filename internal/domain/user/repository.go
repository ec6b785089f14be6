package user

import "context"

// Repository is the persistence port for user accounts.
type Repository interface {
	Save(ctx context.Context, user *User) error
	Update(ctx context.Context, user *User) error
	// Delete removes the row permanently. Callers must first verify the
	// user has no associated tickets.
	Delete(ctx context.Context, userID uint) error
	FindByID(ctx context.Context, userID uint) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	ListActive(ctx context.Context) ([]*User, error)
	ListDeleted(ctx context.Context) ([]*User, error)
	// ListTechnicians returns active users carrying the assignable-technician
	// capability.
	ListTechnicians(ctx context.Context) ([]*User, error)
}
