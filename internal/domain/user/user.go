package user

import (
	"fmt"
	"strings"
	"time"
)

// Deletion records the soft-delete state of an account. A nil Deletion means
// the account was never soft-deleted. The email column is left untouched so
// restoring an account recovers it verbatim.
type Deletion struct {
	At time.Time
	By uint
}

// User is the account aggregate. Tickets reference users through two
// independent foreign keys (creator and technician); those relations are
// owned by the ticket side.
type User struct {
	id           uint
	name         string
	email        string
	passwordHash string
	capabilities Capabilities
	active       bool
	deletion     *Deletion
	registeredAt time.Time
	lastAccessAt *time.Time
	updatedAt    time.Time
}

// NewUser creates an active user with the given capability set. The password
// hash must already be computed by the caller.
func NewUser(name, email, passwordHash string, capabilities Capabilities) (*User, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}
	if err := validateEmail(email); err != nil {
		return nil, err
	}
	if len(passwordHash) == 0 {
		return nil, fmt.Errorf("password hash is required")
	}

	now := time.Now().UTC()
	return &User{
		name:         name,
		email:        email,
		passwordHash: passwordHash,
		capabilities: capabilities,
		active:       true,
		registeredAt: now,
		updatedAt:    now,
	}, nil
}

// ReconstructUser rebuilds a user from persistence.
func ReconstructUser(
	id uint,
	name string,
	email string,
	passwordHash string,
	capabilities Capabilities,
	active bool,
	deletion *Deletion,
	registeredAt time.Time,
	lastAccessAt *time.Time,
	updatedAt time.Time,
) (*User, error) {
	if id == 0 {
		return nil, fmt.Errorf("user ID cannot be zero")
	}
	if len(name) == 0 {
		return nil, fmt.Errorf("name is required")
	}
	if len(email) == 0 {
		return nil, fmt.Errorf("email is required")
	}

	return &User{
		id:           id,
		name:         name,
		email:        email,
		passwordHash: passwordHash,
		capabilities: capabilities,
		active:       active,
		deletion:     deletion,
		registeredAt: registeredAt,
		lastAccessAt: lastAccessAt,
		updatedAt:    updatedAt,
	}, nil
}

func (u *User) ID() uint {
	return u.id
}

func (u *User) Name() string {
	return u.name
}

func (u *User) Email() string {
	return u.email
}

func (u *User) PasswordHash() string {
	return u.passwordHash
}

func (u *User) Capabilities() Capabilities {
	capsCopy := make(Capabilities, len(u.capabilities))
	copy(capsCopy, u.capabilities)
	return capsCopy
}

func (u *User) Has(c Capability) bool {
	return u.capabilities.Has(c)
}

func (u *User) IsActive() bool {
	return u.active
}

func (u *User) Deletion() *Deletion {
	return u.deletion
}

func (u *User) IsDeleted() bool {
	return u.deletion != nil
}

func (u *User) RegisteredAt() time.Time {
	return u.registeredAt
}

func (u *User) LastAccessAt() *time.Time {
	return u.lastAccessAt
}

func (u *User) UpdatedAt() time.Time {
	return u.updatedAt
}

func (u *User) RoleLabel() string {
	return u.capabilities.RoleLabel()
}

func (u *User) SetID(id uint) error {
	if u.id != 0 {
		return fmt.Errorf("user ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("user ID cannot be zero")
	}
	u.id = id
	return nil
}

// UpdateProfile changes the display name and email. Email collision against
// other accounts is checked by the caller before applying.
func (u *User) UpdateProfile(name, email string) error {
	if err := validateName(name); err != nil {
		return err
	}
	if err := validateEmail(email); err != nil {
		return err
	}

	u.name = name
	u.email = email
	u.updatedAt = time.Now().UTC()
	return nil
}

// ChangePasswordHash replaces the stored credential hash.
func (u *User) ChangePasswordHash(hash string) error {
	if len(hash) == 0 {
		return fmt.Errorf("password hash is required")
	}
	u.passwordHash = hash
	u.updatedAt = time.Now().UTC()
	return nil
}

// GrantCapabilities replaces the capability set.
func (u *User) GrantCapabilities(capabilities Capabilities) {
	u.capabilities = capabilities
	u.updatedAt = time.Now().UTC()
}

// RecordAccess stamps the last-access time.
func (u *User) RecordAccess() {
	now := time.Now().UTC()
	u.lastAccessAt = &now
}

// Deactivate flips the account inactive without marking it deleted.
func (u *User) Deactivate() {
	u.active = false
	u.updatedAt = time.Now().UTC()
}

// Activate flips the account active.
func (u *User) Activate() {
	u.active = true
	u.updatedAt = time.Now().UTC()
}

// SoftDelete marks the account deleted and inactive. The email is preserved;
// restore recovers it exactly.
func (u *User) SoftDelete(deletedBy uint) error {
	if u.deletion != nil {
		return fmt.Errorf("user is already deleted")
	}
	if deletedBy == 0 {
		return fmt.Errorf("deleting user ID is required")
	}

	u.active = false
	u.deletion = &Deletion{At: time.Now().UTC(), By: deletedBy}
	u.updatedAt = time.Now().UTC()
	return nil
}

// Restore clears the deletion state and reactivates the account.
func (u *User) Restore() error {
	if u.active {
		return fmt.Errorf("user is already active")
	}

	u.active = true
	u.deletion = nil
	u.updatedAt = time.Now().UTC()
	return nil
}

func validateName(name string) error {
	if len(name) == 0 {
		return fmt.Errorf("name is required")
	}
	if len(name) > 100 {
		return fmt.Errorf("name exceeds maximum length of 100 characters")
	}
	return nil
}

func validateEmail(email string) error {
	if len(email) == 0 {
		return fmt.Errorf("email is required")
	}
	if len(email) > 120 {
		return fmt.Errorf("email exceeds maximum length of 120 characters")
	}
	at := strings.Index(email, "@")
	if at < 1 || at == len(email)-1 || !strings.Contains(email[at+1:], ".") {
		return fmt.Errorf("invalid email address")
	}
	return nil
}
