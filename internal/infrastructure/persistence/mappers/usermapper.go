package mappers

import (
	"encoding/json"
	"time"

	"helpdesk/internal/domain/user"
	"helpdesk/internal/infrastructure/persistence/models"
)

// UserMapper handles the conversion between User domain entities and persistence models.
type UserMapper interface {
	// ToModel converts a user domain entity to a persistence model.
	ToModel(u *user.User) *models.UserModel

	// ToDomain converts a user persistence model to a domain entity.
	ToDomain(model *models.UserModel) (*user.User, error)
}

// UserMapperImpl is the concrete implementation of UserMapper.
type UserMapperImpl struct{}

// NewUserMapper creates a new UserMapper.
func NewUserMapper() UserMapper {
	return &UserMapperImpl{}
}

// ToModel converts a user domain entity to a persistence model.
func (m *UserMapperImpl) ToModel(u *user.User) *models.UserModel {
	model := &models.UserModel{
		ID:           u.ID(),
		Name:         u.Name(),
		Email:        u.Email(),
		PasswordHash: u.PasswordHash(),
		Active:       u.IsActive(),
		RegisteredAt: u.RegisteredAt().UnixMilli(),
		UpdatedAt:    u.UpdatedAt().UnixMilli(),
	}

	if caps := u.Capabilities(); len(caps) > 0 {
		capsJSON, _ := json.Marshal(caps.Strings())
		model.Capabilities = string(capsJSON)
	}

	if d := u.Deletion(); d != nil {
		deletedAt := d.At.UnixMilli()
		deletedBy := d.By
		model.DeletedAt = &deletedAt
		model.DeletedBy = &deletedBy
	}

	if last := u.LastAccessAt(); last != nil {
		lastMillis := last.UnixMilli()
		model.LastAccessAt = &lastMillis
	}

	return model
}

// ToDomain converts a user persistence model to a domain entity.
func (m *UserMapperImpl) ToDomain(model *models.UserModel) (*user.User, error) {
	var rawCaps []string
	if model.Capabilities != "" {
		if err := json.Unmarshal([]byte(model.Capabilities), &rawCaps); err != nil {
			return nil, err
		}
	}
	capabilities, err := user.NewCapabilities(rawCaps)
	if err != nil {
		return nil, err
	}

	var deletion *user.Deletion
	if model.DeletedAt != nil {
		deletion = &user.Deletion{At: time.UnixMilli(*model.DeletedAt)}
		if model.DeletedBy != nil {
			deletion.By = *model.DeletedBy
		}
	}

	var lastAccess *time.Time
	if model.LastAccessAt != nil {
		t := time.UnixMilli(*model.LastAccessAt)
		lastAccess = &t
	}

	return user.ReconstructUser(
		model.ID,
		model.Name,
		model.Email,
		model.PasswordHash,
		capabilities,
		model.Active,
		deletion,
		time.UnixMilli(model.RegisteredAt),
		lastAccess,
		time.UnixMilli(model.UpdatedAt),
	)
}
