package models

import "helpdesk/internal/shared/constants"

type UserModel struct {
	ID           uint   `gorm:"primaryKey"`
	Name         string `gorm:"column:nome;size:100;not null"`
	Email        string `gorm:"size:120;uniqueIndex;not null"`
	PasswordHash string `gorm:"column:senha_hash;size:255;not null"`
	Capabilities string `gorm:"type:json"`
	Active       bool   `gorm:"column:ativo;not null;default:true"`
	DeletedAt    *int64 `gorm:"column:excluido_em;index"`
	DeletedBy    *uint  `gorm:"column:excluido_por"`
	RegisteredAt int64  `gorm:"column:data_cadastro;not null"`
	LastAccessAt *int64 `gorm:"column:ultimo_acesso"`
	UpdatedAt    int64  `gorm:"column:atualizado_em;autoUpdateTime:milli;not null"`

	// Note: No foreign key constraints or associations.
	// All relationships are managed by application business logic.
}

func (UserModel) TableName() string {
	return constants.TableUsers
}
