package model

import (
	"time"

	"gorm.io/gorm"
)

// BaseModel 基础审计字段
type BaseModel struct {
	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	CreatedBy *string   `gorm:"type:uuid" json:"created_by,omitempty"`
	UpdatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
	UpdatedBy *string   `gorm:"type:uuid" json:"updated_by,omitempty"`
}

// SoftDeleteModel 带软删除的基础模型
type SoftDeleteModel struct {
	BaseModel
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
	DeletedBy *string        `gorm:"type:uuid" json:"-"`
}

// VersionedModel 带乐观锁版本号的基础模型
// 更新时以 WHERE version = ? 保证并发安全，版本号从 1 开始
type VersionedModel struct {
	SoftDeleteModel
	Version int `gorm:"not null;default:1" json:"version"`
}
