package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Project represents a portfolio work item.
//
// Skill associations live in two interchangeable shapes: the normalized join
// rows in Skills (the system of record on the relational backend, carrying
// per-project proficiency) and the denormalized SkillNames JSON array (used
// by the in-memory backend and legacy rows). Callers never match against
// either field directly; they go through services.EffectiveSkills.
type Project struct {
	ID          uuid.UUID                   `json:"id" db:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid();not null"`
	Title       string                      `json:"title" db:"title" gorm:"type:text;not null"`
	Description string                      `json:"description" db:"description" gorm:"type:text;not null"`
	GithubURL   *string                     `json:"github_url,omitempty" db:"github_url" gorm:"type:text"`
	DemoURL     *string                     `json:"demo_url,omitempty" db:"demo_url" gorm:"type:text"`
	ImageURL    *string                     `json:"image_url,omitempty" db:"image_url" gorm:"type:text"`
	Featured    bool                        `json:"featured" db:"featured" gorm:"not null;default:false;index:idx_project_featured"`
	Status      ProjectStatus               `json:"status" db:"status" gorm:"type:text;not null;default:'active';index:idx_project_status"`
	Metadata    datatypes.JSONMap           `json:"metadata,omitempty" db:"metadata" gorm:"type:jsonb"`
	SkillNames  datatypes.JSONSlice[string] `json:"skill_names,omitempty" db:"skill_names" gorm:"type:jsonb;index:idx_project_skill_names,type:gin"`
	ProfileID   *uuid.UUID                  `json:"profile_id,omitempty" db:"profile_id" gorm:"type:uuid;index:idx_project_profile_id"`
	CreatedAt   time.Time                   `json:"created_at" db:"created_at" gorm:"type:timestamptz;not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt   time.Time                   `json:"updated_at" db:"updated_at" gorm:"type:timestamptz;not null;default:CURRENT_TIMESTAMP"`

	Skills []ProjectSkill `json:"skills,omitempty" gorm:"foreignKey:ProjectID;references:ID;constraint:OnDelete:CASCADE"`
}
