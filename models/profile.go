package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Profile represents the portfolio owner. Deployments normally hold exactly
// one row; reads fall back to the first row when no identity is supplied.
type Profile struct {
	ID                uuid.UUID         `json:"id" db:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid();not null"`
	Name              string            `json:"name" db:"name" gorm:"type:text;not null"`
	Email             string            `json:"email" db:"email" gorm:"type:text;not null;uniqueIndex:idx_profile_email"`
	Title             *string           `json:"title,omitempty" db:"title" gorm:"type:text"`
	Location          *string           `json:"location,omitempty" db:"location" gorm:"type:text"`
	Bio               *string           `json:"bio,omitempty" db:"bio" gorm:"type:text"`
	GithubURL         *string           `json:"github_url,omitempty" db:"github_url" gorm:"type:text"`
	LinkedinURL       *string           `json:"linkedin_url,omitempty" db:"linkedin_url" gorm:"type:text"`
	TwitterURL        *string           `json:"twitter_url,omitempty" db:"twitter_url" gorm:"type:text"`
	PortfolioURL      *string           `json:"portfolio_url,omitempty" db:"portfolio_url" gorm:"type:text"`
	ProfilePictureURL *string           `json:"profile_picture_url,omitempty" db:"profile_picture_url" gorm:"type:text"`
	Metadata          datatypes.JSONMap `json:"metadata,omitempty" db:"metadata" gorm:"type:jsonb"`
	CreatedAt         time.Time         `json:"created_at" db:"created_at" gorm:"type:timestamptz;not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt         time.Time         `json:"updated_at" db:"updated_at" gorm:"type:timestamptz;not null;default:CURRENT_TIMESTAMP"`

	Projects []Project `json:"projects,omitempty" gorm:"foreignKey:ProfileID;references:ID"`
}
