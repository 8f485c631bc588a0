package models

import "github.com/google/uuid"

// Skill is a named tag. Name is always stored in normalized form
// (trimmed, lowercased) and is unique at that form.
type Skill struct {
	ID          uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid();not null"`
	Name        string    `json:"name" db:"name" gorm:"type:text;not null;uniqueIndex:idx_skill_name"`
	Description *string   `json:"description,omitempty" db:"description" gorm:"type:text"`
}

// SkillWithCount is a Skill annotated with the number of projects it is
// associated with, as returned by the top-skills ranking.
type SkillWithCount struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	ProjectCount int       `json:"project_count"`
}
