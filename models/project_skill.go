package models

import "github.com/google/uuid"

// ProjectSkill is the association row linking a Project and a Skill,
// optionally carrying a per-project proficiency level.
type ProjectSkill struct {
	ID          uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid();not null"`
	ProjectID   uuid.UUID `json:"project_id" db:"project_id" gorm:"type:uuid;not null;index:idx_project_skill_project_id;uniqueIndex:idx_project_skill_unique;constraint:OnDelete:CASCADE"`
	SkillID     uuid.UUID `json:"skill_id" db:"skill_id" gorm:"type:uuid;not null;index:idx_project_skill_skill_id;uniqueIndex:idx_project_skill_unique"`
	Proficiency *string   `json:"proficiency,omitempty" db:"proficiency" gorm:"type:text"`

	Skill Skill `json:"skill,omitempty" gorm:"foreignKey:SkillID;references:ID"`
}
