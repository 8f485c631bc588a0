package database

import (
	"github.com/google/uuid"
	"github.com/rpupo63/portfolio-api-backend/models"
	"gorm.io/gorm"
)

type GormProjectSkillRepo struct {
	db *gorm.DB
}

func NewGormProjectSkillRepo(db *gorm.DB) *GormProjectSkillRepo {
	return &GormProjectSkillRepo{db}
}

// FindByProject returns all skill associations for a project with the skill
// rows preloaded
func (r *GormProjectSkillRepo) FindByProject(projectID uuid.UUID) ([]*models.ProjectSkill, error) {
	var assocs []*models.ProjectSkill
	err := r.db.Preload("Skill").Where("project_id = ?", projectID).Find(&assocs).Error
	return assocs, err
}

// Find returns the association row for a project/skill pair
func (r *GormProjectSkillRepo) Find(projectID, skillID uuid.UUID) (*models.ProjectSkill, error) {
	var assoc models.ProjectSkill
	err := r.db.Where("project_id = ? AND skill_id = ?", projectID, skillID).First(&assoc).Error
	if err != nil {
		return nil, err
	}
	return &assoc, nil
}

// Add inserts a new project/skill association
func (r *GormProjectSkillRepo) Add(assoc *models.ProjectSkill) error {
	return r.db.Create(assoc).Error
}

// Delete removes the association for a project/skill pair. The skill row
// itself is never touched.
func (r *GormProjectSkillRepo) Delete(projectID, skillID uuid.UUID) error {
	return r.db.Where("project_id = ? AND skill_id = ?", projectID, skillID).Delete(&models.ProjectSkill{}).Error
}
