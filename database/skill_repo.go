package database

import (
	"github.com/rpupo63/portfolio-api-backend/models"
	"gorm.io/gorm"
)

type GormSkillRepo struct {
	db *gorm.DB
}

func NewGormSkillRepo(db *gorm.DB) *GormSkillRepo {
	return &GormSkillRepo{db}
}

// FindAll returns all skills from the database in insertion order
func (r *GormSkillRepo) FindAll() ([]*models.Skill, error) {
	var skills []*models.Skill
	err := r.db.Order("name asc").Find(&skills).Error
	return skills, err
}

// FindByName returns a skill by its normalized name. Callers are expected to
// pass names through services.NormalizeSkillName first.
func (r *GormSkillRepo) FindByName(name string) (*models.Skill, error) {
	var skill models.Skill
	err := r.db.Where("name = ?", name).First(&skill).Error
	if err != nil {
		return nil, err
	}
	return &skill, nil
}

// Add inserts a new skill. The unique index on name surfaces concurrent
// creates of the same normalized name as a duplicate-key error.
func (r *GormSkillRepo) Add(skill *models.Skill) error {
	return r.db.Create(skill).Error
}

// TopByProjectCount returns skills ranked by how many projects reference
// them, descending, limited to limit rows.
func (r *GormSkillRepo) TopByProjectCount(limit int) ([]models.SkillWithCount, error) {
	var ranked []models.SkillWithCount
	err := r.db.
		Table("skills").
		Select("skills.id, skills.name, count(project_skills.id) as project_count").
		Joins("join project_skills on project_skills.skill_id = skills.id").
		Group("skills.id, skills.name").
		Order("project_count desc, skills.name asc").
		Limit(limit).
		Scan(&ranked).Error
	return ranked, err
}
