package database

import (
	"github.com/google/uuid"
	"github.com/rpupo63/portfolio-api-backend/models"
	"gorm.io/gorm"
)

type GormProjectRepo struct {
	db *gorm.DB
}

func NewGormProjectRepo(db *gorm.DB) *GormProjectRepo {
	return &GormProjectRepo{db}
}

// FindAll returns projects matching q, with their skill associations
// preloaded, in insertion order.
func (r *GormProjectRepo) FindAll(q ProjectQuery) ([]*models.Project, error) {
	var projects []*models.Project
	tx := r.db.Preload("Skills.Skill").Order("created_at asc")
	if q.Status != nil {
		tx = tx.Where("status = ?", *q.Status)
	}
	if q.Featured != nil {
		tx = tx.Where("featured = ?", *q.Featured)
	}
	if q.Skip > 0 {
		tx = tx.Offset(q.Skip)
	}
	if q.Limit > 0 {
		tx = tx.Limit(q.Limit)
	}
	err := tx.Find(&projects).Error
	return projects, err
}

// FindByID returns a project by its ID with its skill associations preloaded
func (r *GormProjectRepo) FindByID(id uuid.UUID) (*models.Project, error) {
	var project models.Project
	err := r.db.Preload("Skills.Skill").First(&project, id).Error
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// Add inserts a new project into the database
func (r *GormProjectRepo) Add(project *models.Project) error {
	return r.db.Create(project).Error
}

// Update updates an existing project in the database
func (r *GormProjectRepo) Update(project *models.Project) error {
	return r.db.Save(project).Error
}

// Delete removes a project by id. Association rows go with it; skill rows
// stay, orphaned skills are permitted.
func (r *GormProjectRepo) Delete(id uuid.UUID) error {
	return r.db.Select("Skills").Delete(&models.Project{ID: id}).Error
}
