package database

import (
	"github.com/google/uuid"
	"github.com/rpupo63/portfolio-api-backend/models"
	"gorm.io/gorm"
)

// ProjectQuery carries the optional list filters understood by the store.
// Skill filtering is not a store concern; it runs over effective skill sets
// in the services layer.
type ProjectQuery struct {
	Status   *models.ProjectStatus
	Featured *bool
	Skip     int
	Limit    int
}

type ProfileRepo interface {
	First() (*models.Profile, error)
	FindByID(id uuid.UUID) (*models.Profile, error)
	FindByEmail(email string) (*models.Profile, error)
	Add(profile *models.Profile) error
	Update(profile *models.Profile) error
	Delete(id uuid.UUID) error
}

type ProjectRepo interface {
	FindAll(q ProjectQuery) ([]*models.Project, error)
	FindByID(id uuid.UUID) (*models.Project, error)
	Add(project *models.Project) error
	Update(project *models.Project) error
	Delete(id uuid.UUID) error
}

type SkillRepo interface {
	FindAll() ([]*models.Skill, error)
	FindByName(name string) (*models.Skill, error)
	Add(skill *models.Skill) error
	TopByProjectCount(limit int) ([]models.SkillWithCount, error)
}

type ProjectSkillRepo interface {
	FindByProject(projectID uuid.UUID) ([]*models.ProjectSkill, error)
	Find(projectID, skillID uuid.UUID) (*models.ProjectSkill, error)
	Add(assoc *models.ProjectSkill) error
	Delete(projectID, skillID uuid.UUID) error
}

// Database aggregates one repository per entity over a shared backend.
type Database struct {
	profileRepo      ProfileRepo
	projectRepo      ProjectRepo
	skillRepo        SkillRepo
	projectSkillRepo ProjectSkillRepo
}

// New initializes a Database with each repository using a shared GORM instance.
func New(db *gorm.DB) Database {
	return Database{
		profileRepo:      NewGormProfileRepo(db),
		projectRepo:      NewGormProjectRepo(db),
		skillRepo:        NewGormSkillRepo(db),
		projectSkillRepo: NewGormProjectSkillRepo(db),
	}
}

// Accessor methods for each repository

func (d Database) ProfileRepo() ProfileRepo {
	return d.profileRepo
}

func (d Database) ProjectRepo() ProjectRepo {
	return d.projectRepo
}

func (d Database) SkillRepo() SkillRepo {
	return d.skillRepo
}

func (d Database) ProjectSkillRepo() ProjectSkillRepo {
	return d.projectSkillRepo
}
