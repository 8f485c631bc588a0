package database

import (
	"github.com/google/uuid"
	"github.com/rpupo63/portfolio-api-backend/models"
	"gorm.io/gorm"
)

type GormProfileRepo struct {
	db *gorm.DB
}

func NewGormProfileRepo(db *gorm.DB) *GormProfileRepo {
	return &GormProfileRepo{db}
}

// First returns the oldest profile row. Reads default to this row when no
// identity is supplied with the request.
func (r *GormProfileRepo) First() (*models.Profile, error) {
	var profile models.Profile
	err := r.db.Order("created_at asc").First(&profile).Error
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// FindByID returns a profile by its ID
func (r *GormProfileRepo) FindByID(id uuid.UUID) (*models.Profile, error) {
	var profile models.Profile
	err := r.db.First(&profile, id).Error
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// FindByEmail returns a profile by its unique email
func (r *GormProfileRepo) FindByEmail(email string) (*models.Profile, error) {
	var profile models.Profile
	err := r.db.Where("email = ?", email).First(&profile).Error
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// Add inserts a new profile into the database
func (r *GormProfileRepo) Add(profile *models.Profile) error {
	return r.db.Create(profile).Error
}

// Update updates an existing profile in the database
func (r *GormProfileRepo) Update(profile *models.Profile) error {
	return r.db.Save(profile).Error
}

// Delete removes a profile from the database by id
func (r *GormProfileRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Profile{}, id).Error
}
