package database

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rpupo63/portfolio-api-backend/errs"
	"github.com/rpupo63/portfolio-api-backend/models"
	"gorm.io/gorm"
)

// memoryStore is the map-backed fallback storage. Non-durable, reset on
// restart; useful for tests and demos, never the system of record. Projects
// here carry their skills in the denormalized SkillNames list in addition to
// association rows, covering the embedded-list storage shape.
type memoryStore struct {
	mu        sync.RWMutex
	profiles  map[uuid.UUID]models.Profile
	projects  map[uuid.UUID]models.Project
	skills    map[uuid.UUID]models.Skill
	assocs    map[uuid.UUID]models.ProjectSkill
	insertion map[uuid.UUID]int
	seq       int
}

// NewMemory initializes a Database backed entirely by in-process maps.
func NewMemory() Database {
	s := &memoryStore{
		profiles:  make(map[uuid.UUID]models.Profile),
		projects:  make(map[uuid.UUID]models.Project),
		skills:    make(map[uuid.UUID]models.Skill),
		assocs:    make(map[uuid.UUID]models.ProjectSkill),
		insertion: make(map[uuid.UUID]int),
	}
	return Database{
		profileRepo:      &memoryProfileRepo{s},
		projectRepo:      &memoryProjectRepo{s},
		skillRepo:        &memorySkillRepo{s},
		projectSkillRepo: &memoryProjectSkillRepo{s},
	}
}

// track records insertion order for stable listing. Callers hold the lock.
func (s *memoryStore) track(id uuid.UUID) {
	s.seq++
	s.insertion[id] = s.seq
}

func (s *memoryStore) byInsertion(ids []uuid.UUID) {
	sort.Slice(ids, func(i, j int) bool {
		return s.insertion[ids[i]] < s.insertion[ids[j]]
	})
}

// skillsForProject stitches association rows (with skill back-references)
// onto a copied project. Callers hold at least the read lock.
func (s *memoryStore) skillsForProject(projectID uuid.UUID) []models.ProjectSkill {
	var ids []uuid.UUID
	for id, a := range s.assocs {
		if a.ProjectID == projectID {
			ids = append(ids, id)
		}
	}
	s.byInsertion(ids)

	out := make([]models.ProjectSkill, 0, len(ids))
	for _, id := range ids {
		a := s.assocs[id]
		a.Skill = s.skills[a.SkillID]
		out = append(out, a)
	}
	return out
}

type memoryProfileRepo struct {
	s *memoryStore
}

func (r *memoryProfileRepo) First() (*models.Profile, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var ids []uuid.UUID
	for id := range r.s.profiles {
		ids = append(ids, id)
	}
	if len(ids) == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	r.s.byInsertion(ids)
	profile := r.s.profiles[ids[0]]
	return &profile, nil
}

func (r *memoryProfileRepo) FindByID(id uuid.UUID) (*models.Profile, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	profile, ok := r.s.profiles[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &profile, nil
}

func (r *memoryProfileRepo) FindByEmail(email string) (*models.Profile, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, profile := range r.s.profiles {
		if profile.Email == email {
			p := profile
			return &p, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *memoryProfileRepo) Add(profile *models.Profile) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, existing := range r.s.profiles {
		if existing.Email == profile.Email {
			return errs.NewAlreadyExists("profile")
		}
	}
	if profile.ID == uuid.Nil {
		profile.ID = uuid.New()
	}
	now := time.Now().UTC()
	if profile.CreatedAt.IsZero() {
		profile.CreatedAt = now
	}
	profile.UpdatedAt = now
	r.s.profiles[profile.ID] = *profile
	r.s.track(profile.ID)
	return nil
}

func (r *memoryProfileRepo) Update(profile *models.Profile) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.profiles[profile.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	profile.UpdatedAt = time.Now().UTC()
	r.s.profiles[profile.ID] = *profile
	return nil
}

func (r *memoryProfileRepo) Delete(id uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	delete(r.s.profiles, id)
	return nil
}

type memoryProjectRepo struct {
	s *memoryStore
}

func (r *memoryProjectRepo) FindAll(q ProjectQuery) ([]*models.Project, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var ids []uuid.UUID
	for id, project := range r.s.projects {
		if q.Status != nil && project.Status != *q.Status {
			continue
		}
		if q.Featured != nil && project.Featured != *q.Featured {
			continue
		}
		ids = append(ids, id)
	}
	r.s.byInsertion(ids)

	if q.Skip > 0 {
		if q.Skip >= len(ids) {
			ids = nil
		} else {
			ids = ids[q.Skip:]
		}
	}
	if q.Limit > 0 && q.Limit < len(ids) {
		ids = ids[:q.Limit]
	}

	projects := make([]*models.Project, 0, len(ids))
	for _, id := range ids {
		project := r.s.projects[id]
		project.Skills = r.s.skillsForProject(id)
		projects = append(projects, &project)
	}
	return projects, nil
}

func (r *memoryProjectRepo) FindByID(id uuid.UUID) (*models.Project, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	project, ok := r.s.projects[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	project.Skills = r.s.skillsForProject(id)
	return &project, nil
}

func (r *memoryProjectRepo) Add(project *models.Project) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if project.ID == uuid.Nil {
		project.ID = uuid.New()
	}
	now := time.Now().UTC()
	if project.CreatedAt.IsZero() {
		project.CreatedAt = now
	}
	project.UpdatedAt = now

	stored := *project
	stored.Skills = nil
	r.s.projects[project.ID] = stored
	r.s.track(project.ID)
	return nil
}

func (r *memoryProjectRepo) Update(project *models.Project) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.projects[project.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	project.UpdatedAt = time.Now().UTC()

	stored := *project
	stored.Skills = nil
	r.s.projects[project.ID] = stored
	return nil
}

func (r *memoryProjectRepo) Delete(id uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	delete(r.s.projects, id)
	// Associations go with the project; skill rows stay.
	for assocID, a := range r.s.assocs {
		if a.ProjectID == id {
			delete(r.s.assocs, assocID)
		}
	}
	return nil
}

type memorySkillRepo struct {
	s *memoryStore
}

func (r *memorySkillRepo) FindAll() ([]*models.Skill, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var ids []uuid.UUID
	for id := range r.s.skills {
		ids = append(ids, id)
	}
	r.s.byInsertion(ids)

	skills := make([]*models.Skill, 0, len(ids))
	for _, id := range ids {
		skill := r.s.skills[id]
		skills = append(skills, &skill)
	}
	sort.Slice(skills, func(i, j int) bool { return skills[i].Name < skills[j].Name })
	return skills, nil
}

func (r *memorySkillRepo) FindByName(name string) (*models.Skill, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, skill := range r.s.skills {
		if skill.Name == name {
			s := skill
			return &s, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *memorySkillRepo) Add(skill *models.Skill) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, existing := range r.s.skills {
		if existing.Name == skill.Name {
			return errs.NewAlreadyExists("skill")
		}
	}
	if skill.ID == uuid.Nil {
		skill.ID = uuid.New()
	}
	r.s.skills[skill.ID] = *skill
	r.s.track(skill.ID)
	return nil
}

func (r *memorySkillRepo) TopByProjectCount(limit int) ([]models.SkillWithCount, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	counts := make(map[uuid.UUID]int)
	for _, a := range r.s.assocs {
		counts[a.SkillID]++
	}

	ranked := make([]models.SkillWithCount, 0, len(counts))
	for skillID, count := range counts {
		skill := r.s.skills[skillID]
		ranked = append(ranked, models.SkillWithCount{
			ID:           skill.ID,
			Name:         skill.Name,
			ProjectCount: count,
		})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].ProjectCount != ranked[j].ProjectCount {
			return ranked[i].ProjectCount > ranked[j].ProjectCount
		}
		return ranked[i].Name < ranked[j].Name
	})
	if limit > 0 && limit < len(ranked) {
		ranked = ranked[:limit]
	}
	return ranked, nil
}

type memoryProjectSkillRepo struct {
	s *memoryStore
}

func (r *memoryProjectSkillRepo) FindByProject(projectID uuid.UUID) ([]*models.ProjectSkill, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	assocs := r.s.skillsForProject(projectID)
	out := make([]*models.ProjectSkill, 0, len(assocs))
	for i := range assocs {
		a := assocs[i]
		out = append(out, &a)
	}
	return out, nil
}

func (r *memoryProjectSkillRepo) Find(projectID, skillID uuid.UUID) (*models.ProjectSkill, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, a := range r.s.assocs {
		if a.ProjectID == projectID && a.SkillID == skillID {
			assoc := a
			return &assoc, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *memoryProjectSkillRepo) Add(assoc *models.ProjectSkill) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, existing := range r.s.assocs {
		if existing.ProjectID == assoc.ProjectID && existing.SkillID == assoc.SkillID {
			return errs.NewAlreadyExists("project skill")
		}
	}
	if assoc.ID == uuid.Nil {
		assoc.ID = uuid.New()
	}
	stored := *assoc
	stored.Skill = models.Skill{}
	r.s.assocs[assoc.ID] = stored
	r.s.track(assoc.ID)
	return nil
}

func (r *memoryProjectSkillRepo) Delete(projectID, skillID uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for id, a := range r.s.assocs {
		if a.ProjectID == projectID && a.SkillID == skillID {
			delete(r.s.assocs, id)
		}
	}
	return nil
}
