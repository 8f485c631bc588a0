package services

import (
	"github.com/rpupo63/portfolio-api-backend/database"
	"github.com/rpupo63/portfolio-api-backend/errs"
	"github.com/rpupo63/portfolio-api-backend/models"
)

// EffectiveSkills returns the normalized, de-duplicated skill-name list for a
// project, independent of how the skills are stored: normalized association
// rows are read first, then the denormalized SkillNames list. Order follows
// first appearance. Entries that fail normalization are skipped.
func EffectiveSkills(p *models.Project) []string {
	seen := make(map[string]struct{})
	names := []string{}

	add := func(raw string) {
		name, err := NormalizeSkillName(raw)
		if err != nil {
			return
		}
		if _, ok := seen[name]; ok {
			return
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}

	for i := range p.Skills {
		add(p.Skills[i].Skill.Name)
	}
	for _, raw := range p.SkillNames {
		add(raw)
	}
	return names
}

// SkillResolver maintains the project/skill many-to-many relationship over
// the skill and association repositories.
type SkillResolver struct {
	skills database.SkillRepo
	assocs database.ProjectSkillRepo
}

func NewSkillResolver(skills database.SkillRepo, assocs database.ProjectSkillRepo) SkillResolver {
	return SkillResolver{skills: skills, assocs: assocs}
}

// GetOrCreateSkill returns the skill row for the normalized form of raw,
// creating it when absent. When two requests race to create the same new
// name, the loser catches the unique-constraint violation and re-fetches the
// now-existing row; the conflict never reaches the caller.
func (r SkillResolver) GetOrCreateSkill(raw string) (*models.Skill, error) {
	name, err := NormalizeSkillName(raw)
	if err != nil {
		return nil, err
	}

	skill, err := r.skills.FindByName(name)
	if err == nil {
		return skill, nil
	}
	if !errs.IsRecordNotFound(err) {
		return nil, errs.NewDatabaseError("find", "skill", err)
	}

	created := &models.Skill{Name: name}
	if err := r.skills.Add(created); err != nil {
		if errs.IsDuplicateKey(err) {
			skill, err = r.skills.FindByName(name)
			if err != nil {
				return nil, errs.NewDatabaseError("find", "skill", err)
			}
			return skill, nil
		}
		return nil, errs.NewDatabaseError("create", "skill", err)
	}
	return created, nil
}

// AttachSkill associates the named skill with the project, creating the skill
// row on demand. Attaching a skill that is already associated is a no-op.
func (r SkillResolver) AttachSkill(project *models.Project, rawSkillName string, proficiency *string) error {
	skill, err := r.GetOrCreateSkill(rawSkillName)
	if err != nil {
		return err
	}

	if _, err := r.assocs.Find(project.ID, skill.ID); err == nil {
		return nil
	} else if !errs.IsRecordNotFound(err) {
		return errs.NewDatabaseError("find", "project skill", err)
	}

	assoc := &models.ProjectSkill{
		ProjectID:   project.ID,
		SkillID:     skill.ID,
		Proficiency: proficiency,
	}
	if err := r.assocs.Add(assoc); err != nil {
		// A concurrent attach of the same pair won the race; same outcome.
		if errs.IsDuplicateKey(err) {
			return nil
		}
		return errs.NewDatabaseError("create", "project skill", err)
	}
	return nil
}

// DetachSkill removes the project's association with the named skill. The
// skill row itself is never deleted; orphan skills are permitted. For the
// embedded-list shape the entry is stripped from SkillNames on the passed
// struct, and persisting that change is the caller's concern.
func (r SkillResolver) DetachSkill(project *models.Project, rawSkillName string) error {
	name, err := NormalizeSkillName(rawSkillName)
	if err != nil {
		return err
	}

	if len(project.SkillNames) > 0 {
		kept := project.SkillNames[:0]
		for _, raw := range project.SkillNames {
			if stored, err := NormalizeSkillName(raw); err == nil && stored == name {
				continue
			}
			kept = append(kept, raw)
		}
		project.SkillNames = kept
	}

	skill, err := r.skills.FindByName(name)
	if err != nil {
		if errs.IsRecordNotFound(err) {
			return nil
		}
		return errs.NewDatabaseError("find", "skill", err)
	}

	if err := r.assocs.Delete(project.ID, skill.ID); err != nil {
		return errs.NewDatabaseError("delete", "project skill", err)
	}
	return nil
}
