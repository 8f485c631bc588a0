package services

import (
	"fmt"
	"strings"

	"github.com/rpupo63/portfolio-api-backend/errs"
)

// maxSkillNameLength bounds normalized skill names; the skills.name column is
// sized accordingly.
const maxSkillNameLength = 50

// NormalizeSkillName canonicalizes a raw skill name to its storage and
// comparison form: trimmed of surrounding whitespace and lowercased. All skill
// lookups key on the normalized form; raw user input is never compared
// against stored names directly. Idempotent.
func NormalizeSkillName(raw string) (string, error) {
	normalized := strings.ToLower(strings.TrimSpace(raw))
	if normalized == "" {
		return "", errs.NewInvalidSkillError("skill name is empty")
	}
	if len(normalized) > maxSkillNameLength {
		return "", errs.NewInvalidSkillError(fmt.Sprintf("skill name exceeds %d characters", maxSkillNameLength))
	}
	return normalized, nil
}
