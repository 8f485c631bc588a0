package services_test

import (
	"strings"
	"testing"

	"github.com/rpupo63/portfolio-api-backend/errs"
	"github.com/rpupo63/portfolio-api-backend/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeSkillName(t *testing.T) {
	t.Run("trims and lowercases", func(t *testing.T) {
		name, err := services.NormalizeSkillName("  Python ")
		require.NoError(t, err)
		assert.Equal(t, "python", name)
	})

	t.Run("is idempotent", func(t *testing.T) {
		for _, raw := range []string{"Go", "  FastAPI  ", "react", "C++"} {
			once, err := services.NormalizeSkillName(raw)
			require.NoError(t, err)
			twice, err := services.NormalizeSkillName(once)
			require.NoError(t, err)
			assert.Equal(t, once, twice)
		}
	})

	t.Run("rejects empty input", func(t *testing.T) {
		_, err := services.NormalizeSkillName("   ")
		require.Error(t, err)
		assert.True(t, errs.IsValidation(err))
	})

	t.Run("rejects names over 50 characters after trimming", func(t *testing.T) {
		_, err := services.NormalizeSkillName(strings.Repeat("x", 51))
		require.Error(t, err)
		assert.True(t, errs.IsValidation(err))

		// Exactly 50 is fine.
		name, err := services.NormalizeSkillName("  " + strings.Repeat("x", 50) + "  ")
		require.NoError(t, err)
		assert.Len(t, name, 50)
	})
}
