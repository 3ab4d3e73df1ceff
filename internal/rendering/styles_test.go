package rendering

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/cv-builder/internal/types"
)

func TestStyleFor_EveryCatalogEntryHasAStyle(t *testing.T) {
	for _, info := range types.TemplateCatalog {
		t.Run(string(info.ID), func(t *testing.T) {
			style := StyleFor(info.ID)
			assert.Equal(t, info.ID, style.ID)
			assert.NotEmpty(t, style.Accent)
			assert.NotEmpty(t, style.FontFamily)
			require.Contains(t, []SkillSignal{SignalBar, SignalLabel}, style.Skill)
		})
	}
}

func TestStyleFor_UnknownFallsBackToDefault(t *testing.T) {
	assert.Equal(t, types.DefaultTemplate, StyleFor("neon").ID)
	assert.Equal(t, types.DefaultTemplate, StyleFor("").ID)
}
