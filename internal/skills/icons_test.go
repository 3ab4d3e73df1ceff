// Package skills provides the decorative glyph resolver for skill names.
package skills

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIcon_CaseInsensitive(t *testing.T) {
	assert.Equal(t, Icon("JavaScript Developer"), Icon("javascript developer"))
	assert.Equal(t, "🟨", Icon("JavaScript Developer"))
}

func TestIcon_EmptyInput(t *testing.T) {
	assert.Equal(t, DefaultIcon, Icon(""))
}

func TestIcon_UnknownSkill(t *testing.T) {
	assert.Equal(t, DefaultIcon, Icon("underwater basket weaving"))
}

func TestIcon_RuleOrderJavaScriptBeforeJava(t *testing.T) {
	// "javascript" contains "java"; the javascript rule is ordered first and
	// must win for names carrying both substrings.
	assert.Equal(t, "🟨", Icon("javascript"))
	assert.Equal(t, "☕", Icon("java"))
}

func TestIcon_ShortAliasesMatchBySubstring(t *testing.T) {
	// Short aliases like "go" and "js" match anywhere in the name. The rule
	// order is load-bearing: "mongodb" contains "go" and resolves through the
	// earlier Go rule, and "vue.js" resolves through the javascript rule.
	assert.Equal(t, "🐹", Icon("Go"))
	assert.Equal(t, "🐹", Icon("MongoDB"))
	assert.Equal(t, "🟨", Icon("Vue.js"))
	assert.Equal(t, "💚", Icon("Vue"))
}

func TestIcon_Deterministic(t *testing.T) {
	for i := 0; i < 10; i++ {
		assert.Equal(t, "🐍", Icon("Python"))
	}
}

func TestIcon_Table(t *testing.T) {
	tests := []struct {
		name  string
		skill string
		want  string
	}{
		{"react", "React", "⚛️"},
		{"vue", "Vue", "💚"},
		{"angular", "Angular", "🅰️"},
		{"typescript", "TypeScript", "🔷"},
		{"rust", "Rust", "🦀"},
		{"kotlin", "Kotlin", "🎯"},
		{"html", "HTML5", "🌐"},
		{"tailwind", "Tailwind", "🌊"},
		{"mysql", "MySQL", "🐬"},
		{"redis", "Redis", "🔴"},
		{"docker", "Docker Compose", "🐳"},
		{"kubernetes", "Kubernetes", "☸️"},
		{"aws", "AWS Lambda", "☁️"},
		{"firebase", "Firebase", "🔥"},
		{"android", "Android SDK", "🤖"},
		{"flutter", "Flutter", "🦋"},
		{"leadership", "Team Leadership", "👑"},
		{"communication", "Communication", "💬"},
		{"teamwork", "Teamwork", "🤝"},
		{"interpersonal", "Interpersonal", "👥"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Icon(tt.skill))
		})
	}
}
