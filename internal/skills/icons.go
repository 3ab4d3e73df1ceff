// Package skills provides the decorative glyph resolver for skill names.
package skills

import "strings"

// iconRule maps substrings of a lowercased skill name to a glyph. Order is
// significant: the first matching rule wins, so "javascript" must be checked
// before "java" catches it.
type iconRule struct {
	substrings []string
	glyph      string
}

// DefaultIcon is returned when no rule matches, including for empty input.
const DefaultIcon = "⚡"

var iconRules = []iconRule{
	// Programming languages
	{[]string{"javascript", "js"}, "🟨"},
	{[]string{"python"}, "🐍"},
	{[]string{"java"}, "☕"},
	{[]string{"react"}, "⚛️"},
	{[]string{"vue"}, "💚"},
	{[]string{"angular"}, "🅰️"},
	{[]string{"node"}, "🟢"},
	{[]string{"php"}, "🐘"},
	{[]string{"c++", "cpp"}, "⚡"},
	{[]string{"c#", "csharp"}, "🔷"},
	{[]string{"swift"}, "🦉"},
	{[]string{"kotlin"}, "🎯"},
	{[]string{"go", "golang"}, "🐹"},
	{[]string{"rust"}, "🦀"},
	{[]string{"typescript", "ts"}, "🔷"},

	// Web technologies
	{[]string{"html"}, "🌐"},
	{[]string{"css"}, "🎨"},
	{[]string{"sass", "scss"}, "💗"},
	{[]string{"tailwind"}, "🌊"},
	{[]string{"bootstrap"}, "🅱️"},

	// Databases
	{[]string{"mysql"}, "🐬"},
	{[]string{"postgresql", "postgres"}, "🐘"},
	{[]string{"mongodb"}, "🍃"},
	{[]string{"redis"}, "🔴"},
	{[]string{"sqlite"}, "💾"},

	// Design tools
	{[]string{"photoshop"}, "🎨"},
	{[]string{"illustrator"}, "🖌️"},
	{[]string{"figma"}, "🎯"},
	{[]string{"sketch"}, "💎"},
	{[]string{"xd", "adobe xd"}, "🎨"},
	{[]string{"canva"}, "🎨"},

	// Development tools
	{[]string{"git"}, "📝"},
	{[]string{"docker"}, "🐳"},
	{[]string{"kubernetes"}, "☸️"},
	{[]string{"aws"}, "☁️"},
	{[]string{"azure"}, "🔵"},
	{[]string{"gcp", "google cloud"}, "☁️"},
	{[]string{"firebase"}, "🔥"},
	{[]string{"jenkins"}, "🔧"},
	{[]string{"webpack"}, "📦"},
	{[]string{"vite"}, "⚡"},

	// Mobile development
	{[]string{"android"}, "🤖"},
	{[]string{"ios"}, "📱"},
	{[]string{"flutter"}, "🦋"},
	{[]string{"react native"}, "📱"},

	// Soft skills
	{[]string{"leadership", "management"}, "👑"},
	{[]string{"communication"}, "💬"},
	{[]string{"teamwork", "collaboration"}, "🤝"},
	{[]string{"creativity", "creative"}, "💡"},
	{[]string{"problem", "solving"}, "🧩"},
	{[]string{"time", "management"}, "⏰"},
	{[]string{"adaptability", "flexible"}, "🔄"},
	{[]string{"attention", "detail"}, "🔍"},
	{[]string{"work ethic", "dedication"}, "💪"},
	{[]string{"interpersonal"}, "👥"},
}

// Icon resolves a free-text skill name to a representative glyph. The
// function is total and deterministic: identical input always yields the
// same glyph, and anything unmatched falls through to DefaultIcon.
func Icon(skillName string) string {
	name := strings.ToLower(skillName)
	for _, rule := range iconRules {
		for _, sub := range rule.substrings {
			if strings.Contains(name, sub) {
				return rule.glyph
			}
		}
	}
	return DefaultIcon
}
