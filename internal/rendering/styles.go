package rendering

import (
	"html/template"

	"github.com/jonathan/cv-builder/internal/types"
)

// SkillSignal selects which of the two independent proficiency signals a
// style displays.
type SkillSignal string

// Skill display signals
const (
	SignalBar   SkillSignal = "bar"   // percentage rendered as a width bar
	SignalLabel SkillSignal = "label" // free-form level text
)

// Style is the data-driven descriptor behind a template identifier. All ten
// templates share one rendering pipeline; only the descriptor varies.
type Style struct {
	ID          types.TemplateID
	DisplayName string

	// Colors and typography
	Accent     string // headings, rules, links
	HeaderBg   string // banner or sidebar background
	HeaderText string
	// FontFamily is typed CSS: quoted font stacks trip html/template's CSS
	// value filter otherwise.
	FontFamily template.CSS

	// Arrangement
	Sidebar       bool // skills/languages/social/hobbies in an aside column
	UpperHeadings bool // section headings in capitals

	Skill SkillSignal
}

// styles holds one descriptor per catalog entry. Order is irrelevant here;
// the catalog in types drives pickers.
var styles = map[types.TemplateID]Style{
	types.TemplateModern: {
		ID: types.TemplateModern, DisplayName: "Modern",
		Accent: "#2563eb", HeaderBg: "#1d4ed8", HeaderText: "#ffffff",
		FontFamily: "'Helvetica Neue', Arial, sans-serif",
		Skill:      SignalBar,
	},
	types.TemplateClassic: {
		ID: types.TemplateClassic, DisplayName: "Classic",
		Accent: "#1f2937", HeaderBg: "#ffffff", HeaderText: "#111827",
		FontFamily: "Georgia, 'Times New Roman', serif",
		Skill:      SignalLabel,
	},
	types.TemplateCreative: {
		ID: types.TemplateCreative, DisplayName: "Creative",
		Accent: "#7c3aed", HeaderBg: "#6d28d9", HeaderText: "#ffffff",
		FontFamily: "'Helvetica Neue', Arial, sans-serif",
		Sidebar:    true,
		Skill:      SignalBar,
	},
	types.TemplateMinimal: {
		ID: types.TemplateMinimal, DisplayName: "Minimal",
		Accent: "#374151", HeaderBg: "#ffffff", HeaderText: "#111827",
		FontFamily: "'Helvetica Neue', Arial, sans-serif",
		Skill:      SignalLabel,
	},
	types.TemplateProfessional: {
		ID: types.TemplateProfessional, DisplayName: "Professional",
		Accent: "#0f766e", HeaderBg: "#134e4a", HeaderText: "#f0fdfa",
		FontFamily: "'Helvetica Neue', Arial, sans-serif",
		Sidebar:    true,
		Skill:      SignalBar,
	},
	types.TemplateExecutive: {
		ID: types.TemplateExecutive, DisplayName: "Executive",
		Accent: "#92400e", HeaderBg: "#1c1917", HeaderText: "#fafaf9",
		FontFamily: "Georgia, 'Times New Roman', serif",
		UpperHeadings: true,
		Skill:         SignalLabel,
	},
	types.TemplateTech: {
		ID: types.TemplateTech, DisplayName: "Tech",
		Accent: "#059669", HeaderBg: "#022c22", HeaderText: "#d1fae5",
		FontFamily: "'JetBrains Mono', 'Courier New', monospace",
		Skill:      SignalBar,
	},
	types.TemplateAcademic: {
		ID: types.TemplateAcademic, DisplayName: "Academic",
		Accent: "#1e3a8a", HeaderBg: "#ffffff", HeaderText: "#1e3a8a",
		FontFamily: "Georgia, 'Times New Roman', serif",
		Skill:      SignalLabel,
	},
	types.TemplateDesigner: {
		ID: types.TemplateDesigner, DisplayName: "Designer",
		Accent: "#db2777", HeaderBg: "#831843", HeaderText: "#fdf2f8",
		FontFamily: "'Helvetica Neue', Arial, sans-serif",
		Sidebar:    true,
		Skill:      SignalBar,
	},
	types.TemplateCorporate: {
		ID: types.TemplateCorporate, DisplayName: "Corporate",
		Accent: "#1e40af", HeaderBg: "#eff6ff", HeaderText: "#1e3a8a",
		FontFamily: "Arial, Helvetica, sans-serif",
		UpperHeadings: true,
		Skill:         SignalLabel,
	},
}

// StyleFor resolves a template identifier to its style descriptor. The
// function is total: anything unrecognized falls back to the default style.
func StyleFor(id types.TemplateID) Style {
	if s, ok := styles[id]; ok {
		return s
	}
	return styles[types.DefaultTemplate]
}
