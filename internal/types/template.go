package types

// TemplateID names one of the visual rendering styles.
type TemplateID string

// Template identifiers
const (
	TemplateModern       TemplateID = "modern"
	TemplateClassic      TemplateID = "classic"
	TemplateCreative     TemplateID = "creative"
	TemplateMinimal      TemplateID = "minimal"
	TemplateProfessional TemplateID = "professional"
	TemplateExecutive    TemplateID = "executive"
	TemplateTech         TemplateID = "tech"
	TemplateAcademic     TemplateID = "academic"
	TemplateDesigner     TemplateID = "designer"
	TemplateCorporate    TemplateID = "corporate"
)

// DefaultTemplate is used whenever no selection is stored or an unrecognized
// identifier shows up.
const DefaultTemplate = TemplateModern

// TemplateInfo describes one catalog entry for template pickers.
type TemplateInfo struct {
	ID          TemplateID `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
}

// TemplateCatalog lists every available template in picker order.
var TemplateCatalog = []TemplateInfo{
	{TemplateModern, "Modern", "Clean and contemporary design with blue accents"},
	{TemplateClassic, "Classic", "Traditional professional layout with serif fonts"},
	{TemplateCreative, "Creative", "Colorful sidebar design with purple gradients"},
	{TemplateMinimal, "Minimal", "Clean and simple with lots of white space"},
	{TemplateProfessional, "Professional", "Corporate style with dark sidebar"},
	{TemplateExecutive, "Executive", "Sophisticated design for senior positions"},
	{TemplateTech, "Tech", "Modern tech-focused design with code elements"},
	{TemplateAcademic, "Academic", "Scholarly layout perfect for research positions"},
	{TemplateDesigner, "Designer", "Creative portfolio-style layout"},
	{TemplateCorporate, "Corporate", "Traditional business-focused design"},
}

// KnownTemplate reports whether id names a catalog entry.
func KnownTemplate(id TemplateID) bool {
	for _, t := range TemplateCatalog {
		if t.ID == id {
			return true
		}
	}
	return false
}
