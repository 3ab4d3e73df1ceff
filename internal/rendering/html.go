// Package rendering maps a CV aggregate to document markup. One pipeline
// serves every template; visual styles are data-driven descriptors.
package rendering

import (
	_ "embed"
	"html/template"
	"strings"

	"github.com/jonathan/cv-builder/internal/skills"
	"github.com/jonathan/cv-builder/internal/types"
)

//go:embed cv.html.tmpl
var cvTemplateSrc string

var cvTemplate = template.Must(template.New("cv").Parse(cvTemplateSrc))

// templateData is the fully prepared view handed to the markup template.
// All formatting, filtering and grouping happens here so the template stays
// declarative.
type templateData struct {
	Style    Style
	Heading  sectionHeadings
	ShowBars bool // style shows the percentage signal rather than the level text
	Personal personalView

	Work         []entryView
	Education    []educationView
	Volunteering []entryView
	SkillGroups  []skillGroupView
	Languages    []types.Language
	References   []types.Reference
	SocialMedia  []socialView
	Hobbies      []string
	Projects     []types.Project
}

type personalView struct {
	FullName string
	Email    string
	Phone    string
	Address  string
	LinkedIn string
	Website  string
	Summary  string
	Photo    template.URL // data URI produced by the editor; see AttachPhoto
}

// entryView covers both work experience and volunteering entries.
type entryView struct {
	Title       string
	Subtitle    string
	Location    string
	DateRange   string
	Description string
	Bullets     []string
}

type educationView struct {
	Degree      string
	Institution string
	Location    string
	Date        string
	GPA         string
	Description string
}

type skillGroupView struct {
	Category types.SkillCategory
	Skills   []skillView
}

type skillView struct {
	Icon       string
	Name       string
	Percentage int
	Level      string
}

type socialView struct {
	Icon     string
	Platform string
	URL      string
	Username string
}

// Render produces the document markup for the aggregate in the named style.
// Rendering is read-only and idempotent; an unrecognized template identifier
// falls back to the default style rather than failing.
func Render(cv types.CVData, id types.TemplateID) (string, error) {
	data := buildTemplateData(cv, StyleFor(id))

	var out strings.Builder
	if err := cvTemplate.Execute(&out, data); err != nil {
		return "", &TemplateError{Message: "failed to execute cv template", Cause: err}
	}
	return out.String(), nil
}

// sectionHeadings carries the final display text for every section heading,
// already cased per the style.
type sectionHeadings struct {
	Summary      string
	Work         string
	Education    string
	Volunteering string
	Skills       string
	Languages    string
	Projects     string
	Social       string
	Hobbies      string
	References   string
}

func headingsFor(style Style) sectionHeadings {
	h := sectionHeadings{
		Summary:      "Professional Summary",
		Work:         "Work Experience",
		Education:    "Education",
		Volunteering: "Volunteering",
		Skills:       "Skills",
		Languages:    "Languages",
		Projects:     "Projects",
		Social:       "Social Media",
		Hobbies:      "Hobbies & Interests",
		References:   "References",
	}
	if style.UpperHeadings {
		h.Summary = strings.ToUpper(h.Summary)
		h.Work = strings.ToUpper(h.Work)
		h.Education = strings.ToUpper(h.Education)
		h.Volunteering = strings.ToUpper(h.Volunteering)
		h.Skills = strings.ToUpper(h.Skills)
		h.Languages = strings.ToUpper(h.Languages)
		h.Projects = strings.ToUpper(h.Projects)
		h.Social = strings.ToUpper(h.Social)
		h.Hobbies = strings.ToUpper(h.Hobbies)
		h.References = strings.ToUpper(h.References)
	}
	return h
}

func buildTemplateData(cv types.CVData, style Style) templateData {
	data := templateData{
		Style:    style,
		Heading:  headingsFor(style),
		ShowBars: style.Skill == SignalBar,
		Personal: personalView{
			FullName: cv.PersonalInfo.FullName,
			Email:    cv.PersonalInfo.Email,
			Phone:    cv.PersonalInfo.Phone,
			Address:  cv.PersonalInfo.Address,
			LinkedIn: cv.PersonalInfo.LinkedIn,
			Website:  cv.PersonalInfo.Website,
			Summary:  cv.PersonalInfo.Summary,
			Photo:    template.URL(cv.PersonalInfo.ProfilePhoto), //nolint:gosec // editor-produced data URI, content sniffed on upload
		},
		Languages:   cv.Languages,
		References:  cv.References,
		Hobbies:     nonBlank(cv.Hobbies),
		Projects:    cv.Projects,
		SkillGroups: groupSkills(cv.Skills),
	}

	for _, exp := range cv.WorkExperience {
		data.Work = append(data.Work, entryView{
			Title:       exp.JobTitle,
			Subtitle:    exp.Company,
			Location:    exp.Location,
			DateRange:   DateRange(exp.StartDate, exp.EndDate, exp.IsCurrentJob),
			Description: exp.Description,
			Bullets:     nonBlank(exp.BulletPoints),
		})
	}

	for _, edu := range cv.Education {
		data.Education = append(data.Education, educationView{
			Degree:      edu.Degree,
			Institution: edu.Institution,
			Location:    edu.Location,
			Date:        FormatDate(edu.GraduationDate),
			GPA:         edu.GPA,
			Description: edu.Description,
		})
	}

	for _, vol := range cv.Volunteering {
		data.Volunteering = append(data.Volunteering, entryView{
			Title:       vol.Role,
			Subtitle:    vol.Organization,
			Location:    vol.Location,
			DateRange:   DateRange(vol.StartDate, vol.EndDate, vol.IsCurrentRole),
			Description: vol.Description,
			Bullets:     nonBlank(vol.BulletPoints),
		})
	}

	for _, sm := range cv.SocialMedia {
		data.SocialMedia = append(data.SocialMedia, socialView{
			Icon:     SocialIcon(sm.Platform),
			Platform: sm.Platform,
			URL:      sm.URL,
			Username: sm.Username,
		})
	}

	return data
}

// groupSkills buckets skills by category, preserving insertion order within
// each bucket. Display order of categories is the enumerated order; empty
// buckets are dropped.
func groupSkills(list []types.Skill) []skillGroupView {
	byCategory := make(map[types.SkillCategory][]skillView, len(types.SkillCategories))
	for _, s := range list {
		byCategory[s.Category] = append(byCategory[s.Category], skillView{
			Icon:       skills.Icon(s.Name),
			Name:       s.Name,
			Percentage: s.Percentage,
			Level:      s.Level,
		})
	}

	groups := make([]skillGroupView, 0, len(byCategory))
	for _, c := range types.SkillCategories {
		if len(byCategory[c]) > 0 {
			groups = append(groups, skillGroupView{Category: c, Skills: byCategory[c]})
		}
	}
	return groups
}

// nonBlank filters a bullet sequence to displayable entries.
func nonBlank(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			out = append(out, v)
		}
	}
	return out
}

// SocialIcon maps a platform name to its decorative glyph.
func SocialIcon(platform string) string {
	switch strings.ToLower(platform) {
	case "github":
		return "🔗"
	case "twitter":
		return "🐦"
	case "instagram":
		return "📷"
	case "facebook":
		return "📘"
	case "linkedin":
		return "💼"
	default:
		return "🌐"
	}
}
