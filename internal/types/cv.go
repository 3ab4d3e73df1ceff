// Package types provides type definitions for the CV data model shared throughout the cv-builder system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "github.com/google/uuid"

// SkillCategory enumerates the skill grouping buckets shown by templates.
type SkillCategory string

// Skill categories
const (
	CategoryTechnical  SkillCategory = "Technical"
	CategorySoftSkills SkillCategory = "Soft Skills"
	CategoryTools      SkillCategory = "Tools"
)

// SkillCategories lists the valid categories in display order.
var SkillCategories = []SkillCategory{CategoryTechnical, CategorySoftSkills, CategoryTools}

// LanguageProficiency enumerates spoken-language proficiency levels.
type LanguageProficiency string

// Language proficiency levels
const (
	ProficiencyBasic          LanguageProficiency = "Basic"
	ProficiencyConversational LanguageProficiency = "Conversational"
	ProficiencyFluent         LanguageProficiency = "Fluent"
	ProficiencyNative         LanguageProficiency = "Native"
)

// PersonalInfo holds the singleton contact block embedded in CVData.
// ProfilePhoto, when set, is a data-URI-encoded image.
type PersonalInfo struct {
	FullName     string `json:"fullName"`
	Email        string `json:"email" validate:"omitempty,email"`
	Phone        string `json:"phone"`
	Address      string `json:"address"`
	LinkedIn     string `json:"linkedin"`
	Website      string `json:"website"`
	Summary      string `json:"summary"`
	ProfilePhoto string `json:"profilePhoto,omitempty"`
}

// WorkExperience is one employment entry. EndDate is ignored for display
// whenever IsCurrentJob is true.
type WorkExperience struct {
	ID           string   `json:"id"`
	JobTitle     string   `json:"jobTitle"`
	Company      string   `json:"company"`
	Location     string   `json:"location"`
	StartDate    string   `json:"startDate"`
	EndDate      string   `json:"endDate"`
	IsCurrentJob bool     `json:"isCurrentJob"`
	Description  string   `json:"description"`
	BulletPoints []string `json:"bulletPoints"`
}

// EntityID implements editor keying.
func (w WorkExperience) EntityID() string { return w.ID }

// Education is one degree entry. GPA is optional free text.
type Education struct {
	ID             string `json:"id"`
	Degree         string `json:"degree"`
	Institution    string `json:"institution"`
	Location       string `json:"location"`
	GraduationDate string `json:"graduationDate"`
	GPA            string `json:"gpa,omitempty"`
	Description    string `json:"description"`
}

// EntityID implements editor keying.
func (e Education) EntityID() string { return e.ID }

// Volunteering mirrors WorkExperience with role/organization naming.
type Volunteering struct {
	ID            string   `json:"id"`
	Role          string   `json:"role"`
	Organization  string   `json:"organization"`
	Location      string   `json:"location"`
	StartDate     string   `json:"startDate"`
	EndDate       string   `json:"endDate"`
	IsCurrentRole bool     `json:"isCurrentRole"`
	Description   string   `json:"description"`
	BulletPoints  []string `json:"bulletPoints"`
}

// EntityID implements editor keying.
func (v Volunteering) EntityID() string { return v.ID }

// Skill carries two independent proficiency signals: Percentage (0-100) and
// Level (free text). Different templates display one or the other.
type Skill struct {
	ID         string        `json:"id"`
	Name       string        `json:"name"`
	Percentage int           `json:"percentage" validate:"gte=0,lte=100"`
	Level      string        `json:"level"`
	Category   SkillCategory `json:"category" validate:"oneof=Technical 'Soft Skills' Tools"`
}

// EntityID implements editor keying.
func (s Skill) EntityID() string { return s.ID }

// Language is one spoken-language entry.
type Language struct {
	ID          string              `json:"id"`
	Name        string              `json:"name"`
	Proficiency LanguageProficiency `json:"proficiency" validate:"oneof=Basic Conversational Fluent Native"`
}

// EntityID implements editor keying.
func (l Language) EntityID() string { return l.ID }

// Reference is one professional reference entry.
type Reference struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Position string `json:"position"`
	Company  string `json:"company"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
}

// EntityID implements editor keying.
func (r Reference) EntityID() string { return r.ID }

// SocialMedia is one social profile entry.
type SocialMedia struct {
	ID       string `json:"id"`
	Platform string `json:"platform"`
	URL      string `json:"url"`
	Username string `json:"username"`
}

// EntityID implements editor keying.
func (s SocialMedia) EntityID() string { return s.ID }

// Project is one portfolio project entry.
type Project struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	Technologies string `json:"technologies"`
	Link         string `json:"link,omitempty"`
}

// EntityID implements editor keying.
func (p Project) EntityID() string { return p.ID }

// CVData is the root aggregate: the sole unit of persistence and the only
// value the renderer ever sees. All mutation happens by replacement.
type CVData struct {
	PersonalInfo   PersonalInfo     `json:"personalInfo"`
	WorkExperience []WorkExperience `json:"workExperience" validate:"dive"`
	Education      []Education      `json:"education" validate:"dive"`
	Volunteering   []Volunteering   `json:"volunteering" validate:"dive"`
	Skills         []Skill          `json:"skills" validate:"dive"`
	Languages      []Language       `json:"languages" validate:"dive"`
	References     []Reference      `json:"references" validate:"dive"`
	SocialMedia    []SocialMedia    `json:"socialMedia" validate:"dive"`
	Hobbies        []string         `json:"hobbies"`
	Projects       []Project        `json:"projects" validate:"dive"`
}

// Empty returns the initial aggregate: every sequence empty (non-nil, so the
// JSON form always carries arrays) and all personal fields blank.
func Empty() CVData {
	return CVData{
		WorkExperience: []WorkExperience{},
		Education:      []Education{},
		Volunteering:   []Volunteering{},
		Skills:         []Skill{},
		Languages:      []Language{},
		References:     []Reference{},
		SocialMedia:    []SocialMedia{},
		Hobbies:        []string{},
		Projects:       []Project{},
	}
}

// NewID generates a locally-unique entity id. Uniqueness is only needed
// within a single session; UUIDs clear that bar comfortably.
func NewID() string { return uuid.NewString() }

// NewWorkExperience returns a default-valued entry with a fresh id. New
// entries always start with one empty bullet slot so the editor has
// something to show.
func NewWorkExperience() WorkExperience {
	return WorkExperience{ID: NewID(), BulletPoints: []string{""}}
}

// NewEducation returns a default-valued entry with a fresh id.
func NewEducation() Education {
	return Education{ID: NewID()}
}

// NewVolunteering returns a default-valued entry with a fresh id and one
// empty bullet slot.
func NewVolunteering() Volunteering {
	return Volunteering{ID: NewID(), BulletPoints: []string{""}}
}

// NewSkill returns a default-valued entry: percentage 50, Technical category.
func NewSkill() Skill {
	return Skill{ID: NewID(), Percentage: 50, Category: CategoryTechnical}
}

// NewLanguage returns a default-valued entry at Conversational proficiency.
func NewLanguage() Language {
	return Language{ID: NewID(), Proficiency: ProficiencyConversational}
}

// NewReference returns a default-valued entry with a fresh id.
func NewReference() Reference {
	return Reference{ID: NewID()}
}

// NewSocialMedia returns a default-valued entry with a fresh id.
func NewSocialMedia() SocialMedia {
	return SocialMedia{ID: NewID()}
}

// NewProject returns a default-valued entry with a fresh id.
func NewProject() Project {
	return Project{ID: NewID()}
}
