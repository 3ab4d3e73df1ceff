package editor

import (
	"github.com/jonathan/cv-builder/internal/types"
)

// Section names a repeatable sequence on the aggregate. Values match the
// aggregate's JSON field names so HTTP routes and persisted data agree.
type Section string

// Repeatable sections
const (
	SectionWorkExperience Section = "workExperience"
	SectionEducation      Section = "education"
	SectionVolunteering   Section = "volunteering"
	SectionSkills         Section = "skills"
	SectionLanguages      Section = "languages"
	SectionReferences     Section = "references"
	SectionSocialMedia    Section = "socialMedia"
	SectionProjects       Section = "projects"
	SectionHobbies        Section = "hobbies"
)

// KeyedSections lists the id-addressed sections (everything but hobbies,
// which are plain strings addressed by index).
var KeyedSections = []Section{
	SectionWorkExperience,
	SectionEducation,
	SectionVolunteering,
	SectionSkills,
	SectionLanguages,
	SectionReferences,
	SectionSocialMedia,
	SectionProjects,
}

// Add appends a fresh default-valued entity to the named section and returns
// the replacement aggregate. The second return is false for an unknown or
// non-keyed section.
func Add(cv types.CVData, section Section) (types.CVData, bool) {
	switch section {
	case SectionWorkExperience:
		cv.WorkExperience = Append(cv.WorkExperience, types.NewWorkExperience())
	case SectionEducation:
		cv.Education = Append(cv.Education, types.NewEducation())
	case SectionVolunteering:
		cv.Volunteering = Append(cv.Volunteering, types.NewVolunteering())
	case SectionSkills:
		cv.Skills = Append(cv.Skills, types.NewSkill())
	case SectionLanguages:
		cv.Languages = Append(cv.Languages, types.NewLanguage())
	case SectionReferences:
		cv.References = Append(cv.References, types.NewReference())
	case SectionSocialMedia:
		cv.SocialMedia = Append(cv.SocialMedia, types.NewSocialMedia())
	case SectionProjects:
		cv.Projects = Append(cv.Projects, types.NewProject())
	default:
		return cv, false
	}
	return cv, true
}

// UpdateEntity replaces one field on the entity matching id within the named
// section. Unknown sections report false; unknown ids, unknown fields and
// wrong value types are silent no-ops by design.
func UpdateEntity(cv types.CVData, section Section, id, field string, value any) (types.CVData, bool) {
	switch section {
	case SectionWorkExperience:
		cv.WorkExperience = UpdateByID(cv.WorkExperience, id, func(e types.WorkExperience) types.WorkExperience {
			return setWorkExperienceField(e, field, value)
		})
	case SectionEducation:
		cv.Education = UpdateByID(cv.Education, id, func(e types.Education) types.Education {
			return setEducationField(e, field, value)
		})
	case SectionVolunteering:
		cv.Volunteering = UpdateByID(cv.Volunteering, id, func(e types.Volunteering) types.Volunteering {
			return setVolunteeringField(e, field, value)
		})
	case SectionSkills:
		cv.Skills = UpdateByID(cv.Skills, id, func(e types.Skill) types.Skill {
			return setSkillField(e, field, value)
		})
	case SectionLanguages:
		cv.Languages = UpdateByID(cv.Languages, id, func(e types.Language) types.Language {
			return setLanguageField(e, field, value)
		})
	case SectionReferences:
		cv.References = UpdateByID(cv.References, id, func(e types.Reference) types.Reference {
			return setReferenceField(e, field, value)
		})
	case SectionSocialMedia:
		cv.SocialMedia = UpdateByID(cv.SocialMedia, id, func(e types.SocialMedia) types.SocialMedia {
			return setSocialMediaField(e, field, value)
		})
	case SectionProjects:
		cv.Projects = UpdateByID(cv.Projects, id, func(e types.Project) types.Project {
			return setProjectField(e, field, value)
		})
	default:
		return cv, false
	}
	return cv, true
}

// RemoveEntity removes the entity matching id from the named section.
func RemoveEntity(cv types.CVData, section Section, id string) (types.CVData, bool) {
	switch section {
	case SectionWorkExperience:
		cv.WorkExperience = RemoveByID(cv.WorkExperience, id)
	case SectionEducation:
		cv.Education = RemoveByID(cv.Education, id)
	case SectionVolunteering:
		cv.Volunteering = RemoveByID(cv.Volunteering, id)
	case SectionSkills:
		cv.Skills = RemoveByID(cv.Skills, id)
	case SectionLanguages:
		cv.Languages = RemoveByID(cv.Languages, id)
	case SectionReferences:
		cv.References = RemoveByID(cv.References, id)
	case SectionSocialMedia:
		cv.SocialMedia = RemoveByID(cv.SocialMedia, id)
	case SectionProjects:
		cv.Projects = RemoveByID(cv.Projects, id)
	default:
		return cv, false
	}
	return cv, true
}

// UpdatePersonalInfo replaces one field on the personal info block.
func UpdatePersonalInfo(cv types.CVData, field string, value string) types.CVData {
	switch field {
	case "fullName":
		cv.PersonalInfo.FullName = value
	case "email":
		cv.PersonalInfo.Email = value
	case "phone":
		cv.PersonalInfo.Phone = value
	case "address":
		cv.PersonalInfo.Address = value
	case "linkedin":
		cv.PersonalInfo.LinkedIn = value
	case "website":
		cv.PersonalInfo.Website = value
	case "summary":
		cv.PersonalInfo.Summary = value
	case "profilePhoto":
		cv.PersonalInfo.ProfilePhoto = value
	}
	return cv
}

// AddHobby appends an empty hobby slot.
func AddHobby(cv types.CVData) types.CVData {
	out := make([]string, 0, len(cv.Hobbies)+1)
	out = append(out, cv.Hobbies...)
	cv.Hobbies = append(out, "")
	return cv
}

// UpdateHobby replaces the hobby at index; out-of-range indexes no-op.
func UpdateHobby(cv types.CVData, index int, value string) types.CVData {
	if index < 0 || index >= len(cv.Hobbies) {
		return cv
	}
	out := make([]string, len(cv.Hobbies))
	copy(out, cv.Hobbies)
	out[index] = value
	cv.Hobbies = out
	return cv
}

// RemoveHobby removes the hobby at index; out-of-range indexes no-op.
func RemoveHobby(cv types.CVData, index int) types.CVData {
	if index < 0 || index >= len(cv.Hobbies) {
		return cv
	}
	out := make([]string, 0, len(cv.Hobbies)-1)
	out = append(out, cv.Hobbies[:index]...)
	out = append(out, cv.Hobbies[index+1:]...)
	cv.Hobbies = out
	return cv
}

func setWorkExperienceField(e types.WorkExperience, field string, value any) types.WorkExperience {
	switch field {
	case "jobTitle":
		if s, ok := asString(value); ok {
			e.JobTitle = s
		}
	case "company":
		if s, ok := asString(value); ok {
			e.Company = s
		}
	case "location":
		if s, ok := asString(value); ok {
			e.Location = s
		}
	case "startDate":
		if s, ok := asString(value); ok {
			e.StartDate = s
		}
	case "endDate":
		if s, ok := asString(value); ok {
			e.EndDate = s
		}
	case "isCurrentJob":
		if b, ok := asBool(value); ok {
			e.IsCurrentJob = b
		}
	case "description":
		if s, ok := asString(value); ok {
			e.Description = s
		}
	case "bulletPoints":
		if ss, ok := asStringSlice(value); ok {
			e.BulletPoints = ss
		}
	}
	return e
}

func setEducationField(e types.Education, field string, value any) types.Education {
	switch field {
	case "degree":
		if s, ok := asString(value); ok {
			e.Degree = s
		}
	case "institution":
		if s, ok := asString(value); ok {
			e.Institution = s
		}
	case "location":
		if s, ok := asString(value); ok {
			e.Location = s
		}
	case "graduationDate":
		if s, ok := asString(value); ok {
			e.GraduationDate = s
		}
	case "gpa":
		if s, ok := asString(value); ok {
			e.GPA = s
		}
	case "description":
		if s, ok := asString(value); ok {
			e.Description = s
		}
	}
	return e
}

func setVolunteeringField(e types.Volunteering, field string, value any) types.Volunteering {
	switch field {
	case "role":
		if s, ok := asString(value); ok {
			e.Role = s
		}
	case "organization":
		if s, ok := asString(value); ok {
			e.Organization = s
		}
	case "location":
		if s, ok := asString(value); ok {
			e.Location = s
		}
	case "startDate":
		if s, ok := asString(value); ok {
			e.StartDate = s
		}
	case "endDate":
		if s, ok := asString(value); ok {
			e.EndDate = s
		}
	case "isCurrentRole":
		if b, ok := asBool(value); ok {
			e.IsCurrentRole = b
		}
	case "description":
		if s, ok := asString(value); ok {
			e.Description = s
		}
	case "bulletPoints":
		if ss, ok := asStringSlice(value); ok {
			e.BulletPoints = ss
		}
	}
	return e
}

func setSkillField(e types.Skill, field string, value any) types.Skill {
	switch field {
	case "name":
		if s, ok := asString(value); ok {
			e.Name = s
		}
	case "percentage":
		if n, ok := asInt(value); ok {
			e.Percentage = clampPercent(n)
		}
	case "level":
		if s, ok := asString(value); ok {
			e.Level = s
		}
	case "category":
		if s, ok := asString(value); ok {
			// Only the enumerated categories are ever written.
			for _, c := range types.SkillCategories {
				if types.SkillCategory(s) == c {
					e.Category = c
					break
				}
			}
		}
	}
	return e
}

func setLanguageField(e types.Language, field string, value any) types.Language {
	switch field {
	case "name":
		if s, ok := asString(value); ok {
			e.Name = s
		}
	case "proficiency":
		if s, ok := asString(value); ok {
			switch p := types.LanguageProficiency(s); p {
			case types.ProficiencyBasic, types.ProficiencyConversational, types.ProficiencyFluent, types.ProficiencyNative:
				e.Proficiency = p
			}
		}
	}
	return e
}

func setReferenceField(e types.Reference, field string, value any) types.Reference {
	switch field {
	case "name":
		if s, ok := asString(value); ok {
			e.Name = s
		}
	case "position":
		if s, ok := asString(value); ok {
			e.Position = s
		}
	case "company":
		if s, ok := asString(value); ok {
			e.Company = s
		}
	case "email":
		if s, ok := asString(value); ok {
			e.Email = s
		}
	case "phone":
		if s, ok := asString(value); ok {
			e.Phone = s
		}
	}
	return e
}

func setSocialMediaField(e types.SocialMedia, field string, value any) types.SocialMedia {
	switch field {
	case "platform":
		if s, ok := asString(value); ok {
			e.Platform = s
		}
	case "url":
		if s, ok := asString(value); ok {
			e.URL = s
		}
	case "username":
		if s, ok := asString(value); ok {
			e.Username = s
		}
	}
	return e
}

func setProjectField(e types.Project, field string, value any) types.Project {
	switch field {
	case "name":
		if s, ok := asString(value); ok {
			e.Name = s
		}
	case "description":
		if s, ok := asString(value); ok {
			e.Description = s
		}
	case "technologies":
		if s, ok := asString(value); ok {
			e.Technologies = s
		}
	case "link":
		if s, ok := asString(value); ok {
			e.Link = s
		}
	}
	return e
}
