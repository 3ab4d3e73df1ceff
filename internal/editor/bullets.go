package editor

import (
	"github.com/jonathan/cv-builder/internal/types"
)

// Bullet-point operations act one level below the keyed sections: they locate
// a work or volunteering parent by id and then replace its bulletPoints
// sequence. The UI always renders at least one point editor, so removal is
// refused when exactly one bullet remains.

// AddBulletPoint appends an empty bullet to the parent matching parentID in
// the given section. Only work experience and volunteering carry bullets;
// other sections report false.
func AddBulletPoint(cv types.CVData, section Section, parentID string) (types.CVData, bool) {
	switch section {
	case SectionWorkExperience:
		cv.WorkExperience = UpdateByID(cv.WorkExperience, parentID, func(e types.WorkExperience) types.WorkExperience {
			e.BulletPoints = appendBullet(e.BulletPoints)
			return e
		})
	case SectionVolunteering:
		cv.Volunteering = UpdateByID(cv.Volunteering, parentID, func(e types.Volunteering) types.Volunteering {
			e.BulletPoints = appendBullet(e.BulletPoints)
			return e
		})
	default:
		return cv, false
	}
	return cv, true
}

// UpdateBulletPoint replaces the bullet at index on the parent matching
// parentID. Out-of-range indexes no-op.
func UpdateBulletPoint(cv types.CVData, section Section, parentID string, index int, value string) (types.CVData, bool) {
	switch section {
	case SectionWorkExperience:
		cv.WorkExperience = UpdateByID(cv.WorkExperience, parentID, func(e types.WorkExperience) types.WorkExperience {
			e.BulletPoints = setBullet(e.BulletPoints, index, value)
			return e
		})
	case SectionVolunteering:
		cv.Volunteering = UpdateByID(cv.Volunteering, parentID, func(e types.Volunteering) types.Volunteering {
			e.BulletPoints = setBullet(e.BulletPoints, index, value)
			return e
		})
	default:
		return cv, false
	}
	return cv, true
}

// RemoveBulletPoint removes the bullet at index on the parent matching
// parentID. The last remaining bullet can never be removed.
func RemoveBulletPoint(cv types.CVData, section Section, parentID string, index int) (types.CVData, bool) {
	switch section {
	case SectionWorkExperience:
		cv.WorkExperience = UpdateByID(cv.WorkExperience, parentID, func(e types.WorkExperience) types.WorkExperience {
			e.BulletPoints = removeBullet(e.BulletPoints, index)
			return e
		})
	case SectionVolunteering:
		cv.Volunteering = UpdateByID(cv.Volunteering, parentID, func(e types.Volunteering) types.Volunteering {
			e.BulletPoints = removeBullet(e.BulletPoints, index)
			return e
		})
	default:
		return cv, false
	}
	return cv, true
}

func appendBullet(bullets []string) []string {
	out := make([]string, 0, len(bullets)+1)
	out = append(out, bullets...)
	return append(out, "")
}

func setBullet(bullets []string, index int, value string) []string {
	if index < 0 || index >= len(bullets) {
		return bullets
	}
	out := make([]string, len(bullets))
	copy(out, bullets)
	out[index] = value
	return out
}

func removeBullet(bullets []string, index int) []string {
	// At-least-one floor: an entry always keeps one editable point.
	if len(bullets) <= 1 || index < 0 || index >= len(bullets) {
		return bullets
	}
	out := make([]string, 0, len(bullets)-1)
	out = append(out, bullets[:index]...)
	return append(out, bullets[index+1:]...)
}
