package editor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/cv-builder/internal/types"
)

func workCVWithOneEntry(t *testing.T) (types.CVData, string) {
	t.Helper()
	cv := types.Empty()
	cv, ok := Add(cv, SectionWorkExperience)
	require.True(t, ok)
	return cv, cv.WorkExperience[0].ID
}

func TestAddBulletPoint(t *testing.T) {
	cv, id := workCVWithOneEntry(t)

	out, ok := AddBulletPoint(cv, SectionWorkExperience, id)
	require.True(t, ok)
	assert.Equal(t, []string{"", ""}, out.WorkExperience[0].BulletPoints)
}

func TestAddBulletPoint_UnknownParentIsNoOp(t *testing.T) {
	cv, _ := workCVWithOneEntry(t)

	out, ok := AddBulletPoint(cv, SectionWorkExperience, "ghost")
	assert.True(t, ok)
	assert.Equal(t, cv.WorkExperience, out.WorkExperience)
}

func TestAddBulletPoint_SectionWithoutBullets(t *testing.T) {
	cv := types.Empty()
	cv, _ = Add(cv, SectionEducation)

	_, ok := AddBulletPoint(cv, SectionEducation, cv.Education[0].ID)
	assert.False(t, ok)
}

func TestUpdateBulletPoint(t *testing.T) {
	cv, id := workCVWithOneEntry(t)

	out, ok := UpdateBulletPoint(cv, SectionWorkExperience, id, 0, "Shipped X")
	require.True(t, ok)
	assert.Equal(t, []string{"Shipped X"}, out.WorkExperience[0].BulletPoints)

	// Out-of-range index no-ops.
	out, _ = UpdateBulletPoint(out, SectionWorkExperience, id, 7, "nope")
	assert.Equal(t, []string{"Shipped X"}, out.WorkExperience[0].BulletPoints)
}

func TestRemoveBulletPoint_FloorOfOne(t *testing.T) {
	cv, id := workCVWithOneEntry(t)
	require.Len(t, cv.WorkExperience[0].BulletPoints, 1)

	// Removing the last remaining bullet leaves the sequence unchanged.
	out, ok := RemoveBulletPoint(cv, SectionWorkExperience, id, 0)
	require.True(t, ok)
	assert.Equal(t, []string{""}, out.WorkExperience[0].BulletPoints)
}

func TestRemoveBulletPoint_AboveFloor(t *testing.T) {
	cv, id := workCVWithOneEntry(t)
	cv, _ = AddBulletPoint(cv, SectionWorkExperience, id)
	cv, _ = UpdateBulletPoint(cv, SectionWorkExperience, id, 0, "first")
	cv, _ = UpdateBulletPoint(cv, SectionWorkExperience, id, 1, "second")

	out, _ := RemoveBulletPoint(cv, SectionWorkExperience, id, 0)
	assert.Equal(t, []string{"second"}, out.WorkExperience[0].BulletPoints)
}

func TestBulletPoints_Volunteering(t *testing.T) {
	cv := types.Empty()
	cv, _ = Add(cv, SectionVolunteering)
	id := cv.Volunteering[0].ID

	cv, ok := AddBulletPoint(cv, SectionVolunteering, id)
	require.True(t, ok)
	cv, _ = UpdateBulletPoint(cv, SectionVolunteering, id, 1, "Organized drive")
	assert.Equal(t, []string{"", "Organized drive"}, cv.Volunteering[0].BulletPoints)

	cv, _ = RemoveBulletPoint(cv, SectionVolunteering, id, 0)
	assert.Equal(t, []string{"Organized drive"}, cv.Volunteering[0].BulletPoints)
}
