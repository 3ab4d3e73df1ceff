package server

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// pngHeader is the PNG signature plus filler, enough for content sniffing.
var pngHeader = append([]byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}, make([]byte, 64)...)

func TestAddEntity_EverySection(t *testing.T) {
	s := newTestServer(t)

	for _, section := range []string{"workExperience", "education", "volunteering", "skills", "languages", "references", "socialMedia", "projects"} {
		rec := doJSON(t, s, http.MethodPost, "/cv/"+section, nil)
		assert.Equal(t, http.StatusCreated, rec.Code, "section %s", section)
	}

	cv := decodeCV(t, doJSON(t, s, http.MethodGet, "/cv", nil))
	assert.Len(t, cv.WorkExperience, 1)
	assert.Len(t, cv.Education, 1)
	assert.Len(t, cv.Volunteering, 1)
	assert.Len(t, cv.Skills, 1)
	assert.Len(t, cv.Languages, 1)
	assert.Len(t, cv.References, 1)
	assert.Len(t, cv.SocialMedia, 1)
	assert.Len(t, cv.Projects, 1)

	assert.NotEmpty(t, cv.WorkExperience[0].ID)
	assert.Equal(t, []string{""}, cv.WorkExperience[0].BulletPoints)
	assert.Equal(t, 50, cv.Skills[0].Percentage)
}

func TestAddEntity_UnknownSection(t *testing.T) {
	s := newTestServer(t)

	rec := doJSON(t, s, http.MethodPost, "/cv/certifications", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "unknown CV section")
}

func TestUpdateEntity_SingleField(t *testing.T) {
	s := newTestServer(t)

	cv := decodeCV(t, doJSON(t, s, http.MethodPost, "/cv/workExperience", nil))
	id := cv.WorkExperience[0].ID

	rec := doJSON(t, s, http.MethodPatch, "/cv/workExperience/"+id, FieldUpdateRequest{Field: "company", Value: "Acme"})
	require.Equal(t, http.StatusOK, rec.Code)

	got := decodeCV(t, rec)
	assert.Equal(t, "Acme", got.WorkExperience[0].Company)
	assert.Empty(t, got.WorkExperience[0].JobTitle, "untouched fields stay at defaults")
}

func TestUpdateEntity_UnknownIDIsNoOp(t *testing.T) {
	s := newTestServer(t)

	doJSON(t, s, http.MethodPost, "/cv/skills", nil)
	before := decodeCV(t, doJSON(t, s, http.MethodGet, "/cv", nil))

	rec := doJSON(t, s, http.MethodPatch, "/cv/skills/no-such-id", FieldUpdateRequest{Field: "name", Value: "Go"})
	require.Equal(t, http.StatusOK, rec.Code)

	after := decodeCV(t, doJSON(t, s, http.MethodGet, "/cv", nil))
	assert.Equal(t, before, after)
}

func TestUpdateEntity_PercentageClamped(t *testing.T) {
	s := newTestServer(t)

	cv := decodeCV(t, doJSON(t, s, http.MethodPost, "/cv/skills", nil))
	id := cv.Skills[0].ID

	got := decodeCV(t, doJSON(t, s, http.MethodPatch, "/cv/skills/"+id, FieldUpdateRequest{Field: "percentage", Value: 150}))
	assert.Equal(t, 100, got.Skills[0].Percentage)

	got = decodeCV(t, doJSON(t, s, http.MethodPatch, "/cv/skills/"+id, FieldUpdateRequest{Field: "percentage", Value: -5}))
	assert.Equal(t, 0, got.Skills[0].Percentage)
}

func TestRemoveEntity(t *testing.T) {
	s := newTestServer(t)

	cv := decodeCV(t, doJSON(t, s, http.MethodPost, "/cv/references", nil))
	id := cv.References[0].ID

	rec := doJSON(t, s, http.MethodDelete, "/cv/references/"+id, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	got := decodeCV(t, rec)
	assert.Empty(t, got.References)
}

func TestUpdatePersonalInfo(t *testing.T) {
	s := newTestServer(t)

	rec := doJSON(t, s, http.MethodPatch, "/cv/personal-info", FieldUpdateRequest{Field: "fullName", Value: "Ada Lovelace"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Ada Lovelace")

	cv := decodeCV(t, doJSON(t, s, http.MethodGet, "/cv", nil))
	assert.Equal(t, "Ada Lovelace", cv.PersonalInfo.FullName)
}

func TestUpdatePersonalInfo_RejectsNonString(t *testing.T) {
	s := newTestServer(t)

	rec := doJSON(t, s, http.MethodPatch, "/cv/personal-info", FieldUpdateRequest{Field: "fullName", Value: 42})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUploadPhoto(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/cv/photo", bytes.NewReader(pngHeader))
	rec := httptest.NewRecorder()
	s.routes().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	cv := decodeCV(t, doJSON(t, s, http.MethodGet, "/cv", nil))
	assert.True(t, strings.HasPrefix(cv.PersonalInfo.ProfilePhoto, "data:image/png;base64,"))
}

func TestUploadPhoto_RejectsNonImage(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/cv/photo", strings.NewReader("just some text"))
	rec := httptest.NewRecorder()
	s.routes().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	cv := decodeCV(t, doJSON(t, s, http.MethodGet, "/cv", nil))
	assert.Empty(t, cv.PersonalInfo.ProfilePhoto)
}

func TestRemovePhoto(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/cv/photo", bytes.NewReader(pngHeader))
	s.routes().ServeHTTP(httptest.NewRecorder(), req)

	rec := doJSON(t, s, http.MethodDelete, "/cv/photo", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	cv := decodeCV(t, doJSON(t, s, http.MethodGet, "/cv", nil))
	assert.Empty(t, cv.PersonalInfo.ProfilePhoto)
}

func TestHobbies_IndexAddressed(t *testing.T) {
	s := newTestServer(t)

	rec := doJSON(t, s, http.MethodPost, "/cv/hobbies", nil)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `[""]`, rec.Body.String())

	rec = doJSON(t, s, http.MethodPatch, "/cv/hobbies/0", FieldUpdateRequest{Value: "chess"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `["chess"]`, rec.Body.String())

	// Out-of-range index is a no-op, not an error.
	rec = doJSON(t, s, http.MethodPatch, "/cv/hobbies/9", FieldUpdateRequest{Value: "sailing"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `["chess"]`, rec.Body.String())

	rec = doJSON(t, s, http.MethodDelete, "/cv/hobbies/0", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestHobbies_InvalidIndex(t *testing.T) {
	s := newTestServer(t)

	rec := doJSON(t, s, http.MethodPatch, "/cv/hobbies/first", FieldUpdateRequest{Value: "chess"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestBullets_AddUpdateRemove(t *testing.T) {
	s := newTestServer(t)

	cv := decodeCV(t, doJSON(t, s, http.MethodPost, "/cv/workExperience", nil))
	id := cv.WorkExperience[0].ID

	rec := doJSON(t, s, http.MethodPost, "/cv/workExperience/"+id+"/bullets", nil)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Len(t, decodeCV(t, rec).WorkExperience[0].BulletPoints, 2)

	rec = doJSON(t, s, http.MethodPatch, "/cv/workExperience/"+id+"/bullets/1", map[string]string{"value": "Shipped X"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Shipped X", decodeCV(t, rec).WorkExperience[0].BulletPoints[1])

	rec = doJSON(t, s, http.MethodDelete, "/cv/workExperience/"+id+"/bullets/0", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{"Shipped X"}, decodeCV(t, rec).WorkExperience[0].BulletPoints)
}

func TestBullets_FloorOfOne(t *testing.T) {
	s := newTestServer(t)

	cv := decodeCV(t, doJSON(t, s, http.MethodPost, "/cv/volunteering", nil))
	id := cv.Volunteering[0].ID

	rec := doJSON(t, s, http.MethodDelete, "/cv/volunteering/"+id+"/bullets/0", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decodeCV(t, rec).Volunteering[0].BulletPoints, 1, "the last bullet slot cannot be removed")
}

func TestBullets_SectionWithoutBullets(t *testing.T) {
	s := newTestServer(t)

	cv := decodeCV(t, doJSON(t, s, http.MethodPost, "/cv/skills", nil))
	id := cv.Skills[0].ID

	rec := doJSON(t, s, http.MethodPost, "/cv/skills/"+id+"/bullets", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
