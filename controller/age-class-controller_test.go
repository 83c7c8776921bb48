package controller

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"

	"kmteams/classification"
	"kmteams/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakePreviewer struct {
	preview *service.AgeClassPreview
	err     error
	year    int
}

func (f *fakePreviewer) PreviewAgeClass(ctx context.Context, birthYear int, gender string, year int, disciplineId string) (*service.AgeClassPreview, error) {
	f.year = year
	return f.preview, f.err
}

func newAgeClassRouter(previewer ageClassPreviewer) *gin.Engine {
	e := &AgeClassController{ageClassService: previewer, defaultYear: 2025}
	r := gin.New()
	r.GET("/api/age-class", e.getAgeClassHandler())
	return r
}

func TestGetAgeClass(t *testing.T) {
	previewer := &fakePreviewer{preview: &service.AgeClassPreview{
		AgeClass: classification.AgeClass{CoarseKey: classification.CoarseSenioren0, FineLabel: "Senioren 0 m"},
		Age:      45,
	}}

	w := get(newAgeClassRouter(previewer), "/api/age-class?birth_year=1980&gender=m&discipline_id=kk-auflage")

	require.Equal(t, 200, w.Code)
	assert.Equal(t, 2025, previewer.year)
	var response AgeClassResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, AgeClassResponse{
		DisciplineID: "kk-auflage",
		Year:         2025,
		Age:          45,
		AgeClass:     classification.CoarseSenioren0,
		FineLabel:    "Senioren 0 m",
	}, response)
}

func TestGetAgeClassErrors(t *testing.T) {
	ineligible := newAgeClassRouter(&fakePreviewer{err: classification.ErrIneligibleAgeClass})
	w := get(ineligible, "/api/age-class?birth_year=1995&gender=m&discipline_id=kk-auflage&year=2025")
	assert.Equal(t, 422, w.Code)
	assert.Contains(t, w.Body.String(), string(classification.ReasonIneligibleAgeClass))

	missing := newAgeClassRouter(&fakePreviewer{err: gorm.ErrRecordNotFound})
	assert.Equal(t, 404, get(missing, "/api/age-class?birth_year=1995&gender=m&discipline_id=nope").Code)

	invalid := newAgeClassRouter(&fakePreviewer{err: fmt.Errorf("%w: birth year 2030 out of range for 2025", service.ErrInvalidPreviewInput)})
	w = get(invalid, "/api/age-class?birth_year=2030&gender=m&discipline_id=lp&year=2025")
	assert.Equal(t, 400, w.Code)
	assert.Contains(t, w.Body.String(), "birth year 2030")

	ok := newAgeClassRouter(&fakePreviewer{})
	assert.Equal(t, 400, get(ok, "/api/age-class?gender=m&discipline_id=lp").Code)
	assert.Equal(t, 400, get(ok, "/api/age-class?birth_year=1995&gender=m").Code)
	assert.Equal(t, 400, get(ok, "/api/age-class?birth_year=1995&gender=m&discipline_id=lp&year=next").Code)
}
