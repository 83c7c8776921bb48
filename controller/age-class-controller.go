package controller

import (
	"context"
	"errors"
	"strconv"

	"kmteams/classification"
	"kmteams/config"
	"kmteams/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ageClassPreviewer interface {
	PreviewAgeClass(ctx context.Context, birthYear int, gender string, year int, disciplineId string) (*service.AgeClassPreview, error)
}

type AgeClassController struct {
	ageClassService ageClassPreviewer
	defaultYear     int
}

func NewAgeClassController(db *gorm.DB, cfg *config.Config) *AgeClassController {
	return &AgeClassController{
		ageClassService: service.NewAgeClassService(db),
		defaultYear:     cfg.DefaultCompetitionYear,
	}
}

func setupAgeClassController(db *gorm.DB, cfg *config.Config) []RouteInfo {
	e := NewAgeClassController(db, cfg)
	return []RouteInfo{
		{Method: "GET", Path: "/age-class", HandlerFunc: e.getAgeClassHandler()},
	}
}

// @Description Classifies a single shooter for a discipline
// @Tags age-class
// @Produce json
// @Param birth_year query int true "Birth year"
// @Param gender query string true "Gender"
// @Param discipline_id query string true "Discipline ID"
// @Param year query int false "Competition year"
// @Success 200 {object} AgeClassResponse
// @Router /age-class [get]
func (e *AgeClassController) getAgeClassHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		birthYear, err := strconv.Atoi(c.Query("birth_year"))
		if err != nil {
			c.JSON(400, gin.H{"error": "birth_year must be a number"})
			return
		}
		year := e.defaultYear
		if raw := c.Query("year"); raw != "" {
			year, err = strconv.Atoi(raw)
			if err != nil {
				c.JSON(400, gin.H{"error": "year must be a number"})
				return
			}
		}
		disciplineId := c.Query("discipline_id")
		if disciplineId == "" {
			c.JSON(400, gin.H{"error": "discipline_id is required"})
			return
		}

		preview, err := e.ageClassService.PreviewAgeClass(c.Request.Context(), birthYear, c.Query("gender"), year, disciplineId)
		if err != nil {
			switch {
			case errors.Is(err, service.ErrInvalidPreviewInput):
				c.JSON(400, gin.H{"error": err.Error()})
			case errors.Is(err, gorm.ErrRecordNotFound):
				c.JSON(404, gin.H{"error": "Discipline not found"})
			case errors.Is(err, classification.ErrIneligible):
				c.JSON(422, gin.H{"error": err.Error(), "reason": classification.Reason(err)})
			default:
				c.JSON(500, gin.H{"error": err.Error()})
			}
			return
		}
		c.JSON(200, AgeClassResponse{
			DisciplineID: disciplineId,
			Year:         year,
			Age:          preview.Age,
			AgeClass:     preview.AgeClass.CoarseKey,
			FineLabel:    preview.AgeClass.FineLabel,
		})
	}
}

type AgeClassResponse struct {
	DisciplineID string `json:"discipline_id"`
	Year         int    `json:"year"`
	Age          int    `json:"age"`
	AgeClass     string `json:"age_class"`
	FineLabel    string `json:"fine_label"`
}
