package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/stitts-dev/caddie/internal/services"
	"github.com/stitts-dev/caddie/internal/store"
	"github.com/stitts-dev/caddie/internal/validation"
	"github.com/stitts-dev/caddie/pkg/utils"
)

type CourseHandler struct {
	store  store.Store
	caddie *services.CaddieService
	logger *logrus.Logger
}

func NewCourseHandler(st store.Store, caddie *services.CaddieService, logger *logrus.Logger) *CourseHandler {
	return &CourseHandler{
		store:  st,
		caddie: caddie,
		logger: logger,
	}
}

// ListCourses returns every course
func (h *CourseHandler) ListCourses(c *gin.Context) {
	courses, err := h.store.ListCourses(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	utils.SendSuccessWithMeta(c, courses, &utils.Meta{Total: len(courses)})
}

// SearchCourses matches ?q= against course names, ids and aliases
func (h *CourseHandler) SearchCourses(c *gin.Context) {
	q := strings.TrimSpace(c.Query("q"))
	if q == "" {
		utils.SendValidationError(c, "Query parameter q is required", nil)
		return
	}

	courses, err := h.store.SearchCourses(c.Request.Context(), q)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	utils.SendSuccessWithMeta(c, courses, &utils.Meta{Total: len(courses), Query: q})
}

// GetCourse returns a course with its holes
func (h *CourseHandler) GetCourse(c *gin.Context) {
	course, err := h.store.GetCourse(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	utils.SendSuccess(c, course)
}

// GetCourseQuality returns the data-quality report for a course
func (h *CourseHandler) GetCourseQuality(c *gin.Context) {
	course, err := h.store.GetCourse(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	utils.SendSuccess(c, store.CheckCourse(*course))
}

// CreateCourse stores a course and reports any data-quality issues
func (h *CourseHandler) CreateCourse(c *gin.Context) {
	var req CourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	if err := validation.ValidateStruct(req); err != nil {
		respondError(c, h.logger, err)
		return
	}

	course, err := req.toModel()
	if err != nil {
		utils.SendValidationError(c, "Invalid course", err.Error())
		return
	}

	report, err := h.caddie.SaveCourse(c.Request.Context(), &course)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	utils.SendCreated(c, gin.H{
		"course":  course,
		"quality": report,
	})
}
