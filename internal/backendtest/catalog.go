package backendtest

import (
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type coursePayload struct {
	ID           string  `json:"id"`
	CourseName   string  `json:"course_name"`
	Description  string  `json:"description"`
	Image        string  `json:"image"`
	Price        float64 `json:"price"`
	Duration     int     `json:"duration"`
	Capacity     int     `json:"capacity"`
	CategoryID   string  `json:"category_id"`
	CategoryName string  `json:"category_name"`
	InitDate     string  `json:"init_date"`
	State        bool    `json:"state"`
	RatingAvg    float64 `json:"ratingavg"`
}

func (env *Env) courseToPayload(course Course) coursePayload {
	payload := coursePayload{
		ID:          course.ID,
		CourseName:  course.CourseName,
		Description: course.Description,
		Image:       course.Image,
		Price:       course.Price,
		Duration:    course.Duration,
		Capacity:    course.Capacity,
		CategoryID:  course.CategoryID,
		InitDate:    course.InitDate.Format(time.RFC3339),
		State:       course.State,
	}

	var category Category
	if err := env.DB.Where("id = ?", course.CategoryID).First(&category).Error; err == nil {
		payload.CategoryName = category.CategoryName
	}

	var ratings []Rating
	if err := env.DB.Where("course_id = ?", course.ID).Find(&ratings).Error; err == nil && len(ratings) > 0 {
		sum := 0
		for _, r := range ratings {
			sum += r.Rating
		}
		payload.RatingAvg = float64(sum) / float64(len(ratings))
	}

	return payload
}

func (env *Env) coursesToPayload(courses []Course) []coursePayload {
	payloads := make([]coursePayload, 0, len(courses))
	for _, course := range courses {
		payloads = append(payloads, env.courseToPayload(course))
	}
	return payloads
}

func (env *Env) listCourses(c echo.Context) error {
	var courses []Course
	if err := env.DB.Order("course_name ASC").Find(&courses).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "cannot list courses"})
	}

	filter := c.QueryParam("filter")
	if filter == "" {
		return c.JSON(http.StatusOK, env.coursesToPayload(courses))
	}

	matched := make([]Course, 0, len(courses))
	for _, course := range courses {
		if strings.Contains(strings.ToLower(course.CourseName), strings.ToLower(filter)) {
			matched = append(matched, course)
		}
	}
	return c.JSON(http.StatusOK, env.coursesToPayload(matched))
}

func (env *Env) createCourse(c echo.Context) error {
	var req struct {
		CourseName  string  `json:"course_name"`
		Description string  `json:"description"`
		Image       string  `json:"image"`
		Price       float64 `json:"price"`
		Duration    int     `json:"duration"`
		Capacity    int     `json:"capacity"`
		CategoryID  string  `json:"category_id"`
		InitDate    string  `json:"init_date"`
		State       bool    `json:"state"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid body"})
	}
	if req.CourseName == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "course_name is required"})
	}

	initDate, err := time.Parse(time.RFC3339, req.InitDate)
	if err != nil {
		initDate = time.Now().UTC()
	}

	course := Course{
		ID:          uuid.NewString(),
		CourseName:  req.CourseName,
		Description: req.Description,
		Image:       req.Image,
		Price:       req.Price,
		Duration:    req.Duration,
		Capacity:    req.Capacity,
		CategoryID:  req.CategoryID,
		InitDate:    initDate,
		State:       req.State,
	}
	if err := env.DB.Create(&course).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "cannot create course"})
	}

	return c.JSON(http.StatusCreated, env.courseToPayload(course))
}

func (env *Env) updateCourse(c echo.Context) error {
	id := c.Param("id")

	var course Course
	if err := env.DB.Where("id = ?", id).First(&course).Error; err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"message": "not found"})
	}

	var req struct {
		CourseName  *string  `json:"course_name"`
		Description *string  `json:"description"`
		Image       *string  `json:"image"`
		Price       *float64 `json:"price"`
		Duration    *int     `json:"duration"`
		Capacity    *int     `json:"capacity"`
		CategoryID  *string  `json:"category_id"`
		InitDate    *string  `json:"init_date"`
		State       *bool    `json:"state"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid body"})
	}

	if req.CourseName != nil {
		course.CourseName = *req.CourseName
	}
	if req.Description != nil {
		course.Description = *req.Description
	}
	if req.Image != nil {
		course.Image = *req.Image
	}
	if req.Price != nil {
		course.Price = *req.Price
	}
	if req.Duration != nil {
		course.Duration = *req.Duration
	}
	if req.Capacity != nil {
		course.Capacity = *req.Capacity
	}
	if req.CategoryID != nil {
		course.CategoryID = *req.CategoryID
	}
	if req.InitDate != nil {
		if t, err := time.Parse(time.RFC3339, *req.InitDate); err == nil {
			course.InitDate = t
		}
	}
	if req.State != nil {
		course.State = *req.State
	}

	if err := env.DB.Save(&course).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "cannot update course"})
	}
	return c.JSON(http.StatusOK, env.courseToPayload(course))
}

func (env *Env) deleteCourse(c echo.Context) error {
	id := c.Param("id")
	if err := env.DB.Where("id = ?", id).Delete(&Course{}).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "cannot delete course"})
	}
	return c.JSON(http.StatusOK, echo.Map{"ok": true})
}

func (env *Env) listCategories(c echo.Context) error {
	var categories []Category
	if err := env.DB.Order("category_name ASC").Find(&categories).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "cannot list categories"})
	}
	return c.JSON(http.StatusOK, categories)
}

func (env *Env) createCategory(c echo.Context) error {
	var req struct {
		CategoryName string `json:"category_name"`
	}
	if err := c.Bind(&req); err != nil || req.CategoryName == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "category_name is required"})
	}

	category := Category{ID: uuid.NewString(), CategoryName: req.CategoryName}
	if err := env.DB.Create(&category).Error; err != nil {
		return c.JSON(http.StatusConflict, echo.Map{"message": "category already exists"})
	}

	return c.JSON(http.StatusCreated, echo.Map{
		"category_id":   category.ID,
		"category_name": category.CategoryName,
	})
}
