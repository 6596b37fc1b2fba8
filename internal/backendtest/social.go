package backendtest

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

func (env *Env) myCourses(c echo.Context) error {
	user := env.authenticate(c)
	if user == nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"message": "unauthorized"})
	}

	var enrollments []Enrollment
	if err := env.DB.Where("user_id = ?", user.ID).Find(&enrollments).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "cannot list enrollments"})
	}

	courses := make([]Course, 0, len(enrollments))
	for _, enrollment := range enrollments {
		var course Course
		if err := env.DB.Where("id = ?", enrollment.CourseID).First(&course).Error; err == nil {
			courses = append(courses, course)
		}
	}
	return c.JSON(http.StatusOK, env.coursesToPayload(courses))
}

func (env *Env) enroll(c echo.Context) error {
	user := env.authenticate(c)
	if user == nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"message": "unauthorized"})
	}

	var req struct {
		CourseID string `json:"course_id"`
	}
	if err := c.Bind(&req); err != nil || req.CourseID == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "course_id is required"})
	}

	var course Course
	if err := env.DB.Where("id = ?", req.CourseID).First(&course).Error; err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"message": "course not found"})
	}

	if err := env.DB.Create(&Enrollment{CourseID: req.CourseID, UserID: user.ID}).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "cannot enroll"})
	}
	return c.JSON(http.StatusCreated, echo.Map{"ok": true})
}

type commentPayload struct {
	CourseID   string `json:"course_id"`
	UserID     string `json:"user_id"`
	UserName   string `json:"user_name"`
	UserAvatar string `json:"user_avatar"`
	Comment    string `json:"comment"`
}

func (env *Env) listComments(c echo.Context) error {
	courseID := c.Param("courseId")

	var comments []Comment
	if err := env.DB.Where("course_id = ?", courseID).Find(&comments).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "cannot list comments"})
	}
	if len(comments) == 0 {
		return c.JSON(http.StatusNotFound, echo.Map{"message": "no comments"})
	}

	payloads := make([]commentPayload, 0, len(comments))
	for _, comment := range comments {
		payload := commentPayload{
			CourseID: comment.CourseID,
			UserID:   comment.UserID,
			Comment:  comment.Text,
		}
		var user User
		if err := env.DB.Where("id = ?", comment.UserID).First(&user).Error; err == nil {
			payload.UserName = user.Username
			payload.UserAvatar = user.Avatar
		}
		payloads = append(payloads, payload)
	}
	return c.JSON(http.StatusOK, payloads)
}

func (env *Env) createComment(c echo.Context) error {
	var req struct {
		CourseID string `json:"course_id"`
		UserID   string `json:"user_id"`
		Text     string `json:"text"`
	}
	if err := c.Bind(&req); err != nil || req.CourseID == "" || req.UserID == "" || req.Text == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid comment"})
	}

	if err := env.DB.Create(&Comment{CourseID: req.CourseID, UserID: req.UserID, Text: req.Text}).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "cannot create comment"})
	}
	return c.JSON(http.StatusCreated, echo.Map{"ok": true})
}

func (env *Env) updateComment(c echo.Context) error {
	var req struct {
		CourseID string `json:"course_id"`
		UserID   string `json:"user_id"`
		Text     string `json:"text"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid comment"})
	}

	var comment Comment
	err := env.DB.Where("course_id = ? AND user_id = ?", req.CourseID, req.UserID).First(&comment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "cannot update comment"})
	}

	comment.Text = req.Text
	if err := env.DB.Save(&comment).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "cannot update comment"})
	}
	return c.JSON(http.StatusOK, echo.Map{"ok": true})
}

func (env *Env) listRatings(c echo.Context) error {
	var ratings []Rating
	if err := env.DB.Find(&ratings).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "cannot list ratings"})
	}

	type ratingPayload struct {
		CourseID string `json:"course_id"`
		UserID   string `json:"user_id"`
		Rating   int    `json:"rating"`
	}
	payloads := make([]ratingPayload, 0, len(ratings))
	for _, rating := range ratings {
		payloads = append(payloads, ratingPayload{CourseID: rating.CourseID, UserID: rating.UserID, Rating: rating.Rating})
	}
	return c.JSON(http.StatusOK, payloads)
}

func (env *Env) createRating(c echo.Context) error {
	var req struct {
		CourseID string `json:"course_id"`
		UserID   string `json:"user_id"`
		Rating   *int   `json:"rating"`
	}
	if err := c.Bind(&req); err != nil || req.CourseID == "" || req.UserID == "" || req.Rating == nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid rating"})
	}

	if err := env.DB.Create(&Rating{CourseID: req.CourseID, UserID: req.UserID, Rating: *req.Rating}).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "cannot create rating"})
	}
	return c.JSON(http.StatusCreated, echo.Map{"ok": true})
}

func (env *Env) updateRating(c echo.Context) error {
	var req struct {
		CourseID string `json:"course_id"`
		UserID   string `json:"user_id"`
		Rating   *int   `json:"rating"`
	}
	if err := c.Bind(&req); err != nil || req.Rating == nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid rating"})
	}

	var rating Rating
	err := env.DB.Where("course_id = ? AND user_id = ?", req.CourseID, req.UserID).First(&rating).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "cannot update rating"})
	}

	rating.Rating = *req.Rating
	if err := env.DB.Save(&rating).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "cannot update rating"})
	}
	return c.JSON(http.StatusOK, echo.Map{"ok": true})
}
