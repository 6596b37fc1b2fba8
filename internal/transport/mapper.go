package transport

import (
	"time"

	"github.com/edworks/course_catalog/internal/models"
)

// Defaults applied when the backend omits optional course fields.
const (
	DefaultPrice    = 0
	DefaultDuration = 0
	DefaultCapacity = 15
)

// CourseFromDTO translates a wire course into the domain shape, filling
// defaults for whatever the backend left out. Unknown wire fields are
// already gone after decoding; nothing here errors.
func CourseFromDTO(dto CourseDTO) models.Course {
	course := models.Course{
		ID:           dto.ID,
		CourseName:   dto.CourseName,
		Description:  dto.Description,
		Image:        dto.Image,
		Price:        DefaultPrice,
		Duration:     DefaultDuration,
		Capacity:     DefaultCapacity,
		CategoryID:   dto.CategoryID,
		CategoryName: dto.CategoryName,
		State:        true,
		RatingAvg:    dto.RatingAvg,
	}
	if dto.Price != nil {
		course.Price = *dto.Price
	}
	if dto.Duration != nil {
		course.Duration = *dto.Duration
	}
	if dto.Capacity != nil {
		course.Capacity = *dto.Capacity
	}
	if dto.State != nil {
		course.State = *dto.State
	}
	if t, err := time.Parse(time.RFC3339, dto.InitDate); err == nil {
		course.InitDate = t
	}
	return course
}

func CoursesFromDTO(dtos []CourseDTO) []models.Course {
	courses := make([]models.Course, 0, len(dtos))
	for _, dto := range dtos {
		courses = append(courses, CourseFromDTO(dto))
	}
	return courses
}

// CategoryFromDTO prefers the listing id but accepts the creation spelling.
func CategoryFromDTO(dto CategoryDTO) models.Category {
	id := dto.ID
	if id == "" {
		id = dto.CategoryID
	}
	return models.Category{ID: id, CategoryName: dto.CategoryName}
}

func CategoriesFromDTO(dtos []CategoryDTO) []models.Category {
	categories := make([]models.Category, 0, len(dtos))
	for _, dto := range dtos {
		categories = append(categories, CategoryFromDTO(dto))
	}
	return categories
}

// CommentFromDTO copies known fields; optional fields missing on the wire
// stay empty rather than failing.
func CommentFromDTO(dto CommentDTO) models.Comment {
	return models.Comment{
		CourseID:   dto.CourseID,
		UserID:     dto.UserID,
		UserName:   dto.UserName,
		UserAvatar: dto.UserAvatar,
		Text:       dto.Comment,
	}
}

func CommentsFromDTO(dtos []CommentDTO) []models.Comment {
	comments := make([]models.Comment, 0, len(dtos))
	for _, dto := range dtos {
		comments = append(comments, CommentFromDTO(dto))
	}
	return comments
}

func RatingFromDTO(dto RatingDTO) models.Rating {
	return models.Rating{CourseID: dto.CourseID, UserID: dto.UserID, Rating: dto.Rating}
}

func RatingsFromDTO(dtos []RatingDTO) []models.Rating {
	ratings := make([]models.Rating, 0, len(dtos))
	for _, dto := range dtos {
		ratings = append(ratings, RatingFromDTO(dto))
	}
	return ratings
}

// UserFromDTO normalizes the role code and parses timestamps tolerantly;
// unparseable timestamps stay zero.
func UserFromDTO(dto UserDTO) models.User {
	user := models.User{
		ID:       dto.ID,
		Email:    dto.Email,
		Username: dto.Username,
		Avatar:   dto.Avatar,
		Role:     models.NormalizeRole(dto.Role),
	}
	if t, err := time.Parse(time.RFC3339, dto.CreatedAt); err == nil {
		user.CreatedAt = t
	}
	if t, err := time.Parse(time.RFC3339, dto.UpdatedAt); err == nil {
		user.UpdatedAt = t
	}
	return user
}
