package backendtest

import "time"

type User struct {
	ID           string    `gorm:"primaryKey"       json:"id"`
	Email        string    `gorm:"unique;not null"  json:"email"`
	Username     string    `gorm:"not null"         json:"username"`
	Avatar       string    `json:"avatar"`
	PasswordHash string    `gorm:"not null"         json:"-"`
	Role         string    `gorm:"not null"         json:"role"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

type Course struct {
	ID          string    `gorm:"primaryKey"  json:"id"`
	CourseName  string    `gorm:"not null"    json:"course_name"`
	Description string    `json:"description"`
	Image       string    `json:"image"`
	Price       float64   `json:"price"`
	Duration    int       `json:"duration"`
	Capacity    int       `json:"capacity"`
	CategoryID  string    `gorm:"index"       json:"category_id"`
	InitDate    time.Time `json:"init_date"`
	State       bool      `json:"state"`
}

type Category struct {
	ID           string `gorm:"primaryKey"      json:"id"`
	CategoryName string `gorm:"unique;not null" json:"category_name"`
}

type Enrollment struct {
	ID       uint   `gorm:"primaryKey;autoIncrement"`
	CourseID string `gorm:"index;not null"`
	UserID   string `gorm:"index;not null"`
}

type Comment struct {
	ID       uint   `gorm:"primaryKey;autoIncrement"`
	CourseID string `gorm:"index;not null"`
	UserID   string `gorm:"not null"`
	Text     string `gorm:"not null"`
}

type Rating struct {
	ID       uint   `gorm:"primaryKey;autoIncrement"`
	CourseID string `gorm:"index;not null"`
	UserID   string `gorm:"not null"`
	Rating   int    `gorm:"not null"`
}
