package models

import "time"

type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

// NormalizeRole maps the role codes the backend has used over time onto the
// Role enum. Legacy numeric codes encode admin as 1; everything unrecognized
// degrades to the unprivileged role.
func NormalizeRole(raw any) Role {
	switch v := raw.(type) {
	case string:
		if v == string(RoleAdmin) {
			return RoleAdmin
		}
	case float64:
		if v == 1 {
			return RoleAdmin
		}
	case int:
		if v == 1 {
			return RoleAdmin
		}
	}
	return RoleUser
}

type User struct {
	ID        string
	Email     string
	Username  string
	Avatar    string
	Role      Role
	CreatedAt time.Time
	UpdatedAt time.Time
}

type Course struct {
	ID           string
	CourseName   string
	Description  string
	Image        string
	Price        float64
	Duration     int
	Capacity     int
	CategoryID   string
	CategoryName string
	InitDate     time.Time
	State        bool
	RatingAvg    float64
}

type Category struct {
	ID           string
	CategoryName string
}

type Comment struct {
	CourseID   string
	UserID     string
	UserName   string
	UserAvatar string
	Text       string
}

type Rating struct {
	CourseID string
	UserID   string
	Rating   int
}
