package transport

// Wire shapes for the course-catalog REST API. Field names follow the
// backend's JSON conventions: snake_case for catalog resources, the
// capitalized legacy names for auth request bodies.

type LoginRequest struct {
	Email    string `json:"Email"`
	Password string `json:"Password"`
}

type RegisterRequest struct {
	Username string `json:"Username"`
	Email    string `json:"Email"`
	Password string `json:"Password"`
}

type UserDTO struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	Username  string `json:"username"`
	Avatar    string `json:"avatar"`
	Role      any    `json:"role"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

type AuthResponse struct {
	Token string  `json:"token"`
	User  UserDTO `json:"user"`
}

// CourseDTO uses pointers for the fields the backend may omit so the mapper
// can tell "absent" from a zero value.
type CourseDTO struct {
	ID           string   `json:"id"`
	CourseName   string   `json:"course_name"`
	Description  string   `json:"description"`
	Image        string   `json:"image"`
	Price        *float64 `json:"price"`
	Duration     *int     `json:"duration"`
	Capacity     *int     `json:"capacity"`
	CategoryID   string   `json:"category_id"`
	CategoryName string   `json:"category_name"`
	InitDate     string   `json:"init_date"`
	State        *bool    `json:"state"`
	RatingAvg    float64  `json:"ratingavg"`
}

// CategoryDTO carries both id spellings: listing returns "id", creation
// returns "category_id".
type CategoryDTO struct {
	ID           string `json:"id"`
	CategoryID   string `json:"category_id"`
	CategoryName string `json:"category_name"`
}

type CommentDTO struct {
	CourseID   string `json:"course_id"`
	UserID     string `json:"user_id"`
	UserName   string `json:"user_name"`
	UserAvatar string `json:"user_avatar"`
	Comment    string `json:"comment"`
}

type RatingDTO struct {
	CourseID string `json:"course_id"`
	UserID   string `json:"user_id"`
	Rating   int    `json:"rating"`
}

type CreateCourseRequest struct {
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

// UpdateCourseRequest is a partial update: nil fields are left out of the
// body and keep their server-side values.
type UpdateCourseRequest struct {
	CourseName  *string  `json:"course_name,omitempty"`
	Description *string  `json:"description,omitempty"`
	Image       *string  `json:"image,omitempty"`
	Price       *float64 `json:"price,omitempty"`
	Duration    *int     `json:"duration,omitempty"`
	Capacity    *int     `json:"capacity,omitempty"`
	CategoryID  *string  `json:"category_id,omitempty"`
	InitDate    *string  `json:"init_date,omitempty"`
	State       *bool    `json:"state,omitempty"`
}

type CreateCategoryRequest struct {
	CategoryName string `json:"category_name"`
}

type EnrollRequest struct {
	CourseID string `json:"course_id"`
	UserID   string `json:"user_id"`
}

type CommentRequest struct {
	CourseID string `json:"course_id"`
	UserID   string `json:"user_id"`
	Text     string `json:"text"`
}

type RatingRequest struct {
	CourseID string `json:"course_id"`
	UserID   string `json:"user_id"`
	Rating   int    `json:"rating"`
}
