// Package backendtest runs the course-catalog REST API in-process for
// tests. Every Env owns its own in-memory database, so state never leaks
// between test cases; Reset wipes and reseeds on demand.
package backendtest

import (
	"fmt"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type Env struct {
	T         *testing.T
	E         *echo.Echo
	DB        *gorm.DB
	Server    *httptest.Server
	JWTSecret []byte

	mu       sync.Mutex
	requests map[string]int
}

func New(t *testing.T) *Env {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&User{}, &Course{}, &Category{}, &Enrollment{}, &Comment{}, &Rating{},
	))

	env := &Env{
		T:         t,
		E:         echo.New(),
		DB:        db,
		JWTSecret: []byte("backendtest-secret"),
		requests:  map[string]int{},
	}

	env.E.Pre(middleware.RemoveTrailingSlash())
	env.E.Use(env.countRequests)
	env.register()

	env.Server = httptest.NewServer(env.E)
	t.Cleanup(env.Server.Close)

	return env
}

func (env *Env) URL() string { return env.Server.URL }

// Reset truncates every table. Seed again afterwards as needed.
func (env *Env) Reset() {
	for _, model := range []any{&Enrollment{}, &Comment{}, &Rating{}, &Course{}, &Category{}, &User{}} {
		env.DB.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(model)
	}
}

func (env *Env) countRequests(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		env.mu.Lock()
		env.requests[c.Request().URL.Path]++
		env.mu.Unlock()
		return next(c)
	}
}

// Requests returns how many requests hit the given path.
func (env *Env) Requests(path string) int {
	env.mu.Lock()
	defer env.mu.Unlock()
	return env.requests[path]
}

// TotalRequests returns how many requests the server saw in total.
func (env *Env) TotalRequests() int {
	env.mu.Lock()
	defer env.mu.Unlock()
	total := 0
	for _, n := range env.requests {
		total += n
	}
	return total
}

func (env *Env) register() {
	e := env.E
	e.POST("/auth/login", env.login)
	e.POST("/users/register", env.registerUser)
	e.POST("/auth/refresh-token", env.refreshToken)

	e.GET("/courses", env.listCourses)
	e.POST("/courses/create", env.createCourse)
	e.PUT("/courses/update/:id", env.updateCourse)
	e.DELETE("/courses/:id", env.deleteCourse)

	e.GET("/categories", env.listCategories)
	e.POST("/category/create", env.createCategory)

	e.GET("/myCourses", env.myCourses)
	e.POST("/enroll", env.enroll)

	e.GET("/comment/:courseId", env.listComments)
	e.POST("/comment", env.createComment)
	e.PUT("/comment", env.updateComment)

	e.GET("/rating", env.listRatings)
	e.POST("/rating", env.createRating)
	e.PUT("/rating", env.updateRating)
}

// SeedUser stores a user with a bcrypt-hashed password and returns it.
func (env *Env) SeedUser(email, username, password, role string) User {
	env.T.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(env.T, err)

	user := User{
		ID:           uuid.NewString(),
		Email:        email,
		Username:     username,
		Avatar:       "https://example.com/avatar.png",
		PasswordHash: string(hash),
		Role:         role,
		CreatedAt:    time.Now().UTC(),
		UpdatedAt:    time.Now().UTC(),
	}
	require.NoError(env.T, env.DB.Create(&user).Error)
	return user
}

func (env *Env) SeedCategory(name string) Category {
	env.T.Helper()

	category := Category{ID: uuid.NewString(), CategoryName: name}
	require.NoError(env.T, env.DB.Create(&category).Error)
	return category
}

func (env *Env) SeedCourse(course Course) Course {
	env.T.Helper()

	if course.ID == "" {
		course.ID = uuid.NewString()
	}
	if course.InitDate.IsZero() {
		course.InitDate = time.Now().UTC()
	}
	require.NoError(env.T, env.DB.Create(&course).Error)
	return course
}

func (env *Env) SeedEnrollment(courseID, userID string) {
	env.T.Helper()
	require.NoError(env.T, env.DB.Create(&Enrollment{CourseID: courseID, UserID: userID}).Error)
}

func (env *Env) SeedComment(courseID, userID, text string) {
	env.T.Helper()
	require.NoError(env.T, env.DB.Create(&Comment{CourseID: courseID, UserID: userID, Text: text}).Error)
}

func (env *Env) SeedRating(courseID, userID string, rating int) {
	env.T.Helper()
	require.NoError(env.T, env.DB.Create(&Rating{CourseID: courseID, UserID: userID, Rating: rating}).Error)
}
