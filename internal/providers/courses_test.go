package providers

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edworks/course_catalog/internal/backendtest"
	"github.com/edworks/course_catalog/internal/models"
	"github.com/edworks/course_catalog/internal/transport"
	"github.com/edworks/course_catalog/pkg/apiclient"
)

type coursesEnv struct {
	env      *backendtest.Env
	tokens   *MemoryTokenStore
	provider *CoursesProvider
	category backendtest.Category
	course   backendtest.Course
	user     backendtest.User
}

// newCoursesEnv seeds one category, one course and one logged-in user,
// matching the default fixtures the UI tests ran against.
func newCoursesEnv(t *testing.T) *coursesEnv {
	t.Helper()

	env := backendtest.New(t)
	category := env.SeedCategory("Programming")
	course := env.SeedCourse(backendtest.Course{
		ID:          "c1",
		CourseName:  "Intro Go",
		Description: "Basics of Go",
		Price:       10,
		Duration:    5,
		Capacity:    30,
		CategoryID:  category.ID,
		State:       true,
		Image:       "go.png",
	})
	user := env.SeedUser("test@example.com", "Test User", "pw", "user")

	tokens := NewMemoryTokenStore()
	tokens.Set(env.IssueToken(user.ID, user.Role))
	client := apiclient.New(env.URL(), apiclient.WithTokenSource(tokens))

	return &coursesEnv{
		env:      env,
		tokens:   tokens,
		provider: NewCoursesProvider(client, tokens),
		category: category,
		course:   course,
		user:     user,
	}
}

func TestCoursesProvider_LoadInitial(t *testing.T) {
	t.Parallel()

	ce := newCoursesEnv(t)
	ce.provider.LoadInitial(context.Background())

	st := ce.provider.State()
	require.Len(t, st.Courses, 1)
	assert.Equal(t, st.Courses, st.CoursesFiltered, "full load mirrors the filtered view")
	require.Len(t, st.Categories, 1)
	assert.Equal(t, "Programming", st.Categories[0].CategoryName)
	assert.Equal(t, "Programming", st.Courses[0].CategoryName)
}

func TestCoursesProvider_FilterCourses(t *testing.T) {
	t.Parallel()

	ce := newCoursesEnv(t)
	ce.env.SeedCourse(backendtest.Course{
		CourseName: "Python Basics",
		CategoryID: ce.category.ID,
		State:      true,
	})

	ce.provider.FetchCourses(context.Background())
	require.Len(t, ce.provider.State().Courses, 2)

	ce.provider.FilterCourses(context.Background(), "go")

	st := ce.provider.State()
	assert.Len(t, st.Courses, 2, "filter leaves the full list alone")
	require.Len(t, st.CoursesFiltered, 1)
	assert.Equal(t, "Intro Go", st.CoursesFiltered[0].CourseName)
}

func TestCoursesProvider_NewCategory(t *testing.T) {
	t.Parallel()

	ce := newCoursesEnv(t)
	ce.provider.GetCategories(context.Background())
	require.Len(t, ce.provider.State().Categories, 1)

	ce.provider.NewCategory(context.Background(), "Data")

	st := ce.provider.State()
	require.Len(t, st.Categories, 2)
	assert.Equal(t, "Data", st.Categories[1].CategoryName)
	assert.NotEmpty(t, st.Categories[1].ID)
}

func TestCoursesProvider_CreateCourse(t *testing.T) {
	t.Parallel()

	ce := newCoursesEnv(t)
	ce.provider.FetchCourses(context.Background())
	before := len(ce.provider.State().Courses)

	ce.provider.CreateCourse(context.Background(), models.Course{
		CourseName:  "New Course",
		Description: "d",
		Price:       1,
		Duration:    1,
		Capacity:    1,
		CategoryID:  ce.category.ID,
		State:       true,
	})

	st := ce.provider.State()
	require.Len(t, st.Courses, before+1)
	assert.Len(t, st.CoursesFiltered, before+1)
	assert.Equal(t, "New Course", st.Courses[before].CourseName)
}

func TestCoursesProvider_UpdateCourse(t *testing.T) {
	t.Parallel()

	ce := newCoursesEnv(t)
	ce.provider.FetchCourses(context.Background())

	name := "Updated"
	ce.provider.UpdateCourse(context.Background(), ce.course.ID, transport.UpdateCourseRequest{CourseName: &name})

	st := ce.provider.State()
	require.Len(t, st.Courses, 1)
	assert.Equal(t, "Updated", st.Courses[0].CourseName)
}

func TestCoursesProvider_DeleteCourse(t *testing.T) {
	t.Parallel()

	ce := newCoursesEnv(t)
	ce.provider.FetchCourses(context.Background())
	require.Len(t, ce.provider.State().Courses, 1)

	ce.provider.DeleteCourse(context.Background(), ce.course.ID)

	st := ce.provider.State()
	assert.Empty(t, st.Courses)
	assert.Empty(t, st.CoursesFiltered)
}

func TestCoursesProvider_Enroll(t *testing.T) {
	t.Parallel()

	ce := newCoursesEnv(t)
	ce.provider.FetchCourses(context.Background())

	ce.provider.Enroll(context.Background(), ce.course.ID)

	st := ce.provider.State()
	require.Len(t, st.Enrollments, 1)
	assert.Equal(t, ce.course.ID, st.Enrollments[0].ID)
	assert.Equal(t, 1, ce.env.Requests("/enroll"))
}

func TestCoursesProvider_MyCourses(t *testing.T) {
	t.Parallel()

	ce := newCoursesEnv(t)
	ce.env.SeedEnrollment(ce.course.ID, ce.user.ID)

	ce.provider.MyCourses(context.Background())

	st := ce.provider.State()
	require.Len(t, st.Enrollments, 1)
	assert.Equal(t, ce.course.ID, st.Enrollments[0].ID)
}

func TestCoursesProvider_GetCommentsNotFoundMeansEmpty(t *testing.T) {
	t.Parallel()

	ce := newCoursesEnv(t)

	ce.provider.GetComments(context.Background(), ce.course.ID)

	st := ce.provider.State()
	assert.NotNil(t, st.Comments)
	assert.Empty(t, st.Comments)
}

func TestCoursesProvider_CommentRoundTrip(t *testing.T) {
	t.Parallel()

	ce := newCoursesEnv(t)

	ce.provider.CreateComment(context.Background(), ce.course.ID, ce.user.ID, "Nice!")
	ce.provider.GetComments(context.Background(), ce.course.ID)

	st := ce.provider.State()
	require.Len(t, st.Comments, 1)
	assert.Equal(t, "Nice!", st.Comments[0].Text)
	assert.Equal(t, "Test User", st.Comments[0].UserName)

	ce.provider.UpdateComment(context.Background(), "Edited", ce.course.ID, ce.user.ID)
	ce.provider.GetComments(context.Background(), ce.course.ID)

	st = ce.provider.State()
	require.Len(t, st.Comments, 1)
	assert.Equal(t, "Edited", st.Comments[0].Text)
}

func TestCoursesProvider_RatingsFlow(t *testing.T) {
	t.Parallel()

	ce := newCoursesEnv(t)
	ce.env.SeedRating(ce.course.ID, "u1", 5)
	ce.env.SeedRating(ce.course.ID, "u2", 4)

	ce.provider.GetRatings(context.Background())
	require.Len(t, ce.provider.State().Ratings, 2)

	ce.provider.CreateRating(context.Background(), ce.course.ID, ce.user.ID, 3)
	ce.provider.GetRatings(context.Background())
	require.Len(t, ce.provider.State().Ratings, 3)

	ce.provider.UpdateRating(context.Background(), 4, ce.course.ID, ce.user.ID)
	ce.provider.GetRatings(context.Background())

	st := ce.provider.State()
	found := false
	for _, rating := range st.Ratings {
		if rating.UserID == ce.user.ID {
			found = true
			assert.Equal(t, 4, rating.Rating)
		}
	}
	assert.True(t, found)
}

func TestCoursesProvider_TokenGatedWritesAreNoOps(t *testing.T) {
	t.Parallel()

	ce := newCoursesEnv(t)
	ce.tokens.Clear()

	ce.provider.CreateComment(context.Background(), ce.course.ID, ce.user.ID, "Hi")
	ce.provider.UpdateComment(context.Background(), "Bye", ce.course.ID, ce.user.ID)
	ce.provider.CreateRating(context.Background(), ce.course.ID, ce.user.ID, 5)
	ce.provider.UpdateRating(context.Background(), 4, ce.course.ID, ce.user.ID)

	assert.Zero(t, ce.env.Requests("/comment"), "comment writes must not reach the network without a token")
	assert.Zero(t, ce.env.Requests("/rating"), "rating writes must not reach the network without a token")
}

func TestCoursesProvider_CleanCourseList(t *testing.T) {
	t.Parallel()

	ce := newCoursesEnv(t)
	ce.provider.FetchCourses(context.Background())
	ce.provider.Enroll(context.Background(), ce.course.ID)
	require.Len(t, ce.provider.State().Enrollments, 1)

	ce.provider.CleanCourseList()

	st := ce.provider.State()
	assert.Empty(t, st.Enrollments)
	assert.Len(t, st.Courses, 1, "courses survive a clean")
}

func TestCoursesProvider_SetCurrentCourse(t *testing.T) {
	t.Parallel()

	ce := newCoursesEnv(t)
	course := models.Course{ID: "c9", CourseName: "Pinned"}

	ce.provider.SetCurrentCourse(course)

	st := ce.provider.State()
	require.NotNil(t, st.CurrentCourse)
	assert.Equal(t, course, *st.CurrentCourse)
}

func TestCoursesProvider_SubscribeNotified(t *testing.T) {
	t.Parallel()

	ce := newCoursesEnv(t)

	calls := 0
	ce.provider.Subscribe(func() { calls++ })

	ce.provider.FetchCourses(context.Background())
	ce.provider.CleanCourseList()

	assert.Equal(t, 2, calls)
}
