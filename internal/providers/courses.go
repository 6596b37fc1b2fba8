package providers

import (
	"context"
	"net/url"
	"sync"
	"time"

	"github.com/edworks/course_catalog/internal/logging"
	"github.com/edworks/course_catalog/internal/models"
	"github.com/edworks/course_catalog/internal/state"
	"github.com/edworks/course_catalog/internal/transport"
	"github.com/edworks/course_catalog/pkg/apiclient"
)

// CoursesProvider owns the catalog slice. It reads the token store only to
// decide whether privileged endpoints may be called; it never writes it.
type CoursesProvider struct {
	client *apiclient.Client
	tokens TokenStore

	mu        sync.Mutex
	state     state.CoursesState
	listeners []func()
}

func NewCoursesProvider(client *apiclient.Client, tokens TokenStore) *CoursesProvider {
	return &CoursesProvider{
		client: client,
		tokens: tokens,
		state: state.CoursesState{
			Courses:         []models.Course{},
			CoursesFiltered: []models.Course{},
			Categories:      []models.Category{},
			Enrollments:     []models.Course{},
			Comments:        []models.Comment{},
			Ratings:         []models.Rating{},
		},
	}
}

func (p *CoursesProvider) State() state.CoursesState {
	p.mu.Lock()
	defer p.mu.Unlock()
	st := p.state
	if st.CurrentCourse != nil {
		course := *st.CurrentCourse
		st.CurrentCourse = &course
	}
	return st
}

func (p *CoursesProvider) Subscribe(fn func()) {
	p.mu.Lock()
	p.listeners = append(p.listeners, fn)
	p.mu.Unlock()
}

func (p *CoursesProvider) dispatch(action state.CoursesAction) {
	p.mu.Lock()
	p.state = state.ReduceCourses(p.state, action)
	listeners := make([]func(), len(p.listeners))
	copy(listeners, p.listeners)
	p.mu.Unlock()

	for _, fn := range listeners {
		fn()
	}
}

// LoadInitial is the mount-time fetch: courses then categories, each
// failure swallowed independently.
func (p *CoursesProvider) LoadInitial(ctx context.Context) {
	p.FetchCourses(ctx)
	p.GetCategories(ctx)
}

func (p *CoursesProvider) FetchCourses(ctx context.Context) {
	l := logging.FromContext(ctx).With("provider", "courses.fetch")

	var dtos []transport.CourseDTO
	if err := p.client.Get(ctx, "/courses", &dtos); err != nil {
		l.Warn("fetch_failed", "error", err)
		return
	}
	p.dispatch(state.LoadAllAction{Courses: transport.CoursesFromDTO(dtos)})
}

// FilterCourses queries the backend; on any failure the filtered view
// becomes empty rather than surfacing an error.
func (p *CoursesProvider) FilterCourses(ctx context.Context, query string) {
	l := logging.FromContext(ctx).With("provider", "courses.filter")

	var dtos []transport.CourseDTO
	path := "/courses?filter=" + url.QueryEscape(query)
	if err := p.client.Get(ctx, path, &dtos); err != nil {
		l.Warn("filter_failed", "error", err)
		p.dispatch(state.FilterAction{Courses: []models.Course{}})
		return
	}
	p.dispatch(state.FilterAction{Courses: transport.CoursesFromDTO(dtos)})
}

func (p *CoursesProvider) GetCategories(ctx context.Context) {
	l := logging.FromContext(ctx).With("provider", "courses.categories")

	var dtos []transport.CategoryDTO
	if err := p.client.Get(ctx, "/categories", &dtos); err != nil {
		l.Warn("categories_failed", "error", err)
		return
	}
	p.dispatch(state.SetCategoriesAction{Categories: transport.CategoriesFromDTO(dtos)})
}

func (p *CoursesProvider) NewCategory(ctx context.Context, name string) {
	l := logging.FromContext(ctx).With("provider", "courses.new_category")

	var dto transport.CategoryDTO
	req := transport.CreateCategoryRequest{CategoryName: name}
	if err := p.client.Post(ctx, "/category/create", req, &dto); err != nil {
		l.Warn("create_category_failed", "error", err)
		return
	}
	p.dispatch(state.AddCategoryAction{Category: transport.CategoryFromDTO(dto)})
}

func (p *CoursesProvider) CreateCourse(ctx context.Context, course models.Course) {
	l := logging.FromContext(ctx).With("provider", "courses.create")

	req := transport.CreateCourseRequest{
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
	var dto transport.CourseDTO
	if err := p.client.Post(ctx, "/courses/create", req, &dto); err != nil {
		l.Warn("create_failed", "error", err)
		return
	}
	p.dispatch(state.AddCourseAction{Course: transport.CourseFromDTO(dto)})
}

// UpdateCourse applies the change locally only when the backend accepted
// it; a failure leaves the cached list as it was.
func (p *CoursesProvider) UpdateCourse(ctx context.Context, id string, update transport.UpdateCourseRequest) {
	l := logging.FromContext(ctx).With("provider", "courses.update")

	var dto transport.CourseDTO
	if err := p.client.Put(ctx, "/courses/update/"+url.PathEscape(id), update, &dto); err != nil {
		l.Warn("update_failed", "error", err)
		return
	}
	p.dispatch(state.UpdateCourseAction{Course: transport.CourseFromDTO(dto)})
}

func (p *CoursesProvider) DeleteCourse(ctx context.Context, id string) {
	l := logging.FromContext(ctx).With("provider", "courses.delete")

	if err := p.client.Delete(ctx, "/courses/"+url.PathEscape(id), nil); err != nil {
		l.Warn("delete_failed", "error", err)
		return
	}
	p.dispatch(state.RemoveCourseAction{CourseID: id})
}

// MyCourses replaces the enrollments list; a failure leaves it unchanged.
func (p *CoursesProvider) MyCourses(ctx context.Context) {
	l := logging.FromContext(ctx).With("provider", "courses.my_courses")

	var dtos []transport.CourseDTO
	if err := p.client.Get(ctx, "/myCourses/", &dtos); err != nil {
		l.Warn("my_courses_failed", "error", err)
		return
	}
	p.dispatch(state.SetEnrollmentsAction{Courses: transport.CoursesFromDTO(dtos)})
}

// Enroll posts the enrollment and then appends locally, trusting the
// accepted request over a refetch. The response body is not inspected.
func (p *CoursesProvider) Enroll(ctx context.Context, courseID string) {
	l := logging.FromContext(ctx).With("provider", "courses.enroll")

	req := transport.EnrollRequest{CourseID: courseID}
	if err := p.client.Post(ctx, "/enroll", req, nil); err != nil {
		l.Warn("enroll_failed", "error", err)
		return
	}
	p.dispatch(state.EnrollAction{CourseID: courseID})
}

// GetComments treats not-found and failures alike: the comments list is
// reset to empty instead of erroring.
func (p *CoursesProvider) GetComments(ctx context.Context, courseID string) {
	l := logging.FromContext(ctx).With("provider", "courses.comments")

	var dtos []transport.CommentDTO
	if err := p.client.Get(ctx, "/comment/"+url.PathEscape(courseID), &dtos); err != nil {
		if !apiclient.IsNotFound(err) {
			l.Warn("comments_failed", "error", err)
		}
		p.dispatch(state.LoadCommentsAction{Comments: []models.Comment{}})
		return
	}
	p.dispatch(state.LoadCommentsAction{Comments: transport.CommentsFromDTO(dtos)})
}

// CreateComment is a no-op without a session token.
func (p *CoursesProvider) CreateComment(ctx context.Context, courseID, userID, text string) {
	if p.tokens.Token() == "" {
		return
	}
	l := logging.FromContext(ctx).With("provider", "courses.create_comment")

	req := transport.CommentRequest{CourseID: courseID, UserID: userID, Text: text}
	if err := p.client.Post(ctx, "/comment", req, nil); err != nil {
		l.Warn("create_comment_failed", "error", err)
	}
}

func (p *CoursesProvider) UpdateComment(ctx context.Context, text, courseID, userID string) {
	if p.tokens.Token() == "" {
		return
	}
	l := logging.FromContext(ctx).With("provider", "courses.update_comment")

	req := transport.CommentRequest{CourseID: courseID, UserID: userID, Text: text}
	if err := p.client.Put(ctx, "/comment", req, nil); err != nil {
		l.Warn("update_comment_failed", "error", err)
	}
}

// GetRatings resets the ratings list to empty on failure, same as comments.
func (p *CoursesProvider) GetRatings(ctx context.Context) {
	l := logging.FromContext(ctx).With("provider", "courses.ratings")

	var dtos []transport.RatingDTO
	if err := p.client.Get(ctx, "/rating", &dtos); err != nil {
		l.Warn("ratings_failed", "error", err)
		p.dispatch(state.LoadRatingsAction{Ratings: []models.Rating{}})
		return
	}
	p.dispatch(state.LoadRatingsAction{Ratings: transport.RatingsFromDTO(dtos)})
}

func (p *CoursesProvider) CreateRating(ctx context.Context, courseID, userID string, rating int) {
	if p.tokens.Token() == "" {
		return
	}
	l := logging.FromContext(ctx).With("provider", "courses.create_rating")

	req := transport.RatingRequest{CourseID: courseID, UserID: userID, Rating: rating}
	if err := p.client.Post(ctx, "/rating", req, nil); err != nil {
		l.Warn("create_rating_failed", "error", err)
	}
}

func (p *CoursesProvider) UpdateRating(ctx context.Context, rating int, courseID, userID string) {
	if p.tokens.Token() == "" {
		return
	}
	l := logging.FromContext(ctx).With("provider", "courses.update_rating")

	req := transport.RatingRequest{CourseID: courseID, UserID: userID, Rating: rating}
	if err := p.client.Put(ctx, "/rating", req, nil); err != nil {
		l.Warn("update_rating_failed", "error", err)
	}
}

func (p *CoursesProvider) SetCurrentCourse(course models.Course) {
	p.dispatch(state.SetCurrentAction{Course: course})
}

func (p *CoursesProvider) CleanCourseList() {
	p.dispatch(state.CleanListAction{})
}
