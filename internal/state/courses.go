package state

import "github.com/edworks/course_catalog/internal/models"

// CoursesState is the catalog slice. CoursesFiltered is a derived view set
// by explicit dispatches only: a full load mirrors it from Courses, after
// that the two move independently.
type CoursesState struct {
	Courses         []models.Course
	CoursesFiltered []models.Course
	Categories      []models.Category
	Enrollments     []models.Course
	Comments        []models.Comment
	Ratings         []models.Rating
	CurrentCourse   *models.Course
}

type CoursesAction interface {
	isCoursesAction()
}

// LoadAllAction replaces Courses and mirrors the same list into
// CoursesFiltered, so the filter starts as identity.
type LoadAllAction struct {
	Courses []models.Course
}

// FilterAction replaces CoursesFiltered only.
type FilterAction struct {
	Courses []models.Course
}

type SetCurrentAction struct {
	Course models.Course
}

type AddCourseAction struct {
	Course models.Course
}

type UpdateCourseAction struct {
	Course models.Course
}

type RemoveCourseAction struct {
	CourseID string
}

type SetCategoriesAction struct {
	Categories []models.Category
}

type AddCategoryAction struct {
	Category models.Category
}

// EnrollAction appends the matching course from Courses to Enrollments.
// An id absent from Courses is a no-op. Duplicates are not prevented here;
// that is the provider's call.
type EnrollAction struct {
	CourseID string
}

type SetEnrollmentsAction struct {
	Courses []models.Course
}

type LoadCommentsAction struct {
	Comments []models.Comment
}

type LoadRatingsAction struct {
	Ratings []models.Rating
}

// CleanListAction resets Enrollments only.
type CleanListAction struct{}

func (LoadAllAction) isCoursesAction()        {}
func (FilterAction) isCoursesAction()         {}
func (SetCurrentAction) isCoursesAction()     {}
func (AddCourseAction) isCoursesAction()      {}
func (UpdateCourseAction) isCoursesAction()   {}
func (RemoveCourseAction) isCoursesAction()   {}
func (SetCategoriesAction) isCoursesAction()  {}
func (AddCategoryAction) isCoursesAction()    {}
func (EnrollAction) isCoursesAction()         {}
func (SetEnrollmentsAction) isCoursesAction() {}
func (LoadCommentsAction) isCoursesAction()   {}
func (LoadRatingsAction) isCoursesAction()    {}
func (CleanListAction) isCoursesAction()      {}

// ReduceCourses is pure and never mutates the slices of the input state.
func ReduceCourses(state CoursesState, action CoursesAction) CoursesState {
	switch a := action.(type) {
	case LoadAllAction:
		next := state
		next.Courses = a.Courses
		next.CoursesFiltered = a.Courses
		return next
	case FilterAction:
		next := state
		next.CoursesFiltered = a.Courses
		return next
	case SetCurrentAction:
		next := state
		course := a.Course
		next.CurrentCourse = &course
		return next
	case AddCourseAction:
		next := state
		next.Courses = appendCourse(state.Courses, a.Course)
		next.CoursesFiltered = appendCourse(state.CoursesFiltered, a.Course)
		return next
	case UpdateCourseAction:
		next := state
		next.Courses = replaceCourse(state.Courses, a.Course)
		next.CoursesFiltered = replaceCourse(state.CoursesFiltered, a.Course)
		return next
	case RemoveCourseAction:
		next := state
		next.Courses = removeCourse(state.Courses, a.CourseID)
		next.CoursesFiltered = removeCourse(state.CoursesFiltered, a.CourseID)
		return next
	case SetCategoriesAction:
		next := state
		next.Categories = a.Categories
		return next
	case AddCategoryAction:
		next := state
		next.Categories = append(cloneCategories(state.Categories), a.Category)
		return next
	case EnrollAction:
		for _, course := range state.Courses {
			if course.ID == a.CourseID {
				next := state
				next.Enrollments = appendCourse(state.Enrollments, course)
				return next
			}
		}
		return state
	case SetEnrollmentsAction:
		next := state
		next.Enrollments = a.Courses
		return next
	case LoadCommentsAction:
		next := state
		next.Comments = a.Comments
		return next
	case LoadRatingsAction:
		next := state
		next.Ratings = a.Ratings
		return next
	case CleanListAction:
		next := state
		next.Enrollments = []models.Course{}
		return next
	default:
		return state
	}
}

func appendCourse(courses []models.Course, course models.Course) []models.Course {
	out := make([]models.Course, 0, len(courses)+1)
	out = append(out, courses...)
	return append(out, course)
}

func replaceCourse(courses []models.Course, course models.Course) []models.Course {
	out := make([]models.Course, len(courses))
	copy(out, courses)
	for i := range out {
		if out[i].ID == course.ID {
			out[i] = course
		}
	}
	return out
}

func removeCourse(courses []models.Course, id string) []models.Course {
	out := make([]models.Course, 0, len(courses))
	for _, course := range courses {
		if course.ID != id {
			out = append(out, course)
		}
	}
	return out
}

func cloneCategories(categories []models.Category) []models.Category {
	out := make([]models.Category, len(categories))
	copy(out, categories)
	return out
}
