package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/edworks/course_catalog/internal/config"
	"github.com/edworks/course_catalog/internal/logging"
	"github.com/edworks/course_catalog/internal/providers"
	"github.com/edworks/course_catalog/pkg/apiclient"
)

// coursecli is a minimal console client: it restores or opens a session,
// loads the catalog and prints a snapshot.
func main() {
	cfg := config.Load()
	logger := logging.New(cfg.LogLevel)
	ctx := logging.IntoContext(context.Background(), logger)

	tokenPath := filepath.Join(os.TempDir(), "course_catalog_"+cfg.TokenCookie)
	tokens := providers.NewFileTokenStore(tokenPath)
	client := apiclient.New(cfg.APIBase(),
		apiclient.WithTokenSource(tokens),
		apiclient.WithTimeout(cfg.HTTPTimeout),
		apiclient.WithCookieName(cfg.TokenCookie),
	)

	auth := providers.NewAuthProvider(client, tokens)
	courses := providers.NewCoursesProvider(client, tokens)

	auth.RestoreSession(ctx)
	if auth.State().User == nil {
		email := os.Getenv("COURSECAT_EMAIL")
		password := os.Getenv("COURSECAT_PASSWORD")
		if email != "" && password != "" && !auth.Login(ctx, email, password) {
			logger.Warn("login_failed", "email", email)
		}
	}

	courses.LoadInitial(ctx)

	st := courses.State()
	if user := auth.State().User; user != nil {
		fmt.Printf("logged in as %s (%s)\n", user.Username, user.Role)
		courses.MyCourses(ctx)
		st = courses.State()
		fmt.Printf("enrolled in %d course(s)\n", len(st.Enrollments))
	}

	fmt.Printf("%d course(s), %d categorie(s)\n", len(st.Courses), len(st.Categories))
	for _, course := range st.Courses {
		fmt.Printf("  %-30s %-15s %6.2f avg %.1f\n",
			course.CourseName, course.CategoryName, course.Price, course.RatingAvg)
	}
}
