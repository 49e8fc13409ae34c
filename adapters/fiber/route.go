// Package fiber exposes the campus hire session and job board over HTTP
// using gofiber. The adapter registers its routes on an existing fiber.App
// so it can share the app with the host application's own handlers.
package fiber

import (
	"github.com/gofiber/fiber/v3"

	"github.com/campushire/campushire"
)

type Adapter struct {
	app *fiber.App
	ch  *campushire.CampusHire
}

var _ campushire.HTTPAdapter = (*Adapter)(nil)

func New(app *fiber.App) *Adapter {
	return &Adapter{app: app}
}

func (a *Adapter) RegisterRoutes(ch *campushire.CampusHire) error {
	a.ch = ch

	api := a.app.Group(ch.BasePath)

	// Session routes
	api.Post("/sign-up", a.signup)
	api.Post("/sign-in", a.signin)
	api.Post("/sign-out", a.signout)
	api.Get("/session", a.session)
	api.Patch("/profile", a.updateProfile)

	// Job board routes are only mounted when a job storage was configured.
	if ch.Jobs != nil {
		jobs := a.app.Group("/api/jobs")
		jobs.Get("/", a.listJobs)
		jobs.Post("/", a.postJob)
		jobs.Get("/:id", a.getJob)
		jobs.Post("/:id/apply", a.applyToJob)
		jobs.Get("/:id/applicants", a.listApplicants)

		a.app.Get("/api/applications", a.listApplications)
	}

	return nil
}
