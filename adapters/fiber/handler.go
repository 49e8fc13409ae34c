package fiber

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v3"

	"github.com/campushire/campushire"
)

type signInInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (a *Adapter) signin(c fiber.Ctx) error {
	var input signInInput
	if err := c.Bind().Body(&input); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	identity, err := a.ch.Sessions.Login(c.Context(), input.Email, input.Password)
	if err != nil {
		return handleError(c, err)
	}

	return c.Status(http.StatusOK).JSON(identity)
}

func (a *Adapter) signup(c fiber.Ctx) error {
	var input campushire.RegisterInput
	if err := c.Bind().Body(&input); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	identity, err := a.ch.Sessions.Register(c.Context(), input)
	if err != nil {
		return handleError(c, err)
	}

	return c.Status(http.StatusCreated).JSON(identity)
}

func (a *Adapter) signout(c fiber.Ctx) error {
	if err := a.ch.Sessions.Logout(c.Context()); err != nil {
		return handleError(c, err)
	}

	return c.Status(http.StatusOK).JSON(fiber.Map{
		"message": "signed out successfully",
	})
}

func (a *Adapter) session(c fiber.Ctx) error {
	identity := a.ch.Sessions.Current()
	if identity == nil {
		return c.Status(http.StatusUnauthorized).JSON(fiber.Map{
			"error": campushire.ErrNotAuthenticated.Error(),
		})
	}

	return c.Status(http.StatusOK).JSON(identity)
}

func (a *Adapter) updateProfile(c fiber.Ctx) error {
	var changes campushire.ProfileChanges
	if err := c.Bind().Body(&changes); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	identity, err := a.ch.Sessions.UpdateProfile(c.Context(), changes)
	if err != nil {
		return handleError(c, err)
	}

	return c.Status(http.StatusOK).JSON(identity)
}

func (a *Adapter) listJobs(c fiber.Ctx) error {
	filter := campushire.JobFilter{
		Search:   c.Query("search"),
		Type:     c.Query("type"),
		Location: c.Query("location"),
	}

	jobs, err := a.ch.Jobs.Browse(c.Context(), filter)
	if err != nil {
		return handleError(c, err)
	}

	return c.Status(http.StatusOK).JSON(jobs)
}

func (a *Adapter) getJob(c fiber.Ctx) error {
	job, err := a.ch.Jobs.Get(c.Context(), c.Params("id"))
	if err != nil {
		return handleError(c, err)
	}

	return c.Status(http.StatusOK).JSON(job)
}

func (a *Adapter) postJob(c fiber.Ctx) error {
	var input campushire.Job
	if err := c.Bind().Body(&input); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	job, err := a.ch.Jobs.Post(c.Context(), a.ch.Sessions.Current(), input)
	if err != nil {
		return handleError(c, err)
	}

	return c.Status(http.StatusCreated).JSON(job)
}

func (a *Adapter) applyToJob(c fiber.Ctx) error {
	app, err := a.ch.Jobs.Apply(c.Context(), a.ch.Sessions.Current(), c.Params("id"))
	if err != nil {
		return handleError(c, err)
	}

	return c.Status(http.StatusCreated).JSON(app)
}

func (a *Adapter) listApplicants(c fiber.Ctx) error {
	actor := a.ch.Sessions.Current()
	if actor == nil {
		return handleError(c, campushire.ErrNotAuthenticated)
	}
	if actor.Role != campushire.RoleRecruiter && actor.Role != campushire.RoleAdmin {
		return handleError(c, campushire.ErrRoleForbidden)
	}

	apps, err := a.ch.Jobs.ApplicantsFor(c.Context(), c.Params("id"))
	if err != nil {
		return handleError(c, err)
	}

	return c.Status(http.StatusOK).JSON(apps)
}

func (a *Adapter) listApplications(c fiber.Ctx) error {
	actor := a.ch.Sessions.Current()
	if actor == nil {
		return handleError(c, campushire.ErrNotAuthenticated)
	}

	apps, err := a.ch.Jobs.ApplicationsFor(c.Context(), actor.ID)
	if err != nil {
		return handleError(c, err)
	}

	return c.Status(http.StatusOK).JSON(apps)
}

// handleError maps domain errors to appropriate HTTP responses
func handleError(c fiber.Ctx, err error) error {
	status := mapErrorToStatus(err)
	return c.Status(status).JSON(fiber.Map{
		"error": err.Error(),
	})
}

// mapErrorToStatus maps campushire error types to HTTP status codes
func mapErrorToStatus(err error) int {
	if err == nil {
		return http.StatusOK
	}

	switch {
	case errors.Is(err, campushire.ErrInvalidCredentials),
		errors.Is(err, campushire.ErrNotAuthenticated):
		return http.StatusUnauthorized

	case errors.Is(err, campushire.ErrRoleForbidden),
		errors.Is(err, campushire.ErrRoleNotRegistrable):
		return http.StatusForbidden

	case errors.Is(err, campushire.ErrJobNotFound),
		errors.Is(err, campushire.ErrIdentityNotFound):
		return http.StatusNotFound

	case errors.Is(err, campushire.ErrDuplicateEmail),
		errors.Is(err, campushire.ErrAlreadyApplied):
		return http.StatusConflict

	case errors.Is(err, campushire.ErrEmailRequired),
		errors.Is(err, campushire.ErrPasswordRequired),
		errors.Is(err, campushire.ErrNameRequired),
		errors.Is(err, campushire.ErrTitleRequired),
		errors.Is(err, campushire.ErrInvalidRole),
		errors.Is(err, campushire.ErrDeadlinePassed):
		return http.StatusBadRequest

	default:
		return http.StatusInternalServerError
	}
}
