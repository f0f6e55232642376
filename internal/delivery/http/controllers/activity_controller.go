package controllers

import (
	"errors"
	"log/slog"
	"net/http"

	"mergingtonactivities/internal/delivery/http/helpers"
	"mergingtonactivities/internal/domain"
)

type ActivityController struct {
	Logger  *slog.Logger
	Service domain.ActivityService
}

func NewActivityController(logger *slog.Logger, svc domain.ActivityService) *ActivityController {
	return &ActivityController{
		Logger:  logger,
		Service: svc,
	}
}

// ListActivities godoc
// @Summary List all activities
// @Description Returns the full registry as a JSON mapping from activity name to its record (description, schedule, max_participants, participants).
// @Tags activities
// @Produce json
// @Success 200 {object} map[string]domain.Activity
// @Router /activities [get]
func (c *ActivityController) ListActivities(w http.ResponseWriter, r *http.Request) {
	activities, err := c.Service.ListActivities(r.Context())
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONDetail(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	helpers.WriteJSON(w, http.StatusOK, activities)
}

// SignupForActivity godoc
// @Summary Sign a student up for an activity
// @Description Appends the email to the named activity's participant list. The activity name is taken from the path (URL-decoded) and the email from the required query parameter.
// @Tags activities
// @Produce json
// @Param name path string true "Activity name"
// @Param email query string true "Student email"
// @Success 200 {object} helpers.MessageResponse "Signed up {email} for {name}"
// @Failure 400 {object} helpers.DetailResponse "Student already signed up"
// @Failure 404 {object} helpers.DetailResponse "Activity not found"
// @Failure 422 {object} helpers.DetailResponse "email query parameter missing"
// @Router /activities/{name}/signup [post]
func (c *ActivityController) SignupForActivity(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	email := r.URL.Query().Get("email")
	if email == "" {
		helpers.WriteJSONDetail(w, http.StatusUnprocessableEntity, "email query parameter is required")
		return
	}

	message, err := c.Service.Signup(r.Context(), name, email)
	if err != nil {
		if errors.Is(err, domain.ErrActivityNotFound) {
			helpers.WriteJSONDetail(w, http.StatusNotFound, "Activity not found")
			return
		}
		if errors.Is(err, domain.ErrAlreadySignedUp) {
			helpers.WriteJSONDetail(w, http.StatusBadRequest, "Student already signed up")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONDetail(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	helpers.WriteJSONMessage(w, message)
}

// RemoveParticipant godoc
// @Summary Remove a participant from an activity
// @Description Removes the email from the named activity's participant list. Both path segments are URL-decoded before lookup.
// @Tags activities
// @Produce json
// @Param name path string true "Activity name"
// @Param email path string true "Participant email"
// @Success 200 {object} helpers.MessageResponse "Removed {email} from {name}"
// @Failure 404 {object} helpers.DetailResponse "Activity not found / Participant not found in this activity"
// @Router /activities/{name}/participants/{email} [delete]
func (c *ActivityController) RemoveParticipant(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	email := r.PathValue("email")

	message, err := c.Service.RemoveParticipant(r.Context(), name, email)
	if err != nil {
		if errors.Is(err, domain.ErrActivityNotFound) {
			helpers.WriteJSONDetail(w, http.StatusNotFound, "Activity not found")
			return
		}
		if errors.Is(err, domain.ErrParticipantNotFound) {
			helpers.WriteJSONDetail(w, http.StatusNotFound, "Participant not found in this activity")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONDetail(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	helpers.WriteJSONMessage(w, message)
}
