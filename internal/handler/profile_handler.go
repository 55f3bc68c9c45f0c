package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"devhub/internal/errors"
	"devhub/internal/service"
)

// ProfileHandler handles profile endpoints.
type ProfileHandler struct {
	profileService service.ProfileService
}

// NewProfileHandler creates a new profile handler.
func NewProfileHandler(profileService service.ProfileService) *ProfileHandler {
	return &ProfileHandler{profileService: profileService}
}

// ProfileRequest represents a profile create-or-update payload. Status and
// skills are required; everything else is optional and applied sparsely.
type ProfileRequest struct {
	Handle         string `json:"handle"`
	Company        string `json:"company"`
	Website        string `json:"website"`
	Location       string `json:"location"`
	Bio            string `json:"bio"`
	Status         string `json:"status" validate:"required"`
	GithubUsername string `json:"githubusername"`
	Skills         string `json:"skills" validate:"required"`
	Youtube        string `json:"youtube"`
	Twitter        string `json:"twitter"`
	Facebook       string `json:"facebook"`
	Linkedin       string `json:"linkedin"`
	Instagram      string `json:"instagram"`
}

// ExperienceRequest represents a new experience entry payload.
type ExperienceRequest struct {
	Title       string `json:"title" validate:"required"`
	Company     string `json:"company" validate:"required"`
	Location    string `json:"location"`
	From        string `json:"from" validate:"required"`
	To          string `json:"to"`
	Current     bool   `json:"current"`
	Description string `json:"description"`
}

// EducationRequest represents a new education entry payload.
type EducationRequest struct {
	School       string `json:"school" validate:"required"`
	Degree       string `json:"degree" validate:"required"`
	FieldOfStudy string `json:"fieldofstudy" validate:"required"`
	From         string `json:"from" validate:"required"`
	To           string `json:"to"`
	Current      bool   `json:"current"`
	Description  string `json:"description"`
}

// Me godoc
// @Summary Get own profile
// @Tags profile
// @Produce json
// @Security TokenAuth
// @Success 200 {object} model.Profile
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /profile/me [get]
func (h *ProfileHandler) Me(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	profile, err := h.profileService.Own(c.Request().Context(), userID)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, profile)
}

// Upsert godoc
// @Summary Create or update own profile
// @Tags profile
// @Accept json
// @Produce json
// @Security TokenAuth
// @Param request body ProfileRequest true "Profile fields"
// @Success 200 {object} model.Profile
// @Failure 400 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /profile [post]
func (h *ProfileHandler) Upsert(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var req ProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	profile, err := h.profileService.Upsert(c.Request().Context(), userID, service.ProfileFields{
		Handle:         req.Handle,
		Company:        req.Company,
		Website:        req.Website,
		Location:       req.Location,
		Bio:            req.Bio,
		Status:         req.Status,
		GithubUsername: req.GithubUsername,
		Skills:         req.Skills,
		Youtube:        req.Youtube,
		Twitter:        req.Twitter,
		Facebook:       req.Facebook,
		Linkedin:       req.Linkedin,
		Instagram:      req.Instagram,
	})
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, profile)
}

// List godoc
// @Summary List all profiles
// @Tags profile
// @Produce json
// @Success 200 {array} model.Profile
// @Failure 500 {object} errors.ErrorResponse
// @Router /profile/all [get]
func (h *ProfileHandler) List(c echo.Context) error {
	profiles, err := h.profileService.List(c.Request().Context())
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, profiles)
}

// ByUser godoc
// @Summary Get a profile by user id
// @Tags profile
// @Produce json
// @Param user_id path string true "User ID"
// @Success 200 {object} model.Profile
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /profile/user/{user_id} [get]
func (h *ProfileHandler) ByUser(c echo.Context) error {
	userID, err := uuid.Parse(c.Param("user_id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid user ID",
			Code:  "INVALID_UUID",
		})
	}

	profile, err := h.profileService.ByUserID(c.Request().Context(), userID)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, profile)
}

// Delete godoc
// @Summary Delete own profile and account
// @Tags profile
// @Produce json
// @Security TokenAuth
// @Success 200 {object} MessageResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /profile [delete]
func (h *ProfileHandler) Delete(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	if err := h.profileService.DeleteOwn(c.Request().Context(), userID); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, MessageResponse{Message: "user deleted"})
}

// AddExperience godoc
// @Summary Add an experience entry
// @Tags profile
// @Accept json
// @Produce json
// @Security TokenAuth
// @Param request body ExperienceRequest true "Experience entry"
// @Success 200 {object} model.Profile
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /profile/experience [post]
func (h *ProfileHandler) AddExperience(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var req ExperienceRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	profile, err := h.profileService.AddExperience(c.Request().Context(), userID, service.ExperienceEntry{
		Title:       req.Title,
		Company:     req.Company,
		Location:    req.Location,
		From:        req.From,
		To:          req.To,
		Current:     req.Current,
		Description: req.Description,
	})
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, profile)
}

// RemoveExperience godoc
// @Summary Remove an experience entry
// @Tags profile
// @Produce json
// @Security TokenAuth
// @Param exp_id path string true "Experience ID"
// @Success 200 {object} model.Profile
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /profile/experience/{exp_id} [delete]
func (h *ProfileHandler) RemoveExperience(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}
	entryID, err := uuid.Parse(c.Param("exp_id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid experience ID",
			Code:  "INVALID_UUID",
		})
	}

	profile, err := h.profileService.RemoveExperience(c.Request().Context(), userID, entryID)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, profile)
}

// AddEducation godoc
// @Summary Add an education entry
// @Tags profile
// @Accept json
// @Produce json
// @Security TokenAuth
// @Param request body EducationRequest true "Education entry"
// @Success 200 {object} model.Profile
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /profile/education [post]
func (h *ProfileHandler) AddEducation(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var req EducationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	profile, err := h.profileService.AddEducation(c.Request().Context(), userID, service.EducationEntry{
		School:       req.School,
		Degree:       req.Degree,
		FieldOfStudy: req.FieldOfStudy,
		From:         req.From,
		To:           req.To,
		Current:      req.Current,
		Description:  req.Description,
	})
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, profile)
}

// RemoveEducation godoc
// @Summary Remove an education entry
// @Tags profile
// @Produce json
// @Security TokenAuth
// @Param edu_id path string true "Education ID"
// @Success 200 {object} model.Profile
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /profile/education/{edu_id} [delete]
func (h *ProfileHandler) RemoveEducation(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}
	entryID, err := uuid.Parse(c.Param("edu_id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid education ID",
			Code:  "INVALID_UUID",
		})
	}

	profile, err := h.profileService.RemoveEducation(c.Request().Context(), userID, entryID)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, profile)
}
