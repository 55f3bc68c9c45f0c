package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"devhub/internal/errors"
	"devhub/internal/service"
)

// PostHandler handles post, like, and comment endpoints.
type PostHandler struct {
	postService service.PostService
}

// NewPostHandler creates a new post handler.
func NewPostHandler(postService service.PostService) *PostHandler {
	return &PostHandler{postService: postService}
}

// CreatePostRequest represents a new post payload.
type CreatePostRequest struct {
	Text string `json:"text" validate:"required"`
}

// CommentRequest represents a new comment payload.
type CommentRequest struct {
	Text string `json:"text" validate:"required"`
}

// MessageResponse carries a human-readable confirmation.
type MessageResponse struct {
	Message string `json:"message"`
}

func postID(c echo.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid post ID",
			Code:  "INVALID_UUID",
		})
	}
	return id, nil
}

// Create godoc
// @Summary Create a post
// @Tags posts
// @Accept json
// @Produce json
// @Security TokenAuth
// @Param request body CreatePostRequest true "Post payload"
// @Success 200 {object} model.Post
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /posts [post]
func (h *PostHandler) Create(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var req CreatePostRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	post, err := h.postService.Create(c.Request().Context(), userID, req.Text)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, post)
}

// List godoc
// @Summary List posts, newest first
// @Tags posts
// @Produce json
// @Success 200 {array} model.Post
// @Failure 500 {object} errors.ErrorResponse
// @Router /posts [get]
func (h *PostHandler) List(c echo.Context) error {
	posts, err := h.postService.List(c.Request().Context())
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, posts)
}

// Get godoc
// @Summary Get a post by id
// @Tags posts
// @Produce json
// @Param id path string true "Post ID"
// @Success 200 {object} model.Post
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /posts/{id} [post]
func (h *PostHandler) Get(c echo.Context) error {
	id, err := postID(c)
	if err != nil {
		return err
	}

	post, err := h.postService.ByID(c.Request().Context(), id)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, post)
}

// Delete godoc
// @Summary Delete own post
// @Tags posts
// @Produce json
// @Security TokenAuth
// @Param id path string true "Post ID"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /posts/{id} [delete]
func (h *PostHandler) Delete(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}
	id, err := postID(c)
	if err != nil {
		return err
	}

	if err := h.postService.Delete(c.Request().Context(), id, userID); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, MessageResponse{Message: "post deleted successfully"})
}

// Like godoc
// @Summary Like a post
// @Tags posts
// @Produce json
// @Security TokenAuth
// @Param id path string true "Post ID"
// @Success 200 {array} model.Like
// @Failure 404 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /posts/like/{id} [put]
func (h *PostHandler) Like(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}
	id, err := postID(c)
	if err != nil {
		return err
	}

	likes, err := h.postService.Like(c.Request().Context(), id, userID)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, likes)
}

// Unlike godoc
// @Summary Remove a like from a post
// @Tags posts
// @Produce json
// @Security TokenAuth
// @Param id path string true "Post ID"
// @Success 200 {array} model.Like
// @Failure 404 {object} errors.ErrorResponse
// @Router /posts/unlike/{id} [put]
func (h *PostHandler) Unlike(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}
	id, err := postID(c)
	if err != nil {
		return err
	}

	likes, err := h.postService.Unlike(c.Request().Context(), id, userID)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, likes)
}

// Comment godoc
// @Summary Comment on a post
// @Tags posts
// @Accept json
// @Produce json
// @Security TokenAuth
// @Param id path string true "Post ID"
// @Param request body CommentRequest true "Comment payload"
// @Success 200 {array} model.Comment
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /posts/comment/{id} [post]
func (h *PostHandler) Comment(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}
	id, err := postID(c)
	if err != nil {
		return err
	}

	var req CommentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	comments, err := h.postService.AddComment(c.Request().Context(), id, userID, req.Text)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, comments)
}

// DeleteComment godoc
// @Summary Remove a comment from a post
// @Tags posts
// @Produce json
// @Security TokenAuth
// @Param id path string true "Post ID"
// @Param comment_id path string true "Comment ID"
// @Success 200 {array} model.Comment
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /posts/comment/{id}/{comment_id} [delete]
func (h *PostHandler) DeleteComment(c echo.Context) error {
	if _, err := currentUserID(c); err != nil {
		return err
	}
	id, err := postID(c)
	if err != nil {
		return err
	}
	commentID, err := uuid.Parse(c.Param("comment_id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid comment ID",
			Code:  "INVALID_UUID",
		})
	}

	comments, err := h.postService.RemoveComment(c.Request().Context(), id, commentID)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, comments)
}
