package api

import (
	"encoding/json"
	"io"
	"log"
	"strconv"
	"strings"

	domain "github.com/ElijahAA/HackiethonBackend/domain/user"
	"github.com/ElijahAA/HackiethonBackend/modules/avatar"
	"github.com/ElijahAA/HackiethonBackend/modules/social"
	"github.com/ElijahAA/HackiethonBackend/modules/task"
	"github.com/ElijahAA/HackiethonBackend/modules/user"
	"github.com/go-monolith/mono"
	"github.com/go-monolith/mono/pkg/helper"
	"github.com/gofiber/fiber/v2"
)

// Handlers contains HTTP handlers for the API.
type Handlers struct {
	userContainer   mono.ServiceContainer
	socialContainer mono.ServiceContainer
	userAdapter     user.UserPort
	taskAdapter     task.TaskPort
	avatarAdapter   avatar.AvatarPort
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(
	userContainer mono.ServiceContainer,
	socialContainer mono.ServiceContainer,
	userAdapter user.UserPort,
	taskAdapter task.TaskPort,
	avatarAdapter avatar.AvatarPort,
) *Handlers {
	return &Handlers{
		userContainer:   userContainer,
		socialContainer: socialContainer,
		userAdapter:     userAdapter,
		taskAdapter:     taskAdapter,
		avatarAdapter:   avatarAdapter,
	}
}

// currentClaims extracts the authenticated user's claims from the context.
func currentClaims(c *fiber.Ctx) (*domain.Claims, bool) {
	claims, ok := c.Locals(UserContextKey).(*domain.Claims)
	return claims, ok
}

// avatarURL turns a stored avatar reference into a servable URL.
func avatarURL(ref string) string {
	if ref == "" {
		return ""
	}
	return "/api/v1/avatars/" + ref
}

// Register handles user registration.
func (h *Handlers) Register(c *fiber.Ctx) error {
	var req RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error:   "bad_request",
			Message: "Invalid request body",
		})
	}

	userReq := user.RegisterRequest{
		Username:  req.Username,
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Password:  req.Password,
	}
	var resp user.UserResponse

	if err := helper.CallRequestReplyService(
		c.UserContext(), h.userContainer, "register",
		json.Marshal, json.Unmarshal, &userReq, &resp,
	); err != nil {
		return h.handleServiceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(toProfileResponse(&resp))
}

// Login handles user login.
func (h *Handlers) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error:   "bad_request",
			Message: "Invalid request body",
		})
	}

	if req.Username == "" || req.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error:   "bad_request",
			Message: "Username and password are required",
		})
	}

	userReq := user.LoginRequest{
		Username: req.Username,
		Password: req.Password,
	}
	var resp user.TokenResponse

	if err := helper.CallRequestReplyService(
		c.UserContext(), h.userContainer, "login",
		json.Marshal, json.Unmarshal, &userReq, &resp,
	); err != nil {
		return h.handleServiceError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(TokenResponse{
		AccessToken:  resp.AccessToken,
		RefreshToken: resp.RefreshToken,
		ExpiresIn:    resp.ExpiresIn,
		TokenType:    resp.TokenType,
	})
}

// Refresh handles token refresh.
func (h *Handlers) Refresh(c *fiber.Ctx) error {
	var req RefreshRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error:   "bad_request",
			Message: "Invalid request body",
		})
	}

	if req.RefreshToken == "" {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error:   "bad_request",
			Message: "Refresh token is required",
		})
	}

	userReq := user.RefreshRequest{RefreshToken: req.RefreshToken}
	var resp user.TokenResponse

	if err := helper.CallRequestReplyService(
		c.UserContext(), h.userContainer, "refresh-token",
		json.Marshal, json.Unmarshal, &userReq, &resp,
	); err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(ErrorResponse{
			Error:   "unauthorized",
			Message: "Invalid or expired refresh token",
		})
	}

	return c.Status(fiber.StatusOK).JSON(TokenResponse{
		AccessToken:  resp.AccessToken,
		RefreshToken: resp.RefreshToken,
		ExpiresIn:    resp.ExpiresIn,
		TokenType:    resp.TokenType,
	})
}

// RequestPasswordReset issues a password reset token for an email.
func (h *Handlers) RequestPasswordReset(c *fiber.Ctx) error {
	var req PasswordResetRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error:   "bad_request",
			Message: "Invalid request body",
		})
	}

	userReq := user.PasswordResetRequest{Email: req.Email}
	var resp user.PasswordResetResponse

	if err := helper.CallRequestReplyService(
		c.UserContext(), h.userContainer, "request-password-reset",
		json.Marshal, json.Unmarshal, &userReq, &resp,
	); err != nil {
		return h.handleServiceError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(PasswordResetResponse{Token: resp.Token})
}

// ResetPassword consumes a reset token and sets a new password.
func (h *Handlers) ResetPassword(c *fiber.Ctx) error {
	var req ResetPasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error:   "bad_request",
			Message: "Invalid request body",
		})
	}

	userReq := user.ResetPasswordRequest{
		Token:       req.Token,
		NewPassword: req.NewPassword,
	}
	var resp user.ResetPasswordResponse

	if err := helper.CallRequestReplyService(
		c.UserContext(), h.userContainer, "reset-password",
		json.Marshal, json.Unmarshal, &userReq, &resp,
	); err != nil {
		return h.handleServiceError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// Me returns the authenticated user's profile.
func (h *Handlers) Me(c *fiber.Ctx) error {
	claims, ok := currentClaims(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(ErrorResponse{
			Error:   "unauthorized",
			Message: "User not authenticated",
		})
	}

	profile, err := h.userAdapter.GetUser(c.UserContext(), claims.UserID)
	if err != nil {
		return h.handleServiceError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(toProfileResponse(profile))
}

// UpdateMe edits the authenticated user's profile fields.
func (h *Handlers) UpdateMe(c *fiber.Ctx) error {
	claims, ok := currentClaims(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(ErrorResponse{
			Error:   "unauthorized",
			Message: "User not authenticated",
		})
	}

	var req UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error:   "bad_request",
			Message: "Invalid request body",
		})
	}

	userReq := user.UpdateProfileRequest{
		UserID:    claims.UserID,
		Bio:       req.Bio,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	}
	var resp user.UserResponse

	if err := helper.CallRequestReplyService(
		c.UserContext(), h.userContainer, "update-profile",
		json.Marshal, json.Unmarshal, &userReq, &resp,
	); err != nil {
		return h.handleServiceError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(toProfileResponse(&resp))
}

// UploadAvatar accepts a multipart image upload, stores it and records
// the reference on the user's profile.
func (h *Handlers) UploadAvatar(c *fiber.Ctx) error {
	claims, ok := currentClaims(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(ErrorResponse{
			Error:   "unauthorized",
			Message: "User not authenticated",
		})
	}

	fileHeader, err := c.FormFile("avatar")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error:   "bad_request",
			Message: "Multipart field 'avatar' is required",
		})
	}

	file, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error:   "bad_request",
			Message: "Failed to read uploaded file",
		})
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error:   "bad_request",
			Message: "Failed to read uploaded file",
		})
	}

	name, err := h.avatarAdapter.Upload(c.UserContext(), fileHeader.Filename, data)
	if err != nil {
		return h.handleServiceError(c, err)
	}

	userReq := user.SetAvatarRequest{UserID: claims.UserID, AvatarRef: name}
	var resp user.UserResponse

	if err := helper.CallRequestReplyService(
		c.UserContext(), h.userContainer, "set-avatar",
		json.Marshal, json.Unmarshal, &userReq, &resp,
	); err != nil {
		return h.handleServiceError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(toProfileResponse(&resp))
}

// Avatar serves a stored avatar image by object name.
func (h *Handlers) Avatar(c *fiber.Ctx) error {
	name := c.Params("name")
	if name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error:   "bad_request",
			Message: "Avatar name is required",
		})
	}

	data, contentType, err := h.avatarAdapter.Fetch(c.UserContext(), name)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(ErrorResponse{
			Error:   "not_found",
			Message: "Avatar not found",
		})
	}

	c.Set(fiber.HeaderContentType, contentType)
	return c.Status(fiber.StatusOK).Send(data)
}

// PublicProfile returns another user's profile with follow counts and
// whether the viewer follows them.
func (h *Handlers) PublicProfile(c *fiber.Ctx) error {
	claims, ok := currentClaims(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(ErrorResponse{
			Error:   "unauthorized",
			Message: "User not authenticated",
		})
	}

	target, err := h.userAdapter.GetUserByUsername(c.UserContext(), c.Params("username"))
	if err != nil {
		return h.handleServiceError(c, err)
	}

	statsReq := social.FollowStatsRequest{UserID: target.ID}
	var stats social.FollowStatsResponse
	if err := helper.CallRequestReplyService(
		c.UserContext(), h.socialContainer, "follow-stats",
		json.Marshal, json.Unmarshal, &statsReq, &stats,
	); err != nil {
		return h.handleServiceError(c, err)
	}

	followingReq := social.IsFollowingRequest{FollowerID: claims.UserID, TargetID: target.ID}
	var following social.IsFollowingResponse
	if err := helper.CallRequestReplyService(
		c.UserContext(), h.socialContainer, "is-following",
		json.Marshal, json.Unmarshal, &followingReq, &following,
	); err != nil {
		return h.handleServiceError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(PublicProfileResponse{
		ID:         target.ID,
		Username:   target.Username,
		FirstName:  target.FirstName,
		LastName:   target.LastName,
		Bio:        target.Bio,
		AvatarURL:  avatarURL(target.Avatar),
		Followers:  stats.Followers,
		Following:  stats.Following,
		IsFollowed: following.Following,
		CreatedAt:  target.CreatedAt,
	})
}

// Follow makes the authenticated user follow the named user.
func (h *Handlers) Follow(c *fiber.Ctx) error {
	claims, ok := currentClaims(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(ErrorResponse{
			Error:   "unauthorized",
			Message: "User not authenticated",
		})
	}

	target, err := h.userAdapter.GetUserByUsername(c.UserContext(), c.Params("username"))
	if err != nil {
		return h.handleServiceError(c, err)
	}

	followReq := social.FollowRequest{FollowerID: claims.UserID, TargetID: target.ID}
	var resp social.FollowResponse
	if err := helper.CallRequestReplyService(
		c.UserContext(), h.socialContainer, "follow",
		json.Marshal, json.Unmarshal, &followReq, &resp,
	); err != nil {
		return h.handleServiceError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(FollowResponse{Following: resp.Following})
}

// Unfollow makes the authenticated user unfollow the named user.
func (h *Handlers) Unfollow(c *fiber.Ctx) error {
	claims, ok := currentClaims(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(ErrorResponse{
			Error:   "unauthorized",
			Message: "User not authenticated",
		})
	}

	target, err := h.userAdapter.GetUserByUsername(c.UserContext(), c.Params("username"))
	if err != nil {
		return h.handleServiceError(c, err)
	}

	unfollowReq := social.UnfollowRequest{FollowerID: claims.UserID, TargetID: target.ID}
	var resp social.UnfollowResponse
	if err := helper.CallRequestReplyService(
		c.UserContext(), h.socialContainer, "unfollow",
		json.Marshal, json.Unmarshal, &unfollowReq, &resp,
	); err != nil {
		return h.handleServiceError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(FollowResponse{Following: resp.Following})
}

// Notifications returns the authenticated user's recent notifications.
func (h *Handlers) Notifications(c *fiber.Ctx) error {
	claims, ok := currentClaims(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(ErrorResponse{
			Error:   "unauthorized",
			Message: "User not authenticated",
		})
	}

	req := social.NotificationsRequest{
		RecipientID: claims.UserID,
		Limit:       parseLimit(c),
	}
	var resp social.NotificationsResponse
	if err := helper.CallRequestReplyService(
		c.UserContext(), h.socialContainer, "recent-notifications",
		json.Marshal, json.Unmarshal, &req, &resp,
	); err != nil {
		return h.handleServiceError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(resp)
}

// UnreadCount returns the count of notifications newer than the user's
// read marker.
func (h *Handlers) UnreadCount(c *fiber.Ctx) error {
	claims, ok := currentClaims(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(ErrorResponse{
			Error:   "unauthorized",
			Message: "User not authenticated",
		})
	}

	req := social.UnreadCountRequest{UserID: claims.UserID}
	var resp social.UnreadCountResponse
	if err := helper.CallRequestReplyService(
		c.UserContext(), h.socialContainer, "unread-count",
		json.Marshal, json.Unmarshal, &req, &resp,
	); err != nil {
		return h.handleServiceError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(UnreadResponse{Unread: resp.Count})
}

// MarkNotificationsRead moves the authenticated user's read marker to now.
func (h *Handlers) MarkNotificationsRead(c *fiber.Ctx) error {
	claims, ok := currentClaims(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(ErrorResponse{
			Error:   "unauthorized",
			Message: "User not authenticated",
		})
	}

	req := user.MarkReadRequest{UserID: claims.UserID}
	var resp user.MarkReadResponse
	if err := helper.CallRequestReplyService(
		c.UserContext(), h.userContainer, "mark-notifications-read",
		json.Marshal, json.Unmarshal, &req, &resp,
	); err != nil {
		return h.handleServiceError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(MarkReadResponse{Marked: resp.Marked})
}

// Timeline returns the authenticated user's recent timeline entries.
func (h *Handlers) Timeline(c *fiber.Ctx) error {
	claims, ok := currentClaims(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(ErrorResponse{
			Error:   "unauthorized",
			Message: "User not authenticated",
		})
	}

	req := social.TimelineRequest{
		UserID: claims.UserID,
		Limit:  parseLimit(c),
	}
	var resp social.TimelineResponse
	if err := helper.CallRequestReplyService(
		c.UserContext(), h.socialContainer, "recent-timeline",
		json.Marshal, json.Unmarshal, &req, &resp,
	); err != nil {
		return h.handleServiceError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(resp)
}

// CreateTask creates a pending task owned by the authenticated user.
func (h *Handlers) CreateTask(c *fiber.Ctx) error {
	claims, ok := currentClaims(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(ErrorResponse{
			Error:   "unauthorized",
			Message: "User not authenticated",
		})
	}

	var req CreateTaskRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error:   "bad_request",
			Message: "Invalid request body",
		})
	}

	created, err := h.taskAdapter.CreateTask(c.UserContext(), &task.CreateTaskRequest{
		OwnerID:     claims.UserID,
		Title:       req.Title,
		Description: req.Description,
	})
	if err != nil {
		return h.handleServiceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(created)
}

// UpdateTask edits a task's title and/or description.
func (h *Handlers) UpdateTask(c *fiber.Ctx) error {
	claims, ok := currentClaims(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(ErrorResponse{
			Error:   "unauthorized",
			Message: "User not authenticated",
		})
	}

	var req UpdateTaskRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error:   "bad_request",
			Message: "Invalid request body",
		})
	}

	updated, err := h.taskAdapter.UpdateTask(c.UserContext(), &task.UpdateTaskRequest{
		ActorID:     claims.UserID,
		TaskID:      c.Params("id"),
		Title:       req.Title,
		Description: req.Description,
	})
	if err != nil {
		return h.handleServiceError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(updated)
}

// CompleteTask marks a task completed.
func (h *Handlers) CompleteTask(c *fiber.Ctx) error {
	claims, ok := currentClaims(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(ErrorResponse{
			Error:   "unauthorized",
			Message: "User not authenticated",
		})
	}

	completed, err := h.taskAdapter.CompleteTask(c.UserContext(), claims.UserID, c.Params("id"))
	if err != nil {
		return h.handleServiceError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(completed)
}

// DeleteTask deletes a task and its likes.
func (h *Handlers) DeleteTask(c *fiber.Ctx) error {
	claims, ok := currentClaims(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(ErrorResponse{
			Error:   "unauthorized",
			Message: "User not authenticated",
		})
	}

	if err := h.taskAdapter.DeleteTask(c.UserContext(), claims.UserID, c.Params("id")); err != nil {
		return h.handleServiceError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// PendingTasks lists the authenticated user's incomplete tasks.
func (h *Handlers) PendingTasks(c *fiber.Ctx) error {
	claims, ok := currentClaims(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(ErrorResponse{
			Error:   "unauthorized",
			Message: "User not authenticated",
		})
	}

	resp, err := h.taskAdapter.PendingTasks(c.UserContext(), claims.UserID)
	if err != nil {
		return h.handleServiceError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(resp)
}

// Feed returns completed tasks from the authenticated user and everyone
// they follow.
func (h *Handlers) Feed(c *fiber.Ctx) error {
	claims, ok := currentClaims(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(ErrorResponse{
			Error:   "unauthorized",
			Message: "User not authenticated",
		})
	}

	resp, err := h.taskAdapter.Feed(c.UserContext(), claims.UserID)
	if err != nil {
		return h.handleServiceError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(resp)
}

// LikeTask records the authenticated user's like on a task.
func (h *Handlers) LikeTask(c *fiber.Ctx) error {
	claims, ok := currentClaims(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(ErrorResponse{
			Error:   "unauthorized",
			Message: "User not authenticated",
		})
	}

	if err := h.taskAdapter.Like(c.UserContext(), claims.UserID, c.Params("id")); err != nil {
		return h.handleServiceError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// UnlikeTask removes the authenticated user's like from a task.
func (h *Handlers) UnlikeTask(c *fiber.Ctx) error {
	claims, ok := currentClaims(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(ErrorResponse{
			Error:   "unauthorized",
			Message: "User not authenticated",
		})
	}

	if err := h.taskAdapter.Unlike(c.UserContext(), claims.UserID, c.Params("id")); err != nil {
		return h.handleServiceError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// parseLimit reads the optional limit query parameter.
func parseLimit(c *fiber.Ctx) int {
	raw := c.Query("limit")
	if raw == "" {
		return 0
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 0 {
		return 0
	}
	return limit
}

// toProfileResponse converts a user service response to the HTTP shape.
func toProfileResponse(u *user.UserResponse) ProfileResponse {
	return ProfileResponse{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Bio:       u.Bio,
		AvatarURL: avatarURL(u.Avatar),
		CreatedAt: u.CreatedAt,
	}
}

// handleServiceError maps service errors to HTTP responses.
// It matches error messages to provide user-friendly responses without
// exposing internals.
func (h *Handlers) handleServiceError(c *fiber.Ctx, err error) error {
	errStr := err.Error()

	switch {
	case strings.Contains(errStr, "invalid username or password"):
		return c.Status(fiber.StatusUnauthorized).JSON(ErrorResponse{
			Error:   "unauthorized",
			Message: "Invalid username or password",
		})
	case strings.Contains(errStr, "user not found"),
		strings.Contains(errStr, "task not found"):
		return c.Status(fiber.StatusNotFound).JSON(ErrorResponse{
			Error:   "not_found",
			Message: "Resource not found",
		})
	case strings.Contains(errStr, "no reaction to remove"):
		return c.Status(fiber.StatusNotFound).JSON(ErrorResponse{
			Error:   "not_found",
			Message: "You have not liked this task",
		})
	case strings.Contains(errStr, "username or email already taken"):
		return c.Status(fiber.StatusConflict).JSON(ErrorResponse{
			Error:   "conflict",
			Message: "Username or email already taken",
		})
	case strings.Contains(errStr, "already reacted"):
		return c.Status(fiber.StatusConflict).JSON(ErrorResponse{
			Error:   "conflict",
			Message: "You already liked this task",
		})
	case strings.Contains(errStr, "not the task owner"):
		return c.Status(fiber.StatusForbidden).JSON(ErrorResponse{
			Error:   "forbidden",
			Message: "Only the task owner may do this",
		})
	case strings.Contains(errStr, "cannot follow yourself"):
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error:   "bad_request",
			Message: "You cannot follow yourself",
		})
	case strings.Contains(errStr, "task is not completed"):
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error:   "bad_request",
			Message: "Only completed tasks can be liked",
		})
	case strings.Contains(errStr, "missing required field"),
		strings.Contains(errStr, "invalid email format"),
		strings.Contains(errStr, "password must be"),
		strings.Contains(errStr, "title must be"),
		strings.Contains(errStr, "description must be"),
		strings.Contains(errStr, "invalid password reset token"),
		strings.Contains(errStr, "unsupported avatar type"),
		strings.Contains(errStr, "avatar file is empty"):
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error:   "bad_request",
			Message: errStr,
		})
	default:
		// Log the actual error but don't expose it to the client
		log.Printf("[api] Internal error: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Error:   "internal_error",
			Message: "An internal error occurred",
		})
	}
}
