package v1

import (
	"net/http"

	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userUC domain.UserUsecase
}

// NewUserHandler registers user management routes (admin only)
func NewUserHandler(r *gin.RouterGroup, userUC domain.UserUsecase) {
	handler := &UserHandler{userUC: userUC}

	users := r.Group("/users")
	{
		users.GET("", handler.List)
		users.GET("/:id", handler.Get)
		users.POST("", handler.Create)
		users.PUT("/:id", handler.Update)
		users.DELETE("/:id", handler.ToggleActive)
		users.PATCH("/:id/suspend", handler.ToggleSuspend)
	}
}

// UserRequest is the request payload for creating or updating a user
type UserRequest struct {
	RoleID    int64  `json:"role_id" binding:"required"`
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Phone     string `json:"phone" binding:"required"`
	Password  string `json:"password"`
}

// List godoc
// @Summary      List users
// @Tags         users
// @Produce      json
// @Success      200  {object}  response.Response{data=[]domain.User}
// @Router       /users [get]
// @Security     BearerAuth
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.userUC.ListUsers(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Users retrieved", users)
}

// Get godoc
// @Summary      Get a user
// @Tags         users
// @Produce      json
// @Param        id  path      int  true  "User ID"
// @Success      200  {object}  response.Response{data=domain.User}
// @Failure      404  {object}  response.Response
// @Router       /users/{id} [get]
// @Security     BearerAuth
func (h *UserHandler) Get(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		c.Error(err)
		return
	}

	user, err := h.userUC.GetUser(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "User retrieved", user)
}

// Create godoc
// @Summary      Create a user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      UserRequest  true  "User data"
// @Success      201   {object}  response.Response{data=domain.User}
// @Failure      422   {object}  response.Response
// @Router       /users [post]
// @Security     BearerAuth
func (h *UserHandler) Create(c *gin.Context) {
	var req UserRequest
	if err := bindJSON(c, &req); err != nil {
		c.Error(err)
		return
	}
	if req.Password == "" {
		c.Error(apperror.Unprocessable("Validation error", map[string][]string{
			"password": {"The password field is required."},
		}))
		return
	}

	user := &domain.User{
		RoleID:    req.RoleID,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
	}
	if err := h.userUC.CreateUser(c.Request.Context(), user, req.Password); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "User created", user)
}

// Update godoc
// @Summary      Update a user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        id    path      int          true  "User ID"
// @Param        body  body      UserRequest  true  "User data"
// @Success      200   {object}  response.Response{data=domain.User}
// @Failure      404   {object}  response.Response
// @Router       /users/{id} [put]
// @Security     BearerAuth
func (h *UserHandler) Update(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		c.Error(err)
		return
	}

	var req UserRequest
	if err := bindJSON(c, &req); err != nil {
		c.Error(err)
		return
	}

	user := &domain.User{
		ID:        id,
		RoleID:    req.RoleID,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
	}
	if err := h.userUC.UpdateUser(c.Request.Context(), user, req.Password); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "User updated", user)
}

// ToggleActive godoc
// @Summary      Toggle a user between active and inactive
// @Description  Deactivation is reversible; the row is never deleted
// @Tags         users
// @Produce      json
// @Param        id  path      int  true  "User ID"
// @Success      200  {object}  response.Response{data=domain.User}
// @Failure      409  {object}  response.Response
// @Router       /users/{id} [delete]
// @Security     BearerAuth
func (h *UserHandler) ToggleActive(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		c.Error(err)
		return
	}

	user, err := h.userUC.ToggleActive(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "User status updated", user)
}

// ToggleSuspend godoc
// @Summary      Toggle a user between active and suspended
// @Tags         users
// @Produce      json
// @Param        id  path      int  true  "User ID"
// @Success      200  {object}  response.Response{data=domain.User}
// @Failure      409  {object}  response.Response
// @Router       /users/{id}/suspend [patch]
// @Security     BearerAuth
func (h *UserHandler) ToggleSuspend(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		c.Error(err)
		return
	}

	user, err := h.userUC.ToggleSuspend(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "User status updated", user)
}
