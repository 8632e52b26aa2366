package handler

import (
	"net/http"

	"github.com/Lucky-tech10/auto-mart-api/internal/middleware"
	"github.com/Lucky-tech10/auto-mart-api/internal/service"
	"github.com/Lucky-tech10/auto-mart-api/pkg/response"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userService service.UserService
	auth        gin.HandlerFunc
}

func NewUserHandler(userService service.UserService, auth gin.HandlerFunc) *UserHandler {
	return &UserHandler{userService: userService, auth: auth}
}

// RegisterRoutes binds the user endpoints to the router group
func (h *UserHandler) RegisterRoutes(router *gin.RouterGroup) {
	user := router.Group("/user", h.auth)
	{
		user.GET("/showUser", h.ShowCurrentUser)
		user.PATCH("/update-password", h.UpdatePassword)
	}
}

// ShowCurrentUser handles GET /user/showUser
// @Summary      Show current user
// @Description  Returns the authenticated account without its password hash
// @Tags         user
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response.Response{data=model.User}
// @Failure      401  {object}  response.Response
// @Router       /api/v1/user/showUser [get]
func (h *UserHandler) ShowCurrentUser(c *gin.Context) {
	user := middleware.CurrentUser(c)
	c.JSON(http.StatusOK, response.Success(http.StatusOK, user))
}

// UpdatePassword handles PATCH /user/update-password
// @Summary      Update password
// @Description  Replaces the caller's password after verifying the current one
// @Tags         user
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        payload  body      service.UpdatePasswordRequest  true  "Current and new password"
// @Success      200      {object}  response.Response
// @Failure      400      {object}  response.Response
// @Failure      401      {object}  response.Response
// @Router       /api/v1/user/update-password [patch]
func (h *UserHandler) UpdatePassword(c *gin.Context) {
	var req service.UpdatePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "All fields are required"))
		return
	}

	user := middleware.CurrentUser(c)
	if err := h.userService.UpdatePassword(c.Request.Context(), user.ID, req); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Message(http.StatusOK, "Password updated successfully"))
}
