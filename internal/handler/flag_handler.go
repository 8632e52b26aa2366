package handler

import (
	"net/http"

	"github.com/Lucky-tech10/auto-mart-api/internal/middleware"
	"github.com/Lucky-tech10/auto-mart-api/internal/service"
	"github.com/Lucky-tech10/auto-mart-api/pkg/response"

	"github.com/gin-gonic/gin"
)

type FlagHandler struct {
	flagService service.FlagService
	auth        gin.HandlerFunc
}

func NewFlagHandler(flagService service.FlagService, auth gin.HandlerFunc) *FlagHandler {
	return &FlagHandler{flagService: flagService, auth: auth}
}

// RegisterRoutes binds the flag endpoints to the router group
func (h *FlagHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/flag", h.auth, h.CreateFlag)
}

// CreateFlag handles POST /flag
// @Summary      Flag a listing
// @Description  Reports an available car as fraudulent or mispriced. Each reporter may flag a given car once.
// @Tags         flag
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        payload  body      service.CreateFlagRequest  true  "Car id, reason and optional description"
// @Success      201      {object}  response.Response{data=model.Flag}
// @Failure      400      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Router       /api/v1/flag [post]
func (h *FlagHandler) CreateFlag(c *gin.Context) {
	var req service.CreateFlagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	user := middleware.CurrentUser(c)
	flag, err := h.flagService.CreateFlag(c.Request.Context(), user.ID, req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, flag))
}
