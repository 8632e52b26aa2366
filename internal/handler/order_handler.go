package handler

import (
	"net/http"

	"github.com/Lucky-tech10/auto-mart-api/internal/middleware"
	"github.com/Lucky-tech10/auto-mart-api/internal/service"
	"github.com/Lucky-tech10/auto-mart-api/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type OrderHandler struct {
	orderService service.OrderService
	auth         gin.HandlerFunc
}

func NewOrderHandler(orderService service.OrderService, auth gin.HandlerFunc) *OrderHandler {
	return &OrderHandler{orderService: orderService, auth: auth}
}

// RegisterRoutes binds the order endpoints to the router group
func (h *OrderHandler) RegisterRoutes(router *gin.RouterGroup) {
	order := router.Group("/order", h.auth)
	{
		order.POST("", h.CreateOrder)
		order.PATCH("/:id/price", h.UpdateOrderPrice)
	}
}

// CreateOrder handles POST /order
// @Summary      Place an order
// @Description  Places a pending purchase offer on an available car. Ordering your own car is rejected.
// @Tags         order
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        payload  body      service.CreateOrderRequest  true  "Car id and offered amount"
// @Success      201      {object}  response.Response{data=model.Order}
// @Failure      400      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Router       /api/v1/order [post]
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var req service.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	user := middleware.CurrentUser(c)
	order, err := h.orderService.CreateOrder(c.Request.Context(), user.ID, req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, order))
}

// UpdateOrderPrice handles PATCH /order/:id/price
// @Summary      Revise an offer
// @Description  Updates the offered amount on a pending order. Only the buyer may revise their own offer.
// @Tags         order
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id       path      string                           true  "Order id"
// @Param        payload  body      service.UpdateOrderPriceRequest  true  "New amount"
// @Success      200      {object}  response.Response{data=model.Order}
// @Failure      400      {object}  response.Response
// @Failure      403      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Router       /api/v1/order/{id}/price [patch]
func (h *OrderHandler) UpdateOrderPrice(c *gin.Context) {
	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, response.Error(http.StatusNotFound, "Order not found"))
		return
	}
	var req service.UpdateOrderPriceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "new_price is required"))
		return
	}

	user := middleware.CurrentUser(c)
	order, err := h.orderService.UpdateOrderPrice(c.Request.Context(), orderID, user.ID, req.NewPrice)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, order))
}
