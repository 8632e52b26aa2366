package handler

import (
	"context"
	"io"
	"net/http"

	"github.com/Lucky-tech10/auto-mart-api/internal/middleware"
	"github.com/Lucky-tech10/auto-mart-api/internal/service"
	"github.com/Lucky-tech10/auto-mart-api/pkg/apperr"
	"github.com/Lucky-tech10/auto-mart-api/pkg/pagination"
	"github.com/Lucky-tech10/auto-mart-api/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ImageUploader pushes one image buffer to object storage and returns
// its public URL. The handler owns the 1-5 file count bound; the
// uploader owns content-type and size limits.
type ImageUploader interface {
	Upload(ctx context.Context, filename, contentType string, r io.Reader) (string, error)
}

type CarHandler struct {
	carService service.CarService
	uploader   ImageUploader
	auth       gin.HandlerFunc
}

func NewCarHandler(carService service.CarService, uploader ImageUploader, auth gin.HandlerFunc) *CarHandler {
	return &CarHandler{carService: carService, uploader: uploader, auth: auth}
}

// RegisterRoutes binds the car endpoints to the router group
func (h *CarHandler) RegisterRoutes(router *gin.RouterGroup) {
	car := router.Group("/car")
	{
		car.GET("", h.ListAvailableCars)
		car.POST("", h.auth, h.CreateCar)
		car.GET("/all", h.auth, middleware.RequireAdmin(), h.ListAllCars)
		car.GET("/my-cars", h.auth, h.ListMyCars)
		car.GET("/:id", h.GetCar)
		car.DELETE("/:id", h.auth, h.DeleteCar)
		car.PATCH("/:id/status", h.auth, h.UpdateStatus)
		car.PATCH("/:id/price", h.auth, h.UpdatePrice)
	}
}

// CreateCar handles POST /car (multipart form with 1-5 "images" files)
// @Summary      Create a listing
// @Description  Uploads the submitted images and creates an available listing owned by the caller
// @Tags         car
// @Accept       mpfd
// @Produce      json
// @Security     BearerAuth
// @Param        make            formData  string  true   "Make"
// @Param        model           formData  string  true   "Model"
// @Param        price           formData  string  true   "Price"
// @Param        state           formData  string  true   "new or used"
// @Param        location        formData  string  true   "Location"
// @Param        body_type       formData  string  true   "Body type"
// @Param        description     formData  string  false  "Description"
// @Param        mainPhotoIndex  formData  int     false  "Cover photo index"
// @Param        images          formData  file    true   "1-5 images"
// @Success      201  {object}  response.Response{data=model.Car}
// @Failure      400  {object}  response.Response
// @Router       /api/v1/car [post]
func (h *CarHandler) CreateCar(c *gin.Context) {
	var req service.CreateCarRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid multipart form"))
		return
	}
	files := form.File["images"]
	if len(files) == 0 {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Please upload at least one image"))
		return
	}
	if len(files) > service.MaxCarImages {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "You can only upload up to 5 images"))
		return
	}

	urls := make([]string, 0, len(files))
	for _, fh := range files {
		f, err := fh.Open()
		if err != nil {
			writeError(c, apperr.BadRequest("Image upload failed: "+err.Error()))
			return
		}
		url, err := h.uploader.Upload(c.Request.Context(), fh.Filename, fh.Header.Get("Content-Type"), f)
		_ = f.Close()
		if err != nil {
			writeError(c, apperr.BadRequest("Image upload failed: "+err.Error()))
			return
		}
		urls = append(urls, url)
	}

	user := middleware.CurrentUser(c)
	car, err := h.carService.CreateCar(c.Request.Context(), user.ID, req, urls)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, car))
}

// ListAvailableCars handles GET /car with optional filters
// @Summary      Browse available cars
// @Description  Lists available cars, intersected with the state, make, body_type and price range filters, paginated
// @Tags         car
// @Produce      json
// @Param        state      query  string  false  "new or used"
// @Param        make       query  string  false  "Make (case-insensitive)"
// @Param        body_type  query  string  false  "Body type"
// @Param        min_price  query  number  false  "Minimum price"
// @Param        max_price  query  number  false  "Maximum price"
// @Param        page       query  int     false  "Page (default 1)"
// @Param        limit      query  int     false  "Page size (default 12)"
// @Success      200  {object}  response.Response{data=[]model.Car}
// @Router       /api/v1/car [get]
func (h *CarHandler) ListAvailableCars(c *gin.Context) {
	filter := service.CarFilter{
		State:    c.Query("state"),
		Make:     c.Query("make"),
		BodyType: c.Query("body_type"),
	}
	if raw := c.Query("min_price"); raw != "" {
		min, err := decimal.NewFromString(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "min_price must be a number"))
			return
		}
		filter.MinPrice = &min
	}
	if raw := c.Query("max_price"); raw != "" {
		max, err := decimal.NewFromString(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "max_price must be a number"))
			return
		}
		filter.MaxPrice = &max
	}

	page, err := h.carService.ListAvailableCars(c.Request.Context(), filter, pagination.Parse(c))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":          http.StatusOK,
		"data":            page.Cars,
		"count":           page.Count,
		"available_count": page.AvailableCount,
		"page":            page.Page,
		"limit":           page.Limit,
		"totalPages":      page.TotalPages,
	})
}

// ListAllCars handles GET /car/all (admin only)
// @Summary      List all cars
// @Description  Returns every listing regardless of status
// @Tags         car
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response.Response{data=[]model.Car}
// @Failure      403  {object}  response.Response
// @Router       /api/v1/car/all [get]
func (h *CarHandler) ListAllCars(c *gin.Context) {
	cars, err := h.carService.ListAllCars(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, cars))
}

// ListMyCars handles GET /car/my-cars
// @Summary      List own listings
// @Tags         car
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response.Response{data=[]model.Car}
// @Router       /api/v1/car/my-cars [get]
func (h *CarHandler) ListMyCars(c *gin.Context) {
	user := middleware.CurrentUser(c)
	cars, err := h.carService.ListCarsByOwner(c.Request.Context(), user.ID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, cars))
}

// GetCar handles GET /car/:id
// @Summary      Get a single car
// @Tags         car
// @Produce      json
// @Param        id   path      string  true  "Car id"
// @Success      200  {object}  response.Response{data=model.Car}
// @Failure      404  {object}  response.Response
// @Router       /api/v1/car/{id} [get]
func (h *CarHandler) GetCar(c *gin.Context) {
	id, ok := h.carID(c)
	if !ok {
		return
	}
	car, err := h.carService.GetCar(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, car))
}

// UpdateStatus handles PATCH /car/:id/status (owner only)
// @Summary      Update listing status
// @Description  Flips a listing between available and sold. Only the owner may do this; admins have no override.
// @Tags         car
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id       path      string                           true  "Car id"
// @Param        payload  body      service.UpdateCarStatusRequest  true  "New status"
// @Success      200      {object}  response.Response{data=model.Car}
// @Failure      403      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Router       /api/v1/car/{id}/status [patch]
func (h *CarHandler) UpdateStatus(c *gin.Context) {
	id, ok := h.carID(c)
	if !ok {
		return
	}
	var req service.UpdateCarStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Status must be available or sold"))
		return
	}

	car, err := h.carService.UpdateStatus(c.Request.Context(), id, req.Status, middleware.CurrentUser(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, car))
}

// UpdatePrice handles PATCH /car/:id/price (owner only)
// @Summary      Update listing price
// @Tags         car
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id       path      string                          true  "Car id"
// @Param        payload  body      service.UpdateCarPriceRequest  true  "New price"
// @Success      200      {object}  response.Response{data=model.Car}
// @Failure      403      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Router       /api/v1/car/{id}/price [patch]
func (h *CarHandler) UpdatePrice(c *gin.Context) {
	id, ok := h.carID(c)
	if !ok {
		return
	}
	var req service.UpdateCarPriceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Price is required"))
		return
	}

	car, err := h.carService.UpdatePrice(c.Request.Context(), id, req.Price, middleware.CurrentUser(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, car))
}

// DeleteCar handles DELETE /car/:id (owner or admin)
// @Summary      Delete a listing
// @Description  Removes the listing along with every order and flag raised against it
// @Tags         car
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Car id"
// @Success      200  {object}  response.Response{data=model.Car}
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /api/v1/car/{id} [delete]
func (h *CarHandler) DeleteCar(c *gin.Context) {
	id, ok := h.carID(c)
	if !ok {
		return
	}
	car, err := h.carService.DeleteCar(c.Request.Context(), id, middleware.CurrentUser(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, car))
}

func (h *CarHandler) carID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, response.Error(http.StatusNotFound, "Car not found"))
		return uuid.Nil, false
	}
	return id, true
}
