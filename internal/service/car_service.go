package service

import (
	"context"
	"strings"

	"github.com/Lucky-tech10/auto-mart-api/internal/model"
	"github.com/Lucky-tech10/auto-mart-api/internal/store"
	"github.com/Lucky-tech10/auto-mart-api/pkg/apperr"
	"github.com/Lucky-tech10/auto-mart-api/pkg/pagination"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Listings may carry between 1 and 5 photos
const (
	MinCarImages = 1
	MaxCarImages = 5
)

// CreateCarRequest carries the multipart form fields of a new listing.
// Price arrives as a form string and is parsed into a decimal here.
type CreateCarRequest struct {
	Make           string `form:"make" binding:"required"`
	Model          string `form:"model" binding:"required"`
	Price          string `form:"price" binding:"required"`
	State          string `form:"state" binding:"required,oneof=new used"`
	Location       string `form:"location" binding:"required"`
	Description    string `form:"description"`
	BodyType       string `form:"body_type" binding:"required"`
	MainPhotoIndex int    `form:"mainPhotoIndex"`
}

type UpdateCarStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=available sold"`
}

type UpdateCarPriceRequest struct {
	Price decimal.Decimal `json:"price" binding:"required"`
}

// CarFilter narrows the available-car listing. Zero values mean "no
// constraint"; make matching folds case, state and body_type are exact.
type CarFilter struct {
	State    string
	Make     string
	BodyType string
	MinPrice *decimal.Decimal
	MaxPrice *decimal.Decimal
}

// CarPage is one page of filtered available listings. AvailableCount is
// the unfiltered number of available cars, reported for UI display.
type CarPage struct {
	Cars           []model.Car `json:"cars"`
	Count          int         `json:"count"`
	AvailableCount int         `json:"available_count"`
	Page           int         `json:"page"`
	Limit          int         `json:"limit"`
	TotalPages     int         `json:"totalPages"`
}

// CarService covers listing lifecycle and browsing
type CarService interface {
	CreateCar(ctx context.Context, ownerID uuid.UUID, req CreateCarRequest, imageURLs []string) (*model.Car, error)
	ListAvailableCars(ctx context.Context, filter CarFilter, page pagination.Params) (*CarPage, error)
	ListCarsByOwner(ctx context.Context, ownerID uuid.UUID) ([]model.Car, error)
	ListAllCars(ctx context.Context) ([]model.Car, error)
	GetCar(ctx context.Context, id uuid.UUID) (*model.Car, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status string, requester *model.User) (*model.Car, error)
	UpdatePrice(ctx context.Context, id uuid.UUID, price decimal.Decimal, requester *model.User) (*model.Car, error)
	DeleteCar(ctx context.Context, id uuid.UUID, requester *model.User) (*model.Car, error)
}

type carService struct {
	cars     store.CarStore
	notifier Notifier
}

// NewCarService wires listing operations. notifier may be nil.
func NewCarService(cars store.CarStore, notifier Notifier) CarService {
	return &carService{cars: cars, notifier: notifier}
}

func (s *carService) CreateCar(ctx context.Context, ownerID uuid.UUID, req CreateCarRequest, imageURLs []string) (*model.Car, error) {
	if len(imageURLs) < MinCarImages {
		return nil, apperr.BadRequest("Please upload at least one image")
	}
	if len(imageURLs) > MaxCarImages {
		return nil, apperr.BadRequest("You can only upload up to 5 images")
	}
	if req.MainPhotoIndex < 0 || req.MainPhotoIndex >= len(imageURLs) {
		return nil, apperr.BadRequest("mainPhotoIndex must point at an uploaded image")
	}

	price, err := decimal.NewFromString(req.Price)
	if err != nil || !price.IsPositive() {
		return nil, apperr.BadRequest("Price must be a number greater than zero")
	}

	car := &model.Car{
		Owner:          ownerID,
		Make:           req.Make,
		Model:          req.Model,
		Price:          price,
		Status:         model.CarStatusAvailable,
		State:          req.State,
		Location:       req.Location,
		Description:    req.Description,
		BodyType:       req.BodyType,
		Images:         imageURLs,
		MainPhotoIndex: req.MainPhotoIndex,
	}
	if err := s.cars.CreateCar(ctx, car); err != nil {
		return nil, err
	}

	s.notify(EventCarCreated, car)
	return car, nil
}

// ListAvailableCars filters the available listings, then paginates. The
// status filter is applied before everything else, so a sold car never
// matches even an exact make filter.
func (s *carService) ListAvailableCars(ctx context.Context, filter CarFilter, page pagination.Params) (*CarPage, error) {
	available, err := s.cars.FindCarsByStatus(ctx, model.CarStatusAvailable)
	if err != nil {
		return nil, err
	}

	filtered := make([]model.Car, 0, len(available))
	for _, car := range available {
		if filter.State != "" && car.State != filter.State {
			continue
		}
		if filter.Make != "" && !strings.EqualFold(car.Make, filter.Make) {
			continue
		}
		if filter.BodyType != "" && car.BodyType != filter.BodyType {
			continue
		}
		if filter.MinPrice != nil && car.Price.LessThan(*filter.MinPrice) {
			continue
		}
		if filter.MaxPrice != nil && car.Price.GreaterThan(*filter.MaxPrice) {
			continue
		}
		filtered = append(filtered, car)
	}

	start, end := page.Bounds(len(filtered))
	return &CarPage{
		Cars:           filtered[start:end],
		Count:          len(filtered),
		AvailableCount: len(available),
		Page:           page.Page,
		Limit:          page.Limit,
		TotalPages:     page.TotalPages(len(filtered)),
	}, nil
}

func (s *carService) ListCarsByOwner(ctx context.Context, ownerID uuid.UUID) ([]model.Car, error) {
	return s.cars.FindCarsByOwner(ctx, ownerID)
}

func (s *carService) ListAllCars(ctx context.Context) ([]model.Car, error) {
	return s.cars.AllCars(ctx)
}

func (s *carService) GetCar(ctx context.Context, id uuid.UUID) (*model.Car, error) {
	car, err := s.cars.FindCarByID(ctx, id)
	if err != nil {
		return nil, apperr.NotFound("Car not found")
	}
	return car, nil
}

// UpdateStatus lets the owner flip a listing between available and sold.
// Admins get no override here; only the owner may touch status.
func (s *carService) UpdateStatus(ctx context.Context, id uuid.UUID, status string, requester *model.User) (*model.Car, error) {
	car, err := s.cars.FindCarByID(ctx, id)
	if err != nil {
		return nil, apperr.NotFound("Car not found")
	}
	if car.Owner != requester.ID {
		return nil, apperr.Unauthorized("Not authorized to access this resource")
	}

	updated, err := s.cars.UpdateCarStatus(ctx, id, status)
	if err != nil {
		return nil, apperr.NotFound("Car not found")
	}

	s.notify(EventCarStatusChanged, updated)
	return updated, nil
}

// UpdatePrice is owner-only, like UpdateStatus
func (s *carService) UpdatePrice(ctx context.Context, id uuid.UUID, price decimal.Decimal, requester *model.User) (*model.Car, error) {
	if !price.IsPositive() {
		return nil, apperr.BadRequest("Price must be greater than zero")
	}

	car, err := s.cars.FindCarByID(ctx, id)
	if err != nil {
		return nil, apperr.NotFound("Car not found")
	}
	if car.Owner != requester.ID {
		return nil, apperr.Unauthorized("Not authorized to access this resource")
	}

	updated, err := s.cars.UpdateCarPrice(ctx, id, price)
	if err != nil {
		return nil, apperr.NotFound("Car not found")
	}
	return updated, nil
}

// DeleteCar removes a listing along with its orders and flags. The owner
// may delete their own listing; admins may delete any listing.
func (s *carService) DeleteCar(ctx context.Context, id uuid.UUID, requester *model.User) (*model.Car, error) {
	car, err := s.cars.FindCarByID(ctx, id)
	if err != nil {
		return nil, apperr.NotFound("Car not found")
	}
	if car.Owner != requester.ID && !requester.IsAdmin() {
		return nil, apperr.Unauthorized("Not authorized to access this resource")
	}

	removed, err := s.cars.DeleteCar(ctx, id)
	if err != nil {
		return nil, apperr.NotFound("Car not found")
	}
	return removed, nil
}

func (s *carService) notify(event string, payload interface{}) {
	if s.notifier != nil {
		s.notifier.Notify(event, payload)
	}
}
