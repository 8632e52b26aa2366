package service

import (
	"context"
	"strings"

	"github.com/Lucky-tech10/auto-mart-api/internal/model"
	"github.com/Lucky-tech10/auto-mart-api/internal/store"
	"github.com/Lucky-tech10/auto-mart-api/pkg/apperr"

	"github.com/google/uuid"
)

type CreateFlagRequest struct {
	CarID       string `json:"car_id" binding:"required,uuid"`
	Reason      string `json:"reason" binding:"required"`
	Description string `json:"description"`
}

// FlagService covers fraud reports against listings
type FlagService interface {
	CreateFlag(ctx context.Context, reporterID uuid.UUID, req CreateFlagRequest) (*model.Flag, error)
}

type flagService struct {
	flags store.FlagStore
	cars  store.CarStore
}

func NewFlagService(flags store.FlagStore, cars store.CarStore) FlagService {
	return &flagService{flags: flags, cars: cars}
}

// CreateFlag raises a report on an available listing. Re-flagging the
// same car is an error, not a silent success.
func (s *flagService) CreateFlag(ctx context.Context, reporterID uuid.UUID, req CreateFlagRequest) (*model.Flag, error) {
	carID, err := uuid.Parse(req.CarID)
	if err != nil {
		return nil, apperr.BadRequest("Invalid car id")
	}

	car, err := s.cars.FindCarByID(ctx, carID)
	if err != nil {
		return nil, apperr.NotFound("Car not found or not available")
	}
	// Self-dealing is rejected before the status check, matching the order
	// path: flagging your own sold car is still a policy error.
	if car.Owner == reporterID {
		return nil, apperr.BadRequest("You cannot flag your own car")
	}
	if !strings.EqualFold(car.Status, model.CarStatusAvailable) {
		return nil, apperr.NotFound("Car not found or not available")
	}
	if s.flags.HasUserFlaggedCar(ctx, carID, reporterID) {
		return nil, apperr.BadRequest("You have already flagged this car")
	}

	flag := &model.Flag{
		CarID:       carID,
		Reporter:    reporterID,
		Reason:      req.Reason,
		Description: req.Description,
	}
	if err := s.flags.CreateFlag(ctx, flag); err != nil {
		return nil, err
	}
	return flag, nil
}
