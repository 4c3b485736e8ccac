package usecase

import (
	"context"
	"fmt"
	"time"

	"storefront/internal/data/entity"
	"storefront/internal/data/repository"
	"storefront/internal/dto/request"
	"storefront/internal/dto/response"
	"storefront/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type OrderService interface {
	CreateOrder(ctx context.Context, req *request.CreateOrderRequest) (*response.OrderResponse, error)
	GetUserOrders(ctx context.Context, userID string, req *request.PaginatedRequest) (*response.PaginatedResponse[response.OrderResponse], error)
}

type orderService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewOrderService(repo *repository.Repository, log *zap.Logger) OrderService {
	return &orderService{
		repo: repo,
		log:  log.With(zap.String("service", "order")),
	}
}

func (s *orderService) CreateOrder(ctx context.Context, req *request.CreateOrderRequest) (*response.OrderResponse, error) {
	// Validate request
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create order validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid user ID %s", ErrValidation, req.UserID)
	}

	items := make([]entity.OrderItem, len(req.Items))
	for i, item := range req.Items {
		items[i] = entity.OrderItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     item.Price,
		}
	}

	order := &entity.Order{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		UserID:          userID,
		TotalAmount:     req.TotalAmount,
		Items:           items,
		ShippingAddress: req.ShippingAddress,
		ContactNumber:   req.ContactNumber,
	}

	inserted, err := s.repo.Order.Create(ctx, order)
	if err != nil {
		s.log.Error("Failed to create order", zap.Error(err), zap.String("user_id", req.UserID))
		return nil, fmt.Errorf("create order: %w", err)
	}

	s.log.Info("Order created",
		zap.String("order_id", inserted.ID.String()),
		zap.String("user_id", inserted.UserID.String()),
		zap.Float64("total_amount", inserted.TotalAmount),
		zap.Int("items", len(inserted.Items)))

	return response.OrderToResponse(inserted), nil
}

func (s *orderService) GetUserOrders(ctx context.Context, userID string, req *request.PaginatedRequest) (*response.PaginatedResponse[response.OrderResponse], error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Get user orders validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid user ID %s", ErrValidation, userID)
	}

	orders, err := s.repo.Order.FindByUserID(ctx, userUUID, req.Limit(), req.Offset())
	if err != nil {
		s.log.Error("Failed to get user orders", zap.Error(err), zap.String("user_id", userID))
		return nil, fmt.Errorf("get user orders: %w", err)
	}

	total, err := s.repo.Order.CountByUserID(ctx, userUUID)
	if err != nil {
		s.log.Error("Failed to count user orders", zap.Error(err), zap.String("user_id", userID))
		return nil, fmt.Errorf("count user orders: %w", err)
	}

	data := make([]response.OrderResponse, len(orders))
	for i, order := range orders {
		data[i] = *response.OrderToResponse(order)
	}

	return response.NewPaginatedResponse(data, req.Page, req.Limit(), total), nil
}
