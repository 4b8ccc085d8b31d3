package usecase

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"seedco-api/internal/dto/request"
	"seedco-api/internal/dto/response"
	"seedco-api/pkg/apperr"
	"seedco-api/pkg/utils"
)

// OrderService handles order intake for guests and logged-in users alike.
// Orders are assembled and echoed back, not persisted; the storefront's
// persistence stops at the users table.
type OrderService interface {
	CreateOrder(ctx context.Context, req *request.CreateOrderRequest) (*response.OrderResponse, error)
}

type orderService struct {
	log *zap.Logger
}

func NewOrderService(log *zap.Logger) OrderService {
	return &orderService{log: log}
}

func (os *orderService) CreateOrder(ctx context.Context, req *request.CreateOrderRequest) (*response.OrderResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		os.log.Warn("Order validation failed", zap.Any("errors", errs))
		return nil, &apperr.ValidationError{Fields: errs}
	}

	now := time.Now()
	order := &response.OrderResponse{
		ID:          fmt.Sprintf("ORDER_%d", now.UnixMilli()),
		OrderNumber: utils.GenerateOrderNumber(),
		Status:      "pending",
		Total:       req.Total,
		Items:       make([]response.OrderItemResponse, 0, len(req.Items)),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	for i, item := range req.Items {
		order.Items = append(order.Items, response.OrderItemResponse{
			ID: i + 1,
			Product: response.ProductResponse{
				ID:    item.ProductID,
				Name:  fmt.Sprintf("Product %s", item.ProductID),
				Price: item.Price,
			},
			Quantity: item.Quantity,
			Price:    item.Price,
		})
	}

	if req.UserID != nil {
		order.User = &response.OrderUserResponse{
			ID:        *req.UserID,
			FirstName: req.CustomerInfo.FirstName,
			LastName:  req.CustomerInfo.LastName,
			Email:     req.CustomerInfo.Email,
		}
	}

	os.log.Info("Order created",
		zap.String("order_number", order.OrderNumber),
		zap.Float64("total", order.Total),
		zap.Int("items", len(order.Items)),
		zap.Bool("guest", req.UserID == nil))

	return order, nil
}
