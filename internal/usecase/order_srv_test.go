package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"seedco-api/internal/dto/request"
	"seedco-api/internal/usecase"
	"seedco-api/pkg/apperr"
)

func orderReq() *request.CreateOrderRequest {
	return &request.CreateOrderRequest{
		Items: []request.OrderItemRequest{
			{ProductID: "prod-1", Quantity: 2, Price: 19.99},
			{ProductID: "prod-2", Quantity: 1, Price: 5.00},
		},
		Total: 44.98,
		CustomerInfo: request.CustomerInfoRequest{
			FirstName: "Alice",
			LastName:  "Smith",
			Email:     "alice@example.com",
		},
		PaymentInfo: request.PaymentInfoRequest{Amount: 44.98},
	}
}

func TestCreateOrder_Guest(t *testing.T) {
	service := usecase.NewOrderService(zap.NewNop())

	resp, err := service.CreateOrder(context.Background(), orderReq())

	require.NoError(t, err)
	assert.Equal(t, "pending", resp.Status)
	assert.NotEmpty(t, resp.ID)
	assert.NotEmpty(t, resp.OrderNumber)
	assert.InDelta(t, 44.98, resp.Total, 0.001)
	require.Len(t, resp.Items, 2)
	assert.Equal(t, "prod-1", resp.Items[0].Product.ID)
	assert.Equal(t, 2, resp.Items[0].Quantity)
	assert.Nil(t, resp.User)
}

func TestCreateOrder_LoggedInUser(t *testing.T) {
	service := usecase.NewOrderService(zap.NewNop())

	req := orderReq()
	userID := "user-123"
	req.UserID = &userID

	resp, err := service.CreateOrder(context.Background(), req)

	require.NoError(t, err)
	require.NotNil(t, resp.User)
	assert.Equal(t, "user-123", resp.User.ID)
	assert.Equal(t, "alice@example.com", resp.User.Email)
}

func TestCreateOrder_RejectsEmptyItems(t *testing.T) {
	service := usecase.NewOrderService(zap.NewNop())

	req := orderReq()
	req.Items = nil

	resp, err := service.CreateOrder(context.Background(), req)

	require.Error(t, err)
	assert.True(t, apperr.IsValidation(err))
	assert.Nil(t, resp)
}

func TestCreateOrder_RejectsZeroTotal(t *testing.T) {
	service := usecase.NewOrderService(zap.NewNop())

	req := orderReq()
	req.Total = 0

	resp, err := service.CreateOrder(context.Background(), req)

	require.Error(t, err)
	assert.True(t, apperr.IsValidation(err))
	assert.Nil(t, resp)
}
