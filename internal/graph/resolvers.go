package graph

import (
	"github.com/google/uuid"
	"github.com/graphql-go/graphql"
	"go.uber.org/zap"

	"seedco-api/internal/data/entity"
	"seedco-api/internal/dto/request"
	"seedco-api/internal/usecase"
	"seedco-api/pkg/apperr"
	"seedco-api/pkg/utils"
)

type resolver struct {
	service *usecase.Service
	log     *zap.Logger
}

// ---------- Query ----------

func (r *resolver) me(p graphql.ResolveParams) (interface{}, error) {
	user, ok := utils.UserFromContext(p.Context)
	if !ok {
		return r.fail(apperr.ErrAuthRequired, "me"), nil
	}

	profile, err := r.service.User.GetProfile(p.Context, user.ID)
	if err != nil {
		return r.fail(err, "me"), nil
	}

	return map[string]any{
		"success": true,
		"data":    map[string]any{"user": *profile},
	}, nil
}

func (r *resolver) getUser(p graphql.ResolveParams) (interface{}, error) {
	if _, err := r.requireAdmin(p); err != nil {
		return r.fail(err, "getUser"), nil
	}

	id, err := uuid.Parse(argString(p.Args, "id"))
	if err != nil {
		return r.fail(apperr.ErrNotFound, "getUser"), nil
	}

	profile, err := r.service.User.GetProfile(p.Context, id)
	if err != nil {
		return r.fail(err, "getUser"), nil
	}

	return map[string]any{
		"success": true,
		"data":    map[string]any{"user": *profile},
	}, nil
}

// getUsers returns the list directly; failures surface as GraphQL errors,
// matching the asymmetry the storefront client expects.
func (r *resolver) getUsers(p graphql.ResolveParams) (interface{}, error) {
	if _, err := r.requireAdmin(p); err != nil {
		return nil, err
	}

	req := &request.ListUsersRequest{
		Role:   argString(p.Args, "role"),
		Limit:  argInt(p.Args, "limit"),
		Offset: argInt(p.Args, "offset"),
	}

	resp, err := r.service.User.GetUsers(p.Context, req)
	if err != nil {
		r.log.Error("getUsers failed", zap.Error(err))
		return nil, err
	}

	return resp.Users, nil
}

// ---------- Mutation ----------

func (r *resolver) registerCustomer(p graphql.ResolveParams) (interface{}, error) {
	input, ok := inputMap(p)
	if !ok {
		return r.fail(apperr.NewValidation("input", "This field is required"), "registerCustomer"), nil
	}

	req := &request.RegisterCustomerRequest{
		Email:     fieldString(input, "email"),
		Password:  fieldString(input, "password"),
		FirstName: fieldString(input, "firstName"),
		LastName:  fieldString(input, "lastName"),
		Phone:     fieldOptString(input, "phone"),
		Address:   fieldOptString(input, "address"),
	}

	resp, err := r.service.Auth.RegisterCustomer(p.Context, req)
	if err != nil {
		return r.fail(err, "registerCustomer"), nil
	}

	return map[string]any{
		"success": true,
		"message": "Customer registered successfully",
		"data":    map[string]any{"user": resp.User, "token": resp.Token},
	}, nil
}

func (r *resolver) registerAdmin(p graphql.ResolveParams) (interface{}, error) {
	input, ok := inputMap(p)
	if !ok {
		return r.fail(apperr.NewValidation("input", "This field is required"), "registerAdmin"), nil
	}

	req := &request.RegisterAdminRequest{
		Email:     fieldString(input, "email"),
		Password:  fieldString(input, "password"),
		FirstName: fieldString(input, "firstName"),
		LastName:  fieldString(input, "lastName"),
		AdminCode: fieldString(input, "adminCode"),
	}

	resp, err := r.service.Auth.RegisterAdmin(p.Context, req)
	if err != nil {
		return r.fail(err, "registerAdmin"), nil
	}

	return map[string]any{
		"success": true,
		"message": "Admin registered successfully",
		"data":    map[string]any{"user": resp.User, "token": resp.Token},
	}, nil
}

func (r *resolver) login(p graphql.ResolveParams) (interface{}, error) {
	input, ok := inputMap(p)
	if !ok {
		return r.fail(apperr.NewValidation("input", "This field is required"), "login"), nil
	}

	req := &request.LoginRequest{
		Email:    fieldString(input, "email"),
		Password: fieldString(input, "password"),
	}

	resp, err := r.service.Auth.Login(p.Context, req)
	if err != nil {
		return r.fail(err, "login"), nil
	}

	return map[string]any{
		"success": true,
		"message": "Login successful",
		"data":    map[string]any{"user": resp.User, "token": resp.Token},
	}, nil
}

func (r *resolver) changePassword(p graphql.ResolveParams) (interface{}, error) {
	user, err := r.requireUser(p)
	if err != nil {
		return r.fail(err, "changePassword"), nil
	}

	input, ok := inputMap(p)
	if !ok {
		return r.fail(apperr.NewValidation("input", "This field is required"), "changePassword"), nil
	}

	req := &request.ChangePasswordRequest{
		CurrentPassword: fieldString(input, "currentPassword"),
		NewPassword:     fieldString(input, "newPassword"),
	}

	if err := r.service.Auth.ChangePassword(p.Context, user.ID, req); err != nil {
		return r.fail(err, "changePassword"), nil
	}

	return map[string]any{
		"success": true,
		"message": "Password changed successfully",
	}, nil
}

func (r *resolver) updateProfile(p graphql.ResolveParams) (interface{}, error) {
	user, err := r.requireUser(p)
	if err != nil {
		return r.fail(err, "updateProfile"), nil
	}

	input, ok := inputMap(p)
	if !ok {
		return r.fail(apperr.NewValidation("input", "This field is required"), "updateProfile"), nil
	}

	profile, err := r.service.User.UpdateProfile(p.Context, user.ID, profileUpdateFromInput(input))
	if err != nil {
		return r.fail(err, "updateProfile"), nil
	}

	return map[string]any{
		"success": true,
		"message": "Profile updated successfully",
		"data":    map[string]any{"user": *profile},
	}, nil
}

func (r *resolver) updateUser(p graphql.ResolveParams) (interface{}, error) {
	if _, err := r.requireAdmin(p); err != nil {
		return r.fail(err, "updateUser"), nil
	}

	id, err := uuid.Parse(argString(p.Args, "id"))
	if err != nil {
		return r.fail(apperr.ErrNotFound, "updateUser"), nil
	}

	input, ok := inputMap(p)
	if !ok {
		return r.fail(apperr.NewValidation("input", "This field is required"), "updateUser"), nil
	}

	profile, err := r.service.User.UpdateProfile(p.Context, id, profileUpdateFromInput(input))
	if err != nil {
		return r.fail(err, "updateUser"), nil
	}

	return map[string]any{
		"success": true,
		"message": "User updated successfully",
		"data":    map[string]any{"user": *profile},
	}, nil
}

func (r *resolver) deactivateUser(p graphql.ResolveParams) (interface{}, error) {
	if _, err := r.requireAdmin(p); err != nil {
		return r.fail(err, "deactivateUser"), nil
	}

	id, err := uuid.Parse(argString(p.Args, "id"))
	if err != nil {
		return r.fail(apperr.ErrNotFound, "deactivateUser"), nil
	}

	if err := r.service.User.DeactivateUser(p.Context, id); err != nil {
		return r.fail(err, "deactivateUser"), nil
	}

	return map[string]any{
		"success": true,
		"message": "User deactivated successfully",
	}, nil
}

func (r *resolver) activateUser(p graphql.ResolveParams) (interface{}, error) {
	if _, err := r.requireAdmin(p); err != nil {
		return r.fail(err, "activateUser"), nil
	}

	id, err := uuid.Parse(argString(p.Args, "id"))
	if err != nil {
		return r.fail(apperr.ErrNotFound, "activateUser"), nil
	}

	if err := r.service.User.ActivateUser(p.Context, id); err != nil {
		return r.fail(err, "activateUser"), nil
	}

	return map[string]any{
		"success": true,
		"message": "User activated successfully",
	}, nil
}

// createOrder accepts guests; no authentication requirement at all.
func (r *resolver) createOrder(p graphql.ResolveParams) (interface{}, error) {
	input, ok := inputMap(p)
	if !ok {
		return r.fail(apperr.NewValidation("input", "This field is required"), "createOrder"), nil
	}

	req := &request.CreateOrderRequest{
		Total:   fieldFloat(input, "total"),
		GuestID: fieldOptString(input, "guestId"),
		UserID:  fieldOptString(input, "userId"),
	}

	if items, ok := input["items"].([]interface{}); ok {
		for _, raw := range items {
			item, ok := raw.(map[string]interface{})
			if !ok {
				continue
			}
			req.Items = append(req.Items, request.OrderItemRequest{
				ProductID: fieldString(item, "productId"),
				Quantity:  fieldInt(item, "quantity"),
				Price:     fieldFloat(item, "price"),
			})
		}
	}

	if ci, ok := input["customerInfo"].(map[string]interface{}); ok {
		req.CustomerInfo = request.CustomerInfoRequest{
			FirstName: fieldString(ci, "firstName"),
			LastName:  fieldString(ci, "lastName"),
			Email:     fieldString(ci, "email"),
			Phone:     fieldOptString(ci, "phone"),
			Address:   fieldOptString(ci, "address"),
			City:      fieldOptString(ci, "city"),
			State:     fieldOptString(ci, "state"),
			ZipCode:   fieldOptString(ci, "zipCode"),
			Country:   fieldOptString(ci, "country"),
		}
	}

	if pi, ok := input["paymentInfo"].(map[string]interface{}); ok {
		req.PaymentInfo = request.PaymentInfoRequest{
			CardLast4: fieldOptString(pi, "cardLast4"),
			CardType:  fieldOptString(pi, "cardType"),
			Amount:    fieldFloat(pi, "amount"),
		}
	}

	order, err := r.service.Order.CreateOrder(p.Context, req)
	if err != nil {
		return r.fail(err, "createOrder"), nil
	}

	return map[string]any{
		"success": true,
		"message": "Order created successfully",
		"data":    map[string]any{"order": order},
	}, nil
}

// ---------- helpers ----------

func (r *resolver) requireUser(p graphql.ResolveParams) (*entity.User, error) {
	user, ok := utils.UserFromContext(p.Context)
	if !ok {
		return nil, apperr.ErrAuthRequired
	}
	return user, nil
}

func (r *resolver) requireAdmin(p graphql.ResolveParams) (*entity.User, error) {
	user, err := r.requireUser(p)
	if err != nil {
		return nil, err
	}
	if user.Role != entity.RoleAdmin {
		return nil, apperr.ErrAdminRequired
	}
	return user, nil
}

// fail converts a business error into the {success:false, message}
// envelope. Unexpected errors get a generic message; detail stays in the
// server log.
func (r *resolver) fail(err error, operation string) map[string]any {
	message := "Internal server error"
	if apperr.IsBusiness(err) {
		message = err.Error()
	} else {
		r.log.Error("GraphQL "+operation+" failed", zap.Error(err))
	}

	return map[string]any{
		"success": false,
		"message": message,
	}
}

func inputMap(p graphql.ResolveParams) (map[string]interface{}, bool) {
	m, ok := p.Args["input"].(map[string]interface{})
	return m, ok
}

func argString(args map[string]interface{}, key string) string {
	return fieldString(args, key)
}

func argInt(args map[string]interface{}, key string) int {
	return fieldInt(args, key)
}

func fieldString(m map[string]interface{}, key string) string {
	v, _ := m[key].(string)
	return v
}

// fieldOptString preserves the presence/absence distinction partial
// updates depend on: absent keys come back nil, present ones (even "")
// come back as a pointer.
func fieldOptString(m map[string]interface{}, key string) *string {
	raw, ok := m[key]
	if !ok {
		return nil
	}
	v, ok := raw.(string)
	if !ok {
		return nil
	}
	return &v
}

func fieldInt(m map[string]interface{}, key string) int {
	switch v := m[key].(type) {
	case int:
		return v
	case float64:
		return int(v)
	default:
		return 0
	}
}

func fieldFloat(m map[string]interface{}, key string) float64 {
	switch v := m[key].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	default:
		return 0
	}
}

func profileUpdateFromInput(input map[string]interface{}) *request.UpdateProfileRequest {
	return &request.UpdateProfileRequest{
		FirstName:    fieldOptString(input, "firstName"),
		LastName:     fieldOptString(input, "lastName"),
		Phone:        fieldOptString(input, "phone"),
		Address:      fieldOptString(input, "address"),
		ProfileImage: fieldOptString(input, "profileImage"),
	}
}
