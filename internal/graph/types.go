package graph

import (
	"time"

	"github.com/graphql-go/graphql"

	"seedco-api/internal/dto/response"
)

// gqlTypes bundles every object type the schema needs so the root builders
// can reference them without package-level init ordering games.
type gqlTypes struct {
	UserRole        *graphql.Enum
	User            *graphql.Object
	AuthResponse    *graphql.Object
	ProfileResponse *graphql.Object
	MessageResponse *graphql.Object
	OrderResponse   *graphql.Object

	CustomerRegistrationInput *graphql.InputObject
	AdminRegistrationInput    *graphql.InputObject
	LoginInput                *graphql.InputObject
	ChangePasswordInput       *graphql.InputObject
	ProfileUpdateInput        *graphql.InputObject
	OrderInput                *graphql.InputObject
}

func newTypes() *gqlTypes {
	t := &gqlTypes{}

	t.UserRole = graphql.NewEnum(graphql.EnumConfig{
		Name: "UserRole",
		Values: graphql.EnumValueConfigMap{
			"customer": &graphql.EnumValueConfig{Value: "customer"},
			"admin":    &graphql.EnumValueConfig{Value: "admin"},
		},
	})

	t.User = graphql.NewObject(graphql.ObjectConfig{
		Name: "User",
		Fields: graphql.Fields{
			"id":           &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
			"email":        &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"firstName":    &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"lastName":     &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"role": &graphql.Field{
				Type: graphql.NewNonNull(t.UserRole),
				// the enum lookup is type-sensitive, so hand it a plain string
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					u, ok := p.Source.(response.UserResponse)
					if !ok {
						return nil, nil
					}
					return string(u.Role), nil
				},
			},
			"isActive":     &graphql.Field{Type: graphql.NewNonNull(graphql.Boolean)},
			"phone":        &graphql.Field{Type: graphql.String},
			"address":      &graphql.Field{Type: graphql.String},
			"profileImage": &graphql.Field{Type: graphql.String},
			"lastLogin": &graphql.Field{
				Type: graphql.String,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					u, ok := p.Source.(response.UserResponse)
					if !ok || u.LastLogin == nil {
						return nil, nil
					}
					return u.LastLogin.Format(time.RFC3339), nil
				},
			},
			"createdAt": &graphql.Field{
				Type: graphql.NewNonNull(graphql.String),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					u, ok := p.Source.(response.UserResponse)
					if !ok {
						return nil, nil
					}
					return u.CreatedAt.Format(time.RFC3339), nil
				},
			},
			"updatedAt": &graphql.Field{
				Type: graphql.NewNonNull(graphql.String),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					u, ok := p.Source.(response.UserResponse)
					if !ok {
						return nil, nil
					}
					return u.UpdatedAt.Format(time.RFC3339), nil
				},
			},
		},
	})

	authData := graphql.NewObject(graphql.ObjectConfig{
		Name: "AuthData",
		Fields: graphql.Fields{
			"user":  &graphql.Field{Type: graphql.NewNonNull(t.User)},
			"token": &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		},
	})

	t.AuthResponse = graphql.NewObject(graphql.ObjectConfig{
		Name: "AuthResponse",
		Fields: graphql.Fields{
			"success": &graphql.Field{Type: graphql.NewNonNull(graphql.Boolean)},
			"message": &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"data":    &graphql.Field{Type: authData},
		},
	})

	profileData := graphql.NewObject(graphql.ObjectConfig{
		Name: "ProfileData",
		Fields: graphql.Fields{
			"user": &graphql.Field{Type: graphql.NewNonNull(t.User)},
		},
	})

	t.ProfileResponse = graphql.NewObject(graphql.ObjectConfig{
		Name: "ProfileResponse",
		Fields: graphql.Fields{
			"success": &graphql.Field{Type: graphql.NewNonNull(graphql.Boolean)},
			"message": &graphql.Field{Type: graphql.String},
			"data":    &graphql.Field{Type: profileData},
		},
	})

	t.MessageResponse = graphql.NewObject(graphql.ObjectConfig{
		Name: "MessageResponse",
		Fields: graphql.Fields{
			"success": &graphql.Field{Type: graphql.NewNonNull(graphql.Boolean)},
			"message": &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		},
	})

	product := graphql.NewObject(graphql.ObjectConfig{
		Name: "Product",
		Fields: graphql.Fields{
			"id":    &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
			"name":  &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"image": &graphql.Field{Type: graphql.String},
			"price": &graphql.Field{Type: graphql.NewNonNull(graphql.Float)},
		},
	})

	orderItem := graphql.NewObject(graphql.ObjectConfig{
		Name: "OrderItem",
		Fields: graphql.Fields{
			"id":       &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
			"product":  &graphql.Field{Type: graphql.NewNonNull(product)},
			"quantity": &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
			"price":    &graphql.Field{Type: graphql.NewNonNull(graphql.Float)},
		},
	})

	orderUser := graphql.NewObject(graphql.ObjectConfig{
		Name: "OrderUser",
		Fields: graphql.Fields{
			"id":        &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
			"firstName": &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"lastName":  &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"email":     &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		},
	})

	order := graphql.NewObject(graphql.ObjectConfig{
		Name: "Order",
		Fields: graphql.Fields{
			"id":          &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
			"orderNumber": &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"status":      &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"total":       &graphql.Field{Type: graphql.NewNonNull(graphql.Float)},
			"items":       &graphql.Field{Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(orderItem)))},
			"user":        &graphql.Field{Type: orderUser},
			"createdAt": &graphql.Field{
				Type: graphql.NewNonNull(graphql.String),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					o, ok := p.Source.(*response.OrderResponse)
					if !ok {
						return nil, nil
					}
					return o.CreatedAt.Format(time.RFC3339), nil
				},
			},
			"updatedAt": &graphql.Field{
				Type: graphql.NewNonNull(graphql.String),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					o, ok := p.Source.(*response.OrderResponse)
					if !ok {
						return nil, nil
					}
					return o.UpdatedAt.Format(time.RFC3339), nil
				},
			},
		},
	})

	orderData := graphql.NewObject(graphql.ObjectConfig{
		Name: "OrderData",
		Fields: graphql.Fields{
			"order": &graphql.Field{Type: graphql.NewNonNull(order)},
		},
	})

	t.OrderResponse = graphql.NewObject(graphql.ObjectConfig{
		Name: "OrderResponse",
		Fields: graphql.Fields{
			"success": &graphql.Field{Type: graphql.NewNonNull(graphql.Boolean)},
			"message": &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"data":    &graphql.Field{Type: orderData},
		},
	})

	t.CustomerRegistrationInput = graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "CustomerRegistrationInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"email":     &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
			"password":  &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
			"firstName": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
			"lastName":  &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
			"phone":     &graphql.InputObjectFieldConfig{Type: graphql.String},
			"address":   &graphql.InputObjectFieldConfig{Type: graphql.String},
		},
	})

	t.AdminRegistrationInput = graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "AdminRegistrationInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"email":     &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
			"password":  &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
			"firstName": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
			"lastName":  &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
			"adminCode": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		},
	})

	t.LoginInput = graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "LoginInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"email":    &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
			"password": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		},
	})

	t.ChangePasswordInput = graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "ChangePasswordInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"currentPassword": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
			"newPassword":     &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		},
	})

	t.ProfileUpdateInput = graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "ProfileUpdateInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"firstName":    &graphql.InputObjectFieldConfig{Type: graphql.String},
			"lastName":     &graphql.InputObjectFieldConfig{Type: graphql.String},
			"phone":        &graphql.InputObjectFieldConfig{Type: graphql.String},
			"address":      &graphql.InputObjectFieldConfig{Type: graphql.String},
			"profileImage": &graphql.InputObjectFieldConfig{Type: graphql.String},
		},
	})

	orderItemInput := graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "OrderItemInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"productId": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.ID)},
			"quantity":  &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.Int)},
			"price":     &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.Float)},
		},
	})

	customerInfoInput := graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "CustomerInfoInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"firstName": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
			"lastName":  &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
			"email":     &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
			"phone":     &graphql.InputObjectFieldConfig{Type: graphql.String},
			"address":   &graphql.InputObjectFieldConfig{Type: graphql.String},
			"city":      &graphql.InputObjectFieldConfig{Type: graphql.String},
			"state":     &graphql.InputObjectFieldConfig{Type: graphql.String},
			"zipCode":   &graphql.InputObjectFieldConfig{Type: graphql.String},
			"country":   &graphql.InputObjectFieldConfig{Type: graphql.String},
		},
	})

	paymentInfoInput := graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "PaymentInfoInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"cardLast4": &graphql.InputObjectFieldConfig{Type: graphql.String},
			"cardType":  &graphql.InputObjectFieldConfig{Type: graphql.String},
			"amount":    &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.Float)},
		},
	})

	t.OrderInput = graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "OrderInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"items":        &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(orderItemInput)))},
			"total":        &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.Float)},
			"customerInfo": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(customerInfoInput)},
			"paymentInfo":  &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(paymentInfoInput)},
			"guestId":      &graphql.InputObjectFieldConfig{Type: graphql.String},
			"userId":       &graphql.InputObjectFieldConfig{Type: graphql.ID},
		},
	})

	return t
}
