package graph

import (
	"github.com/graphql-go/graphql"
	"go.uber.org/zap"

	"seedco-api/internal/usecase"
)

// NewSchema assembles the executable schema. The authenticated user (if
// any) is read from the request context placed there by the HTTP auth
// middleware; resolvers enforce their own role requirements on top.
func NewSchema(service *usecase.Service, log *zap.Logger) (graphql.Schema, error) {
	r := &resolver{
		service: service,
		log:     log,
	}
	t := newTypes()

	query := graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"me": &graphql.Field{
				Type:    graphql.NewNonNull(t.ProfileResponse),
				Resolve: r.me,
			},
			"getUser": &graphql.Field{
				Type: graphql.NewNonNull(t.ProfileResponse),
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: r.getUser,
			},
			"getUsers": &graphql.Field{
				Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(t.User))),
				Args: graphql.FieldConfigArgument{
					"role":   &graphql.ArgumentConfig{Type: t.UserRole},
					"limit":  &graphql.ArgumentConfig{Type: graphql.Int},
					"offset": &graphql.ArgumentConfig{Type: graphql.Int},
				},
				Resolve: r.getUsers,
			},
		},
	})

	mutation := graphql.NewObject(graphql.ObjectConfig{
		Name: "Mutation",
		Fields: graphql.Fields{
			"registerCustomer": &graphql.Field{
				Type: graphql.NewNonNull(t.AuthResponse),
				Args: graphql.FieldConfigArgument{
					"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(t.CustomerRegistrationInput)},
				},
				Resolve: r.registerCustomer,
			},
			"registerAdmin": &graphql.Field{
				Type: graphql.NewNonNull(t.AuthResponse),
				Args: graphql.FieldConfigArgument{
					"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(t.AdminRegistrationInput)},
				},
				Resolve: r.registerAdmin,
			},
			"login": &graphql.Field{
				Type: graphql.NewNonNull(t.AuthResponse),
				Args: graphql.FieldConfigArgument{
					"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(t.LoginInput)},
				},
				Resolve: r.login,
			},
			"changePassword": &graphql.Field{
				Type: graphql.NewNonNull(t.MessageResponse),
				Args: graphql.FieldConfigArgument{
					"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(t.ChangePasswordInput)},
				},
				Resolve: r.changePassword,
			},
			"updateProfile": &graphql.Field{
				Type: graphql.NewNonNull(t.ProfileResponse),
				Args: graphql.FieldConfigArgument{
					"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(t.ProfileUpdateInput)},
				},
				Resolve: r.updateProfile,
			},
			"updateUser": &graphql.Field{
				Type: graphql.NewNonNull(t.ProfileResponse),
				Args: graphql.FieldConfigArgument{
					"id":    &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
					"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(t.ProfileUpdateInput)},
				},
				Resolve: r.updateUser,
			},
			"deactivateUser": &graphql.Field{
				Type: graphql.NewNonNull(t.MessageResponse),
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: r.deactivateUser,
			},
			"activateUser": &graphql.Field{
				Type: graphql.NewNonNull(t.MessageResponse),
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: r.activateUser,
			},
			"createOrder": &graphql.Field{
				Type: graphql.NewNonNull(t.OrderResponse),
				Args: graphql.FieldConfigArgument{
					"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(t.OrderInput)},
				},
				Resolve: r.createOrder,
			},
		},
	})

	return graphql.NewSchema(graphql.SchemaConfig{
		Query:    query,
		Mutation: mutation,
	})
}
