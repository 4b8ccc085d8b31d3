package adaptor

import (
	"github.com/graphql-go/graphql"
	"go.uber.org/zap"

	"seedco-api/internal/usecase"
)

type Handler struct {
	Auth    *AuthHandler
	User    *UserHandler
	GraphQL *GraphQLHandler
}

func NewHandler(service *usecase.Service, schema graphql.Schema, log *zap.Logger) *Handler {
	return &Handler{
		Auth:    NewAuthHandler(service.Auth, service.User, log),
		User:    NewUserHandler(service.User, log),
		GraphQL: NewGraphQLHandler(schema, log),
	}
}
