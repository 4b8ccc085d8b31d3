package wire

import (
	"github.com/go-chi/chi/v5"

	"seedco-api/internal/adaptor"
)

// wireGraphQL mounts the GraphQL endpoint. No role gate here: resolvers
// enforce their own requirements so public fields stay reachable.
func wireGraphQL(r chi.Router, gqlHandler *adaptor.GraphQLHandler) {
	r.Post("/graphql", gqlHandler.Serve)
}
