package adaptor

import (
	"encoding/json"
	"net/http"

	"github.com/graphql-go/graphql"
	"go.uber.org/zap"

	"seedco-api/pkg/utils"
)

type graphqlRequest struct {
	Query         string         `json:"query"`
	OperationName string         `json:"operationName"`
	Variables     map[string]any `json:"variables"`
}

// GraphQLHandler executes queries against the schema. Business failures
// come back inside the envelope types; graphql-level errors are reserved
// for malformed queries and unexpected failures.
type GraphQLHandler struct {
	schema graphql.Schema
	log    *zap.Logger
}

func NewGraphQLHandler(schema graphql.Schema, log *zap.Logger) *GraphQLHandler {
	return &GraphQLHandler{
		schema: schema,
		log:    log,
	}
}

// Serve handles POST /graphql
func (h *GraphQLHandler) Serve(w http.ResponseWriter, r *http.Request) {
	var req graphqlRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}
	if req.Query == "" {
		utils.ResponseBadRequest(w, "Query is required", nil)
		return
	}

	result := graphql.Do(graphql.Params{
		Schema:         h.schema,
		RequestString:  req.Query,
		OperationName:  req.OperationName,
		VariableValues: req.Variables,
		Context:        r.Context(),
	})

	if len(result.Errors) > 0 {
		h.log.Warn("GraphQL errors",
			zap.String("operation", req.OperationName),
			zap.Any("errors", result.Errors))
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(result)
}
