package api

import (
	"github.com/gofiber/fiber/v2"
	gql "github.com/graphql-go/graphql"

	appschema "github.com/itsmortoncornelius/guerilla-prose-backend/internal/graphql"
)

type GraphQLHandler struct {
	schema gql.Schema
}

func NewGraphQLHandler(appSchema *appschema.AppSchema) *GraphQLHandler {
	return &GraphQLHandler{schema: appSchema.Schema}
}

type graphQLRequest struct {
	Query         string                 `json:"query"`
	OperationName string                 `json:"operationName"`
	Variables     map[string]interface{} `json:"variables"`
}

// Execute handles POST /graphql. Resolver failures come back inside the
// standard errors array of the result, never as a transport error.
func (h *GraphQLHandler) Execute(c *fiber.Ctx) error {
	var req graphQLRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"errors": []fiber.Map{{"message": "cannot parse request body"}},
		})
	}

	result := gql.Do(gql.Params{
		Schema:         h.schema,
		RequestString:  req.Query,
		VariableValues: req.Variables,
		OperationName:  req.OperationName,
		Context:        c.Context(),
	})

	return c.Status(fiber.StatusOK).JSON(result)
}
