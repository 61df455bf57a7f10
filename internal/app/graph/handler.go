package graph

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/graphql-go/graphql"

	"github.com/huskyden/backend/internal/app/models/dto"
	"github.com/huskyden/backend/internal/pkg/logger"
)

// Request is a GraphQL request body
type Request struct {
	Query         string                 `json:"query" form:"query"`
	Variables     map[string]interface{} `json:"variables"`
	OperationName string                 `json:"operationName" form:"operationName"`
}

// Handler executes GraphQL requests. POST takes a JSON body; GET takes query, variables
// (JSON encoded) and operationName as URL parameters.
func Handler(schema graphql.Schema) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req Request
		if c.Request.Method == http.MethodGet {
			req.Query = c.Query("query")
			req.OperationName = c.Query("operationName")
			if raw := c.Query("variables"); raw != "" {
				if err := json.Unmarshal([]byte(raw), &req.Variables); err != nil {
					c.JSON(http.StatusBadRequest, dto.NewErrorResponse(
						dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "variables must be a JSON object").WithField("variables")))
					return
				}
			}
		} else if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, dto.NewErrorResponse(
				dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid GraphQL request body").WithDetails(err.Error())))
			return
		}

		if req.Query == "" {
			c.JSON(http.StatusBadRequest, dto.NewErrorResponse(
				dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "query is required").WithField("query")))
			return
		}

		result := graphql.Do(graphql.Params{
			Schema:         schema,
			RequestString:  req.Query,
			VariableValues: req.Variables,
			OperationName:  req.OperationName,
			Context:        c.Request.Context(),
		})
		if result.HasErrors() {
			logger.Warn().
				Str("operation", req.OperationName).
				Interface("errors", result.Errors).
				Msg("GraphQL request returned errors")
		}

		c.JSON(http.StatusOK, result)
	}
}
