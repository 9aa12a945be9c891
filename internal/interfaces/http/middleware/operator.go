package middleware

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"certhub/internal/shared/utils"
)

// operatorHeader carries the staff user ID injected by the authenticating
// reverse proxy in front of the admin API.
const operatorHeader = "X-Operator-ID"

// RequireOperator extracts the operator identity set by the fronting proxy
// and stores it in the request context as "operator_id". Requests without a
// valid identity are rejected.
func RequireOperator() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := c.GetHeader(operatorHeader)
		if raw == "" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "operator identity is required")
			c.Abort()
			return
		}

		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil || id == 0 {
			utils.ErrorResponse(c, http.StatusUnauthorized, "invalid operator identity")
			c.Abort()
			return
		}

		c.Set("operator_id", uint(id))
		c.Next()
	}
}

// OperatorID returns the operator identity stored by RequireOperator.
func OperatorID(c *gin.Context) uint {
	if v, exists := c.Get("operator_id"); exists {
		if id, ok := v.(uint); ok {
			return id
		}
	}
	return 0
}
