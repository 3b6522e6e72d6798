package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/quote-vote-service/internal/adapters/http/dto"
)

// pathID parses a positive integer path parameter. On failure it writes a 400
// and returns false.
func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		dto.AbortWithCode(c, dto.ErrorCodeBadRequest, "invalid "+name+": must be a positive integer")
		return 0, false
	}

	return id, true
}
