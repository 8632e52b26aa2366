package handler

import (
	"net/http"

	"github.com/Lucky-tech10/auto-mart-api/pkg/apperr"
	"github.com/Lucky-tech10/auto-mart-api/pkg/response"

	"github.com/gin-gonic/gin"
)

// writeError maps a service error onto the response envelope. Internal
// failures get a generic message so collaborator errors never leak.
func writeError(c *gin.Context, err error) {
	status := apperr.StatusOf(err)
	msg := err.Error()
	if status == http.StatusInternalServerError {
		msg = "Something went wrong, please try again later"
	}
	c.JSON(status, response.Error(status, msg))
}
