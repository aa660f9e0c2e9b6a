package http

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/langschool/contentapi/internal/audit"
	"github.com/langschool/contentapi/internal/auth"
	"github.com/langschool/contentapi/internal/problem"
	"github.com/langschool/contentapi/internal/services"
)

// --- Error Response Helpers ---

// respondBadRequest sends a 400 problem for malformed input.
func respondBadRequest(c *gin.Context, code, detail string) {
	problem.Abort(c, problem.New(http.StatusBadRequest, code, detail))
}

// respondError maps err to its problem document.
func respondError(c *gin.Context, err error) {
	problem.Write(c, err)
}

// --- Success Response Helpers ---

// respondCreated sends 201 with a Location header pointing at the new row
// under the matched collection route.
func respondCreated(c *gin.Context, data any) {
	respondCreatedAt(c, c.FullPath(), data)
}

func respondCreatedAt(c *gin.Context, collection string, data any) {
	if id, ok := services.IDOf(data); ok {
		c.Header("Location", fmt.Sprintf("%s/%d", collection, id))
	}
	c.JSON(http.StatusCreated, data)
}

// respondList sends 200 with a JSON array, never null.
func respondList[T any](c *gin.Context, items []T) {
	if items == nil {
		items = []T{}
	}
	c.JSON(http.StatusOK, items)
}

// --- Parameter Parsing ---

// parseIDParam extracts and validates an unsigned integer ID from URL parameters.
// Returns the parsed ID or responds with a 400 problem and returns 0, false.
func parseIDParam(c *gin.Context, paramName string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(paramName), 10, 32)
	if err != nil || id == 0 {
		respondBadRequest(c, "invalid_id", "invalid "+paramName)
		return 0, false
	}
	return uint(id), true
}

// parsePagination reads limit and offset query parameters.
func parsePagination(c *gin.Context) (limit, offset int, ok bool) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "0"))
	if err != nil {
		respondBadRequest(c, "invalid_query", "limit must be a number")
		return 0, 0, false
	}
	offset, err = strconv.Atoi(c.DefaultQuery("offset", "0"))
	if err != nil {
		respondBadRequest(c, "invalid_query", "offset must be a number")
		return 0, 0, false
	}
	limit, offset = services.NormalizePage(limit, offset)
	return limit, offset, true
}

// bindJSON decodes the request body into dst. Syntax and type errors are 400s;
// field rules are checked later by the service and surface as 422.
func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		if errors.Is(err, io.EOF) {
			respondBadRequest(c, "invalid_body", "request body is empty")
			return false
		}
		respondBadRequest(c, "invalid_body", "request body is not valid JSON: "+err.Error())
		return false
	}
	return true
}

// auditRequest describes the caller for audit entries.
func auditRequest(c *gin.Context) audit.Request {
	return audit.Request{
		UserID:    auth.GetUserID(c),
		IPAddress: c.ClientIP(),
		UserAgent: c.Request.UserAgent(),
	}
}
