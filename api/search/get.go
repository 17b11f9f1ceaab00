package search

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/imagegrid/pexels-proxy/api/types"
	"github.com/imagegrid/pexels-proxy/internal/services/pexels"
	"github.com/imagegrid/pexels-proxy/pkg/config"
)

// ImageSearcher defines the interface for searching images
type ImageSearcher interface {
	Search(ctx context.Context, query string, perPage int) (*pexels.SearchResult, error)
}

// Get handles image search requests
// @Summary      Search for images
// @Description  Proxies an image search to the Pexels API with the server-held credential and relays the upstream JSON response
// @Tags         search
// @Produce      json
// @Param        query    query string true  "Search term"
// @Param        per_page query int    false "Results per page (default 15)"
// @Success      200 {object} map[string]interface{} "Upstream Pexels response"
// @Failure      400 {object} types.ErrorResponse "Missing query parameter"
// @Failure      503 {object} types.ErrorResponse "Pexels API unreachable"
// @Router       /api/search [get]
func Get(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Validate query. An empty value counts as missing; no upstream
		// call is made.
		query := c.Query("query")
		if query == "" {
			c.JSON(http.StatusBadRequest, types.ErrorResponse{
				Error: "The 'query' parameter is required.",
			})
			return
		}

		// per_page falls back to the default when absent or unparseable.
		// No bounds are enforced here; Pexels applies its own limits.
		perPage := defaultPerPage()
		if raw := c.Query("per_page"); raw != "" {
			if n, err := strconv.Atoi(raw); err == nil {
				perPage = n
			}
		}

		client, ok := deps.PexelsClient.(ImageSearcher)
		if !ok {
			c.JSON(http.StatusInternalServerError, types.ErrorResponse{
				Error: "Search service is not available.",
			})
			return
		}

		result, err := client.Search(c.Request.Context(), query, perPage)
		if err != nil {
			handleSearchError(c, err)
			return
		}

		// Relay the upstream body verbatim with the upstream status
		c.Data(result.StatusCode, "application/json", result.Body)
	}
}

// handleSearchError translates the two failure outcomes of the upstream
// exchange into client-facing JSON responses.
func handleSearchError(c *gin.Context, err error) {
	var upstreamErr *pexels.UpstreamError
	if errors.As(err, &upstreamErr) {
		// Forward the upstream error body when it is valid JSON;
		// otherwise substitute a JSON wrapper around the raw text.
		if json.Valid(upstreamErr.Body) {
			c.Data(upstreamErr.StatusCode, "application/json", upstreamErr.Body)
			return
		}
		c.JSON(upstreamErr.StatusCode, types.ErrorResponse{
			Error:   "Received a non-JSON error response from Pexels API.",
			Details: string(upstreamErr.Body),
		})
		return
	}

	var transportErr *pexels.TransportError
	if errors.As(err, &transportErr) {
		c.JSON(http.StatusServiceUnavailable, types.ErrorResponse{
			Error: fmt.Sprintf("Could not connect to Pexels API: %v", transportErr.Err),
		})
		return
	}

	c.JSON(http.StatusInternalServerError, types.ErrorResponse{
		Error:   "Failed to search images.",
		Details: err.Error(),
	})
}

// defaultPerPage reads the configured per_page default, falling back to
// 15 when config isn't initialized (tests) or holds an invalid value.
func defaultPerPage() int {
	if n := config.GetInt("pexels.default_per_page"); n > 0 {
		return n
	}
	return 15
}
