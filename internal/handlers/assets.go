package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"foodadmin/internal/assets"
)

// ServeAsset streams a stored image out of the asset store.
func ServeAsset(store *assets.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /assets/:id"
		defer handlePanic(c, route)

		stream, length, contentType, err := store.Open(c.Request.Context(), c.Param("id"))
		if err != nil {
			if errors.Is(err, assets.ErrInvalidRef) {
				respondWithError(c, http.StatusBadRequest, route, "invalid asset id")
				return
			}
			respondWithError(c, http.StatusNotFound, route, "asset not found")
			return
		}
		defer stream.Close()

		c.DataFromReader(http.StatusOK, length, contentType, stream, nil)
	}
}
