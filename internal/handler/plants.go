package handler

import (
	"net/http"

	"github.com/osse101/FrostPlanner_Go/internal/catalog"
	"github.com/osse101/FrostPlanner_Go/internal/domain"
)

// HandleListPlants returns the plant catalog
// @Summary List plants
// @Tags plants
// @Produce json
// @Success 200 {array} domain.Plant
// @Failure 500 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /plants [get]
func HandleListPlants(catalogSvc catalog.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		plants, err := catalogSvc.ListPlants(r.Context())
		if err != nil {
			respondServiceError(w, r, ErrMsgListPlantsFailed, err)
			return
		}
		if plants == nil {
			plants = []domain.Plant{}
		}
		respondJSON(w, http.StatusOK, plants)
	}
}
