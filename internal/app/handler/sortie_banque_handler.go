package handler

import (
	"net/http"
	"time"

	"deltapi/internal/app/ds"
	"deltapi/internal/app/dto"

	"github.com/gin-gonic/gin"
)

// GetSortiesBanque liste des sorties banque
// @Summary Liste des sorties banque
// @Tags Sorties banque
// @Produce json
// @Success 200 {array} dto.SortieBanqueResponse
// @Router /sorties-banque/ [get]
func (h *APIHandler) GetSortiesBanque(c *gin.Context) {
	sorties, err := h.Repository.GetAllSortiesBanque()
	if err != nil {
		h.errorResponse(c, http.StatusInternalServerError, err.Error())
		return
	}
	result := make([]dto.SortieBanqueResponse, 0, len(sorties))
	for _, s := range sorties {
		result = append(result, toSortieBanqueResponse(s))
	}
	c.JSON(http.StatusOK, result)
}

// CreateSortieBanque création d'une sortie banque
// @Summary Création d'une sortie banque
// @Tags Sorties banque
// @Accept json
// @Produce json
// @Param request body dto.CreateSortieBanqueRequest true "Sortie banque"
// @Success 201 {object} dto.SortieBanqueResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /sorties-banque/ [post]
func (h *APIHandler) CreateSortieBanque(c *gin.Context) {
	var request dto.CreateSortieBanqueRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		h.errorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	date, _ := time.Parse("2006-01-02", request.Date)
	sortie := ds.SortieBanque{
		Date:         date,
		ModePaiement: request.ModePaiement,
		Montant:      request.Montant,
	}
	if err := h.Repository.CreateSortieBanque(&sortie); err != nil {
		h.errorResponse(c, http.StatusInternalServerError, err.Error())
		return
	}
	c.JSON(http.StatusCreated, toSortieBanqueResponse(sortie))
}

// UpdateSortieBanque modification d'une sortie banque
// @Summary Modification d'une sortie banque
// @Tags Sorties banque
// @Accept json
// @Produce json
// @Param id path int true "ID de la sortie"
// @Param request body dto.CreateSortieBanqueRequest true "Sortie banque"
// @Success 200 {object} dto.SortieBanqueResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /sorties-banque/{id} [put]
func (h *APIHandler) UpdateSortieBanque(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.errorResponse(c, http.StatusBadRequest, errInvalidID.Error())
		return
	}
	var request dto.CreateSortieBanqueRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		h.errorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	existing, err := h.Repository.GetSortieBanqueByID(id)
	if err != nil {
		h.errorResponse(c, http.StatusNotFound, "sortie banque introuvable")
		return
	}

	date, _ := time.Parse("2006-01-02", request.Date)
	existing.Date = date
	existing.ModePaiement = request.ModePaiement
	existing.Montant = request.Montant
	if err := h.Repository.UpdateSortieBanque(existing); err != nil {
		h.errorResponse(c, http.StatusInternalServerError, err.Error())
		return
	}
	c.JSON(http.StatusOK, toSortieBanqueResponse(*existing))
}

// DeleteSortieBanque suppression d'une sortie banque
// @Summary Suppression d'une sortie banque
// @Tags Sorties banque
// @Produce json
// @Param id path int true "ID de la sortie"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /sorties-banque/{id} [delete]
func (h *APIHandler) DeleteSortieBanque(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.errorResponse(c, http.StatusBadRequest, errInvalidID.Error())
		return
	}
	if err := h.Repository.DeleteSortieBanque(id); err != nil {
		h.errorResponse(c, http.StatusInternalServerError, err.Error())
		return
	}
	h.successResponse(c, http.StatusOK, "sortie banque supprimée", nil)
}
