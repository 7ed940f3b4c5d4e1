package handler

import (
	"net/http"
	"time"

	"deltapi/internal/app/ds"
	"deltapi/internal/app/dto"

	"github.com/gin-gonic/gin"
)

// GetDepenses liste des dépenses
// @Summary Liste des dépenses
// @Tags Dépenses
// @Produce json
// @Success 200 {array} dto.DepenseResponse
// @Router /depenses/ [get]
func (h *APIHandler) GetDepenses(c *gin.Context) {
	depenses, err := h.Repository.GetAllDepenses()
	if err != nil {
		h.errorResponse(c, http.StatusInternalServerError, err.Error())
		return
	}
	result := make([]dto.DepenseResponse, 0, len(depenses))
	for _, d := range depenses {
		result = append(result, toDepenseResponse(d))
	}
	c.JSON(http.StatusOK, result)
}

// CreateDepense création d'une dépense
// @Summary Création d'une dépense
// @Tags Dépenses
// @Accept json
// @Produce json
// @Param request body dto.CreateDepenseRequest true "Dépense"
// @Success 201 {object} dto.DepenseResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /depenses/ [post]
func (h *APIHandler) CreateDepense(c *gin.Context) {
	var request dto.CreateDepenseRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		h.errorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	date, _ := time.Parse("2006-01-02", request.Date)
	depense := ds.Depense{
		Libele:  request.Libele,
		Date:    date,
		Montant: request.Montant,
	}
	if err := h.Repository.CreateDepense(&depense); err != nil {
		h.errorResponse(c, http.StatusInternalServerError, err.Error())
		return
	}
	c.JSON(http.StatusCreated, toDepenseResponse(depense))
}

// UpdateDepense modification d'une dépense
// @Summary Modification d'une dépense
// @Tags Dépenses
// @Accept json
// @Produce json
// @Param id path int true "ID de la dépense"
// @Param request body dto.CreateDepenseRequest true "Dépense"
// @Success 200 {object} dto.DepenseResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /depenses/{id} [put]
func (h *APIHandler) UpdateDepense(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.errorResponse(c, http.StatusBadRequest, errInvalidID.Error())
		return
	}
	var request dto.CreateDepenseRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		h.errorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	existing, err := h.Repository.GetDepenseByID(id)
	if err != nil {
		h.errorResponse(c, http.StatusNotFound, "dépense introuvable")
		return
	}

	date, _ := time.Parse("2006-01-02", request.Date)
	existing.Libele = request.Libele
	existing.Date = date
	existing.Montant = request.Montant
	if err := h.Repository.UpdateDepense(existing); err != nil {
		h.errorResponse(c, http.StatusInternalServerError, err.Error())
		return
	}
	c.JSON(http.StatusOK, toDepenseResponse(*existing))
}

// DeleteDepense suppression d'une dépense
// @Summary Suppression d'une dépense
// @Tags Dépenses
// @Produce json
// @Param id path int true "ID de la dépense"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /depenses/{id} [delete]
func (h *APIHandler) DeleteDepense(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.errorResponse(c, http.StatusBadRequest, errInvalidID.Error())
		return
	}
	if err := h.Repository.DeleteDepense(id); err != nil {
		h.errorResponse(c, http.StatusInternalServerError, err.Error())
		return
	}
	h.successResponse(c, http.StatusOK, "dépense supprimée", nil)
}
