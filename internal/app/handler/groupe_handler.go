package handler

import (
	"net/http"

	"deltapi/internal/app/ds"
	"deltapi/internal/app/dto"

	"github.com/gin-gonic/gin"
)

// GetGroupes liste des groupes avec référentiels, professeurs et matières
// @Summary Liste des groupes
// @Tags Groupes
// @Produce json
// @Success 200 {array} dto.GroupeResponse
// @Router /groupe_list/ [get]
func (h *APIHandler) GetGroupes(c *gin.Context) {
	groupes, err := h.Repository.GetAllGroupes()
	if err != nil {
		h.errorResponse(c, http.StatusInternalServerError, err.Error())
		return
	}
	result := make([]dto.GroupeResponse, 0, len(groupes))
	for _, g := range groupes {
		result = append(result, toGroupeResponse(g))
	}
	c.JSON(http.StatusOK, result)
}

// CreateGroupe création d'un groupe
// @Summary Création d'un groupe
// @Tags Groupes
// @Accept json
// @Produce json
// @Param request body dto.CreateGroupeRequest true "Groupe"
// @Success 201 {object} dto.GroupeResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /groupes/create/ [post]
func (h *APIHandler) CreateGroupe(c *gin.Context) {
	var request dto.CreateGroupeRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		h.errorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	groupe := ds.Groupe{
		NomGroupe:        request.NomGroupe,
		NiveauID:         request.NiveauID,
		FiliereID:        request.FiliereID,
		MaxEtudiants:     request.MaxEtudiants,
		PrixSubscription: request.PrixSubscription,
	}
	if err := h.Repository.CreateGroupe(&groupe, request.Professeurs, request.Matieres); err != nil {
		h.errorResponse(c, http.StatusInternalServerError, err.Error())
		return
	}

	created, err := h.Repository.GetGroupeByID(groupe.ID)
	if err != nil {
		h.errorResponse(c, http.StatusInternalServerError, err.Error())
		return
	}
	c.JSON(http.StatusCreated, toGroupeResponse(*created))
}

// UpdateGroupe modification d'un groupe
// @Summary Modification d'un groupe
// @Description Remplace aussi les affectations professeurs et matières
// @Tags Groupes
// @Accept json
// @Produce json
// @Param id path int true "ID du groupe"
// @Param request body dto.CreateGroupeRequest true "Groupe"
// @Success 200 {object} dto.GroupeResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /groupes/update/{id} [put]
func (h *APIHandler) UpdateGroupe(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.errorResponse(c, http.StatusBadRequest, errInvalidID.Error())
		return
	}
	var request dto.CreateGroupeRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		h.errorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	existing, err := h.Repository.GetGroupeByID(id)
	if err != nil {
		h.errorResponse(c, http.StatusNotFound, "groupe introuvable")
		return
	}

	groupe := ds.Groupe{
		ID:               existing.ID,
		NomGroupe:        request.NomGroupe,
		NiveauID:         request.NiveauID,
		FiliereID:        request.FiliereID,
		MaxEtudiants:     request.MaxEtudiants,
		PrixSubscription: request.PrixSubscription,
		CreatedAt:        existing.CreatedAt,
	}
	if err := h.Repository.UpdateGroupe(&groupe, request.Professeurs, request.Matieres); err != nil {
		h.errorResponse(c, http.StatusInternalServerError, err.Error())
		return
	}

	updated, err := h.Repository.GetGroupeByID(id)
	if err != nil {
		h.errorResponse(c, http.StatusInternalServerError, err.Error())
		return
	}
	c.JSON(http.StatusOK, toGroupeResponse(*updated))
}

// DeleteGroupe suppression d'un groupe
// @Summary Suppression d'un groupe
// @Tags Groupes
// @Produce json
// @Param id path int true "ID du groupe"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /groupes/delete/{id} [delete]
func (h *APIHandler) DeleteGroupe(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.errorResponse(c, http.StatusBadRequest, errInvalidID.Error())
		return
	}
	if err := h.Repository.DeleteGroupe(id); err != nil {
		h.errorResponse(c, http.StatusInternalServerError, err.Error())
		return
	}
	h.successResponse(c, http.StatusOK, "groupe supprimé", nil)
}
