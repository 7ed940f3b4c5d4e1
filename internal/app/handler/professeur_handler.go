package handler

import (
	"net/http"
	"time"

	"deltapi/internal/app/ds"
	"deltapi/internal/app/dto"

	"github.com/gin-gonic/gin"
)

func professeurFromRequest(request dto.CreateProfesseurRequest) ds.Professeur {
	professeur := ds.Professeur{
		Nom:            request.Nom,
		Prenom:         request.Prenom,
		Telephone:      request.Telephone,
		Adresse:        request.Adresse,
		Sexe:           request.Sexe,
		Nationalite:    request.Nationalite,
		Specialite:     request.Specialite,
		CommissionFixe: request.CommissionFixe,
	}
	if request.DateNaissance != "" {
		professeur.DateNaissance, _ = time.Parse("2006-01-02", request.DateNaissance)
	}
	return professeur
}

// GetProfesseurs liste des professeurs
// @Summary Liste des professeurs
// @Tags Professeurs
// @Produce json
// @Success 200 {array} dto.ProfesseurResponse
// @Router /professeur_list/ [get]
func (h *APIHandler) GetProfesseurs(c *gin.Context) {
	professeurs, err := h.Repository.GetAllProfesseurs()
	if err != nil {
		h.errorResponse(c, http.StatusInternalServerError, err.Error())
		return
	}
	result := make([]dto.ProfesseurResponse, 0, len(professeurs))
	for _, p := range professeurs {
		result = append(result, toProfesseurResponse(p))
	}
	c.JSON(http.StatusOK, result)
}

// GetProfesseurDetails fiche détaillée d'un professeur
// @Summary Détails d'un professeur
// @Description Fiche avec groupes animés et historique des commissions
// @Tags Professeurs
// @Produce json
// @Param id path int true "ID du professeur"
// @Success 200 {object} dto.ProfesseurDetailsResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /professeurs/{id}/details/ [get]
func (h *APIHandler) GetProfesseurDetails(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.errorResponse(c, http.StatusBadRequest, errInvalidID.Error())
		return
	}

	professeur, commissions, err := h.Repository.GetProfesseurDetails(id)
	if err != nil {
		h.errorResponse(c, http.StatusNotFound, "professeur introuvable")
		return
	}

	details := dto.ProfesseurDetailsResponse{
		ProfesseurResponse: toProfesseurResponse(*professeur),
		Groupes:            []dto.ProfesseurGroupeResponse{},
		Commissions:        []dto.CommissionResponse{},
		TotalGroupes:       len(professeur.Groupes),
	}
	for _, g := range professeur.Groupes {
		total, err := h.Repository.CountEtudiantsInGroupe(g.ID)
		if err != nil {
			h.errorResponse(c, http.StatusInternalServerError, err.Error())
			return
		}
		details.Groupes = append(details.Groupes, dto.ProfesseurGroupeResponse{
			ID:             g.ID,
			NomGroupe:      g.NomGroupe,
			CommissionFixe: professeur.CommissionFixe,
			MaxEtudiants:   g.MaxEtudiants,
			TotalEtudiants: total,
		})
	}
	for _, commission := range commissions {
		details.Commissions = append(details.Commissions, toCommissionResponse(commission))
		details.TotalCommissions += commission.Montant
	}

	c.JSON(http.StatusOK, details)
}

// CreateProfesseur création d'un professeur
// @Summary Création d'un professeur
// @Tags Professeurs
// @Accept json
// @Produce json
// @Param request body dto.CreateProfesseurRequest true "Professeur"
// @Success 201 {object} dto.ProfesseurResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /professeurs/create/ [post]
func (h *APIHandler) CreateProfesseur(c *gin.Context) {
	var request dto.CreateProfesseurRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		h.errorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	professeur := professeurFromRequest(request)
	if err := h.Repository.CreateProfesseur(&professeur); err != nil {
		h.errorResponse(c, http.StatusInternalServerError, err.Error())
		return
	}
	c.JSON(http.StatusCreated, toProfesseurResponse(professeur))
}

// UpdateProfesseur modification d'un professeur
// @Summary Modification d'un professeur
// @Tags Professeurs
// @Accept json
// @Produce json
// @Param id path int true "ID du professeur"
// @Param request body dto.CreateProfesseurRequest true "Professeur"
// @Success 200 {object} dto.ProfesseurResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /professeurs/update/{id} [put]
func (h *APIHandler) UpdateProfesseur(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.errorResponse(c, http.StatusBadRequest, errInvalidID.Error())
		return
	}
	var request dto.CreateProfesseurRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		h.errorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	existing, err := h.Repository.GetProfesseurByID(id)
	if err != nil {
		h.errorResponse(c, http.StatusNotFound, "professeur introuvable")
		return
	}

	professeur := professeurFromRequest(request)
	professeur.ID = existing.ID
	professeur.CreatedAt = existing.CreatedAt
	if err := h.Repository.UpdateProfesseur(&professeur); err != nil {
		h.errorResponse(c, http.StatusInternalServerError, err.Error())
		return
	}
	c.JSON(http.StatusOK, toProfesseurResponse(professeur))
}

// DeleteProfesseur suppression d'un professeur
// @Summary Suppression d'un professeur
// @Tags Professeurs
// @Produce json
// @Param id path int true "ID du professeur"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /professeurs/delete/{id} [delete]
func (h *APIHandler) DeleteProfesseur(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.errorResponse(c, http.StatusBadRequest, errInvalidID.Error())
		return
	}
	if err := h.Repository.DeleteProfesseur(id); err != nil {
		h.errorResponse(c, http.StatusInternalServerError, err.Error())
		return
	}
	h.successResponse(c, http.StatusOK, "professeur supprimé", nil)
}
