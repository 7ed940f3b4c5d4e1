package handler

import (
	"net/http"
	"time"

	"deltapi/internal/app/ds"
	"deltapi/internal/app/dto"

	"github.com/gin-gonic/gin"
)

func etudiantFromRequest(request dto.CreateEtudiantRequest) ds.Etudiant {
	etudiant := ds.Etudiant{
		Nom:            request.Nom,
		Prenom:         request.Prenom,
		Telephone:      request.Telephone,
		Adresse:        request.Adresse,
		Sexe:           request.Sexe,
		Nationalite:    request.Nationalite,
		ContactUrgence: request.ContactUrgence,
	}
	if request.DateNaissance != "" {
		// format déjà validé par le binding
		etudiant.DateNaissance, _ = time.Parse("2006-01-02", request.DateNaissance)
	}
	return etudiant
}

// GetEtudiants liste des étudiants
// @Summary Liste des étudiants
// @Tags Étudiants
// @Produce json
// @Success 200 {array} dto.EtudiantResponse
// @Router /etudiant_list/ [get]
func (h *APIHandler) GetEtudiants(c *gin.Context) {
	etudiants, err := h.Repository.GetAllEtudiants()
	if err != nil {
		h.errorResponse(c, http.StatusInternalServerError, err.Error())
		return
	}
	result := make([]dto.EtudiantResponse, 0, len(etudiants))
	for _, e := range etudiants {
		result = append(result, toEtudiantResponse(e))
	}
	c.JSON(http.StatusOK, result)
}

// GetEtudiantDetails fiche détaillée d'un étudiant
// @Summary Détails d'un étudiant
// @Description Fiche avec groupes inscrits et historique des paiements
// @Tags Étudiants
// @Produce json
// @Param id path int true "ID de l'étudiant"
// @Success 200 {object} dto.EtudiantDetailsResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /etudiants/{id}/details/ [get]
func (h *APIHandler) GetEtudiantDetails(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.errorResponse(c, http.StatusBadRequest, errInvalidID.Error())
		return
	}

	etudiant, paiements, err := h.Repository.GetEtudiantDetails(id)
	if err != nil {
		h.errorResponse(c, http.StatusNotFound, "étudiant introuvable")
		return
	}

	details := dto.EtudiantDetailsResponse{
		EtudiantResponse: toEtudiantResponse(*etudiant),
		Groupes:          []dto.GroupeResponse{},
		Paiements:        []dto.PaiementResponse{},
		TotalGroupes:     len(etudiant.Groupes),
	}
	for _, g := range etudiant.Groupes {
		details.Groupes = append(details.Groupes, toGroupeResponse(g))
	}
	for _, p := range paiements {
		details.Paiements = append(details.Paiements, toPaiementResponse(p))
		details.TotalPaiements += p.Montant + p.FraisInscription
	}

	c.JSON(http.StatusOK, details)
}

// CreateEtudiant création d'un étudiant
// @Summary Création d'un étudiant
// @Tags Étudiants
// @Accept json
// @Produce json
// @Param request body dto.CreateEtudiantRequest true "Étudiant"
// @Success 201 {object} dto.EtudiantResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /etudiants/create/ [post]
func (h *APIHandler) CreateEtudiant(c *gin.Context) {
	var request dto.CreateEtudiantRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		h.errorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	etudiant := etudiantFromRequest(request)
	if err := h.Repository.CreateEtudiant(&etudiant); err != nil {
		h.errorResponse(c, http.StatusInternalServerError, err.Error())
		return
	}
	c.JSON(http.StatusCreated, toEtudiantResponse(etudiant))
}

// UpdateEtudiant modification d'un étudiant
// @Summary Modification d'un étudiant
// @Tags Étudiants
// @Accept json
// @Produce json
// @Param id path int true "ID de l'étudiant"
// @Param request body dto.CreateEtudiantRequest true "Étudiant"
// @Success 200 {object} dto.EtudiantResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /etudiants/update/{id} [put]
func (h *APIHandler) UpdateEtudiant(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.errorResponse(c, http.StatusBadRequest, errInvalidID.Error())
		return
	}
	var request dto.CreateEtudiantRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		h.errorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	existing, err := h.Repository.GetEtudiantByID(id)
	if err != nil {
		h.errorResponse(c, http.StatusNotFound, "étudiant introuvable")
		return
	}

	etudiant := etudiantFromRequest(request)
	etudiant.ID = existing.ID
	etudiant.CreatedAt = existing.CreatedAt
	if err := h.Repository.UpdateEtudiant(&etudiant); err != nil {
		h.errorResponse(c, http.StatusInternalServerError, err.Error())
		return
	}
	c.JSON(http.StatusOK, toEtudiantResponse(etudiant))
}

// DeleteEtudiant suppression d'un étudiant
// @Summary Suppression d'un étudiant
// @Tags Étudiants
// @Produce json
// @Param id path int true "ID de l'étudiant"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /etudiants/delete/{id} [delete]
func (h *APIHandler) DeleteEtudiant(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.errorResponse(c, http.StatusBadRequest, errInvalidID.Error())
		return
	}
	if err := h.Repository.DeleteEtudiant(id); err != nil {
		h.errorResponse(c, http.StatusInternalServerError, err.Error())
		return
	}
	h.successResponse(c, http.StatusOK, "étudiant supprimé", nil)
}

// AddEtudiantToGroupe inscription d'un étudiant dans un groupe
// @Summary Inscription dans un groupe
// @Tags Étudiants
// @Accept json
// @Produce json
// @Param request body dto.AddToGroupRequest true "Inscription"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /etudiants/add-to-group/ [post]
func (h *APIHandler) AddEtudiantToGroupe(c *gin.Context) {
	var request dto.AddToGroupRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		h.errorResponse(c, http.StatusBadRequest, err.Error())
		return
	}
	if err := h.Repository.AddEtudiantToGroupe(request.EtudiantID, request.GroupeID); err != nil {
		h.errorResponse(c, http.StatusBadRequest, err.Error())
		return
	}
	h.successResponse(c, http.StatusOK, "étudiant inscrit au groupe", nil)
}
