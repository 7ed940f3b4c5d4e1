package handler

import (
	"net/http"

	"deltapi/internal/app/dto"

	"github.com/gin-gonic/gin"
)

// Handlers des référentiels (niveaux, filières, matières)

// GetNiveaux liste des niveaux
// @Summary Liste des niveaux
// @Tags Référentiels
// @Produce json
// @Success 200 {array} dto.NiveauResponse
// @Router /niveau_list/ [get]
func (h *APIHandler) GetNiveaux(c *gin.Context) {
	niveaux, err := h.Repository.GetAllNiveaux()
	if err != nil {
		h.errorResponse(c, http.StatusInternalServerError, err.Error())
		return
	}
	result := make([]dto.NiveauResponse, 0, len(niveaux))
	for _, n := range niveaux {
		result = append(result, toNiveauResponse(n))
	}
	c.JSON(http.StatusOK, result)
}

// CreateNiveau création d'un niveau
// @Summary Création d'un niveau
// @Tags Référentiels
// @Accept json
// @Produce json
// @Param request body dto.CreateNiveauRequest true "Niveau"
// @Success 201 {object} dto.NiveauResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /niveaux/create/ [post]
func (h *APIHandler) CreateNiveau(c *gin.Context) {
	var request dto.CreateNiveauRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		h.errorResponse(c, http.StatusBadRequest, err.Error())
		return
	}
	niveau, err := h.Repository.CreateNiveau(request.NomNiveau)
	if err != nil {
		h.errorResponse(c, http.StatusInternalServerError, err.Error())
		return
	}
	c.JSON(http.StatusCreated, toNiveauResponse(*niveau))
}

// UpdateNiveau modification d'un niveau
// @Summary Modification d'un niveau
// @Tags Référentiels
// @Accept json
// @Produce json
// @Param id path int true "ID du niveau"
// @Param request body dto.CreateNiveauRequest true "Niveau"
// @Success 200 {object} dto.NiveauResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /niveaux/update/{id} [put]
func (h *APIHandler) UpdateNiveau(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.errorResponse(c, http.StatusBadRequest, errInvalidID.Error())
		return
	}
	var request dto.CreateNiveauRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		h.errorResponse(c, http.StatusBadRequest, err.Error())
		return
	}
	niveau, err := h.Repository.UpdateNiveau(id, request.NomNiveau)
	if err != nil {
		h.errorResponse(c, http.StatusNotFound, err.Error())
		return
	}
	c.JSON(http.StatusOK, toNiveauResponse(*niveau))
}

// DeleteNiveau suppression d'un niveau
// @Summary Suppression d'un niveau
// @Tags Référentiels
// @Produce json
// @Param id path int true "ID du niveau"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /niveaux/delete/{id} [delete]
func (h *APIHandler) DeleteNiveau(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.errorResponse(c, http.StatusBadRequest, errInvalidID.Error())
		return
	}
	if err := h.Repository.DeleteNiveau(id); err != nil {
		h.errorResponse(c, http.StatusInternalServerError, err.Error())
		return
	}
	h.successResponse(c, http.StatusOK, "niveau supprimé", nil)
}

// GetFilieres liste des filières
// @Summary Liste des filières
// @Tags Référentiels
// @Produce json
// @Success 200 {array} dto.FiliereResponse
// @Router /filiere_list/ [get]
func (h *APIHandler) GetFilieres(c *gin.Context) {
	filieres, err := h.Repository.GetAllFilieres()
	if err != nil {
		h.errorResponse(c, http.StatusInternalServerError, err.Error())
		return
	}
	result := make([]dto.FiliereResponse, 0, len(filieres))
	for _, f := range filieres {
		result = append(result, toFiliereResponse(f))
	}
	c.JSON(http.StatusOK, result)
}

// CreateFiliere création d'une filière
// @Summary Création d'une filière
// @Tags Référentiels
// @Accept json
// @Produce json
// @Param request body dto.CreateFiliereRequest true "Filière"
// @Success 201 {object} dto.FiliereResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /filieres/create/ [post]
func (h *APIHandler) CreateFiliere(c *gin.Context) {
	var request dto.CreateFiliereRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		h.errorResponse(c, http.StatusBadRequest, err.Error())
		return
	}
	filiere, err := h.Repository.CreateFiliere(request.NomFiliere)
	if err != nil {
		h.errorResponse(c, http.StatusInternalServerError, err.Error())
		return
	}
	c.JSON(http.StatusCreated, toFiliereResponse(*filiere))
}

// UpdateFiliere modification d'une filière
// @Summary Modification d'une filière
// @Tags Référentiels
// @Accept json
// @Produce json
// @Param id path int true "ID de la filière"
// @Param request body dto.CreateFiliereRequest true "Filière"
// @Success 200 {object} dto.FiliereResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /filieres/update/{id} [put]
func (h *APIHandler) UpdateFiliere(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.errorResponse(c, http.StatusBadRequest, errInvalidID.Error())
		return
	}
	var request dto.CreateFiliereRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		h.errorResponse(c, http.StatusBadRequest, err.Error())
		return
	}
	filiere, err := h.Repository.UpdateFiliere(id, request.NomFiliere)
	if err != nil {
		h.errorResponse(c, http.StatusNotFound, err.Error())
		return
	}
	c.JSON(http.StatusOK, toFiliereResponse(*filiere))
}

// DeleteFiliere suppression d'une filière
// @Summary Suppression d'une filière
// @Tags Référentiels
// @Produce json
// @Param id path int true "ID de la filière"
// @Success 200 {object} dto.SuccessResponse
// @Router /filieres/delete/{id} [delete]
func (h *APIHandler) DeleteFiliere(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.errorResponse(c, http.StatusBadRequest, errInvalidID.Error())
		return
	}
	if err := h.Repository.DeleteFiliere(id); err != nil {
		h.errorResponse(c, http.StatusInternalServerError, err.Error())
		return
	}
	h.successResponse(c, http.StatusOK, "filière supprimée", nil)
}

// GetMatieres liste des matières
// @Summary Liste des matières
// @Tags Référentiels
// @Produce json
// @Success 200 {array} dto.MatiereResponse
// @Router /matiere_list/ [get]
func (h *APIHandler) GetMatieres(c *gin.Context) {
	matieres, err := h.Repository.GetAllMatieres()
	if err != nil {
		h.errorResponse(c, http.StatusInternalServerError, err.Error())
		return
	}
	result := make([]dto.MatiereResponse, 0, len(matieres))
	for _, m := range matieres {
		result = append(result, toMatiereResponse(m))
	}
	c.JSON(http.StatusOK, result)
}

// CreateMatiere création d'une matière
// @Summary Création d'une matière
// @Tags Référentiels
// @Accept json
// @Produce json
// @Param request body dto.CreateMatiereRequest true "Matière"
// @Success 201 {object} dto.MatiereResponse
// @Router /matieres/create/ [post]
func (h *APIHandler) CreateMatiere(c *gin.Context) {
	var request dto.CreateMatiereRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		h.errorResponse(c, http.StatusBadRequest, err.Error())
		return
	}
	matiere, err := h.Repository.CreateMatiere(request.NomMatiere)
	if err != nil {
		h.errorResponse(c, http.StatusInternalServerError, err.Error())
		return
	}
	c.JSON(http.StatusCreated, toMatiereResponse(*matiere))
}

// UpdateMatiere modification d'une matière
// @Summary Modification d'une matière
// @Tags Référentiels
// @Accept json
// @Produce json
// @Param id path int true "ID de la matière"
// @Param request body dto.CreateMatiereRequest true "Matière"
// @Success 200 {object} dto.MatiereResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /matieres/update/{id} [put]
func (h *APIHandler) UpdateMatiere(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.errorResponse(c, http.StatusBadRequest, errInvalidID.Error())
		return
	}
	var request dto.CreateMatiereRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		h.errorResponse(c, http.StatusBadRequest, err.Error())
		return
	}
	matiere, err := h.Repository.UpdateMatiere(id, request.NomMatiere)
	if err != nil {
		h.errorResponse(c, http.StatusNotFound, err.Error())
		return
	}
	c.JSON(http.StatusOK, toMatiereResponse(*matiere))
}

// DeleteMatiere suppression d'une matière
// @Summary Suppression d'une matière
// @Tags Référentiels
// @Produce json
// @Param id path int true "ID de la matière"
// @Success 200 {object} dto.SuccessResponse
// @Router /matieres/delete/{id} [delete]
func (h *APIHandler) DeleteMatiere(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.errorResponse(c, http.StatusBadRequest, errInvalidID.Error())
		return
	}
	if err := h.Repository.DeleteMatiere(id); err != nil {
		h.errorResponse(c, http.StatusInternalServerError, err.Error())
		return
	}
	h.successResponse(c, http.StatusOK, "matière supprimée", nil)
}
