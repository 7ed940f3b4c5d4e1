package handler

import (
	"net/http"
	"strconv"
	"time"

	"deltapi/internal/app/ds"
	"deltapi/internal/app/dto"
	"deltapi/internal/app/paiement"
	"deltapi/internal/app/repository"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func paiementFilterFromQuery(c *gin.Context) repository.PaiementFilter {
	filter := repository.PaiementFilter{
		Mois: c.Query("mois"),
	}
	if v, err := strconv.ParseUint(c.Query("etudiant_id"), 10, 32); err == nil {
		filter.EtudiantID = uint(v)
	}
	if v, err := strconv.ParseUint(c.Query("groupe_id"), 10, 32); err == nil {
		filter.GroupeID = uint(v)
	}
	if v, err := strconv.ParseUint(c.Query("niveau_id"), 10, 32); err == nil {
		filter.NiveauID = uint(v)
	}
	if v, err := strconv.ParseUint(c.Query("filiere_id"), 10, 32); err == nil {
		filter.FiliereID = uint(v)
	}
	if t, err := time.Parse("2006-01-02", c.Query("date_debut")); err == nil {
		filter.DateDebut = &t
	}
	if t, err := time.Parse("2006-01-02", c.Query("date_fin")); err == nil {
		fin := t.Add(24*time.Hour - time.Second)
		filter.DateFin = &fin
	}
	return filter
}

// GetPaiements liste des paiements filtrable
// @Summary Liste des paiements
// @Tags Paiements
// @Produce json
// @Param etudiant_id query int false "Filtre par étudiant"
// @Param groupe_id query int false "Filtre par groupe"
// @Param niveau_id query int false "Filtre par niveau"
// @Param filiere_id query int false "Filtre par filière"
// @Param mois query string false "Mois couvert AAAA-MM"
// @Param date_debut query string false "Date de paiement minimale AAAA-MM-JJ"
// @Param date_fin query string false "Date de paiement maximale AAAA-MM-JJ"
// @Success 200 {object} dto.PaiementListResponse
// @Router /payments/ [get]
func (h *APIHandler) GetPaiements(c *gin.Context) {
	paiements, err := h.Repository.GetAllPaiements(paiementFilterFromQuery(c))
	if err != nil {
		h.errorResponse(c, http.StatusInternalServerError, err.Error())
		return
	}

	result := dto.PaiementListResponse{Results: []dto.PaiementResponse{}}
	for _, p := range paiements {
		result.Results = append(result.Results, toPaiementResponse(p))
		result.TotalAmount += p.Montant + p.FraisInscription
	}
	result.Total = len(result.Results)
	c.JSON(http.StatusOK, result)
}

// groupesInfo projette les groupes persistés vers le contexte de validation
func groupesInfo(groupes []ds.Groupe) []paiement.GroupeInfo {
	out := make([]paiement.GroupeInfo, 0, len(groupes))
	for _, g := range groupes {
		info := paiement.GroupeInfo{
			ID:               g.ID,
			NomGroupe:        g.NomGroupe,
			PrixSubscription: g.PrixSubscription,
		}
		for _, p := range g.Professeurs {
			info.Professeurs = append(info.Professeurs, paiement.Professeur{
				ID:         p.ID,
				Nom:        p.Nom,
				Prenom:     p.Prenom,
				Specialite: p.Specialite,
			})
		}
		for _, m := range g.Matieres {
			info.Matieres = append(info.Matieres, m.NomMatiere)
		}
		out = append(out, info)
	}
	return out
}

// CreatePaiements enregistrement d'un lot de paiements
// @Summary Création d'un lot de paiements
// @Description Valide chaque ligne puis crée paiements et commissions en transaction
// @Tags Paiements
// @Accept json
// @Produce json
// @Param request body dto.CreatePaiementsRequest true "Lot de paiements"
// @Success 201 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ValidationErrorResponse
// @Router /payments/create/ [post]
func (h *APIHandler) CreatePaiements(c *gin.Context) {
	var request dto.CreatePaiementsRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		h.errorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	groupes, err := h.Repository.GetAllGroupes()
	if err != nil {
		h.errorResponse(c, http.StatusInternalServerError, err.Error())
		return
	}

	lignes := make([]paiement.Ligne, 0, len(request.Payments))
	for _, p := range request.Payments {
		lignes = append(lignes, paiement.Ligne{
			Montant:              p.Montant,
			FraisInscription:     p.FraisInscription,
			EtudiantID:           p.EtudiantID,
			GroupeID:             p.GroupeID,
			CommissionPercentage: p.CommissionPercentage,
			Professeurs:          p.Professeurs,
			MoisPaiement:         p.MoisPaiement,
		})
	}

	form := paiement.NewFormFromLignes(paiement.Contexte{
		Mode:    paiement.NouveauPaiement,
		Groupes: groupesInfo(groupes),
	}, lignes)

	errs := form.Validate()
	if !paiement.Valid(errs) {
		resp := dto.ValidationErrorResponse{Status: "fail"}
		for i, e := range errs {
			if len(e) > 0 {
				resp.Lignes = append(resp.Lignes, dto.LigneErreurs{Index: i, Erreurs: e})
			}
		}
		c.JSON(http.StatusBadRequest, resp)
		return
	}

	groupeByID := make(map[uint]ds.Groupe, len(groupes))
	for _, g := range groupes {
		groupeByID[g.ID] = g
	}

	now := time.Now()
	created := make([]dto.PaiementResponse, 0, len(lignes))

	for i, l := range form.Payload() {
		groupe := groupeByID[l.GroupeID]

		p := ds.Paiement{
			Montant:              l.Montant,
			MontantTotal:         groupe.PrixSubscription,
			FraisInscription:     l.FraisInscription,
			MoisPaiement:         l.MoisPaiement,
			DatePaiement:         now,
			EtudiantID:           l.EtudiantID,
			GroupeID:             l.GroupeID,
			CommissionPercentage: l.CommissionPercentage,
		}
		p.Remaining = p.MontantTotal - p.Montant
		if p.Remaining <= 0 {
			p.Remaining = 0
			p.StatutPaiement = ds.StatutPaiementPaye
		} else {
			p.StatutPaiement = ds.StatutPaiementPartiel
		}

		// montant de commission : pourcentage du prix d'abonnement si renseigné,
		// sinon la commission fixe propre à chaque professeur
		pctAmount := form.CommissionAmount(i)
		commissionFixeByID := make(map[uint]float64, len(groupe.Professeurs))
		for _, prof := range groupe.Professeurs {
			commissionFixeByID[prof.ID] = prof.CommissionFixe
		}

		commissions := make([]ds.Commission, 0, len(l.Professeurs))
		for _, profID := range l.Professeurs {
			montant := commissionFixeByID[profID]
			if pctAmount != nil {
				montant = *pctAmount
			}
			commissions = append(commissions, ds.Commission{
				Montant:          montant,
				DateCommission:   now,
				MoisPaiement:     l.MoisPaiement,
				StatutCommission: ds.StatutCommissionNonPayee,
				ProfesseurID:     profID,
				EtudiantID:       l.EtudiantID,
				GroupeID:         l.GroupeID,
			})
		}

		if err := h.Repository.CreatePaiementAvecCommissions(&p, commissions); err != nil {
			h.errorResponse(c, http.StatusInternalServerError, err.Error())
			return
		}

		full, err := h.Repository.GetPaiementByID(p.ID)
		if err != nil {
			h.errorResponse(c, http.StatusInternalServerError, err.Error())
			return
		}
		created = append(created, toPaiementResponse(*full))
		h.archiverRecu(c, *full)
	}

	h.successResponse(c, http.StatusCreated, "paiements enregistrés", created)
}

// archiverRecu archive le reçu HTML dans MinIO ; une panne d'archivage ne doit
// jamais faire échouer l'encaissement
func (h *APIHandler) archiverRecu(c *gin.Context, p ds.Paiement) {
	if h.MinIOClient == nil {
		return
	}
	html, err := renderRecuHTML(paiement.NouveauRecu(p))
	if err != nil {
		logrus.Error("rendu du reçu: ", err)
		return
	}
	objectName, err := h.MinIOClient.UploadRecu(c.Request.Context(), p.ID, html)
	if err != nil {
		logrus.Error("archivage du reçu: ", err)
		return
	}
	if err := h.Repository.SetRecuObjet(p.ID, objectName); err != nil {
		logrus.Error("enregistrement du nom de reçu: ", err)
	}
}

// GetRecuArchive URL présignée du reçu archivé
// @Summary Reçu archivé d'un paiement
// @Description Renvoie une URL présignée (1 h) vers le reçu archivé dans MinIO
// @Tags Paiements
// @Produce json
// @Param id path int true "ID du paiement"
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /payments/{id}/recu/url/ [get]
func (h *APIHandler) GetRecuArchive(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.errorResponse(c, http.StatusBadRequest, errInvalidID.Error())
		return
	}

	p, err := h.Repository.GetPaiementByID(id)
	if err != nil {
		h.errorResponse(c, http.StatusNotFound, "paiement introuvable")
		return
	}
	if p.RecuObjet == "" || h.MinIOClient == nil {
		h.errorResponse(c, http.StatusNotFound, "aucun reçu archivé pour ce paiement")
		return
	}

	url, err := h.MinIOClient.GetFileURL(c.Request.Context(), p.RecuObjet)
	if err != nil {
		h.errorResponse(c, http.StatusInternalServerError, err.Error())
		return
	}
	h.successResponse(c, http.StatusOK, "", gin.H{"url": url})
}

// CompleterPaiement complétion d'un paiement partiel
// @Summary Complétion d'un paiement partiel
// @Description Ajoute un versement ; seul le montant est modifiable
// @Tags Paiements
// @Accept json
// @Produce json
// @Param id path int true "ID du paiement"
// @Param request body dto.UpdatePaiementRequest true "Versement"
// @Success 200 {object} dto.PaiementResponse
// @Failure 400 {object} dto.ValidationErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /payments/{id}/update/ [put]
func (h *APIHandler) CompleterPaiement(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.errorResponse(c, http.StatusBadRequest, errInvalidID.Error())
		return
	}
	var request dto.UpdatePaiementRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		h.errorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	existing, err := h.Repository.GetPaiementByID(id)
	if err != nil {
		h.errorResponse(c, http.StatusNotFound, "paiement introuvable")
		return
	}
	if existing.StatutPaiement != ds.StatutPaiementPartiel {
		h.errorResponse(c, http.StatusBadRequest, "ce paiement est déjà soldé")
		return
	}

	remaining := existing.Remaining
	form := paiement.NewForm(paiement.Contexte{
		Mode:            paiement.CompletionPaiement,
		RemainingAmount: &remaining,
		EtudiantID:      existing.EtudiantID,
	})
	form.SetMontant(0, request.Montant)

	errs := form.Validate()
	if !paiement.Valid(errs) {
		resp := dto.ValidationErrorResponse{Status: "fail"}
		resp.Lignes = append(resp.Lignes, dto.LigneErreurs{Index: 0, Erreurs: errs[0]})
		c.JSON(http.StatusBadRequest, resp)
		return
	}

	updated, err := h.Repository.CompleterPaiement(id, request.Montant)
	if err != nil {
		h.errorResponse(c, http.StatusInternalServerError, err.Error())
		return
	}
	h.archiverRecu(c, *updated)
	c.JSON(http.StatusOK, toPaiementResponse(*updated))
}

// GetRecuPaiement reçu imprimable d'un paiement
// @Summary Reçu d'un paiement
// @Description Rend le reçu HTML prêt à imprimer
// @Tags Paiements
// @Produce html
// @Param id path int true "ID du paiement"
// @Success 200 {string} string "HTML du reçu"
// @Failure 404 {object} dto.ErrorResponse
// @Router /payments/{id}/recu/ [get]
func (h *APIHandler) GetRecuPaiement(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.errorResponse(c, http.StatusBadRequest, errInvalidID.Error())
		return
	}

	p, err := h.Repository.GetPaiementByID(id)
	if err != nil {
		h.errorResponse(c, http.StatusNotFound, "paiement introuvable")
		return
	}

	html, err := renderRecuHTML(paiement.NouveauRecu(*p))
	if err != nil {
		h.errorResponse(c, http.StatusInternalServerError, err.Error())
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", html)
}

// DeletePaiement suppression d'un paiement et de ses commissions
// @Summary Suppression d'un paiement
// @Tags Paiements
// @Produce json
// @Param id path int true "ID du paiement"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /payments/{id}/ [delete]
func (h *APIHandler) DeletePaiement(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.errorResponse(c, http.StatusBadRequest, errInvalidID.Error())
		return
	}

	existing, err := h.Repository.GetPaiementByID(id)
	if err != nil {
		h.errorResponse(c, http.StatusNotFound, "paiement introuvable")
		return
	}

	if err := h.Repository.DeletePaiement(id); err != nil {
		h.errorResponse(c, http.StatusInternalServerError, err.Error())
		return
	}

	// le reçu archivé suit le paiement ; l'échec de purge n'est que journalisé
	if h.MinIOClient != nil && existing.RecuObjet != "" {
		if err := h.MinIOClient.DeleteFile(c.Request.Context(), existing.RecuObjet); err != nil {
			logrus.Error("purge du reçu archivé: ", err)
		}
	}

	h.successResponse(c, http.StatusOK, "paiement supprimé", nil)
}
