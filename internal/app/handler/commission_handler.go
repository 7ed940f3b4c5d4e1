package handler

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"deltapi/internal/app/ds"
	"deltapi/internal/app/dto"
	"deltapi/internal/app/paiement"
	"deltapi/internal/app/repository"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

func commissionFilterFromQuery(c *gin.Context) repository.CommissionFilter {
	filter := repository.CommissionFilter{
		Mois: c.Query("mois"),
	}
	if v, err := strconv.ParseUint(c.Query("professeur_id"), 10, 32); err == nil {
		filter.ProfesseurID = uint(v)
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

// GetCommissions liste des commissions filtrable
// @Summary Liste des commissions
// @Tags Commissions
// @Produce json
// @Param professeur_id query int false "Filtre par professeur"
// @Param groupe_id query int false "Filtre par groupe"
// @Param niveau_id query int false "Filtre par niveau"
// @Param filiere_id query int false "Filtre par filière"
// @Param mois query string false "Mois couvert AAAA-MM"
// @Param date_debut query string false "Date de commission minimale AAAA-MM-JJ"
// @Param date_fin query string false "Date de commission maximale AAAA-MM-JJ"
// @Success 200 {object} dto.CommissionListResponse
// @Router /commissions/ [get]
func (h *APIHandler) GetCommissions(c *gin.Context) {
	commissions, err := h.Repository.GetAllCommissions(commissionFilterFromQuery(c))
	if err != nil {
		h.errorResponse(c, http.StatusInternalServerError, err.Error())
		return
	}

	result := dto.CommissionListResponse{Results: []dto.CommissionResponse{}}
	for _, commission := range commissions {
		result.Results = append(result.Results, toCommissionResponse(commission))
		result.TotalAmount += commission.Montant
	}
	result.Total = len(result.Results)
	c.JSON(http.StatusOK, result)
}

// PayerCommission règlement d'une commission
// @Summary Règlement d'une commission
// @Tags Commissions
// @Produce json
// @Param id path int true "ID de la commission"
// @Success 200 {object} dto.CommissionResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /commissions/{id}/payer/ [put]
func (h *APIHandler) PayerCommission(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.errorResponse(c, http.StatusBadRequest, errInvalidID.Error())
		return
	}
	commission, err := h.Repository.MarquerCommissionPayee(id)
	if err != nil {
		h.errorResponse(c, http.StatusNotFound, "commission introuvable")
		return
	}
	c.JSON(http.StatusOK, toCommissionResponse(*commission))
}

func statutCommissionAffiche(statut string) string {
	if statut == ds.StatutCommissionPayee {
		return "Payée"
	}
	return "Non payée"
}

// ExportCommissions export Excel des commissions
// @Summary Export Excel des commissions
// @Description Exporte les commissions filtrées au format xlsx
// @Tags Commissions
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param professeur_id query int false "Filtre par professeur"
// @Param mois query string false "Mois couvert AAAA-MM"
// @Success 200 {file} file "Classeur xlsx"
// @Router /commissions/export/ [get]
func (h *APIHandler) ExportCommissions(c *gin.Context) {
	commissions, err := h.Repository.GetAllCommissions(commissionFilterFromQuery(c))
	if err != nil {
		h.errorResponse(c, http.StatusInternalServerError, err.Error())
		return
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Commissions"
	f.SetSheetName(f.GetSheetName(0), sheet)

	headers := []string{"N°", "Professeur", "Spécialité", "Étudiant", "Groupe", "Mois", "Montant (MAD)", "Statut", "Date"}
	for i, title := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, title)
	}

	var total float64
	for row, commission := range commissions {
		values := []interface{}{
			commission.ID,
			commission.Professeur.Prenom + " " + commission.Professeur.Nom,
			commission.Professeur.Specialite,
			commission.Etudiant.Prenom + " " + commission.Etudiant.Nom,
			commission.Groupe.NomGroupe,
			paiement.MonthName(commission.MoisPaiement),
			commission.Montant,
			statutCommissionAffiche(commission.StatutCommission),
			commission.DateCommission.Format("02/01/2006"),
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			f.SetCellValue(sheet, cell, v)
		}
		total += commission.Montant
	}

	totalRow := len(commissions) + 2
	labelCell, _ := excelize.CoordinatesToCellName(6, totalRow)
	totalCell, _ := excelize.CoordinatesToCellName(7, totalRow)
	f.SetCellValue(sheet, labelCell, "Total")
	f.SetCellValue(sheet, totalCell, total)

	buf, err := f.WriteToBuffer()
	if err != nil {
		h.errorResponse(c, http.StatusInternalServerError, err.Error())
		return
	}

	filename := fmt.Sprintf("commissions_%s.xlsx", time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}
