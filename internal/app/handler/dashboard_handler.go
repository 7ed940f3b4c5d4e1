package handler

import (
	"net/http"
	"strconv"
	"time"

	"deltapi/internal/app/dto"
	"deltapi/internal/app/paiement"

	"github.com/gin-gonic/gin"
)

// GetDashboardMetrics indicateurs globaux du tableau de bord
// @Summary Indicateurs du tableau de bord
// @Description Compteurs étudiants, professeurs, paiements, commissions et groupes
// @Tags Tableau de bord
// @Produce json
// @Success 200 {object} dto.DashboardMetricsResponse
// @Router /dashboard/metrics/ [get]
func (h *APIHandler) GetDashboardMetrics(c *gin.Context) {
	now := time.Now()

	students, err := h.Repository.GetStudentMetrics(now)
	if err != nil {
		h.errorResponse(c, http.StatusInternalServerError, err.Error())
		return
	}
	teachers, err := h.Repository.GetTeacherMetrics()
	if err != nil {
		h.errorResponse(c, http.StatusInternalServerError, err.Error())
		return
	}
	payments, err := h.Repository.GetPaymentMetrics()
	if err != nil {
		h.errorResponse(c, http.StatusInternalServerError, err.Error())
		return
	}
	commissions, err := h.Repository.GetCommissionMetrics()
	if err != nil {
		h.errorResponse(c, http.StatusInternalServerError, err.Error())
		return
	}
	groups, err := h.Repository.GetGroupMetrics()
	if err != nil {
		h.errorResponse(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.JSON(http.StatusOK, dto.DashboardMetricsResponse{
		StudentMetrics:    students,
		TeacherMetrics:    teachers,
		PaymentMetrics:    payments,
		CommissionMetrics: commissions,
		GroupMetrics:      groups,
		LastUpdated:       now,
	})
}

// GetFinancialMetrics série mensuelle recettes / dépenses / commissions
// @Summary Série financière mensuelle
// @Description Agrégats mensuels pour le graphique en barres, mois manquants à zéro
// @Tags Tableau de bord
// @Produce json
// @Param months query int false "Nombre de mois (défaut 6)"
// @Success 200 {object} dto.FinancialMetricsResponse
// @Router /dashboard/financial-metrics/ [get]
func (h *APIHandler) GetFinancialMetrics(c *gin.Context) {
	now := time.Now()

	months := 6
	if v, err := strconv.Atoi(c.Query("months")); err == nil && v > 0 && v <= 24 {
		months = v
	}

	parMois, err := h.Repository.GetMonthlyFinance(now, months)
	if err != nil {
		h.errorResponse(c, http.StatusInternalServerError, err.Error())
		return
	}

	// série complète : chaque mois de la fenêtre est présent, à zéro si vide
	data := make([]dto.MonthlyFinance, 0, months)
	debut := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).AddDate(0, -(months - 1), 0)
	for i := 0; i < months; i++ {
		m := debut.AddDate(0, i, 0)
		key := m.Format("2006-01")
		row, ok := parMois[key]
		if !ok {
			row = dto.MonthlyFinance{Month: key}
		}
		row.MonthName = paiement.NomMois(m.Month())
		data = append(data, row)
	}

	c.JSON(http.StatusOK, dto.FinancialMetricsResponse{Data: data})
}
