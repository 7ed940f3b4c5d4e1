package repository

import (
	"time"

	"deltapi/internal/app/ds"
	"deltapi/internal/app/dto"
)

// Agrégats du tableau de bord

func (r *Repository) GetStudentMetrics(now time.Time) (dto.StudentMetrics, error) {
	var m dto.StudentMetrics

	if err := r.db.Model(&ds.Etudiant{}).Count(&m.TotalStudents).Error; err != nil {
		return m, err
	}
	if err := r.db.Model(&ds.Etudiant{}).Where("sexe = ?", "M").Count(&m.TotalMaleStudents).Error; err != nil {
		return m, err
	}
	if err := r.db.Model(&ds.Etudiant{}).Where("sexe = ?", "F").Count(&m.TotalFemaleStudents).Error; err != nil {
		return m, err
	}

	debutMois := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	err := r.db.Model(&ds.Etudiant{}).Where("created_at >= ?", debutMois).Count(&m.NewStudentsThisMonth).Error
	return m, err
}

func (r *Repository) GetTeacherMetrics() (dto.TeacherMetrics, error) {
	var m dto.TeacherMetrics

	if err := r.db.Model(&ds.Professeur{}).Count(&m.TotalTeachers).Error; err != nil {
		return m, err
	}
	err := r.db.Model(&ds.Professeur{}).
		Select("specialite, count(*) as count").
		Where("specialite <> ''").
		Group("specialite").
		Order("count DESC").
		Scan(&m.TeachersBySpecialite).Error
	return m, err
}

func (r *Repository) GetPaymentMetrics() (dto.PaymentMetrics, error) {
	var m dto.PaymentMetrics

	if err := r.db.Model(&ds.Paiement{}).Count(&m.TotalPayments).Error; err != nil {
		return m, err
	}
	if err := r.db.Model(&ds.Paiement{}).
		Select("coalesce(sum(montant), 0)").
		Scan(&m.TotalAmount).Error; err != nil {
		return m, err
	}
	err := r.db.Model(&ds.Paiement{}).
		Select("statut_paiement as statut, count(*) as count").
		Group("statut_paiement").
		Scan(&m.PaymentStatus).Error
	return m, err
}

func (r *Repository) GetCommissionMetrics() (dto.CommissionMetrics, error) {
	var m dto.CommissionMetrics

	if err := r.db.Model(&ds.Commission{}).Count(&m.TotalCommissions).Error; err != nil {
		return m, err
	}
	err := r.db.Model(&ds.Commission{}).
		Select("coalesce(sum(montant), 0)").
		Scan(&m.TotalCommissionAmount).Error
	return m, err
}

func (r *Repository) GetGroupMetrics() (dto.GroupMetrics, error) {
	var m dto.GroupMetrics
	err := r.db.Model(&ds.Groupe{}).Count(&m.TotalGroups).Error
	return m, err
}

type montantParMois struct {
	Mois    string
	Montant float64
}

// GetMonthlyFinance agrège paiements, dépenses et commissions par mois
// calendaire sur les `months` derniers mois
func (r *Repository) GetMonthlyFinance(now time.Time, months int) (map[string]dto.MonthlyFinance, error) {
	depuis := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).AddDate(0, -(months - 1), 0)
	result := make(map[string]dto.MonthlyFinance)

	get := func(mois string) dto.MonthlyFinance {
		if row, ok := result[mois]; ok {
			return row
		}
		return dto.MonthlyFinance{Month: mois}
	}

	var paiements []montantParMois
	err := r.db.Model(&ds.Paiement{}).
		Select("to_char(date_paiement, 'YYYY-MM') as mois, sum(montant + frais_inscription) as montant").
		Where("date_paiement >= ?", depuis).
		Group("mois").
		Scan(&paiements).Error
	if err != nil {
		return nil, err
	}
	for _, p := range paiements {
		row := get(p.Mois)
		row.TotalPaiements = p.Montant
		result[p.Mois] = row
	}

	var depenses []montantParMois
	err = r.db.Model(&ds.Depense{}).
		Select("to_char(date, 'YYYY-MM') as mois, sum(montant) as montant").
		Where("date >= ?", depuis).
		Group("mois").
		Scan(&depenses).Error
	if err != nil {
		return nil, err
	}
	for _, d := range depenses {
		row := get(d.Mois)
		row.TotalDepenses = d.Montant
		result[d.Mois] = row
	}

	var commissions []montantParMois
	err = r.db.Model(&ds.Commission{}).
		Select("to_char(date_commission, 'YYYY-MM') as mois, sum(montant) as montant").
		Where("date_commission >= ?", depuis).
		Group("mois").
		Scan(&commissions).Error
	if err != nil {
		return nil, err
	}
	for _, c := range commissions {
		row := get(c.Mois)
		row.TotalCommissions = c.Montant
		result[c.Mois] = row
	}

	return result, nil
}
