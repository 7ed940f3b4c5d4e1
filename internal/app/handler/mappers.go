package handler

import (
	"errors"
	"strconv"
	"time"

	"deltapi/internal/app/ds"
	"deltapi/internal/app/dto"
	"deltapi/internal/app/paiement"

	"github.com/gin-gonic/gin"
)

// Conversion des modèles ORM vers les DTO de réponse

var errInvalidID = errors.New("identifiant invalide")

func parseIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("2006-01-02")
}

func toNiveauResponse(n ds.Niveau) dto.NiveauResponse {
	return dto.NiveauResponse{ID: n.ID, NomNiveau: n.NomNiveau}
}

func toFiliereResponse(f ds.Filiere) dto.FiliereResponse {
	return dto.FiliereResponse{ID: f.ID, NomFiliere: f.NomFiliere}
}

func toMatiereResponse(m ds.Matiere) dto.MatiereResponse {
	return dto.MatiereResponse{ID: m.ID, NomMatiere: m.NomMatiere}
}

func toEtudiantResponse(e ds.Etudiant) dto.EtudiantResponse {
	return dto.EtudiantResponse{
		ID:             e.ID,
		Nom:            e.Nom,
		Prenom:         e.Prenom,
		DateNaissance:  formatDate(e.DateNaissance),
		Telephone:      e.Telephone,
		Adresse:        e.Adresse,
		Sexe:           e.Sexe,
		Nationalite:    e.Nationalite,
		ContactUrgence: e.ContactUrgence,
		CreatedAt:      e.CreatedAt,
	}
}

func toProfesseurResponse(p ds.Professeur) dto.ProfesseurResponse {
	return dto.ProfesseurResponse{
		ID:             p.ID,
		Nom:            p.Nom,
		Prenom:         p.Prenom,
		DateNaissance:  formatDate(p.DateNaissance),
		Telephone:      p.Telephone,
		Adresse:        p.Adresse,
		Sexe:           p.Sexe,
		Nationalite:    p.Nationalite,
		Specialite:     p.Specialite,
		CommissionFixe: p.CommissionFixe,
		CreatedAt:      p.CreatedAt,
	}
}

func toGroupeResponse(g ds.Groupe) dto.GroupeResponse {
	resp := dto.GroupeResponse{
		ID:               g.ID,
		NomGroupe:        g.NomGroupe,
		Niveau:           toNiveauResponse(g.Niveau),
		Filiere:          toFiliereResponse(g.Filiere),
		MaxEtudiants:     g.MaxEtudiants,
		PrixSubscription: g.PrixSubscription,
		Professeurs:      []dto.ProfesseurEnGroupe{},
		Matieres:         []dto.MatiereResponse{},
		CreatedAt:        g.CreatedAt,
	}
	for _, p := range g.Professeurs {
		resp.Professeurs = append(resp.Professeurs, dto.ProfesseurEnGroupe{
			ID:             p.ID,
			Nom:            p.Nom,
			Prenom:         p.Prenom,
			Specialite:     p.Specialite,
			CommissionFixe: p.CommissionFixe,
		})
	}
	for _, m := range g.Matieres {
		resp.Matieres = append(resp.Matieres, toMatiereResponse(m))
	}
	return resp
}

func toGroupeEnPaiement(g ds.Groupe) dto.GroupeEnPaiement {
	return dto.GroupeEnPaiement{
		ID:          g.ID,
		NomGroupe:   g.NomGroupe,
		NiveauInfo:  toNiveauResponse(g.Niveau),
		FiliereInfo: toFiliereResponse(g.Filiere),
	}
}

func toPaiementResponse(p ds.Paiement) dto.PaiementResponse {
	return dto.PaiementResponse{
		ID:                   p.ID,
		Montant:              p.Montant,
		MontantTotal:         p.MontantTotal,
		Remaining:            p.Remaining,
		FraisInscription:     p.FraisInscription,
		DatePaiement:         p.DatePaiement,
		MoisPaiement:         p.MoisPaiement,
		MonthName:            paiement.MonthName(p.MoisPaiement),
		StatutPaiement:       p.StatutPaiement,
		CommissionPercentage: p.CommissionPercentage,
		Etudiant: dto.EtudiantEnPaiement{
			ID:        p.Etudiant.ID,
			Nom:       p.Etudiant.Nom,
			Prenom:    p.Etudiant.Prenom,
			Telephone: p.Etudiant.Telephone,
			Adresse:   p.Etudiant.Adresse,
		},
		Groupe: toGroupeEnPaiement(p.Groupe),
	}
}

func toCommissionResponse(c ds.Commission) dto.CommissionResponse {
	return dto.CommissionResponse{
		ID:               c.ID,
		Montant:          c.Montant,
		DateCommission:   c.DateCommission,
		MoisPaiement:     c.MoisPaiement,
		MonthName:        paiement.MonthName(c.MoisPaiement),
		StatutCommission: c.StatutCommission,
		Professeur: dto.ProfesseurEnCommission{
			ID:         c.Professeur.ID,
			Nom:        c.Professeur.Nom,
			Prenom:     c.Professeur.Prenom,
			Specialite: c.Professeur.Specialite,
		},
		Etudiant: dto.EtudiantEnPaiement{
			ID:        c.Etudiant.ID,
			Nom:       c.Etudiant.Nom,
			Prenom:    c.Etudiant.Prenom,
			Telephone: c.Etudiant.Telephone,
			Adresse:   c.Etudiant.Adresse,
		},
		Groupe: toGroupeEnPaiement(c.Groupe),
	}
}

func toDepenseResponse(d ds.Depense) dto.DepenseResponse {
	return dto.DepenseResponse{
		ID:        d.ID,
		Date:      formatDate(d.Date),
		Libele:    d.Libele,
		Montant:   d.Montant,
		CreatedAt: d.CreatedAt,
	}
}

func toSortieBanqueResponse(s ds.SortieBanque) dto.SortieBanqueResponse {
	return dto.SortieBanqueResponse{
		ID:           s.ID,
		Date:         formatDate(s.Date),
		ModePaiement: s.ModePaiement,
		Montant:      s.Montant,
		CreatedAt:    s.CreatedAt,
	}
}
