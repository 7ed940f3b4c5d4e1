package paiement

import (
	"fmt"
	"time"

	"deltapi/internal/app/ds"
)

// Textes fixes du reçu imprimé
const (
	RecuTitre      = "Reçu de Paiement"
	RecuMerci      = "Merci pour votre paiement !"
	RecuGenere     = "Ceci est un document généré par ordinateur."
	RecuEtudiantH  = "Informations de l'Étudiant"
	RecuPaiementH  = "Détails du Paiement"
)

var moisFrancais = [...]string{
	"Janvier", "Février", "Mars", "Avril", "Mai", "Juin",
	"Juillet", "Août", "Septembre", "Octobre", "Novembre", "Décembre",
}

// MonthName traduit un mois AAAA-MM en nom français ; chaîne vide si invalide
func MonthName(mois string) string {
	t, err := time.Parse("2006-01", mois)
	if err != nil {
		return ""
	}
	return moisFrancais[int(t.Month())-1]
}

// NomMois renvoie le nom français d'un mois calendaire
func NomMois(m time.Month) string {
	return moisFrancais[int(m)-1]
}

// StatutAffiche dérive le libellé du statut stocké : PARTIAL s'affiche
// « Partiel », tout autre statut s'affiche « Payé »
func StatutAffiche(statut string) string {
	if statut == ds.StatutPaiementPartiel {
		return "Partiel"
	}
	return "Payé"
}

// ProfesseurRecu est un professeur crédité tel qu'il apparaît sur le reçu
type ProfesseurRecu struct {
	NomComplet string
	Specialite string
}

// RecuView est la projection pure d'un paiement persisté vers le reçu imprimable.
// Aucun état : mêmes entrées, même reçu.
type RecuView struct {
	NumeroRecu       string
	NomEtudiant      string
	Telephone        string
	Adresse          string
	DateAffichee     string
	Mois             string
	Statut           string
	NomGroupe        string
	Montant          float64
	MontantTotal     float64
	Restant          float64
	AfficherTotal    bool // montant total et restant ne figurent que sur un paiement partiel
	FraisInscription float64
	AfficherFrais    bool
	Professeurs      []ProfesseurRecu
	Matieres         []string
}

// NouveauRecu construit le reçu depuis un paiement chargé avec son étudiant et
// son groupe (professeurs et matières inclus)
func NouveauRecu(p ds.Paiement) RecuView {
	v := RecuView{
		NumeroRecu:       fmt.Sprintf("#%d", p.ID),
		NomEtudiant:      p.Etudiant.Prenom + " " + p.Etudiant.Nom,
		Telephone:        p.Etudiant.Telephone,
		Adresse:          p.Etudiant.Adresse,
		DateAffichee:     p.DatePaiement.Format("02/01/2006"),
		Mois:             MonthName(p.MoisPaiement),
		Statut:           StatutAffiche(p.StatutPaiement),
		NomGroupe:        p.Groupe.NomGroupe,
		Montant:          p.Montant,
		MontantTotal:     p.MontantTotal,
		Restant:          p.Remaining,
		AfficherTotal:    p.StatutPaiement == ds.StatutPaiementPartiel,
		FraisInscription: p.FraisInscription,
		AfficherFrais:    p.FraisInscription > 0,
	}
	for _, prof := range p.Groupe.Professeurs {
		v.Professeurs = append(v.Professeurs, ProfesseurRecu{
			NomComplet: prof.Prenom + " " + prof.Nom,
			Specialite: prof.Specialite,
		})
	}
	for _, m := range p.Groupe.Matieres {
		v.Matieres = append(v.Matieres, m.NomMatiere)
	}
	return v
}

// NouveauxRecus projette un lot : un reçu par paiement, dans l'ordre de saisie
func NouveauxRecus(paiements []ds.Paiement) []RecuView {
	out := make([]RecuView, len(paiements))
	for i, p := range paiements {
		out[i] = NouveauRecu(p)
	}
	return out
}
