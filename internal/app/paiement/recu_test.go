package paiement

import (
	"testing"
	"time"

	"deltapi/internal/app/ds"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMonthName(t *testing.T) {
	tests := []struct {
		mois string
		want string
	}{
		{"2024-01", "Janvier"},
		{"2024-08", "Août"},
		{"2024-12", "Décembre"},
		{"", ""},
		{"2024", ""},
		{"2024-13", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, MonthName(tt.mois), "mois %q", tt.mois)
	}
}

func TestStatutAffiche(t *testing.T) {
	assert.Equal(t, "Partiel", StatutAffiche(ds.StatutPaiementPartiel))
	assert.Equal(t, "Payé", StatutAffiche(ds.StatutPaiementPaye))
	// tout statut inconnu s'affiche payé
	assert.Equal(t, "Payé", StatutAffiche("AUTRE"))
}

func paiementComplet() ds.Paiement {
	return ds.Paiement{
		ID:               42,
		Montant:          600,
		MontantTotal:     1000,
		Remaining:        400,
		FraisInscription: 150,
		StatutPaiement:   ds.StatutPaiementPartiel,
		MoisPaiement:     "2024-09",
		DatePaiement:     time.Date(2024, 9, 15, 10, 30, 0, 0, time.UTC),
		Etudiant: ds.Etudiant{
			Nom:       "El Amrani",
			Prenom:    "Yassine",
			Telephone: "0612345678",
			Adresse:   "12 rue des Écoles, Casablanca",
		},
		Groupe: ds.Groupe{
			NomGroupe: "Bac Math G1",
			Professeurs: []ds.Professeur{
				{Nom: "Alaoui", Prenom: "Karim", Specialite: "Mathématiques"},
				{Nom: "Bennis", Prenom: "Sara", Specialite: "Physique"},
			},
			Matieres: []ds.Matiere{
				{NomMatiere: "Mathématiques"},
				{NomMatiere: "Physique"},
			},
		},
	}
}

func TestNouveauRecuPartiel(t *testing.T) {
	recu := NouveauRecu(paiementComplet())

	assert.Equal(t, "#42", recu.NumeroRecu)
	assert.Equal(t, "Yassine El Amrani", recu.NomEtudiant)
	assert.Equal(t, "0612345678", recu.Telephone)
	assert.Equal(t, "15/09/2024", recu.DateAffichee)
	assert.Equal(t, "Septembre", recu.Mois)
	assert.Equal(t, "Partiel", recu.Statut)
	assert.Equal(t, "Bac Math G1", recu.NomGroupe)

	// paiement partiel : total et restant visibles
	assert.True(t, recu.AfficherTotal)
	assert.Equal(t, 1000.0, recu.MontantTotal)
	assert.Equal(t, 400.0, recu.Restant)

	assert.True(t, recu.AfficherFrais)
	assert.Equal(t, 150.0, recu.FraisInscription)

	require.Len(t, recu.Professeurs, 2)
	assert.Equal(t, "Karim Alaoui", recu.Professeurs[0].NomComplet)
	assert.Equal(t, "Mathématiques", recu.Professeurs[0].Specialite)
	assert.Equal(t, []string{"Mathématiques", "Physique"}, recu.Matieres)
}

func TestNouveauRecuPaye(t *testing.T) {
	p := paiementComplet()
	p.Montant = 1000
	p.Remaining = 0
	p.StatutPaiement = ds.StatutPaiementPaye
	p.FraisInscription = 0

	recu := NouveauRecu(p)

	assert.Equal(t, "Payé", recu.Statut)
	// paiement soldé : ni total ni restant ni frais sur le reçu
	assert.False(t, recu.AfficherTotal)
	assert.False(t, recu.AfficherFrais)
}

func TestNouveauRecuEstPur(t *testing.T) {
	p := paiementComplet()
	premier := NouveauRecu(p)
	second := NouveauRecu(p)
	assert.Equal(t, premier, second)
}

func TestNouveauxRecus(t *testing.T) {
	p1 := paiementComplet()
	p2 := paiementComplet()
	p2.ID = 43

	recus := NouveauxRecus([]ds.Paiement{p1, p2})

	require.Len(t, recus, 2)
	assert.Equal(t, "#42", recus[0].NumeroRecu)
	assert.Equal(t, "#43", recus[1].NumeroRecu)
}

func TestNouveauxRecusVide(t *testing.T) {
	assert.Empty(t, NouveauxRecus(nil))
}

func TestNomMois(t *testing.T) {
	assert.Equal(t, "Janvier", NomMois(time.January))
	assert.Equal(t, "Décembre", NomMois(time.December))
}
