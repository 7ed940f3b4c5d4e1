package handler

import (
	"testing"

	"deltapi/internal/app/paiement"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderRecuHTML(t *testing.T) {
	recu := paiement.RecuView{
		NumeroRecu:       "#42",
		NomEtudiant:      "Yassine El Amrani",
		Telephone:        "0612345678",
		DateAffichee:     "15/09/2024",
		Mois:             "Septembre",
		Statut:           "Partiel",
		NomGroupe:        "Bac Math G1",
		Montant:          600,
		MontantTotal:     1000,
		Restant:          400,
		AfficherTotal:    true,
		FraisInscription: 150,
		AfficherFrais:    true,
		Professeurs: []paiement.ProfesseurRecu{
			{NomComplet: "Karim Alaoui", Specialite: "Mathématiques"},
		},
		Matieres: []string{"Mathématiques", "Physique"},
	}

	html, err := renderRecuHTML(recu)
	require.NoError(t, err)

	s := string(html)
	assert.Contains(t, s, paiement.RecuTitre)
	assert.Contains(t, s, "#42")
	assert.Contains(t, s, "Yassine El Amrani")
	assert.Contains(t, s, "Septembre")
	assert.Contains(t, s, "Partiel")
	assert.Contains(t, s, "600.00 MAD")
	assert.Contains(t, s, "1000.00 MAD")
	assert.Contains(t, s, "400.00 MAD")
	assert.Contains(t, s, "Karim Alaoui (Mathématiques)")
	assert.Contains(t, s, "Mathématiques, Physique")
	assert.Contains(t, s, paiement.RecuMerci)
}

func TestRenderRecuHTMLPayeSansTotal(t *testing.T) {
	recu := paiement.RecuView{
		NumeroRecu:   "#7",
		NomEtudiant:  "Sara Bennis",
		DateAffichee: "01/10/2024",
		Statut:       "Payé",
		NomGroupe:    "Bac PC G2",
		Montant:      800,
	}

	html, err := renderRecuHTML(recu)
	require.NoError(t, err)

	s := string(html)
	assert.NotContains(t, s, "Montant total")
	assert.NotContains(t, s, "Restant")
	assert.NotContains(t, s, "Frais d'inscription")
}

func TestStatutCommissionAffiche(t *testing.T) {
	assert.Equal(t, "Payée", statutCommissionAffiche("PAID"))
	assert.Equal(t, "Non payée", statutCommissionAffiche("UNPAID"))
}
