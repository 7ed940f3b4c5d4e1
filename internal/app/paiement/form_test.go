package paiement

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr(v float64) *float64 { return &v }

func contexteNouveau() Contexte {
	return Contexte{
		Mode:       NouveauPaiement,
		EtudiantID: 10,
		Groupes: []GroupeInfo{
			{
				ID:               1,
				NomGroupe:        "Bac Math G1",
				PrixSubscription: 1000,
				Professeurs: []Professeur{
					{ID: 1, Nom: "Alaoui", Prenom: "Karim", Specialite: "Mathématiques"},
					{ID: 2, Nom: "Bennis", Prenom: "Sara", Specialite: "Physique"},
				},
			},
			{
				ID:               2,
				NomGroupe:        "Bac PC G2",
				PrixSubscription: 800,
				Professeurs: []Professeur{
					{ID: 3, Nom: "Chafik", Prenom: "Omar", Specialite: "Chimie"},
				},
			},
		},
	}
}

func TestNewFormSeedsOneLigne(t *testing.T) {
	f := NewForm(contexteNouveau())

	require.Equal(t, 1, f.NbLignes())
	l := f.Lignes()[0]
	assert.Equal(t, uint(10), l.EtudiantID)
	assert.Equal(t, uint(1), l.GroupeID)
	assert.Empty(t, l.Professeurs)
	assert.Nil(t, l.CommissionPercentage)
}

func TestNewFormCompletionPrendLeRestant(t *testing.T) {
	f := NewForm(Contexte{
		Mode:            CompletionPaiement,
		RemainingAmount: ptr(400),
		EtudiantID:      10,
	})

	require.Equal(t, 1, f.NbLignes())
	assert.Equal(t, 400.0, f.Lignes()[0].Montant)
}

func TestValidateMontant(t *testing.T) {
	tests := []struct {
		name      string
		montant   float64
		remaining *float64
		wantErr   string
	}{
		{"montant nul", 0, nil, "Le montant doit être supérieur à 0"},
		{"montant négatif", -50, nil, "Le montant doit être supérieur à 0"},
		{"montant sous le restant", 500, ptr(1000), ""},
		{"montant égal au restant", 1000, ptr(1000), ""},
		{"montant au-dessus du restant", 1500, ptr(1000), "Le montant maximum restant est 1000 MAD"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := contexteNouveau()
			ctx.RemainingAmount = tt.remaining
			f := NewForm(ctx)
			f.SetMontant(0, tt.montant)
			f.ToggleProfesseur(0, 1)

			errs := f.Validate()
			if tt.wantErr == "" {
				assert.NotContains(t, errs[0], "montant")
			} else {
				assert.Equal(t, tt.wantErr, errs[0]["montant"])
			}
		})
	}
}

func TestValidateCommissionPercentage(t *testing.T) {
	tests := []struct {
		name    string
		pct     *float64
		wantErr bool
	}{
		{"non renseigné", nil, false},
		{"zéro", ptr(0), false},
		{"quinze", ptr(15), false},
		{"cent", ptr(100), false},
		{"négatif", ptr(-1), true},
		{"au-dessus de cent", ptr(101), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := NewForm(contexteNouveau())
			f.SetMontant(0, 500)
			f.ToggleProfesseur(0, 1)
			f.SetCommissionPercentage(0, tt.pct)

			errs := f.Validate()
			if tt.wantErr {
				assert.Equal(t, "Le pourcentage de commission doit être entre 0 et 100", errs[0]["commission"])
			} else {
				assert.NotContains(t, errs[0], "commission")
			}
		})
	}
}

func TestValidateFraisInscriptionNegatifs(t *testing.T) {
	f := NewForm(contexteNouveau())
	f.SetMontant(0, 500)
	f.ToggleProfesseur(0, 1)
	f.SetFraisInscription(0, -10)

	errs := f.Validate()
	assert.Equal(t, "Les frais d'inscription ne peuvent pas être négatifs", errs[0]["frais_inscription"])
}

func TestValidateProfesseursRequis(t *testing.T) {
	f := NewForm(contexteNouveau())
	f.SetMontant(0, 500)

	errs := f.Validate()
	assert.Equal(t, "Sélectionnez au moins un professeur", errs[0]["professeurs"])

	// la sélection d'un professeur lève l'erreur
	f.ToggleProfesseur(0, 1)
	errs = f.Validate()
	assert.NotContains(t, errs[0], "professeurs")
	assert.True(t, Valid(errs))
}

func TestValidateGroupeInvalide(t *testing.T) {
	f := NewFormFromLignes(contexteNouveau(), []Ligne{
		{Montant: 500, EtudiantID: 10, GroupeID: 99, Professeurs: []uint{1}},
	})

	errs := f.Validate()
	assert.Equal(t, "Sélectionnez un groupe valide", errs[0]["groupe"])
}

func TestValidateProfesseurHorsRoster(t *testing.T) {
	// ligne brute soumise avec un professeur étranger au groupe 2
	f := NewFormFromLignes(contexteNouveau(), []Ligne{
		{Montant: 500, EtudiantID: 10, GroupeID: 2, Professeurs: []uint{1}},
	})

	errs := f.Validate()
	assert.Equal(t, "Professeur hors du groupe sélectionné", errs[0]["professeurs"])
}

func TestValidateIdempotent(t *testing.T) {
	f := NewForm(contexteNouveau())
	f.SetMontant(0, -5)

	premier := f.Validate()
	second := f.Validate()
	assert.Equal(t, premier, second)
}

func TestValidateCompletionIgnoreLesChampsFiges(t *testing.T) {
	// en complétion seul le montant compte : ni étudiant ni groupe ni professeurs
	f := NewForm(Contexte{
		Mode:            CompletionPaiement,
		RemainingAmount: ptr(600),
	})
	f.SetMontant(0, 300)

	errs := f.Validate()
	assert.True(t, Valid(errs))
}

func TestSetGroupeResetProfesseurs(t *testing.T) {
	f := NewForm(contexteNouveau())
	f.ToggleProfesseur(0, 1)
	f.ToggleProfesseur(0, 2)
	require.Len(t, f.Lignes()[0].Professeurs, 2)

	f.SetGroupe(0, 2)
	assert.Empty(t, f.Lignes()[0].Professeurs)

	// re-sélection du même groupe : pas de remise à zéro
	f.ToggleProfesseur(0, 3)
	f.SetGroupe(0, 2)
	assert.Equal(t, []uint{3}, f.Lignes()[0].Professeurs)
}

func TestToggleProfesseur(t *testing.T) {
	f := NewForm(contexteNouveau())

	f.ToggleProfesseur(0, 1)
	assert.Equal(t, []uint{1}, f.Lignes()[0].Professeurs)

	// second appel : retrait
	f.ToggleProfesseur(0, 1)
	assert.Empty(t, f.Lignes()[0].Professeurs)

	// hors roster du groupe 1 : ignoré
	f.ToggleProfesseur(0, 3)
	assert.Empty(t, f.Lignes()[0].Professeurs)
}

func TestAddRemoveLigne(t *testing.T) {
	f := NewForm(contexteNouveau())
	f.AddLigne()
	f.AddLigne()
	require.Equal(t, 3, f.NbLignes())

	f.RemoveLigne(1)
	assert.Equal(t, 2, f.NbLignes())

	// index hors bornes : silencieux
	f.RemoveLigne(-1)
	f.RemoveLigne(10)
	assert.Equal(t, 2, f.NbLignes())
}

func TestCompletionLotFige(t *testing.T) {
	f := NewForm(Contexte{
		Mode:            CompletionPaiement,
		RemainingAmount: ptr(400),
	})

	f.AddLigne()
	assert.Equal(t, 1, f.NbLignes())

	f.RemoveLigne(0)
	assert.Equal(t, 1, f.NbLignes())
}

func TestCompletionChampsFiges(t *testing.T) {
	ctx := contexteNouveau()
	ctx.Mode = CompletionPaiement
	ctx.RemainingAmount = ptr(400)
	f := NewForm(ctx)
	avant := f.Lignes()[0]

	// seul le montant est éditable en complétion ; tout le reste est hérité
	f.SetGroupe(0, 2)
	f.SetEtudiant(0, 99)
	f.SetFraisInscription(0, 500)
	f.SetMois(0, "2024-12")
	f.SetCommissionPercentage(0, ptr(50))
	f.ToggleProfesseur(0, 1)

	apres := f.Lignes()[0]
	assert.Equal(t, avant.GroupeID, apres.GroupeID)
	assert.Equal(t, avant.EtudiantID, apres.EtudiantID)
	assert.Equal(t, avant.FraisInscription, apres.FraisInscription)
	assert.Equal(t, avant.MoisPaiement, apres.MoisPaiement)
	assert.Nil(t, apres.CommissionPercentage)
	assert.Empty(t, apres.Professeurs)

	f.SetMontant(0, 250)
	assert.Equal(t, 250.0, f.Lignes()[0].Montant)
}

func TestCommissionAmount(t *testing.T) {
	tests := []struct {
		name string
		pct  *float64
		want *float64
	}{
		{"pourcentage absent", nil, nil},
		{"quinze pour cent de 1000", ptr(15), ptr(150)},
		{"arrondi au dirham", ptr(7.5), ptr(75)},
		{"zéro pour cent", ptr(0), ptr(0)},
		{"cent pour cent", ptr(100), ptr(1000)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := NewForm(contexteNouveau())
			f.SetCommissionPercentage(0, tt.pct)

			got := f.CommissionAmount(0)
			if tt.want == nil {
				assert.Nil(t, got)
			} else {
				require.NotNil(t, got)
				assert.Equal(t, *tt.want, *got)
			}
		})
	}
}

func TestCommissionAmountArrondiDemiVersLeHaut(t *testing.T) {
	ctx := contexteNouveau()
	ctx.Groupes[0].PrixSubscription = 850
	f := NewForm(ctx)
	f.SetCommissionPercentage(0, ptr(12.3)) // 104.55

	got := f.CommissionAmount(0)
	require.NotNil(t, got)
	assert.Equal(t, 105.0, *got)
}

func TestPayloadCopieProfonde(t *testing.T) {
	f := NewForm(contexteNouveau())
	f.SetMontant(0, 500)
	f.ToggleProfesseur(0, 1)
	f.SetCommissionPercentage(0, ptr(10))

	payload := f.Payload()
	payload[0].Professeurs[0] = 99
	*payload[0].CommissionPercentage = 50

	l := f.Lignes()[0]
	assert.Equal(t, []uint{1}, l.Professeurs)
	assert.Equal(t, 10.0, *l.CommissionPercentage)
}

func TestNewFormFromLignesVideSeedUneLigne(t *testing.T) {
	f := NewFormFromLignes(contexteNouveau(), nil)
	assert.Equal(t, 1, f.NbLignes())
}
