package paiement

import (
	"fmt"
	"math"
)

// Mode de saisie : nouveau paiement ou complétion d'un paiement partiel existant
type Mode int

const (
	NouveauPaiement Mode = iota
	CompletionPaiement
)

// Professeur éligible d'un groupe, tel que fourni par la page appelante
type Professeur struct {
	ID         uint
	Nom        string
	Prenom     string
	Specialite string
}

// GroupeInfo porte le roster et le prix d'abonnement servant au calcul de commission
type GroupeInfo struct {
	ID               uint
	NomGroupe        string
	PrixSubscription float64
	Professeurs      []Professeur
	Matieres         []string
}

// Ligne est une ligne de paiement en cours de saisie
type Ligne struct {
	Montant              float64
	FraisInscription     float64
	EtudiantID           uint
	GroupeID             uint
	CommissionPercentage *float64 // nil = non renseigné
	Professeurs          []uint
	MoisPaiement         string
}

// Contexte est fourni en lecture seule par la page qui ouvre le formulaire
type Contexte struct {
	Mode            Mode
	RemainingAmount *float64 // plafonne le montant quand un paiement partiel existe
	EtudiantID      uint
	Groupes         []GroupeInfo
}

// FieldErrors associe à chaque champ invalide un message lisible ; vide = ligne valide
type FieldErrors map[string]string

// Form détient le lot de lignes d'un envoi et applique les règles de validation.
// En mode complétion le lot est figé à une seule ligne dont seul le montant est éditable.
type Form struct {
	ctx    Contexte
	lignes []Ligne
}

func NewForm(ctx Contexte) *Form {
	f := &Form{ctx: ctx}
	l := f.seedLigne()
	if ctx.RemainingAmount != nil {
		l.Montant = *ctx.RemainingAmount
	}
	f.lignes = append(f.lignes, l)
	return f
}

// NewFormFromLignes reconstruit un formulaire depuis des lignes déjà saisies,
// telles quelles, pour les revalider côté serveur
func NewFormFromLignes(ctx Contexte, lignes []Ligne) *Form {
	f := &Form{ctx: ctx}
	for _, l := range lignes {
		c := l
		if c.Professeurs == nil {
			c.Professeurs = []uint{}
		}
		f.lignes = append(f.lignes, c)
	}
	if len(f.lignes) == 0 {
		f.lignes = append(f.lignes, f.seedLigne())
	}
	return f
}

func (f *Form) seedLigne() Ligne {
	var groupeID uint
	if len(f.ctx.Groupes) > 0 {
		groupeID = f.ctx.Groupes[0].ID
	}
	return Ligne{
		EtudiantID:  f.ctx.EtudiantID,
		GroupeID:    groupeID,
		Professeurs: []uint{},
	}
}

func (f *Form) Mode() Mode { return f.ctx.Mode }

func (f *Form) NbLignes() int { return len(f.lignes) }

// Lignes renvoie une copie pour l'affichage ; la mutation passe par les setters
func (f *Form) Lignes() []Ligne {
	out := make([]Ligne, len(f.lignes))
	copy(out, f.lignes)
	return out
}

func (f *Form) AddLigne() {
	if f.ctx.Mode == CompletionPaiement {
		return
	}
	f.lignes = append(f.lignes, f.seedLigne())
}

func (f *Form) RemoveLigne(index int) {
	if index < 0 || index >= len(f.lignes) {
		return
	}
	if f.ctx.Mode == CompletionPaiement && len(f.lignes) == 1 {
		return
	}
	f.lignes = append(f.lignes[:index], f.lignes[index+1:]...)
}

// En mode complétion seul le montant reste éditable : les autres champs sont
// hérités du paiement d'origine et figés
func (f *Form) champsFiges() bool {
	return f.ctx.Mode == CompletionPaiement
}

func (f *Form) SetMontant(index int, montant float64) {
	if index < 0 || index >= len(f.lignes) {
		return
	}
	f.lignes[index].Montant = montant
}

func (f *Form) SetFraisInscription(index int, frais float64) {
	if f.champsFiges() || index < 0 || index >= len(f.lignes) {
		return
	}
	f.lignes[index].FraisInscription = frais
}

func (f *Form) SetEtudiant(index int, etudiantID uint) {
	if f.champsFiges() || index < 0 || index >= len(f.lignes) {
		return
	}
	f.lignes[index].EtudiantID = etudiantID
}

func (f *Form) SetMois(index int, mois string) {
	if f.champsFiges() || index < 0 || index >= len(f.lignes) {
		return
	}
	f.lignes[index].MoisPaiement = mois
}

func (f *Form) SetCommissionPercentage(index int, pct *float64) {
	if f.champsFiges() || index < 0 || index >= len(f.lignes) {
		return
	}
	f.lignes[index].CommissionPercentage = pct
}

// SetGroupe change le groupe d'une ligne et vide sa sélection de professeurs :
// l'éligibilité est propre au groupe, une sélection périmée ne doit pas survivre
func (f *Form) SetGroupe(index int, groupeID uint) {
	if f.champsFiges() || index < 0 || index >= len(f.lignes) {
		return
	}
	if f.lignes[index].GroupeID == groupeID {
		return
	}
	f.lignes[index].GroupeID = groupeID
	f.lignes[index].Professeurs = []uint{}
}

// ToggleProfesseur ajoute ou retire un professeur de la ligne.
// Un id hors roster du groupe sélectionné est ignoré sans erreur.
func (f *Form) ToggleProfesseur(index int, profID uint) {
	if f.champsFiges() || index < 0 || index >= len(f.lignes) {
		return
	}
	l := &f.lignes[index]
	g := f.groupe(l.GroupeID)
	if g == nil || !rosterContient(g, profID) {
		return
	}
	for i, id := range l.Professeurs {
		if id == profID {
			l.Professeurs = append(l.Professeurs[:i], l.Professeurs[i+1:]...)
			return
		}
	}
	l.Professeurs = append(l.Professeurs, profID)
}

func (f *Form) groupe(id uint) *GroupeInfo {
	for i := range f.ctx.Groupes {
		if f.ctx.Groupes[i].ID == id {
			return &f.ctx.Groupes[i]
		}
	}
	return nil
}

func rosterContient(g *GroupeInfo, profID uint) bool {
	for _, p := range g.Professeurs {
		if p.ID == profID {
			return true
		}
	}
	return false
}

// Validate applique les invariants à chaque ligne et renvoie, par ligne, les
// erreurs par champ. Jamais d'effet de bord : deux appels successifs sans
// mutation donnent le même résultat.
func (f *Form) Validate() []FieldErrors {
	result := make([]FieldErrors, len(f.lignes))
	for i, l := range f.lignes {
		errs := FieldErrors{}

		if l.Montant <= 0 {
			errs["montant"] = "Le montant doit être supérieur à 0"
		} else if f.ctx.RemainingAmount != nil && l.Montant > *f.ctx.RemainingAmount {
			errs["montant"] = fmt.Sprintf("Le montant maximum restant est %g MAD", *f.ctx.RemainingAmount)
		}

		if l.CommissionPercentage != nil {
			pct := *l.CommissionPercentage
			if pct < 0 || pct > 100 {
				errs["commission"] = "Le pourcentage de commission doit être entre 0 et 100"
			}
		}

		if f.ctx.Mode == NouveauPaiement {
			if l.FraisInscription < 0 {
				errs["frais_inscription"] = "Les frais d'inscription ne peuvent pas être négatifs"
			}
			if l.EtudiantID == 0 {
				errs["etudiant"] = "Sélectionnez un étudiant"
			}
			g := f.groupe(l.GroupeID)
			if g == nil {
				errs["groupe"] = "Sélectionnez un groupe valide"
			} else {
				if len(l.Professeurs) == 0 {
					errs["professeurs"] = "Sélectionnez au moins un professeur"
				} else {
					for _, id := range l.Professeurs {
						if !rosterContient(g, id) {
							errs["professeurs"] = "Professeur hors du groupe sélectionné"
							break
						}
					}
				}
			}
		}

		result[i] = errs
	}
	return result
}

// Valid est vrai ssi aucune ligne ne porte d'erreur
func Valid(errs []FieldErrors) bool {
	for _, e := range errs {
		if len(e) > 0 {
			return false
		}
	}
	return true
}

// CommissionAmount renvoie nil quand le pourcentage n'est pas renseigné, sinon
// round(prix_subscription × pct / 100) avec arrondi au dirham (demi vers le haut,
// comme Math.round côté front). Prix 0 si aucun groupe sélectionné.
func (f *Form) CommissionAmount(index int) *float64 {
	if index < 0 || index >= len(f.lignes) {
		return nil
	}
	l := f.lignes[index]
	if l.CommissionPercentage == nil {
		return nil
	}
	var prix float64
	if g := f.groupe(l.GroupeID); g != nil {
		prix = g.PrixSubscription
	}
	m := math.Round(prix * *l.CommissionPercentage / 100)
	return &m
}

// Payload renvoie le lot prêt à soumettre. Le pourcentage est transmis tel quel
// (nil compris). La liste de professeurs n'est vide qu'en mode complétion, où
// l'affectation est héritée du paiement d'origine côté serveur.
func (f *Form) Payload() []Ligne {
	out := make([]Ligne, len(f.lignes))
	for i, l := range f.lignes {
		c := l
		c.Professeurs = append([]uint{}, l.Professeurs...)
		if l.CommissionPercentage != nil {
			pct := *l.CommissionPercentage
			c.CommissionPercentage = &pct
		}
		out[i] = c
	}
	return out
}
