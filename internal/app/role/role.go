package role

// Rôles des utilisateurs du tableau de bord
type Role int

const (
	Caissier Role = iota // saisie des paiements et dépenses
	Gestionnaire
	Admin
)

func (r Role) String() string {
	switch r {
	case Caissier:
		return "caissier"
	case Gestionnaire:
		return "gestionnaire"
	case Admin:
		return "admin"
	}
	return "inconnu"
}
