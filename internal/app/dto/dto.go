package dto

import "time"

// ============ Structures communes ============

type ErrorResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

type SuccessResponse struct {
	Status  string      `json:"status"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// Erreurs de validation d'une ligne de paiement, champ -> message
type LigneErreurs struct {
	Index   int               `json:"index"`
	Erreurs map[string]string `json:"erreurs"`
}

type ValidationErrorResponse struct {
	Status string         `json:"status"`
	Lignes []LigneErreurs `json:"lignes"`
}

// ============ Référentiels (niveaux, filières, matières) ============

type NiveauResponse struct {
	ID        uint   `json:"id"`
	NomNiveau string `json:"nom_niveau"`
}

type CreateNiveauRequest struct {
	NomNiveau string `json:"nom_niveau" binding:"required"`
}

type FiliereResponse struct {
	ID         uint   `json:"id"`
	NomFiliere string `json:"nom_filiere"`
}

type CreateFiliereRequest struct {
	NomFiliere string `json:"nom_filiere" binding:"required"`
}

type MatiereResponse struct {
	ID         uint   `json:"id"`
	NomMatiere string `json:"nom_matiere"`
}

type CreateMatiereRequest struct {
	NomMatiere string `json:"nom_matiere" binding:"required"`
}

// ============ Étudiants ============

type EtudiantResponse struct {
	ID             uint      `json:"id"`
	Nom            string    `json:"nom"`
	Prenom         string    `json:"prenom"`
	DateNaissance  string    `json:"date_naissance"`
	Telephone      string    `json:"telephone"`
	Adresse        string    `json:"adresse"`
	Sexe           string    `json:"sexe"`
	Nationalite    string    `json:"nationalite"`
	ContactUrgence string    `json:"contact_urgence"`
	CreatedAt      time.Time `json:"created_at"`
}

type CreateEtudiantRequest struct {
	Nom            string `json:"nom" binding:"required"`
	Prenom         string `json:"prenom" binding:"required"`
	DateNaissance  string `json:"date_naissance" binding:"omitempty,datetime=2006-01-02"`
	Telephone      string `json:"telephone"`
	Adresse        string `json:"adresse"`
	Sexe           string `json:"sexe" binding:"omitempty,oneof=M F"`
	Nationalite    string `json:"nationalite"`
	ContactUrgence string `json:"contact_urgence"`
}

type AddToGroupRequest struct {
	EtudiantID uint `json:"etudiant_id" binding:"required"`
	GroupeID   uint `json:"groupe_id" binding:"required"`
}

type EtudiantDetailsResponse struct {
	EtudiantResponse
	Groupes        []GroupeResponse   `json:"groupes"`
	Paiements      []PaiementResponse `json:"paiements"`
	TotalPaiements float64            `json:"total_paiements"`
	TotalGroupes   int                `json:"total_groupes"`
}

// ============ Professeurs ============

type ProfesseurResponse struct {
	ID             uint      `json:"id"`
	Nom            string    `json:"nom"`
	Prenom         string    `json:"prenom"`
	DateNaissance  string    `json:"date_naissance"`
	Telephone      string    `json:"telephone"`
	Adresse        string    `json:"adresse"`
	Sexe           string    `json:"sexe"`
	Nationalite    string    `json:"nationalite"`
	Specialite     string    `json:"specialite"`
	CommissionFixe float64   `json:"commission_fixe"`
	CreatedAt      time.Time `json:"created_at"`
}

type CreateProfesseurRequest struct {
	Nom            string  `json:"nom" binding:"required"`
	Prenom         string  `json:"prenom" binding:"required"`
	DateNaissance  string  `json:"date_naissance" binding:"omitempty,datetime=2006-01-02"`
	Telephone      string  `json:"telephone"`
	Adresse        string  `json:"adresse"`
	Sexe           string  `json:"sexe" binding:"omitempty,oneof=M F"`
	Nationalite    string  `json:"nationalite"`
	Specialite     string  `json:"specialite"`
	CommissionFixe float64 `json:"commission_fixe" binding:"gte=0"`
}

type ProfesseurGroupeResponse struct {
	ID             uint    `json:"id"`
	NomGroupe      string  `json:"nom_groupe"`
	CommissionFixe float64 `json:"commission_fixe"`
	MaxEtudiants   int     `json:"max_etudiants"`
	TotalEtudiants int     `json:"total_etudiants"`
}

type ProfesseurDetailsResponse struct {
	ProfesseurResponse
	Groupes          []ProfesseurGroupeResponse `json:"groupes"`
	Commissions      []CommissionResponse       `json:"commissions"`
	TotalCommissions float64                    `json:"total_commissions"`
	TotalGroupes     int                        `json:"total_groupes"`
}

// ============ Groupes ============

type ProfesseurEnGroupe struct {
	ID             uint    `json:"id"`
	Nom            string  `json:"nom"`
	Prenom         string  `json:"prenom"`
	Specialite     string  `json:"specialite"`
	CommissionFixe float64 `json:"commission_fixe"`
}

type GroupeResponse struct {
	ID               uint                 `json:"id"`
	NomGroupe        string               `json:"nom_groupe"`
	Niveau           NiveauResponse       `json:"niveau"`
	Filiere          FiliereResponse      `json:"filiere"`
	MaxEtudiants     int                  `json:"max_etudiants"`
	PrixSubscription float64              `json:"prix_subscription"`
	Professeurs      []ProfesseurEnGroupe `json:"professeurs"`
	Matieres         []MatiereResponse    `json:"matieres"`
	CreatedAt        time.Time            `json:"created_at"`
}

type CreateGroupeRequest struct {
	NomGroupe        string  `json:"nom_groupe" binding:"required"`
	NiveauID         uint    `json:"niveau_id" binding:"required"`
	FiliereID        uint    `json:"filiere_id" binding:"required"`
	MaxEtudiants     int     `json:"max_etudiants" binding:"omitempty,gte=1"`
	PrixSubscription float64 `json:"prix_subscription" binding:"required,gt=0"`
	Professeurs      []uint  `json:"professeurs"`
	Matieres         []uint  `json:"matieres"`
}

// ============ Paiements ============

type PaiementLigneRequest struct {
	Montant              float64  `json:"montant" binding:"required"`
	FraisInscription     float64  `json:"frais_inscription"`
	EtudiantID           uint     `json:"etudiant_id" binding:"required"`
	GroupeID             uint     `json:"groupe_id" binding:"required"`
	CommissionPercentage *float64 `json:"commission_percentage"`
	Professeurs          []uint   `json:"professeurs"`
	MoisPaiement         string   `json:"mois_paiement" binding:"omitempty,datetime=2006-01"`
}

type CreatePaiementsRequest struct {
	Payments []PaiementLigneRequest `json:"payments" binding:"required,min=1,dive"`
}

// Complétion d'un paiement partiel : seul le montant est accepté
type UpdatePaiementRequest struct {
	Montant float64 `json:"montant" binding:"required,gt=0"`
}

type EtudiantEnPaiement struct {
	ID        uint   `json:"id"`
	Nom       string `json:"nom"`
	Prenom    string `json:"prenom"`
	Telephone string `json:"telephone"`
	Adresse   string `json:"adresse"`
}

type GroupeEnPaiement struct {
	ID          uint            `json:"id"`
	NomGroupe   string          `json:"nom_groupe"`
	NiveauInfo  NiveauResponse  `json:"niveau_info"`
	FiliereInfo FiliereResponse `json:"filiere_info"`
}

type PaiementResponse struct {
	ID                   uint               `json:"id"`
	Montant              float64            `json:"montant"`
	MontantTotal         float64            `json:"montant_total"`
	Remaining            float64            `json:"remaining"`
	FraisInscription     float64            `json:"frais_inscription"`
	DatePaiement         time.Time          `json:"date_paiement"`
	MoisPaiement         string             `json:"mois_paiement"`
	MonthName            string             `json:"month_name"`
	StatutPaiement       string             `json:"statut_paiement"`
	CommissionPercentage *float64           `json:"commission_percentage,omitempty"`
	Etudiant             EtudiantEnPaiement `json:"etudiant"`
	Groupe               GroupeEnPaiement   `json:"groupe"`
}

type PaiementListResponse struct {
	Results     []PaiementResponse `json:"results"`
	Total       int                `json:"total"`
	TotalAmount float64            `json:"total_amount"`
}

// ============ Commissions ============

type ProfesseurEnCommission struct {
	ID         uint   `json:"id"`
	Nom        string `json:"nom"`
	Prenom     string `json:"prenom"`
	Specialite string `json:"specialite"`
}

type CommissionResponse struct {
	ID               uint                   `json:"id"`
	Montant          float64                `json:"montant"`
	DateCommission   time.Time              `json:"date_comission"`
	MoisPaiement     string                 `json:"mois_paiement"`
	MonthName        string                 `json:"month_name"`
	StatutCommission string                 `json:"statut_comission"`
	Professeur       ProfesseurEnCommission `json:"professeur"`
	Etudiant         EtudiantEnPaiement     `json:"etudiant"`
	Groupe           GroupeEnPaiement       `json:"groupe"`
}

type CommissionListResponse struct {
	Results     []CommissionResponse `json:"results"`
	Total       int                  `json:"total"`
	TotalAmount float64              `json:"total_amount"`
}

// ============ Dépenses ============

type DepenseResponse struct {
	ID        uint      `json:"id"`
	Date      string    `json:"date"`
	Libele    string    `json:"libele"`
	Montant   float64   `json:"montant"`
	CreatedAt time.Time `json:"created_at"`
}

type CreateDepenseRequest struct {
	Date    string  `json:"date" binding:"required,datetime=2006-01-02"`
	Libele  string  `json:"libele" binding:"required"`
	Montant float64 `json:"montant" binding:"required,gt=0"`
}

// ============ Sorties banque ============

type SortieBanqueResponse struct {
	ID           uint      `json:"id"`
	Date         string    `json:"date"`
	ModePaiement string    `json:"mode_paiement"`
	Montant      float64   `json:"montant"`
	CreatedAt    time.Time `json:"created_at"`
}

type CreateSortieBanqueRequest struct {
	Date         string  `json:"date" binding:"required,datetime=2006-01-02"`
	ModePaiement string  `json:"mode_paiement" binding:"required,oneof=CHEQUE VIREMENT ESPECES CARTE"`
	Montant      float64 `json:"montant" binding:"required,gt=0"`
}

// ============ Tableau de bord ============

type StudentMetrics struct {
	TotalStudents        int64 `json:"total_students"`
	TotalMaleStudents    int64 `json:"total_male_students"`
	TotalFemaleStudents  int64 `json:"total_female_students"`
	NewStudentsThisMonth int64 `json:"new_students_this_month"`
}

type SpecialiteCount struct {
	Specialite string `json:"specialite"`
	Count      int64  `json:"count"`
}

type TeacherMetrics struct {
	TotalTeachers        int64             `json:"total_teachers"`
	TeachersBySpecialite []SpecialiteCount `json:"teachers_by_specialite"`
}

type StatutCount struct {
	Statut string `json:"statut"`
	Count  int64  `json:"count"`
}

type PaymentMetrics struct {
	TotalPayments int64         `json:"total_payments"`
	TotalAmount   float64       `json:"total_amount"`
	PaymentStatus []StatutCount `json:"payment_status"`
}

type CommissionMetrics struct {
	TotalCommissions      int64   `json:"total_commissions"`
	TotalCommissionAmount float64 `json:"total_commission_amount"`
}

type GroupMetrics struct {
	TotalGroups int64 `json:"total_groups"`
}

type DashboardMetricsResponse struct {
	StudentMetrics    StudentMetrics    `json:"student_metrics"`
	TeacherMetrics    TeacherMetrics    `json:"teacher_metrics"`
	PaymentMetrics    PaymentMetrics    `json:"payment_metrics"`
	CommissionMetrics CommissionMetrics `json:"commission_metrics"`
	GroupMetrics      GroupMetrics      `json:"group_metrics"`
	LastUpdated       time.Time         `json:"last_updated"`
}

// Série mensuelle pour le graphique en barres du tableau de bord
type MonthlyFinance struct {
	Month            string  `json:"month"` // AAAA-MM
	MonthName        string  `json:"month_name"`
	TotalPaiements   float64 `json:"total_paiements"`
	TotalDepenses    float64 `json:"total_depenses"`
	TotalCommissions float64 `json:"total_commissions"`
}

type FinancialMetricsResponse struct {
	Data []MonthlyFinance `json:"data"`
}

// ============ Authentification ============

type TokenRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Le front stocke le champ access dans le cookie authToken
type TokenResponse struct {
	Access string `json:"access"`
}

type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=3,max=50"`
	Password string `json:"password" binding:"required,min=6"`
	FullName string `json:"full_name" binding:"required"`
	IsAdmin  bool   `json:"is_admin"`
}

type UserResponse struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	FullName string `json:"full_name"`
	IsAdmin  bool   `json:"is_admin"`
}
