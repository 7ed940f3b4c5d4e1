package handler

import (
	"deltapi/internal/app/middleware"
	"deltapi/internal/app/role"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes enregistre les routes REST ; les URL reprennent celles que
// consomme le front du tableau de bord
func (h *APIHandler) RegisterRoutes(router *gin.Engine, authMiddleware *middleware.AuthMiddleware) {
	// Authentification (endpoints publics)
	router.POST("/token", h.AuthHandler.Token)
	router.POST("/register", h.AuthHandler.Register)
	connecte := authMiddleware.WithAuthCheck(role.Caissier, role.Gestionnaire, role.Admin)
	router.POST("/logout", connecte, h.AuthHandler.Logout)
	router.GET("/profile", connecte, h.AuthHandler.Profile)
	gestion := authMiddleware.WithAuthCheck(role.Gestionnaire, role.Admin)
	admin := authMiddleware.WithAuthCheck(role.Admin)

	// ============ Listes ============
	router.GET("/groupe_list/", h.GetGroupes)
	router.GET("/etudiant_list/", h.GetEtudiants)
	router.GET("/professeur_list/", h.GetProfesseurs)
	router.GET("/niveau_list/", h.GetNiveaux)
	router.GET("/filiere_list/", h.GetFilieres)
	router.GET("/matiere_list/", h.GetMatieres)

	// ============ Étudiants ============
	etudiants := router.Group("/etudiants")
	{
		etudiants.GET("/:id/details/", h.GetEtudiantDetails)
		etudiants.POST("/create/", connecte, h.CreateEtudiant)
		etudiants.PUT("/update/:id", connecte, h.UpdateEtudiant)
		etudiants.DELETE("/delete/:id/", admin, h.DeleteEtudiant)
		etudiants.POST("/add-to-group/", connecte, h.AddEtudiantToGroupe)
	}

	// ============ Professeurs ============
	professeurs := router.Group("/professeurs")
	{
		professeurs.GET("/:id/details/", h.GetProfesseurDetails)
		professeurs.POST("/create/", gestion, h.CreateProfesseur)
		professeurs.PUT("/update/:id", gestion, h.UpdateProfesseur)
		professeurs.DELETE("/delete/:id/", admin, h.DeleteProfesseur)
	}

	// ============ Groupes ============
	groupes := router.Group("/groupes")
	{
		groupes.POST("/create/", gestion, h.CreateGroupe)
		groupes.PUT("/update/:id", gestion, h.UpdateGroupe)
		groupes.DELETE("/delete/:id/", admin, h.DeleteGroupe)
	}

	// ============ Référentiels ============
	niveaux := router.Group("/niveaux")
	{
		niveaux.POST("/create/", gestion, h.CreateNiveau)
		niveaux.PUT("/update/:id", gestion, h.UpdateNiveau)
		niveaux.DELETE("/delete/:id/", admin, h.DeleteNiveau)
	}
	filieres := router.Group("/filieres")
	{
		filieres.POST("/create/", gestion, h.CreateFiliere)
		filieres.PUT("/update/:id", gestion, h.UpdateFiliere)
		filieres.DELETE("/delete/:id/", admin, h.DeleteFiliere)
	}
	matieres := router.Group("/matieres")
	{
		matieres.POST("/create/", gestion, h.CreateMatiere)
		matieres.PUT("/update/:id", gestion, h.UpdateMatiere)
		matieres.DELETE("/delete/:id/", admin, h.DeleteMatiere)
	}

	// ============ Paiements ============
	// seul groupe en anglais : l'API d'origine expose /payments/
	paiements := router.Group("/payments")
	{
		paiements.GET("/", h.GetPaiements)
		paiements.POST("/create/", connecte, h.CreatePaiements)
		paiements.PUT("/:id/update/", connecte, h.CompleterPaiement)
		paiements.GET("/:id/recu/", h.GetRecuPaiement)
		paiements.GET("/:id/recu/url/", h.GetRecuArchive)
		paiements.DELETE("/:id/", admin, h.DeletePaiement)
	}

	// ============ Commissions ============
	commissions := router.Group("/commissions")
	{
		commissions.GET("/", h.GetCommissions)
		commissions.PUT("/:id/payer/", gestion, h.PayerCommission)
		commissions.GET("/export/", gestion, h.ExportCommissions)
	}

	// ============ Dépenses ============
	depenses := router.Group("/depenses")
	{
		depenses.GET("/", h.GetDepenses)
		depenses.POST("/", connecte, h.CreateDepense)
		depenses.PUT("/:id", connecte, h.UpdateDepense)
		depenses.DELETE("/:id/", admin, h.DeleteDepense)
	}

	// ============ Sorties banque ============
	sorties := router.Group("/sorties-banque")
	{
		sorties.GET("/", h.GetSortiesBanque)
		sorties.POST("/", connecte, h.CreateSortieBanque)
		sorties.PUT("/:id", connecte, h.UpdateSortieBanque)
		sorties.DELETE("/:id/", admin, h.DeleteSortieBanque)
	}

	// ============ Tableau de bord ============
	dashboard := router.Group("/dashboard")
	{
		dashboard.GET("/metrics/", h.GetDashboardMetrics)
		dashboard.GET("/financial-metrics/", h.GetFinancialMetrics)
	}

	router.GET("/ping", h.Ping)
}
