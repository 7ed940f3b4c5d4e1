package handler

import (
	"crypto/sha1"
	"encoding/hex"
	"errors"
	"net/http"
	"time"

	"deltapi/internal/app/config"
	"deltapi/internal/app/ds"
	"deltapi/internal/app/dto"
	"deltapi/internal/app/middleware"
	"deltapi/internal/app/redis"
	"deltapi/internal/app/repository"
	"deltapi/internal/app/role"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt"
	"github.com/sirupsen/logrus"
)

type AuthHandler struct {
	Repository  *repository.Repository
	RedisClient *redis.Client
	Config      *config.Config
}

func NewAuthHandler(r *repository.Repository, redisClient *redis.Client, cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		Repository:  r,
		RedisClient: redisClient,
		Config:      cfg,
	}
}

// generateHashString retourne le hash SHA-1 hexadécimal d'une chaîne
func generateHashString(s string) string {
	h := sha1.New()
	h.Write([]byte(s))
	return hex.EncodeToString(h.Sum(nil))
}

func (h *AuthHandler) roleForUser(user *ds.User) role.Role {
	if user.IsAdmin {
		return role.Admin
	}
	return role.Caissier
}

func (h *AuthHandler) signToken(user *ds.User) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(h.Config.JWT.SigningMethod, ds.JWTClaims{
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: now.Add(h.Config.JWT.ExpiresIn).Unix(),
			IssuedAt:  now.Unix(),
			Issuer:    "deltapi",
		},
		UserID: user.ID,
		Role:   h.roleForUser(user),
	})
	return token.SignedString([]byte(h.Config.JWT.Secret))
}

// Token authentification
// @Summary Connexion
// @Description Vérifie les identifiants et renvoie un jeton JWT dans le champ access
// @Tags Authentification
// @Accept json
// @Produce json
// @Param request body dto.TokenRequest true "Identifiants"
// @Success 200 {object} dto.TokenResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /token [post]
func (h *AuthHandler) Token(ctx *gin.Context) {
	var request dto.TokenRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		h.errorResponse(ctx, http.StatusBadRequest, err)
		return
	}

	user, err := h.Repository.GetUserByUsername(request.Username)
	if err != nil || user.Password != generateHashString(request.Password) {
		h.errorResponse(ctx, http.StatusUnauthorized, errors.New("identifiants invalides"))
		return
	}

	access, err := h.signToken(user)
	if err != nil {
		h.errorResponse(ctx, http.StatusInternalServerError, err)
		return
	}

	// le front lit le champ access et le range dans le cookie authToken
	ctx.JSON(http.StatusOK, dto.TokenResponse{Access: access})
}

// Register création d'un compte
// @Summary Inscription
// @Description Crée un nouvel utilisateur du back-office
// @Tags Authentification
// @Accept json
// @Produce json
// @Param request body dto.RegisterRequest true "Données d'inscription"
// @Success 201 {object} dto.UserResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /register [post]
func (h *AuthHandler) Register(ctx *gin.Context) {
	var request dto.RegisterRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		h.errorResponse(ctx, http.StatusBadRequest, err)
		return
	}

	exists, err := h.Repository.UserExistsByUsername(request.Username)
	if err != nil {
		h.errorResponse(ctx, http.StatusInternalServerError, err)
		return
	}
	if exists {
		h.errorResponse(ctx, http.StatusBadRequest, errors.New("ce nom d'utilisateur existe déjà"))
		return
	}

	user, err := h.Repository.CreateUser(request.Username, generateHashString(request.Password), request.FullName, request.IsAdmin)
	if err != nil {
		logrus.Error("création utilisateur: ", err)
		h.errorResponse(ctx, http.StatusInternalServerError, errors.New("impossible de créer l'utilisateur"))
		return
	}

	ctx.JSON(http.StatusCreated, dto.UserResponse{
		ID:       user.ID,
		Username: user.Username,
		FullName: user.FullName,
		IsAdmin:  user.IsAdmin,
	})
}

// Logout déconnexion
// @Summary Déconnexion
// @Description Ajoute le jeton courant à la liste noire jusqu'à son expiration
// @Tags Authentification
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.SuccessResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /logout [post]
func (h *AuthHandler) Logout(ctx *gin.Context) {
	tokenString := ctx.GetHeader("Authorization")
	if tokenString == "" {
		h.errorResponse(ctx, http.StatusUnauthorized, errors.New("authorization header manquant"))
		return
	}
	if len(tokenString) > 7 && tokenString[:7] == "Bearer " {
		tokenString = tokenString[7:]
	}

	token, err := jwt.ParseWithClaims(tokenString, &ds.JWTClaims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(h.Config.JWT.Secret), nil
	})
	if err != nil {
		h.errorResponse(ctx, http.StatusUnauthorized, err)
		return
	}

	claims, ok := token.Claims.(*ds.JWTClaims)
	if !ok {
		h.errorResponse(ctx, http.StatusUnauthorized, errors.New("jeton invalide"))
		return
	}

	// blacklist uniquement jusqu'à l'expiration restante du jeton
	ttl := time.Until(time.Unix(claims.ExpiresAt, 0))
	if ttl > 0 {
		if err := h.RedisClient.WriteJWTToBlacklist(ctx.Request.Context(), tokenString, ttl); err != nil {
			h.errorResponse(ctx, http.StatusInternalServerError, err)
			return
		}
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse{Status: "success", Message: "déconnexion effectuée"})
}

// Profile profil de l'utilisateur connecté
// @Summary Profil courant
// @Tags Authentification
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.UserResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /profile [get]
func (h *AuthHandler) Profile(ctx *gin.Context) {
	userID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		h.errorResponse(ctx, http.StatusUnauthorized, errors.New("utilisateur non authentifié"))
		return
	}

	user, err := h.Repository.GetUserByID(userID)
	if err != nil {
		h.errorResponse(ctx, http.StatusNotFound, errors.New("utilisateur introuvable"))
		return
	}

	ctx.JSON(http.StatusOK, dto.UserResponse{
		ID:       user.ID,
		Username: user.Username,
		FullName: user.FullName,
		IsAdmin:  user.IsAdmin,
	})
}

// errorResponse journalise l'erreur et renvoie la réponse d'échec normalisée
func (h *AuthHandler) errorResponse(ctx *gin.Context, statusCode int, err error) {
	logrus.Error(err.Error())
	ctx.JSON(statusCode, dto.ErrorResponse{
		Status:  "fail",
		Message: err.Error(),
	})
}
