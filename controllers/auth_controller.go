package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/cppla/minisocial/middleware"
	"github.com/cppla/minisocial/models"
	"github.com/cppla/minisocial/utils"
)

// AuthController handles credential verification and profile reads.
type AuthController struct {
	db *gorm.DB
}

// NewAuthController creates an AuthController.
func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{db: db}
}

// Authenticate implements the login-or-register-on-first-login contract of
// POST /api/authenticate: an unseen email creates the account, a known email
// must present the matching password. Both paths end in an issued token.
func (a *AuthController) Authenticate(ctx *gin.Context) {
	type request struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}

	var req request
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Message(ctx, http.StatusBadRequest, "invalid request payload")
		return
	}

	var user models.User
	err := a.db.Where("email = ?", req.Email).First(&user).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		a.register(ctx, req.Email, req.Password)
	case err != nil:
		utils.Sugar.Errorf("authenticate lookup failed: %v", err)
		utils.Message(ctx, http.StatusInternalServerError, "Internal server error")
	default:
		a.login(ctx, &user, req.Password)
	}
}

func (a *AuthController) register(ctx *gin.Context, email, password string) {
	hash, err := utils.HashPassword(password)
	if err != nil {
		utils.Message(ctx, http.StatusInternalServerError, "Internal server error")
		return
	}

	user := models.User{
		Username:     email,
		Email:        email,
		PasswordHash: hash,
	}
	if err := a.db.Create(&user).Error; err != nil {
		utils.Sugar.Errorf("create user failed: %v", err)
		utils.Message(ctx, http.StatusInternalServerError, "Internal server error")
		return
	}

	a.issueSession(ctx, user.ID)
}

func (a *AuthController) login(ctx *gin.Context, user *models.User, password string) {
	if !utils.CheckPassword(user.PasswordHash, password) {
		utils.Message(ctx, http.StatusUnauthorized, "Incorrect password")
		return
	}
	a.issueSession(ctx, user.ID)
}

func (a *AuthController) issueSession(ctx *gin.Context, userID uint) {
	token, err := utils.GenerateToken(userID)
	if err != nil {
		utils.Message(ctx, http.StatusInternalServerError, "Internal server error")
		return
	}

	// The cookie is a write-only artifact: clients authenticate through the
	// Authorization header, nothing reads the cookie back.
	ctx.SetCookie("token", token, 0, "/", "", false, true)
	ctx.JSON(http.StatusOK, gin.H{"accessToken": token})
}

// Profile returns the authenticated user's username and edge counts.
func (a *AuthController) Profile(ctx *gin.Context) {
	userID, ok := middleware.GetUserID(ctx)
	if !ok {
		utils.Message(ctx, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var user models.User
	if err := a.db.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.Message(ctx, http.StatusNotFound, "User not found")
			return
		}
		utils.Message(ctx, http.StatusInternalServerError, "internal server error")
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"username":  user.Username,
		"followers": len(user.Followers),
		"following": len(user.Following),
	})
}
