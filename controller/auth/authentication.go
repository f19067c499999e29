package auth

import (
	"log/slog"
	"net/http"
	"time"

	"minesafety/dto"
	"minesafety/model"
	"minesafety/services"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

const accessTokenTTL = 30 * time.Minute

func AuthController(router *gin.Engine, users *services.GormUserDirectory, secret []byte) {
	routes := router.Group("/api/auth")
	{
		routes.POST("/signin", func(c *gin.Context) {
			Signin(c, users, secret)
		})
	}
}

func CreateAccessToken(secret []byte, userID, role string) (string, error) {
	claims := &model.AccessClaims{
		UserID: userID,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "minesafety",
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(accessTokenTTL)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

func Signin(c *gin.Context, users *services.GormUserDirectory, secret []byte) {
	var request dto.SigninRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	user, err := users.FindUserByEmail(c.Request.Context(), request.Email)
	if err != nil {
		slog.Error("signin lookup failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Database error"})
		return
	}
	if user == nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(request.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid password"})
		return
	}

	accessToken, err := CreateAccessToken(secret, user.UserID, user.Role)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Login Successfully",
		"token":   accessToken,
		"user": gin.H{
			"_id":  user.UserID,
			"name": user.Name,
			"role": user.Role,
		},
	})
}
