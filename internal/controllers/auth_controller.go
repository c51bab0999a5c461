package controllers

import (
    "net/http"
    "time"

    "github.com/gin-gonic/gin"
    "github.com/golang-jwt/jwt/v5"

    "github.com/lojavirtual/backend_v1/internal/middleware"
    "github.com/lojavirtual/backend_v1/internal/utils"
)

// AdminAccount is the single env-seeded admin identity. There is no
// user database in this system.
type AdminAccount struct {
    Email        string
    FullName     string
    PasswordHash string
}

type AuthController struct {
    Account   AdminAccount
    JWTSecret string
    ExpiresIn time.Duration
}

type loginRequest struct {
    Email    string `json:"email" binding:"required,email"`
    Password string `json:"password" binding:"required"`
}

func (a *AuthController) Login(c *gin.Context) {
    var req loginRequest
    if err := c.ShouldBindJSON(&req); err != nil {
        c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
        return
    }

    if req.Email != a.Account.Email || !utils.CheckPassword(a.Account.PasswordHash, req.Password) {
        c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
        return
    }

    now := time.Now().UTC()
    claims := middleware.Claims{
        Email:    a.Account.Email,
        FullName: a.Account.FullName,
        Role:     "admin",
        RegisteredClaims: jwt.RegisteredClaims{
            Issuer:    "loja_backend_v1",
            IssuedAt:  jwt.NewNumericDate(now),
            ExpiresAt: jwt.NewNumericDate(now.Add(a.ExpiresIn)),
            Subject:   a.Account.Email,
        },
    }
    token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
    signed, err := token.SignedString([]byte(a.JWTSecret))
    if err != nil {
        c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
        return
    }

    c.JSON(http.StatusOK, gin.H{
        "access_token": signed,
        "token_type":   "Bearer",
        "expires_in":   int(a.ExpiresIn.Seconds()),
        "role":         "admin",
    })
}

func (a *AuthController) Me(c *gin.Context) {
    val, _ := c.Get("claims")
    claims := val.(middleware.Claims)
    c.JSON(http.StatusOK, gin.H{
        "email":     claims.Email,
        "full_name": claims.FullName,
        "role":      claims.Role,
    })
}
