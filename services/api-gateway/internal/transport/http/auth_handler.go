package handlers

import (
	"net/http"

	"courseplatform/pkg/authpb"

	"github.com/gin-gonic/gin"
)

const refreshCookie = "refresh_token"

type CookieConfig struct {
	Domain string
	Secure bool
}

type AuthHandler struct {
	client authpb.AuthServiceClient
	cookie CookieConfig
}

func NewAuthHandler(client authpb.AuthServiceClient, cookie CookieConfig) *AuthHandler {
	return &AuthHandler{client: client, cookie: cookie}
}

type registerReq struct {
	Email    string `json:"email" binding:"required,email"`
	Username string `json:"username" binding:"required,min=3,max=50"`
	Password string `json:"password" binding:"required,min=8,max=72"`
}

type loginReq struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (h *AuthHandler) setRefresh(c *gin.Context, token string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(refreshCookie, token, maxAge, "/", h.cookie.Domain, h.cookie.Secure, true)
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req registerReq
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, err.Error())
		return
	}

	res, err := h.client.Register(c, &authpb.RegisterRequest{
		Email:    req.Email,
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"user_id": res.UserId})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, err.Error())
		return
	}

	res, err := h.client.Login(c, &authpb.LoginRequest{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	h.setRefresh(c, res.RefreshToken, 7*24*3600)
	c.JSON(http.StatusOK, gin.H{
		"access_token": res.AccessToken,
		"role":         res.Role,
	})
}

func (h *AuthHandler) Refresh(c *gin.Context) {
	refreshToken, err := c.Cookie(refreshCookie)
	if err != nil || refreshToken == "" {
		fail(c, http.StatusUnauthorized, "Refresh token not found")
		return
	}

	res, err := h.client.RefreshToken(c, &authpb.RefreshTokenRequest{RefreshToken: refreshToken})
	if err != nil {
		h.setRefresh(c, "", -1)
		respondError(c, err)
		return
	}

	h.setRefresh(c, res.RefreshToken, 7*24*3600)
	c.JSON(http.StatusOK, gin.H{"access_token": res.AccessToken})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	refreshToken, err := c.Cookie(refreshCookie)
	if err == nil && refreshToken != "" {
		if _, err := h.client.Logout(c, &authpb.LogoutRequest{RefreshToken: refreshToken}); err != nil {
			_ = c.Error(err)
		}
	}

	h.setRefresh(c, "", -1)
	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "Logged out"})
}
