package auth

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainmember "github.com/teamdesk/teamdesk/internal/domain/member"
	authsvc "github.com/teamdesk/teamdesk/internal/service/auth"
	"github.com/teamdesk/teamdesk/internal/transport/session"
)

// Register wires the public endpoints; RegisterProtected adds /me behind the
// auth middleware.
func Register(rg *gin.RouterGroup, svc *authsvc.Service) {
	rg.POST("/register", register(svc))
	rg.POST("/login", login(svc))
}

func RegisterProtected(rg *gin.RouterGroup, svc *authsvc.Service) {
	rg.GET("/me", me(svc))
}

type credentialsResp struct {
	Token string              `json:"token"`
	User  domainmember.Member `json:"user"`
}

type registerReq struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func register(svc *authsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req registerReq
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		m, token, err := svc.Register(c.Request.Context(), req.Name, req.Email, req.Password)
		if err != nil {
			switch {
			case errors.Is(err, authsvc.ErrEmailTaken):
				c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			case errors.Is(err, authsvc.ErrMissingFields):
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			}
			return
		}
		c.JSON(http.StatusCreated, credentialsResp{Token: token, User: m})
	}
}

type loginReq struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func login(svc *authsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req loginReq
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		m, token, err := svc.Login(c.Request.Context(), req.Email, req.Password)
		if err != nil {
			if errors.Is(err, authsvc.ErrInvalidCredentials) {
				c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, credentialsResp{Token: token, User: m})
	}
}

func me(svc *authsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		callerID, ok := session.CallerID(c)
		if !ok {
			return
		}

		m, err := svc.Profile(c.Request.Context(), callerID)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, m)
	}
}
