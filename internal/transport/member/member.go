package member

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	domainmember "github.com/teamdesk/teamdesk/internal/domain/member"
	membersvc "github.com/teamdesk/teamdesk/internal/service/member"
	"github.com/teamdesk/teamdesk/internal/transport/session"
)

func Register(rg *gin.RouterGroup, svc *membersvc.Service) {
	rg.GET("", listTeam(svc))
	rg.POST("", createMember(svc))
	rg.GET("/:id", getMember(svc))
	rg.DELETE("/:id", deleteMember(svc))
}

func listTeam(svc *membersvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		callerID, ok := session.CallerID(c)
		if !ok {
			return
		}

		team, err := svc.ListTeam(c.Request.Context(), callerID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, team)
	}
}

func getMember(svc *membersvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := session.CallerID(c); !ok {
			return
		}

		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
			return
		}

		m, err := svc.Get(c.Request.Context(), id)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, m)
	}
}

type createMemberReq struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	Role     string `json:"role"`
	Status   string `json:"status"`
	Avatar   string `json:"avatar_url"`
	Location string `json:"location"`
}

func createMember(svc *membersvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		callerID, ok := session.CallerID(c)
		if !ok {
			return
		}

		var req createMemberReq
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		m, err := svc.Create(c.Request.Context(), callerID, membersvc.CreateInput{
			Name:     req.Name,
			Email:    req.Email,
			Password: req.Password,
			Role:     domainmember.Role(req.Role),
			Status:   domainmember.Status(req.Status),
			Avatar:   req.Avatar,
			Location: req.Location,
		})
		if err != nil {
			switch {
			case errors.Is(err, membersvc.ErrForbidden):
				c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
			case errors.Is(err, membersvc.ErrEmailTaken):
				c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			case errors.Is(err, membersvc.ErrMissingFields):
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			}
			return
		}
		c.JSON(http.StatusCreated, m)
	}
}

func deleteMember(svc *membersvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		callerID, ok := session.CallerID(c)
		if !ok {
			return
		}

		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
			return
		}

		if err := svc.Delete(c.Request.Context(), callerID, id); err != nil {
			if errors.Is(err, membersvc.ErrForbidden) {
				c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}
