package sales

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	domainsales "github.com/teamdesk/teamdesk/internal/domain/sales"
	salessvc "github.com/teamdesk/teamdesk/internal/service/sales"
	"github.com/teamdesk/teamdesk/internal/transport/session"
)

func Register(rg *gin.RouterGroup, svc *salessvc.Service) {
	rg.GET("", listSales(svc))
	rg.GET("/:memberId", getSales(svc))
	rg.PUT("/:memberId", upsertSales(svc))
}

func listSales(svc *salessvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := session.CallerID(c); !ok {
			return
		}

		rows, err := svc.List(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, rows)
	}
}

func getSales(svc *salessvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := session.CallerID(c); !ok {
			return
		}

		memberID, err := uuid.Parse(c.Param("memberId"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid member id"})
			return
		}

		row, err := svc.GetForMember(c.Request.Context(), memberID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, row)
	}
}

type upsertSalesReq struct {
	Today   int    `json:"today"`
	Weekly  int    `json:"weekly"`
	Monthly int    `json:"monthly"`
	Tier    string `json:"tier"`
}

func upsertSales(svc *salessvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		callerID, ok := session.CallerID(c)
		if !ok {
			return
		}

		memberID, err := uuid.Parse(c.Param("memberId"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid member id"})
			return
		}

		var req upsertSalesReq
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		row, err := svc.Upsert(c.Request.Context(), callerID, memberID, salessvc.UpsertInput{
			Today:   req.Today,
			Weekly:  req.Weekly,
			Monthly: req.Monthly,
			Tier:    domainsales.Tier(req.Tier),
		})
		if err != nil {
			if errors.Is(err, salessvc.ErrForbidden) {
				c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, row)
	}
}
