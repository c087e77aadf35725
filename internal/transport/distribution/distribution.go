package distribution

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	distsvc "github.com/teamdesk/teamdesk/internal/service/distribution"
	historysvc "github.com/teamdesk/teamdesk/internal/service/history"
	inboxsvc "github.com/teamdesk/teamdesk/internal/service/inbox"
	"github.com/teamdesk/teamdesk/internal/transport/session"
)

func Register(rg *gin.RouterGroup, svc *distsvc.Service, history *historysvc.Service, inbox *inboxsvc.Service) {
	rg.POST("", createDistribution(svc))
	rg.GET("", listDistributions(svc))
	rg.GET("/history", getHistory(history))
	rg.GET("/inbox", getInbox(inbox))
}

type createDistributionReq struct {
	Title           string      `json:"title" binding:"required"`
	Items           []string    `json:"items" binding:"required"`
	LinesPerMember  int         `json:"lines_per_member"`
	IntervalSeconds int         `json:"interval_seconds"`
	Assignees       []uuid.UUID `json:"assignees" binding:"required"`
}

func createDistribution(svc *distsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		callerID, ok := session.CallerID(c)
		if !ok {
			return
		}

		var req createDistributionReq
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		rec, err := svc.Create(c.Request.Context(), callerID, distsvc.CreateInput{
			Title:           req.Title,
			Items:           req.Items,
			LinesPerMember:  req.LinesPerMember,
			IntervalSeconds: req.IntervalSeconds,
			AssigneeIDs:     req.Assignees,
		})
		if err != nil {
			c.JSON(createStatus(err), gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, rec)
	}
}

func createStatus(err error) int {
	switch {
	case errors.Is(err, distsvc.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, distsvc.ErrTitleRequired),
		errors.Is(err, distsvc.ErrNoLines),
		errors.Is(err, distsvc.ErrNoAssignees),
		errors.Is(err, distsvc.ErrInvalidChunk),
		errors.Is(err, distsvc.ErrInvalidInterval):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func listDistributions(svc *distsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		callerID, ok := session.CallerID(c)
		if !ok {
			return
		}

		recs, err := svc.ListForMember(c.Request.Context(), callerID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, recs)
	}
}

func getHistory(svc *historysvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		callerID, ok := session.CallerID(c)
		if !ok {
			return
		}

		entries, err := svc.ForMember(c.Request.Context(), callerID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, entries)
	}
}

func getInbox(svc *inboxsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		callerID, ok := session.CallerID(c)
		if !ok {
			return
		}

		queues, err := svc.ForMember(c.Request.Context(), callerID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, queues)
	}
}
