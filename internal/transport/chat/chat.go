package chat

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	portchat "github.com/teamdesk/teamdesk/internal/port/chat"
	chatsvc "github.com/teamdesk/teamdesk/internal/service/chat"
	"github.com/teamdesk/teamdesk/internal/transport/session"
)

func Register(rg *gin.RouterGroup, svc *chatsvc.Service) {
	rg.GET("/conversations", listConversations(svc))
	rg.POST("/conversations", createConversation(svc))
	rg.GET("/:conversationId/messages", listMessages(svc))
	rg.POST("/:conversationId/messages", postMessage(svc))
}

func listConversations(svc *chatsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		callerID, ok := session.CallerID(c)
		if !ok {
			return
		}

		convs, err := svc.ListConversations(c.Request.Context(), callerID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, convs)
	}
}

type createConversationReq struct {
	Title     string      `json:"title"`
	MemberIDs []uuid.UUID `json:"member_ids" binding:"required"`
}

func createConversation(svc *chatsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		callerID, ok := session.CallerID(c)
		if !ok {
			return
		}

		var req createConversationReq
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		conv, err := svc.CreateConversation(c.Request.Context(), callerID, req.Title, req.MemberIDs)
		if err != nil {
			if errors.Is(err, chatsvc.ErrNoMembers) {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, conv)
	}
}

func listMessages(svc *chatsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		callerID, ok := session.CallerID(c)
		if !ok {
			return
		}

		convID, err := uuid.Parse(c.Param("conversationId"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid conversation id"})
			return
		}

		msgs, err := svc.ListMessages(c.Request.Context(), callerID, convID)
		if err != nil {
			c.JSON(chatStatus(err), gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, msgs)
	}
}

type postMessageReq struct {
	Content string `json:"content" binding:"required"`
}

func postMessage(svc *chatsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		callerID, ok := session.CallerID(c)
		if !ok {
			return
		}

		convID, err := uuid.Parse(c.Param("conversationId"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid conversation id"})
			return
		}

		var req postMessageReq
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		msg, err := svc.PostMessage(c.Request.Context(), callerID, convID, req.Content)
		if err != nil {
			c.JSON(chatStatus(err), gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, msg)
	}
}

func chatStatus(err error) int {
	switch {
	case errors.Is(err, portchat.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, chatsvc.ErrNotParticipant):
		return http.StatusForbidden
	case errors.Is(err, chatsvc.ErrEmptyMessage):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
