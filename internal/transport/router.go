package transport

import (
	"github.com/gin-gonic/gin"

	porttoken "github.com/teamdesk/teamdesk/internal/port/token"
	authsvc "github.com/teamdesk/teamdesk/internal/service/auth"
	chatsvc "github.com/teamdesk/teamdesk/internal/service/chat"
	distsvc "github.com/teamdesk/teamdesk/internal/service/distribution"
	historysvc "github.com/teamdesk/teamdesk/internal/service/history"
	inboxsvc "github.com/teamdesk/teamdesk/internal/service/inbox"
	membersvc "github.com/teamdesk/teamdesk/internal/service/member"
	salessvc "github.com/teamdesk/teamdesk/internal/service/sales"

	authhandler "github.com/teamdesk/teamdesk/internal/transport/auth"
	chathandler "github.com/teamdesk/teamdesk/internal/transport/chat"
	disthandler "github.com/teamdesk/teamdesk/internal/transport/distribution"
	memberhandler "github.com/teamdesk/teamdesk/internal/transport/member"
	saleshandler "github.com/teamdesk/teamdesk/internal/transport/sales"
	"github.com/teamdesk/teamdesk/internal/transport/session"
)

type Services struct {
	Auth    *authsvc.Service
	Members *membersvc.Service
	Dist    *distsvc.Service
	History *historysvc.Service
	Inbox   *inboxsvc.Service
	Chat    *chatsvc.Service
	Sales   *salessvc.Service
	Tokens  porttoken.Issuer
}

func NewRouter(svcs Services) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(gin.Recovery())
	r.Use(RequestLogger())
	r.Use(CORSMiddleware())

	api := r.Group("/api")
	api.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	authhandler.Register(api.Group("/auth"), svcs.Auth)

	// Everything below carries a verified member identity; role checks happen
	// in the services.
	protected := api.Group("", session.RequireAuth(svcs.Tokens))
	authhandler.RegisterProtected(protected.Group("/auth"), svcs.Auth)
	memberhandler.Register(protected.Group("/team"), svcs.Members)
	disthandler.Register(protected.Group("/distributions"), svcs.Dist, svcs.History, svcs.Inbox)
	chathandler.Register(protected.Group("/chat"), svcs.Chat)
	saleshandler.Register(protected.Group("/sales"), svcs.Sales)

	return r
}
