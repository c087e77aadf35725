package wire

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/teamdesk/teamdesk/internal/adapter/memory"
	pgdb "github.com/teamdesk/teamdesk/internal/adapter/postgres"
	pgchat "github.com/teamdesk/teamdesk/internal/adapter/postgres/chat"
	pgdist "github.com/teamdesk/teamdesk/internal/adapter/postgres/distribution"
	pgmember "github.com/teamdesk/teamdesk/internal/adapter/postgres/member"
	pgsales "github.com/teamdesk/teamdesk/internal/adapter/postgres/sales"
	"github.com/teamdesk/teamdesk/internal/adapter/token"

	portchat "github.com/teamdesk/teamdesk/internal/port/chat"
	portdist "github.com/teamdesk/teamdesk/internal/port/distribution"
	portmember "github.com/teamdesk/teamdesk/internal/port/member"
	portsales "github.com/teamdesk/teamdesk/internal/port/sales"

	authsvc "github.com/teamdesk/teamdesk/internal/service/auth"
	chatsvc "github.com/teamdesk/teamdesk/internal/service/chat"
	distsvc "github.com/teamdesk/teamdesk/internal/service/distribution"
	historysvc "github.com/teamdesk/teamdesk/internal/service/history"
	inboxsvc "github.com/teamdesk/teamdesk/internal/service/inbox"
	membersvc "github.com/teamdesk/teamdesk/internal/service/member"
	salessvc "github.com/teamdesk/teamdesk/internal/service/sales"

	"github.com/teamdesk/teamdesk/internal/transport"
)

const tokenTTL = 30 * 24 * time.Hour

// App holds the top-level resources needed to run and gracefully stop the server.
type App struct {
	Pool   *pgxpool.Pool // nil when running on the in-memory store
	Server *http.Server
}

// Build is the composition root: the only place concrete types are wired to
// their interface dependencies. With DATABASE_URL unset the server runs
// entirely on the in-memory adapters, which is how local development and the
// test suite use it.
func Build(ctx context.Context) (*App, error) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "dev_jwt_secret_change_me"
		slog.Warn("JWT_SECRET not set, using development default")
	}
	tokens := token.NewJWT(secret, tokenTTL)

	// ── Adapters ─────────────────────────────────────────────────────────────
	var (
		pool       *pgxpool.Pool
		memberRepo portmember.Repository
		distRepo   portdist.Repository
		chatRepo   portchat.Repository
		salesRepo  portsales.Repository
	)

	if dbURL := os.Getenv("DATABASE_URL"); dbURL != "" {
		var err error
		pool, err = pgdb.Connect(ctx, dbURL)
		if err != nil {
			return nil, fmt.Errorf("connecting to database: %w", err)
		}
		memberRepo = pgmember.New(pool)
		distRepo = pgdist.New(pool)
		chatRepo = pgchat.New(pool)
		salesRepo = pgsales.New(pool)
	} else {
		slog.Warn("DATABASE_URL not set, using in-memory store")
		memberRepo = memory.NewMemberRepo()
		distRepo = memory.NewDistributionRepo()
		chatRepo = memory.NewChatRepo()
		salesRepo = memory.NewSalesRepo()
	}

	// ── Services ─────────────────────────────────────────────────────────────
	distSvc := distsvc.NewService(distRepo, memberRepo)

	svcs := transport.Services{
		Auth:    authsvc.NewService(memberRepo, tokens),
		Members: membersvc.NewService(memberRepo),
		Dist:    distSvc,
		History: historysvc.NewService(distSvc, memberRepo),
		Inbox:   inboxsvc.NewService(distSvc, memberRepo),
		Chat:    chatsvc.NewService(chatRepo, memberRepo),
		Sales:   salessvc.NewService(salesRepo, memberRepo),
		Tokens:  tokens,
	}

	// ── Transport ────────────────────────────────────────────────────────────
	router := transport.NewRouter(svcs)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	server := &http.Server{
		Addr:    ":" + port,
		Handler: router,
	}

	slog.Info("application wired", "port", port, "postgres", pool != nil)

	return &App{Pool: pool, Server: server}, nil
}
