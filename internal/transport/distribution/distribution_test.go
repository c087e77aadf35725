package distribution_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teamdesk/teamdesk/internal/adapter/memory"
	tokenadapter "github.com/teamdesk/teamdesk/internal/adapter/token"
	domainmember "github.com/teamdesk/teamdesk/internal/domain/member"
	distsvc "github.com/teamdesk/teamdesk/internal/service/distribution"
	historysvc "github.com/teamdesk/teamdesk/internal/service/history"
	inboxsvc "github.com/teamdesk/teamdesk/internal/service/inbox"
	"github.com/teamdesk/teamdesk/internal/testutil"
	transportdist "github.com/teamdesk/teamdesk/internal/transport/distribution"
	"github.com/teamdesk/teamdesk/internal/transport/session"
)

func init() { gin.SetMode(gin.TestMode) }

type deps struct {
	members *memory.MemberRepo
	records *memory.DistributionRepo
	tokens  *tokenadapter.JWT
}

func newRouter(t *testing.T) (*gin.Engine, deps) {
	t.Helper()
	d := deps{
		members: memory.NewMemberRepo(),
		records: memory.NewDistributionRepo(),
		tokens:  tokenadapter.NewJWT("test-secret", time.Hour),
	}
	svc := distsvc.NewService(d.records, d.members)
	history := historysvc.NewService(svc, d.members)
	inbox := inboxsvc.NewService(svc, d.members)

	r := gin.New()
	rg := r.Group("/api/distributions", session.RequireAuth(d.tokens))
	transportdist.Register(rg, svc, history, inbox)
	return r, d
}

func bearer(t *testing.T, tokens *tokenadapter.JWT, id uuid.UUID) string {
	t.Helper()
	token, err := tokens.Issue(id)
	require.NoError(t, err)
	return "Bearer " + token
}

func doJSON(r *gin.Engine, method, path, auth string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func createBody(assignees ...uuid.UUID) map[string]interface{} {
	ids := make([]string, len(assignees))
	for i, id := range assignees {
		ids[i] = id.String()
	}
	return map[string]interface{}{
		"title":            "Morning batch",
		"items":            []string{"Alpha", "Beta", "Alpha"},
		"lines_per_member": 1,
		"interval_seconds": 5,
		"assignees":        ids,
	}
}

func TestCreateDistribution(t *testing.T) {
	r, d := newRouter(t)
	admin := testutil.SeedFounder(t, d.members, "ada")
	teammate := testutil.SeedMember(t, d.members, admin.TeamID, "bob", domainmember.RoleMember)

	tests := []struct {
		name     string
		auth     string
		body     interface{}
		wantCode int
	}{
		{
			name:     "success returns 201",
			auth:     bearer(t, d.tokens, admin.ID),
			body:     createBody(teammate.ID),
			wantCode: http.StatusCreated,
		},
		{
			name:     "missing token returns 401",
			auth:     "",
			body:     createBody(teammate.ID),
			wantCode: http.StatusUnauthorized,
		},
		{
			name:     "garbage token returns 401",
			auth:     "Bearer not-a-token",
			body:     createBody(teammate.ID),
			wantCode: http.StatusUnauthorized,
		},
		{
			name:     "non-admin returns 403",
			auth:     bearer(t, d.tokens, teammate.ID),
			body:     createBody(admin.ID),
			wantCode: http.StatusForbidden,
		},
		{
			name:     "missing required fields returns 400",
			auth:     bearer(t, d.tokens, admin.ID),
			body:     map[string]interface{}{"title": "no items"},
			wantCode: http.StatusBadRequest,
		},
		{
			name: "zero chunk size returns 400",
			auth: bearer(t, d.tokens, admin.ID),
			body: func() map[string]interface{} {
				b := createBody(teammate.ID)
				b["lines_per_member"] = 0
				return b
			}(),
			wantCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doJSON(r, http.MethodPost, "/api/distributions", tt.auth, tt.body)
			assert.Equal(t, tt.wantCode, w.Code, w.Body.String())
		})
	}
}

func TestCreateDistribution_ResponseShape(t *testing.T) {
	r, d := newRouter(t)
	admin := testutil.SeedFounder(t, d.members, "ada")
	teammate := testutil.SeedMember(t, d.members, admin.TeamID, "bob", domainmember.RoleMember)

	w := doJSON(r, http.MethodPost, "/api/distributions", bearer(t, d.tokens, admin.ID), createBody(teammate.ID))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var rec struct {
		ID    string `json:"id"`
		Lines []struct {
			ID      string `json:"id"`
			Text    string `json:"text"`
			Preview string `json:"preview"`
		} `json:"lines"`
		Assignments []struct {
			MemberID string `json:"member_id"`
		} `json:"assignments"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &rec))

	assert.NotEmpty(t, rec.ID)
	require.Len(t, rec.Lines, 2, "duplicate item is dropped server-side")
	assert.Equal(t, "line-0", rec.Lines[0].ID)
	assert.Equal(t, "Alpha", rec.Lines[0].Text)
	require.Len(t, rec.Assignments, 1)
	assert.Equal(t, teammate.ID.String(), rec.Assignments[0].MemberID)
}

func TestListDistributions_TeamScoped(t *testing.T) {
	r, d := newRouter(t)
	adminA := testutil.SeedFounder(t, d.members, "ada")
	memberA := testutil.SeedMember(t, d.members, adminA.TeamID, "bob", domainmember.RoleMember)
	adminB := testutil.SeedFounder(t, d.members, "eve")
	memberB := testutil.SeedMember(t, d.members, adminB.TeamID, "mal", domainmember.RoleMember)

	w := doJSON(r, http.MethodPost, "/api/distributions", bearer(t, d.tokens, adminA.ID), createBody(memberA.ID))
	require.Equal(t, http.StatusCreated, w.Code)
	w = doJSON(r, http.MethodPost, "/api/distributions", bearer(t, d.tokens, adminB.ID), createBody(memberB.ID))
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(r, http.MethodGet, "/api/distributions", bearer(t, d.tokens, memberA.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)

	var recs []json.RawMessage
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &recs))
	assert.Len(t, recs, 1)
}

func TestGetHistory(t *testing.T) {
	r, d := newRouter(t)
	admin := testutil.SeedFounder(t, d.members, "ada")
	teammate := testutil.SeedMember(t, d.members, admin.TeamID, "bob", domainmember.RoleMember)

	w := doJSON(r, http.MethodPost, "/api/distributions", bearer(t, d.tokens, admin.ID), createBody(teammate.ID))
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(r, http.MethodGet, "/api/distributions/history", bearer(t, d.tokens, admin.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)

	var entries []struct {
		Sequence int `json:"sequence"`
		Plan     []struct {
			Name string `json:"name"`
		} `json:"plan"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &entries))
	require.Len(t, entries, 1)
	assert.Equal(t, 1, entries[0].Sequence)
	require.Len(t, entries[0].Plan, 1)
	assert.Equal(t, "bob", entries[0].Plan[0].Name)
}

func TestGetInbox(t *testing.T) {
	r, d := newRouter(t)
	admin := testutil.SeedFounder(t, d.members, "ada")
	teammate := testutil.SeedMember(t, d.members, admin.TeamID, "bob", domainmember.RoleMember)

	w := doJSON(r, http.MethodPost, "/api/distributions", bearer(t, d.tokens, admin.ID), createBody(teammate.ID))
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(r, http.MethodGet, "/api/distributions/inbox", bearer(t, d.tokens, teammate.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)

	var queues []struct {
		MemberID   string `json:"member_id"`
		TotalLines int    `json:"total_lines"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &queues))
	require.Len(t, queues, 1)
	assert.Equal(t, teammate.ID.String(), queues[0].MemberID)
	assert.Equal(t, 2, queues[0].TotalLines)
}
