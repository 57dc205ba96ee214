package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gymflow/gymflow-golang/internal/auth"
	"github.com/gymflow/gymflow-golang/internal/chat"
	"github.com/gymflow/gymflow-golang/internal/handlers"
	"github.com/gymflow/gymflow-golang/internal/logger"
	"github.com/gymflow/gymflow-golang/internal/routes"
	"github.com/gymflow/gymflow-golang/internal/storage"
	"github.com/gymflow/gymflow-golang/internal/store"
	"github.com/gymflow/gymflow-golang/internal/views"
)

// echoBridge answers every assistant question with a canned reply.
type echoBridge struct {
	reply string
	err   error
}

func (b *echoBridge) Send(_ context.Context, _ string, _ store.Snapshot) (string, error) {
	return b.reply, b.err
}

type testApp struct {
	router *gin.Engine
	store  *store.Store
	kv     *storage.KV
}

func newTestApp(t *testing.T, bridge chat.Sender) *testApp {
	t.Helper()
	gin.SetMode(gin.TestMode)

	kv, err := storage.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { kv.Close() })

	recordStore := store.New()
	if bridge == nil {
		bridge = &echoBridge{reply: "ok"}
	}

	app := &handlers.Handlers{
		Store: recordStore,
		Auth:  auth.NewGate(recordStore, kv),
		Chat:  chat.New(recordStore, kv, bridge),
		Views: views.NewRouter(views.Landing),
		Log:   logger.Get(),
	}
	return &testApp{router: routes.SetupRouter(app), store: recordStore, kv: kv}
}

func (a *testApp) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	a.router.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

// --- Auth flow ---

func TestAuthFlow(t *testing.T) {
	app := newTestApp(t, nil)

	// Unknown email: redirect signal, not a hard failure.
	rec := app.do(t, http.MethodPost, "/v1/auth/login", gin.H{"email": "a@x.com", "password": "secret1"})
	assert.Equal(t, http.StatusNotFound, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, "register", body["redirect"])
	assert.Contains(t, body["message"], "a@x.com")

	// Weak password rejected.
	rec = app.do(t, http.MethodPost, "/v1/auth/register", gin.H{"email": "a@x.com", "password": "abc12", "academyName": "Iron Gym"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// Registration succeeds and behaves as a login.
	rec = app.do(t, http.MethodPost, "/v1/auth/register", gin.H{"email": "a@x.com", "password": "secret1", "academyName": "Iron Gym"})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = app.do(t, http.MethodGet, "/v1/auth/me", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	user := decode(t, rec)["user"].(map[string]any)
	assert.Equal(t, "a@x.com", user["email"])
	assert.Equal(t, "Iron Gym", user["academyName"])
	assert.NotContains(t, user, "password")

	// Duplicate registration.
	rec = app.do(t, http.MethodPost, "/v1/auth/register", gin.H{"email": "a@x.com", "password": "secret2", "academyName": "Other"})
	assert.Equal(t, http.StatusConflict, rec.Code)

	// Wrong password.
	rec = app.do(t, http.MethodPost, "/v1/auth/login", gin.H{"email": "a@x.com", "password": "wrong"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// Logout clears the session.
	rec = app.do(t, http.MethodPost, "/v1/auth/logout", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	rec = app.do(t, http.MethodGet, "/v1/auth/me", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

// --- Students ---

func studentBody() gin.H {
	return gin.H{
		"name":     "Carlos Silva",
		"whatsapp": "11999999999",
		"plan":     "Mensal",
		"value":    90.00,
		"dueDate":  "2023-11-10",
	}
}

func TestStudentCRUD(t *testing.T) {
	app := newTestApp(t, nil)

	rec := app.do(t, http.MethodPost, "/v1/students", studentBody())
	require.Equal(t, http.StatusCreated, rec.Code)
	created := decode(t, rec)["student"].(map[string]any)
	id := created["id"].(string)
	require.NotEmpty(t, id)
	// Status defaults to active.
	assert.Equal(t, "active", created["status"])
	assert.Equal(t, 90.0, created["value"])
	assert.Equal(t, "2023-11-10", created["dueDate"])

	// Unknown plan is rejected at the form boundary.
	bad := studentBody()
	bad["plan"] = "Vitalício"
	rec = app.do(t, http.MethodPost, "/v1/students", bad)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// Status change is an explicit operator action.
	rec = app.do(t, http.MethodPatch, "/v1/students/"+id+"/status", gin.H{"status": "overdue", "daysOverdue": 5})
	require.Equal(t, http.StatusOK, rec.Code)
	updated := decode(t, rec)["student"].(map[string]any)
	assert.Equal(t, "overdue", updated["status"])
	assert.Equal(t, 5.0, updated["daysOverdue"])

	rec = app.do(t, http.MethodPatch, "/v1/students/ghost/status", gin.H{"status": "active"})
	assert.Equal(t, http.StatusNotFound, rec.Code)

	// Full edit replaces the record; omitting the status keeps the
	// current one.
	edit := studentBody()
	edit["name"] = "Carlos A. Silva"
	rec = app.do(t, http.MethodPut, "/v1/students/"+id, edit)
	require.Equal(t, http.StatusOK, rec.Code)
	edited := decode(t, rec)["student"].(map[string]any)
	assert.Equal(t, "Carlos A. Silva", edited["name"])
	assert.Equal(t, "overdue", edited["status"])

	// Editing an unknown id saves nothing and says so.
	rec = app.do(t, http.MethodPut, "/v1/students/ghost", studentBody())
	assert.Equal(t, http.StatusNotFound, rec.Code)

	// Search.
	rec = app.do(t, http.MethodGet, "/v1/students?q=carlos", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode(t, rec)["students"], 1)

	// Delete, then delete again: both fine.
	rec = app.do(t, http.MethodDelete, "/v1/students/"+id, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	rec = app.do(t, http.MethodDelete, "/v1/students/"+id, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = app.do(t, http.MethodGet, "/v1/students", nil)
	assert.Len(t, decode(t, rec)["students"], 0)
}

// --- Transactions + dashboard ---

func TestTransactionsAndDashboardAgree(t *testing.T) {
	app := newTestApp(t, nil)

	rec := app.do(t, http.MethodPost, "/v1/transactions", gin.H{
		"description": "Mensalidade - Carlos", "category": "Mensalidade", "amount": 100.00, "type": "income",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = app.do(t, http.MethodPost, "/v1/transactions", gin.H{
		"description": "Produtos de Limpeza", "category": "Limpeza", "amount": 40.00, "type": "expense",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	// Newest first, balance on the list.
	rec = app.do(t, http.MethodGet, "/v1/transactions", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	txs := body["transactions"].([]any)
	require.Len(t, txs, 2)
	assert.Equal(t, "Produtos de Limpeza", txs[0].(map[string]any)["description"])
	assert.Equal(t, 60.0, body["balance"])

	// The overview's profit is the same number.
	rec = app.do(t, http.MethodGet, "/v1/dashboard/stats", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	overview := decode(t, rec)
	assert.Equal(t, 100.0, overview["revenue"])
	assert.Equal(t, 40.0, overview["expenses"])
	assert.Equal(t, 60.0, overview["profit"])

	// Category outside the curated set for the type.
	rec = app.do(t, http.MethodPost, "/v1/transactions", gin.H{
		"description": "x", "category": "Aluguel", "amount": 1.00, "type": "income",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// Delete is idempotent.
	id := txs[0].(map[string]any)["id"].(string)
	rec = app.do(t, http.MethodDelete, "/v1/transactions/"+id, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	rec = app.do(t, http.MethodDelete, "/v1/transactions/"+id, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestDashboardNegativeProfit(t *testing.T) {
	app := newTestApp(t, nil)

	rec := app.do(t, http.MethodPost, "/v1/transactions", gin.H{
		"description": "Mensalidade - Ana", "category": "Mensalidade", "amount": 90.00, "type": "income",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = app.do(t, http.MethodPost, "/v1/transactions", gin.H{
		"description": "Aluguel do galpão", "category": "Aluguel", "amount": 105.50, "type": "expense",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	// Expenses above revenue: profit and balance go negative and must
	// still render as valid JSON.
	rec = app.do(t, http.MethodGet, "/v1/dashboard/stats", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	overview := decode(t, rec)
	assert.Equal(t, 90.0, overview["revenue"])
	assert.Equal(t, 105.5, overview["expenses"])
	assert.Equal(t, -15.5, overview["profit"])

	rec = app.do(t, http.MethodGet, "/v1/transactions", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, -15.5, decode(t, rec)["balance"])
}

func TestCategoriesEndpoint(t *testing.T) {
	app := newTestApp(t, nil)

	rec := app.do(t, http.MethodGet, "/v1/transactions/categories", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	assert.Contains(t, body["expense"], "Aluguel")
	assert.Contains(t, body["income"], "Mensalidade")
}

// --- Assistant ---

func TestAssistantChat(t *testing.T) {
	app := newTestApp(t, &echoBridge{reply: "Seu lucro foi R$ 60.00 💰"})

	rec := app.do(t, http.MethodGet, "/v1/assistant/messages", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode(t, rec)["messages"], 1) // seed greeting

	rec = app.do(t, http.MethodPost, "/v1/assistant/chat", gin.H{"message": "Qual foi o lucro?"})
	require.Equal(t, http.StatusOK, rec.Code)
	reply := decode(t, rec)["reply"].(map[string]any)
	assert.Equal(t, "assistant", reply["role"])
	assert.Equal(t, "Seu lucro foi R$ 60.00 💰", reply["content"])

	rec = app.do(t, http.MethodGet, "/v1/assistant/messages", nil)
	assert.Len(t, decode(t, rec)["messages"], 3)

	// Clearing resets to exactly one message.
	rec = app.do(t, http.MethodPost, "/v1/assistant/clear", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	rec = app.do(t, http.MethodGet, "/v1/assistant/messages", nil)
	assert.Len(t, decode(t, rec)["messages"], 1)
}

func TestAssistantFailureStillReturnsText(t *testing.T) {
	app := newTestApp(t, &echoBridge{err: context.DeadlineExceeded})

	rec := app.do(t, http.MethodPost, "/v1/assistant/chat", gin.H{"message": "Oi"})
	require.Equal(t, http.StatusOK, rec.Code)
	reply := decode(t, rec)["reply"].(map[string]any)
	assert.Contains(t, reply["content"], "Ocorreu um erro ao conectar com a IA")
}

// --- View router ---

func TestViewNavigation(t *testing.T) {
	app := newTestApp(t, nil)

	rec := app.do(t, http.MethodGet, "/v1/view", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "landing", decode(t, rec)["view"])

	rec = app.do(t, http.MethodPut, "/v1/view", gin.H{"view": "students"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "students", decode(t, rec)["view"])

	rec = app.do(t, http.MethodPut, "/v1/view", gin.H{"view": "admin"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
