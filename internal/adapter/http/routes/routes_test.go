package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"regexp"
	"strings"
	"testing"
	"time"

	"tractus/internal/adapter/http/middleware"
	"tractus/internal/adapter/persistence/repository"
	"tractus/internal/infrastructure/auth"
	"tractus/internal/infrastructure/config"
	"tractus/internal/infrastructure/database"
	"tractus/internal/infrastructure/metrics"
	"tractus/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
)

const (
	adminEmail = "admin@tractus.com"
	adminSenha = "admin123"
)

type apiClient struct {
	t      *testing.T
	router http.Handler
}

func newAPI(t *testing.T) apiClient {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := database.OpenDialector(sqlite.Open(dsn))
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	require.NoError(t, database.Migrate(db))

	cfg := config.Config{
		NotesBackend:       config.NotesBackendSQL,
		PaymentGatewayMock: true,
		JWTSecret:          "integration-secret-0123456789",
		JWTTTL:             time.Hour,
	}
	ctx := context.Background()
	m := metrics.New()
	tokens := auth.NewTokenManager(cfg.JWTSecret, cfg.JWTTTL)

	h, err := buildHandlers(ctx, cfg, db, m, tokens)
	require.NoError(t, err)

	users := usecase.NewUserUseCase(repository.NewUserGormRepository(db), repository.NewVendedorGormRepository(db))
	created, err := users.EnsureAdmin(ctx, adminEmail, adminSenha)
	require.NoError(t, err)
	require.True(t, created)

	router := NewRouter(h, Options{
		Tokens:         tokens,
		Metrics:        m,
		Logger:         zap.NewNop(),
		AllowedOrigins: []string{"*"},
		AILimiter:      middleware.NewRateLimiter(100, 100),
	})
	return apiClient{t: t, router: router}
}

func (a apiClient) do(method, path, token string, body any) (int, []byte) {
	a.t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(a.t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w.Code, w.Body.Bytes()
}

// must performs the request, checks the status and decodes the body into a generic map.
func (a apiClient) must(want int, method, path, token string, body any) map[string]any {
	a.t.Helper()
	code, raw := a.do(method, path, token, body)
	require.Equalf(a.t, want, code, "%s %s: %s", method, path, raw)
	out := map[string]any{}
	if len(raw) > 0 && raw[0] == '{' {
		require.NoError(a.t, json.Unmarshal(raw, &out))
	}
	return out
}

func (a apiClient) login(email, senha string) string {
	a.t.Helper()
	body := a.must(http.StatusOK, http.MethodPost, "/v1/auth/login", "", map[string]any{"email": email, "senha": senha})
	token, _ := body["token"].(string)
	require.NotEmpty(a.t, token)
	return token
}

func TestPublicAndProtectedRoutes(t *testing.T) {
	api := newAPI(t)

	api.must(http.StatusOK, http.MethodGet, "/v1/ping", "", nil)
	api.must(http.StatusUnauthorized, http.MethodGet, "/v1/clientes", "", nil)
	api.must(http.StatusUnauthorized, http.MethodGet, "/v1/clientes", "not-a-jwt", nil)
	api.must(http.StatusUnauthorized, http.MethodPost, "/v1/auth/login", "", map[string]any{"email": adminEmail, "senha": "wrong-pass"})

	admin := api.login(adminEmail, adminSenha)
	me := api.must(http.StatusOK, http.MethodGet, "/v1/auth/me", admin, nil)
	require.Equal(t, "ADMIN", me["role"])

	code, raw := api.do(http.MethodGet, "/metrics", "", nil)
	require.Equal(t, http.StatusOK, code)
	require.Contains(t, string(raw), "tractus_http_requests_total")
}

func TestRoleGates(t *testing.T) {
	api := newAPI(t)
	admin := api.login(adminEmail, adminSenha)

	api.must(http.StatusCreated, http.MethodPost, "/v1/usuarios", admin, map[string]any{
		"nome": "Bruno Vendedor", "email": "bruno@tractus.com", "senha": "bruno123", "role": "VENDEDOR",
	})
	api.must(http.StatusConflict, http.MethodPost, "/v1/usuarios", admin, map[string]any{
		"nome": "Outro", "email": "BRUNO@tractus.com", "senha": "bruno123", "role": "TECNICO",
	})

	vendedor := api.login("bruno@tractus.com", "bruno123")
	api.must(http.StatusForbidden, http.MethodGet, "/v1/usuarios", vendedor, nil)
	api.must(http.StatusForbidden, http.MethodPut, "/v1/manutencao/configuracoes/PNEUS", vendedor, map[string]any{"intervalo_km": 30000})
	api.must(http.StatusOK, http.MethodPut, "/v1/manutencao/configuracoes/PNEUS", admin, map[string]any{"intervalo_km": 30000})

	code, raw := api.do(http.MethodGet, "/v1/vendedores", vendedor, nil)
	require.Equal(t, http.StatusOK, code)
	var vendedores []map[string]any
	require.NoError(t, json.Unmarshal(raw, &vendedores))
	require.Len(t, vendedores, 1)
}

func TestSalesPipeline(t *testing.T) {
	api := newAPI(t)
	admin := api.login(adminEmail, adminSenha)

	cliente := api.must(http.StatusCreated, http.MethodPost, "/v1/clientes", admin, map[string]any{
		"nome": "Mineração São João", "documento": "12.345.678/0001-90", "uf": "mg",
	})
	clienteID := cliente["id"].(string)

	proposta := api.must(http.StatusCreated, http.MethodPost, "/v1/propostas", admin, map[string]any{
		"cliente_id": clienteID,
		"titulo":     "Reforma de esteira",
		"itens": []map[string]any{
			{"descricao": "Esteira", "quantidade": 2, "valor_unitario": 1000},
			{"descricao": "Mão de obra", "quantidade": 1, "valor_unitario": 500},
		},
	})
	require.Equal(t, "PROP-000001", proposta["numero"])
	require.Equal(t, "R$ 2.500,00", proposta["valor_formatado"])
	propostaID := proposta["id"].(string)

	api.must(http.StatusBadRequest, http.MethodPost, "/v1/ordens-servico", admin, map[string]any{"proposta_id": propostaID})
	for _, status := range []string{"ENVIADA", "APROVADA"} {
		api.must(http.StatusOK, http.MethodPatch, "/v1/propostas/"+propostaID+"/status", admin, map[string]any{"status": status})
	}
	api.must(http.StatusConflict, http.MethodDelete, "/v1/clientes/"+clienteID, admin, nil)

	ordem := api.must(http.StatusCreated, http.MethodPost, "/v1/ordens-servico", admin, map[string]any{"proposta_id": propostaID})
	require.Equal(t, "OS-000001", ordem["numero"])
	ordemID := ordem["id"].(string)
	api.must(http.StatusConflict, http.MethodPost, "/v1/ordens-servico", admin, map[string]any{"proposta_id": propostaID})

	for _, status := range []string{"EM_EXECUCAO", "CONCLUIDA", "FATURADA"} {
		api.must(http.StatusOK, http.MethodPatch, "/v1/ordens-servico/"+ordemID+"/status", admin, map[string]any{"status": status})
	}

	code, raw := api.do(http.MethodGet, "/v1/vendas", admin, nil)
	require.Equal(t, http.StatusOK, code)
	var vendas []map[string]any
	require.NoError(t, json.Unmarshal(raw, &vendas))
	require.Len(t, vendas, 1)
	require.Equal(t, ordemID, vendas[0]["ordem_servico_id"])
	vendaID := vendas[0]["id"].(string)

	paga := api.must(http.StatusOK, http.MethodPost, "/v1/vendas/"+vendaID+"/pagamento", admin, map[string]any{
		"mp_payload": map[string]any{"payment_method_id": "pix", "transaction_amount": 1},
	})
	require.Equal(t, "PAGO", paga["status_pagamento"])
	require.Equal(t, 2500.0, paga["valor"])
	api.must(http.StatusConflict, http.MethodPost, "/v1/vendas/"+vendaID+"/pagamento", admin, map[string]any{})

	dashboard := api.must(http.StatusOK, http.MethodGet, "/v1/dashboard/resumo", admin, nil)
	require.Len(t, dashboard["vendas_por_mes"], 12)
}

func TestVisitWorkflow(t *testing.T) {
	api := newAPI(t)
	admin := api.login(adminEmail, adminSenha)

	cliente := api.must(http.StatusCreated, http.MethodPost, "/v1/clientes", admin, map[string]any{"nome": "Pedreira Norte"})
	visita := api.must(http.StatusCreated, http.MethodPost, "/v1/visitas-tecnicas", admin, map[string]any{
		"cliente_id":    cliente["id"],
		"data_agendada": time.Now().Add(24 * time.Hour).UTC().Format(time.RFC3339),
	})
	visitaID := visita["id"].(string)
	require.Equal(t, "PENDENTE", visita["status"])

	laudoBody := map[string]any{
		"visita_id":   visitaID,
		"equipamento": "Escavadeira 320D",
		"horimetro":   8450.5,
		"componentes": []map[string]any{
			{"nome": "Esteira", "condicao": "RUIM"},
			{"nome": "Motor", "condicao": "BOM"},
		},
	}
	laudo := api.must(http.StatusCreated, http.MethodPost, "/v1/laudos", admin, laudoBody)
	require.Regexp(t, regexp.MustCompile(`^\d{2}/\d{2}/\d{4}-0001$`), laudo["numero"])
	api.must(http.StatusBadRequest, http.MethodPost, "/v1/laudos", admin, laudoBody)

	numerada := api.must(http.StatusOK, http.MethodGet, "/v1/visitas-tecnicas/"+visitaID, admin, nil)
	require.Equal(t, laudo["numero"], numerada["numero"])

	laudoID := laudo["id"].(string)
	enviado := api.must(http.StatusOK, http.MethodPatch, "/v1/laudos/"+laudoID+"/enviar", admin, nil)
	require.Equal(t, "ENVIADO", enviado["status"])
	api.must(http.StatusBadRequest, http.MethodPatch, "/v1/laudos/"+laudoID+"/enviar", admin, nil)

	realizada := api.must(http.StatusOK, http.MethodGet, "/v1/visitas-tecnicas/"+visitaID, admin, nil)
	require.Equal(t, "REALIZADA", realizada["status"])
	api.must(http.StatusBadRequest, http.MethodPatch, "/v1/visitas-tecnicas/"+visitaID+"/status", admin, map[string]any{"status": "CANCELADA", "motivo": "x"})
	api.must(http.StatusBadRequest, http.MethodDelete, "/v1/visitas-tecnicas/"+visitaID, admin, nil)
	api.must(http.StatusBadRequest, http.MethodDelete, "/v1/laudos/"+laudoID, admin, nil)

	// Without GEMINI_API_KEY the text comes back untouched.
	correcao := api.must(http.StatusOK, http.MethodPost, "/v1/laudos/corrigir-texto", admin, map[string]any{"texto": "mangueira vasando oleo"})
	require.Equal(t, "mangueira vasando oleo", correcao["texto_corrigido"])
	require.Equal(t, false, correcao["corrigido"])
}

func TestFleetExpenses(t *testing.T) {
	api := newAPI(t)
	admin := api.login(adminEmail, adminSenha)

	api.must(http.StatusCreated, http.MethodPost, "/v1/usuarios", admin, map[string]any{
		"nome": "Carla", "email": "carla@tractus.com", "senha": "carla123", "role": "VENDEDOR",
	})
	code, raw := api.do(http.MethodGet, "/v1/vendedores", admin, nil)
	require.Equal(t, http.StatusOK, code)
	var vendedores []map[string]any
	require.NoError(t, json.Unmarshal(raw, &vendedores))
	require.Len(t, vendedores, 1)
	vendedorID := vendedores[0]["id"].(string)

	api.must(http.StatusOK, http.MethodPut, "/v1/manutencao/configuracoes/TROCA_OLEO", admin, map[string]any{"intervalo_km": 10000})

	despesa := func(data string, tipo string, odometro int) map[string]any {
		return map[string]any{"vendedor_id": vendedorID, "data": data, "tipo": tipo, "valor": 150, "odometro": odometro}
	}
	api.must(http.StatusCreated, http.MethodPost, "/v1/despesas-veiculo", admin, despesa("2026-01-05", "TROCA_OLEO", 10000))
	api.must(http.StatusCreated, http.MethodPost, "/v1/despesas-veiculo", admin, despesa("2026-02-10", "COMBUSTIVEL", 18000))
	api.must(http.StatusBadRequest, http.MethodPost, "/v1/despesas-veiculo", admin, despesa("2026-02-11", "COMBUSTIVEL", 17999))

	code, raw = api.do(http.MethodGet, "/v1/manutencao/alertas/"+vendedorID, admin, nil)
	require.Equal(t, http.StatusOK, code)
	var alertas []map[string]any
	require.NoError(t, json.Unmarshal(raw, &alertas))
	require.Len(t, alertas, 1)
	require.Equal(t, "PROXIMO", alertas[0]["status"])

	code, raw = api.do(http.MethodGet, "/v1/relatorios/despesas?ano=2026&vendedor_id="+vendedorID, admin, nil)
	require.Equal(t, http.StatusOK, code)
	var resumo []map[string]any
	require.NoError(t, json.Unmarshal(raw, &resumo))
	require.Len(t, resumo, 2)
}

func TestBootstrap(t *testing.T) {
	db, err := database.OpenDialector(sqlite.Open("file:bootstrap_test?mode=memory&cache=shared&_foreign_keys=on"))
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	require.NoError(t, database.Migrate(db))

	cfg := config.Config{
		MaintenanceSeedFile: "../../../../configs/manutencao.yaml",
		AdminEmail:          "Root@Tractus.com",
		AdminPassword:       "root1234",
	}
	ctx := context.Background()
	require.NoError(t, Bootstrap(ctx, cfg, db))
	require.NoError(t, Bootstrap(ctx, cfg, db))

	n, err := repository.NewConfiguracaoManutencaoGormRepository(db).Count(ctx)
	require.NoError(t, err)
	require.Positive(t, n)

	admin, err := repository.NewUserGormRepository(db).GetByEmail(ctx, "root@tractus.com")
	require.NoError(t, err)
	require.NotEmpty(t, admin.ID)

	cfg.MaintenanceSeedFile = "does-not-exist.yaml"
	require.NoError(t, Bootstrap(ctx, cfg, db))
}
