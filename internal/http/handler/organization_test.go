package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/gin-gonic/gin"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"orgbook.app/api-server/internal/http/handler"
	"orgbook.app/api-server/internal/http/middleware"
	"orgbook.app/api-server/internal/http/router"
	"orgbook.app/api-server/internal/model"
	"orgbook.app/api-server/internal/service"
	"orgbook.app/api-server/internal/token"
)

var _ = Describe("OrganizationHandler", func() {
	const secret = "test-signing-secret"

	var (
		engine *gin.Engine
		svc    *mockOrganizationService
		issuer *token.Issuer
	)

	BeforeEach(func() {
		gin.SetMode(gin.TestMode)
		svc = &mockOrganizationService{}
		issuer = token.NewIssuer(secret)

		engine = gin.New()
		group := engine.Group("/api/v1")
		group.Use(middleware.RequireAuth(token.NewVerifier(secret)))
		router.OrganizationRouter(group.Group("/organizations"), handler.NewOrganizationHandler(svc))
	})

	do := func(tenant, method, path string, body io.Reader) *httptest.ResponseRecorder {
		req := httptest.NewRequest(method, path, body)
		if body != nil {
			req.Header.Set("Content-Type", "application/json")
		}
		if tenant != "" {
			signed, err := issuer.Issue(tenant, time.Hour)
			Expect(err).NotTo(HaveOccurred())
			req.Header.Set("Authorization", "Bearer "+signed)
		}
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, req)
		return w
	}

	It("returns 401 for every route without a token", func() {
		Expect(do("", http.MethodGet, "/api/v1/organizations", nil).Code).To(Equal(http.StatusUnauthorized))
		Expect(do("", http.MethodGet, "/api/v1/organizations/1", nil).Code).To(Equal(http.StatusUnauthorized))
		Expect(do("", http.MethodPost, "/api/v1/organizations", bytes.NewBufferString(`{"name":"Acme"}`)).Code).To(Equal(http.StatusUnauthorized))
		Expect(do("", http.MethodPut, "/api/v1/organizations/1", bytes.NewBufferString(`{"name":"Acme"}`)).Code).To(Equal(http.StatusUnauthorized))
		Expect(do("", http.MethodDelete, "/api/v1/organizations/1", nil).Code).To(Equal(http.StatusUnauthorized))
	})

	Describe("GET /organizations", func() {
		It("returns the tenant's organizations in service order", func() {
			svc.listFn = func(_ context.Context, tenantID string) ([]model.Organization, error) {
				Expect(tenantID).To(Equal("t1"))
				return []model.Organization{
					{ID: 1, TenantID: "t1", Name: "Alpha"},
					{ID: 2, TenantID: "t1", Name: "Mid"},
					{ID: 3, TenantID: "t1", Name: "Zeta"},
				}, nil
			}

			w := do("t1", http.MethodGet, "/api/v1/organizations", nil)

			Expect(w.Code).To(Equal(http.StatusOK))
			var resp struct {
				Organizations []map[string]any `json:"organizations"`
			}
			Expect(json.Unmarshal(w.Body.Bytes(), &resp)).To(Succeed())
			Expect(resp.Organizations).To(HaveLen(3))
			Expect(resp.Organizations[0]["name"]).To(Equal("Alpha"))
			Expect(resp.Organizations[1]["name"]).To(Equal("Mid"))
			Expect(resp.Organizations[2]["name"]).To(Equal("Zeta"))
		})

		It("returns an empty list, not an error, for a fresh tenant", func() {
			w := do("t1", http.MethodGet, "/api/v1/organizations", nil)

			Expect(w.Code).To(Equal(http.StatusOK))
			var resp struct {
				Organizations []map[string]any `json:"organizations"`
			}
			Expect(json.Unmarshal(w.Body.Bytes(), &resp)).To(Succeed())
			Expect(resp.Organizations).To(BeEmpty())
		})

		It("returns 500 when the store is unavailable", func() {
			svc.listFn = func(_ context.Context, _ string) ([]model.Organization, error) {
				return nil, errors.New("connection refused")
			}

			w := do("t1", http.MethodGet, "/api/v1/organizations", nil)

			Expect(w.Code).To(Equal(http.StatusInternalServerError))
			Expect(w.Body.String()).NotTo(ContainSubstring("connection refused"))
		})
	})

	Describe("GET /organizations/:id", func() {
		It("returns the record for its owner", func() {
			svc.getFn = func(_ context.Context, tenantID string, id int64) (*model.Organization, error) {
				Expect(tenantID).To(Equal("t1"))
				Expect(id).To(Equal(int64(42)))
				return &model.Organization{ID: 42, TenantID: "t1", Name: "Acme AB"}, nil
			}

			w := do("t1", http.MethodGet, "/api/v1/organizations/42", nil)

			Expect(w.Code).To(Equal(http.StatusOK))
			var resp map[string]any
			Expect(json.Unmarshal(w.Body.Bytes(), &resp)).To(Succeed())
			Expect(resp["id"]).To(Equal("42"))
			Expect(resp["name"]).To(Equal("Acme AB"))
		})

		It("returns 404 for another tenant's record", func() {
			svc.getFn = func(_ context.Context, tenantID string, _ int64) (*model.Organization, error) {
				Expect(tenantID).To(Equal("t2"))
				return nil, service.ErrNotFound
			}

			w := do("t2", http.MethodGet, "/api/v1/organizations/42", nil)

			Expect(w.Code).To(Equal(http.StatusNotFound))
			var resp map[string]string
			Expect(json.Unmarshal(w.Body.Bytes(), &resp)).To(Succeed())
			Expect(resp["error"]).To(Equal("organization not found"))
		})

		It("returns 404 for a non-numeric id", func() {
			w := do("t1", http.MethodGet, "/api/v1/organizations/abc", nil)
			Expect(w.Code).To(Equal(http.StatusNotFound))
		})
	})

	Describe("POST /organizations", func() {
		It("creates and returns the full stored record", func() {
			svc.createFn = func(_ context.Context, tenantID string, fields service.OrganizationFields) (*model.Organization, error) {
				Expect(tenantID).To(Equal("t1"))
				Expect(fields.Name).To(Equal("Acme AB"))
				Expect(fields.City).To(Equal("Stockholm"))
				return &model.Organization{
					ID:        100,
					TenantID:  "t1",
					Name:      "Acme AB",
					City:      "Stockholm",
					CreatedAt: time.Now().UTC(),
				}, nil
			}

			w := do("t1", http.MethodPost, "/api/v1/organizations", bytes.NewBufferString(`{"name":"Acme AB","city":"Stockholm"}`))

			Expect(w.Code).To(Equal(http.StatusCreated))
			var resp map[string]any
			Expect(json.Unmarshal(w.Body.Bytes(), &resp)).To(Succeed())
			Expect(resp["id"]).To(Equal("100"))
			Expect(resp["tenant_id"]).To(Equal("t1"))
			Expect(resp["org_number"]).To(Equal(""))
			Expect(resp["updated_at"]).To(BeNil())
		})

		It("returns 400 when name is missing", func() {
			w := do("t1", http.MethodPost, "/api/v1/organizations", bytes.NewBufferString(`{"city":"Stockholm"}`))

			Expect(w.Code).To(Equal(http.StatusBadRequest))
			var resp map[string]string
			Expect(json.Unmarshal(w.Body.Bytes(), &resp)).To(Succeed())
			Expect(resp["error"]).To(Equal("name is required"))
		})

		It("returns 400 when the service rejects a whitespace-only name", func() {
			svc.createFn = func(_ context.Context, _ string, _ service.OrganizationFields) (*model.Organization, error) {
				return nil, service.ErrInvalidInput
			}

			w := do("t1", http.MethodPost, "/api/v1/organizations", bytes.NewBufferString(`{"name":"   "}`))

			Expect(w.Code).To(Equal(http.StatusBadRequest))
		})

		It("returns 400 on a malformed body", func() {
			w := do("t1", http.MethodPost, "/api/v1/organizations", bytes.NewBufferString(`{`))
			Expect(w.Code).To(Equal(http.StatusBadRequest))
		})
	})

	Describe("PUT /organizations/:id", func() {
		It("updates and returns the new stored record", func() {
			now := time.Now().UTC()
			svc.updateFn = func(_ context.Context, tenantID string, id int64, fields service.OrganizationFields) (*model.Organization, error) {
				Expect(tenantID).To(Equal("t1"))
				Expect(id).To(Equal(int64(100)))
				Expect(fields.City).To(Equal("Göteborg"))
				return &model.Organization{
					ID:        100,
					TenantID:  "t1",
					Name:      "Acme AB",
					City:      "Göteborg",
					UpdatedAt: &now,
				}, nil
			}

			w := do("t1", http.MethodPut, "/api/v1/organizations/100", bytes.NewBufferString(`{"name":"Acme AB","city":"Göteborg"}`))

			Expect(w.Code).To(Equal(http.StatusOK))
			var resp map[string]any
			Expect(json.Unmarshal(w.Body.Bytes(), &resp)).To(Succeed())
			Expect(resp["city"]).To(Equal("Göteborg"))
			Expect(resp["org_number"]).To(Equal(""))
			Expect(resp["updated_at"]).NotTo(BeNil())
		})

		It("returns 404 when the record does not exist for this tenant", func() {
			svc.updateFn = func(_ context.Context, _ string, _ int64, _ service.OrganizationFields) (*model.Organization, error) {
				return nil, service.ErrNotFound
			}

			w := do("t2", http.MethodPut, "/api/v1/organizations/100", bytes.NewBufferString(`{"name":"Acme AB"}`))
			Expect(w.Code).To(Equal(http.StatusNotFound))
		})

		It("returns 400 when name is missing", func() {
			w := do("t1", http.MethodPut, "/api/v1/organizations/100", bytes.NewBufferString(`{"city":"Malmö"}`))
			Expect(w.Code).To(Equal(http.StatusBadRequest))
		})
	})

	Describe("DELETE /organizations/:id", func() {
		It("deletes and acknowledges", func() {
			svc.deleteFn = func(_ context.Context, tenantID string, id int64) error {
				Expect(tenantID).To(Equal("t1"))
				Expect(id).To(Equal(int64(100)))
				return nil
			}

			w := do("t1", http.MethodDelete, "/api/v1/organizations/100", nil)

			Expect(w.Code).To(Equal(http.StatusOK))
			var resp map[string]bool
			Expect(json.Unmarshal(w.Body.Bytes(), &resp)).To(Succeed())
			Expect(resp["ok"]).To(BeTrue())
		})

		It("returns 404 for an already-deleted record", func() {
			svc.deleteFn = func(_ context.Context, _ string, _ int64) error {
				return service.ErrNotFound
			}

			w := do("t1", http.MethodDelete, "/api/v1/organizations/100", nil)
			Expect(w.Code).To(Equal(http.StatusNotFound))
		})
	})
})
