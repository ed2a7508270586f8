package inventory_test

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strconv"
	"strings"

	"github.com/go-chi/chi"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/usahaku/erp-dashboard/internal/inventory"
	"github.com/usahaku/erp-dashboard/internal/resource"
)

var _ = Describe("Inventory Handler Integration", func() {
	var (
		db      *gorm.DB
		service *inventory.Service
		handler *inventory.Handler
		router  *chi.Mux
	)

	BeforeEach(func() {
		var err error
		slogger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))

		db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
			Logger: logger.Default.LogMode(logger.Silent),
		})
		Expect(err).NotTo(HaveOccurred())
		Expect(db.AutoMigrate(&inventory.Item{})).To(Succeed())

		store := resource.NewRepository[inventory.Item](db, inventory.OrderColumn)
		service = inventory.NewService(store, slogger, testOptions())
		handler = inventory.NewHandler(service)

		router = chi.NewRouter()
		router.Route("/inventory", func(r chi.Router) {
			r.Get("/", handler.ListItems)
			r.Post("/", handler.CreateItem)
			r.Get("/draft", handler.NewDraft)
			r.Get("/{id}/draft", handler.EditDraft)
			r.Put("/{id}", handler.UpdateItem)
			r.Delete("/{id}", handler.DeleteItem)
		})
	})

	It("should create an item and list it back with its stock flag", func() {
		body := `{"name": "Hex Bolt M8", "quantity": "80", "min_stock": 120, "location": "Warehouse B"}`
		req := httptest.NewRequest(http.MethodPost, "/inventory/", strings.NewReader(body))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		Expect(w.Code).To(Equal(http.StatusCreated))

		var created inventory.ItemResponse
		Expect(json.NewDecoder(w.Body).Decode(&created)).To(Succeed())
		Expect(created.SKU).To(MatchRegexp(`^SKU-\d+$`))
		Expect(created.StockStatus).To(Equal(inventory.StockStatusLow))
		Expect(created.CreatedAt.IsZero()).To(BeFalse())

		req = httptest.NewRequest(http.MethodGet, "/inventory/", nil)
		w = httptest.NewRecorder()
		router.ServeHTTP(w, req)

		Expect(w.Code).To(Equal(http.StatusOK))
		var listed inventory.ItemsResponse
		Expect(json.NewDecoder(w.Body).Decode(&listed)).To(Succeed())
		Expect(listed.Items).To(HaveLen(1))
		Expect(listed.Items[0].Name).To(Equal("Hex Bolt M8"))
	})

	It("should keep the original creation time on update", func() {
		created, err := service.Create(context.Background(), inventory.ItemDTO{
			Name: "Steel Sheet", Location: "Warehouse A",
		})
		Expect(err).NotTo(HaveOccurred())
		Expect(created.CreatedAt.IsZero()).To(BeFalse())

		body := `{"name": "Steel Sheet 2mm", "quantity": 40, "min_stock": 10, "location": "Warehouse A"}`
		req := httptest.NewRequest(http.MethodPut, "/inventory/"+strconv.FormatInt(created.ID, 10), strings.NewReader(body))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		Expect(w.Code).To(Equal(http.StatusOK))
		var updated inventory.ItemResponse
		Expect(json.NewDecoder(w.Body).Decode(&updated)).To(Succeed())
		Expect(updated.Name).To(Equal("Steel Sheet 2mm"))
		Expect(updated.CreatedAt.Unix()).To(Equal(created.CreatedAt.Unix()))
	})

	It("should reject malformed JSON", func() {
		req := httptest.NewRequest(http.MethodPost, "/inventory/", strings.NewReader(`{"name": `))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		Expect(w.Code).To(Equal(http.StatusBadRequest))
	})

	It("should reject an unparsable quantity with a validation error", func() {
		body := `{"name": "Oil", "quantity": "plenty", "location": "Warehouse A"}`
		req := httptest.NewRequest(http.MethodPost, "/inventory/", strings.NewReader(body))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		Expect(w.Code).To(Equal(http.StatusBadRequest))
	})

	It("should serve the new-item draft with defaults", func() {
		req := httptest.NewRequest(http.MethodGet, "/inventory/draft", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		Expect(w.Code).To(Equal(http.StatusOK))
		var draft inventory.ItemDTO
		Expect(json.NewDecoder(w.Body).Decode(&draft)).To(Succeed())
		Expect(draft.Unit).To(Equal("pcs"))
	})

	Describe("DELETE", func() {
		var itemID string

		BeforeEach(func() {
			created, err := service.Create(context.Background(), inventory.ItemDTO{
				Name: "Steel Sheet", Location: "Warehouse A",
			})
			Expect(err).NotTo(HaveOccurred())
			itemID = strconv.FormatInt(created.ID, 10)
		})

		It("should treat a request without confirm=true as declined", func() {
			req := httptest.NewRequest(http.MethodDelete, "/inventory/"+itemID, nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusOK))
			var resp map[string]bool
			Expect(json.NewDecoder(w.Body).Decode(&resp)).To(Succeed())
			Expect(resp["deleted"]).To(BeFalse())

			items, err := service.List(context.Background())
			Expect(err).NotTo(HaveOccurred())
			Expect(items).To(HaveLen(1))
		})

		It("should delete when confirmed", func() {
			req := httptest.NewRequest(http.MethodDelete, "/inventory/"+itemID+"?confirm=true", nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusOK))
			var resp map[string]bool
			Expect(json.NewDecoder(w.Body).Decode(&resp)).To(Succeed())
			Expect(resp["deleted"]).To(BeTrue())
		})

		It("should return 404 for an unknown id when confirmed", func() {
			req := httptest.NewRequest(http.MethodDelete, "/inventory/999?confirm=true", nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusNotFound))
		})
	})
})
