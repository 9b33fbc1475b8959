package item_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"time"

	"github.com/cims/inventory-management/internal/auth"
	userDatamodel "github.com/cims/inventory-management/internal/core/datamodel/user"
	"github.com/cims/inventory-management/internal/item"
	itemPostgres "github.com/cims/inventory-management/internal/item/postgres"
	"github.com/go-chi/chi"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
)

// SQLiteItem mirrors the items table without the postgres column defaults
type SQLiteItem struct {
	ID           int64      `gorm:"primaryKey"`
	Name         string     `gorm:"column:name;not null"`
	Category     string     `gorm:"column:category"`
	Quantity     int64      `gorm:"column:quantity;not null"`
	ExpiryDate   *time.Time `gorm:"column:expiry_date"`
	Supplier     string     `gorm:"column:supplier"`
	ReorderLevel int64      `gorm:"column:reorder_level;not null"`
	CreatedBy    int64      `gorm:"column:created_by"`
	CreatedAt    time.Time  `gorm:"column:created_at"`
	UpdatedAt    time.Time  `gorm:"column:updated_at"`
}

func (SQLiteItem) TableName() string {
	return "items"
}

type SQLiteUser struct {
	ID           int64     `gorm:"primaryKey"`
	Name         string    `gorm:"column:name;not null"`
	Email        string    `gorm:"column:email;uniqueIndex;not null"`
	PasswordHash string    `gorm:"column:password_hash;not null"`
	CreatedAt    time.Time `gorm:"column:created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at"`
}

func (SQLiteUser) TableName() string {
	return "users"
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

var _ = Describe("Item Handler Integration", func() {
	var (
		db          *gorm.DB
		router      *chi.Mux
		bearerToken string
	)

	const secret = "integration-secret-long-enough-0000"

	doRequest := func(method, target, token string, body interface{}) *httptest.ResponseRecorder {
		var buf bytes.Buffer
		if body != nil {
			Expect(json.NewEncoder(&buf).Encode(body)).To(Succeed())
		}
		req := httptest.NewRequest(method, target, &buf)
		req.Header.Set("Content-Type", "application/json")
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	BeforeEach(func() {
		var err error

		db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
			Logger:         gormLogger.Default.LogMode(gormLogger.Silent),
			TranslateError: true,
		})
		Expect(err).NotTo(HaveOccurred())

		err = db.AutoMigrate(&SQLiteUser{}, &SQLiteItem{})
		Expect(err).NotTo(HaveOccurred())

		hash, err := bcrypt.GenerateFromPassword([]byte("staff1234"), bcrypt.MinCost)
		Expect(err).NotTo(HaveOccurred())
		staff := &userDatamodel.User{
			Name:         "Staff",
			Email:        "staff@co.com",
			PasswordHash: string(hash),
			CreatedAt:    time.Now(),
			UpdatedAt:    time.Now(),
		}
		Expect(db.Create(staff).Error).To(Succeed())

		tokenGen := auth.NewJWTTokenGenerator(secret, time.Hour)
		bearerToken, err = tokenGen.GenerateToken(fmt.Sprintf("%d", staff.ID), staff.Email)
		Expect(err).NotTo(HaveOccurred())

		authHandler := auth.NewHandler(auth.NewService(nil, tokenGen, bcrypt.MinCost, discardLogger()))
		itemHandler := item.NewHandler(item.NewService(itemPostgres.NewItemRepository(db), discardLogger()))

		router = chi.NewRouter()
		router.Group(func(r chi.Router) {
			r.Use(authHandler.AuthMiddleware)
			r.Route("/items", func(r chi.Router) {
				r.Post("/", itemHandler.CreateItem)
				r.Get("/", itemHandler.ListItems)
				r.Put("/{id}", itemHandler.UpdateItem)
				r.Delete("/{id}", itemHandler.DeleteItem)
			})
		})
	})

	AfterEach(func() {
		sqlDB, err := db.DB()
		Expect(err).NotTo(HaveOccurred())
		Expect(sqlDB.Close()).To(Succeed())
	})

	Describe("authorization gate", func() {
		It("should reject requests without a token", func() {
			w := doRequest(http.MethodGet, "/items", "", nil)

			Expect(w.Code).To(Equal(http.StatusUnauthorized))
			Expect(w.Body.String()).To(ContainSubstring("missing token"))
		})

		It("should reject requests with a tampered token", func() {
			w := doRequest(http.MethodGet, "/items", bearerToken+"x", nil)

			Expect(w.Code).To(Equal(http.StatusUnauthorized))
			Expect(w.Body.String()).To(ContainSubstring("invalid or expired token"))
		})
	})

	Describe("POST /items", func() {
		It("should create an item and echo it back", func() {
			w := doRequest(http.MethodPost, "/items", bearerToken, map[string]interface{}{
				"name":     "Milk",
				"category": "Dairy",
				"quantity": 24,
			})

			Expect(w.Code).To(Equal(http.StatusOK))

			var resp item.ItemResponse
			Expect(json.NewDecoder(w.Body).Decode(&resp)).To(Succeed())
			Expect(resp.Success).To(BeTrue())
			Expect(resp.Message).To(Equal("Item added"))
			Expect(resp.Item.Name).To(Equal("Milk"))
			Expect(resp.Item.Category).To(Equal("Dairy"))
			Expect(resp.Item.Quantity).To(Equal(int64(24)))
			Expect(resp.Item.ReorderLevel).To(Equal(int64(5)))
			Expect(resp.Item.ID).To(BeNumerically(">", 0))
		})

		It("should record the authenticated user as creator", func() {
			w := doRequest(http.MethodPost, "/items", bearerToken, map[string]interface{}{
				"name": "Milk",
			})

			var resp item.ItemResponse
			Expect(json.NewDecoder(w.Body).Decode(&resp)).To(Succeed())
			Expect(resp.Item.CreatedBy).To(Equal(int64(1)))
		})

		It("should reject a payload without a name", func() {
			w := doRequest(http.MethodPost, "/items", bearerToken, map[string]interface{}{
				"category": "Dairy",
			})

			Expect(w.Code).To(Equal(http.StatusBadRequest))
			Expect(w.Body.String()).To(ContainSubstring("Item name is required"))
		})

		It("should reject a non-numeric quantity", func() {
			w := doRequest(http.MethodPost, "/items", bearerToken, map[string]interface{}{
				"name":     "Milk",
				"quantity": "lots",
			})

			Expect(w.Code).To(Equal(http.StatusBadRequest))
		})
	})

	Describe("GET /items", func() {
		It("should return an empty list for a fresh store", func() {
			w := doRequest(http.MethodGet, "/items", bearerToken, nil)

			Expect(w.Code).To(Equal(http.StatusOK))

			var resp item.ItemsResponse
			Expect(json.NewDecoder(w.Body).Decode(&resp)).To(Succeed())
			Expect(resp.Success).To(BeTrue())
			Expect(resp.Items).NotTo(BeNil())
			Expect(resp.Items).To(BeEmpty())
		})

		It("should list created items", func() {
			doRequest(http.MethodPost, "/items", bearerToken, map[string]interface{}{"name": "Milk"})
			doRequest(http.MethodPost, "/items", bearerToken, map[string]interface{}{"name": "Rice"})

			w := doRequest(http.MethodGet, "/items", bearerToken, nil)

			var resp item.ItemsResponse
			Expect(json.NewDecoder(w.Body).Decode(&resp)).To(Succeed())
			Expect(resp.Items).To(HaveLen(2))
		})
	})

	Describe("PUT /items/{id}", func() {
		var itemID int64

		BeforeEach(func() {
			w := doRequest(http.MethodPost, "/items", bearerToken, map[string]interface{}{
				"name":     "Milk",
				"quantity": 10,
			})
			var resp item.ItemResponse
			Expect(json.NewDecoder(w.Body).Decode(&resp)).To(Succeed())
			itemID = resp.Item.ID
		})

		It("should apply a partial update", func() {
			w := doRequest(http.MethodPut, fmt.Sprintf("/items/%d", itemID), bearerToken, map[string]interface{}{
				"quantity": 3,
			})

			Expect(w.Code).To(Equal(http.StatusOK))

			var resp item.ItemResponse
			Expect(json.NewDecoder(w.Body).Decode(&resp)).To(Succeed())
			Expect(resp.Message).To(Equal("Item updated"))
			Expect(resp.Item.Quantity).To(Equal(int64(3)))
			Expect(resp.Item.Name).To(Equal("Milk"))
		})

		It("should return not found for an unknown id", func() {
			w := doRequest(http.MethodPut, "/items/9999", bearerToken, map[string]interface{}{
				"quantity": 3,
			})

			Expect(w.Code).To(Equal(http.StatusNotFound))
			Expect(w.Body.String()).To(ContainSubstring("Item not found"))
		})

		It("should return not found for a non-numeric id", func() {
			w := doRequest(http.MethodPut, "/items/abc", bearerToken, map[string]interface{}{
				"quantity": 3,
			})

			Expect(w.Code).To(Equal(http.StatusNotFound))
			Expect(w.Body.String()).To(ContainSubstring("Item not found"))
		})
	})

	Describe("DELETE /items/{id}", func() {
		It("should delete and report success", func() {
			w := doRequest(http.MethodPost, "/items", bearerToken, map[string]interface{}{"name": "Milk"})
			var created item.ItemResponse
			Expect(json.NewDecoder(w.Body).Decode(&created)).To(Succeed())

			w = doRequest(http.MethodDelete, fmt.Sprintf("/items/%d", created.Item.ID), bearerToken, nil)

			Expect(w.Code).To(Equal(http.StatusOK))

			var resp item.DeleteResponse
			Expect(json.NewDecoder(w.Body).Decode(&resp)).To(Succeed())
			Expect(resp.Success).To(BeTrue())
			Expect(resp.Message).To(Equal("Item deleted"))

			list := doRequest(http.MethodGet, "/items", bearerToken, nil)
			var items item.ItemsResponse
			Expect(json.NewDecoder(list.Body).Decode(&items)).To(Succeed())
			Expect(items.Items).To(BeEmpty())
		})

		It("should return not found for an unknown id", func() {
			w := doRequest(http.MethodDelete, "/items/9999", bearerToken, nil)

			Expect(w.Code).To(Equal(http.StatusNotFound))
		})
	})
})
