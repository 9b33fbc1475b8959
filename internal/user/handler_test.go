package user_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"time"

	internal "github.com/cims/inventory-management/internal"
	userDatamodel "github.com/cims/inventory-management/internal/core/datamodel/user"
	"github.com/cims/inventory-management/internal/user"
	userPostgres "github.com/cims/inventory-management/internal/user/postgres"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
)

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

var _ = Describe("User Handler Integration", func() {
	var (
		db      *gorm.DB
		handler *user.Handler
		alice   *userDatamodel.User
	)

	asUser := func(r *http.Request, u *userDatamodel.User) *http.Request {
		ctx := internal.ContextWithUser(r.Context(), &internal.AuthUser{ID: u.ID, Email: u.Email})
		return r.WithContext(ctx)
	}

	BeforeEach(func() {
		var err error

		db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
			Logger: gormLogger.Default.LogMode(gormLogger.Silent),
		})
		Expect(err).NotTo(HaveOccurred())

		err = db.AutoMigrate(&SQLiteUser{})
		Expect(err).NotTo(HaveOccurred())

		alice = &userDatamodel.User{
			Name:         "Alice",
			Email:        "alice@co.com",
			PasswordHash: "hash",
			CreatedAt:    time.Now(),
			UpdatedAt:    time.Now(),
		}
		Expect(db.Create(alice).Error).To(Succeed())

		lg := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		handler = user.NewHandler(user.NewService(userPostgres.NewRepository(db), lg))
	})

	AfterEach(func() {
		sqlDB, err := db.DB()
		Expect(err).NotTo(HaveOccurred())
		Expect(sqlDB.Close()).To(Succeed())
	})

	Describe("GET /users/me", func() {
		It("should return the profile of the token holder", func() {
			req := asUser(httptest.NewRequest(http.MethodGet, "/users/me", nil), alice)
			w := httptest.NewRecorder()

			handler.GetCurrentUser(w, req)

			Expect(w.Code).To(Equal(http.StatusOK))

			var resp user.ProfileResponse
			Expect(json.NewDecoder(w.Body).Decode(&resp)).To(Succeed())
			Expect(resp.Success).To(BeTrue())
			Expect(resp.User.Name).To(Equal("Alice"))
			Expect(resp.User.Email).To(Equal("alice@co.com"))
		})

		It("should never expose the password hash", func() {
			req := asUser(httptest.NewRequest(http.MethodGet, "/users/me", nil), alice)
			w := httptest.NewRecorder()

			handler.GetCurrentUser(w, req)

			Expect(w.Body.String()).NotTo(ContainSubstring("hash"))
			Expect(w.Body.String()).NotTo(ContainSubstring("password"))
		})

		It("should reject a request with no authenticated user", func() {
			req := httptest.NewRequest(http.MethodGet, "/users/me", nil)
			w := httptest.NewRecorder()

			handler.GetCurrentUser(w, req)

			Expect(w.Code).To(Equal(http.StatusUnauthorized))
		})

		It("should return not found when the token holder was deleted", func() {
			Expect(db.Delete(&SQLiteUser{}, alice.ID).Error).To(Succeed())

			req := asUser(httptest.NewRequest(http.MethodGet, "/users/me", nil), alice)
			w := httptest.NewRecorder()

			handler.GetCurrentUser(w, req)

			Expect(w.Code).To(Equal(http.StatusNotFound))
			Expect(w.Body.String()).To(ContainSubstring("User not found"))
		})
	})

	Describe("PUT /users/me", func() {
		put := func(u *userDatamodel.User, payload string) *httptest.ResponseRecorder {
			req := asUser(httptest.NewRequest(http.MethodPut, "/users/me", bytes.NewBufferString(payload)), u)
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			handler.UpdateCurrentUser(w, req)
			return w
		}

		It("should update the profile and echo the new identity", func() {
			w := put(alice, `{"name":"Alice B","email":"alice.b@co.com"}`)

			Expect(w.Code).To(Equal(http.StatusOK))

			var resp user.UpdateProfileResponse
			Expect(json.NewDecoder(w.Body).Decode(&resp)).To(Succeed())
			Expect(resp.Message).To(Equal("Profile updated"))
			Expect(resp.User.Name).To(Equal("Alice B"))
			Expect(resp.User.Email).To(Equal("alice.b@co.com"))
		})

		It("should reject an incomplete payload", func() {
			w := put(alice, `{"name":"","email":"alice@co.com"}`)

			Expect(w.Code).To(Equal(http.StatusBadRequest))
			Expect(w.Body.String()).To(ContainSubstring("Name and email are required"))
		})

		It("should reject a malformed email", func() {
			w := put(alice, `{"name":"Alice","email":"nope"}`)

			Expect(w.Code).To(Equal(http.StatusBadRequest))
			Expect(w.Body.String()).To(ContainSubstring("Invalid email format"))
		})

		It("should reject an email already held by another account", func() {
			bob := &userDatamodel.User{
				Name:         "Bob",
				Email:        "bob@co.com",
				PasswordHash: "hash",
				CreatedAt:    time.Now(),
				UpdatedAt:    time.Now(),
			}
			Expect(db.Create(bob).Error).To(Succeed())

			w := put(alice, `{"name":"Alice","email":"bob@co.com"}`)

			Expect(w.Code).To(Equal(http.StatusBadRequest))
			Expect(w.Body.String()).To(ContainSubstring("Email already in use"))
		})
	})
})
