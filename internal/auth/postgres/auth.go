package auth

import (
	userDatamodel "github.com/cims/inventory-management/internal/core/datamodel/user"
	"gorm.io/gorm"
)

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// GetByEmail fetches a user by exact email match. Returns
// gorm.ErrRecordNotFound when no user holds the email.
func (r *Repository) GetByEmail(email string) (*userDatamodel.User, error) {
	var user userDatamodel.User
	if err := r.db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *Repository) EmailExists(email string) (bool, error) {
	var count int64
	if err := r.db.Model(&userDatamodel.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *Repository) Create(user *userDatamodel.User) error {
	return r.db.Create(user).Error
}
