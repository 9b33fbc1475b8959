package user

import (
	"time"

	userDatamodel "github.com/cims/inventory-management/internal/core/datamodel/user"
	"gorm.io/gorm"
)

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) GetByID(id int64) (*userDatamodel.User, error) {
	var user userDatamodel.User
	if err := r.db.First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// EmailTakenByOther reports whether a different user already holds the email.
func (r *Repository) EmailTakenByOther(email string, userID int64) (bool, error) {
	var count int64
	err := r.db.Model(&userDatamodel.User{}).
		Where("email = ? AND id <> ?", email, userID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *Repository) UpdateProfile(id int64, name, email string) (*userDatamodel.User, error) {
	result := r.db.Model(&userDatamodel.User{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"name":       name,
			"email":      email,
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}

	return r.GetByID(id)
}
