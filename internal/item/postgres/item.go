package postgres

import (
	"time"

	itemDatamodel "github.com/cims/inventory-management/internal/core/datamodel/item"
	"gorm.io/gorm"
)

// ItemRepository implements item.RepositoryAPI using GORM
type ItemRepository struct {
	db *gorm.DB
}

func NewItemRepository(db *gorm.DB) *ItemRepository {
	return &ItemRepository{db: db}
}

func (r *ItemRepository) Create(item *itemDatamodel.Item) error {
	return r.db.Create(item).Error
}

// GetAll returns every item, newest created first.
func (r *ItemRepository) GetAll() ([]*itemDatamodel.Item, error) {
	var items []*itemDatamodel.Item
	err := r.db.Order("created_at DESC, id DESC").Find(&items).Error
	return items, err
}

func (r *ItemRepository) GetByID(id int64) (*itemDatamodel.Item, error) {
	var item itemDatamodel.Item
	if err := r.db.First(&item, id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// Update applies the given column values to one item. Callers build the
// map from fields explicitly present in the request.
func (r *ItemRepository) Update(id int64, updates map[string]interface{}) error {
	updates["updated_at"] = time.Now()

	result := r.db.Model(&itemDatamodel.Item{}).
		Where("id = ?", id).
		Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *ItemRepository) Delete(id int64) error {
	result := r.db.Delete(&itemDatamodel.Item{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
