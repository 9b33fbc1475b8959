package item

import "time"

type Item struct {
	ID           int64      `gorm:"primaryKey"`
	Name         string     `gorm:"column:name;not null"`
	Category     string     `gorm:"column:category;default:General"`
	Quantity     int64      `gorm:"column:quantity;not null;default:0"`
	ExpiryDate   *time.Time `gorm:"column:expiry_date"`
	Supplier     string     `gorm:"column:supplier;default:''"`
	ReorderLevel int64      `gorm:"column:reorder_level;not null;default:5"`
	CreatedBy    int64      `gorm:"column:created_by"`
	CreatedAt    time.Time  `gorm:"column:created_at;default:now()"`
	UpdatedAt    time.Time  `gorm:"column:updated_at;default:now()"`
}

func (Item) TableName() string {
	return "items"
}
