package item

import (
	"time"

	itemDatamodel "github.com/cims/inventory-management/internal/core/datamodel/item"
)

// Item is a stock record. CreatedBy is attribution only; any authenticated
// user may read or mutate any item.
type Item struct {
	ID           int64      `json:"id"`
	Name         string     `json:"name"`
	Category     string     `json:"category"`
	Quantity     int64      `json:"quantity"`
	ExpiryDate   *time.Time `json:"expiryDate,omitempty"`
	Supplier     string     `json:"supplier"`
	ReorderLevel int64      `json:"reorderLevel"`
	CreatedBy    int64      `json:"createdBy"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}

// NeedsReorder reports whether the stock level has fallen to the reorder
// threshold.
func (i *Item) NeedsReorder() bool {
	return i.Quantity <= i.ReorderLevel
}

// HasExpired reports whether a set expiry date has passed. Items are allowed
// to expire while stored; the future-date rule only applies at write time.
func (i *Item) HasExpired(now time.Time) bool {
	if i.ExpiryDate == nil {
		return false
	}
	return i.ExpiryDate.Before(now)
}

func ToDataModel(i *Item) *itemDatamodel.Item {
	return &itemDatamodel.Item{
		ID:           i.ID,
		Name:         i.Name,
		Category:     i.Category,
		Quantity:     i.Quantity,
		ExpiryDate:   i.ExpiryDate,
		Supplier:     i.Supplier,
		ReorderLevel: i.ReorderLevel,
		CreatedBy:    i.CreatedBy,
		CreatedAt:    i.CreatedAt,
		UpdatedAt:    i.UpdatedAt,
	}
}

func FromDataModel(i *itemDatamodel.Item) *Item {
	return &Item{
		ID:           i.ID,
		Name:         i.Name,
		Category:     i.Category,
		Quantity:     i.Quantity,
		ExpiryDate:   i.ExpiryDate,
		Supplier:     i.Supplier,
		ReorderLevel: i.ReorderLevel,
		CreatedBy:    i.CreatedBy,
		CreatedAt:    i.CreatedAt,
		UpdatedAt:    i.UpdatedAt,
	}
}

func FromDataModelSlice(items []*itemDatamodel.Item) []*Item {
	result := make([]*Item, len(items))
	for i, it := range items {
		result[i] = FromDataModel(it)
	}
	return result
}
