package item

import (
	"errors"
	"log/slog"
	"strings"

	internal "github.com/cims/inventory-management/internal"
	"github.com/cims/inventory-management/internal/core/common/validation"
	itemDatamodel "github.com/cims/inventory-management/internal/core/datamodel/item"
	"gorm.io/gorm"
)

type RepositoryAPI interface {
	Create(item *itemDatamodel.Item) error
	GetAll() ([]*itemDatamodel.Item, error)
	GetByID(id int64) (*itemDatamodel.Item, error)
	Update(id int64, updates map[string]interface{}) error
	Delete(id int64) error
}

type Service struct {
	repo   RepositoryAPI
	logger *slog.Logger
}

func NewService(repo RepositoryAPI, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// CreateItem validates the payload, applies defaults and persists the
// record with the acting user recorded as creator.
func (s *Service) CreateItem(userID int64, dto CreateItemDTO) (*Item, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	record := &itemDatamodel.Item{
		Name:         strings.TrimSpace(dto.Name),
		Category:     dto.CategoryOrDefault(),
		Quantity:     dto.QuantityOrDefault(),
		Supplier:     strings.TrimSpace(dto.Supplier),
		ReorderLevel: dto.ReorderLevelOrDefault(),
		CreatedBy:    userID,
	}

	if dto.ExpiryDate != "" {
		expiry, err := validation.ParseDate(dto.ExpiryDate)
		if err != nil {
			// Validate already rejected unparseable input
			return nil, internal.NewValidationError("Expiry date must be a future date", internal.ErrCodeInvalidExpiryDate)
		}
		record.ExpiryDate = &expiry
	}

	if err := s.repo.Create(record); err != nil {
		s.logger.Error("create item: insert failed", "error", err, "user_id", userID)
		return nil, internal.NewInternalError("item insert failed", err)
	}

	s.logger.Info("item created", "item_id", record.ID, "user_id", userID)
	return FromDataModel(record), nil
}

// ListItems returns every item, most recently created first.
func (s *Service) ListItems() ([]*Item, error) {
	records, err := s.repo.GetAll()
	if err != nil {
		s.logger.Error("list items: query failed", "error", err)
		return nil, internal.NewInternalError("item listing failed", err)
	}
	return FromDataModelSlice(records), nil
}

// UpdateItem applies a partial update: only fields present in the payload
// change, and an explicit empty expiry date clears the stored one.
func (s *Service) UpdateItem(id int64, dto UpdateItemDTO) (*Item, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.repo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, internal.ErrItemNotFound
		}
		s.logger.Error("update item: lookup failed", "error", err, "item_id", id)
		return nil, internal.NewInternalError("item lookup failed", err)
	}

	updates := make(map[string]interface{})

	if dto.Name != nil {
		updates["name"] = strings.TrimSpace(*dto.Name)
	}
	if dto.Category != nil {
		updates["category"] = strings.TrimSpace(*dto.Category)
	}
	if dto.Supplier != nil {
		updates["supplier"] = strings.TrimSpace(*dto.Supplier)
	}
	if dto.Quantity != nil {
		updates["quantity"] = *dto.Quantity
	}
	if dto.ReorderLevel != nil {
		updates["reorder_level"] = *dto.ReorderLevel
	}
	if dto.ExpiryDate != nil {
		if *dto.ExpiryDate == "" {
			updates["expiry_date"] = nil
		} else {
			expiry, err := validation.ParseDate(*dto.ExpiryDate)
			if err != nil {
				return nil, internal.NewValidationError("Expiry date must be a future date", internal.ErrCodeInvalidExpiryDate)
			}
			updates["expiry_date"] = expiry
		}
	}

	if len(updates) > 0 {
		if err := s.repo.Update(id, updates); err != nil {
			s.logger.Error("update item: update failed", "error", err, "item_id", id)
			return nil, internal.NewInternalError("item update failed", err)
		}
	}

	updated, err := s.repo.GetByID(id)
	if err != nil {
		s.logger.Error("update item: reload failed", "error", err, "item_id", id)
		return nil, internal.NewInternalError("item reload failed", err)
	}

	s.logger.Info("item updated", "item_id", id, "fields", len(updates))
	return FromDataModel(updated), nil
}

// DeleteItem permanently removes the record.
func (s *Service) DeleteItem(id int64) error {
	if err := s.repo.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return internal.ErrItemNotFound
		}
		s.logger.Error("delete item: delete failed", "error", err, "item_id", id)
		return internal.NewInternalError("item delete failed", err)
	}

	s.logger.Info("item deleted", "item_id", id)
	return nil
}
