package item

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	internal "github.com/cims/inventory-management/internal"
	"github.com/cims/inventory-management/internal/transport"
	"github.com/cims/inventory-management/pkg/logger"
	"github.com/go-chi/chi"
)

type ServiceAPI interface {
	CreateItem(userID int64, dto CreateItemDTO) (*Item, error)
	ListItems() ([]*Item, error)
	UpdateItem(id int64, dto UpdateItemDTO) (*Item, error)
	DeleteItem(id int64) error
}

type Handler struct {
	*transport.BaseHandler
	Service ServiceAPI
}

func NewHandler(svc ServiceAPI) *Handler {
	lg := logger.L()
	if lg == nil {
		lg = slog.Default()
	}
	return &Handler{
		BaseHandler: transport.NewBaseHandler(lg),
		Service:     svc,
	}
}

type ItemResponse struct {
	Success bool   `json:"success"`
	Item    *Item  `json:"item"`
	Message string `json:"message"`
}

type ItemsResponse struct {
	Success bool    `json:"success"`
	Items   []*Item `json:"items"`
}

type DeleteResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func (h *Handler) CreateItem(w http.ResponseWriter, r *http.Request) {
	authUser, ok := internal.UserFromContext(r.Context())
	if !ok || authUser == nil {
		h.WriteError(w, http.StatusUnauthorized, internal.ErrMissingToken.Message)
		return
	}

	var dto CreateItemDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "Item name is required")
		return
	}

	item, err := h.Service.CreateItem(authUser.ID, dto)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, ItemResponse{
		Success: true,
		Item:    item,
		Message: "Item added",
	})
}

func (h *Handler) ListItems(w http.ResponseWriter, r *http.Request) {
	items, err := h.Service.ListItems()
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	if items == nil {
		items = []*Item{}
	}

	h.WriteJSON(w, http.StatusOK, ItemsResponse{Success: true, Items: items})
}

func (h *Handler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	id, ok := h.itemID(w, r)
	if !ok {
		return
	}

	var dto UpdateItemDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	item, err := h.Service.UpdateItem(id, dto)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, ItemResponse{
		Success: true,
		Item:    item,
		Message: "Item updated",
	})
}

func (h *Handler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	id, ok := h.itemID(w, r)
	if !ok {
		return
	}

	if err := h.Service.DeleteItem(id); err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, DeleteResponse{
		Success: true,
		Message: "Item deleted",
	})
}

// itemID parses the {id} route parameter. An unparseable id can never match
// a stored record, so it reports the same not-found outcome.
func (h *Handler) itemID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	idStr := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		h.WriteError(w, http.StatusNotFound, internal.ErrItemNotFound.Message)
		return 0, false
	}
	return id, true
}
