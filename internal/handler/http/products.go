package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/ndanilchenko/go-skill-market/internal/logger"
	"github.com/ndanilchenko/go-skill-market/internal/utils"
	"github.com/ndanilchenko/go-skill-market/models"
)

// resourceIDFromRequest parses the "{id}" chi URL parameter as a positive
// int64 resource identifier.
func resourceIDFromRequest(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id < 1 {
		return 0, ErrInvalidResourceID
	}
	return id, nil
}

func (h *Handler) listProducts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	products, err := h.services.ProductService.ListProducts(ctx)
	if err != nil {
		log.Err(err).Msg("failed to list products")
		writeServiceError(w, err)
		return
	}

	if _, err := utils.WriteJSON(w, products, http.StatusOK); err != nil {
		log.Err(err).Msg("failed to write products list response")
	}
}

func (h *Handler) getProduct(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	productID, err := resourceIDFromRequest(r)
	if err != nil {
		log.Err(err).Str("id", chi.URLParam(r, "id")).Msg("invalid product id")
		writeError(w, models.KindValidationError, ErrInvalidResourceID.Error(), http.StatusBadRequest)
		return
	}

	product, err := h.services.ProductService.GetProduct(ctx, productID)
	if err != nil {
		log.Err(err).Int64("id", productID).Msg("failed to get product")
		writeServiceError(w, err)
		return
	}

	if _, err := utils.WriteJSON(w, product, http.StatusOK); err != nil {
		log.Err(err).Msg("failed to write product response")
	}
}

func (h *Handler) createProduct(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var product models.Product
	if err := json.NewDecoder(r.Body).Decode(&product); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeError(w, models.KindValidationError, "invalid JSON was passed", http.StatusBadRequest)
		return
	}

	createdProduct, err := h.services.ProductService.CreateProduct(ctx, product)
	if err != nil {
		log.Err(err).Msg("failed to create product")
		writeServiceError(w, err)
		return
	}

	if _, err := utils.WriteJSON(w, createdProduct, http.StatusCreated); err != nil {
		log.Err(err).Msg("failed to write created product response")
	}
}

func (h *Handler) updateProduct(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	productID, err := resourceIDFromRequest(r)
	if err != nil {
		log.Err(err).Str("id", chi.URLParam(r, "id")).Msg("invalid product id")
		writeError(w, models.KindValidationError, ErrInvalidResourceID.Error(), http.StatusBadRequest)
		return
	}

	var update models.ProductUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeError(w, models.KindValidationError, "invalid JSON was passed", http.StatusBadRequest)
		return
	}

	updatedProduct, err := h.services.ProductService.UpdateProduct(ctx, productID, update)
	if err != nil {
		log.Err(err).Int64("id", productID).Msg("failed to update product")
		writeServiceError(w, err)
		return
	}

	if _, err := utils.WriteJSON(w, updatedProduct, http.StatusOK); err != nil {
		log.Err(err).Msg("failed to write updated product response")
	}
}

func (h *Handler) deleteProduct(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	productID, err := resourceIDFromRequest(r)
	if err != nil {
		log.Err(err).Str("id", chi.URLParam(r, "id")).Msg("invalid product id")
		writeError(w, models.KindValidationError, ErrInvalidResourceID.Error(), http.StatusBadRequest)
		return
	}

	if err := h.services.ProductService.DeleteProduct(ctx, productID); err != nil {
		log.Err(err).Int64("id", productID).Msg("failed to delete product")
		writeServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
