package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ndanilchenko/go-skill-market/internal/logger"
	"github.com/ndanilchenko/go-skill-market/internal/utils"
	"github.com/ndanilchenko/go-skill-market/models"
)

func (h *Handler) listTutorials(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	tutorials, err := h.services.TutorialService.ListTutorials(ctx)
	if err != nil {
		log.Err(err).Msg("failed to list tutorials")
		writeServiceError(w, err)
		return
	}

	if _, err := utils.WriteJSON(w, tutorials, http.StatusOK); err != nil {
		log.Err(err).Msg("failed to write tutorials list response")
	}
}

func (h *Handler) getTutorial(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	tutorialID, err := resourceIDFromRequest(r)
	if err != nil {
		log.Err(err).Str("id", chi.URLParam(r, "id")).Msg("invalid tutorial id")
		writeError(w, models.KindValidationError, ErrInvalidResourceID.Error(), http.StatusBadRequest)
		return
	}

	tutorial, err := h.services.TutorialService.GetTutorial(ctx, tutorialID)
	if err != nil {
		log.Err(err).Int64("id", tutorialID).Msg("failed to get tutorial")
		writeServiceError(w, err)
		return
	}

	if _, err := utils.WriteJSON(w, tutorial, http.StatusOK); err != nil {
		log.Err(err).Msg("failed to write tutorial response")
	}
}

func (h *Handler) createTutorial(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	requesterID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user id in request context")
		writeError(w, models.KindUnauthorized, "unauthorized", http.StatusUnauthorized)
		return
	}

	var tutorial models.Tutorial
	if err := json.NewDecoder(r.Body).Decode(&tutorial); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeError(w, models.KindValidationError, "invalid JSON was passed", http.StatusBadRequest)
		return
	}

	createdTutorial, err := h.services.TutorialService.CreateTutorial(ctx, tutorial, requesterID)
	if err != nil {
		log.Err(err).Msg("failed to create tutorial")
		writeServiceError(w, err)
		return
	}

	if _, err := utils.WriteJSON(w, createdTutorial, http.StatusCreated); err != nil {
		log.Err(err).Msg("failed to write created tutorial response")
	}
}

func (h *Handler) updateTutorial(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	requesterID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user id in request context")
		writeError(w, models.KindUnauthorized, "unauthorized", http.StatusUnauthorized)
		return
	}

	tutorialID, err := resourceIDFromRequest(r)
	if err != nil {
		log.Err(err).Str("id", chi.URLParam(r, "id")).Msg("invalid tutorial id")
		writeError(w, models.KindValidationError, ErrInvalidResourceID.Error(), http.StatusBadRequest)
		return
	}

	var update models.TutorialUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeError(w, models.KindValidationError, "invalid JSON was passed", http.StatusBadRequest)
		return
	}

	updatedTutorial, err := h.services.TutorialService.UpdateTutorial(ctx, tutorialID, requesterID, update)
	if err != nil {
		log.Err(err).Int64("id", tutorialID).Int64("requester", requesterID).Msg("failed to update tutorial")
		writeServiceError(w, err)
		return
	}

	if _, err := utils.WriteJSON(w, updatedTutorial, http.StatusOK); err != nil {
		log.Err(err).Msg("failed to write updated tutorial response")
	}
}

func (h *Handler) deleteTutorial(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	requesterID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user id in request context")
		writeError(w, models.KindUnauthorized, "unauthorized", http.StatusUnauthorized)
		return
	}

	tutorialID, err := resourceIDFromRequest(r)
	if err != nil {
		log.Err(err).Str("id", chi.URLParam(r, "id")).Msg("invalid tutorial id")
		writeError(w, models.KindValidationError, ErrInvalidResourceID.Error(), http.StatusBadRequest)
		return
	}

	if err := h.services.TutorialService.DeleteTutorial(ctx, tutorialID, requesterID); err != nil {
		log.Err(err).Int64("id", tutorialID).Int64("requester", requesterID).Msg("failed to delete tutorial")
		writeServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
