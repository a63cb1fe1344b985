package transport

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/seojinp/projectboard/internal/domain/project"
)

// assignmentPayload carries a discipline's assignee and raw effort text.
// Effort stays a string end to end; "" means "not estimated" and is only
// coerced at save time.
type assignmentPayload struct {
	Name   string `json:"name"`
	Effort string `json:"effort"`
}

// projectPayload is the create/update request body. It mirrors the edit
// form: optional enums as plain strings ("" = unset), numeric inputs raw.
type projectPayload struct {
	Title  string `json:"title" validate:"required"`
	Status string `json:"status" validate:"required,oneof=waiting in_progress closed"`

	Classification string `json:"classification"`
	Channel        string `json:"channel"`
	Service        string `json:"service"`
	Category       string `json:"category"`
	DeploymentType string `json:"deployment_type"`

	Description string `json:"description"`

	RequestDate    *time.Time `json:"request_date"`
	StartDate      *time.Time `json:"start_date"`
	EndDate        *time.Time `json:"end_date"`
	CompletionDate *time.Time `json:"completion_date"`

	Progress int `json:"progress"`

	Planning    assignmentPayload `json:"planning"`
	Design      assignmentPayload `json:"design"`
	Publishing  assignmentPayload `json:"publishing"`
	Development assignmentPayload `json:"development"`

	PlanLink   string `json:"plan_link" validate:"omitempty,url"`
	DesignLink string `json:"design_link" validate:"omitempty,url"`
}

func (p projectPayload) draft() project.Draft {
	return project.Draft{
		Title:          p.Title,
		Status:         project.Status(p.Status),
		Classification: p.Classification,
		Channel:        p.Channel,
		Service:        p.Service,
		Category:       p.Category,
		DeploymentType: p.DeploymentType,
		Description:    p.Description,
		RequestDate:    p.RequestDate,
		StartDate:      p.StartDate,
		EndDate:        p.EndDate,
		CompletionDate: p.CompletionDate,
		Progress:       project.ClampProgress(p.Progress),
		Planning:       project.AssignmentDraft{Name: p.Planning.Name, Effort: p.Planning.Effort},
		Design:         project.AssignmentDraft{Name: p.Design.Name, Effort: p.Design.Effort},
		Publishing:     project.AssignmentDraft{Name: p.Publishing.Name, Effort: p.Publishing.Effort},
		Development:    project.AssignmentDraft{Name: p.Development.Name, Effort: p.Development.Effort},
		PlanLink:       p.PlanLink,
		DesignLink:     p.DesignLink,
	}
}

func (h *Handlers) listOwnProjects(w http.ResponseWriter, r *http.Request) {
	viewer, ok := ViewerFromContext(r.Context())
	if !ok {
		http.Error(w, "missing viewer", http.StatusUnauthorized)
		return
	}
	h.listProjectsFor(w, r, viewer.ID)
}

func (h *Handlers) listProjects(w http.ResponseWriter, r *http.Request) {
	h.listProjectsFor(w, r, chi.URLParam(r, "ownerID"))
}

func (h *Handlers) listProjectsFor(w http.ResponseWriter, r *http.Request, ownerID string) {
	list, err := h.projects.List(r.Context(), ownerID)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

func (h *Handlers) createProject(w http.ResponseWriter, r *http.Request) {
	viewer, ok := ViewerFromContext(r.Context())
	if !ok {
		http.Error(w, "missing viewer", http.StatusUnauthorized)
		return
	}

	var payload projectPayload
	if err := decodeJSON(r, &payload); err != nil {
		writeJSON(w, http.StatusBadRequest, apiError{Error: "invalid request body"})
		return
	}
	if err := h.validate.Struct(payload); err != nil {
		writeError(w, h.logger, err)
		return
	}

	created, err := h.projects.Create(r.Context(), viewer, payload.draft())
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *Handlers) getProject(w http.ResponseWriter, r *http.Request) {
	p, err := h.projects.Get(r.Context(), chi.URLParam(r, "ownerID"), chi.URLParam(r, "projectID"))
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

// updateProject runs the full edit cycle against the current canonical
// record: load, open a draft, patch it with the submitted form, save as one
// atomic update. A failed save changes nothing server-side and the error
// goes back so the client keeps its input.
func (h *Handlers) updateProject(w http.ResponseWriter, r *http.Request) {
	viewer, ok := ViewerFromContext(r.Context())
	if !ok {
		http.Error(w, "missing viewer", http.StatusUnauthorized)
		return
	}

	var payload projectPayload
	if err := decodeJSON(r, &payload); err != nil {
		writeJSON(w, http.StatusBadRequest, apiError{Error: "invalid request body"})
		return
	}
	if err := h.validate.Struct(payload); err != nil {
		writeError(w, h.logger, err)
		return
	}

	current, err := h.projects.Get(r.Context(), chi.URLParam(r, "ownerID"), chi.URLParam(r, "projectID"))
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	editor := project.NewEditor(viewer, h.projects, current)
	if err := editor.Begin(); err != nil {
		writeError(w, h.logger, err)
		return
	}
	_ = editor.Patch(func(project.Draft) project.Draft { return payload.draft() })
	if err := editor.Save(r.Context()); err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, editor.Canonical())
}

func (h *Handlers) deleteProject(w http.ResponseWriter, r *http.Request) {
	viewer, ok := ViewerFromContext(r.Context())
	if !ok {
		http.Error(w, "missing viewer", http.StatusUnauthorized)
		return
	}

	err := h.projects.Delete(r.Context(), viewer, chi.URLParam(r, "ownerID"), chi.URLParam(r, "projectID"))
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}
