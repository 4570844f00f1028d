package handler

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/ginext"

	"github.com/ezioding/email-reminder/internal/dto"
	"github.com/ezioding/email-reminder/internal/model"
	"github.com/ezioding/email-reminder/internal/ports"
	"github.com/ezioding/email-reminder/internal/service"
)

type ReminderHandler struct {
	crudService  ports.CRUDServiceInterface
	checkService ports.CheckServiceInterface
}

func NewReminderHandler(crudService ports.CRUDServiceInterface, checkService ports.CheckServiceInterface) *ReminderHandler {
	return &ReminderHandler{
		crudService:  crudService,
		checkService: checkService,
	}
}

func (h *ReminderHandler) CreateReminder(c *ginext.Context) {
	var body dto.ReminderCreate
	if err := c.BindJSON(&body); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, ginext.H{"error": fmt.Sprintf("invalid body (parsing): %s", err.Error())})
		return
	}

	createModel, err := body.ToEntity(time.Now())
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, ginext.H{"error": err.Error()})
		return
	}

	created, err := h.crudService.CreateReminder(c.Request.Context(), createModel)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, ginext.H{"error": fmt.Sprintf("couldn't create reminder: %s", err.Error())})
		return
	}
	c.JSON(http.StatusCreated, dto.ToFullFromModel(created))
}

func (h *ReminderHandler) GetReminder(c *ginext.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}

	reminder, err := h.crudService.GetReminder(c.Request.Context(), id)
	if err != nil {
		abortWithServiceError(c, err, "couldn't get reminder")
		return
	}
	c.JSON(http.StatusOK, dto.ToFullFromModel(reminder))
}

func (h *ReminderHandler) ListReminders(c *ginext.Context) {
	reminders, err := h.crudService.ListReminders(c.Request.Context())
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, ginext.H{"error": fmt.Sprintf("couldn't list reminders: %s", err.Error())})
		return
	}
	c.JSON(http.StatusOK, dto.ToFullListFromModels(reminders))
}

func (h *ReminderHandler) UpdateReminder(c *ginext.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}

	var body dto.ReminderUpdate
	if err := c.BindJSON(&body); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, ginext.H{"error": fmt.Sprintf("invalid body (parsing): %s", err.Error())})
		return
	}

	patch, err := body.ToPatch()
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, ginext.H{"error": err.Error()})
		return
	}

	updated, err := h.crudService.UpdateReminder(c.Request.Context(), id, patch)
	if err != nil {
		abortWithServiceError(c, err, "couldn't update reminder")
		return
	}
	c.JSON(http.StatusOK, dto.ToFullFromModel(updated))
}

func (h *ReminderHandler) ToggleReminder(c *ginext.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}

	toggled, err := h.crudService.ToggleReminder(c.Request.Context(), id)
	if err != nil {
		abortWithServiceError(c, err, "couldn't toggle reminder")
		return
	}
	c.JSON(http.StatusOK, dto.ToFullFromModel(toggled))
}

func (h *ReminderHandler) DeleteReminder(c *ginext.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}

	if err := h.crudService.DeleteReminder(c.Request.Context(), id); err != nil {
		abortWithServiceError(c, err, "couldn't delete reminder")
		return
	}
	c.JSON(http.StatusOK, ginext.H{"message": "reminder deleted"})
}

// RunCheck triggers one synchronous check cycle. A cycle already in flight
// is reported as a conflict instead of silently returning an empty result.
func (h *ReminderHandler) RunCheck(c *ginext.Context) {
	result, err := h.checkService.RunCheckCycle(c.Request.Context(), time.Now())
	if err != nil {
		if errors.Is(err, service.ErrCycleInProgress) {
			c.AbortWithStatusJSON(http.StatusConflict, ginext.H{"error": err.Error()})
			return
		}
		c.AbortWithStatusJSON(http.StatusInternalServerError, ginext.H{"error": fmt.Sprintf("check cycle failed: %s", err.Error())})
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *ReminderHandler) Health(c *ginext.Context) {
	c.JSON(http.StatusOK, ginext.H{"status": "ok"})
}

func bindID(c *ginext.Context) (uuid.UUID, bool) {
	req, err := dto.BindReminderRequest(c)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, ginext.H{"error": fmt.Sprintf("invalid ID parameter: %s", err.Error())})
		return uuid.Nil, false
	}
	parsed, err := req.ToUUID()
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, ginext.H{"error": fmt.Sprintf("invalid UUID format: %s", err.Error())})
		return uuid.Nil, false
	}
	return parsed, true
}

func abortWithServiceError(c *ginext.Context, err error, prefix string) {
	if errors.Is(err, model.ErrNotFound) {
		c.AbortWithStatusJSON(http.StatusNotFound, ginext.H{"error": "reminder not found"})
		return
	}
	c.AbortWithStatusJSON(http.StatusInternalServerError, ginext.H{"error": fmt.Sprintf("%s: %s", prefix, err.Error())})
}
