package handlers

import (
	"net/http"

	"fintrack/internal/service"

	"github.com/gin-gonic/gin"
)

// Amount is a pointer so a missing field is rejected rather than read as zero.
type entryRequest struct {
	Amount      *float64 `json:"amount"`
	Description string   `json:"description"`
	Type        string   `json:"type"`
}

// @Summary      Record a ledger entry
// @Tags         ledger
// @Accept       json
// @Param        body  body  entryRequest  true  "Entry"
// @Success      201
// @Failure      422  {string}  string
// @Failure      403  {string}  string
// @Failure      500  {string}  string
// @Router       /historic [post]
// @Security     BearerAuth
func (h *Handler) appendEntry(c *gin.Context) {
	var req entryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		// covers malformed JSON and non-numeric amount
		c.String(http.StatusUnprocessableEntity, msgInvalidBody)
		return
	}

	userID := c.GetInt64(userIDCtxKey)
	err := h.services.Ledger.Append(c.Request.Context(), userID, service.EntryInput{
		Amount:      req.Amount,
		Description: req.Description,
		Type:        req.Type,
	})
	if err != nil {
		h.writeServiceError(c, err, "ledger_append_failed")
		return
	}

	c.Status(http.StatusCreated)
}

// @Summary      List the user's ledger entries
// @Tags         ledger
// @Produce      json
// @Success      200  {array}  models.LedgerEntry
// @Failure      403  {string}  string
// @Failure      500  {string}  string
// @Router       /historic [get]
// @Security     BearerAuth
func (h *Handler) listEntries(c *gin.Context) {
	userID := c.GetInt64(userIDCtxKey)
	entries, err := h.services.Ledger.List(c.Request.Context(), userID)
	if err != nil {
		h.writeServiceError(c, err, "ledger_list_failed")
		return
	}

	c.JSON(http.StatusOK, entries)
}
