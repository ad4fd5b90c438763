package api

import (
	"net/http"
	"strconv"

	reqdto "github.com/Vetlyst2025/HPVC-Boarding-Calendar/internal/handler/dto/request"
	resdto "github.com/Vetlyst2025/HPVC-Boarding-Calendar/internal/handler/dto/response"
	"github.com/Vetlyst2025/HPVC-Boarding-Calendar/internal/handler/httperr"
	"github.com/Vetlyst2025/HPVC-Boarding-Calendar/internal/usecase/commands"
	"github.com/Vetlyst2025/HPVC-Boarding-Calendar/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ReservationHandler struct {
	cmds commands.ReservationCommands
	q    queries.ReservationQueries
}

func NewReservationHandler(cmds commands.ReservationCommands, q queries.ReservationQueries) *ReservationHandler {
	return &ReservationHandler{cmds: cmds, q: q}
}

// @Summary List reservations
// @Description List all reservations ordered by start date, optionally filtered by animal or owner name
// @Tags reservations
// @Produce json
// @Param q query string false "Case-insensitive name filter"
// @Success 200 {array} resdto.ReservationResponse
// @Failure 502 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /reservations [get]
func (h *ReservationHandler) List(c *gin.Context) {
	items, err := h.q.List(c.Request.Context(), c.Query("q"))
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReservations(items))
}

// @Summary Get reservation
// @Description Get reservation by ID
// @Tags reservations
// @Produce json
// @Param id path string true "Reservation ID"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /reservations/{id} [get]
func (h *ReservationHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	r, err := h.q.Get(c.Request.Context(), id)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReservation(r))
}

// @Summary Create reservation
// @Description Create a new boarding reservation. An omitted endDate books a single day.
// @Tags reservations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.SaveReservationRequest true "Reservation"
// @Success 201 {object} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /reservations [post]
func (h *ReservationHandler) Create(c *gin.Context) {
	h.save(c, uuid.Nil, http.StatusCreated)
}

// @Summary Update reservation
// @Description Replace the descriptive fields and dates of a reservation. Status is kept.
// @Tags reservations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Param request body reqdto.SaveReservationRequest true "Reservation"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /reservations/{id} [put]
func (h *ReservationHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	h.save(c, id, http.StatusOK)
}

func (h *ReservationHandler) save(c *gin.Context, id uuid.UUID, status int) {
	var req reqdto.SaveReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	in, err := req.ToInput(id)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	saved, err := h.cmds.Save(c.Request.Context(), in)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(status, resdto.FromReservation(saved))
}

// @Summary Delete reservation
// @Description Delete a whole reservation. Unknown ids are ignored.
// @Tags reservations
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Router /reservations/{id} [delete]
func (h *ReservationHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.cmds.Delete(c.Request.Context(), id); err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Remove one day
// @Description Take one calendar day out of a stay, shrinking or splitting it
// @Tags reservations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Param request body reqdto.RemoveDayRequest true "Day to remove"
// @Success 200 {object} resdto.RemoveDayResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /reservations/{id}/remove-day [post]
func (h *ReservationHandler) RemoveDay(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req reqdto.RemoveDayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	day, err := req.Day()
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	res, err := h.cmds.RemoveDay(c.Request.Context(), id, day)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRemoveDayResult(res))
}

// @Summary Check out
// @Description Mark the animal as gone home. It disappears from the calendar.
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /reservations/{id}/check-out [post]
func (h *ReservationHandler) CheckOut(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	saved, err := h.cmds.CheckOut(c.Request.Context(), id)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReservation(saved))
}

// @Summary Add medication note
// @Description Append the medication template line to the reservation notes
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 404 {object} httperr.Response
// @Router /reservations/{id}/medication-note [post]
func (h *ReservationHandler) AddMedicationNote(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	saved, err := h.cmds.AddMedicationNote(c.Request.Context(), id)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReservation(saved))
}

// @Summary Pet suggestions
// @Description Previously boarded pets whose name contains q, most recent first
// @Tags reservations
// @Produce json
// @Param q query string false "Animal name fragment"
// @Param limit query int false "Maximum results (default 8)"
// @Success 200 {array} resdto.PetSuggestionResponse
// @Router /reservations/suggestions [get]
func (h *ReservationHandler) Suggestions(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid limit", nil)
			return
		}
		limit = n
	}
	pets, err := h.q.Suggestions(c.Request.Context(), c.Query("q"), limit)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromPets(pets))
}

func parseID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid reservation ID format", nil)
		return uuid.Nil, false
	}
	return id, true
}
