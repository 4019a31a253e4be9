package devserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/titaska/bitukai-client/internal/models"
	"github.com/titaska/bitukai-client/pkg/utils"
)

// ReservationHandler serves the appointment endpoints.
type ReservationHandler struct {
	store *Store
}

// NewReservationHandler creates a ReservationHandler.
func NewReservationHandler(store *Store) *ReservationHandler {
	return &ReservationHandler{store: store}
}

func validateReservationPayload(req models.ReservationCreate) string {
	if utils.IsEmpty(req.RegistrationNumber) || utils.IsEmpty(req.EmployeeID) ||
		utils.IsEmpty(req.ServiceProductID) || utils.IsEmpty(req.StartTime) {
		return "registrationNumber, employeeId, serviceProductId and startTime are required"
	}
	if req.DurationMinutes <= 0 {
		return "durationMinutes must be positive"
	}
	return ""
}

// CreateReservation handles POST /reservations. Overlapping intervals for
// the same employee are rejected with 409.
func (h *ReservationHandler) CreateReservation(c *gin.Context) {
	var req models.ReservationCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationFailed(c, err.Error())
		return
	}
	if msg := validateReservationPayload(req); msg != "" {
		utils.RespondValidationFailed(c, msg)
		return
	}

	reservation, err := h.store.CreateReservation(req)
	if err != nil {
		respondStoreError(c, err, "CreateReservation", "Reservation not found.")
		return
	}
	c.JSON(http.StatusCreated, reservation)
}

// UpdateReservation handles PUT /reservations/:id.
func (h *ReservationHandler) UpdateReservation(c *gin.Context) {
	var req models.ReservationCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationFailed(c, err.Error())
		return
	}
	if msg := validateReservationPayload(req); msg != "" {
		utils.RespondValidationFailed(c, msg)
		return
	}

	reservation, err := h.store.UpdateReservation(c.Param("id"), req)
	if err != nil {
		respondStoreError(c, err, "UpdateReservation", "Reservation not found.")
		return
	}
	c.JSON(http.StatusOK, reservation)
}

// UpdateReservationStatus handles PUT /reservations/:id/status?status=.
func (h *ReservationHandler) UpdateReservationStatus(c *gin.Context) {
	status := c.Query("status")
	if !models.IsValidReservationStatus(status) {
		utils.RespondValidationFailed(c, "unknown reservation status: "+status)
		return
	}

	reservation, err := h.store.UpdateReservationStatus(c.Param("id"), status)
	if err != nil {
		respondStoreError(c, err, "UpdateReservationStatus", "Reservation not found.")
		return
	}
	c.JSON(http.StatusOK, reservation)
}

// Availability handles GET /reservations/availability?employeeId=&date=.
// It answers with the bare start timestamps of the employee's reservations
// on that date, matching the production backend's contract.
func (h *ReservationHandler) Availability(c *gin.Context) {
	employeeID := c.Query("employeeId")
	date := c.Query("date")
	if utils.IsEmpty(employeeID) || utils.IsEmpty(date) {
		utils.RespondValidationFailed(c, "employeeId and date are required")
		return
	}

	taken := h.store.TakenSlots(employeeID, date)
	if taken == nil {
		taken = []string{}
	}
	c.JSON(http.StatusOK, taken)
}

// Details handles GET /reservations/details.
func (h *ReservationHandler) Details(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.ReservationDetails())
}
