package devserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/titaska/bitukai-client/internal/models"
	"github.com/titaska/bitukai-client/pkg/utils"
)

// StaffHandler serves the staff roster and login endpoints.
type StaffHandler struct {
	store *Store
}

// NewStaffHandler creates a StaffHandler.
func NewStaffHandler(store *Store) *StaffHandler {
	return &StaffHandler{store: store}
}

// ListStaff handles GET /staff?registrationNumber=...
func (h *StaffHandler) ListStaff(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.ListStaff(c.Query("registrationNumber")))
}

// GetStaff handles GET /staff/:id.
func (h *StaffHandler) GetStaff(c *gin.Context) {
	staff, err := h.store.GetStaff(c.Param("id"))
	if err != nil {
		respondStoreError(c, err, "GetStaff", "Staff member not found.")
		return
	}
	c.JSON(http.StatusOK, staff)
}

// CreateStaff handles POST /staff.
func (h *StaffHandler) CreateStaff(c *gin.Context) {
	var req models.StaffCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationFailed(c, err.Error())
		return
	}
	if utils.IsEmpty(req.FirstName) || utils.IsEmpty(req.LastName) {
		utils.RespondValidationFailed(c, "firstName and lastName are required")
		return
	}
	if !models.IsValidStaffRole(req.Role) || !models.IsValidStaffStatus(req.Status) {
		utils.RespondValidationFailed(c, "unknown role or status value")
		return
	}
	if req.Email != "" && !utils.IsValidEmail(req.Email) {
		utils.RespondValidationFailed(c, "invalid email format")
		return
	}

	staff, err := h.store.CreateStaff(req)
	if err != nil {
		utils.LogError(err, "CreateStaff: store insert failed")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to create staff member.", "Internal error"))
		return
	}
	c.JSON(http.StatusCreated, staff)
}

// UpdateStaff handles PUT /staff/:id.
func (h *StaffHandler) UpdateStaff(c *gin.Context) {
	var req models.StaffUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationFailed(c, err.Error())
		return
	}
	if !models.IsValidStaffRole(req.Role) || !models.IsValidStaffStatus(req.Status) {
		utils.RespondValidationFailed(c, "unknown role or status value")
		return
	}

	staff, err := h.store.UpdateStaff(c.Param("id"), req)
	if err != nil {
		respondStoreError(c, err, "UpdateStaff", "Staff member not found.")
		return
	}
	c.JSON(http.StatusOK, staff)
}

// DeleteStaff handles DELETE /staff/:id.
func (h *StaffHandler) DeleteStaff(c *gin.Context) {
	if err := h.store.DeleteStaff(c.Param("id")); err != nil {
		respondStoreError(c, err, "DeleteStaff", "Staff member not found.")
		return
	}
	c.Status(http.StatusNoContent)
}

// Login handles POST /staff/login: verifies credentials and returns the
// staff profile with a signed access token.
func (h *StaffHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationFailed(c, err.Error())
		return
	}

	staff, err := h.store.Authenticate(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusUnauthorized, utils.ErrCodeUnauthorized, "Invalid email or password.", ""))
			return
		}
		utils.LogError(err, "Login: authentication failed")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Login failed.", "Internal error"))
		return
	}

	token, err := utils.GenerateAccessToken(staff.StaffID, staff.Email, staff.Role, staff.RegistrationNumber)
	if err != nil {
		utils.LogError(err, "Login: token generation failed")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Login failed.", "Internal error"))
		return
	}

	c.JSON(http.StatusOK, models.LoginResponse{Staff: staff, AccessToken: token})
}

// respondStoreError maps store errors onto the standard error responses.
func respondStoreError(c *gin.Context, err error, operation, notFoundMsg string) {
	switch {
	case errors.Is(err, ErrNotFound):
		utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, notFoundMsg, ""))
	case errors.Is(err, ErrConflict):
		utils.RespondWithError(c, utils.NewAPIError(http.StatusConflict, utils.ErrCodeConflict, err.Error(), ""))
	case errors.Is(err, ErrOrderNotOpen), errors.Is(err, ErrBadStartTime):
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeBadRequest, err.Error(), ""))
	default:
		utils.LogError(err, operation+": unexpected store error")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Internal error.", ""))
	}
}
