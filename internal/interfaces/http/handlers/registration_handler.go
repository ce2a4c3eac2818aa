package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"reward-ops.backend/internal/domain/entities"
	"reward-ops.backend/internal/interfaces/http/response"
	"reward-ops.backend/internal/usecases"
)

// RegistrationHandler handles registration endpoints
type RegistrationHandler struct {
	intake *usecases.RegistrationIntakeUsecase
	commit *usecases.RegistrationCommitUsecase
}

// NewRegistrationHandler creates a new registration handler
func NewRegistrationHandler(intake *usecases.RegistrationIntakeUsecase, commit *usecases.RegistrationCommitUsecase) *RegistrationHandler {
	return &RegistrationHandler{intake: intake, commit: commit}
}

type registerShopOwnerForm struct {
	Name       string `form:"name" binding:"required,min=2,max=100"`
	Phone      string `form:"phone" binding:"required,min=9,max=15"`
	ShopName   string `form:"shopName" binding:"required,min=2,max=255"`
	TaxID      string `form:"taxId" binding:"required"`
	CRN        string `form:"crn" binding:"required"`
	DistrictID string `form:"districtId" binding:"required,uuid"`
	Address    string `form:"address"`
}

// RegisterShopOwner handles shop owner registration
// POST /api/v1/register/shop-owner (multipart)
func (h *RegistrationHandler) RegisterShopOwner(c *gin.Context) {
	var form registerShopOwnerForm
	if err := c.ShouldBind(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": "INVALID_INPUT", "message": err.Error()})
		return
	}

	input := &entities.RegisterShopOwnerInput{
		Name:       form.Name,
		Phone:      form.Phone,
		ShopName:   form.ShopName,
		TaxID:      form.TaxID,
		CRN:        form.CRN,
		DistrictID: form.DistrictID,
		Address:    form.Address,
	}

	if fileHeader, err := c.FormFile("image"); err == nil && fileHeader != nil {
		file, err := fileHeader.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"code": "INVALID_INPUT", "message": "unreadable image"})
			return
		}
		defer file.Close()
		input.Image = &entities.MediaUpload{Reader: file, Filename: fileHeader.Filename}
	}

	resp, err := h.intake.RegisterShopOwner(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusAccepted, resp)
}

// RegisterSeller handles seller registration
// POST /api/v1/register/seller
func (h *RegistrationHandler) RegisterSeller(c *gin.Context) {
	var input entities.RegisterSellerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": "INVALID_INPUT", "message": err.Error()})
		return
	}

	resp, err := h.intake.RegisterSeller(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusAccepted, resp)
}

// RegisterTechnician handles technician registration
// POST /api/v1/register/technician
func (h *RegistrationHandler) RegisterTechnician(c *gin.Context) {
	var input entities.RegisterTechnicianInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": "INVALID_INPUT", "message": err.Error()})
		return
	}

	resp, err := h.intake.RegisterTechnician(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusAccepted, resp)
}

// VerifyRegistration completes the OTP round trip and creates the account
// POST /api/v1/register/verify
func (h *RegistrationHandler) VerifyRegistration(c *gin.Context) {
	var input entities.VerifyOtpInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": "INVALID_INPUT", "message": err.Error()})
		return
	}

	account, err := h.commit.Verify(c.Request.Context(), input.Handle, input.Code)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{
		"accountId": account.ID,
		"status":    account.Status,
		"message":   "registration submitted for review",
	})
}
