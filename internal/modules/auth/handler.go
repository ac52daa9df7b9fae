package auth

import (
	"errors"
	"net/http"

	"staybook/internal/domain"
	"staybook/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

// Handler manages all HTTP interactions for authentication
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterPublicRoutes(v1 *gin.RouterGroup) {
	authGroup := v1.Group("/auth")
	{
		authGroup.POST("/register/customer", h.RegisterCustomer)
		authGroup.POST("/register/vendor", h.RegisterVendor)
		authGroup.POST("/login", h.Login)
		authGroup.GET("/verify-email", h.VerifyEmail)
		authGroup.POST("/otp/request", h.RequestOTP)
		authGroup.POST("/otp/verify", h.VerifyOTP)
	}
}

func (h *Handler) RegisterProtectedRoutes(protected *gin.RouterGroup) {
	protected.GET("/users/me", h.GetMe)
}

func (h *Handler) RegisterCustomer(c *gin.Context) {
	var req RegisterCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body", err.Error())
		return
	}

	account, err := h.service.RegisterCustomer(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrAccountExists):
			response.Error(c, http.StatusConflict, "ACCOUNT_EXISTS", "An account exists with this email or phone")
		case errors.Is(err, ErrValidation):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid account details")
		default:
			response.Error(c, http.StatusInternalServerError, "REGISTRATION_FAILED", "Failed to register customer")
		}
		return
	}

	response.Success(c, http.StatusCreated, gin.H{
		"account": toAccountResponse(account),
		"message": "A verification email has been sent to " + account.Email,
	})
}

func (h *Handler) RegisterVendor(c *gin.Context) {
	var req RegisterVendorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body", err.Error())
		return
	}

	account, err := h.service.RegisterVendor(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrAccountExists):
			response.Error(c, http.StatusConflict, "ACCOUNT_EXISTS", "An account exists with this email or phone")
		case errors.Is(err, ErrValidation):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid account details")
		default:
			response.Error(c, http.StatusInternalServerError, "REGISTRATION_FAILED", "Failed to register vendor")
		}
		return
	}

	response.Success(c, http.StatusCreated, gin.H{
		"account": toAccountResponse(account),
		"message": "A verification email has been sent to " + account.Email,
	})
}

func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	result, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidCredentials):
			response.Error(c, http.StatusUnauthorized, "INVALID_CREDENTIALS", "Email or password is incorrect")
		case errors.Is(err, ErrNotVerified):
			response.Error(c, http.StatusForbidden, "NOT_VERIFIED", "Please verify your account, check your email inbox")
		default:
			response.Error(c, http.StatusInternalServerError, "LOGIN_FAILED", "Failed to login")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"account": toAccountResponse(result.Account),
		"token":   result.Token,
	})
}

func (h *Handler) VerifyEmail(c *gin.Context) {
	token := c.Query("token")

	account, err := h.service.VerifyEmail(c.Request.Context(), token)
	if err != nil {
		if errors.Is(err, ErrInvalidToken) {
			response.Error(c, http.StatusNotFound, "INVALID_TOKEN", "Invalid verification token")
			return
		}
		response.Error(c, http.StatusInternalServerError, "VERIFY_FAILED", "Failed to verify email")
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"account": toAccountResponse(account),
		"message": "Email successfully verified",
	})
}

func (h *Handler) RequestOTP(c *gin.Context) {
	var req OTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	if err := h.service.RequestOTP(c.Request.Context(), req.Email); err != nil {
		response.Error(c, http.StatusInternalServerError, "OTP_FAILED", "Failed to send OTP")
		return
	}

	response.Success(c, http.StatusAccepted, gin.H{"status": "accepted"})
}

func (h *Handler) VerifyOTP(c *gin.Context) {
	var req OTPVerifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	result, err := h.service.VerifyOTP(c.Request.Context(), req.Email, req.Code)
	if err != nil {
		switch {
		case errors.Is(err, ErrOTPExpired):
			response.Error(c, http.StatusUnauthorized, "OTP_EXPIRED", "The OTP has expired, request a new one")
		case errors.Is(err, ErrInvalidOTP):
			response.Error(c, http.StatusUnauthorized, "INVALID_OTP", "Wrong OTP, re-enter correct OTP")
		default:
			response.Error(c, http.StatusInternalServerError, "OTP_FAILED", "Failed to verify OTP")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"account": toAccountResponse(result.Account),
		"token":   result.Token,
	})
}

func (h *Handler) GetMe(c *gin.Context) {
	accountID := c.GetInt64("account_id")

	account, err := h.service.GetCurrentAccount(c.Request.Context(), accountID)
	if err != nil {
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Account not found")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"account": toAccountResponse(account)})
}

func toAccountResponse(a *domain.Account) AccountResponse {
	return AccountResponse{
		ID:           a.ID,
		Email:        a.Email,
		Role:         string(a.Role),
		FirstName:    a.FirstName,
		LastName:     a.LastName,
		Phone:        a.Phone,
		BusinessName: a.BusinessName,
		Verified:     a.Verified,
	}
}
