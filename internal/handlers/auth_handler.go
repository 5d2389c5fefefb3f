package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/httpresp"
	"github.com/BruksfildServices01/barber-booking/internal/middleware"
	"github.com/BruksfildServices01/barber-booking/internal/models"
	"github.com/BruksfildServices01/barber-booking/internal/operator"
	"github.com/BruksfildServices01/barber-booking/internal/timezone"
)

type AuthHandler struct {
	operators operator.Store
	secret    string
	clock     timezone.Clock
	log       *zap.Logger
}

func NewAuthHandler(
	operators operator.Store,
	secret string,
	clock timezone.Clock,
	log *zap.Logger,
) *AuthHandler {
	return &AuthHandler{
		operators: operators,
		secret:    secret,
		clock:     clock,
		log:       log,
	}
}

// --------- Requests ---------

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// --------- Handlers ---------

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Email and password are required.")
		return
	}

	op, err := h.operators.FindOperatorByEmail(
		c.Request.Context(),
		operator.NormalizeEmail(req.Email),
	)
	if err != nil {
		if errors.Is(err, operator.ErrNotFound) {
			httperr.Unauthorized(c, "invalid_credentials", "Invalid email or password.")
			return
		}
		httperr.Respond(c, err, "login_failed")
		return
	}

	if !operator.CheckPassword(op, req.Password) {
		httperr.Unauthorized(c, "invalid_credentials", "Invalid email or password.")
		return
	}

	token, err := operator.IssueToken(h.secret, op, h.clock())
	if err != nil {
		h.log.Error("token signing failed", zap.Error(err))
		httperr.Internal(c, "failed_to_generate_token", "Could not issue token.")
		return
	}

	httpresp.OK(c, gin.H{
		"operator": operatorView(op),
		"token":    token,
	})
}

// Me returns the operator behind the current token.
func (h *AuthHandler) Me(c *gin.Context) {
	actor := middleware.ActorFrom(c)

	op, err := h.operators.GetOperator(c.Request.Context(), actor.OperatorID)
	if err != nil {
		if errors.Is(err, operator.ErrNotFound) {
			httperr.Unauthorized(c, "operator_not_found", "Operator no longer exists.")
			return
		}
		httperr.Respond(c, err, "failed_to_load_operator")
		return
	}

	httpresp.OK(c, gin.H{"operator": operatorView(op)})
}

func operatorView(op *models.Operator) gin.H {
	return gin.H{
		"id":    op.ID,
		"name":  op.Name,
		"email": op.Email,
		"role":  op.Role,
	}
}
