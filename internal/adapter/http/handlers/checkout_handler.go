package handlers

import (
	"bytes"
	"embed"
	"errors"
	"html/template"
	"log"
	"net/http"
	"strings"

	"jobmarket_billing/internal/domain/entities"
	"jobmarket_billing/internal/usecase"
	"jobmarket_billing/pkg"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

//go:embed templates/checkout.html
var checkoutTemplates embed.FS

var checkoutPage = template.Must(template.ParseFS(checkoutTemplates, "templates/checkout.html"))

var errInvalidCheckoutMessage = pkg.NewDomainErrorSimple("INVALID_CHECKOUT_MESSAGE", "Invalid checkout message", http.StatusBadRequest)

// CheckoutHandler serves the embedded checkout page and receives the single
// message it posts back.
type CheckoutHandler struct {
	initiation usecase.IPaymentInitiationUseCase
	result     usecase.IPaymentResultUseCase
}

func NewCheckoutHandler(initiation usecase.IPaymentInitiationUseCase, result usecase.IPaymentResultUseCase) *CheckoutHandler {
	return &CheckoutHandler{initiation: initiation, result: result}
}

type checkoutView struct {
	SessionID   string
	Title       string
	Gateway     string
	Mock        bool
	RedirectURL string
	AmountLabel string
	MessagesURL string
	Options     entities.GatewayConfig
	Types       map[string]entities.CheckoutMessageType
}

var messageTypes = map[string]entities.CheckoutMessageType{
	"Success":   entities.MessagePaymentSuccess,
	"Failed":    entities.MessagePaymentFailed,
	"Cancelled": entities.MessagePaymentCancelled,
	"PageError": entities.MessagePageError,
}

// @Summary      Checkout page opened in the web view
// @Tags         checkout
// @Produce      html
// @Param        session_id path string true "Session ID"
// @Success      200 {string} string "text/html"
// @Failure      400 {object} pkg.HTTPError
// @Router       /checkout/{session_id} [get]
func (h *CheckoutHandler) Page(c *gin.Context) {
	sessionID := c.Param("session_id")
	data, err := h.initiation.CheckoutPage(c.Request.Context(), sessionID)
	if err != nil {
		log.Printf("[checkout][handler] page unavailable session_id=%s err=%v", sessionID, err)
		appErr := mapPaymentError(err)
		c.String(appErr.HTTPStatus, appErr.Message)
		return
	}
	if data.Session.State != entities.SessionStateAwaitingGateway {
		c.String(http.StatusConflict, "This payment is already "+string(data.Session.State)+".")
		return
	}

	view := checkoutView{
		SessionID:   data.Session.ID,
		Title:       data.Config.Name,
		Gateway:     data.Session.Gateway,
		Mock:        strings.Contains(data.Session.OrderID, "_mock_"),
		RedirectURL: data.Session.RedirectURL,
		AmountLabel: formatMinor(data.Session.AmountMinor, data.Session.Currency),
		MessagesURL: data.MessagesURL,
		Options:     data.Config,
		Types:       messageTypes,
	}

	var buf bytes.Buffer
	if err := checkoutPage.Execute(&buf, view); err != nil {
		log.Printf("[checkout][handler] render failed session_id=%s err=%v", sessionID, err)
		c.String(http.StatusInternalServerError, "checkout page unavailable")
		return
	}
	c.Header("Cache-Control", "no-store")
	c.Data(http.StatusOK, "text/html; charset=utf-8", buf.Bytes())
}

// @Summary      Receive the checkout page result message
// @Tags         checkout
// @Produce      json
// @Param        session_id path string true "Session ID"
// @Success      200 {object} response.OutcomeResponse
// @Failure      400 {object} pkg.HTTPError
// @Router       /checkout/{session_id}/messages [post]
func (h *CheckoutHandler) Messages(c *gin.Context) {
	sessionID := c.Param("session_id")
	raw, err := c.GetRawData()
	if err != nil {
		writeError(c, errInvalidCheckoutMessage)
		return
	}

	msg, err := entities.DecodeCheckoutMessage(raw)
	if err != nil {
		log.Printf("[checkout][handler] message rejected session_id=%s err=%v", sessionID, err)
		code := errInvalidCheckoutMessage
		if errors.Is(err, entities.ErrUnknownCheckoutMessage) {
			code = pkg.NewDomainErrorSimple("UNKNOWN_CHECKOUT_MESSAGE", "Unknown checkout message type", http.StatusBadRequest)
		}
		writeError(c, code)
		return
	}
	log.Printf("[checkout][handler] message session_id=%s type=%s", sessionID, msg.Type())

	outcome, err := h.result.HandleMessage(c.Request.Context(), sessionID, msg)
	if err != nil {
		log.Printf("[checkout][handler] message outcome session_id=%s state=%s err=%v", sessionID, outcome.State, err)
	}
	writeOutcome(c, outcome, err)
}

// formatMinor renders 12550 INR as "INR 125.50".
func formatMinor(amount int64, currency string) string {
	return currency + " " + decimal.New(amount, -2).StringFixed(2)
}
