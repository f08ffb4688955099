package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/fitengage/gym-manager/internal/api/metrics"
	"github.com/fitengage/gym-manager/internal/core/domain"
	"github.com/fitengage/gym-manager/internal/core/ports"
)

type PaymentHandler struct {
	service ports.PaymentService
}

func NewPaymentHandler(service ports.PaymentService) *PaymentHandler {
	return &PaymentHandler{service: service}
}

// List handles GET /payments, most recent first.
//
// @Summary      List payments
// @Tags         payments
// @Produce      json
// @Security     BearerAuth
// @Param        search  query     string  false  "Member name filter"
// @Param        order   query     string  false  "asc or desc (default)"
// @Param        page    query     int     false  "Page number, 0 returns every row"
// @Param        limit   query     int     false  "Page size (default 20, max 100)"
// @Success      200     {object}  paymentsResponse
// @Failure      400     {object}  envelope
// @Failure      503     {object}  paymentsResponse
// @Router       /payments [get]
func (h *PaymentHandler) List(c echo.Context) error {
	var q listPaymentsQuery
	if err := c.Bind(&q); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid query.")
	}
	if err := c.Validate(&q); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	result, err := h.service.ListPayments(c.Request().Context(), ports.ListPaymentsInput{
		Search: q.Search,
		Order:  q.Order,
		Page:   q.Page,
		Limit:  q.Limit,
	})
	if err != nil {
		return listFailure(c, err, paymentsResponse{envelope: failed(err), Payments: []domain.Payment{}})
	}

	return c.JSON(http.StatusOK, paymentsResponse{
		envelope:   succeeded,
		Payments:   result.Items,
		Total:      result.Total,
		Page:       result.Page,
		Limit:      result.Limit,
		TotalPages: result.TotalPages,
	})
}

// Create handles POST /payments. The payment is dated by the store.
//
// @Summary      Record a payment
// @Tags         payments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      paymentRequest  true  "Payment"
// @Success      201   {object}  paymentCreatedResponse
// @Failure      400   {object}  envelope
// @Failure      404   {object}  envelope
// @Router       /payments [post]
func (h *PaymentHandler) Create(c echo.Context) error {
	var req paymentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid payload.")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	id, err := h.service.AddPayment(c.Request().Context(), ports.PaymentInput{
		MemberID:    req.MemberID,
		Amount:      req.Amount,
		PaymentType: req.PaymentType,
	})
	if err != nil {
		return err
	}

	metrics.PaymentsRecordedTotal.Inc()
	if req.Amount > 0 {
		metrics.PaymentsAmountTotal.Add(req.Amount)
	}
	return c.JSON(http.StatusCreated, paymentCreatedResponse{envelope: succeeded, PaymentID: id})
}

// Delete handles DELETE /payments/:id. Unknown ids succeed.
//
// @Summary      Delete a payment
// @Tags         payments
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Payment ID"
// @Success      200  {object}  envelope
// @Router       /payments/{id} [delete]
func (h *PaymentHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.service.DeletePayment(c.Request().Context(), id); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, succeeded)
}
