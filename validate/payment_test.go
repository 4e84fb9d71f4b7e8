package validate

import (
	"net/http/httptest"
	"strings"
	"testing"

	"restaurant_manager/model"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func paymentTestApp(t *testing.T) (*fiber.App, *model.CreatePaymentInput, *uint) {
	t.Helper()

	var gotInput model.CreatePaymentInput
	var gotOrderId uint

	app := fiber.New()
	app.Post("/orders/:orderId/payments", CreatePayment("orderId"), func(c *fiber.Ctx) error {
		gotInput = c.Locals("inputCreatePayment").(model.CreatePaymentInput)
		gotOrderId = c.Locals("inputOrderId").(uint)
		return c.SendStatus(fiber.StatusOK)
	})
	return app, &gotInput, &gotOrderId
}

func TestCreatePaymentValidation(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		body       string
		wantStatus int
	}{
		{
			name:       "valid payment",
			path:       "/orders/7/payments",
			body:       `{"amount": 10.5, "method": "pix"}`,
			wantStatus: fiber.StatusOK,
		},
		{
			name:       "non numeric order id",
			path:       "/orders/abc/payments",
			body:       `{"amount": 10.5, "method": "pix"}`,
			wantStatus: fiber.StatusBadRequest,
		},
		{
			name:       "missing amount",
			path:       "/orders/7/payments",
			body:       `{"method": "cash"}`,
			wantStatus: fiber.StatusBadRequest,
		},
		{
			name:       "zero amount",
			path:       "/orders/7/payments",
			body:       `{"amount": 0, "method": "cash"}`,
			wantStatus: fiber.StatusBadRequest,
		},
		{
			name:       "unknown method",
			path:       "/orders/7/payments",
			body:       `{"amount": 5, "method": "check"}`,
			wantStatus: fiber.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app, _, _ := paymentTestApp(t)

			req := httptest.NewRequest("POST", tt.path, strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")

			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)
		})
	}
}

func TestCreatePaymentStoresLocals(t *testing.T) {
	app, gotInput, gotOrderId := paymentTestApp(t)

	req := httptest.NewRequest("POST", "/orders/42/payments", strings.NewReader(`{"amount": 12.34, "method": "debit"}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	assert.Equal(t, uint(42), *gotOrderId)
	assert.Equal(t, 12.34, gotInput.Amount)
	assert.Equal(t, "debit", gotInput.Method)
}
