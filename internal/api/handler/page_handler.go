package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"github.com/networth-app/networth/internal/api/metrics"
	"github.com/networth-app/networth/internal/api/middleware"
	"github.com/networth-app/networth/internal/core/ports"
)

// PageHandler serves the calculator and history pages.
type PageHandler struct {
	calculator ports.CalculatorService
}

func NewPageHandler(calculator ports.CalculatorService) *PageHandler {
	return &PageHandler{calculator: calculator}
}

type calculateForm struct {
	Assets      string `form:"assets" validate:"required"`
	Liabilities string `form:"liabilities" validate:"required"`
}

// Index handles GET / — the calculator form, greeting the user when
// authenticated.
func (h *PageHandler) Index(c echo.Context) error {
	return c.Render(http.StatusOK, "index.html", echo.Map{
		"User":        middleware.CurrentUser(c),
		"Assets":      "",
		"Liabilities": "",
	})
}

// Calculate handles POST / — parses the figures, records the calculation and
// renders the result. Requires authentication (enforced by RequireUser).
func (h *PageHandler) Calculate(c echo.Context) error {
	user := middleware.CurrentUser(c)

	var form calculateForm
	if err := c.Bind(&form); err != nil {
		return h.calculateError(c, &form, "invalid form submission")
	}
	if err := c.Validate(&form); err != nil {
		return h.calculateError(c, &form, err.Error())
	}

	assets, err := decimal.NewFromString(form.Assets)
	if err != nil {
		return h.calculateError(c, &form, "assets must be a number")
	}
	liabilities, err := decimal.NewFromString(form.Liabilities)
	if err != nil {
		return h.calculateError(c, &form, "liabilities must be a number")
	}

	calc, err := h.calculator.Record(c.Request().Context(), user.ID, assets, liabilities)
	if err != nil {
		return err
	}
	metrics.CalculationsTotal.Inc()

	return c.Render(http.StatusOK, "index.html", echo.Map{
		"User":          user,
		"Assets":        form.Assets,
		"Liabilities":   form.Liabilities,
		"Result":        calc,
		"NetWorthClass": netWorthClass(calc.NetWorth),
	})
}

// History handles GET /history — the full newest-first list of the caller's
// calculations. Requires authentication.
func (h *PageHandler) History(c echo.Context) error {
	user := middleware.CurrentUser(c)

	calcs, err := h.calculator.History(c.Request().Context(), user.ID)
	if err != nil {
		return err
	}

	return c.Render(http.StatusOK, "history.html", echo.Map{
		"User":         user,
		"Calculations": calcs,
	})
}

func (h *PageHandler) calculateError(c echo.Context, form *calculateForm, msg string) error {
	return c.Render(http.StatusBadRequest, "index.html", echo.Map{
		"User":        middleware.CurrentUser(c),
		"Error":       msg,
		"Assets":      form.Assets,
		"Liabilities": form.Liabilities,
	})
}

func netWorthClass(d decimal.Decimal) string {
	switch d.Sign() {
	case 1:
		return "positive"
	case -1:
		return "negative"
	default:
		return "zero"
	}
}
