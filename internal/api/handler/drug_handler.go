package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/pharmatrack/inventory-system/internal/api/metrics"
	"github.com/pharmatrack/inventory-system/internal/core/domain"
	"github.com/pharmatrack/inventory-system/internal/core/ports"
)

// DrugHandler handles HTTP requests for the inventory ledger.
type DrugHandler struct {
	service ports.InventoryService
}

func NewDrugHandler(service ports.InventoryService) *DrugHandler {
	return &DrugHandler{service: service}
}

type drugRequest struct {
	Name     string  `json:"name" validate:"required"`
	Dosage   string  `json:"dosage"`
	Quantity int     `json:"quantity" validate:"gte=0"`
	Price    float64 `json:"price" validate:"required,gt=0"`
	Brand    string  `json:"brand"`
	Location string  `json:"location"`
}

type sellRequest struct {
	QuantitySold int `json:"quantitySold"`
}

func (r drugRequest) toInput() ports.DrugInput {
	return ports.DrugInput{
		Name:     r.Name,
		Dosage:   r.Dosage,
		Quantity: r.Quantity,
		Price:    r.Price,
		Brand:    r.Brand,
		Location: r.Location,
	}
}

// List handles GET /api/drugs.
//
// @Summary      List all drugs
// @Tags         drugs
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.Drug
// @Router       /api/drugs [get]
func (h *DrugHandler) List(c echo.Context) error {
	drugs, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, drugs)
}

// Create handles POST /api/drugs. Admin only.
//
// @Summary      Add a new drug
// @Tags         drugs
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      drugRequest  true  "Drug fields"
// @Success      201   {object}  domain.Drug
// @Failure      400   {object}  map[string]string
// @Router       /api/drugs [post]
func (h *DrugHandler) Create(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	var req drugRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	drug, err := h.service.Create(c.Request().Context(), actor, req.toInput())
	if err != nil {
		return err
	}

	metrics.StockMutationsTotal.WithLabelValues("created").Inc()
	return c.JSON(http.StatusCreated, drug)
}

// Update handles PUT /api/drugs/:id. Full replace semantics; admin only.
//
// @Summary      Update a drug
// @Tags         drugs
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int          true  "Drug ID"
// @Param        body  body      drugRequest  true  "Drug fields"
// @Success      200   {object}  domain.Drug
// @Failure      404   {object}  map[string]string
// @Router       /api/drugs/{id} [put]
func (h *DrugHandler) Update(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	id, err := drugID(c)
	if err != nil {
		return err
	}

	var req drugRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	drug, err := h.service.Update(c.Request().Context(), actor, id, req.toInput())
	if err != nil {
		return err
	}

	metrics.StockMutationsTotal.WithLabelValues("updated").Inc()
	return c.JSON(http.StatusOK, drug)
}

// Delete handles DELETE /api/drugs/:id. Admin only.
//
// @Summary      Delete a drug
// @Tags         drugs
// @Security     BearerAuth
// @Param        id  path  int  true  "Drug ID"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /api/drugs/{id} [delete]
func (h *DrugHandler) Delete(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	id, err := drugID(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), actor, id); err != nil {
		return err
	}

	metrics.StockMutationsTotal.WithLabelValues("deleted").Inc()
	return c.NoContent(http.StatusNoContent)
}

// Sell handles PUT /api/drugs/sell/:id. Admin and cashier.
//
// @Summary      Sell units of a drug
// @Tags         drugs
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        Idempotency-Key  header    string       false  "Idempotency key to prevent duplicate sales on retry"
// @Param        id               path      int          true   "Drug ID"
// @Param        body             body      sellRequest  true   "Quantity to sell"
// @Success      200              {object}  domain.Drug
// @Failure      400              {object}  map[string]string
// @Failure      404              {object}  map[string]string
// @Router       /api/drugs/sell/{id} [put]
func (h *DrugHandler) Sell(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	id, err := drugID(c)
	if err != nil {
		return err
	}

	var req sellRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	drug, err := h.service.Sell(c.Request().Context(), ports.SellInput{
		Actor:          actor,
		DrugID:         id,
		Quantity:       req.QuantitySold,
		IdempotencyKey: c.Request().Header.Get("Idempotency-Key"),
	})
	if err != nil {
		var stockErr *domain.InsufficientStockError
		switch {
		case errors.As(err, &stockErr):
			metrics.SaleErrorsTotal.WithLabelValues("insufficient_stock").Inc()
		case errors.Is(err, domain.ErrInvalidQuantity):
			metrics.SaleErrorsTotal.WithLabelValues("invalid_quantity").Inc()
		case errors.Is(err, domain.ErrDrugNotFound):
			metrics.SaleErrorsTotal.WithLabelValues("not_found").Inc()
		}
		return err
	}

	metrics.SalesTotal.WithLabelValues(string(actor.Role)).Inc()
	return c.JSON(http.StatusOK, drug)
}

func drugID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid drug id")
	}
	return id, nil
}
