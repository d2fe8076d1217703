package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/stock-sentinel/internal/application/alerts"
	"github.com/tu-usuario/stock-sentinel/internal/application/dto"
	"github.com/tu-usuario/stock-sentinel/internal/metrics"
)

// AlertHandler reporte de alertas de stock bajo (protegido).
type AlertHandler struct {
	uc *alerts.LowStockAlertUseCase
}

// NewAlertHandler construye el handler.
func NewAlertHandler(uc *alerts.LowStockAlertUseCase) *AlertHandler {
	return &AlertHandler{uc: uc}
}

// LowStock godoc
// @Summary      Reporte de stock bajo de la empresa
// @Tags         alerts
// @Security     Bearer
// @Produce      json
// @Param        company_id   path   string  true   "ID de la empresa"
// @Param        window_days  query  int     false  "Ventana de ventas recientes en días"  default(30)
// @Success      200  {object}  dto.LowStockReportDTO
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/companies/{company_id}/alerts/low-stock [get]
func (h *AlertHandler) LowStock(c *fiber.Ctx) error {
	companyID := c.Params("company_id")
	if companyID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "company_id es requerido"})
	}
	// El token solo da acceso a las alertas de su propia empresa.
	if tokenCompany := GetCompanyID(c); tokenCompany != "" && tokenCompany != companyID {
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "alertas de otra empresa"})
	}
	windowDays := c.QueryInt("window_days", alerts.DefaultWindowDays)
	report, err := h.uc.ComputeLowStockAlerts(c.UserContext(), companyID, windowDays)
	if err != nil {
		return internalError(c, "alerts.low_stock", err, map[string]string{"company_id": companyID})
	}
	metrics.RecordAlertReport(report.TotalAlerts)
	return c.JSON(report)
}
