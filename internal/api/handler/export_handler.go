package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"shiftswap/backend/internal/service"
	"shiftswap/backend/pkg/response"
)

// ExportHandler 数据导出 HTTP 处理器
type ExportHandler struct {
	exportSvc service.ExportService
}

// NewExportHandler 创建 ExportHandler
func NewExportHandler(exportSvc service.ExportService) *ExportHandler {
	return &ExportHandler{exportSvc: exportSvc}
}

// ExportSwaps 导出换班申请 Excel
// GET /api/v1/export/swaps?status=completed
func (h *ExportHandler) ExportSwaps(c *gin.Context) {
	status := c.Query("status")

	buf, err := h.exportSvc.ExportSwaps(c.Request.Context(), status)
	if err != nil {
		response.InternalError(c)
		return
	}

	filename := fmt.Sprintf("swap_requests_%s.xlsx", time.Now().Format("20060102_150405"))
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		buf.Bytes())
}
