package v1

import (
	"errors"
	"net/http"
	"strconv"

	"pondpatrol-web/internal/delivery/http/response"
	"pondpatrol-web/internal/domain"
	"pondpatrol-web/internal/usecase"
	"pondpatrol-web/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	inquiryUC domain.InquiryUsecase
}

func NewAdminHandler(admin *gin.RouterGroup, inquiryUC domain.InquiryUsecase) {
	handler := &AdminHandler{
		inquiryUC: inquiryUC,
	}

	admin.GET("/inquiries", handler.ListInquiries)
	admin.GET("/inquiries/export", handler.ExportInquiries)
}

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ListInquiries godoc
// @Summary      List Inquiries
// @Description  Newest contact inquiries first (admin only)
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        limit  query     int  false  "Max results (default 50, max 500)"
// @Success      200    {object}  response.Response{data=[]domain.Inquiry}
// @Failure      400    {object}  response.Response
// @Failure      401    {object}  response.Response
// @Failure      503    {object}  response.Response
// @Router       /admin/inquiries [get]
func (h *AdminHandler) ListInquiries(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			_ = c.Error(apperror.BadRequest("limit must be a positive integer"))
			return
		}
		limit = n
	}

	items, err := h.inquiryUC.List(c.Request.Context(), limit)
	if err != nil {
		_ = c.Error(inquiryError(err))
		return
	}
	if items == nil {
		items = []domain.Inquiry{}
	}

	response.Success(c, http.StatusOK, "Inquiries", items)
}

// ExportInquiries godoc
// @Summary      Export Inquiries
// @Description  Newest contact inquiries (up to 10,000) as an Excel workbook (admin only)
// @Tags         admin
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security     BearerAuth
// @Success      200  {file}    file
// @Failure      401  {object}  response.Response
// @Failure      503  {object}  response.Response
// @Router       /admin/inquiries/export [get]
func (h *AdminHandler) ExportInquiries(c *gin.Context) {
	data, filename, err := h.inquiryUC.Export(c.Request.Context())
	if err != nil {
		_ = c.Error(inquiryError(err))
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, xlsxContentType, data)
}

func inquiryError(err error) *apperror.AppError {
	if errors.Is(err, usecase.ErrNoInquiryStore) {
		return apperror.Unavailable("Inquiry storage is not configured", err)
	}
	return apperror.Internal(err)
}
