package v1

import (
	"errors"
	"net/http"

	"pondpatrol-web/internal/delivery/http/middleware"
	"pondpatrol-web/internal/delivery/http/response"
	"pondpatrol-web/internal/domain"
	"pondpatrol-web/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type ContactHandler struct {
	contactUC domain.ContactUsecase
}

// FarmSizeOption is one entry of the farm size select
type FarmSizeOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// NewContactHandler registers the contact routes (public, no auth required).
// submit wraps the routes that accept data, typically a rate limiter.
func NewContactHandler(public *gin.RouterGroup, contactUC domain.ContactUsecase, submit ...gin.HandlerFunc) {
	handler := &ContactHandler{
		contactUC: contactUC,
	}

	public.POST("/contact", chain(submit, handler.SubmitContact)...)
	public.POST("/contact/validate", handler.ValidateContact)
	public.GET("/farm-sizes", handler.FarmSizes)
}

// SubmitContact godoc
// @Summary      Submit Contact Form
// @Description  Request a free consultation. Returns 422 with a field -> message map when any field is invalid.
// @Tags         contact
// @Accept       json
// @Produce      json
// @Param        contact  body      domain.ContactRequest  true  "Contact Form Data"
// @Success      200      {object}  response.Response{data=domain.Inquiry}
// @Failure      400      {object}  response.Response
// @Failure      422      {object}  response.Response
// @Failure      429      {object}  response.Response
// @Router       /contact [post]
func (h *ContactHandler) SubmitContact(c *gin.Context) {
	var req domain.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(apperror.BadRequest("Invalid request body"))
		return
	}

	inq, err := h.contactUC.Submit(c.Request.Context(), &req, middleware.SubmitMeta(c, domain.SourceAPI))
	if err != nil {
		var verrs domain.ValidationErrors
		if errors.As(err, &verrs) {
			_ = c.Error(apperror.Unprocessable("Please correct the highlighted fields", verrs))
			return
		}
		_ = c.Error(apperror.Internal(err))
		return
	}

	response.Success(c, http.StatusOK, "Thank you! We'll contact you within 24 hours.", inq)
}

// ValidateContact godoc
// @Summary      Validate Contact Form
// @Description  Runs the contact field rules without submitting. An empty map means the form is valid.
// @Tags         contact
// @Accept       json
// @Produce      json
// @Param        contact  body      domain.ContactRequest  true  "Contact Form Data"
// @Success      200      {object}  response.Response{data=map[string]string}
// @Failure      400      {object}  response.Response
// @Router       /contact/validate [post]
func (h *ContactHandler) ValidateContact(c *gin.Context) {
	var req domain.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(apperror.BadRequest("Invalid request body"))
		return
	}

	verrs := h.contactUC.Validate(&req)
	msg := "Form is valid"
	if len(verrs) > 0 {
		msg = "Form has errors"
	}
	response.Success(c, http.StatusOK, msg, verrs)
}

// FarmSizes godoc
// @Summary      List Farm Sizes
// @Description  The accepted farmSize values in display order
// @Tags         contact
// @Produce      json
// @Success      200  {object}  response.Response{data=[]FarmSizeOption}
// @Router       /farm-sizes [get]
func (h *ContactHandler) FarmSizes(c *gin.Context) {
	out := make([]FarmSizeOption, 0, len(domain.FarmSizes))
	for _, s := range domain.FarmSizes {
		out = append(out, FarmSizeOption{Value: string(s), Label: s.Label()})
	}
	response.Success(c, http.StatusOK, "Farm sizes", out)
}
