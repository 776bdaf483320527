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

type NewsletterHandler struct {
	newsletterUC domain.NewsletterUsecase
}

func NewNewsletterHandler(public *gin.RouterGroup, newsletterUC domain.NewsletterUsecase, submit ...gin.HandlerFunc) {
	handler := &NewsletterHandler{
		newsletterUC: newsletterUC,
	}

	public.POST("/newsletter", chain(submit, handler.Subscribe)...)
}

// Subscribe godoc
// @Summary      Subscribe to Newsletter
// @Description  Adds an email address to the newsletter. Subscribing twice is not an error.
// @Tags         newsletter
// @Accept       json
// @Produce      json
// @Param        subscriber  body      domain.NewsletterRequest  true  "Subscriber"
// @Success      200         {object}  response.Response
// @Failure      400         {object}  response.Response
// @Failure      422         {object}  response.Response
// @Router       /newsletter [post]
func (h *NewsletterHandler) Subscribe(c *gin.Context) {
	var req domain.NewsletterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(apperror.BadRequest("Invalid request body"))
		return
	}

	if err := h.newsletterUC.Subscribe(c.Request.Context(), &req, middleware.SubmitMeta(c, domain.SourceAPI)); err != nil {
		var verrs domain.ValidationErrors
		if errors.As(err, &verrs) {
			_ = c.Error(apperror.Unprocessable("Please enter a valid email", verrs))
			return
		}
		_ = c.Error(apperror.Internal(err))
		return
	}

	response.Success(c, http.StatusOK, "Thanks for subscribing!", nil)
}
