package handlers

import (
	"errors"
	"net/http"
	"net/url"

	"servicedirectory/models"
	"servicedirectory/services/directory"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// SubmissionHandler serves the add-service-provider flow.
type SubmissionHandler struct {
	Service directory.DirectoryService
}

func NewSubmissionHandler(svc directory.DirectoryService) *SubmissionHandler {
	return &SubmissionHandler{Service: svc}
}

// NewProviderFormHandler handles GET /add-service-provider.
func (h *SubmissionHandler) NewProviderFormHandler(c *gin.Context) {
	renderSubmissionForm(c, http.StatusOK, models.ProviderSubmission{}, "")
}

// CreateProviderHandler handles POST /add-service-provider.
func (h *SubmissionHandler) CreateProviderHandler(c *gin.Context) {
	logger := getLogger(c)

	var form models.ProviderSubmission
	if err := c.ShouldBind(&form); err != nil {
		logger.Info("Invalid provider submission", zap.Error(err))
		renderSubmissionForm(c, http.StatusBadRequest, form, validationMessage(err))
		return
	}

	req, err := form.ToRequest()
	if err != nil {
		logger.Info("Invalid service price", zap.String("price", form.ServicePrice), zap.Error(err))
		renderSubmissionForm(c, http.StatusBadRequest, form, "Service price must be a positive amount, e.g. 49.99.")
		return
	}

	res := h.Service.CreateProvider(c.Request.Context(), req)
	if !res.OK() {
		logger.Warn("Failed to create provider", zap.String("outcome", string(res.Outcome)), zap.Error(res.Err))
		status, msg := submissionFailure(res.Outcome, res.Err)
		renderSubmissionForm(c, status, form, msg)
		return
	}

	if res.Value == nil || res.Value.ID == "" {
		c.Redirect(http.StatusSeeOther, directory.ListingPath)
		return
	}
	logger.Info("Provider created", zap.String("id", res.Value.ID))
	c.Redirect(http.StatusSeeOther, directory.ListingPath+"/"+url.PathEscape(res.Value.ID))
}

func renderSubmissionForm(c *gin.Context, status int, form models.ProviderSubmission, errMsg string) {
	c.HTML(status, "add_provider.tmpl", gin.H{
		"Title": "Add Service Provider",
		"Form":  form,
		"Error": errMsg,
	})
}

func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		switch fe.Tag() {
		case "required":
			return "Please fill in the " + fe.Field() + " field."
		case "email":
			return "Please enter a valid email address."
		default:
			return "The " + fe.Field() + " field is invalid."
		}
	}
	return "The form could not be read. Please check your input."
}

func submissionFailure(outcome directory.Outcome, err error) (int, string) {
	switch {
	case outcome == directory.OutcomeRejected:
		var fe *directory.FetchError
		if errors.As(err, &fe) && fe.Message != "" {
			return http.StatusUnprocessableEntity, fe.Message
		}
		return http.StatusUnprocessableEntity, "The directory rejected this provider. Please review your details."
	case outcome == directory.OutcomeTimeout:
		return http.StatusGatewayTimeout, "The directory took too long to answer. Please try again."
	case outcome.Unreachable():
		return http.StatusBadGateway, "We could not reach the service directory. Please try again later."
	default:
		return http.StatusBadGateway, "Something went wrong while saving. Please try again."
	}
}
