package httperr

import (
	"github.com/gin-gonic/gin"
)

// Machine-readable error codes. Clients branch on Code, not Message.
const (
	CodeValidation       = "VALIDATION_ERROR"
	CodeUnauthorized     = "UNAUTHORIZED"
	CodeForbidden        = "FORBIDDEN"
	CodeNotFound         = "NOT_FOUND"
	CodeBedUnavailable   = "BED_UNAVAILABLE"
	CodeDuplicateItem    = "DUPLICATE_CART_ITEM"
	CodeCartConflict     = "CART_CONFLICT"
	CodeEmptyCart        = "EMPTY_CART"
	CodeTermsNotAccepted = "TERMS_NOT_ACCEPTED"
	CodeNotCancellable   = "NOT_CANCELLABLE"
	CodeInvalidStatus    = "INVALID_STATUS"
	CodeNotReviewable    = "NOT_REVIEWABLE"
	CodeDuplicateReview  = "DUPLICATE_REVIEW"
	CodeInternal         = "INTERNAL_ERROR"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, code, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status}
	resp.Error.Code = code
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}
