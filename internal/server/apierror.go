package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	accountdomain "github.com/PeterNasrGab/orders-tracking-system-sub000/internal/account/domain"
	customerdomain "github.com/PeterNasrGab/orders-tracking-system-sub000/internal/customer/domain"
	mergedomain "github.com/PeterNasrGab/orders-tracking-system-sub000/internal/mergegroup/domain"
	orderdomain "github.com/PeterNasrGab/orders-tracking-system-sub000/internal/order/domain"
	"github.com/PeterNasrGab/orders-tracking-system-sub000/internal/pricing"
	settingsdomain "github.com/PeterNasrGab/orders-tracking-system-sub000/internal/settings/domain"
	uploaddomain "github.com/PeterNasrGab/orders-tracking-system-sub000/internal/upload/domain"
)

var errInvalidRequest = errors.New("invalid request body")

// AbortWithError maps domain errors onto HTTP statuses and renders the
// error envelope.
func AbortWithError(c *gin.Context, err error) {
	status := statusFor(err)
	c.AbortWithStatusJSON(status, gin.H{"error": gin.H{"message": err.Error()}})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, orderdomain.ErrNotFound),
		errors.Is(err, customerdomain.ErrNotFound),
		errors.Is(err, accountdomain.ErrNotFound),
		errors.Is(err, mergedomain.ErrNotFound),
		errors.Is(err, uploaddomain.ErrNotFound):
		return http.StatusNotFound

	case errors.Is(err, orderdomain.ErrDuplicateCode),
		errors.Is(err, accountdomain.ErrDuplicateName),
		errors.Is(err, mergedomain.ErrAlreadyMember),
		errors.Is(err, uploaddomain.ErrAlreadyReviewed):
		return http.StatusConflict

	case errors.Is(err, orderdomain.ErrRecomputeInFlight):
		return http.StatusConflict

	case errors.Is(err, orderdomain.ErrPersistence):
		return http.StatusBadGateway

	case errors.Is(err, orderdomain.ErrConsistency):
		return http.StatusInternalServerError

	case errors.Is(err, pricing.ErrInvalidClassification),
		errors.Is(err, pricing.ErrInvalidOrderInput),
		errors.Is(err, pricing.ErrNonPositiveRate),
		errors.Is(err, orderdomain.ErrInvalidStatus),
		errors.Is(err, orderdomain.ErrBackwardStatus),
		errors.Is(err, orderdomain.ErrInvalidCode),
		errors.Is(err, orderdomain.ErrMissingCustomer),
		errors.Is(err, customerdomain.ErrInvalidName),
		errors.Is(err, accountdomain.ErrInvalidName),
		errors.Is(err, mergedomain.ErrTooFewMembers),
		errors.Is(err, mergedomain.ErrMixedChannels),
		errors.Is(err, mergedomain.ErrMemberNotFound),
		errors.Is(err, mergedomain.ErrInvalidTracking),
		errors.Is(err, uploaddomain.ErrNoImages),
		errors.Is(err, uploaddomain.ErrInvalidAmount),
		errors.Is(err, uploaddomain.ErrMissingOrderRef),
		errors.Is(err, settingsdomain.ErrInvalidRules),
		errors.Is(err, errInvalidRequest):
		return http.StatusBadRequest

	default:
		return http.StatusInternalServerError
	}
}
