package api

import (
	"net/http"

	"github.com/Vetlyst2025/HPVC-Boarding-Calendar/internal/domain/reservation"
	reqdto "github.com/Vetlyst2025/HPVC-Boarding-Calendar/internal/handler/dto/request"
	"github.com/Vetlyst2025/HPVC-Boarding-Calendar/internal/handler/httperr"
	"github.com/Vetlyst2025/HPVC-Boarding-Calendar/internal/pkg/errs"
	"github.com/Vetlyst2025/HPVC-Boarding-Calendar/internal/usecase"
	"github.com/Vetlyst2025/HPVC-Boarding-Calendar/internal/usecase/commands"
	"github.com/Vetlyst2025/HPVC-Boarding-Calendar/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

// Rule order matters: a missing row is also a failed store operation.
var usecaseErrorRules = []httperr.Rule{
	{Target: errs.ErrStoreUnavailable, Status: http.StatusServiceUnavailable, Text: "Reservation storage is not configured"},
	{Target: errs.ErrReservationNotFound, Status: http.StatusNotFound, Text: "Reservation not found"},
	{Target: errs.ErrStoreOperationFailed, Status: http.StatusBadGateway, Text: "The reservation store could not complete the request"},
	{Target: errs.ErrSummaryGenerationFailed, Status: http.StatusBadGateway, Message: func(err error) string {
		return errs.UserMessage(err, "Failed to communicate with the AI service.")
	}},
	{Target: commands.ErrInvalidReservation, Status: http.StatusBadRequest, Message: validationMessage},
	{Target: reqdto.ErrInvalidDate, Status: http.StatusBadRequest, Text: reqdto.ErrInvalidDate.Error()},
	{Target: queries.ErrInvalidMonth, Status: http.StatusBadRequest, Text: queries.ErrInvalidMonth.Error()},
	{Target: commands.ErrAlreadyCheckedOut, Status: http.StatusConflict, Text: "Reservation is already checked out"},
	{Target: usecase.ErrAuthDisabled, Status: http.StatusNotFound, Text: "Staff login is not enabled"},
	{Target: usecase.ErrInvalidCredentials, Status: http.StatusUnauthorized, Text: "Invalid password"},
}

var domainValidationErrors = []error{
	reservation.ErrInvalidDateRange,
	reservation.ErrAnimalNameEmpty,
	reservation.ErrOwnerNameEmpty,
	reservation.ErrInvalidStatus,
}

func validationMessage(err error) string {
	for _, target := range domainValidationErrors {
		if errs.Is(err, target) {
			return target.Error()
		}
	}
	return "Invalid reservation"
}

func abortWithUsecaseError(c *gin.Context, err error) {
	httperr.AbortWithRules(c, err, usecaseErrorRules)
}
