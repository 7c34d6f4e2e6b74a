package handler

import (
	"errors"
	"net/http"

	"github.com/FynnK/FestivalInventory/internal/apierror"
	"github.com/FynnK/FestivalInventory/internal/ledger"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// bindAndValidate binds JSON body and runs go-playground/validator tags.
// Returns false and writes the error response if validation fails —
// the caller should return immediately without writing another response.
func bindAndValidate(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Invalid JSON: "+err.Error()))
		return false
	}
	if err := validate.Struct(req); err != nil {
		fields := make(map[string]string)
		for _, fe := range err.(validator.ValidationErrors) {
			fields[fe.Field()] = fe.Tag()
		}
		c.JSON(http.StatusUnprocessableEntity, apierror.NewValidation(fields))
		return false
	}
	return true
}

// respondError translates core errors into HTTP status codes so every
// handler maps them identically.
func respondError(c *gin.Context, err error) {
	var insufficient *ledger.InsufficientStockError
	var unknown *ledger.UnknownItemError

	switch {
	case errors.As(err, &unknown):
		c.JSON(http.StatusNotFound, gin.H{
			"detail":      err.Error(),
			"unknownCode": unknown.Code,
		})
	case errors.As(err, &insufficient):
		c.JSON(http.StatusConflict, gin.H{
			"detail":    err.Error(),
			"itemId":    insufficient.ItemID,
			"available": insufficient.Available,
		})
	case errors.Is(err, ledger.ErrNotFound):
		c.JSON(http.StatusNotFound, apierror.New(err.Error()))
	case errors.Is(err, ledger.ErrDuplicateID), errors.Is(err, ledger.ErrDuplicateName):
		c.JSON(http.StatusConflict, apierror.New(err.Error()))
	case errors.Is(err, ledger.ErrInvalidInput):
		c.JSON(http.StatusUnprocessableEntity, apierror.New(err.Error()))
	case errors.Is(err, ledger.ErrEmptyReceipt),
		errors.Is(err, ledger.ErrNoLocationSelected),
		errors.Is(err, ledger.ErrMalformedDocument):
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
	default:
		c.Error(err) // picked up by the ErrorHandler middleware
	}
}
