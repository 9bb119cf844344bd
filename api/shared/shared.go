package shared

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

// GenericAPIResponse defines the structure of all responses on API endpoints
type GenericAPIResponse struct {
	Data  interface{} `json:"data"`
	Error string      `json:"error"`
	Code  ReturnCode  `json:"code"`
}

// ReturnCode defines the type defines to identify return codes
type ReturnCode string

const (
	// ReturnCodeSuccess defines a successful request
	ReturnCodeSuccess ReturnCode = "successful"

	// ReturnCodeInternalError defines a request which hasn't been executed successfully due to an internal error
	ReturnCodeInternalError ReturnCode = "internal_issue"

	// ReturnCodeRequestError defines a request which hasn't been executed successfully due to a bad request received
	ReturnCodeRequestError ReturnCode = "bad_request"

	// ReturnCodeSystemBusy defines a request which hasn't been executed successfully due to too many requests
	ReturnCodeSystemBusy ReturnCode = "system_busy"
)

// RespondWithValidationError should be called when the request cannot be satisfied due to a (request) validation error
func RespondWithValidationError(c *gin.Context, err error, innerErr error) {
	errMessage := fmt.Sprintf("%s: %s", err.Error(), innerErr.Error())

	RespondWith(c, http.StatusBadRequest, nil, errMessage, ReturnCodeRequestError)
}

// RespondWithInternalError should be called when the request cannot be satisfied due to an internal error
func RespondWithInternalError(c *gin.Context, err error, innerErr error) {
	errMessage := fmt.Sprintf("%s: %s", err.Error(), innerErr.Error())

	RespondWith(c, http.StatusInternalServerError, nil, errMessage, ReturnCodeInternalError)
}

// RespondWithSuccess should be called when the request can be satisfied
func RespondWithSuccess(c *gin.Context, data interface{}) {
	RespondWith(c, http.StatusOK, data, "", ReturnCodeSuccess)
}

// RespondWith will respond with the generic API response
func RespondWith(c *gin.Context, status int, dataField interface{}, err string, code ReturnCode) {
	c.JSON(
		status,
		GenericAPIResponse{
			Data:  dataField,
			Error: err,
			Code:  code,
		},
	)
}
