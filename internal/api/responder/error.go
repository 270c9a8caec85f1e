package responder

import (
	"ResponderBot/pkg/response"
	"net/http"
)

var (
	ErrStoreWrite = response.NewError(http.StatusInternalServerError, "failed to persist response document")
)
