package handler

import (
	"net/http"
	"strings"

	"grocery/internal/usecase"

	"github.com/labstack/echo/v4"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

// CreatedResponse は201の本文。LocationヘッダにもURIを入れる
type CreatedResponse struct {
	ID int64 `json:"id"`
}

func writeError(c echo.Context, err error) error {
	if err == nil {
		return nil
	}
	if he, ok := usecase.AsHTTPError(err); ok {
		return c.JSON(he.Status, ErrorResponse{Error: he.Message})
	}

	//500
	return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
}

// ServiceResponseのタグをHTTPへ写す。
// CREATED→201+Location / UPDATED,DELETED→204 / NOT_FOUND→404 / INVALID→400 / それ以外→500
func writeServiceResponse(c echo.Context, res usecase.ServiceResponse, location func(id int64) string) error {
	switch res.Status {
	case usecase.StatusCreated:
		if location != nil {
			c.Response().Header().Set(echo.HeaderLocation, location(res.CreatedID))
		}
		return c.JSON(http.StatusCreated, CreatedResponse{ID: res.CreatedID})
	case usecase.StatusUpdated, usecase.StatusDeleted:
		return c.NoContent(http.StatusNoContent)
	case usecase.StatusNotFound:
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: joinMessages(res.Messages, "not found")})
	case usecase.StatusInvalid:
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: joinMessages(res.Messages, "invalid input")})
	default:
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: joinMessages(res.Messages, "internal error")})
	}
}

func joinMessages(messages []string, fallback string) string {
	if len(messages) == 0 {
		return fallback
	}
	return strings.Join(messages, " ")
}
