// Package handlers contains the HTTP handlers for the analysis API.
package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"

	appErrors "github.com/clauselens/clauselens/pkg/errors"
	"github.com/clauselens/clauselens/pkg/types/common"
)

// maxRequestBody caps request bodies at 2 MiB; contracts are text, anything
// larger is almost certainly a mistake or abuse.
const maxRequestBody = 2 << 20

// writeData writes the standard success envelope.
func writeData(w http.ResponseWriter, statusCode int, data interface{}) {
	writeJSON(w, statusCode, common.APIResponse[interface{}]{
		Success:   true,
		Data:      data,
		Timestamp: common.Now(),
	})
}

// writePage writes a success envelope carrying pagination metadata.
func writePage(w http.ResponseWriter, data interface{}, page, pageSize int, total int64) {
	writeJSON(w, http.StatusOK, common.APIResponse[interface{}]{
		Success: true,
		Data:    data,
		Pagination: &common.Pagination{
			Page:     page,
			PageSize: pageSize,
			Total:    total,
		},
		Timestamp: common.Now(),
	})
}

// writeError maps an application error to its HTTP status and writes the
// standard error envelope. Internal errors are masked; the detail stays in
// the logs.
func writeError(w http.ResponseWriter, err error) {
	code := appErrors.GetCode(err)
	status := code.HTTPStatus()

	message := err.Error()
	if status >= http.StatusInternalServerError {
		message = "internal server error"
	}

	writeJSON(w, status, common.APIResponse[interface{}]{
		Success: false,
		Error: &common.ErrorDetail{
			Code:    code.String(),
			Message: message,
		},
		Timestamp: common.Now(),
	})
}

func writeJSON(w http.ResponseWriter, statusCode int, body interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(body)
}

// decodeJSON reads and decodes a request body into dst, rejecting unknown
// fields and oversized payloads.
func decodeJSON(r *http.Request, dst interface{}) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxRequestBody))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return appErrors.InvalidParam("invalid request body: " + err.Error())
	}
	return nil
}

// parsePagination extracts page and page_size query parameters with the
// standard defaults.
func parsePagination(r *http.Request) (int, int) {
	page, pageSize := 1, 20
	if v := r.URL.Query().Get("page"); v != "" {
		if p, err := strconv.Atoi(v); err == nil && p > 0 {
			page = p
		}
	}
	if v := r.URL.Query().Get("page_size"); v != "" {
		if ps, err := strconv.Atoi(v); err == nil && ps > 0 && ps <= 100 {
			pageSize = ps
		}
	}
	return page, pageSize
}
