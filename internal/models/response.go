package models

import (
	"net/http"
	"time"
)

// ResponseModel Base response structure that can be reused
type ResponseModel struct {
	Code        int         `json:"code"`
	CurrentTime int64       `json:"currentTime"`
	Data        interface{} `json:"data"`
	Text        string      `json:"text"`
	Version     int         `json:"version"`
}

// ResponseCurrentTime returns the current time in epoch milliseconds.
func ResponseCurrentTime() int64 {
	return time.Now().UnixNano() / int64(time.Millisecond)
}

// NewResponse builds a version 2 envelope.
func NewResponse(code int, data interface{}, text string) ResponseModel {
	return ResponseModel{
		Code:        code,
		CurrentTime: ResponseCurrentTime(),
		Data:        data,
		Text:        text,
		Version:     2,
	}
}

func NewOKResponse(data interface{}) ResponseModel {
	return NewResponse(http.StatusOK, data, "OK")
}

// NewEntryResponse wraps a single entry as {"entry": ...}.
func NewEntryResponse(entry interface{}) ResponseModel {
	data := map[string]interface{}{
		"entry": entry,
	}
	return NewOKResponse(data)
}

// NewListResponse wraps a list as {"list": ..., "limitExceeded": false}.
func NewListResponse(list interface{}) ResponseModel {
	data := map[string]interface{}{
		"limitExceeded": false,
		"list":          list,
	}
	return NewOKResponse(data)
}
