package model

// Response is the JSON body of every answer from the intake endpoint.
type Response struct {
	OK     bool   `json:"ok"`
	Error  string `json:"error,omitempty"`
	Detail string `json:"detail,omitempty"`
}

// OKResponse is the body of a successful submission.
var OKResponse = Response{OK: true}
