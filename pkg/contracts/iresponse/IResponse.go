package iresponse

import "encoding/json"

type Response struct {
	HttpStatus       int
	Explanation      string
	ErrorExplanation string
	Code             int
	Error            bool
	Success          bool
	Temporary        bool
	Data             json.RawMessage
}
