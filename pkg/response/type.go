package response

// Resp is the standard JSON error body.
type Resp struct {
	ErrorCode int    `json:"error_code"`
	Message   string `json:"message"`
	Errors    any    `json:"errors,omitempty"`
}

// List is the standard paginated collection body. Every list endpoint
// returns this shape with the page of resources under "results".
type List struct {
	Count   int `json:"count"`
	Limit   int `json:"limit"`
	Offset  int `json:"offset"`
	Results any `json:"results"`
}

// NewList builds a List body. A nil results slice is normalized to an
// empty array so clients never see "results": null.
func NewList(count, limit, offset int, results any) List {
	if results == nil {
		results = []any{}
	}
	return List{
		Count:   count,
		Limit:   limit,
		Offset:  offset,
		Results: results,
	}
}
