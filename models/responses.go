package models

// DataEnvelope is the success body of most endpoints. Data is serialized
// even when it is null (e.g. an update of a missing customer).
type DataEnvelope struct {
	Data any `json:"data"`
}

// ListEnvelope is the success body of the list endpoints.
type ListEnvelope struct {
	Data any      `json:"data"`
	Meta ListMeta `json:"meta"`
}

// MessageEnvelope carries a human-readable confirmation and, optionally,
// the affected record.
type MessageEnvelope struct {
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// ErrorEnvelope is the body of every failed request.
type ErrorEnvelope struct {
	Error string `json:"error"`
}

// ListMeta describes a page of a list response.
// Total is the number of all matching records regardless of paging.
type ListMeta struct {
	Page     int   `json:"page"`
	PageSize int   `json:"pageSize"`
	Total    int64 `json:"total"`
}

// AppInfo is returned by the version endpoint.
type AppInfo struct {
	Version string `json:"version"`
}
