package responses

// ResponseDTO is the envelope every successful response is written in.
type ResponseDTO struct {
	Success    bool        `json:"success"`
	Message    string      `json:"message,omitempty"`
	Data       interface{} `json:"data,omitempty"`
	Pagination *Pagination `json:"pagination,omitempty"`
}

type Pagination struct {
	Total      int    `json:"total"`
	Page       int    `json:"page"`
	PageSize   int    `json:"page_size"`
	TotalPages int    `json:"total_pages"`
	NextURL    string `json:"next_url,omitempty"`
	PrevURL    string `json:"prev_url,omitempty"`
}
