package simpletex

type Response struct {
	Status    bool    `json:"status"`
	RequestID string  `json:"request_id"`
	Result    *Result `json:"res"`
}

type Result struct {
	LaTeX string  `json:"latex"`
	Conf  float64 `json:"conf"`
}
