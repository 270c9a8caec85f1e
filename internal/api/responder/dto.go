package responder

type SaveDocumentResponse struct {
	OK      bool          `json:"ok"`
	Message string        `json:"message,omitempty"`
	Error   string        `json:"error,omitempty"`
	Stats   DocumentStats `json:"stats,omitempty"`
}

type DocumentStats struct {
	GlobalVars int `json:"global_vars"`
	Intents    int `json:"intenciones"`
}

type StoreDebugInfo struct {
	Exists         bool   `json:"exists"`
	SizeKB         string `json:"size_kb"`
	Path           string `json:"path"`
	ContentPreview string `json:"content_preview"`
}

type DebugResponse struct {
	Status        string            `json:"status"`
	ResponsesJSON StoreDebugInfo    `json:"respuestas_json"`
	Endpoints     map[string]string `json:"endpoints"`
}

type TestMatchRequest struct {
	Text string `json:"text" validate:"required"`
}

type TestMatchResponse struct {
	Matched    bool    `json:"matched"`
	Intent     string  `json:"intent,omitempty"`
	Pattern    string  `json:"pattern,omitempty"`
	Similarity float64 `json:"similarity,omitempty"`
	Response   string  `json:"response,omitempty"`
}
