package models

type ResumeEntry struct {
	Title  string `json:"title"`
	Org    string `json:"org"`
	Period string `json:"period"`
	Detail string `json:"detail,omitempty"`
}

// Resume is a single per-user document held in memory for the session.
type Resume struct {
	Summary    string        `json:"summary"`
	Education  []ResumeEntry `json:"education"`
	Experience []ResumeEntry `json:"experience"`
	Skills     []string      `json:"skills"`
	UpdatedAt  int64         `json:"updatedAt"`
}
