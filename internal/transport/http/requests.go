package http

type createTeamRequest struct {
	TeamName string `json:"team_name" validate:"required,min=3,max=50"`
	RepoURL  string `json:"repo_url" validate:"omitempty,max=255"`
	Members  []struct {
		UserID         string `json:"user_id" validate:"required,custom_id,min=1,max=100"`
		Username       string `json:"username" validate:"required,min=2,max=100"`
		GithubUsername string `json:"github_username" validate:"omitempty,custom_id,max=100"`
		IsTechnical    *bool  `json:"is_technical"`
		IsActive       bool   `json:"is_active"`
	} `json:"members" validate:"omitempty,dive"`
}

type syncTeamRequest struct {
	TeamName string `json:"team_name" validate:"required,min=3,max=50"`
	UseDemo  bool   `json:"use_demo"`
}

type syncMembersRequest struct {
	TeamName string `json:"team_name" validate:"required,min=3,max=50"`
}

type setUserActiveRequest struct {
	UserID   string `json:"user_id" validate:"required,custom_id,min=1,max=100"`
	IsActive bool   `json:"is_active"`
}

type markAttendanceRequest struct {
	UserID string `json:"user_id" validate:"required,custom_id,min=1,max=100"`
	Day    string `json:"day" validate:"omitempty,len=10"`
	Status string `json:"status" validate:"required,oneof=Present Leave Half-Day"`
}

type addActivityRequest struct {
	UserID       string  `json:"user_id" validate:"required,custom_id,min=1,max=100"`
	Type         string  `json:"type" validate:"required,min=2,max=100"`
	Description  string  `json:"description" validate:"required,min=2,max=1000"`
	ImpactPoints float64 `json:"impact_points" validate:"gte=0,lte=100"`
}

type addFeedbackRequest struct {
	UserID      string `json:"user_id" validate:"required,custom_id,min=1,max=100"`
	Description string `json:"description" validate:"required,min=2,max=1000"`
}

type submitWorkRequest struct {
	UserID      string `json:"user_id" validate:"required,custom_id,min=1,max=100"`
	Title       string `json:"title" validate:"required,min=2,max=255"`
	Description string `json:"description" validate:"omitempty,max=1000"`
	Link        string `json:"link" validate:"omitempty,url,max=500"`
}
