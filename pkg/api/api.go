// package api defines the JSON types exposed by the HTTP API. Services
// translate domain models into these types so the transport layer never
// leaks persistence details.
package api

import "time"

type TeamMember struct {
	UserId         string `json:"user_id"`
	Username       string `json:"username"`
	GithubUsername string `json:"github_username,omitempty"`
	IsTechnical    bool   `json:"is_technical"`
	IsActive       bool   `json:"is_active"`
}

type Team struct {
	TeamName string       `json:"team_name"`
	RepoUrl  string       `json:"repo_url,omitempty"`
	Members  []TeamMember `json:"members"`
}

type User struct {
	UserId      string `json:"user_id"`
	Username    string `json:"username"`
	TeamName    string `json:"team_name"`
	IsTechnical bool   `json:"is_technical"`
	IsActive    bool   `json:"is_active"`
}

type ScoreMetrics struct {
	UserId                 string  `json:"user_id"`
	TeamName               string  `json:"team_name"`
	AvgImpact              float64 `json:"avg_impact"`
	AvgActivity            float64 `json:"avg_activity"`
	AvgCollaboration       float64 `json:"avg_collaboration"`
	AvgVisibility          float64 `json:"avg_visibility"`
	NonTechScore           float64 `json:"non_tech_score"`
	FinalContributionScore float64 `json:"final_contribution_score"`
	Rank                   int     `json:"rank"`
	Badge                  string  `json:"badge"`
}

type SyncResponse struct {
	TeamName     string         `json:"team_name"`
	CommitsCount int            `json:"commits_count"`
	Scores       []ScoreMetrics `json:"scores"`
}

type NonTechActivity struct {
	Id           string  `json:"id"`
	UserId       string  `json:"user_id"`
	Type         string  `json:"type"`
	Description  string  `json:"description"`
	ImpactPoints float64 `json:"impact_points"`
}

type ClientFeedback struct {
	Id          string    `json:"id"`
	UserId      string    `json:"user_id"`
	Description string    `json:"description"`
	Date        time.Time `json:"date"`
}

type WorkSubmission struct {
	Id          string    `json:"id"`
	UserId      string    `json:"user_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Link        string    `json:"link,omitempty"`
	SubmittedAt time.Time `json:"submitted_at"`
}

type AttendanceRecord struct {
	UserId string    `json:"user_id"`
	Day    time.Time `json:"day"`
	Status string    `json:"status"`
}

type ErrorResponseErrorCode string

const (
	NOTFOUND   ErrorResponseErrorCode = "NOT_FOUND"
	TEAMEXISTS ErrorResponseErrorCode = "TEAM_EXISTS"
	BADREQUEST ErrorResponseErrorCode = "BAD_REQUEST"
	FETCHFAIL  ErrorResponseErrorCode = "FETCH_FAILED"
)

type ErrorResponse struct {
	Error struct {
		Code    ErrorResponseErrorCode `json:"code"`
		Message string                 `json:"message"`
	} `json:"error"`
}
