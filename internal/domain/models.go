package domain

import "time"

// User is a roster entry. A user belongs to exactly one team and is matched
// against commit authors by ID or by GithubUsername, case-insensitively.
type User struct {
	ID             string `db:"id"`
	Name           string `db:"name"`
	GithubUsername string `db:"github_username"`
	TeamID         int    `db:"team_id"`
	IsTechnical    bool   `db:"is_technical"`
	IsActive       bool   `db:"is_active"`
}

type Team struct {
	ID          int    `db:"id"`
	Name        string `db:"name"`
	RepoURL     string `db:"repo_url"`
	GithubToken string `db:"github_token"`
}

type TeamWithMembers struct {
	ID      int
	Name    string
	RepoURL string
	Members []User
}

// Collaborator is a repository collaborator reported by the ingestion side,
// used to reconcile the roster with the actual repo membership.
type Collaborator struct {
	Login     string
	AvatarURL string
}

// CommitMetrics are the derived per-commit scores. They are computed once by
// the normalizer and never mutated afterwards.
type CommitMetrics struct {
	Activity      float64 `db:"activity_score"`
	Impact        float64 `db:"impact_score"`
	Collaboration float64 `db:"collaboration_score"`
	Visibility    float64 `db:"visibility_score"`
	Final         float64 `db:"final_score"`
}

// CommitRecord is one raw commit event plus its attached metrics. The raw
// signal fields come from the ingestion adapter; missing numerics are zero.
type CommitRecord struct {
	Hash           string    `db:"hash"`
	TeamID         int       `db:"team_id"`
	AuthorUsername string    `db:"author_username"`
	Timestamp      time.Time `db:"committed_at"`
	Message        string    `db:"message"`
	FilesChanged   int       `db:"files_changed"`
	IsBugFix       bool      `db:"is_bug_fix"`
	IsPRMerged     bool      `db:"is_pr_merged"`
	PRReviewsGiven int       `db:"pr_reviews_given"`
	ReviewComments int       `db:"review_comments"`
	IssueComments  int       `db:"issue_comments"`
	SlackMessages  int       `db:"slack_messages"`
	SlackThreads   int       `db:"slack_threads"`
	SlackMentions  int       `db:"slack_mentions"`

	Metrics CommitMetrics
}

type AttendanceStatus string

const (
	AttendancePresent AttendanceStatus = "Present"
	AttendanceLeave   AttendanceStatus = "Leave"
	AttendanceHalfDay AttendanceStatus = "Half-Day"
)

// AttendanceRecord holds at most one status per (user, calendar day).
// Marking the same day again overwrites the status.
type AttendanceRecord struct {
	UserID string           `db:"user_id"`
	Day    time.Time        `db:"day"`
	Status AttendanceStatus `db:"status"`
}

type NonTechActivity struct {
	ID           string  `db:"id"`
	UserID       string  `db:"user_id"`
	Type         string  `db:"type"`
	Description  string  `db:"description"`
	ImpactPoints float64 `db:"impact_points"`
}

type ClientFeedback struct {
	ID          string    `db:"id"`
	UserID      string    `db:"user_id"`
	Description string    `db:"description"`
	Date        time.Time `db:"date"`
}

type WorkSubmission struct {
	ID          string    `db:"id"`
	UserID      string    `db:"user_id"`
	Title       string    `db:"title"`
	Description string    `db:"description"`
	Link        string    `db:"link"`
	SubmittedAt time.Time `db:"submitted_at"`
}

// Badge is the behavioral label assigned relative to team peers. The set is
// closed and classification is mutually exclusive.
type Badge string

const (
	BadgeSilentArchitect     Badge = "Silent Architect"
	BadgeHighVisLowImpact    Badge = "High Visibility / Low Impact"
	BadgeStarPerformer       Badge = "Star Performer"
	BadgeBalancedContributor Badge = "Balanced Contributor"
)

// ScoreMetrics is one row of a team's score snapshot. The whole set for a
// team is replaced atomically on each recomputation.
type ScoreMetrics struct {
	UserID                 string  `db:"user_id"`
	TeamID                 int     `db:"team_id"`
	AvgImpact              float64 `db:"avg_impact"`
	AvgActivity            float64 `db:"avg_activity"`
	AvgCollaboration       float64 `db:"avg_collaboration"`
	AvgVisibility          float64 `db:"avg_visibility"`
	NonTechScore           float64 `db:"non_tech_score"`
	FinalContributionScore float64 `db:"final_contribution_score"`
	Rank                   int     `db:"rank"`
	Badge                  Badge   `db:"badge"`
}
