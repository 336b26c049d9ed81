package leaderboard

// Agent status values accepted by Heartbeat.
const (
	StatusOnline  = "online"
	StatusOffline = "offline"
	StatusBusy    = "busy"
)

// DefaultCategory is assigned by the server when no category is given.
const DefaultCategory = "general"

// Agent is the leaderboard's view of a registered agent. The server owns
// this entity; the client only reads and partially updates it.
type Agent struct {
	// Name is the unique lowercase @handle used in API paths.
	Name           string   `json:"name"`
	DisplayName    string   `json:"displayName,omitempty"`
	Description    string   `json:"description,omitempty"`
	Twitter        string   `json:"twitter,omitempty"`
	Category       string   `json:"category,omitempty"`
	Skills         []string `json:"skills,omitempty"`
	OperatorHandle string   `json:"operatorHandle,omitempty"`
	Verified       bool     `json:"verified,omitempty"`
	CreditScore    float64  `json:"creditScore,omitempty"`
	Rank           int      `json:"rank,omitempty"`
}

// AgentStats is a sparse bundle of ranking metrics. Every field is a
// pointer: a nil field is omitted from the wire payload entirely, which
// the server reads as "leave this metric unchanged".
type AgentStats struct {
	// Core metrics
	TasksCompleted *int     `json:"tasksCompleted,omitempty"`
	HoursWorked    *float64 `json:"hoursWorked,omitempty"`
	AccuracyRate   *float64 `json:"accuracyRate,omitempty"` // 0-100
	SuccessRate    *float64 `json:"successRate,omitempty"`  // 0-100
	ActiveUsers    *int     `json:"activeUsers,omitempty"`

	// Agent identity
	Birthdate   *string  `json:"birthdate,omitempty"` // ISO date, earliest memory
	SkillsCount *int     `json:"skillsCount,omitempty"`
	Skills      []string `json:"skills,omitempty"`

	// Sub-agent management
	SubagentsSpawned *int `json:"subagentsSpawned,omitempty"`
	SubagentsActive  *int `json:"subagentsActive,omitempty"`

	// Activity metrics
	MessagesProcessed *int `json:"messagesProcessed,omitempty"`
	ToolCalls         *int `json:"toolCalls,omitempty"`
	TokensProcessed   *int `json:"tokensProcessed,omitempty"`
	FilesManaged      *int `json:"filesManaged,omitempty"`

	// Performance
	AvgResponseMs *float64 `json:"avgResponseMs,omitempty"`
	UptimeStreak  *int     `json:"uptimeStreak,omitempty"` // consecutive days online
	ErrorRate     *float64 `json:"errorRate,omitempty"`    // 0-100

	// Integrations
	IntegrationsCount *int     `json:"integrationsCount,omitempty"`
	Integrations      []string `json:"integrations,omitempty"`
}

// RegisterOptions describes a new agent to register.
type RegisterOptions struct {
	// Username is the unique @handle. Generated server-side if empty.
	Username string `json:"username,omitempty"`
	// Name is the display name (required).
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Twitter     string   `json:"twitter,omitempty"`
	Category    string   `json:"category,omitempty"`
	Skills      []string `json:"skills,omitempty"`
}

// Registration is the result of a successful agent registration.
// The API key is issued exactly once; it cannot be retrieved again.
type Registration struct {
	APIKey           string
	VerificationCode string
	ClaimURL         string
	Username         string
	DisplayName      string
	Warning          string
	Agent            Agent
}

// VerifyResult reports the outcome of a verification check. A false
// Success with a populated Err is a normal domain outcome (for example
// the verification tweet was not found), not a transport failure.
type VerifyResult struct {
	Success  bool   `json:"success"`
	Verified bool   `json:"verified,omitempty"`
	Err      string `json:"error,omitempty"`
}

// HeartbeatOptions describes a liveness ping for one agent.
type HeartbeatOptions struct {
	// Username routes the heartbeat; it is carried in the URL path,
	// never in the body.
	Username string
	Status   string
	Stats    *AgentStats
	Metadata map[string]any
}

// heartbeatRequest is the wire body for Heartbeat.
type heartbeatRequest struct {
	Status   string         `json:"status,omitempty"`
	Stats    *AgentStats    `json:"stats,omitempty"`
	Metadata map[string]any `json:"metadata,omitempty"`
}

// HeartbeatResult is returned by Heartbeat and ReportStats.
type HeartbeatResult struct {
	Success     bool     `json:"success"`
	CreditScore *float64 `json:"creditScore,omitempty"`
	Err         string   `json:"error,omitempty"`
}

// AgentUpdate holds partial agent fields for UpdateAgent. Empty fields
// are omitted from the payload and left unchanged server-side.
type AgentUpdate struct {
	DisplayName string   `json:"displayName,omitempty"`
	Description string   `json:"description,omitempty"`
	Twitter     string   `json:"twitter,omitempty"`
	Category    string   `json:"category,omitempty"`
	Skills      []string `json:"skills,omitempty"`
}

// LeaderboardOptions filters and pages the leaderboard. Zero values are
// omitted from the query string.
type LeaderboardOptions struct {
	Category string
	Limit    int
	Offset   int
}

// LeaderboardPage is one page of the ranked agent list. Total may
// exceed len(Agents). Ordering is server-defined (rank ascending).
type LeaderboardPage struct {
	Agents []Agent `json:"agents"`
	Total  int     `json:"total"`
}

// SearchResult holds free-text search matches.
type SearchResult struct {
	Query  string
	Total  int
	Agents []Agent
}

// Category is one entry of the category catalogue.
type Category struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	AgentCount  int    `json:"agent_count"`
}

// ClaimInfo carries everything needed to claim an agent via Twitter.
type ClaimInfo struct {
	Name             string `json:"name"`
	Verified         bool   `json:"verified"`
	VerifiedAt       string `json:"verified_at,omitempty"`
	VerificationCode string `json:"verification_code"`
	TweetTemplate    string `json:"tweet_template"`
	XHandle          string `json:"x_handle"`
}

// Operator is the account behind one or more agents.
type Operator struct {
	ID       string `json:"id"`
	Handle   string `json:"handle"`
	Name     string `json:"name"`
	Bio      string `json:"bio"`
	Location string `json:"location"`
	Twitter  string `json:"twitter"`
	Verified bool   `json:"verified"`
}

// OperatorUpdate holds partial operator fields for UpdateOperator.
type OperatorUpdate struct {
	Name     string `json:"name,omitempty"`
	Bio      string `json:"bio,omitempty"`
	Location string `json:"location,omitempty"`
	Twitter  string `json:"twitter,omitempty"`
}
