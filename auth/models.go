package auth

// Role distinguishes the two back-office user populations.
type Role string

const (
	RoleAgent    Role = "Agent"
	RoleEmployee Role = "Employee"
)

// User is the domain representation of a back-office login. It mirrors the
// getLoginUser procedure row and carries no JSON annotations so presentation
// layers can shape it themselves.
type User struct {
	UID          string
	AgentID      string
	AgentCode    string
	FullName     string
	Email        string
	Mobile       string
	Role         Role
	PasswordHash string
	Gender       string
	Approved     string
	Payout       string
	PaymentMode  string
}

// LoginRequest contains login credentials.
type LoginRequest struct {
	Mobile   string `json:"mobile"`
	Password string `json:"password"`
}
