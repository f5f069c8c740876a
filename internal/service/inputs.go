package service

// SignUpInput is the structural sign-up payload before validation.
type SignUpInput struct {
	Username       string
	Email          string
	Password       string
	RepeatPassword string
}

// SignInInput is the sign-in payload. Both fields are required non-empty.
type SignInInput struct {
	Email    string
	Password string
}

// SignInResult is returned on successful sign-in.
type SignInResult struct {
	Username string `json:"username"`
	Token    string `json:"token"`
}

// EntryInput is the ledger append payload before validation.
// Amount is a pointer so a missing field is distinguishable from zero.
type EntryInput struct {
	Amount      *float64
	Description string
	Type        string
}
