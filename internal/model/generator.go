package model

// GenerateRequest represents a password generation request.
// Pointer bools distinguish a missing flag (nil -> form default) from an explicit false.
type GenerateRequest struct {
	Length    int   `json:"length"`
	Lowercase *bool `json:"lowercase"`
	Uppercase *bool `json:"uppercase"`
	Digits    *bool `json:"digits"`
	Symbols   *bool `json:"symbols"`
	Hash      bool  `json:"hash"`
}

// GenerateResponse represents a password generation response.
// Password is empty when every character class was disabled.
type GenerateResponse struct {
	Password string `json:"password"`
	Length   int    `json:"length"`
	Hash     string `json:"hash,omitempty"`
}
