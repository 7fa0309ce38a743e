package types

// ErrorText is what the primary display shows after a failed evaluation.
const ErrorText = "Error"

// DisplayState is everything a renderer needs after a key press.
type DisplayState struct {
	Primary   string `json:"primary"`
	Secondary string `json:"secondary"`
	IsError   bool   `json:"is_error"`
}
