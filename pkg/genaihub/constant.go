package genaihub

import "time"

const (
	// DefaultModel is the default chat model served through GenAI Hub
	DefaultModel = "gpt-4o"

	// DefaultTimeout is the default HTTP client timeout
	DefaultTimeout = 30 * time.Second

	// tokenPath is appended to the XSUAA auth URL
	tokenPath = "/oauth/token"
)
