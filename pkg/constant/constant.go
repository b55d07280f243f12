package constant

import "time"

const (
	MinPasswordLength = 6
	MaxPasswordLength = 100

	MaxTaskTextLength = 200

	ResetTokenBytes = 32
	ResetTokenTTL   = time.Hour

	BcryptCost = 10
)
