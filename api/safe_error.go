package api

import (
	"gigbook/config"
)

// SafeErrorMessage hides internal error details from clients in release mode
func SafeErrorMessage(err error, fallback string) string {
	return config.SafeErrorMessage(err, fallback)
}
