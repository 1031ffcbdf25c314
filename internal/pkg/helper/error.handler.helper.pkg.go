package helper

import (
	"extrato-gateway/internal/pkg/logger"
)

// HandleAppError logs err with its origin. Only fatal errors are returned to the caller.
func HandleAppError(err error, function, step string, fatal bool) error {
	if err != nil {
		if fatal {
			logger.Error.Println("Fatal error in function: ", function, "Step: ", step, "Details: ", err)
			return err
		}
		logger.Warning.Println("Error in function: ", function, "Step: ", step, "Details: ", err)
	}
	return nil
}
