package enum

import "github.com/gin-gonic/gin"

type EnvEnum string

const (
	DEVELOPMENT EnvEnum = "development"
	PRODUCTION  EnvEnum = "production"
	STAGING     EnvEnum = "staging"
)

func (e EnvEnum) ToString() string {
	switch e {
	case DEVELOPMENT:
		return "development"
	case PRODUCTION:
		return "production"
	case STAGING:
		return "staging"
	}
	return ""
}

func (e EnvEnum) IsValid() bool {
	switch e {
	case DEVELOPMENT, PRODUCTION, STAGING:
		return true
	}
	return false
}

// GinMode maps the environment to the gin engine mode.
func (e EnvEnum) GinMode() string {
	if e == PRODUCTION {
		return gin.ReleaseMode
	}
	return gin.DebugMode
}
