package utils

const (
	OrganizationName                      = "Casas Gold"
	CORSLowSecurityAllowedOriginLocalhost = "http://localhost:*"
)
