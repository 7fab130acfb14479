package common

const (
	// AuthorizationHeaderName is the gRPC metadata key carrying the access
	// token as "Bearer <token>".
	AuthorizationHeaderName = "authorization"

	// TokenTypeBearer is the only token type issued by the server.
	TokenTypeBearer = "bearer"

	// MaxFieldLength bounds stored names and emails.
	MaxFieldLength = 255
)
