package auth

import (
	"fmt"

	"github.com/aws/aws-lambda-go/events"
)

// Identity is the caller as described by the upstream authorizer.
// It is trusted as given; nothing here authenticates or authorizes.
type Identity struct {
	UserID string `json:"userId"`
	Email  string `json:"email"`
	Role   string `json:"role"`
}

// FromLambdaAuthorizer reads the identity injected by API Gateway.
// A Lambda authorizer context (requestContext.authorizer.lambda) takes
// precedence over JWT authorizer claims. Missing values yield empty fields
// and non-string values are stringified; extraction never fails.
func FromLambdaAuthorizer(a *events.APIGatewayV2HTTPRequestContextAuthorizerDescription) Identity {
	if a == nil {
		return Identity{}
	}
	if len(a.Lambda) > 0 {
		return Identity{
			UserID: stringValue(a.Lambda["userId"]),
			Email:  stringValue(a.Lambda["email"]),
			Role:   stringValue(a.Lambda["role"]),
		}
	}
	if a.JWT != nil {
		return Identity{
			UserID: a.JWT.Claims["sub"],
			Email:  a.JWT.Claims["email"],
			Role:   a.JWT.Claims["role"],
		}
	}
	return Identity{}
}

func stringValue(v any) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return s
	default:
		return fmt.Sprint(s)
	}
}

// FromLambdaContext reads the identity from an API Gateway HTTP API request context.
func FromLambdaContext(rc events.APIGatewayV2HTTPRequestContext) Identity {
	return FromLambdaAuthorizer(rc.Authorizer)
}
