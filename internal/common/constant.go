// Package common contains shared constants and sentinel errors used across
// SafeWalk components.
package common

// AccessTokenHeaderName is the gRPC metadata key used to carry the
// session access token on outbound requests.
const AccessTokenHeaderName = "access_token"

// DefaultRelationship is applied to contacts created without one.
const DefaultRelationship = "Friend"
