// Package common contains shared constants and sentinel errors used across
// Inkwell components.
package common

// AccessTokenHeaderName is the gRPC metadata key used to carry the
// session token on outbound requests.
const AccessTokenHeaderName = "access_token"

// ContentServiceName is the gRPC service the server registers and the
// client calls.
const ContentServiceName = "inkwell.v1.ContentService"
