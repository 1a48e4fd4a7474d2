// Package thirdweb provides the client handle used to talk to thirdweb
// services. A Client is built once by CreateClient from a client ID issued in
// the thirdweb dashboard, and is then shared read-only by every component that
// needs it. Outbound requests carry the identifying x-client-id header (and
// x-secret-key for server-side callers) so the upstream can attribute usage.
package thirdweb
