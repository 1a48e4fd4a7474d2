// Package thirdweb_sdk bootstraps a thirdweb.Client from environment variables.
// NEXT_PUBLIC_THIRD_CLIENT_ID is required; when it is unset or empty,
// initialisation fails with ErrMissingConfiguration before any handle exists.
// THIRDWEB_SECRET_KEY and THIRDWEB_API_URL are optional. The returned handle is
// meant to be built once in main and passed to the components that need it.
package thirdweb_sdk
