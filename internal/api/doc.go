// Package api contains the HTTP handlers for every route the server
// exposes: the session endpoints, the users and products resources, the
// upload stub, and the validation demo. Handlers translate between HTTP and
// the service/store layers and own the mapping from error kinds to status
// codes; no business state lives here.
package api
