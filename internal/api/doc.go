// Package api implements the HTTP surface of the blog service: the post
// resource handlers, the registration/login handlers, the request/response
// schemas, and the mapping from internal errors to HTTP status codes.
//
// Handlers receive their identity (or lack of one) from the middleware
// package and decide per endpoint whether anonymity is acceptable: listing
// and fetching posts are public, every mutation requires an identity, and
// update/delete additionally require the identity to match the post's author.
package api
