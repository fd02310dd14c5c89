// Package middleware holds the gin middleware shared by all routes: trace
// ids, request logging, bearer authentication and the admin gate.
package middleware
