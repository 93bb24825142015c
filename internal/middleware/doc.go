// Package middleware holds the gin middleware shared by both servers.
package middleware
