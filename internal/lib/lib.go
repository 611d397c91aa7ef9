// Package lib groups supporting libraries that are not part of the
// handler/service/repository request path: background jobs, email
// delivery, and generic utilities.
package lib
