// Package queue carries background jobs over Kafka. Enqueue is synchronous
// fire-and-forget from the request path; the consumers run in the worker
// binary. Delivery is at-least-once, so every handler must be safe to
// re-run.
package queue

// ThumbnailJob asks the worker to generate the resized derivatives for an
// uploaded image. Valid only while the referenced record exists.
type ThumbnailJob struct {
	FileID string `json:"fileId"`
	UserID string `json:"userId"`
	Name   string `json:"name"`
}

// WelcomeJob asks the worker to send the welcome email for a new user.
type WelcomeJob struct {
	UserID string `json:"userId"`
}
