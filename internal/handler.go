package internal

// Handler declares routes on a router.
//
//	func (h *Contact) Routes(r relayform.Router) {
//		r.GET("/", h.page)
//		r.POST("/contact", h.submit)
//	}
type Handler interface {
	Routes(r Router)
}

// HandlerFunc handles a request. A returned error goes to the app's
// error handler unless the response was already written.
type HandlerFunc func(c Context) error

// Middleware wraps a HandlerFunc.
type Middleware func(next HandlerFunc) HandlerFunc

// ErrorHandler renders an error returned by a handler.
type ErrorHandler func(Context, error) error
