// internal/maze/handler.go
package maze

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Server wires a Responder into a fiber application. The transport stays
// separate from the page logic so the responder can be tested without it.
type Server struct {
	responder *Responder
	log       zerolog.Logger
}

func NewServer(responder *Responder, log zerolog.Logger) *Server {
	return &Server{responder: responder, log: log}
}

// App builds the fiber application serving the link maze. Every method on
// every path hits the same page handler.
func (s *Server) App() *fiber.App {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
	})

	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	app.Use(s.logRequests)
	app.Use(recover.New())
	app.Use(s.handlePage)

	return app
}

func (s *Server) logRequests(c *fiber.Ctx) error {
	err := c.Next()

	reqID, _ := c.Locals(requestid.ConfigDefault.ContextKey).(string)
	s.log.Debug().
		Str("request_id", reqID).
		Str("method", c.Method()).
		Str("path", string(c.Request().URI().PathOriginal())).
		Int("status", c.Response().StatusCode()).
		Msg("request served")

	return err
}

// handlePage serves the page for the request path, or 404 when the path is
// deeper than the configured maximum. Depth has to see duplicate slashes
// exactly as the client sent them, so the raw URI path is used instead of
// the router-normalized one.
func (s *Server) handlePage(c *fiber.Ctx) error {
	path := string(c.Request().URI().PathOriginal())
	if path == "" {
		path = "/"
	}

	page, err := s.responder.Describe(path)
	if errors.Is(err, ErrDepthExceeded) {
		return c.Status(fiber.StatusNotFound).SendString("Not Found")
	}

	c.Set(fiber.HeaderContentType, fiber.MIMETextHTML)
	return c.SendString(s.responder.Render(page))
}
