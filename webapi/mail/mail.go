// Package mail exposes the transactional email endpoint.
package mail

import (
	"github.com/autoconnect/backend/pkg/config"
	"github.com/autoconnect/backend/pkg/middleware"
	"github.com/autoconnect/backend/pkg/provider/mail"
	mailsvc "github.com/autoconnect/backend/pkg/service/mail"
	"github.com/autoconnect/backend/webapi/common"
	"github.com/gofiber/fiber/v2"
)

// SendEmailRequest is the body of POST /api/email/send. One of text or html is required.
type SendEmailRequest struct {
	To      string `json:"to" validate:"required,email"`
	Subject string `json:"subject" validate:"required,max=255"`
	Text    string `json:"text"`
	HTML    string `json:"html"`
}

// SendEmailResponse reports the delivery outcome. A failed delivery still
// answers 200 with Sent=false.
type SendEmailResponse struct {
	Message   string `json:"message"`
	Sent      bool   `json:"sent"`
	MessageID string `json:"messageId,omitempty"`
	Error     string `json:"error,omitempty"`
}

func Routes(app *fiber.App, mailSvc *mailsvc.Service, cfg *config.App) {
	app.Post("/api/email/send", middleware.JwtProtected(cfg.Auth.Jwt), Send(mailSvc))
}

// Send returns a Fiber handler that sends one email.
// @Summary Send an email
// @Tags email
// @Accept json
// @Produce json
// @Param request body SendEmailRequest true "Message"
// @Success 200 {object} SendEmailResponse
// @Failure 400 {object} common.ErrorResponse
// @Router /api/email/send [post]
// @Security Bearer
func Send(mailSvc *mailsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[SendEmailRequest](c)
		if input == nil {
			return err
		}
		res, err := mailSvc.Send(c.UserContext(), mail.Message{
			To:      input.To,
			Subject: input.Subject,
			Text:    input.Text,
			HTML:    input.HTML,
		})
		if err != nil {
			return common.WriteFailure(c, err)
		}
		out := SendEmailResponse{Message: "Email sent", Sent: res.Sent, MessageID: res.MessageID}
		if res.Err != nil {
			out.Message = "Email not sent"
			out.Sent = false
			out.Error = res.Err.Error()
		}
		return c.JSON(out)
	}
}
