// Package impl provides the concrete implementations of the usecase interfaces.
package impl

import (
	"context"
	"fmt"
	"log/slog"

	"cumple/config"
	deliverycontext "cumple/internal/delivery/context"
	"cumple/internal/domain/entity"
	domainerrors "cumple/internal/domain/errors"
	"cumple/internal/domain/repository"
	"cumple/internal/domain/service"
	"cumple/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// invitationService implements the InvitationUsecase interface.
type invitationService struct {
	eventRepo   repository.EventRepository
	linkService service.ActionLinkService
	mailer      service.Mailer
	publisher   service.EventPublisher
	baseURL     string
	templates   *config.TemplatesConfig
	logger      *slog.Logger
}

// InvitationServiceParams defines the dependencies for the invitation service.
type InvitationServiceParams struct {
	fx.In

	EventRepo   repository.EventRepository
	LinkService service.ActionLinkService
	Mailer      service.Mailer
	Publisher   service.EventPublisher
	Config      *config.Config
	Logger      *slog.Logger
}

// NewInvitationService is the constructor for invitationService.
func NewInvitationService(params InvitationServiceParams) usecase.InvitationUsecase {
	return &invitationService{
		eventRepo:   params.EventRepo,
		linkService: params.LinkService,
		mailer:      params.Mailer,
		publisher:   params.Publisher,
		baseURL:     params.Config.App.BaseURL,
		templates:   params.Config.Templates,
		logger:      params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *invitationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// SendInvitation runs the full invitation workflow for one guest: load the
// event, mint the sign-in link, render the template in the guest's
// language, and deliver the email.
func (srv *invitationService) SendInvitation(ctx context.Context, input usecase.SendInvitationInput) (*usecase.SendInvitationOutput, error) {
	lang := input.Language
	if lang == "" {
		lang = entity.LanguageES
	}

	srv.log(ctx).Info("Starting invitation",
		slog.String("email", input.Email),
		slog.String("event_id", input.EventID.String()),
		slog.String("language", string(lang)),
	)

	event, err := srv.eventRepo.FindByID(ctx, input.EventID)
	if err != nil {
		if errors.Is(err, repository.ErrEventNotFound) {
			return nil, domainerrors.ErrEventNotFound
		}

		return nil, errors.Wrap(err, "failed to load event for invitation")
	}

	redirectTo := fmt.Sprintf("%s/event/%s", srv.baseURL, event.ID)
	link, err := srv.linkService.GenerateInviteLink(ctx, &service.ActionLinkRequest{
		Email:      input.Email,
		RedirectTo: redirectTo,
		Name:       input.Name,
	})
	if err != nil {
		srv.log(ctx).Error("Invite link generation failed",
			slog.String("email", input.Email),
			slog.String("error", err.Error()),
		)

		return nil, domainerrors.ErrInviteLinkFailed.WithDetails(err.Error())
	}

	subjectTemplate, bodyTemplate := srv.resolveTemplates(event, lang)

	body := renderBody(bodyTemplate, invitationTemplateData{
		GuestName:  input.Name,
		EventTitle: event.Title,
		Date:       formatEventDate(event.EventDate, lang),
		Venue:      formatVenue(event),
		Link:       link,
	})
	subject := finalizeSubject(subjectTemplate, event.Title)

	if err := srv.mailer.Send(ctx, &service.MailMessage{
		To:      input.Email,
		Subject: subject,
		Body:    body,
	}); err != nil {
		srv.log(ctx).Error("Invitation email delivery failed",
			slog.String("email", input.Email),
			slog.String("error", err.Error()),
		)

		// The link was already minted and is still valid; surface it so
		// the organizer can pass it along by hand.
		return nil, domainerrors.NewEmailDeliveryError(err, link)
	}

	srv.publishActivity(ctx, &service.ActivityEvent{
		Kind:    service.ActivityInvitationSent,
		EventID: event.ID.String(),
		Email:   input.Email,
	})

	return &usecase.SendInvitationOutput{
		Message: fmt.Sprintf("Invitation sent to %s", input.Email),
	}, nil
}

// resolveTemplates picks the subject and body templates for a language:
// per-event overrides win, then deployment-wide config, then the built-ins.
func (srv *invitationService) resolveTemplates(event *entity.Event, lang entity.Language) (subject, body string) {
	subject = event.SubjectTemplate(lang)
	body = event.BodyTemplate(lang)

	var global *config.TemplateConfig
	if srv.templates != nil {
		if lang == entity.LanguageEN {
			global = srv.templates.EN
		} else {
			global = srv.templates.ES
		}
	}

	if subject == "" && global != nil {
		subject = global.Subject
	}
	if body == "" && global != nil {
		body = global.Body
	}

	if subject == "" {
		subject = defaultSubject(lang)
	}
	if body == "" {
		body = defaultBody(lang)
	}

	return subject, body
}

func (srv *invitationService) publishActivity(ctx context.Context, event *service.ActivityEvent) {
	event.RequestID = deliverycontext.GetRequestIDFromContext(ctx)

	if err := srv.publisher.PublishActivity(ctx, event); err != nil {
		srv.log(ctx).Warn("Activity publish failed",
			slog.String("kind", event.Kind),
			slog.String("error", err.Error()),
		)
	}
}
