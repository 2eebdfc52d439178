package handler

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"cumple/internal/delivery/http/validator"
	"cumple/internal/domain/entity"
	"cumple/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubInvitationUsecase struct {
	gotInput usecase.SendInvitationInput
	output   *usecase.SendInvitationOutput
	err      error
}

func (s *stubInvitationUsecase) SendInvitation(_ context.Context, input usecase.SendInvitationInput) (*usecase.SendInvitationOutput, error) {
	s.gotInput = input

	return s.output, s.err
}

func newInviteTestContext(t *testing.T, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	e.Validator = validator.New()
	req := httptest.NewRequest(http.MethodPost, "/admin/invite", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestInviteHandler_SendInvitation_Success(t *testing.T) {
	eventID := uuid.New()
	stub := &stubInvitationUsecase{
		output: &usecase.SendInvitationOutput{Message: "Invitation sent to ana@example.com"},
	}
	h := NewInviteHandler(stub, newDiscardLogger())

	c, rec := newInviteTestContext(t, `{"email":"ana@example.com","name":"Ana","eventId":"`+eventID.String()+`","language":"en"}`)

	require.NoError(t, h.SendInvitation(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invitation sent to ana@example.com")
	assert.Equal(t, "ana@example.com", stub.gotInput.Email)
	assert.Equal(t, eventID, stub.gotInput.EventID)
	assert.Equal(t, entity.LanguageEN, stub.gotInput.Language)
}

func TestInviteHandler_SendInvitation_MissingFields(t *testing.T) {
	stub := &stubInvitationUsecase{}
	h := NewInviteHandler(stub, newDiscardLogger())

	c, rec := newInviteTestContext(t, `{"email":"ana@example.com"}`)

	require.NoError(t, h.SendInvitation(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_INPUT")
}

func TestInviteHandler_SendInvitation_BadEventID(t *testing.T) {
	stub := &stubInvitationUsecase{}
	h := NewInviteHandler(stub, newDiscardLogger())

	c, rec := newInviteTestContext(t, `{"email":"ana@example.com","name":"Ana","eventId":"not-a-uuid"}`)

	require.NoError(t, h.SendInvitation(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_EVENT_ID")
}

func TestInviteHandler_SendInvitation_DefaultsToSpanish(t *testing.T) {
	eventID := uuid.New()
	stub := &stubInvitationUsecase{output: &usecase.SendInvitationOutput{Message: "ok"}}
	h := NewInviteHandler(stub, newDiscardLogger())

	c, _ := newInviteTestContext(t, `{"email":"ana@example.com","name":"Ana","eventId":"`+eventID.String()+`"}`)

	require.NoError(t, h.SendInvitation(c))

	assert.Equal(t, entity.LanguageES, stub.gotInput.Language)
}
