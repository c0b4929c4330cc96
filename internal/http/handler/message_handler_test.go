package handler_test

import (
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/fjordrenovering/website/internal/domain"
	"github.com/fjordrenovering/website/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMessageHandler_Submit(t *testing.T) {
	f := setupFixture(t)

	req := newRequest(t, http.MethodPost, "/api/v1/contact", domain.ContactRequest{
		Name:        "Kari Nordmann",
		Email:       "Kari@Example.com",
		Message:     "Vi ønsker pristilbud på nytt bad.",
		ServiceSlug: "bad",
	}, nil)
	req.RemoteAddr = "203.0.113.9:41000"
	rr := serve(f.messages.Submit, req)
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	resp := decode[domain.ContactResponse](t, rr)

	var stored domain.Message
	require.NoError(t, f.db.First(&stored, "id = ?", resp.ID).Error)
	assert.Equal(t, "kari@example.com", stored.Email)
	assert.Equal(t, domain.MessageStatusNew, stored.Status)
	assert.Equal(t, "bad", stored.ServiceSlug)
	assert.Equal(t, "203.0.113.9", stored.IPAddress)

	t.Run("validation", func(t *testing.T) {
		rr := serve(f.messages.Submit, newRequest(t, http.MethodPost, "/api/v1/contact", domain.ContactRequest{
			Name:    "K",
			Email:   "not-an-email",
			Message: "short",
		}, nil))
		require.Equal(t, http.StatusBadRequest, rr.Code)
		apiErr := decode[domain.APIError](t, rr)
		assert.Contains(t, apiErr.Errors, "email")
		assert.Contains(t, apiErr.Errors, "message")
	})

	t.Run("honeypot is acknowledged but not stored", func(t *testing.T) {
		var before int64
		require.NoError(t, f.db.Model(&domain.Message{}).Count(&before).Error)

		rr := serve(f.messages.Submit, newRequest(t, http.MethodPost, "/api/v1/contact", domain.ContactRequest{
			Name:    "Bot",
			Email:   "bot@example.com",
			Message: "Buy cheap things now please",
			Website: "http://spam.example",
		}, nil))
		assert.Equal(t, http.StatusCreated, rr.Code)

		var after int64
		require.NoError(t, f.db.Model(&domain.Message{}).Count(&after).Error)
		assert.Equal(t, before, after)
	})
}

func TestMessageHandler_Inbox(t *testing.T) {
	f := setupFixture(t)
	now := time.Now()
	older := testutil.CreateTestMessage(t, f.db, domain.MessageStatusNew, now.Add(-2*time.Hour))
	newer := testutil.CreateTestMessage(t, f.db, domain.MessageStatusNew, now.Add(-time.Hour))

	rr := serve(f.messages.List, newRequest(t, http.MethodGet, "/admin/api/v1/messages", nil, nil))
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	inbox := decode[page[domain.MessageDTO]](t, rr)
	require.Len(t, inbox.Data, 2)
	assert.Equal(t, newer.ID, inbox.Data[0].ID, "newest first")

	rr = serve(f.messages.MarkRead, newRequest(t, http.MethodPost, "/", nil, map[string]string{"id": older.ID.String()}))
	require.Equal(t, http.StatusOK, rr.Code)
	read := decode[domain.MessageDTO](t, rr)
	assert.Equal(t, domain.MessageStatusRead, read.Status)
	assert.NotEmpty(t, read.ReadAt)

	rr = serve(f.messages.Archive, newRequest(t, http.MethodPost, "/", nil, map[string]string{"id": newer.ID.String()}))
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, domain.MessageStatusArchived, decode[domain.MessageDTO](t, rr).Status)

	rr = serve(f.messages.List, newRequest(t, http.MethodGet, "/admin/api/v1/messages?status=read", nil, nil))
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, int64(1), decode[page[domain.MessageDTO]](t, rr).Total)

	rr = serve(f.messages.List, newRequest(t, http.MethodGet, "/admin/api/v1/messages?status=spam", nil, nil))
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	rr = serve(f.messages.Delete, newRequest(t, http.MethodDelete, "/", nil, map[string]string{"id": older.ID.String()}))
	assert.Equal(t, http.StatusNoContent, rr.Code)

	rr = serve(f.messages.GetByID, newRequest(t, http.MethodGet, "/", nil, map[string]string{"id": older.ID.String()}))
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestMessageHandler_Submit_RejectsOversizedBody(t *testing.T) {
	f := setupFixture(t)

	rr := serve(f.messages.Submit, newRequest(t, http.MethodPost, "/api/v1/contact", domain.ContactRequest{
		Name:    "Kari Nordmann",
		Email:   "kari@example.com",
		Message: strings.Repeat("a", 70<<10),
	}, nil))
	assert.Equal(t, http.StatusRequestEntityTooLarge, rr.Code)

	var count int64
	require.NoError(t, f.db.Model(&domain.Message{}).Count(&count).Error)
	assert.Zero(t, count)
}
