package handlers

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func signSvix(secret, id, timestamp, body string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(fmt.Sprintf("%s.%s.%s", id, timestamp, body)))
	return "v1," + hex.EncodeToString(mac.Sum(nil))
}

func TestVerifyWebhookSignature(t *testing.T) {
	t.Setenv("CLERK_WEBHOOK_SECRET", "whsec_test")

	h := NewWebhookHandler(nil)
	body := `{"type": "user.created", "data": {}}`

	req := httptest.NewRequest(http.MethodPost, "/webhooks/clerk", strings.NewReader(body))
	req.Header.Set("svix-id", "msg_1")
	req.Header.Set("svix-timestamp", "1750000000")
	req.Header.Set("svix-signature", signSvix("whsec_test", "msg_1", "1750000000", body))

	if !h.verifyWebhookSignature(req, []byte(body)) {
		t.Fatal("expected valid signature to verify")
	}
}

func TestVerifyWebhookSignatureRejectsTampering(t *testing.T) {
	t.Setenv("CLERK_WEBHOOK_SECRET", "whsec_test")

	h := NewWebhookHandler(nil)
	body := `{"type": "user.created", "data": {}}`
	tampered := `{"type": "user.deleted", "data": {}}`

	req := httptest.NewRequest(http.MethodPost, "/webhooks/clerk", strings.NewReader(tampered))
	req.Header.Set("svix-id", "msg_1")
	req.Header.Set("svix-timestamp", "1750000000")
	req.Header.Set("svix-signature", signSvix("whsec_test", "msg_1", "1750000000", body))

	if h.verifyWebhookSignature(req, []byte(tampered)) {
		t.Fatal("expected tampered body to fail verification")
	}
}

func TestVerifyWebhookSignatureRejectsMissingHeaders(t *testing.T) {
	t.Setenv("CLERK_WEBHOOK_SECRET", "whsec_test")

	h := NewWebhookHandler(nil)
	body := `{"type": "user.created", "data": {}}`

	req := httptest.NewRequest(http.MethodPost, "/webhooks/clerk", strings.NewReader(body))

	if h.verifyWebhookSignature(req, []byte(body)) {
		t.Fatal("expected missing headers to fail verification")
	}
}
