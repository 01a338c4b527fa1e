package httpserver

import (
	"encoding/base64"
	"testing"
)

func basicHeader(credentials string) string {
	return "Basic " + base64.StdEncoding.EncodeToString([]byte(credentials))
}

func TestDecodeBasicCredentials(t *testing.T) {
	email, password, ok := decodeBasicCredentials(basicHeader("alice@example.com:secret-value"))
	if !ok {
		t.Fatal("expected ok")
	}
	if email != "alice@example.com" || password != "secret-value" {
		t.Fatalf("unexpected pair %q / %q", email, password)
	}
}

func TestDecodeBasicCredentialsKeepsColonsInPassword(t *testing.T) {
	_, password, ok := decodeBasicCredentials(basicHeader("alice@example.com:se:cr:et"))
	if !ok {
		t.Fatal("expected ok")
	}
	if password != "se:cr:et" {
		t.Fatalf("expected split on first colon only, got %q", password)
	}
}

func TestDecodeBasicCredentialsRejectsMalformedHeaders(t *testing.T) {
	headers := []string{
		"",
		"Basic",
		"Bearer token",
		"Basic not-base64!!!",
		basicHeader("no-colon-here"),
		basicHeader(":password-only"),
		basicHeader("email-only:"),
	}
	for _, h := range headers {
		if _, _, ok := decodeBasicCredentials(h); ok {
			t.Fatalf("%q: expected rejection", h)
		}
	}
}

func TestDecodeBasicCredentialsSchemeIsCaseInsensitive(t *testing.T) {
	header := "basic " + base64.StdEncoding.EncodeToString([]byte("a@b.co:1234567890"))
	if _, _, ok := decodeBasicCredentials(header); !ok {
		t.Fatal("expected lowercase scheme to be accepted")
	}
}
