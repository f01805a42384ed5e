package captcha

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"

	"firmsite/config"
)

var ErrFailed = errors.New("captcha verification failed")

// Verifier checks a client-supplied captcha token with the verification
// service. The HTTP implementation talks to the configured siteverify
// endpoint; tests substitute their own.
type Verifier interface {
	Verify(token, remoteIP string) error
}

type httpVerifier struct {
	secret    string
	verifyURL string
	client    *http.Client
}

func NewHTTP(cfg config.CaptchaConfig) Verifier {
	return &httpVerifier{
		secret:    cfg.Secret,
		verifyURL: cfg.VerifyURL,
		client:    &http.Client{Timeout: cfg.Timeout},
	}
}

func (v *httpVerifier) Verify(token, remoteIP string) error {
	if token == "" {
		return ErrFailed
	}

	form := url.Values{}
	form.Set("secret", v.secret)
	form.Set("response", token)
	if remoteIP != "" {
		form.Set("remoteip", remoteIP)
	}

	resp, err := v.client.PostForm(v.verifyURL, form)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	var result struct {
		Success bool `json:"success"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return err
	}
	if !result.Success {
		return ErrFailed
	}
	return nil
}

// Disabled skips verification; used when no captcha secret is configured.
type Disabled struct{}

func (Disabled) Verify(token, remoteIP string) error { return nil }
