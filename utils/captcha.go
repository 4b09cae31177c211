package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"sctclinic/config"
)

const recaptchaVerifyURL = "https://www.google.com/recaptcha/api/siteverify"

type recaptchaResponse struct {
	Success    bool     `json:"success"`
	ErrorCodes []string `json:"error-codes"`
}

// VerifyCaptcha checks a reCAPTCHA token against Google's siteverify API.
// When no secret is configured (local development), verification is skipped.
func VerifyCaptcha(token, remoteIP string) error {
	secret := config.AppConfig.RecaptchaSecret
	if secret == "" {
		return nil
	}
	if token == "" {
		return fmt.Errorf("missing captcha token")
	}

	client := http.Client{Timeout: 5 * time.Second}
	resp, err := client.PostForm(recaptchaVerifyURL, url.Values{
		"secret":   {secret},
		"response": {token},
		"remoteip": {remoteIP},
	})
	if err != nil {
		return fmt.Errorf("captcha verification request failed: %w", err)
	}
	defer resp.Body.Close()

	var result recaptchaResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return fmt.Errorf("decoding captcha response failed: %w", err)
	}
	if !result.Success {
		return fmt.Errorf("captcha verification rejected: %v", result.ErrorCodes)
	}
	return nil
}
