// Package sheets posts finished transactions to the spreadsheet gateway's
// finance sheet.
package sheets

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/samudrapos/kasir-service/internal/checkout/domain"
)

// RejectedError carries the remote endpoint's own failure message, verbatim,
// when it refused the transaction.
type RejectedError struct {
	Message string
}

func (e *RejectedError) Error() string {
	return fmt.Sprintf("transaction rejected: %s", e.Message)
}

type Recorder struct {
	httpClient *http.Client
	endpoint   string
	sheetID    string
	token      string
}

func NewRecorder(endpoint, sheetID, token string) *Recorder {
	return &Recorder{
		httpClient: &http.Client{Timeout: 15 * time.Second},
		endpoint:   endpoint,
		sheetID:    sheetID,
		token:      token,
	}
}

type saveRequest struct {
	Action  string        `json:"action"`
	Data    domain.Record `json:"data"`
	SheetID string        `json:"sheetId"`
}

type saveResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// Save performs the single submission round trip. Failures come back as
// errors: network trouble and unexpected statuses as-is, an explicit remote
// refusal as a RejectedError with the remote message.
func (r *Recorder) Save(ctx context.Context, record domain.Record) error {
	payload, err := json.Marshal(saveRequest{
		Action:  "saveTransaction",
		Data:    record,
		SheetID: r.sheetID,
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.endpoint, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+r.token)

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("save transaction: %w", err)
	}
	defer resp.Body.Close()

	var body saveResponse
	decodeErr := json.NewDecoder(resp.Body).Decode(&body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		if decodeErr == nil && body.Error != "" {
			return &RejectedError{Message: body.Error}
		}
		return fmt.Errorf("save transaction: unexpected status %d", resp.StatusCode)
	}
	if decodeErr != nil {
		return fmt.Errorf("save transaction: decode: %w", decodeErr)
	}
	if !body.Success {
		msg := body.Error
		if msg == "" {
			msg = "remote endpoint reported failure"
		}
		return &RejectedError{Message: msg}
	}
	return nil
}
