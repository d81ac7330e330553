package payments

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"math"
	"net/http"
	"time"

	config "github.com/kamogelodev/student_fund/configs"
)

const paystackBaseURL = "https://api.paystack.co"

type initializePayload struct {
	Amount    int                    `json:"amount"`
	Email     string                 `json:"email"`
	Reference string                 `json:"reference"`
	Currency  string                 `json:"currency,omitempty"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
}

type TransactionData struct {
	AuthorizationURL string `json:"authorization_url"`
	AccessCode       string `json:"access_code"`
	Reference        string `json:"reference"`
}

type initializeResponse struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    TransactionData `json:"data"`
}

type VerifiedTransaction struct {
	Status    string `json:"status"`
	Reference string `json:"reference"`
	Amount    int    `json:"amount"`
	Currency  string `json:"currency"`
	GatewayID int64  `json:"id"`
}

type verifyResponse struct {
	Status  bool                `json:"status"`
	Message string              `json:"message"`
	Data    VerifiedTransaction `json:"data"`
}

// InitializeTransaction opens a Paystack charge. Amount is converted to the
// gateway's minor unit; reference and metadata are echoed back by the
// provider on verification.
func InitializeTransaction(amount float64, currency, email, reference string, metadata map[string]interface{}) (*TransactionData, error) {
	secretKey := config.Config("PAYSTACK_SECRET_KEY")
	if secretKey == "" {
		return nil, fmt.Errorf("PAYSTACK_SECRET_KEY is not set in .env")
	}

	payload := initializePayload{
		Amount:    int(math.Round(amount * 100)),
		Email:     email,
		Reference: reference,
		Currency:  currency,
		Metadata:  metadata,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal initialize payload: %v", err)
	}

	req, err := http.NewRequest("POST", paystackBaseURL+"/transaction/initialize", bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create initialize request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+secretKey)

	client := &http.Client{Timeout: 10 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send initialize request: %v", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read initialize response: %v", err)
	}

	if resp.StatusCode != http.StatusOK {
		log.Printf("Paystack initialize error for reference %s: %s", reference, string(respBody))
		return nil, fmt.Errorf("paystack returned non-200 status: %d", resp.StatusCode)
	}

	var initResp initializeResponse
	if err := json.Unmarshal(respBody, &initResp); err != nil {
		return nil, fmt.Errorf("failed to unmarshal initialize response: %v", err)
	}
	if !initResp.Status {
		return nil, fmt.Errorf("paystack initialize failed: %s", initResp.Message)
	}

	return &initResp.Data, nil
}

// VerifyTransaction asks Paystack for the settlement state of a reference.
// A nil error only means the lookup succeeded; callers must still check
// Data.Status == "success".
func VerifyTransaction(reference string) (*VerifiedTransaction, error) {
	secretKey := config.Config("PAYSTACK_SECRET_KEY")
	if secretKey == "" {
		return nil, fmt.Errorf("PAYSTACK_SECRET_KEY is not set in .env")
	}

	req, err := http.NewRequest("GET", fmt.Sprintf("%s/transaction/verify/%s", paystackBaseURL, reference), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create verify request: %v", err)
	}
	req.Header.Set("Authorization", "Bearer "+secretKey)

	client := &http.Client{Timeout: 10 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send verify request: %v", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read verify response: %v", err)
	}

	if resp.StatusCode != http.StatusOK {
		log.Printf("Paystack verify error for reference %s: %s", reference, string(respBody))
		return nil, fmt.Errorf("paystack returned non-200 status: %d", resp.StatusCode)
	}

	var verResp verifyResponse
	if err := json.Unmarshal(respBody, &verResp); err != nil {
		return nil, fmt.Errorf("failed to unmarshal verify response: %v", err)
	}
	if !verResp.Status {
		return nil, fmt.Errorf("paystack verify failed: %s", verResp.Message)
	}

	return &verResp.Data, nil
}
