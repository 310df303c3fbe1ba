package balancehub

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/beevik/etree"
	"github.com/finwell/finwell-server/internal/config"
	"github.com/sirupsen/logrus"
)

// ProviderBalance is one linked account's balance as reported by the
// BalanceHub feed.
type ProviderBalance struct {
	AccountRef  string
	AccountKind string
	Balance     float64
}

// Client handles integration with the BalanceHub account-linking
// provider. Account linking itself happens elsewhere; this client only
// pulls current balances for accounts that are already linked.
type Client struct {
	url    string
	client *http.Client
	log    *logrus.Logger
}

// NewClient initializes a new BalanceHub client
func NewClient(cfg *config.Config, log *logrus.Logger) *Client {
	return &Client{
		url: cfg.BalanceHubURL,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
		log: log,
	}
}

// buildSOAPRequest creates a SOAP request for the owner's balances
func (c *Client) buildSOAPRequest(ownerRef string) string {
	return fmt.Sprintf(`<?xml version="1.0" encoding="utf-8"?>
		<soap12:Envelope xmlns:soap12="http://www.w3.org/2003/05/soap-envelope">
			<soap12:Body>
				<GetBalances xmlns="http://feeds.balancehub.example.com/">
					<ownerRef>%s</ownerRef>
				</GetBalances>
			</soap12:Body>
		</soap12:Envelope>`, ownerRef)
}

// sendRequest sends the SOAP request to BalanceHub
func (c *Client) sendRequest(soapRequest string) ([]byte, error) {
	req, err := http.NewRequest("POST", c.url, bytes.NewBuffer([]byte(soapRequest)))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %v", err)
	}

	req.Header.Set("Content-Type", "application/soap+xml; charset=utf-8")
	req.Header.Set("SOAPAction", "http://feeds.balancehub.example.com/GetBalances")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %v", err)
	}

	c.log.Debugf("BalanceHub XML response: %s", string(body))

	return body, nil
}

// parseBalances extracts account balances from the feed XML
func parseBalances(rawBody []byte) ([]ProviderBalance, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(rawBody); err != nil {
		return nil, fmt.Errorf("failed to parse XML: %v", err)
	}

	accounts := doc.FindElements("//BalanceList/Account")
	if len(accounts) == 0 {
		return nil, fmt.Errorf("no balance data found in XML")
	}

	balances := make([]ProviderBalance, 0, len(accounts))
	for _, account := range accounts {
		ref := account.FindElement("./Ref")
		kind := account.FindElement("./Kind")
		amount := account.FindElement("./Balance")
		if ref == nil || amount == nil {
			return nil, fmt.Errorf("incomplete account element in XML")
		}

		balance, err := strconv.ParseFloat(amount.Text(), 64)
		if err != nil {
			return nil, fmt.Errorf("failed to parse balance for %s: %v", ref.Text(), err)
		}

		pb := ProviderBalance{AccountRef: ref.Text(), Balance: balance}
		if kind != nil {
			pb.AccountKind = kind.Text()
		}
		balances = append(balances, pb)
	}

	return balances, nil
}

// FetchBalances retrieves the current balances for all of the owner's
// linked accounts
func (c *Client) FetchBalances(ownerRef string) ([]ProviderBalance, error) {
	soapRequest := c.buildSOAPRequest(ownerRef)
	body, err := c.sendRequest(soapRequest)
	if err != nil {
		return nil, err
	}

	balances, err := parseBalances(body)
	if err != nil {
		return nil, err
	}

	c.log.Infof("Retrieved %d balances for owner %s", len(balances), ownerRef)
	return balances, nil
}
