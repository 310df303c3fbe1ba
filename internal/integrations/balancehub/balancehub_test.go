package balancehub

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/finwell/finwell-server/internal/config"
	logrustest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleFeed = `<?xml version="1.0" encoding="utf-8"?>
<soap12:Envelope xmlns:soap12="http://www.w3.org/2003/05/soap-envelope">
	<soap12:Body>
		<GetBalancesResponse xmlns="http://feeds.balancehub.example.com/">
			<BalanceList>
				<Account>
					<Ref>acc-001</Ref>
					<Kind>bank</Kind>
					<Balance>12500.50</Balance>
				</Account>
				<Account>
					<Ref>acc-002</Ref>
					<Kind>mobile_money</Kind>
					<Balance>320.00</Balance>
				</Account>
			</BalanceList>
		</GetBalancesResponse>
	</soap12:Body>
</soap12:Envelope>`

func TestParseBalances(t *testing.T) {
	balances, err := parseBalances([]byte(sampleFeed))
	require.NoError(t, err)
	require.Len(t, balances, 2)

	assert.Equal(t, "acc-001", balances[0].AccountRef)
	assert.Equal(t, "bank", balances[0].AccountKind)
	assert.Equal(t, 12500.50, balances[0].Balance)

	assert.Equal(t, "acc-002", balances[1].AccountRef)
	assert.Equal(t, "mobile_money", balances[1].AccountKind)
	assert.Equal(t, 320.0, balances[1].Balance)
}

func TestParseBalancesMalformedXML(t *testing.T) {
	_, err := parseBalances([]byte("not xml at all <<"))
	assert.Error(t, err)
}

func TestParseBalancesEmptyFeed(t *testing.T) {
	empty := `<?xml version="1.0"?><Envelope><Body></Body></Envelope>`
	_, err := parseBalances([]byte(empty))
	assert.Error(t, err)
}

func TestParseBalancesBadAmount(t *testing.T) {
	feed := `<?xml version="1.0"?>
		<BalanceList>
			<Account><Ref>acc-003</Ref><Balance>not-a-number</Balance></Account>
		</BalanceList>`
	_, err := parseBalances([]byte(feed))
	assert.Error(t, err)
}

func TestFetchBalances(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "POST", r.Method)
		assert.Contains(t, r.Header.Get("Content-Type"), "soap+xml")
		w.Write([]byte(sampleFeed))
	}))
	defer server.Close()

	logger, _ := logrustest.NewNullLogger()
	client := NewClient(&config.Config{BalanceHubURL: server.URL}, logger)

	balances, err := client.FetchBalances("owner-1")
	require.NoError(t, err)
	assert.Len(t, balances, 2)
}

func TestFetchBalancesServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	logger, _ := logrustest.NewNullLogger()
	client := NewClient(&config.Config{BalanceHubURL: server.URL}, logger)

	_, err := client.FetchBalances("owner-1")
	assert.Error(t, err)
}
