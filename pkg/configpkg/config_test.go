package configpkg

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	dir := t.TempDir()

	content := []byte(`SERVER_ADDRESS=127.0.0.1:9000
GO_ENV=test
TOKEN_TYPE=jwt
ACCESS_TOKEN_DURATION=5m
ONLINE=false
FEATURE_AI=true
FEATURE_GAMES=false
RATE_LIMIT_RPS=2.5
RATE_LIMIT_BURST=4
`)
	err := os.WriteFile(filepath.Join(dir, "app.env"), content, 0o600)
	require.NoError(t, err)

	got, err := Load(dir)
	require.NoError(t, err)

	require.Equal(t, "127.0.0.1:9000", got.ServerAddress)
	require.Equal(t, "test", got.Environment)
	require.Equal(t, "jwt", got.TokenType)
	require.Equal(t, 5*time.Minute, got.AccessTokenDuration)
	require.False(t, got.Online)
	require.True(t, got.FeatureAI)
	require.False(t, got.FeatureGames)
	require.Equal(t, 2.5, got.RateLimitRPS)
	require.Equal(t, 4, got.RateLimitBurst)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(t.TempDir())
	require.Error(t, err)
}

func TestGBPrice(t *testing.T) {
	testCases := []struct {
		name  string
		price string
		want  string
	}{
		{name: "Configured", price: "12.5", want: "12.5"},
		{name: "Empty", price: "", want: "10"},
		{name: "Malformed", price: "ten", want: "10"},
		{name: "Negative", price: "-1", want: "10"},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			c := Config{InternetGBPrice: tc.price}
			if got := c.GBPrice().String(); got != tc.want {
				t.Errorf("GBPrice() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestParseSearchIndex(t *testing.T) {
	c := Config{SearchIndex: "golang=https://go.dev| https://pkg.go.dev ;=orphan;broken;wallet=/wallet/add"}

	want := map[string][]string{
		"golang": {"https://go.dev", "https://pkg.go.dev"},
		"wallet": {"/wallet/add"},
	}

	if diff := cmp.Diff(want, c.ParseSearchIndex()); diff != "" {
		t.Errorf("ParseSearchIndex() mismatch (-want +got):\n%s", diff)
	}
}

func TestFeatures(t *testing.T) {
	c := Config{FeaturePayment: true, FeatureSearch: true}

	want := map[string]bool{
		FeatureAI:        false,
		FeatureGames:     false,
		FeaturePayment:   true,
		FeatureInsurance: false,
		FeatureSearch:    true,
	}

	if diff := cmp.Diff(want, c.Features()); diff != "" {
		t.Errorf("Features() mismatch (-want +got):\n%s", diff)
	}
}
