//go:build integration
// +build integration

package integration

import (
	"context"
	"os"
	"testing"

	"github.com/opsdisk/gumroad/pkg/gumroad"
	"github.com/opsdisk/gumroad/pkg/gumroadclient"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newLiveClient builds a client from GUMROAD_HOST and GUMROAD_TOKEN, skipping
// the test when no token is configured.
func newLiveClient(t *testing.T) gumroad.Client {
	t.Helper()

	if os.Getenv(gumroad.EnvToken) == "" {
		t.Skipf("%s not set, skipping live API test", gumroad.EnvToken)
	}

	client, err := gumroadclient.NewFromEnv()
	require.NoError(t, err)

	return client
}

func TestLiveProducts(t *testing.T) {
	client := newLiveClient(t)

	products, err := client.Products().ListAll(context.Background())
	require.NoError(t, err)

	for _, product := range products {
		assert.NotEmpty(t, product.ID)
		assert.NotEmpty(t, product.Name)
	}

	if len(products) == 0 {
		t.Log("account has no products")

		return
	}

	product, err := client.Products().Get(context.Background(), products[0].ID)
	require.NoError(t, err)
	assert.Equal(t, products[0].ID, product.ID)
}

func TestLiveSalesPagination(t *testing.T) {
	client := newLiveClient(t)

	sales, err := client.Sales().ListAll(context.Background(), nil)
	require.NoError(t, err)

	seen := make(map[string]bool, len(sales))
	for _, sale := range sales {
		assert.False(t, seen[sale.ID], "duplicate sale %s across pages", sale.ID)
		seen[sale.ID] = true
	}
}

func TestLiveOfferCodes(t *testing.T) {
	client := newLiveClient(t)

	products, err := client.Products().List(context.Background())
	require.NoError(t, err)

	if len(products) == 0 {
		t.Skip("account has no products")
	}

	names, err := client.OfferCodes().Names(context.Background(), products[0].ID)
	require.NoError(t, err)

	generated, err := client.OfferCodes().Generate(context.Background(), products[0].ID, 0)
	require.NoError(t, err)
	assert.Len(t, generated, 32)
	assert.NotContains(t, names, generated)
}
