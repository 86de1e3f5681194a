package client

import (
	"context"
	"crypto/rand"
	"encoding/json"
	"fmt"
	"math/big"
	"slices"

	"github.com/opsdisk/gumroad/internal/constants"
	"github.com/opsdisk/gumroad/internal/http"
	"github.com/opsdisk/gumroad/pkg/gumroad"
)

// OfferCodesClient implements gumroad.OfferCodesClient.
type OfferCodesClient struct {
	httpClient *http.Client
}

// NewOfferCodesClient creates a new offer codes client.
func NewOfferCodesClient(httpClient *http.Client) *OfferCodesClient {
	return &OfferCodesClient{httpClient: httpClient}
}

// List implements gumroad.OfferCodesClient.List.
func (c *OfferCodesClient) List(ctx context.Context, productID string) ([]gumroad.OfferCode, error) {
	if productID == "" {
		return nil, gumroad.ErrProductIDRequired
	}

	path := fmt.Sprintf("%s/products/%s/offer_codes", constants.APIBasePath, productID)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("listing offer codes: %w", err)
	}

	var result gumroad.OfferCodesResponse

	err = json.Unmarshal(resp.Body, &result)
	if err != nil {
		return nil, fmt.Errorf("parsing offer codes response: %w", err)
	}

	if !result.Success {
		return nil, &gumroad.APIError{StatusCode: resp.StatusCode, Message: result.Message}
	}

	return result.OfferCodes, nil
}

// Get implements gumroad.OfferCodesClient.Get.
func (c *OfferCodesClient) Get(ctx context.Context, productID, offerCodeID string) (*gumroad.OfferCode, error) {
	if productID == "" {
		return nil, gumroad.ErrProductIDRequired
	}

	if offerCodeID == "" {
		return nil, gumroad.ErrOfferCodeIDRequired
	}

	path := fmt.Sprintf("%s/products/%s/offer_codes/%s", constants.APIBasePath, productID, offerCodeID)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting offer code: %w", err)
	}

	return decodeOfferCode(resp)
}

// Create implements gumroad.OfferCodesClient.Create.
func (c *OfferCodesClient) Create(ctx context.Context, productID string, request *gumroad.OfferCodeCreateRequest) (*gumroad.OfferCode, error) {
	if productID == "" {
		return nil, gumroad.ErrProductIDRequired
	}

	path := fmt.Sprintf("%s/products/%s/offer_codes", constants.APIBasePath, productID)

	resp, err := c.httpClient.Post(ctx, path, request)
	if err != nil {
		return nil, fmt.Errorf("creating offer code: %w", err)
	}

	return decodeOfferCode(resp)
}

// Names implements gumroad.OfferCodesClient.Names.
func (c *OfferCodesClient) Names(ctx context.Context, productID string) ([]string, error) {
	offerCodes, err := c.List(ctx, productID)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(offerCodes))
	for _, offerCode := range offerCodes {
		names = append(names, offerCode.Name)
	}

	return names, nil
}

// Generate implements gumroad.OfferCodesClient.Generate: a random lowercase
// alphanumeric name of the given length that does not collide with the
// product's existing codes.
func (c *OfferCodesClient) Generate(ctx context.Context, productID string, length int) (string, error) {
	if length <= 0 {
		length = constants.DefaultOfferCodeLength
	}

	existing, err := c.Names(ctx, productID)
	if err != nil {
		return "", err
	}

	for {
		name, err := randomCode(length)
		if err != nil {
			return "", err
		}

		if !slices.Contains(existing, name) {
			return name, nil
		}
	}
}

func randomCode(length int) (string, error) {
	charset := constants.OfferCodeCharset
	code := make([]byte, length)

	for i := range code {
		index, err := rand.Int(rand.Reader, big.NewInt(int64(len(charset))))
		if err != nil {
			return "", fmt.Errorf("generating offer code: %w", err)
		}

		code[i] = charset[index.Int64()]
	}

	return string(code), nil
}

func decodeOfferCode(resp *http.Response) (*gumroad.OfferCode, error) {
	var result gumroad.OfferCodeResponse

	err := json.Unmarshal(resp.Body, &result)
	if err != nil {
		return nil, fmt.Errorf("parsing offer code response: %w", err)
	}

	if !result.Success {
		return nil, &gumroad.APIError{StatusCode: resp.StatusCode, Message: result.Message}
	}

	return &result.OfferCode, nil
}
