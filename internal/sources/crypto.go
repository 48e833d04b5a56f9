package sources

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/onehub-dev/onehub/internal/types"
)

const coingeckoBaseURL = "https://api.coingecko.com/api/v3"

// CryptoClient reads the top markets from CoinGecko. No API key required.
type CryptoClient struct {
	BaseURL    string
	HTTPClient *http.Client
}

func NewCryptoClient() *CryptoClient {
	return &CryptoClient{
		BaseURL:    coingeckoBaseURL,
		HTTPClient: newHTTPClient(defaultTimeout),
	}
}

type coingeckoMarket struct {
	ID                       string  `json:"id"`
	Name                     string  `json:"name"`
	Symbol                   string  `json:"symbol"`
	CurrentPrice             float64 `json:"current_price"`
	PriceChangePercentage24h float64 `json:"price_change_percentage_24h"`
	MarketCap                float64 `json:"market_cap"`
	TotalVolume              float64 `json:"total_volume"`
	Image                    string  `json:"image"`
	MarketCapRank            int     `json:"market_cap_rank"`
}

// Snapshot fetches the top 20 coins by market cap with 24h change.
func (c *CryptoClient) Snapshot(ctx context.Context) (*types.CryptoSnapshot, error) {
	endpoint := c.BaseURL + "/coins/markets?vs_currency=usd&order=market_cap_desc&per_page=20&page=1&sparkline=false&price_change_percentage=24h"

	var markets []coingeckoMarket
	if err := getJSON(ctx, c.HTTPClient, endpoint, nil, &markets); err != nil {
		return nil, err
	}

	coins := make([]types.CryptoCoin, 0, len(markets))
	for _, coin := range markets {
		coins = append(coins, types.CryptoCoin{
			ID:        coin.ID,
			Name:      coin.Name,
			Symbol:    strings.ToUpper(coin.Symbol),
			Price:     coin.CurrentPrice,
			Change24h: coin.PriceChangePercentage24h,
			MarketCap: coin.MarketCap,
			Volume:    coin.TotalVolume,
			Image:     coin.Image,
			Rank:      coin.MarketCapRank,
		})
	}

	return &types.CryptoSnapshot{
		Cryptocurrencies: coins,
		Count:            len(coins),
		LastUpdated:      time.Now().UTC().Format(time.RFC3339),
	}, nil
}

// MockCrypto is the static fallback snapshot.
func MockCrypto() *types.CryptoSnapshot {
	coins := []types.CryptoCoin{
		{ID: "bitcoin", Name: "Bitcoin", Symbol: "BTC", Price: 43250.50, Change24h: 2.34, MarketCap: 850000000000, Volume: 25000000000, Rank: 1},
		{ID: "ethereum", Name: "Ethereum", Symbol: "ETH", Price: 2650.75, Change24h: -1.23, MarketCap: 320000000000, Volume: 15000000000, Rank: 2},
		{ID: "binancecoin", Name: "BNB", Symbol: "BNB", Price: 315.20, Change24h: 0.89, MarketCap: 48000000000, Volume: 1200000000, Rank: 3},
	}

	return &types.CryptoSnapshot{
		Cryptocurrencies: coins,
		Count:            len(coins),
		LastUpdated:      time.Now().UTC().Format(time.RFC3339),
		IsMock:           true,
	}
}
