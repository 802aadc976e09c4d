package index

import "github.com/shopspring/decimal"

// Name is the display name of the index
const Name = "COIN50"

// defaultConstituents is the hardcoded holding list, in publication order.
// The weights do not sum to 100: only the largest holdings are listed.
var defaultConstituents = []Constituent{
	{ID: "bitcoin", Name: "Bitcoin", Weight: decimal.RequireFromString("50.30"), Logo: "https://assets.coingecko.com/coins/images/1/large/bitcoin.png"},
	{ID: "ethereum", Name: "Ethereum", Weight: decimal.RequireFromString("22.69"), Logo: "https://assets.coingecko.com/coins/images/279/large/ethereum.png"},
	{ID: "ripple", Name: "XRP", Weight: decimal.RequireFromString("9.37"), Logo: "https://assets.coingecko.com/coins/images/44/large/xrp-symbol-white-128.png"},
	{ID: "solana", Name: "Solana", Weight: decimal.RequireFromString("5.91"), Logo: "https://assets.coingecko.com/coins/images/4128/large/solana.png"},
	{ID: "dogecoin", Name: "Dogecoin", Weight: decimal.RequireFromString("2.12"), Logo: "https://assets.coingecko.com/coins/images/5/large/dogecoin.png"},
	{ID: "cardano", Name: "Cardano", Weight: decimal.RequireFromString("1.76"), Logo: "https://assets.coingecko.com/coins/images/975/large/cardano.png"},
	{ID: "chainlink", Name: "Chainlink", Weight: decimal.RequireFromString("0.67"), Logo: "https://assets.coingecko.com/coins/images/877/large/chainlink-new-logo.png"},
	{ID: "avalanche-2", Name: "Avalanche", Weight: decimal.RequireFromString("0.64"), Logo: "https://assets.coingecko.com/coins/images/12559/large/coin-round-red.png"},
	{ID: "stellar", Name: "Stellar Lumen", Weight: decimal.RequireFromString("0.61"), Logo: "https://assets.coingecko.com/coins/images/100/large/Stellar_symbol_black_RGB.png"},
	{ID: "bitcoin-cash", Name: "Bitcoin Cash", Weight: decimal.RequireFromString("0.59"), Logo: "https://assets.coingecko.com/coins/images/780/large/bitcoin-cash-circle.png"},
}

var methodology = []string{
	"The COIN50 index is designed to track the performance of the top 50 cryptocurrencies listed on Coinbase. " +
		"It uses market capitalization and liquidity as the primary selection criteria, and is periodically rebalanced " +
		"to reflect the dynamic nature of the crypto market. The goal is to provide a clear and comprehensive view of " +
		"the broader digital asset landscape for investors and analysts alike. Additional considerations include " +
		"filtering out illiquid or highly volatile assets and applying a cap on maximum allocation to ensure " +
		"diversification. The index is reviewed quarterly and methodology updates are publicly disclosed to maintain transparency.",
	"Weights are assigned proportionally to each coin's market cap within the eligible pool. A liquidity screen " +
		"ensures assets can be traded efficiently. The index aims to capture broad market movement while reducing " +
		"overexposure to single assets.",
	"Each rebalance includes risk assessment metrics and is performed using transparent, auditable procedures.",
}
