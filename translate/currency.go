package translate

// DefaultCurrency is returned for numeric codes the lookup does not know
const DefaultCurrency = "USD"

// CurrencyLookup converts a legacy ISO-4217 numeric currency code to its
// alpha code.
type CurrencyLookup interface {
	Alpha(numeric string) string
}

// StaticCurrencies is a fixed table lookup
type StaticCurrencies struct {
	Default string
	Table   map[string]string
}

func NewStaticCurrencies() *StaticCurrencies {
	return &StaticCurrencies{
		Default: DefaultCurrency,
		Table: map[string]string{
			"840": "USD",
			"978": "EUR",
			"826": "GBP",
			"404": "KES",
			"566": "NGN",
			"710": "ZAR",
			"800": "UGX",
			"834": "TZS",
		},
	}
}

func (s *StaticCurrencies) Alpha(numeric string) string {
	if alpha, ok := s.Table[numeric]; ok {
		return alpha
	}

	return s.Default
}
