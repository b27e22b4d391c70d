package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/sake/strichliste/internal/core/domain"
	"github.com/spf13/viper"
)

const settingsPrefix = "parameters.strichliste."

// Currency describes the single currency all amounts are kept in.
type Currency struct {
	Name   string
	Symbol string
	Alpha3 string
}

// Settings are the ledger parameters read from the settings file.
type Settings struct {
	Limits              domain.Limits
	StalePeriod         time.Duration
	StalePeriodRaw      string
	ArticlesEnabled     bool
	TransactionsEnabled bool
	Currency            Currency
	IdleTimeout         time.Duration
}

// DefaultSettings are used for every key the settings file leaves out.
func DefaultSettings() Settings {
	return Settings{
		Limits: domain.Limits{
			Account:     domain.Boundary{Lower: -20000, Upper: 20000},
			Transaction: domain.Boundary{Lower: -20000, Upper: 15000},
		},
		StalePeriod:         domain.DefaultStalePeriod,
		StalePeriodRaw:      "10 day",
		ArticlesEnabled:     true,
		TransactionsEnabled: true,
		Currency:            Currency{Name: "Euro", Symbol: "€", Alpha3: "EUR"},
		IdleTimeout:         30 * time.Second,
	}
}

// LoadSettings reads the YAML settings file at path. A missing file yields
// the defaults; a malformed one is an error.
func LoadSettings(path string) (Settings, error) {
	defaults := DefaultSettings()

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	v.SetDefault(settingsPrefix+"account.boundary.lower", defaults.Limits.Account.Lower)
	v.SetDefault(settingsPrefix+"account.boundary.upper", defaults.Limits.Account.Upper)
	v.SetDefault(settingsPrefix+"payment.boundary.lower", defaults.Limits.Transaction.Lower)
	v.SetDefault(settingsPrefix+"payment.boundary.upper", defaults.Limits.Transaction.Upper)
	v.SetDefault(settingsPrefix+"payment.transactions.enabled", defaults.TransactionsEnabled)
	v.SetDefault(settingsPrefix+"article.enabled", defaults.ArticlesEnabled)
	v.SetDefault(settingsPrefix+"user.stalePeriod", defaults.StalePeriodRaw)
	v.SetDefault(settingsPrefix+"i18n.currency.name", defaults.Currency.Name)
	v.SetDefault(settingsPrefix+"i18n.currency.symbol", defaults.Currency.Symbol)
	v.SetDefault(settingsPrefix+"i18n.currency.alpha3", defaults.Currency.Alpha3)
	v.SetDefault(settingsPrefix+"common.idleTimeout", defaults.IdleTimeout.Milliseconds())

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.Is(err, fs.ErrNotExist) && !errors.As(err, &notFound) {
			return Settings{}, fmt.Errorf("failed to read settings file %s: %w", path, err)
		}
		log.Printf("Warning: settings file %s not found. Using default settings.\n", path)
	}

	s := Settings{
		Limits: domain.Limits{
			Account: domain.Boundary{
				Lower: v.GetInt64(settingsPrefix + "account.boundary.lower"),
				Upper: v.GetInt64(settingsPrefix + "account.boundary.upper"),
			},
			Transaction: domain.Boundary{
				Lower: v.GetInt64(settingsPrefix + "payment.boundary.lower"),
				Upper: v.GetInt64(settingsPrefix + "payment.boundary.upper"),
			},
		},
		StalePeriodRaw:      v.GetString(settingsPrefix + "user.stalePeriod"),
		ArticlesEnabled:     v.GetBool(settingsPrefix + "article.enabled"),
		TransactionsEnabled: v.GetBool(settingsPrefix + "payment.transactions.enabled"),
		Currency: Currency{
			Name:   v.GetString(settingsPrefix + "i18n.currency.name"),
			Symbol: v.GetString(settingsPrefix + "i18n.currency.symbol"),
			Alpha3: v.GetString(settingsPrefix + "i18n.currency.alpha3"),
		},
		IdleTimeout: time.Duration(v.GetInt64(settingsPrefix+"common.idleTimeout")) * time.Millisecond,
	}

	if err := s.Limits.Validate(); err != nil {
		return Settings{}, fmt.Errorf("invalid boundaries in %s: %w", path, err)
	}

	stale, err := ParseStalePeriod(s.StalePeriodRaw)
	if err != nil {
		log.Printf("Warning: %v. Using a 10 days default.\n", err)
		stale = domain.DefaultStalePeriod
	}
	s.StalePeriod = stale

	return s, nil
}

var periodUnits = map[string]time.Duration{
	"s": time.Second, "sec": time.Second, "second": time.Second, "seconds": time.Second,
	"m": time.Minute, "min": time.Minute, "minute": time.Minute, "minutes": time.Minute,
	"h": time.Hour, "hour": time.Hour, "hours": time.Hour,
	"d": 24 * time.Hour, "day": 24 * time.Hour, "days": 24 * time.Hour,
	"w": 7 * 24 * time.Hour, "week": 7 * 24 * time.Hour, "weeks": 7 * 24 * time.Hour,
}

// ParseStalePeriod accepts Go durations ("240h") as well as the human form
// used in settings files ("10 day", "2 weeks").
func ParseStalePeriod(raw string) (time.Duration, error) {
	raw = strings.TrimSpace(raw)
	if d, err := time.ParseDuration(raw); err == nil {
		return d, nil
	}

	i := strings.IndexFunc(raw, func(r rune) bool { return r < '0' || r > '9' })
	if i <= 0 {
		return 0, fmt.Errorf("invalid stale period %q", raw)
	}
	n, err := strconv.Atoi(raw[:i])
	if err != nil {
		return 0, fmt.Errorf("invalid stale period %q: %w", raw, err)
	}
	unit, ok := periodUnits[strings.ToLower(strings.TrimSpace(raw[i:]))]
	if !ok {
		return 0, fmt.Errorf("invalid stale period unit in %q", raw)
	}
	return time.Duration(n) * unit, nil
}
