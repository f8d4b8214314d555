package config

import (
	"errors"
	"flag"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses all portal configuration flags.
//
// Flags:
//
//	-pools pool config directory
//	-coins coin profile directory
//	-defaults default pool config file path
//	-website-address stats server address in format [host]:[port]
//	-stats-interval stats refresh interval (e.g., "30s")
//	-cli-address admin listener address in format [host]:[port]
//	-exchange-url exchange ticker API base URL
//	-exchange-currency exchange quote currency (e.g., "USD")
//	-exchange-timeout exchange request timeout (e.g., "10s")
//	-c/-config lenient json file path with configs
func ParseFlags() *PortalConfig {
	var websiteAddress, cliAddress NetAddress
	var poolConfigDir string
	var coinConfigDir string
	var defaultPoolConfigPath string
	var statsInterval time.Duration
	var exchangeURL string
	var exchangeCurrency string
	var exchangeTimeout time.Duration
	var jsonConfigPath string

	flag.StringVar(&poolConfigDir, "pools", "", "Pool config directory")
	flag.StringVar(&coinConfigDir, "coins", "", "Coin profile directory")
	flag.StringVar(&defaultPoolConfigPath, "defaults", "", "Default pool config file path")
	flag.Var(&websiteAddress, "website-address", "Stats server address host:port")
	flag.DurationVar(&statsInterval, "stats-interval", 0, "Stats refresh interval (e.g., 30s)")
	flag.Var(&cliAddress, "cli-address", "Admin listener address host:port")
	flag.StringVar(&exchangeURL, "exchange-url", "", "Exchange ticker API base URL")
	flag.StringVar(&exchangeCurrency, "exchange-currency", "", "Exchange quote currency")
	flag.DurationVar(&exchangeTimeout, "exchange-timeout", 0, "Exchange request timeout (e.g., 10s)")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	flag.Parse()

	return &PortalConfig{
		Portal: Portal{
			PoolConfigDir:         poolConfigDir,
			CoinConfigDir:         coinConfigDir,
			DefaultPoolConfigPath: defaultPoolConfigPath,
		},
		Website: Website{
			Address:       websiteAddress.String(),
			StatsInterval: statsInterval,
		},
		CLI: CLI{
			Address: cliAddress.String(),
		},
		Exchange: Exchange{
			BaseURL:        exchangeURL,
			Currency:       exchangeCurrency,
			RequestTimeout: exchangeTimeout,
		},
		JSONFilePath: jsonConfigPath,
	}
}

// String returns a canonical host:port string for a NetAddress, or an
// empty string when neither part is set.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "localhost" {
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
