package util

import (
	"net"
	"sync/atomic"
	"time"

	"github.com/oschwald/geoip2-golang"
	cache "github.com/patrickmn/go-cache"
	"github.com/rs/zerolog/log"
)

// GeoIP resolves client IPs to a city and country using a local GeoIP2/GeoLite2
// database, with an in-memory cache in front of it.
type GeoIP struct {
	reader lookupReader
	cache  *cache.Cache
	hits   int64
	misses int64
}

type lookupReader interface {
	City(ip net.IP) (*geoip2.City, error)
	Close() error
}

// OpenGeoIP opens the .mmdb file at dbPath. An empty path disables lookups and
// returns nil without error; a nil *GeoIP is safe to use.
func OpenGeoIP(dbPath string) (*GeoIP, error) {
	if dbPath == "" {
		return nil, nil
	}
	r, err := geoip2.Open(dbPath)
	if err != nil {
		return nil, err
	}
	return newGeoIP(r), nil
}

func newGeoIP(r lookupReader) *GeoIP {
	// Cache entries for 24h, purge every hour
	return &GeoIP{reader: r, cache: cache.New(24*time.Hour, time.Hour)}
}

// Close releases the database reader.
func (g *GeoIP) Close() error {
	if g == nil || g.reader == nil {
		return nil
	}
	return g.reader.Close()
}

// Lookup returns city and country name for ip. Empty strings mean the
// location is unknown, including private and loopback addresses.
func (g *GeoIP) Lookup(ip string) (string, string) {
	if g == nil || ip == "" {
		return "", ""
	}
	parsed := net.ParseIP(ip)
	if parsed == nil || parsed.IsLoopback() || parsed.IsPrivate() || parsed.IsUnspecified() {
		return "", ""
	}

	if v, ok := g.cache.Get(ip); ok {
		atomic.AddInt64(&g.hits, 1)
		if arr, ok := v.([2]string); ok {
			return arr[0], arr[1]
		}
	}
	atomic.AddInt64(&g.misses, 1)

	rec, err := g.reader.City(parsed)
	if err != nil {
		log.Debug().Err(err).Str("ip", ip).Msg("GeoIP lookup failed")
		return "", ""
	}

	city := rec.City.Names["en"]
	country := rec.Country.Names["en"]
	if country == "" {
		country = rec.Country.IsoCode
	}

	g.cache.Set(ip, [2]string{city, country}, cache.DefaultExpiration)
	return city, country
}

// CacheMetrics returns the cache hits and misses and current cache size.
func (g *GeoIP) CacheMetrics() (hits int64, misses int64, size int) {
	if g == nil {
		return 0, 0, 0
	}
	return atomic.LoadInt64(&g.hits), atomic.LoadInt64(&g.misses), g.cache.ItemCount()
}
