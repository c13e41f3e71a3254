package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	_ "modernc.org/sqlite"

	"trip-planner-service/internal/adapters/cache"
	"trip-planner-service/internal/adapters/repositories"
	"trip-planner-service/internal/adapters/routing"
	"trip-planner-service/internal/adapters/weather"
	"trip-planner-service/internal/api"
	"trip-planner-service/internal/config"
	"trip-planner-service/internal/domain"
	"trip-planner-service/internal/platform/db"
	"trip-planner-service/internal/ports"
	"trip-planner-service/internal/services"
)

// main is the application composition root.
// It wires concrete adapters (SQLite, Postgres, Redis, ORS, Open-Meteo)
// behind ports and starts the HTTP server.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	dbPath := config.Get("DB_PATH", "data/app.db")
	port := config.Get("PORT", "8080")

	sqliteDB, err := openDB(dbPath)
	if err != nil {
		log.Fatal(err)
	}
	defer sqliteDB.Close()

	// Local schema holds plans plus the geocode/route caches.
	if err := repositories.InitSchema(sqliteDB); err != nil {
		log.Fatal(err)
	}

	geocoder, routes, err := buildRouteProvider(sqliteDB)
	if err != nil {
		log.Fatal(err)
	}

	planner := services.NewTripPlanner(geocoder, routes, buildWeatherProvider())
	planner.Pricing.Currency = config.Get("DEFAULT_CURRENCY", planner.Pricing.Currency)
	planner.Pricing.FuelPricePerLiter = config.GetFloat("FUEL_PRICE_PER_LITER", planner.Pricing.FuelPricePerLiter)

	repo, err := buildPlanRepository(sqliteDB)
	if err != nil {
		log.Fatal(err)
	}

	router := api.NewRouter(planner, repo)

	// Timeouts are tuned for cold-cache route planning (external API latency).
	log.Printf("Server listening addr=:%s", port)
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      120 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}

func openDB(dbPath string) (*sql.DB, error) {
	sqliteDB, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("openDB: open sqlite database %q: %w", dbPath, err)
	}

	if err := sqliteDB.Ping(); err != nil {
		return nil, fmt.Errorf("openDB: verify sqlite connection to %q: %w", dbPath, err)
	}

	return sqliteDB, nil
}

// buildRouteProvider selects OpenRouteService when a key is configured and
// falls back to the offline mock provider otherwise.
func buildRouteProvider(sqliteDB *sql.DB) (ports.Geocoder, ports.RouteProvider, error) {
	orsKey := os.Getenv("ORS_API_KEY")
	if strings.TrimSpace(orsKey) == "" {
		log.Println("ORS_API_KEY not set; using offline mock routing")
		mock := routing.NewMockProvider(offlineLocations)
		return mock, mock, nil
	}

	geocodeCache := cache.NewSqliteGeocodeCache(sqliteDB)
	routeCache := cache.NewSqliteRouteCache(sqliteDB)

	provider, err := routing.NewORSRouteProvider(orsKey, geocodeCache, routeCache)
	if err != nil {
		return nil, nil, fmt.Errorf("build route provider: %w", err)
	}
	return provider, provider, nil
}

func buildWeatherProvider() ports.WeatherProvider {
	if config.Get("WEATHER_ENABLED", "true") != "true" {
		return nil
	}
	return weather.NewOpenMeteoProvider()
}

// buildPlanRepository prefers Postgres when DATABASE_URL is set, otherwise
// SQLite. When REDIS_ADDR is set, plan reads go through a Redis cache.
func buildPlanRepository(sqliteDB *sql.DB) (ports.TripPlanRepository, error) {
	var repo ports.TripPlanRepository

	if databaseURL := strings.TrimSpace(os.Getenv("DATABASE_URL")); databaseURL != "" {
		pg, err := db.Open(databaseURL)
		if err != nil {
			return nil, fmt.Errorf("build plan repository: %w", err)
		}
		repo = repositories.NewPostgresPlanRepository(pg)
	} else {
		repo = repositories.NewSqlitePlanRepository(sqliteDB)
	}

	redisAddr := strings.TrimSpace(os.Getenv("REDIS_ADDR"))
	if redisAddr == "" {
		return repo, nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	client, err := cache.NewRedisClient(ctx, redisAddr)
	if err != nil {
		return nil, fmt.Errorf("build plan repository: %w", err)
	}

	cached, err := cache.NewRedisPlanCache(client, repo)
	if err != nil {
		return nil, fmt.Errorf("build plan repository: %w", err)
	}
	return cached, nil
}

// offlineLocations seeds the mock geocoder for local runs without an ORS key.
var offlineLocations = map[string]domain.Location{
	"Berlin":    {Latitude: 52.5200, Longitude: 13.4050, Address: "Berlin, Germany"},
	"Munich":    {Latitude: 48.1374, Longitude: 11.5755, Address: "Munich, Germany"},
	"Hamburg":   {Latitude: 53.5511, Longitude: 9.9937, Address: "Hamburg, Germany"},
	"Phuket":    {Latitude: 7.8804, Longitude: 98.3923, Address: "Phuket, Thailand"},
	"Satun":     {Latitude: 6.6238, Longitude: 100.0674, Address: "Satun, Thailand"},
	"Bangkok":   {Latitude: 13.7563, Longitude: 100.5018, Address: "Bangkok, Thailand"},
	"Barcelona": {Latitude: 41.3874, Longitude: 2.1686, Address: "Barcelona, Spain"},
	"Madrid":    {Latitude: 40.4168, Longitude: -3.7038, Address: "Madrid, Spain"},
}
