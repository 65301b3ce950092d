package cache

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"farmlink_front_end/internal/models"
)

const (
	// CatalogCacheTTL : le catalogue public change peu, 60s suffisent à
	// absorber la charge de la page d'accueil sans servir des prix trop vieux
	CatalogCacheTTL = 60 * time.Second

	catalogKeyPrefix = "catalog:"
)

// CatalogFetcher est la source réelle derrière le cache
type CatalogFetcher interface {
	PublicProducts(ctx context.Context, category string) ([]models.CatalogItem, error)
}

// CachedCatalog décore le client backend avec un cache Redis court sur
// les lectures publiques du catalogue. Sans Redis, délègue simplement.
type CachedCatalog struct {
	inner CatalogFetcher
}

func NewCachedCatalog(inner CatalogFetcher) *CachedCatalog {
	return &CachedCatalog{inner: inner}
}

func (c *CachedCatalog) PublicProducts(reqCtx context.Context, category string) ([]models.CatalogItem, error) {
	if !Enabled() {
		return c.inner.PublicProducts(reqCtx, category)
	}

	key := catalogKey(category)
	data, err := RedisClient.Get(reqCtx, key).Result()
	if err == nil && data != "" {
		var items []models.CatalogItem
		if err := json.Unmarshal([]byte(data), &items); err == nil {
			return items, nil
		}
		// entrée corrompue : on la jette et on repart du backend
		RedisClient.Del(reqCtx, key)
	}

	items, err := c.inner.PublicProducts(reqCtx, category)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(items); err == nil {
		RedisClient.Set(reqCtx, key, payload, CatalogCacheTTL)
	}
	return items, nil
}

func catalogKey(category string) string {
	if category == "" {
		return catalogKeyPrefix + "all"
	}
	return catalogKeyPrefix + category
}

// InvalidateCatalog purge toutes les entrées du catalogue ; appelé après
// chaque mutation admin sur les produits ou les catégories
func InvalidateCatalog(reqCtx context.Context) {
	if !Enabled() {
		return
	}
	iter := RedisClient.Scan(reqCtx, 0, catalogKeyPrefix+"*", 100).Iterator()
	for iter.Next(reqCtx) {
		RedisClient.Del(reqCtx, iter.Val())
	}
	if err := iter.Err(); err != nil {
		log.Printf("⚠️ Erreur invalidation cache catalogue: %v", err)
	}
}
