// Package caching memoriza resultados derivados por tenant e coordena a
// invalidação dos namespaces quando as entidades de origem mudam.
package caching

import "time"

// Namespace identifica uma família de resultados em cache
type Namespace string

const (
	ClientsList      Namespace = "clients_list"
	ProductsList     Namespace = "products_list"
	RevenueCalc      Namespace = "revenue_calc"
	DashboardData    Namespace = "dashboard_data"
	GoalsData        Namespace = "goals_data"
	UserMetadata     Namespace = "user_metadata"
	DashboardMetrics Namespace = "dashboard_metrics"
)

// AllNamespaces lista todos os namespaces conhecidos
var AllNamespaces = []Namespace{
	ClientsList,
	ProductsList,
	RevenueCalc,
	DashboardData,
	GoalsData,
	UserMetadata,
	DashboardMetrics,
}

// TTLConfig define o tempo de vida de cada namespace
type TTLConfig map[Namespace]time.Duration

const fallbackTTL = 5 * time.Minute

// DefaultTTLs retorna a tabela padrão de expiração
func DefaultTTLs() TTLConfig {
	return TTLConfig{
		ClientsList:      900 * time.Second,
		ProductsList:     1200 * time.Second,
		RevenueCalc:      300 * time.Second,
		DashboardData:    600 * time.Second,
		GoalsData:        1800 * time.Second,
		UserMetadata:     3600 * time.Second,
		DashboardMetrics: 180 * time.Second,
	}
}

// TTLFromSeconds monta a tabela a partir de segundos, mantendo o padrão para
// namespaces ausentes ou com valor não positivo
func TTLFromSeconds(seconds map[Namespace]int) TTLConfig {
	ttls := DefaultTTLs()
	for ns, s := range seconds {
		if s > 0 {
			ttls[ns] = time.Duration(s) * time.Second
		}
	}
	return ttls
}

// For retorna o TTL configurado do namespace
func (c TTLConfig) For(ns Namespace) time.Duration {
	if ttl, ok := c[ns]; ok && ttl > 0 {
		return ttl
	}
	if ttl, ok := DefaultTTLs()[ns]; ok {
		return ttl
	}
	return fallbackTTL
}
