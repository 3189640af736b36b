package dto

import (
	"autoscribe/internal/app/api/provider"
)

// HealthResponse reports liveness
type HealthResponse struct {
	Status string  `json:"status" example:"ok"`
	Uptime float64 `json:"uptime" example:"12.5"`
}

// CapabilitiesResponse lists the providers and their routing limits
type CapabilitiesResponse struct {
	Services map[provider.Choice]provider.Info `json:"services"`
}
