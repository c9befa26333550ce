package dto

import (
	coredto "event-hub/core/dto"
)

// EndpointHit is one recorded request to a public endpoint.
type EndpointHit struct {
	ID        int64            `json:"id,omitempty"`
	App       string           `json:"app" validate:"required,notblank,max=255"`
	URI       string           `json:"uri" validate:"required,notblank,max=512"`
	IP        string           `json:"ip" validate:"required,ip"`
	Timestamp coredto.DateTime `json:"timestamp" validate:"required"`
}

type ViewStats struct {
	App  string `json:"app"`
	URI  string `json:"uri"`
	Hits int64  `json:"hits"`
}
